// Package config reads interpreter settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
)

const (
	defaultHistoryFile = ".lambda_history"
	// DefaultServerMaxSteps bounds evaluations requested over the tool
	// server when LAMBDA_MAX_STEPS is unset.
	DefaultServerMaxSteps = 100000
)

// Config holds the interpreter settings.
type Config struct {
	MaxSteps      int    // LAMBDA_MAX_STEPS; 0 means unbounded
	TraceCapacity int    // LAMBDA_TRACE; 0 disables tracing
	Debug         bool   // LAMBDA_DEBUG
	NoPrelude     bool   // LAMBDA_NO_PRELUDE
	Pretty        bool   // LAMBDA_PRETTY
	Verbose       bool   // LAMBDA_VERBOSE; echo the prelude definitions
	HistoryFile   string // LAMBDA_HISTORY
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{HistoryFile: defaultHistoryPath()}
}

// Load reads the settings from the process environment.
func Load() (Config, error) {
	cfg := Config{
		MaxSteps:      env.Int("LAMBDA_MAX_STEPS", 0),
		TraceCapacity: env.Int("LAMBDA_TRACE", 0),
		Debug:         env.Bool("LAMBDA_DEBUG"),
		NoPrelude:     env.Bool("LAMBDA_NO_PRELUDE"),
		Pretty:        env.Bool("LAMBDA_PRETTY"),
		Verbose:       env.Bool("LAMBDA_VERBOSE"),
		HistoryFile:   env.Str("LAMBDA_HISTORY", defaultHistoryPath()),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("LAMBDA_MAX_STEPS must not be negative, got %d", c.MaxSteps)
	}
	if c.TraceCapacity < 0 {
		return fmt.Errorf("LAMBDA_TRACE must not be negative, got %d", c.TraceCapacity)
	}
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultHistoryFile
	}
	return filepath.Join(home, defaultHistoryFile)
}
