package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/vic/lambda-repl/pkg/config"
	"github.com/vic/lambda-repl/pkg/lambda"
	"github.com/vic/lambda-repl/pkg/session"
)

const (
	promptMain = "> "
	banner     = "Lambda Calculus Interpreter\n===========================\nType :help for commands, :quit or Ctrl+D to exit."
)

func main() {
	os.Exit(run())
}

func run() int {
	expr := flag.String("e", "", "evaluate `expr` and exit")
	stats := flag.Bool("stats", false, "print reduction statistics to stderr")
	verbose := flag.Bool("v", false, "print the prelude definitions at startup")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: lambda [-v] [-stats] [-e expr | file]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	if *verbose {
		cfg.Verbose = true
	}

	s, err := session.New(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case *expr != "":
		return runScript(s, strings.NewReader(*expr), *stats)
	case flag.NArg() == 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			return 1
		}
		defer f.Close()
		return runScript(s, f, *stats)
	case flag.NArg() > 1:
		flag.Usage()
		return 2
	}

	return runREPL(s, cfg)
}

// runScript executes every line of r and reports the statistics of the
// last evaluation.
func runScript(s *session.Session, r io.Reader, printStats bool) int {
	_, err := s.Run(r)
	if err != nil {
		reportError(err)
		return 1
	}
	if printStats {
		st, elapsed := s.LastStats()
		fmt.Fprintf(os.Stderr, "\nStats:\n")
		session.FprintStats(os.Stderr, st, elapsed)
	}
	return 0
}

func runREPL(s *session.Session, cfg config.Config) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.Complete)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		quit, err := s.Exec(line)
		if err != nil {
			reportError(err)
		}
		if quit {
			break
		}
	}

	if f, err := os.Create(cfg.HistoryFile); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

func reportError(err error) {
	var pe *lambda.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(os.Stderr, "Parser error: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
