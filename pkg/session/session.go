// Package session implements the interpreter's line-oriented surface:
// definitions, evaluation and the colon commands.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/vic/lambda-repl/pkg/config"
	"github.com/vic/lambda-repl/pkg/lambda"
)

var (
	// ErrUnknownCommand is returned for a colon command the session does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrLoadCycle is returned when a file is loaded while it is already
	// being loaded.
	ErrLoadCycle = errors.New("file is already being loaded")
)

const HelpText = `Commands:
  name = expression   Define a named expression
  expression          Evaluate an expression
  :quit or :exit      Exit the interpreter
  :defs               Show all definitions
  :load <file>        Run the lines of a file
  :stats              Show statistics of the last evaluation
  :trace              Show the contractions of the last evaluation
  :pretty             Toggle printing L instead of λ
  :help               Show this help message
`

// Commands lists the colon commands, for completion.
var Commands = []string{":quit", ":exit", ":defs", ":load", ":stats", ":trace", ":pretty", ":help"}

// Session is one interpreter session: an environment that grows with every
// definition and a reducer bound to it.
type Session struct {
	Env     *lambda.Environment
	Reducer *lambda.Reducer
	Out     io.Writer

	pretty  bool
	last    lambda.Stats
	elapsed time.Duration
	loading map[string]bool
}

// New creates a session writing its output to out.
func New(cfg config.Config, out io.Writer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env := lambda.NewEnvironment()
	if !cfg.NoPrelude {
		if err := lambda.LoadPrelude(env); err != nil {
			return nil, err
		}
	}

	opts := []lambda.Option{lambda.WithMaxSteps(uint64(cfg.MaxSteps))}
	if cfg.TraceCapacity > 0 {
		opts = append(opts, lambda.WithTrace(cfg.TraceCapacity))
	}
	if cfg.Debug {
		opts = append(opts, lambda.WithDebug(os.Stderr))
	}

	s := &Session{
		Env:     env,
		Reducer: lambda.NewReducer(env, opts...),
		Out:     out,
		pretty:  cfg.Pretty,
	}
	if cfg.Verbose && !cfg.NoPrelude {
		for _, d := range lambda.Prelude {
			term, _ := env.Lookup(d.Name)
			fmt.Fprintf(out, "Defined %s = %s\n", d.Name, s.format(term))
		}
	}
	return s, nil
}

func (s *Session) format(t lambda.Term) string {
	if s.pretty {
		return lambda.Pretty(t)
	}
	return t.String()
}

// Exec runs one input line. quit is true when the line asks to end the
// session. Errors leave the session usable.
func (s *Session) Exec(line string) (quit bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}
	if strings.HasPrefix(trimmed, ":") {
		return s.command(trimmed)
	}
	return false, s.eval(line)
}

// Run executes every line read from r, stopping at the first error or
// quit command.
func (s *Session) Run(r io.Reader) (quit bool, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		quit, err := s.Exec(sc.Text())
		if err != nil {
			return false, fmt.Errorf("line %d: %w", n, err)
		}
		if quit {
			return true, nil
		}
	}
	return false, sc.Err()
}

// Load runs the lines of the file at path.
func (s *Session) Load(path string) error {
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}
	if s.loading[key] {
		return fmt.Errorf("%w: %s", ErrLoadCycle, path)
	}
	if s.loading == nil {
		s.loading = make(map[string]bool)
	}
	s.loading[key] = true
	defer delete(s.loading, key)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer f.Close()
	if _, err := s.Run(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (s *Session) eval(line string) error {
	name, term, ok, err := lambda.ParseDefinition(line, s.Env)
	if ok {
		if err != nil {
			return err
		}
		s.Env.Define(name, term)
		fmt.Fprintf(s.Out, "Defined %s = %s\n", name, s.format(term))
		return nil
	}

	term, err = lambda.Parse(line, s.Env)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Parsed: %s\n", s.format(term))

	res, err := s.Evaluate(term)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Result: %s\n", s.format(res))
	return nil
}

// Define parses expr and binds the result to name, as the line
// "name = expr" would.
func (s *Session) Define(name, expr string) (lambda.Term, error) {
	n, term, ok, err := lambda.ParseDefinition(name+" = "+expr, s.Env)
	if !ok || n != name {
		return nil, fmt.Errorf("invalid definition name %q", name)
	}
	if err != nil {
		return nil, err
	}
	s.Env.Define(name, term)
	return term, nil
}

// EvaluateString parses expr and normalizes it.
func (s *Session) EvaluateString(expr string) (lambda.Term, error) {
	term, err := lambda.Parse(expr, s.Env)
	if err != nil {
		return nil, err
	}
	return s.Evaluate(term)
}

// Evaluate normalizes t and records the statistics of the run.
func (s *Session) Evaluate(t lambda.Term) (lambda.Term, error) {
	s.Reducer.ResetStats()
	start := time.Now()
	res, err := s.Reducer.Normalize(t)
	s.elapsed = time.Since(start)
	s.last = s.Reducer.GetStats()
	return res, err
}

// LastStats returns the statistics and duration of the last evaluation.
func (s *Session) LastStats() (lambda.Stats, time.Duration) {
	return s.last, s.elapsed
}

func (s *Session) command(line string) (bool, error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":quit", ":exit":
		return true, nil

	case ":help":
		fmt.Fprint(s.Out, HelpText)

	case ":defs":
		return false, s.Env.PrintAll(s.Out)

	case ":load":
		if len(fields) < 2 {
			return false, errors.New("usage: :load <file>")
		}
		return false, s.Load(fields[1])

	case ":stats":
		FprintStats(s.Out, s.last, s.elapsed)

	case ":trace":
		events := s.Reducer.TraceSnapshot()
		if events == nil {
			fmt.Fprintln(s.Out, "Tracing is disabled; set LAMBDA_TRACE to a capacity.")
			return false, nil
		}
		for _, ev := range events {
			fmt.Fprintf(s.Out, "%6d  %-6s %s\n", ev.Step+1, ev.Rule, ev.Name)
		}

	case ":pretty":
		s.pretty = !s.pretty
		fmt.Fprintf(s.Out, "Pretty printing %s\n", lo.Ternary(s.pretty, "on", "off"))

	default:
		return false, fmt.Errorf("%w %s, type :help for help", ErrUnknownCommand, fields[0])
	}
	return false, nil
}

// Complete returns completion candidates for line: colon commands, or
// defined names for the word under the cursor.
func (s *Session) Complete(line string) []string {
	if strings.HasPrefix(line, ":") && !strings.Contains(line, " ") {
		return lo.Filter(Commands, func(c string, _ int) bool {
			return strings.HasPrefix(c, line)
		})
	}
	cut := strings.LastIndexAny(line, " \t(.\\") + 1
	head, word := line[:cut], line[cut:]
	if word == "" {
		return nil
	}
	names := lo.Filter(s.Env.Names(), func(n string, _ int) bool {
		return strings.HasPrefix(n, word)
	})
	return lo.Map(names, func(n string, _ int) string { return head + n })
}

// FprintStats writes reduction statistics in the CLI's stats layout.
func FprintStats(w io.Writer, stats lambda.Stats, elapsed time.Duration) {
	seconds := elapsed.Seconds()
	rate := func(n uint64) string {
		if seconds <= 0 {
			return ""
		}
		return fmt.Sprintf(" (%.2f ops/sec)", float64(n)/seconds)
	}

	fmt.Fprintf(w, "Time: %v\n", elapsed)
	fmt.Fprintf(w, "Total Reductions: %d%s\n", stats.TotalReductions, rate(stats.TotalReductions))
	fmt.Fprintf(w, "  Beta Reductions:     %6d%s\n", stats.BetaReductions, rate(stats.BetaReductions))
	fmt.Fprintf(w, "  Definition Unfolds:  %6d%s\n", stats.Expansions, rate(stats.Expansions))
	if stats.AlphaRenames > 0 {
		fmt.Fprintf(w, "  Alpha Renames:       %6d\n", stats.AlphaRenames)
	}
}
