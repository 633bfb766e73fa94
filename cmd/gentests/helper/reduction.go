package gentests

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vic/lambda-repl/pkg/lambda"
)

// MaxSteps bounds every golden reduction.
const MaxSteps = 100000

// NewPreludeEnv returns an environment holding the standard definitions.
func NewPreludeEnv(t *testing.T) *lambda.Environment {
	t.Helper()
	env := lambda.NewEnvironment()
	if err := lambda.LoadPrelude(env); err != nil {
		t.Fatalf("Prelude error: %v", err)
	}
	return env
}

// CheckLambdaReduction normalizes inputStr with the prelude loaded. The
// result must print exactly as canonicalStr and be alpha equivalent to
// outputStr.
func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string, canonicalStr string) {
	t.Helper()
	env := NewPreludeEnv(t)

	// Expected output is parsed without the environment: a normal form
	// never mentions a defined name, and plain variables compare by name.
	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr), nil)
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(strings.TrimSpace(inputStr), env)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	r := lambda.NewReducer(env, lambda.WithMaxSteps(MaxSteps))
	start := time.Now()
	actualTerm, err := r.Normalize(term)
	elapsed := time.Since(start)
	if errors.Is(err, lambda.ErrStepLimit) {
		t.Fatalf("%s: %v (last term %s)", testName, err, actualTerm)
	}
	if err != nil {
		t.Fatalf("%s: %v", testName, err)
	}

	// Output is checked up to renaming first, so a failure of the exact
	// comparison below points at fresh-name choice alone.
	if !lambda.AlphaEqual(actualTerm, expectedTerm) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, inputStr, expectedTerm, actualTerm)
	} else if want := strings.TrimSpace(canonicalStr); actualTerm.String() != want {
		t.Errorf("%s: bound names differ:\nExpected: %s\nActual:   %s", testName, want, actualTerm)
	}

	if !r.IsNormalForm(actualTerm) {
		t.Errorf("%s: result %s is not in normal form", testName, actualTerm)
	}

	stats := r.GetStats()
	t.Logf("%s: %d reductions (%d beta, %d unfolds) in %v", testName, stats.TotalReductions, stats.BetaReductions, stats.Expansions, elapsed)
}
