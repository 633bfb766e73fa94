package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/lambda-repl/pkg/lambda"
)

// TestCase pairs an input with its normal form. Output is compared up to
// renaming of bound parameters; Canonical is the exact printed result,
// fresh names included.
type TestCase struct {
	Name      string
	Input     string
	Output    string
	Canonical string
}

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/lambda-repl/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
//go:embed canonical.txt
var canonical string
func Test_%s_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "%s", input, output, canonical)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", `\x.x`, `\x.x`, `λx.x`},
		{"002_id_apply", `(\x.x) y`, `y`, `y`},

		// Capture avoidance
		{"003_capture", `(\x.\y.x) y`, `\y1.y`, `λy1.y`},
		{"004_capture_nested", `(\x.\y.\y1.x y y1) y`, `\a.\b.y a b`, `λy1.λy11.((y y1) y11)`},

		// K and S combinators
		{"005_k", `(\x.\y.x) a b`, `a`, `a`},
		{"006_s_k_k", `(\x.\y.\z.x z (y z)) (\a.\b.a) (\c.\d.c) e`, `e`, `e`},

		// Church numerals
		{"010_succ_zero", `succ zero`, `\f.\x.f x`, `λf.λx.(f x)`},
		{"011_plus_one_one", `plus one one`, `\f.\x.f (f x)`, `λf.λx.(f (f x))`},
		{"012_mult_two_three", `mult two three`, `\f.\x.f (f (f (f (f (f x)))))`, `λf.λx.(f (f (f (f (f (f x))))))`},
		{"013_pred_two", `pred two`, `\f.\x.f x`, `λf.λx.(f x)`},

		// Booleans
		{"020_iszero_zero", `iszero zero`, `\t.\f.t`, `λt.λf.t`},
		{"021_iszero_one", `iszero one`, `\t.\f.f`, `λt.λf.f`},
		{"022_if_true", `if true a b`, `a`, `a`},
		{"023_if_false", `if false a b`, `b`, `b`},

		// Free variables
		{"030_free_app", `x y`, `x y`, `(x y)`},
		{"031_nested_app", `(\x.\y.x y) a b`, `a b`, `(a b)`},

		// Normal order discards a divergent argument
		{"040_k_omega", `(\x.\y.x) a ((\x.x x) (\x.x x))`, `a`, `a`},
		{"041_y_const", `Y (\r.a)`, `a`, `a`},

		// Inlined definitions rename their parameters away from free names
		{"042_inline_zero", `(\y.zero) f`, `\a.\b.b`, `λf1.λx.x`},
		{"043_inline_succ", `(\z.succ) f`, `\n.\g.\x.g (n g x)`, `λn.λf1.λx.(f1 ((n f1) x))`},
		{"044_inline_one", `(\a.one) x`, `\f.\y.f y`, `λf.λx1.(f x1)`},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	env := lambda.NewEnvironment()
	if err := lambda.LoadPrelude(env); err != nil {
		fmt.Printf("Error loading prelude: %v\n", err)
		os.Exit(1)
	}

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		// Canonical forms do not parenthesize abstractions and cannot be
		// parsed back, so the source text is stored once it parses.
		term, err := lambda.Parse(tc.Input, env)
		if err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}
		res, err := lambda.NewReducer(env, lambda.WithMaxSteps(100000)).Normalize(term)
		if err != nil {
			fmt.Printf("Error reducing %s: %v\n", tc.Name, err)
			continue
		}
		if res.String() != tc.Canonical {
			fmt.Printf("Warning: %s reduces to %s, not %s\n", tc.Name, res, tc.Canonical)
		}
		if _, err := lambda.Parse(tc.Output, nil); err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.lam"), []byte(tc.Input+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "output.lam"), []byte(tc.Output+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "canonical.txt"), []byte(tc.Canonical+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
