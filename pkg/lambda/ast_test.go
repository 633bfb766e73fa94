package lambda

import "testing"

// TestCanonicalForm checks the printed form used for display and for
// comparing results: λ for abstractions, fully parenthesized applications.
func TestCanonicalForm(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{Var{Name: "x"}, "x"},
		{Ref{Name: "succ"}, "succ"},
		{Abs{Arg: "x", Body: Var{Name: "x"}}, "λx.x"},
		{App{Fun: Var{Name: "f"}, Arg: Var{Name: "x"}}, "(f x)"},
		{
			Abs{Arg: "f", Body: Abs{Arg: "x", Body: App{Fun: Var{Name: "f"}, Arg: App{Fun: Var{Name: "f"}, Arg: Var{Name: "x"}}}}},
			"λf.λx.(f (f x))",
		},
		{
			App{Fun: Abs{Arg: "x", Body: Var{Name: "x"}}, Arg: Var{Name: "y"}},
			"(λx.x y)",
		},
		{
			App{Fun: App{Fun: Ref{Name: "plus"}, Arg: Ref{Name: "one"}}, Arg: Ref{Name: "one"}},
			"((plus one) one)",
		},
	}

	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestPretty checks the ASCII variant of the printer.
func TestPretty(t *testing.T) {
	term := Abs{Arg: "f", Body: Abs{Arg: "x", Body: App{Fun: Var{Name: "f"}, Arg: Var{Name: "x"}}}}
	if got, want := Pretty(term), "Lf.Lx.(f x)"; got != want {
		t.Errorf("Pretty() = %q, want %q", got, want)
	}
	if got, want := term.String(), "λf.λx.(f x)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIsIdentifier(t *testing.T) {
	valid := []string{"x", "X", "_", "_x1", "succ", "y10", "Y"}
	invalid := []string{"", "1x", "x_y", "λ", "a-b", "x y"}

	for _, s := range valid {
		if !IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = true, want false", s)
		}
	}
}

// TestAlphaEqual checks comparison up to renaming of bound parameters.
func TestAlphaEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`\x.x`, `\y.y`, true},
		{`\y1.y`, `\z.y`, true},
		{`\x.\y.x`, `\a.\b.a`, true},
		{`\x.\y.x`, `\a.\b.b`, false},
		{`\x.y`, `\x.z`, false},
		{`x`, `y`, false},
		{`\x.\x.x`, `\a.\b.b`, true},
		{`(\x.x) y`, `(\z.z) y`, true},
	}

	for _, tt := range tests {
		a := mustParse(t, tt.a, nil)
		b := mustParse(t, tt.b, nil)
		if got := AlphaEqual(a, b); got != tt.want {
			t.Errorf("AlphaEqual(%s, %s) = %v, want %v", a, b, got, tt.want)
		}
	}
}

func mustParse(t *testing.T, input string, env *Environment) Term {
	t.Helper()
	term, err := Parse(input, env)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return term
}
