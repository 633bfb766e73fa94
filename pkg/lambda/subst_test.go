package lambda

import (
	"errors"
	"testing"
)

func TestSubstitute(t *testing.T) {
	env := NewEnvironment()
	env.Define("foo", mustParse(t, `\y.x`, env))
	env.Define("id", mustParse(t, `\a.a`, env))

	tests := []struct {
		name string
		m    string
		x    string
		n    string
		want string
	}{
		{"var match", `x`, "x", `\z.z`, "λz.z"},
		{"var other", `y`, "x", `z`, "y"},
		{"app", `x x`, "x", `f`, "(f f)"},
		{"shadowed", `\x.x`, "x", `z`, "λx.x"},
		{"no capture", `\y.x`, "x", `z`, "λy.z"},
		{"capture", `\y.x`, "x", `y`, "λy1.y"},
		{"capture skips taken names", `\y.x y1`, "x", `y`, "λy2.(y y1)"},
		{"capture nested", `\y.\y1.x y y1`, "x", `y`, "λy1.λy11.((y y1) y11)"},
		{"inline definition", `foo`, "x", `y`, "λy1.y"},
		{"definition without x", `id`, "x", `y`, "λa.a"},
		{"definition renamed", `id`, "x", `a`, "λa1.a1"},
		{"under binder", `\w.foo w`, "x", `q`, "λw.(λy.q w)"},
	}

	for _, tt := range tests {
		m := mustParse(t, tt.m, env)
		n := mustParse(t, tt.n, nil)
		got, err := Substitute(env, m, tt.x, n)
		if err != nil {
			t.Fatalf("%s: Substitute error: %v", tt.name, err)
		}
		if got.String() != tt.want {
			t.Errorf("%s: %s[%s := %s] = %s, want %s", tt.name, m, tt.x, n, got, tt.want)
		}
	}
}

// TestSubstituteInlinesReferences checks that a defined reference is
// replaced by its definition even when x does not occur in it, so its
// parameters are renamed away from the free names of n.
func TestSubstituteInlinesReferences(t *testing.T) {
	env := NewEnvironment()
	if err := LoadPrelude(env); err != nil {
		t.Fatalf("LoadPrelude error: %v", err)
	}

	tests := []struct {
		m    Term
		x    string
		n    Term
		want string
	}{
		{App{Fun: Ref{Name: "true"}, Arg: Var{Name: "x"}}, "x", Var{Name: "y"}, "(λt.λf.t y)"},
		{Ref{Name: "zero"}, "y", Var{Name: "f"}, "λf1.λx.x"},
		{Ref{Name: "succ"}, "z", Var{Name: "f"}, "λn.λf1.λx.(f1 ((n f1) x))"},
		{Ref{Name: "one"}, "a", Var{Name: "x"}, "λf.λx1.(f x1)"},
	}

	for _, tt := range tests {
		got, err := Substitute(env, tt.m, tt.x, tt.n)
		if err != nil {
			t.Fatalf("Substitute error: %v", err)
		}
		if got.String() != tt.want {
			t.Errorf("%s[%s := %s] = %s, want %s", tt.m, tt.x, tt.n, got, tt.want)
		}
	}
}

// TestSubstituteSelfReference checks that a definition mentioning itself
// cannot be inlined.
func TestSubstituteSelfReference(t *testing.T) {
	env := NewEnvironment()
	env.Define("loop", App{Fun: Ref{Name: "loop"}, Arg: Ref{Name: "loop"}})

	_, err := Substitute(env, Ref{Name: "loop"}, "x", Var{Name: "y"})
	var ce *CycleError
	if !errors.As(err, &ce) || ce.Name != "loop" {
		t.Fatalf("expected CycleError for loop, got %v", err)
	}
}

// TestSubstituteUndefinedReference checks that a reference with no
// definition behaves like a variable of the same name.
func TestSubstituteUndefinedReference(t *testing.T) {
	env := NewEnvironment()
	got, err := Substitute(env, App{Fun: Ref{Name: "x"}, Arg: Ref{Name: "w"}}, "x", Var{Name: "z"})
	if err != nil {
		t.Fatalf("Substitute error: %v", err)
	}
	if got.String() != "(z w)" {
		t.Errorf("got %s, want (z w)", got)
	}
}

// TestSubstituteShadowingIsIdentity checks that substituting for a name
// bound by the outer abstraction returns the abstraction itself.
func TestSubstituteShadowingIsIdentity(t *testing.T) {
	m := Abs{Arg: "x", Body: App{Fun: Var{Name: "x"}, Arg: Var{Name: "y"}}}
	got, err := Substitute(NewEnvironment(), m, "x", Var{Name: "q"})
	if err != nil {
		t.Fatalf("Substitute error: %v", err)
	}
	if got != Term(m) {
		t.Errorf("got %s, want %s unchanged", got, m)
	}
}

// TestSubstituteAlphaSafety checks that a renamed parameter is alpha
// equivalent to any other fresh choice.
func TestSubstituteAlphaSafety(t *testing.T) {
	got, err := Substitute(nil, mustParse(t, `\y.x`, nil), "x", Var{Name: "y"})
	if err != nil {
		t.Fatalf("Substitute error: %v", err)
	}
	abs, ok := got.(Abs)
	if !ok {
		t.Fatalf("expected Abs, got %T", got)
	}
	if abs.Arg == "y" {
		t.Errorf("parameter y captures the substituted y")
	}
	if !AlphaEqual(got, mustParse(t, `\z.y`, nil)) {
		t.Errorf("%s is not alpha equivalent to λz.y", got)
	}
}

// TestSubstituteProperties checks over a small corpus that substitution
// neither invents free names nor captures the free names of the argument.
func TestSubstituteProperties(t *testing.T) {
	env := NewEnvironment()
	if err := LoadPrelude(env); err != nil {
		t.Fatalf("LoadPrelude error: %v", err)
	}

	terms := []string{
		`x`, `y`, `x y`, `\x.x`, `\y.x`, `\y.x y`, `\y.\y1.x y y1`,
		`\x.\y.x (y z)`, `(\z.x z) (\x.x)`, `succ x`, `\f.plus x f`,
		`\y.\x.y x`, `\x1.\x2.x x1 x2`,
	}
	names := []string{"x", "y", "z"}
	repls := []string{`y`, `x`, `\y.y`, `y y1`, `x y z`, `\q.y`, `two`}

	for _, ms := range terms {
		m := mustParse(t, ms, env)
		fvm := FreeVars(m, env)
		for _, x := range names {
			for _, ns := range repls {
				n := mustParse(t, ns, env)
				fvn := FreeVars(n, env)
				got, err := Substitute(env, m, x, n)
				if err != nil {
					t.Fatalf("%s[%s := %s]: %v", m, x, n, err)
				}
				fvr := FreeVars(got, env)

				allowed := fvm.Union(NewNameSet())
				delete(allowed, x)
				if fvm.Has(x) {
					allowed = allowed.Union(fvn)
				}
				if !fvr.SubsetOf(allowed) {
					t.Errorf("%s[%s := %s] = %s has free %v, allowed %v", m, x, n, got, fvr.Sorted(), allowed.Sorted())
				}
				if fvm.Has(x) && !fvn.SubsetOf(fvr) {
					t.Errorf("%s[%s := %s] = %s captured a free name of %s", m, x, n, got, n)
				}
			}
		}
	}
}

// TestSubstituteCycle checks that a definition which would be inlined into
// itself is reported rather than expanded forever.
func TestSubstituteCycle(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", Abs{Arg: "z", Body: App{Fun: Var{Name: "x"}, Arg: Ref{Name: "a"}}})

	_, err := Substitute(env, Ref{Name: "a"}, "x", Var{Name: "y"})
	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if ce.Name != "a" {
		t.Errorf("CycleError.Name = %q, want a", ce.Name)
	}
}
