package lambda

import "strings"

// Term represents a lambda calculus term.
//
// Terms are immutable values. Rewriting builds new terms and may share
// sub-terms with its input.
type Term interface {
	String() string
	writeTo(b *strings.Builder, lam string)
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

func (v Var) writeTo(b *strings.Builder, _ string) {
	b.WriteString(v.Name)
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return render(a, "λ")
}

func (a Abs) writeTo(b *strings.Builder, lam string) {
	b.WriteString(lam)
	b.WriteString(a.Arg)
	b.WriteByte('.')
	a.Body.writeTo(b, lam)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return render(a, "λ")
}

func (a App) writeTo(b *strings.Builder, lam string) {
	b.WriteByte('(')
	a.Fun.writeTo(b, lam)
	b.WriteByte(' ')
	a.Arg.writeTo(b, lam)
	b.WriteByte(')')
}

// Ref represents a reference to a top-level definition.
// It is resolved against an Environment during reduction.
type Ref struct {
	Name string
}

func (r Ref) String() string {
	return r.Name
}

func (r Ref) writeTo(b *strings.Builder, _ string) {
	b.WriteString(r.Name)
}

func render(t Term, lam string) string {
	var b strings.Builder
	t.writeTo(&b, lam)
	return b.String()
}

// Pretty renders t like String but with an ASCII 'L' in place of 'λ'.
// It is meant for display only; fixed points are never detected with it.
func Pretty(t Term) string {
	return render(t, "L")
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9]*.
func IsIdentifier(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
