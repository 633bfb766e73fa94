package lambda

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Definition is a named term in surface syntax.
type Definition struct {
	Name string
	Expr string
}

// Prelude holds the standard Church encodings and combinators. Later
// entries may refer to earlier ones.
var Prelude = []Definition{
	{"zero", `\f.\x.x`},
	{"one", `\f.\x.f x`},
	{"two", `\f.\x.f (f x)`},
	{"three", `\f.\x.f (f (f x))`},
	{"succ", `\n.\f.\x.f (n f x)`},
	{"plus", `\m.\n.\f.\x.m f (n f x)`},
	{"mult", `\m.\n.\f.m (n f)`},
	{"pred", `\n.\f.\x.n (\g.\h.h (g f)) (\u.x) (\u.u)`},
	{"iszero", `\n.n (\x.\t.\f.f) (\t.\f.t)`},
	{"true", `\t.\f.t`},
	{"false", `\t.\f.f`},
	{"if", `\p.\a.\b.p a b`},
	{"Y", `\f.(\x.f (x x)) (\x.f (x x))`},
}

// PreludeSource returns the prelude as "name = expr" lines.
func PreludeSource() string {
	return strings.Join(lo.Map(Prelude, func(d Definition, _ int) string {
		return d.Name + " = " + d.Expr
	}), "\n")
}

// LoadPrelude parses and defines every prelude entry in order.
func LoadPrelude(env *Environment) error {
	for _, d := range Prelude {
		term, err := Parse(d.Expr, env)
		if err != nil {
			return fmt.Errorf("prelude %s: %w", d.Name, err)
		}
		env.Define(d.Name, term)
	}
	return nil
}
