package lambda

import (
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// NameSet is a set of identifiers.
type NameSet map[string]struct{}

func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Union returns a new set holding the members of s and other.
func (s NameSet) Union(other NameSet) NameSet {
	res := make(NameSet, len(s)+len(other))
	for n := range s {
		res[n] = struct{}{}
	}
	for n := range other {
		res[n] = struct{}{}
	}
	return res
}

// SubsetOf reports whether every member of s is in other.
func (s NameSet) SubsetOf(other NameSet) bool {
	return lo.EveryBy(lo.Keys(s), other.Has)
}

// Sorted returns the members in lexicographic order.
func (s NameSet) Sorted() []string {
	names := lo.Keys(s)
	slices.Sort(names)
	return names
}

// FreeVars returns the free names of t. Defined references are expanded
// through env, so the result includes names that become free once a
// reference is inlined.
//
// A reference met again while its own definition is being expanded
// contributes nothing, which makes the result the least fixed point for
// mutually recursive definitions.
func FreeVars(t Term, env *Environment) NameSet {
	fv := make(NameSet)
	collectFree(t, env, make(NameSet), make(map[string]bool), fv)
	return fv
}

func collectFree(t Term, env *Environment, bound NameSet, expanding map[string]bool, out NameSet) {
	switch t := t.(type) {
	case Var:
		if !bound.Has(t.Name) {
			out.Add(t.Name)
		}
	case Ref:
		def, ok := env.Lookup(t.Name)
		if !ok {
			if !bound.Has(t.Name) {
				out.Add(t.Name)
			}
			return
		}
		if expanding[t.Name] {
			return
		}
		expanding[t.Name] = true
		collectFree(def, env, bound, expanding, out)
		delete(expanding, t.Name)
	case Abs:
		if bound.Has(t.Arg) {
			collectFree(t.Body, env, bound, expanding, out)
			return
		}
		bound.Add(t.Arg)
		collectFree(t.Body, env, bound, expanding, out)
		delete(bound, t.Arg)
	case App:
		collectFree(t.Fun, env, bound, expanding, out)
		collectFree(t.Arg, env, bound, expanding, out)
	default:
		panic("Unknown term type")
	}
}

// FreshName returns hint if it is not in avoid, otherwise hint followed by
// the smallest positive decimal suffix that is not in avoid.
func FreshName(avoid NameSet, hint string) string {
	if !avoid.Has(hint) {
		return hint
	}
	for k := 1; ; k++ {
		name := hint + strconv.Itoa(k)
		if !avoid.Has(name) {
			return name
		}
	}
}
