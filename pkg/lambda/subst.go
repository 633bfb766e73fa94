package lambda

import "fmt"

// CycleError reports a definition that has to be inlined into itself
// to complete a substitution.
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic definition: %s is inlined into itself", e.Name)
}

// Substitute computes the capture-avoiding substitution m[x := n].
//
// Defined references in m are inlined, so their parameters are renamed
// like any other binder that would capture a free name of n. Undefined
// references behave as variables of the same name.
func Substitute(env *Environment, m Term, x string, n Term) (res Term, err error) {
	defer recoverCycle(&err)
	s := substituter{env: env}
	return s.subst(m, &substFrame{name: x, repl: n}), nil
}

func recoverCycle(err *error) {
	if r := recover(); r != nil {
		ce, ok := r.(*CycleError)
		if !ok {
			panic(r)
		}
		*err = ce
	}
}

type substituter struct {
	env      *Environment
	inlining map[string]bool
	renames  uint64
}

// substFrame is one pending [name := repl]. The free names of repl are
// computed on first use and shared by the whole traversal.
type substFrame struct {
	name   string
	repl   Term
	replFV NameSet
	haveFV bool
}

func (f *substFrame) freeInRepl(env *Environment) NameSet {
	if !f.haveFV {
		f.replFV = FreeVars(f.repl, env)
		f.haveFV = true
	}
	return f.replFV
}

func (s *substituter) subst(m Term, f *substFrame) Term {
	switch m := m.(type) {
	case Var:
		if m.Name == f.name {
			return f.repl
		}
		return m

	case Ref:
		def, ok := s.env.Lookup(m.Name)
		if !ok {
			if m.Name == f.name {
				return f.repl
			}
			return m
		}
		if s.inlining[m.Name] {
			panic(&CycleError{Name: m.Name})
		}
		if s.inlining == nil {
			s.inlining = make(map[string]bool)
		}
		s.inlining[m.Name] = true
		res := s.subst(def, f)
		delete(s.inlining, m.Name)
		return res

	case Abs:
		if m.Arg == f.name {
			// Shadowed.
			return m
		}
		replFV := f.freeInRepl(s.env)
		if !replFV.Has(m.Arg) {
			return Abs{Arg: m.Arg, Body: s.subst(m.Body, f)}
		}
		avoid := FreeVars(m, s.env).Union(replFV)
		fresh := FreshName(avoid, m.Arg)
		s.renames++
		renamed := s.subst(m.Body, &substFrame{name: m.Arg, repl: Var{Name: fresh}})
		return Abs{Arg: fresh, Body: s.subst(renamed, f)}

	case App:
		return App{Fun: s.subst(m.Fun, f), Arg: s.subst(m.Arg, f)}

	default:
		panic("Unknown term type")
	}
}
