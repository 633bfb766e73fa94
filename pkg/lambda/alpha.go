package lambda

import "fmt"

// AlphaNormalize renames every bound parameter to a positional name ($0,
// $1, ... in binder order), so alpha-equivalent terms print identically.
// Free names, including references, are left untouched. The positional
// names are not identifiers and cannot clash with free names.
func AlphaNormalize(t Term) Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(Term) Term
	walk = func(tt Term) Term {
		switch v := tt.(type) {
		case Var:
			if name, ok := bindings[v.Name]; ok {
				return Var{Name: name}
			}
			return v
		case Ref:
			return v
		case Abs:
			canon := fmt.Sprintf("$%d", idx)
			idx++
			old, had := bindings[v.Arg]
			bindings[v.Arg] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Arg] = old
			} else {
				delete(bindings, v.Arg)
			}
			return Abs{Arg: canon, Body: body}
		case App:
			return App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			panic("Unknown term type")
		}
	}
	return walk(t)
}

// AlphaEqual reports whether a and b differ only in the names of bound
// parameters.
func AlphaEqual(a, b Term) bool {
	return AlphaNormalize(a).String() == AlphaNormalize(b).String()
}
