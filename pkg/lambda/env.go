package lambda

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Environment maps top-level names to their definitions.
// Entries are added or replaced, never removed.
type Environment struct {
	defs map[string]Term
}

func NewEnvironment() *Environment {
	return &Environment{defs: make(map[string]Term)}
}

// Define binds name to term, replacing any previous binding.
func (e *Environment) Define(name string, term Term) {
	if e.defs == nil {
		e.defs = make(map[string]Term)
	}
	e.defs[name] = term
}

// Lookup returns the definition bound to name. A nil Environment is empty.
func (e *Environment) Lookup(name string) (Term, bool) {
	if e == nil {
		return nil, false
	}
	t, ok := e.defs[name]
	return t, ok
}

func (e *Environment) IsDefined(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

func (e *Environment) Len() int {
	if e == nil {
		return 0
	}
	return len(e.defs)
}

// Names returns the defined names in lexicographic order.
func (e *Environment) Names() []string {
	if e == nil {
		return nil
	}
	names := lo.Keys(e.defs)
	slices.Sort(names)
	return names
}

// PrintAll writes one "name = term" line per definition, ordered by name.
func (e *Environment) PrintAll(w io.Writer) error {
	if e.Len() == 0 {
		_, err := fmt.Fprintln(w, "No definitions yet.")
		return err
	}
	for _, name := range e.Names() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, e.defs[name]); err != nil {
			return err
		}
	}
	return nil
}
