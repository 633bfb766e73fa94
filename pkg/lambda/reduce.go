package lambda

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xyproto/env/v2"
)

var lambdaDebug = env.Bool("LAMBDA_DEBUG")

// ErrStepLimit is returned by Normalize when a term has not reached normal
// form within the configured number of steps.
var ErrStepLimit = errors.New("step limit exceeded")

// Stats holds reduction statistics.
type Stats struct {
	TotalReductions uint64
	BetaReductions  uint64
	Expansions      uint64
	AlphaRenames    uint64
}

// Reducer rewrites terms to normal form under normal order, resolving
// references against an Environment. The environment is only read; it must
// not be modified while a reduction is in flight.
type Reducer struct {
	env      *Environment
	maxSteps uint64
	debug    io.Writer

	stats Stats

	traceBuf []TraceEvent
	traceIdx uint64
	traceOn  bool
}

type Option func(*Reducer)

// WithMaxSteps bounds Normalize to n contractions. Zero means unbounded.
func WithMaxSteps(n uint64) Option {
	return func(r *Reducer) { r.maxSteps = n }
}

func WithTrace(capacity int) Option {
	return func(r *Reducer) {
		if capacity > 0 {
			r.EnableTrace(capacity)
		}
	}
}

// WithDebug prints every intermediate term to w.
func WithDebug(w io.Writer) Option {
	return func(r *Reducer) { r.debug = w }
}

func NewReducer(env *Environment, opts ...Option) *Reducer {
	r := &Reducer{env: env}
	if lambdaDebug {
		r.debug = os.Stderr
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reducer) Env() *Environment { return r.env }

func (r *Reducer) MaxSteps() uint64 { return r.maxSteps }

func (r *Reducer) SetMaxSteps(n uint64) { r.maxSteps = n }

func (r *Reducer) GetStats() Stats { return r.stats }

func (r *Reducer) ResetStats() { r.stats = Stats{} }

// Normalize reduces t to normal form, contracting the outermost-leftmost
// redex first. Without a step limit it does not return for terms that have
// no normal form.
//
// When the limit is hit the partially reduced term is returned together
// with an error wrapping ErrStepLimit.
func (r *Reducer) Normalize(t Term) (res Term, err error) {
	defer recoverCycle(&err)
	r.resetTrace()

	for steps := uint64(0); ; steps++ {
		if r.maxSteps > 0 && steps == r.maxSteps && !r.IsNormalForm(t) {
			return t, fmt.Errorf("%w: not normalized within %d steps", ErrStepLimit, r.maxSteps)
		}
		next, reduced := r.step(t)
		if !reduced {
			return next, nil
		}
		if r.debug != nil {
			fmt.Fprintf(r.debug, "step %d: %s\n", steps+1, next)
		}
		t = next
	}
}

// Step performs a single normal-order contraction. The boolean is false
// when t is already in normal form; the returned term then prints the same
// as t, with unresolved references turned into variables.
func (r *Reducer) Step(t Term) (next Term, reduced bool, err error) {
	defer recoverCycle(&err)
	next, reduced = r.step(t)
	return next, reduced, nil
}

// IsNormalForm reports whether Step would leave t unchanged: t contains no
// redex and no reference to a defined name.
func (r *Reducer) IsNormalForm(t Term) bool {
	switch t := t.(type) {
	case Var:
		return true
	case Ref:
		return !r.env.IsDefined(t.Name)
	case Abs:
		return r.IsNormalForm(t.Body)
	case App:
		if _, ok := t.Fun.(Abs); ok {
			return false
		}
		return r.IsNormalForm(t.Fun) && r.IsNormalForm(t.Arg)
	default:
		panic("Unknown term type")
	}
}

func (r *Reducer) step(t Term) (Term, bool) {
	switch t := t.(type) {
	case Var:
		return t, false

	case Ref:
		def, ok := r.env.Lookup(t.Name)
		if !ok {
			return Var{Name: t.Name}, false
		}
		r.stats.TotalReductions++
		r.stats.Expansions++
		r.recordTrace(RuleExpand, t.Name)
		return def, true

	case Abs:
		body, reduced := r.step(t.Body)
		return Abs{Arg: t.Arg, Body: body}, reduced

	case App:
		if abs, ok := t.Fun.(Abs); ok {
			r.stats.TotalReductions++
			r.stats.BetaReductions++
			r.recordTrace(RuleBeta, abs.Arg)
			return r.subst(abs.Body, abs.Arg, t.Arg), true
		}
		fun, reduced := r.step(t.Fun)
		if reduced {
			return App{Fun: fun, Arg: t.Arg}, true
		}
		arg, reduced := r.step(t.Arg)
		return App{Fun: fun, Arg: arg}, reduced

	default:
		panic("Unknown term type")
	}
}

func (r *Reducer) subst(m Term, x string, n Term) Term {
	s := substituter{env: r.env}
	res := s.subst(m, &substFrame{name: x, repl: n})
	r.stats.AlphaRenames += s.renames
	return res
}
