package domain

import (
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"go.trai.ch/zerr"
)

// Variadic is the Func arity of operators that take any positive number of arguments.
const Variadic = -1

// Func describes the operator-specific part of a node: its argument and parameter
// counts and how a fresh value is derived from evaluated arguments.
// Apply must be pure.
type Func struct {
	Name   string
	Arity  int
	Params int
	Apply  func(args, params []float64) float64
}

// Operator is a non-leaf node that applies a Func to its arguments.
type Operator struct {
	CacheRecord

	fn          Func
	params      []float64
	evaluations atomic.Int64
}

// NewOperator builds an operator over args with the given fixed parameters and
// registers it as a dependant of every argument.
func NewOperator(fn Func, params []float64, args ...Node) (*Operator, error) {
	if fn.Apply == nil {
		return nil, zerr.With(ErrNilFunc, "operator", fn.Name)
	}
	if err := checkArity(fn, len(args)); err != nil {
		return nil, err
	}
	if len(params) != fn.Params {
		return nil, zerr.With(zerr.With(zerr.With(ErrParamMismatch,
			"operator", fn.Name),
			"want", fn.Params),
			"got", len(params))
	}
	for i, arg := range args {
		if arg == nil {
			return nil, zerr.With(zerr.With(ErrNilArgument, "operator", fn.Name), "index", i)
		}
	}

	op := &Operator{
		fn:     fn,
		params: slices.Clone(params),
	}
	op.args = slices.Clone(args)

	for _, arg := range op.args {
		arg.AddDependant(op)
	}
	return op, nil
}

func checkArity(fn Func, got int) error {
	if fn.Arity == Variadic {
		if got > 0 {
			return nil
		}
		return zerr.With(zerr.With(zerr.With(ErrArityMismatch,
			"operator", fn.Name),
			"want", "at least 1"),
			"got", got)
	}
	if got != fn.Arity {
		return zerr.With(zerr.With(zerr.With(ErrArityMismatch,
			"operator", fn.Name),
			"want", fn.Arity),
			"got", got)
	}
	return nil
}

// mustOperator panics on construction errors, which are programming mistakes.
func mustOperator(op *Operator, err error) *Operator {
	if err != nil {
		panic(err)
	}
	return op
}

// Compute returns the cached value, or evaluates the arguments and caches a fresh one.
func (o *Operator) Compute() float64 {
	v, gen, ok := o.lookup()
	if ok {
		return v
	}
	v = o.ComputeFresh()
	o.store(v, gen)
	return v
}

// CachedValue returns the cached value. It panics with ErrNoCachedValue, naming
// the expression, when there is none.
func (o *Operator) CachedValue() float64 {
	v, _, ok := o.lookup()
	if !ok {
		panic(zerr.With(ErrNoCachedValue, "node", o.String()))
	}
	return v
}

// ComputeFresh evaluates the arguments and applies the operator's function,
// bypassing this node's cache.
func (o *Operator) ComputeFresh() float64 {
	values := make([]float64, len(o.args))
	for i, arg := range o.args {
		values[i] = arg.Compute()
	}
	o.evaluations.Add(1)
	return o.fn.Apply(values, o.params)
}

// InvalidateCache clears the cache of this node and of everything downstream.
func (o *Operator) InvalidateCache() {
	o.invalidate(make(invalidation))
}

func (o *Operator) invalidate(seen invalidation) {
	if _, done := seen[o]; done {
		return
	}
	seen[o] = struct{}{}
	for _, op := range o.reset() {
		op.invalidate(seen)
	}
}

// Func returns the operator's name.
func (o *Operator) Func() string {
	return o.fn.Name
}

// Params returns the operator's fixed parameters.
func (o *Operator) Params() []float64 {
	return slices.Clone(o.params)
}

// Evaluations returns how many times a fresh value has been computed.
func (o *Operator) Evaluations() int64 {
	return o.evaluations.Load()
}

// String renders the expression rooted at the operator, e.g. "pow(x3, 3)".
func (o *Operator) String() string {
	parts := make([]string, 0, len(o.args)+len(o.params))
	for _, arg := range o.args {
		parts = append(parts, arg.String())
	}
	for _, p := range o.params {
		parts = append(parts, strconv.FormatFloat(p, 'g', -1, 64))
	}
	return o.fn.Name + "(" + strings.Join(parts, ", ") + ")"
}
