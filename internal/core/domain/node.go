// Package domain contains the lazily evaluated computation graph: numeric nodes that
// memoize their result and invalidate their dependants when an upstream input changes.
package domain

import (
	"fmt"
	"weak"
)

// Node is a vertex of the computation graph.
//
// Evaluation is pull-based: Compute returns the cached value when there is one and
// otherwise derives a fresh value from the node's arguments. Invalidation is
// push-based: InvalidateCache clears the cache and walks every live dependant.
//
// Input is the only leaf type and Operator the only non-leaf type, so back-edges
// always point at an *Operator. New kinds of computation are added as a Func
// passed to NewOperator, not as new Node implementations.
type Node interface {
	fmt.Stringer

	// Compute returns the node's current value, evaluating only the stale part of the graph.
	Compute() float64
	// HasCachedValue reports whether the node holds a value computed since its last invalidation.
	HasCachedValue() bool
	// CachedValue returns the cached value. It panics with ErrNoCachedValue when there is none.
	CachedValue() float64
	// SetCachedValue stores v as the node's cached value.
	SetCachedValue(v float64)
	// InvalidateCache clears the cache and propagates the invalidation to all live dependants.
	InvalidateCache()
	// AddDependant registers op as a consumer of this node. NewOperator calls it
	// once per argument edge.
	AddDependant(op *Operator)
}

// dependants is the set of back-edges from a node to its consumers.
// The references are weak so that a consumer dropped by every owner can be collected.
// Callers must hold the owning node's lock.
type dependants struct {
	refs []weak.Pointer[Operator]
}

func (d *dependants) add(op *Operator) {
	d.refs = append(d.refs, weak.Make(op))
}

// live returns the consumers that are still reachable and drops the ones that are not.
func (d *dependants) live() []*Operator {
	out := make([]*Operator, 0, len(d.refs))
	kept := d.refs[:0]
	for _, ref := range d.refs {
		if op := ref.Value(); op != nil {
			out = append(out, op)
			kept = append(kept, ref)
		}
	}
	clear(d.refs[len(kept):])
	d.refs = kept
	return out
}

// invalidation tracks the operators already cleared during one invalidation pass,
// so that shared subgraphs are walked once.
type invalidation map[*Operator]struct{}

// propagate runs a single invalidation pass starting at the given consumers.
func propagate(consumers []*Operator) {
	if len(consumers) == 0 {
		return
	}
	seen := make(invalidation)
	for _, op := range consumers {
		op.invalidate(seen)
	}
}
