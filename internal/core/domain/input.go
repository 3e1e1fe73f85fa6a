package domain

import (
	"math"
	"sync"

	"go.trai.ch/zerr"
)

// Input is a named graph root holding a mutable value.
// Its value is always current, so it always reports a cached value.
type Input struct {
	name InternedString

	mu         sync.Mutex
	value      float64
	dependants dependants
}

// NewInput creates an input with a zero value and no dependants.
func NewInput(name string) *Input {
	return &Input{name: NewInternedString(name)}
}

// Name returns the input's name.
func (in *Input) Name() string {
	return in.name.String()
}

// String implements fmt.Stringer.
func (in *Input) String() string {
	return in.name.String()
}

// Value returns the current value.
func (in *Input) Value() float64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}

// Set assigns v and invalidates everything downstream of the input.
func (in *Input) Set(v float64) {
	in.mu.Lock()
	in.value = v
	consumers := in.dependants.live()
	in.mu.Unlock()

	propagate(consumers)
}

// Compute returns the current value.
func (in *Input) Compute() float64 {
	return in.Value()
}

// HasCachedValue always reports true.
func (in *Input) HasCachedValue() bool {
	return true
}

// CachedValue returns the current value.
func (in *Input) CachedValue() float64 {
	return in.Value()
}

// SetCachedValue only accepts the input's current value; anything else panics
// with ErrLeafCacheTamper because an input changes through Set alone.
func (in *Input) SetCachedValue(v float64) {
	current := in.Value()
	if v == current || (math.IsNaN(v) && math.IsNaN(current)) {
		return
	}
	panic(zerr.With(zerr.With(zerr.With(ErrLeafCacheTamper,
		"input", in.Name()),
		"value", current),
		"attempted", v))
}

// InvalidateCache propagates to the dependants. An input has no cache of its own.
func (in *Input) InvalidateCache() {
	in.mu.Lock()
	consumers := in.dependants.live()
	in.mu.Unlock()

	propagate(consumers)
}

// AddDependant registers op as a consumer of the input.
func (in *Input) AddDependant(op *Operator) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.dependants.add(op)
}

// Dependants returns the number of consumers that are still reachable.
func (in *Input) Dependants() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.dependants.live())
}
