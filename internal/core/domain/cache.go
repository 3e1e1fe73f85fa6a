package domain

import (
	"slices"
	"sync"
)

// CacheRecord holds the caching state shared by every operator: its arguments,
// the memoized value and the consumers to invalidate when that value goes stale.
//
// The generation counter changes on every invalidation. A computation only
// stores its result if the generation it started under is still current, so an
// invalidation that lands while arguments are being evaluated is never lost.
type CacheRecord struct {
	args []Node

	mu         sync.Mutex
	value      float64
	cached     bool
	generation uint64
	dependants dependants
}

// Arguments returns the node's operands in order.
func (c *CacheRecord) Arguments() []Node {
	return slices.Clone(c.args)
}

// HasCachedValue reports whether a value is cached.
func (c *CacheRecord) HasCachedValue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached
}

// CachedValue returns the cached value and panics if there is none.
func (c *CacheRecord) CachedValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cached {
		panic(ErrNoCachedValue)
	}
	return c.value
}

// SetCachedValue overwrites the cached value unconditionally.
func (c *CacheRecord) SetCachedValue(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.cached = true
}

// AddDependant registers op as a consumer of this record's node.
func (c *CacheRecord) AddDependant(op *Operator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dependants.add(op)
}

// Dependants returns the number of consumers that are still reachable.
func (c *CacheRecord) Dependants() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.dependants.live())
}

// lookup returns the cached value if present, and the generation it was read under.
func (c *CacheRecord) lookup() (float64, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.generation, c.cached
}

// store caches v if no invalidation happened since generation gen was observed.
func (c *CacheRecord) store(v float64, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return false
	}
	c.value = v
	c.cached = true
	return true
}

// reset clears the cache and returns the consumers to invalidate next.
func (c *CacheRecord) reset() []*Operator {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = false
	c.value = 0
	c.generation++
	return c.dependants.live()
}
