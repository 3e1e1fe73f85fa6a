// Package catalog provides the registry of named graph builders.
package catalog

import (
	"maps"
	"slices"

	"go.trai.ch/cgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// Builder assembles a fresh instance of a graph.
type Builder func() (*domain.Graph, error)

// Catalog maps graph names to builders.
// Every Build returns an independent graph, so callers never share caches.
type Catalog struct {
	builders map[string]Builder
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{builders: make(map[string]Builder)}
}

// NewDefault creates a catalog holding the builtin graphs.
func NewDefault() *Catalog {
	c := New()
	for name, b := range builtins {
		c.mustRegister(name, b)
	}
	return c
}

// mustRegister panics on registration errors, which are programming mistakes.
func (c *Catalog) mustRegister(name string, b Builder) {
	if err := c.Register(name, b); err != nil {
		panic(err)
	}
}

// Register adds a builder under name.
func (c *Catalog) Register(name string, b Builder) error {
	if _, exists := c.builders[name]; exists {
		return zerr.With(domain.ErrGraphAlreadyRegistered, "graph", name)
	}
	c.builders[name] = b
	return nil
}

// Build assembles the named graph.
func (c *Catalog) Build(name string) (*domain.Graph, error) {
	b, ok := c.builders[name]
	if !ok {
		err := zerr.With(domain.ErrGraphNotFound, "graph", name)
		return nil, zerr.With(err, "available", c.Names())
	}
	return b()
}

// Names returns the registered graph names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.builders))
}
