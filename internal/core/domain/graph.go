package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is an assembled computation graph: its named inputs, labelled
// intermediate nodes and the root to evaluate.
// Nodes take their arguments at construction, so a Graph is acyclic by construction.
type Graph struct {
	name       string
	inputs     map[InternedString]*Input
	inputOrder []InternedString
	nodes      map[InternedString]*Operator
	nodeOrder  []InternedString
	root       Node
}

// NodeState is the observable cache state of a labelled node.
type NodeState struct {
	Label       string
	Cached      bool
	Evaluations int64
}

// NewGraph creates a new empty Graph.
func NewGraph(name string) *Graph {
	return &Graph{
		name:   name,
		inputs: make(map[InternedString]*Input),
		nodes:  make(map[InternedString]*Operator),
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string {
	return g.name
}

// AddInput declares a new input.
// It returns an error if an input with the same name already exists.
func (g *Graph) AddInput(name string) (*Input, error) {
	key := NewInternedString(name)
	if _, exists := g.inputs[key]; exists {
		return nil, zerr.With(ErrInputAlreadyExists, "input", name)
	}
	in := NewInput(name)
	g.inputs[key] = in
	g.inputOrder = append(g.inputOrder, key)
	return in, nil
}

// Input returns the input with the given name.
func (g *Graph) Input(name string) (*Input, error) {
	in, ok := g.inputs[NewInternedString(name)]
	if !ok {
		return nil, zerr.With(ErrInputNotFound, "input", name)
	}
	return in, nil
}

// Inputs returns an iterator over the inputs in declaration order.
func (g *Graph) Inputs() iter.Seq[*Input] {
	return func(yield func(*Input) bool) {
		for _, key := range g.inputOrder {
			if !yield(g.inputs[key]) {
				return
			}
		}
	}
}

// Label registers op under label so its cache state can be observed.
func (g *Graph) Label(label string, op *Operator) (*Operator, error) {
	key := NewInternedString(label)
	if _, exists := g.nodes[key]; exists {
		return nil, zerr.With(ErrNodeAlreadyExists, "label", label)
	}
	g.nodes[key] = op
	g.nodeOrder = append(g.nodeOrder, key)
	return op, nil
}

// Node returns the node registered under label.
func (g *Graph) Node(label string) (*Operator, error) {
	op, ok := g.nodes[NewInternedString(label)]
	if !ok {
		return nil, zerr.With(ErrNodeNotFound, "label", label)
	}
	return op, nil
}

// Labels returns an iterator over labelled nodes in registration order.
func (g *Graph) Labels() iter.Seq2[string, *Operator] {
	return func(yield func(string, *Operator) bool) {
		for _, key := range g.nodeOrder {
			if !yield(key.String(), g.nodes[key]) {
				return
			}
		}
	}
}

// SetRoot sets the node evaluated by Compute.
func (g *Graph) SetRoot(n Node) {
	g.root = n
}

// Root returns the root node, or nil if none was set.
func (g *Graph) Root() Node {
	return g.root
}

// Set assigns value to the named input.
func (g *Graph) Set(name string, value float64) error {
	in, err := g.Input(name)
	if err != nil {
		return err
	}
	in.Set(value)
	return nil
}

// Compute evaluates the root.
func (g *Graph) Compute() (float64, error) {
	if g.root == nil {
		return 0, zerr.With(ErrRootNotSet, "graph", g.name)
	}
	return g.root.Compute(), nil
}

// Snapshot returns the cache state of every labelled node in registration order.
func (g *Graph) Snapshot() []NodeState {
	states := make([]NodeState, 0, len(g.nodeOrder))
	for label, op := range g.Labels() {
		states = append(states, NodeState{
			Label:       label,
			Cached:      op.HasCachedValue(),
			Evaluations: op.Evaluations(),
		})
	}
	return states
}
