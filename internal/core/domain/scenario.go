package domain

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Assignment sets one input to a value.
type Assignment struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ParseAssignment parses the "name=value" form used on the command line.
func ParseAssignment(s string) (Assignment, error) {
	name, raw, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Assignment{}, zerr.With(ErrInvalidAssignment, "assignment", s)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Assignment{}, zerr.With(zerr.Wrap(err, ErrInvalidAssignment.Error()), "assignment", s)
	}
	return Assignment{Name: name, Value: value}, nil
}

// Scenario is a named batch of assignments applied before one evaluation.
type Scenario struct {
	Name        string       `json:"name"`
	Assignments []Assignment `json:"assignments"`
}

// NewScenario builds a scenario from a set of values, ordered by input name.
func NewScenario(name string, values map[string]float64) Scenario {
	assignments := make([]Assignment, 0, len(values))
	for input, v := range values {
		assignments = append(assignments, Assignment{Name: input, Value: v})
	}
	slices.SortFunc(assignments, func(a, b Assignment) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return Scenario{Name: name, Assignments: assignments}
}

// Report is the outcome of evaluating one scenario.
type Report struct {
	Graph      string   `json:"graph"`
	Scenario   string   `json:"scenario"`
	Result     float64  `json:"result"`
	Precision  int      `json:"precision"`
	Recomputed []string `json:"recomputed,omitzero"`
	Reused     []string `json:"reused,omitzero"`
}

const (
	// DefaultPrecision is the number of decimal places results are rounded to.
	DefaultPrecision = 5
	// MaxPrecision is the largest precision float64 can represent meaningfully.
	MaxPrecision = 15
)

// Plan is a graph together with the scenarios to evaluate against it.
type Plan struct {
	Graph     string
	Precision int
	Scenarios []Scenario
}

// ScenarioNames returns the scenario names in evaluation order.
func (p *Plan) ScenarioNames() []string {
	names := make([]string, len(p.Scenarios))
	for i, s := range p.Scenarios {
		names[i] = s.Name
	}
	return names
}
