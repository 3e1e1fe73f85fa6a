// Package evaluator runs scenarios against an assembled graph.
package evaluator

import (
	"context"

	"go.trai.ch/cgraph/internal/core/domain"
	"go.trai.ch/cgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Evaluator applies scenarios to a graph and reports what each one recomputed.
// Scenarios are cumulative: the graph keeps its inputs and caches between them.
type Evaluator struct {
	tracer ports.Tracer
}

// New creates a new Evaluator.
func New(tracer ports.Tracer) *Evaluator {
	return &Evaluator{tracer: tracer}
}

// Run evaluates scenarios in order. On failure it returns the reports of the
// scenarios that completed before the error.
func (e *Evaluator) Run(
	ctx context.Context,
	g *domain.Graph,
	scenarios []domain.Scenario,
	precision int,
) ([]domain.Report, error) {
	if len(scenarios) == 0 {
		return nil, zerr.With(domain.ErrNoScenarios, "graph", g.Name())
	}

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	e.tracer.EmitPlan(ctx, g.Name(), names)

	reports := make([]domain.Report, 0, len(scenarios))
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := e.Evaluate(ctx, g, s, precision)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Evaluate applies one scenario and computes the graph's root.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	g *domain.Graph,
	s domain.Scenario,
	precision int,
) (domain.Report, error) {
	_, span := e.tracer.Start(ctx, "scenario."+s.Name)
	defer span.End()
	span.SetAttribute("graph", g.Name())

	// Every name is resolved before any input changes, so a failing scenario
	// leaves the graph untouched.
	inputs := make([]*domain.Input, len(s.Assignments))
	for i, a := range s.Assignments {
		in, err := g.Input(a.Name)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "scenario", s.Name)
			span.RecordError(err)
			return domain.Report{}, err
		}
		inputs[i] = in
	}

	before := g.Snapshot()
	for i, in := range inputs {
		in.Set(s.Assignments[i].Value)
	}

	result, err := g.Compute()
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "scenario", s.Name)
		span.RecordError(err)
		return domain.Report{}, err
	}

	report := domain.Report{
		Graph:     g.Name(),
		Scenario:  s.Name,
		Result:    domain.Round(result, precision),
		Precision: precision,
	}
	report.Recomputed, report.Reused = diff(before, g.Snapshot())

	span.SetAttribute("result", report.Result)
	span.SetAttribute("recomputed", len(report.Recomputed))
	return report, nil
}

// diff splits labels by whether their evaluation counter moved.
// Both snapshots come from the same graph so their labels line up.
func diff(before, after []domain.NodeState) (recomputed, reused []string) {
	for i, state := range after {
		if state.Evaluations > before[i].Evaluations {
			recomputed = append(recomputed, state.Label)
			continue
		}
		reused = append(reused, state.Label)
	}
	return recomputed, reused
}
