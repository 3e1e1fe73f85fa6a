// Package app implements the application layer for cgraph.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cgraph/internal/core/domain"
	"go.trai.ch/cgraph/internal/core/ports"
	"go.trai.ch/cgraph/internal/engine/evaluator"
	"go.trai.ch/zerr"
)

// EvalScenario names the single scenario of a one-shot evaluation.
const EvalScenario = "eval"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	catalog      ports.GraphCatalog
	evaluator    *evaluator.Evaluator
	renderer     ports.Renderer
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	catalog ports.GraphCatalog,
	eval *evaluator.Evaluator,
	renderer ports.Renderer,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		catalog:      catalog,
		evaluator:    eval,
		renderer:     renderer,
		tracer:       tracer,
		logger:       log,
	}
}

// WithRenderer replaces the renderer. Used by the CLI to direct output.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// Run evaluates the scenarios of the configuration file at configPath.
// A failing scenario is reported through the renderer and yields ErrScenarioFailed.
func (a *App) Run(ctx context.Context, configPath string) error {
	plan, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	g, err := a.catalog.Build(plan.Graph)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()
	span.SetAttribute("graph", plan.Graph)
	span.SetAttribute("config", configPath)

	a.renderer.OnPlan(plan.Graph, plan.ScenarioNames())

	reports, err := a.evaluator.Run(ctx, g, plan.Scenarios, plan.Precision)
	for _, r := range reports {
		a.renderer.OnReport(r)
	}
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, context.Canceled) {
			a.logger.Warn("run interrupted")
		}
		if len(reports) < len(plan.Scenarios) {
			a.renderer.OnError(plan.Scenarios[len(reports)].Name, err)
		}
		return errors.Join(domain.ErrScenarioFailed, err)
	}
	return nil
}

// Eval builds the named graph, applies the name=value assignments in order and
// reports the root's value rounded to precision.
func (a *App) Eval(ctx context.Context, graph string, assignments []string, precision int) error {
	if precision < 0 || precision > domain.MaxPrecision {
		return zerr.With(domain.ErrInvalidPrecision, "precision", precision)
	}

	if len(assignments) == 0 {
		a.logger.Warn(fmt.Sprintf("no inputs set, %s evaluates with every input at 0", graph))
	}

	scenario := domain.Scenario{Name: EvalScenario}
	for _, raw := range assignments {
		as, err := domain.ParseAssignment(raw)
		if err != nil {
			return err
		}
		scenario.Assignments = append(scenario.Assignments, as)
	}

	g, err := a.catalog.Build(graph)
	if err != nil {
		return err
	}

	report, err := a.evaluator.Evaluate(ctx, g, scenario, precision)
	if err != nil {
		return err
	}
	a.renderer.OnReport(report)
	return nil
}

// Graphs returns the names of the graphs that can be evaluated.
func (a *App) Graphs() []string {
	return a.catalog.Names()
}

// Inputs returns the input names of the named graph in declaration order.
func (a *App) Inputs(graph string) ([]string, error) {
	g, err := a.catalog.Build(graph)
	if err != nil {
		return nil, err
	}
	var names []string
	for in := range g.Inputs() {
		names = append(names, in.Name())
	}
	return names, nil
}
