package ports

import "go.trai.ch/cgraph/internal/core/domain"

// Renderer presents evaluation progress to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlan is called once before the first scenario is evaluated.
	OnPlan(graph string, scenarios []string)

	// OnReport is called after each successfully evaluated scenario.
	OnReport(report domain.Report)

	// OnError is called when a scenario fails.
	OnError(scenario string, err error)
}
