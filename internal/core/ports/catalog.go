package ports

import "go.trai.ch/cgraph/internal/core/domain"

// GraphCatalog defines the interface for looking up named graphs.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type GraphCatalog interface {
	// Build assembles a fresh instance of the named graph.
	Build(name string) (*domain.Graph, error)

	// Names returns the registered graph names in sorted order.
	Names() []string
}
