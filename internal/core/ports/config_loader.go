package ports

import "go.trai.ch/cgraph/internal/core/domain"

// ConfigLoader defines the interface for loading an evaluation plan.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the plan it describes.
	Load(path string) (*domain.Plan, error)
}
