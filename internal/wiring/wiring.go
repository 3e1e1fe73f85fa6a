// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cgraph/internal/adapters/config"
	_ "go.trai.ch/cgraph/internal/adapters/linear"
	_ "go.trai.ch/cgraph/internal/adapters/logger"
	_ "go.trai.ch/cgraph/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cgraph/internal/app"
	_ "go.trai.ch/cgraph/internal/engine/catalog"
	_ "go.trai.ch/cgraph/internal/engine/evaluator"
)
