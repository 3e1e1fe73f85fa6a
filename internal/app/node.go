package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cgraph/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cgraph/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cgraph/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cgraph/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cgraph/internal/core/ports"
	"go.trai.ch/cgraph/internal/engine/catalog"
	"go.trai.ch/cgraph/internal/engine/evaluator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			catalog.NodeID,
			evaluator.NodeID,
			linear.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	cat, err := graft.Dep[ports.GraphCatalog](ctx)
	if err != nil {
		return nil, err
	}
	eval, err := graft.Dep[*evaluator.Evaluator](ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, cat, eval, renderer, tracer, log), nil
}
