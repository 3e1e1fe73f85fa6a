package evaluator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cgraph/internal/adapters/telemetry" //nolint:depguard // Wired in engine layer
	"go.trai.ch/cgraph/internal/core/ports"
)

// NodeID is the unique identifier for the evaluator Graft node.
const NodeID graft.ID = "engine.evaluator"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Evaluator, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(tracer), nil
		},
	})
}
