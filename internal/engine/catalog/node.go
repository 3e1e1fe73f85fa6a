package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cgraph/internal/core/ports"
)

// NodeID is the unique identifier for the graph catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[ports.GraphCatalog]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphCatalog, error) {
			return NewDefault(), nil
		},
	})
}
