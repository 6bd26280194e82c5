package entityfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bound/internal/adapters/logger"
	"go.trai.ch/bound/internal/core/ports"
)

// NodeID is the unique identifier for the entity loader Graft node.
const NodeID graft.ID = "adapter.entity_loader"

func init() {
	graft.Register(graft.Node[ports.EntityLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EntityLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
