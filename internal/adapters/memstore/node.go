package memstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/bound/internal/core/ports"
)

// NodeID is the unique identifier for the entity repository Graft node.
const NodeID graft.ID = "adapter.entity_repository"

func init() {
	graft.Register(graft.Node[ports.EntityRepository[*domain.BaseEntity]]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EntityRepository[*domain.BaseEntity], error) {
			return NewListRepository[*domain.BaseEntity](), nil
		},
	})
}
