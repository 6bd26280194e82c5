package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bound/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run:       provide,
	})
}

// provide builds the process-wide logger in pretty mode on stderr.
// The CLI switches it to JSON once flags are parsed.
func provide(context.Context) (ports.Logger, error) {
	return New(), nil
}
