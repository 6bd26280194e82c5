package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bound/internal/adapters/entityfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/bound/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bound/internal/adapters/memstore"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/bound/internal/core/ports"
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
			entityfile.NodeID,
			memstore.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.EntityLoader](ctx)
	if err != nil {
		return nil, err
	}

	repo, err := graft.Dep[ports.EntityRepository[*domain.BaseEntity]](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, repo, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
