// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bound/internal/adapters/entityfile"
	_ "go.trai.ch/bound/internal/adapters/logger"
	_ "go.trai.ch/bound/internal/adapters/memstore"
	// Register app nodes.
	_ "go.trai.ch/bound/internal/app"
)
