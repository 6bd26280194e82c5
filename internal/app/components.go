package app

import "go.trai.ch/bound/internal/core/ports"

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
