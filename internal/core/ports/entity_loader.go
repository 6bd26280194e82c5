// Package ports defines the interfaces the application layer depends on.
package ports

import "go.trai.ch/bound/internal/core/domain"

// EntityLoader defines the interface for reading entity fixture files.
//
//go:generate mockgen -source=entity_loader.go -destination=mocks/mock_entity_loader.go -package=mocks
type EntityLoader interface {
	// Load reads the file at path and returns its entities tagged with their source.
	Load(path string) (domain.Sourced[[]*domain.BaseEntity], error)
}
