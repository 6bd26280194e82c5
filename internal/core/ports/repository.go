package ports

import "go.trai.ch/bound/internal/core/domain"

// CollectionRepository stores entities and exposes them as a collection of type C.
type CollectionRepository[T domain.Entity, C any] interface {
	Save(entity T) error
	Entities() C
}

// EntityRepository is a CollectionRepository whose collection is an ordered slice.
// Entities returns a snapshot; mutating it does not affect the repository.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type EntityRepository[T domain.Entity] interface {
	CollectionRepository[T, []T]
	// Reset drops every stored entity.
	Reset()
}
