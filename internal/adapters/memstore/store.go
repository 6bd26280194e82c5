// Package memstore implements an in-memory entity repository.
package memstore

import (
	"slices"
	"sync"

	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/bound/internal/core/ports"
)

var _ ports.EntityRepository[*domain.BaseEntity] = (*ListRepository[*domain.BaseEntity])(nil)

// ListRepository keeps entities in insertion order.
type ListRepository[T domain.Entity] struct {
	mu       sync.RWMutex
	entities []T
}

// NewListRepository creates an empty ListRepository.
func NewListRepository[T domain.Entity]() *ListRepository[T] {
	return &ListRepository[T]{}
}

// Save appends entity. Entities are stored as given; duplicates are allowed.
func (r *ListRepository[T]) Save(entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = append(r.entities, entity)
	return nil
}

// Entities returns a copy of the stored entities. It returns nil when nothing was saved.
func (r *ListRepository[T]) Entities() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entities)
}

// Reset drops every stored entity.
func (r *ListRepository[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = nil
}
