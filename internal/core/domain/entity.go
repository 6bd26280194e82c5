// Package domain contains the entity contract and the generic value types shared by the toolkit.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entity is the capability contract every toolkit operation is bounded by.
// An entity whose ID is not valid has not been persisted yet.
type Entity interface {
	ID() uuid.NullUUID
	CreatedOn() time.Time
}

var _ Entity = (*BaseEntity)(nil)

// BaseEntity is the plain entity value used by the loader and the repository.
type BaseEntity struct {
	UUID    uuid.NullUUID
	Created time.Time
}

// NewEntity creates an entity with a fresh time-ordered identifier.
func NewEntity(createdOn time.Time) *BaseEntity {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &BaseEntity{
		UUID:    uuid.NullUUID{UUID: id, Valid: true},
		Created: createdOn,
	}
}

// NewTransientEntity creates an entity without an identifier.
func NewTransientEntity(createdOn time.Time) *BaseEntity {
	return &BaseEntity{Created: createdOn}
}

// ID returns the identifier. A nil entity has no identifier.
func (e *BaseEntity) ID() uuid.NullUUID {
	if e == nil {
		return uuid.NullUUID{}
	}
	return e.UUID
}

// CreatedOn returns the creation timestamp. A nil entity reports the zero time.
func (e *BaseEntity) CreatedOn() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Created
}

// IsNew reports whether the entity has no identifier.
func (e *BaseEntity) IsNew() bool {
	return !e.ID().Valid
}

func (e *BaseEntity) String() string {
	if e == nil {
		return "<nil>"
	}
	id := "new"
	if e.UUID.Valid {
		id = e.UUID.UUID.String()
	}
	return fmt.Sprintf("%s (created %s)", id, e.Created.Format(time.RFC3339))
}

// SameID reports whether both identifiers are present and equal.
func SameID(a, b uuid.NullUUID) bool {
	return a.Valid && b.Valid && a.UUID == b.UUID
}
