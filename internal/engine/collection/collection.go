// Package collection provides generic helpers over in-memory collections of entities.
//
// Every function is pure apart from Swap, which exchanges two elements of the
// slice it is given. A nil slice stands for an absent collection. Nothing here
// synchronizes access; callers sharing a slice across goroutines must
// serialize calls themselves.
package collection

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"

	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompareCreatedOn orders entities by creation timestamp.
func CompareCreatedOn(a, b domain.Entity) int {
	return a.CreatedOn().Compare(b.CreatedOn())
}

// HasNewEntities reports whether any entity lacks an identifier.
// It returns false for a nil collection.
func HasNewEntities[E domain.Entity](entities []E) bool {
	if entities == nil {
		return false
	}
	for _, e := range entities {
		if !e.ID().Valid {
			return true
		}
	}
	return false
}

// IsValidCollection reports whether every entity satisfies valid.
// A nil collection is valid for any predicate.
func IsValidCollection[E domain.Entity](entities []E, valid func(domain.Entity) bool) bool {
	if entities == nil {
		return true
	}
	for _, e := range entities {
		if !valid(e) {
			return false
		}
	}
	return true
}

// HasDuplicates reports whether more than one entity shares target's identifier.
// The target itself is counted when it is part of entities. Entities without an
// identifier never match, so a new target never has duplicates.
func HasDuplicates[E domain.Entity](entities []E, target E) bool {
	if entities == nil || any(target) == nil {
		return false
	}
	targetID := target.ID()
	if !targetID.Valid {
		return false
	}

	count := 0
	for _, e := range entities {
		if domain.SameID(e.ID(), targetID) {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

// FindMax returns the greatest element of elements according to compare.
// Among equal maxima the first one yielded wins. It returns false when
// elements is nil or yields nothing.
func FindMax[T any](elements iter.Seq[T], compare func(a, b T) int) (T, bool) {
	if elements == nil {
		var zero T
		return zero, false
	}
	holder := domain.NewMaxHolderFunc(compare)
	for e := range elements {
		holder.Put(e)
	}
	return holder.Max()
}

// FindMaxOrdered returns the greatest element of elements in natural order.
// It returns false when elements is nil or empty.
func FindMaxOrdered[T cmp.Ordered](elements []T) (T, bool) {
	holder := domain.NewMaxHolder[T]()
	for _, e := range elements {
		holder.Put(e)
	}
	return holder.Max()
}

// FindMostRecentlyCreatedEntity returns the entity with the latest creation timestamp.
// It fails with domain.ErrEmptyInput when entities is nil or empty.
func FindMostRecentlyCreatedEntity[E domain.Entity](entities []E) (E, error) {
	latest, ok := FindMax(slices.Values(entities), func(a, b E) int {
		return CompareCreatedOn(a, b)
	})
	if !ok {
		return latest, zerr.Wrap(domain.ErrEmptyInput, "find most recently created entity")
	}
	return latest, nil
}

// Swap exchanges the elements at i and j in place.
// Both indices are checked before anything is moved; on error the slice is untouched.
func Swap[T any](elements []T, i, j int) error {
	if err := checkIndex(i, len(elements)); err != nil {
		return err
	}
	if err := checkIndex(j, len(elements)); err != nil {
		return err
	}
	elements[i], elements[j] = elements[j], elements[i]
	return nil
}

func checkIndex(index, length int) error {
	bounds := domain.Limited[int]{Actual: index, Min: 0, Max: length - 1}
	if !bounds.Within() {
		err := zerr.With(zerr.Wrap(domain.ErrIndexOutOfRange, "swap"), "index", index)
		return zerr.With(err, "length", length)
	}
	return nil
}

// Print writes each element on its own line, prefixed with a dash.
func Print[T any](w io.Writer, elements []T) error {
	for _, e := range elements {
		if _, err := fmt.Fprintf(w, " – %v\n", e); err != nil {
			return zerr.Wrap(err, "failed to print element")
		}
	}
	return nil
}
