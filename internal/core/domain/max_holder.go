package domain

import "cmp"

// MaxHolder tracks the running maximum of the values put into it.
// On ties the value seen first is kept.
type MaxHolder[T any] struct {
	max     T
	present bool
	compare func(a, b T) int
}

// NewMaxHolder creates a MaxHolder ordered by cmp.Compare.
func NewMaxHolder[T cmp.Ordered]() *MaxHolder[T] {
	return NewMaxHolderFunc(cmp.Compare[T])
}

// NewMaxHolderFunc creates a MaxHolder ordered by compare.
func NewMaxHolderFunc[T any](compare func(a, b T) int) *MaxHolder[T] {
	return &MaxHolder[T]{compare: compare}
}

// Put offers a value. It replaces the current maximum only when strictly greater.
func (h *MaxHolder[T]) Put(val T) {
	if !h.present {
		h.max = val
		h.present = true
		return
	}
	if h.compare(val, h.max) > 0 {
		h.max = val
	}
}

// Max returns the current maximum and whether any value has been put.
func (h *MaxHolder[T]) Max() (T, bool) {
	return h.max, h.present
}
