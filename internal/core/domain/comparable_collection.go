package domain

import "cmp"

// Sized is anything that can report how many elements it holds.
type Sized interface {
	Len() int
}

// CompareBySize orders two collections by their number of elements.
func CompareBySize(a, b Sized) int {
	return cmp.Compare(a.Len(), b.Len())
}

// ComparableCollection is a slice that orders itself against any other collection by size.
type ComparableCollection[E any] []E

// Len returns the number of elements.
func (c ComparableCollection[E]) Len() int {
	return len(c)
}

// Compare orders c relative to other by size.
func (c ComparableCollection[E]) Compare(other Sized) int {
	return CompareBySize(c, other)
}
