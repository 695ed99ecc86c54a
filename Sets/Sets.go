package Sets

import "iter"

// Set of distinct elements.
type Set[E any] interface {
	Add(E)
	Delete(E) error
	Contains(E) bool
	Size() int
	Empty() bool
	All() iter.Seq[E]
	Clear()
}
