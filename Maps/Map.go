package Maps

import "iter"

// Pair of a key and its value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is the behaviour shared by the maps of this package.
type Map[K comparable, V any] interface {
	Set(K, V)
	Get(K) (V, error)
	Exists(K) bool
	Delete(K) (V, error)
	All() iter.Seq2[K, V]
	Size() int
	Empty() bool
	Clear()
}
