package Trees

import "iter"

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Smallest on
// an empty tree returns (x T, false). In this case x is the zero value
// and shouldn't be used.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any] interface {
	//Insert v into the Tree. Duplicates are kept.
	Insert(v T)
	//Delete one occurrence of v from the Tree. The error is
	//DataStructures.ValueNotFound if v isn't in the tree.
	Delete(v T) error
	//Search for v, returning the stored value equal to v.
	Search(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Smallest element of the tree.
	Smallest() (T, bool)
	//Largest element of the tree.
	Largest() (T, bool)
	//Size of the tree.
	Size() int
	//InOrder returns the values in ascending order.
	//The tree must not be modified while ranging over the sequence.
	InOrder() iter.Seq[T]
}
