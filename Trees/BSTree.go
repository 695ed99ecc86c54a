package Trees

import (
	"iter"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	_ Tree[int]                = (*BSTree[int])(nil)
	_ DataStructures.Container = (*BSTree[int])(nil)
)

// BSTree is an unbalanced binary search tree. It never rebalances, so sorted input degrades it
// into a chain. The zero value is an empty tree.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	sz   int
}

// New tree with values inserted in order.
func New[T constraints.Ordered](values ...T) *BSTree[T] {
	u := new(BSTree[T])
	for _, v := range values {
		u.Insert(v)
	}
	return u
}

// Root node, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Insert v. The first value becomes the root.
func (u *BSTree[T]) Insert(v T) {
	if u.root == nil {
		u.root = NewNode(v)
	} else {
		u.root.Insert(v)
	}
	u.sz++
}

// Search for v.
func (u *BSTree[T]) Search(v T) (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.Search(v)
}

// Has element v.
func (u *BSTree[T]) Has(v T) bool {
	_, ok := u.Search(v)
	return ok
}

// Delete one occurrence of v. The error is DataStructures.ValueNotFound if the tree is empty or
// doesn't hold v.
func (u *BSTree[T]) Delete(v T) (err error) {
	if u.root == nil {
		return errors.Wrapf(DataStructures.ValueNotFound{}, "value %v in empty tree", v)
	}
	if u.root, err = u.root.Delete(v); err == nil {
		u.sz--
	}
	return
}

// Smallest element of the tree.
func (u *BSTree[T]) Smallest() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.Smallest(), true
}

// Largest element of the tree.
func (u *BSTree[T]) Largest() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.Largest(), true
}

// InOrder values, ascending.
func (u *BSTree[T]) InOrder() iter.Seq[T] {
	if u.root == nil {
		return func(func(T) bool) {}
	}
	return u.root.InOrder()
}

// Values in ascending order as a slice.
func (u *BSTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	for v := range u.InOrder() {
		vs = append(vs, v)
	}
	return vs
}

// Height of the tree, 0 when empty.
func (u *BSTree[T]) Height() int {
	if u.root == nil {
		return 0
	}
	return u.root.Height()
}

// Size of the tree.
func (u *BSTree[T]) Size() int {
	return u.sz
}

// Empty reports whether the tree has no elements.
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear the tree.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}
