package Trees

import (
	"iter"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Node of a binary search tree. A node exclusively owns its children. Values equal to the
// node's value go to the left subtree, greater values go to the right one.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T constraints.Ordered](v T) *Node[T] {
	return &Node[T]{v: v}
}

// Value of the node.
func (u *Node[T]) Value() T {
	return u.v
}

// Left child, nil if absent.
func (u *Node[T]) Left() *Node[T] {
	return u.l
}

// Right child, nil if absent.
func (u *Node[T]) Right() *Node[T] {
	return u.r
}

// Insert v as a new leaf of the subtree rooted at u.
func (u *Node[T]) Insert(v T) {
	for cur := u; ; {
		if v > cur.v {
			if cur.r == nil {
				cur.r = NewNode(v)
				return
			}
			cur = cur.r
		} else {
			if cur.l == nil {
				cur.l = NewNode(v)
				return
			}
			cur = cur.l
		}
	}
}

// Search the subtree rooted at u for v.
func (u *Node[T]) Search(v T) (T, bool) {
	for cur := u; cur != nil; {
		if v == cur.v {
			return cur.v, true
		} else if v > cur.v {
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return *new(T), false
}

// Smallest value of the subtree rooted at u, its leftmost node.
func (u *Node[T]) Smallest() T {
	cur := u
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v
}

// Largest value of the subtree rooted at u, its rightmost node.
func (u *Node[T]) Largest() T {
	cur := u
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v
}

// Delete v from the subtree rooted at u and return the new root of the subtree, which is nil
// when the subtree became empty. A node with two children takes the value of its in-order
// successor, which is then deleted from the right subtree.
// If v isn't found the subtree is unchanged, u is returned and the error is DataStructures.ValueNotFound.
// Implemented recursively, the depth is the height of the subtree.
func (u *Node[T]) Delete(v T) (*Node[T], error) {
	var err error
	switch {
	case v == u.v:
		switch {
		case u.l == nil:
			return u.r, nil
		case u.r == nil:
			return u.l, nil
		}
		u.v = u.r.Smallest()
		u.r, err = u.r.Delete(u.v)
	case v > u.v:
		if u.r == nil {
			return u, errors.Wrapf(DataStructures.ValueNotFound{}, "value %v", v)
		}
		u.r, err = u.r.Delete(v)
	default:
		if u.l == nil {
			return u, errors.Wrapf(DataStructures.ValueNotFound{}, "value %v", v)
		}
		u.l, err = u.l.Delete(v)
	}
	return u, err
}

// InOrder values of the subtree rooted at u, left, self then right, using an explicit stack.
func (u *Node[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var st []*Node[T]
		for cur := u; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		for len(st) > 0 {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			for cur = cur.r; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
		}
	}
}

// Height of the subtree rooted at u, a leaf has height 1. Implemented with a level order walk.
func (u *Node[T]) Height() int {
	h := 0
	for level := []*Node[T]{u}; len(level) > 0; h++ {
		var next []*Node[T]
		for _, n := range level {
			if n.l != nil {
				next = append(next, n.l)
			}
			if n.r != nil {
				next = append(next, n.r)
			}
		}
		level = next
	}
	return h
}
