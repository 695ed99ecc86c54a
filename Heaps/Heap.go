package Heaps

import (
	"iter"
	"slices"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"golang.org/x/exp/constraints"
)

var _ DataStructures.Container = (*Heap[int])(nil)

// Heap is a binary max-heap stored in a dense slice: the children of i are at 2i+1 and 2i+2.
// Ordering comes from less; equal elements are never swapped.
type Heap[T any] struct {
	list []T
	less func(a, b T) bool
	// sorted is set once Sorted has laid list out in ascending order.
	sorted bool
}

// New heap of ordered values, heapified from values.
func New[T constraints.Ordered](values ...T) *Heap[T] {
	return NewFunc(func(a, b T) bool { return a < b }, values...)
}

// NewFunc creates a heap ordered by less, heapified from values. values is copied.
func NewFunc[T any](less func(a, b T) bool, values ...T) *Heap[T] {
	u := &Heap[T]{list: slices.Clone(values), less: less}
	u.heapify()
	return u
}

// LeftChild index of i. The right child follows it.
func LeftChild(i int) int {
	return 2*i + 1
}

// Parent index of i.
func Parent(i int) int {
	return (i - 1) / 2
}

// siftDown moves the element at start down until both children are not greater.
// The sub heaps rooted at its children must be valid. end is the last index of the heap, inclusive.
func (u *Heap[T]) siftDown(start, end int) {
	for root := start; LeftChild(root) <= end; {
		swap, l := root, LeftChild(root)
		if u.less(u.list[swap], u.list[l]) {
			swap = l
		}
		if r := l + 1; r <= end && u.less(u.list[swap], u.list[r]) {
			swap = r
		}
		if swap == root {
			return
		}
		u.list[root], u.list[swap] = u.list[swap], u.list[root]
		root = swap
	}
}

// siftUp moves the element at end up while it is greater than its parent, never above start.
// The heap in [start, end] must be valid except for the element at end.
func (u *Heap[T]) siftUp(start, end int) {
	for child, parent := end, Parent(end); parent >= start && child > start; child, parent = parent, Parent(parent) {
		if !u.less(u.list[parent], u.list[child]) {
			return
		}
		u.list[parent], u.list[child] = u.list[child], u.list[parent]
	}
}

// heapify sifts down every parent, from the last one to the root.
func (u *Heap[T]) heapify() {
	end := len(u.list) - 1
	for start := Parent(end); start >= 0; start-- {
		u.siftDown(start, end)
	}
	u.sorted = false
}

// restore the heap property if Sorted destroyed it.
func (u *Heap[T]) restore() {
	if u.sorted {
		u.heapify()
	}
}

// Heapify rebuilds the heap property over the current elements.
func (u *Heap[T]) Heapify() {
	u.heapify()
}

// Insert v. O(log n).
func (u *Heap[T]) Insert(v T) {
	u.restore()
	u.list = append(u.list, v)
	u.siftUp(0, len(u.list)-1)
}

// Peek at the greatest element. ok is false if the heap is empty.
func (u *Heap[T]) Peek() (v T, ok bool) {
	if len(u.list) == 0 {
		return
	}
	u.restore()
	return u.list[0], true
}

// Pop removes and returns the greatest element. ok is false if the heap is empty.
func (u *Heap[T]) Pop() (v T, ok bool) {
	if len(u.list) == 0 {
		return
	}
	u.restore()
	last := len(u.list) - 1
	v = u.list[0]
	u.list[0] = u.list[last]
	u.list[last] = *new(T)
	u.list = u.list[:last]
	u.siftDown(0, last-1)
	return v, true
}

// Sorted heap sorts the elements in place and returns them in ascending order.
// The sort happens when Sorted is called; the sequence then reads the sorted slice.
// The heap property is lost, the next Insert, Peek or Pop rebuilds it.
func (u *Heap[T]) Sorted() iter.Seq[T] {
	u.restore()
	for end := len(u.list) - 1; end > 0; end-- {
		u.list[0], u.list[end] = u.list[end], u.list[0]
		u.siftDown(0, end-1)
	}
	u.sorted = true
	return slices.Values(u.list)
}

// Valid reports whether every element is not less than its children.
func (u *Heap[T]) Valid() bool {
	for i := 1; i < len(u.list); i++ {
		if u.less(u.list[Parent(i)], u.list[i]) {
			return false
		}
	}
	return true
}

// Size of the heap.
func (u *Heap[T]) Size() int {
	return len(u.list)
}

// Empty reports whether the heap has no elements.
func (u *Heap[T]) Empty() bool {
	return len(u.list) == 0
}

// Clear the heap.
func (u *Heap[T]) Clear() {
	clear(u.list)
	u.list = u.list[:0]
	u.sorted = false
}

// Values in storage order.
func (u *Heap[T]) Values() []T {
	return slices.Clone(u.list)
}
