package Queues

import (
	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/pkg/errors"
)

var _ Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is a bounded queue over a circular array. Enqueue fails once Size reaches
// Capacity; the array is only reallocated by Resize.
type ArrayQueue[T any] struct {
	sz, head, tail int
	content        []T
}

// MakeArrayQueue with DefaultCapacity.
func MakeArrayQueue[T any]() *ArrayQueue[T] {
	q, _ := NewArrayQueue[T](DefaultCapacity)
	return q
}

// NewArrayQueue with room for capacity items. The error is DataStructures.InvalidArgument if
// capacity isn't positive.
func NewArrayQueue[T any](capacity int) (*ArrayQueue[T], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(DataStructures.InvalidArgument{}, "capacity %d, must be positive", capacity)
	}
	return &ArrayQueue[T]{content: make([]T, capacity)}, nil
}

func (this *ArrayQueue[T]) inc(i int) int {
	return (i + 1) % len(this.content)
}

func (this *ArrayQueue[T]) Empty() bool {
	return this.sz == 0
}

// Full reports whether the next Enqueue fails.
func (this *ArrayQueue[T]) Full() bool {
	return this.sz == len(this.content)
}

func (this *ArrayQueue[T]) Size() int {
	return this.sz
}

func (this *ArrayQueue[T]) Capacity() int {
	return len(this.content)
}

// Resize the underlying array to newCap, keeping the queued items in order. The error is
// DataStructures.InvalidArgument if newCap is less than Size or not positive.
func (this *ArrayQueue[T]) Resize(newCap int) error {
	if newCap < 1 || newCap < this.sz {
		return errors.Wrapf(DataStructures.InvalidArgument{}, "capacity %d for %d items", newCap, this.sz)
	}
	nc := make([]T, newCap)
	if this.head+this.sz <= len(this.content) {
		copy(nc, this.content[this.head:this.head+this.sz])
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.sz-n])
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newCap
	return nil
}

// Shrink the array to fit the queued items, keeping room for at least one.
func (this *ArrayQueue[T]) Shrink() {
	_ = this.Resize(max(this.sz, 1))
}

func (this *ArrayQueue[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

// Enqueue item at the back. The error is DataStructures.QueueFullError if Size is Capacity.
func (this *ArrayQueue[T]) Enqueue(item T) error {
	if this.Full() {
		return errors.Wrapf(DataStructures.QueueFullError{}, "capacity %d", len(this.content))
	}
	this.content[this.tail] = item
	this.tail = this.inc(this.tail)
	this.sz++
	return nil
}

func (this *ArrayQueue[T]) Dequeue() (item T, e error) {
	if this.Empty() {
		return *new(T), errors.Wrap(DataStructures.QueueEmptyError{}, "dequeue")
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = this.inc(this.head)
	this.sz--
	return t, nil
}

func (this *ArrayQueue[T]) Peek() (item T, e error) {
	if this.Empty() {
		return *new(T), errors.Wrap(DataStructures.QueueEmptyError{}, "peek")
	}
	return this.content[this.head], nil
}

func (this *ArrayQueue[T]) Front() (T, error) {
	return this.Peek()
}

// Values from front to back.
func (this *ArrayQueue[T]) Values() []T {
	vs := make([]T, this.sz)
	for i, j := 0, this.head; i < this.sz; i, j = i+1, this.inc(j) {
		vs[i] = this.content[j]
	}
	return vs
}
