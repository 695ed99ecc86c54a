package Queues

import (
	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/jdkandersson/algorithms-data-structures/Lists"
	"github.com/pkg/errors"
)

var _ Queue[int] = (*LinkedQueue[int])(nil)

// LinkedQueue is an unbounded queue, items enter at the tail of a linked list and leave from its head.
type LinkedQueue[T any] struct {
	l *Lists.LinkedList[T]
}

func MakeLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{Lists.NewFunc[T](nil)}
}

// Enqueue never fails.
func (this *LinkedQueue[T]) Enqueue(item T) error {
	this.l.AddLast(item)
	return nil
}

func (this *LinkedQueue[T]) Dequeue() (T, error) {
	v, ok := this.l.RemoveFirst()
	if !ok {
		return v, errors.Wrap(DataStructures.QueueEmptyError{}, "dequeue")
	}
	return v, nil
}

func (this *LinkedQueue[T]) Peek() (T, error) {
	v, ok := this.l.First()
	if !ok {
		return v, errors.Wrap(DataStructures.QueueEmptyError{}, "peek")
	}
	return v, nil
}

func (this *LinkedQueue[T]) Front() (T, error) {
	return this.Peek()
}

func (this *LinkedQueue[T]) Empty() bool {
	return this.l.Empty()
}

func (this *LinkedQueue[T]) Size() int {
	return this.l.Size()
}

func (this *LinkedQueue[T]) Clear() {
	this.l.Clear()
}

// Values from front to back.
func (this *LinkedQueue[T]) Values() []T {
	return this.l.Values()
}
