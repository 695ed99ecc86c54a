package Stacks

import (
	"iter"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/jdkandersson/algorithms-data-structures/Lists"
	"github.com/pkg/errors"
)

var _ DataStructures.Container = (*Stack[int])(nil)

// Stack is a last in first out container. The top of the stack is the head of a linked list.
type Stack[T any] struct {
	l *Lists.LinkedList[T]
}

// New stack with values pushed in order, so the last value is on top.
func New[T any](values ...T) *Stack[T] {
	s := &Stack[T]{Lists.NewFunc[T](nil)}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push v on top.
func (u *Stack[T]) Push(v T) {
	u.l.AddFirst(v)
}

// Pop the top value. The error is DataStructures.StackEmptyError if the stack is empty.
func (u *Stack[T]) Pop() (T, error) {
	v, ok := u.l.RemoveFirst()
	if !ok {
		return v, errors.Wrap(DataStructures.StackEmptyError{}, "pop")
	}
	return v, nil
}

// Peek at the top value without removing it.
func (u *Stack[T]) Peek() (T, error) {
	v, ok := u.l.First()
	if !ok {
		return v, errors.Wrap(DataStructures.StackEmptyError{}, "peek")
	}
	return v, nil
}

func (u *Stack[T]) Empty() bool {
	return u.l.Empty()
}

func (u *Stack[T]) Size() int {
	return u.l.Size()
}

func (u *Stack[T]) Clear() {
	u.l.Clear()
}

// All values from top to bottom.
func (u *Stack[T]) All() iter.Seq[T] {
	return u.l.All()
}
