package Queues

import DataStructures "github.com/jdkandersson/algorithms-data-structures"

// Queue is a first in first out container. Failing operations leave the queue unchanged.
type Queue[T any] interface {
	DataStructures.Container
	// Enqueue item at the back.
	Enqueue(item T) error
	// Dequeue the item at the front. The error is DataStructures.QueueEmptyError if
	// the queue is empty.
	Dequeue() (T, error)
	// Peek at the front item without removing it.
	Peek() (T, error)
	// Front is Peek.
	Front() (T, error)
}

// DefaultCapacity of an ArrayQueue created with MakeArrayQueue.
const DefaultCapacity = 10
