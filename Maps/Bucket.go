package Maps

import (
	"iter"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/jdkandersson/algorithms-data-structures/Lists"
	"github.com/pkg/errors"
)

// Bucket is a chain of pairs backed by a singly linked list. The most recently inserted pair
// comes first and a key is stored at most once.
type Bucket[K comparable, V any] struct {
	list *Lists.LinkedList[Pair[K, V]]
}

// NewBucket returns an empty bucket.
func NewBucket[K comparable, V any]() *Bucket[K, V] {
	return &Bucket[K, V]{Lists.NewFunc(func(a, b Pair[K, V]) bool { return a.Key == b.Key })}
}

// Insert key and value at the front of the bucket, replacing any pair already stored for key.
// Returns true if key wasn't in the bucket before.
func (u *Bucket[K, V]) Insert(key K, val V) bool {
	existed := u.list.Delete(Pair[K, V]{Key: key})
	u.list.AddFirst(Pair[K, V]{key, val})
	return !existed
}

// appendPair puts a pair for a key known to be absent at the back of the bucket.
func (u *Bucket[K, V]) appendPair(key K, val V) {
	u.list.AddLast(Pair[K, V]{key, val})
}

func (u *Bucket[K, V]) find(key K) (Pair[K, V], bool) {
	return u.list.Find(func(p Pair[K, V]) bool { return p.Key == key })
}

// Get the value of key. The error is KeyNotFound if key isn't in the bucket.
func (u *Bucket[K, V]) Get(key K) (val V, err error) {
	p, ok := u.find(key)
	if !ok {
		err = errors.Wrapf(DataStructures.KeyNotFound{}, "key %v", key)
		return
	}
	return p.Value, nil
}

// Exists reports whether key is in the bucket.
func (u *Bucket[K, V]) Exists(key K) bool {
	_, ok := u.find(key)
	return ok
}

// Delete key from the bucket and return its value. The error is KeyNotFound if key isn't in the bucket.
func (u *Bucket[K, V]) Delete(key K) (val V, err error) {
	p, ok := u.list.DeleteFunc(func(p Pair[K, V]) bool { return p.Key == key })
	if !ok {
		err = errors.Wrapf(DataStructures.KeyNotFound{}, "key %v", key)
		return
	}
	return p.Value, nil
}

// All pairs, most recently inserted first.
func (u *Bucket[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range u.list.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Clear the bucket.
func (u *Bucket[K, V]) Clear() {
	u.list.Clear()
}

// Empty reports whether the bucket holds no pairs.
func (u *Bucket[K, V]) Empty() bool {
	return u.list.Empty()
}

// Size is the chain length of the bucket.
func (u *Bucket[K, V]) Size() int {
	return u.list.Size()
}

func (u *Bucket[K, V]) clone() *Bucket[K, V] {
	return &Bucket[K, V]{u.list.Clone()}
}
