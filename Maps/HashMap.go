/*
Package Maps implements a separate chaining hash map with load factor driven resizing.

# Buckets
Every bucket is a singly linked list of pairs. Keys landing on the same index share a bucket and
are told apart by ==, so collisions never surface to callers.

# Resizing
The backing array doubles before a Set that finds the load factor (size/capacity) at or above 0.75,
and halves before a Delete that finds size/(capacity/2) at or below 0.75. Both rehash every pair.
Shrinking is measured against the halved capacity, which keeps the load factor roughly within
[0.375, 0.75].
Capacity never drops below MinCapacity and always stays even.

# Usage
Maps are not safe for concurrent use. Mutating a map while ranging over All is undefined.
*/
package Maps

import (
	"fmt"
	"iter"
	"strings"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/pkg/errors"
)

// MinCapacity is the smallest number of buckets a HashMap can have.
const MinCapacity = 16

var (
	_ DataStructures.Container = (*HashMap[int, int])(nil)
	_ Map[int, int]            = (*HashMap[int, int])(nil)
)

// HashMap from K to V. Create it with New or From.
type HashMap[K comparable, V any] struct {
	buckets []*Bucket[K, V]
	size    int
	hasher  DataStructures.Hasher
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Size is the number of stored pairs
//   - Capacity is the number of buckets
//   - LoadFactor is Size/Capacity
//   - UsedBuckets is the number of buckets holding at least one pair
//   - LongestChain is the size of the fullest bucket
//   - BucketDistribution is the number of pairs in each bucket, nil unless requested
type Stat struct {
	Size               int
	Capacity           int
	LoadFactor         float64
	UsedBuckets        int
	LongestChain       int
	BucketDistribution []int
}

func makeBuckets[K comparable, V any](capacity int) []*Bucket[K, V] {
	buckets := make([]*Bucket[K, V], capacity)
	for i := range buckets {
		buckets[i] = NewBucket[K, V]()
	}
	return buckets
}

// New returns an empty map with capacity buckets.
// capacity must be even and at least MinCapacity, otherwise the error is InvalidArgument.
func New[K comparable, V any](capacity int, options ...Option) (*HashMap[K, V], error) {
	if capacity < MinCapacity {
		return nil, errors.Wrapf(DataStructures.InvalidArgument{}, "capacity %d is below %d", capacity, MinCapacity)
	}
	if capacity%2 != 0 {
		return nil, errors.Wrapf(DataStructures.InvalidArgument{}, "capacity %d is odd", capacity)
	}
	return &HashMap[K, V]{buckets: makeBuckets[K, V](capacity), hasher: loadOptions(options...).Hasher}, nil
}

// From returns a map with capacity buckets holding the pairs of source, set in order.
// The map may resize while it is filled.
func From[K comparable, V any](capacity int, source []Pair[K, V], options ...Option) (*HashMap[K, V], error) {
	m, err := New[K, V](capacity, options...)
	if err != nil {
		return nil, err
	}
	for _, p := range source {
		m.Set(p.Key, p.Value)
	}
	return m, nil
}

// BucketNo returns the index of the bucket key belongs to at the current capacity.
func (u *HashMap[K, V]) BucketNo(key K) int {
	return u.hasher.Index(DataStructures.KeyBytes(key), len(u.buckets))
}

func (u *HashMap[K, V]) bucket(key K) *Bucket[K, V] {
	return u.buckets[u.BucketNo(key)]
}

// resize rehashes every pair into capacity new buckets. Pairs are appended in the order they are
// read, so pairs that shared a bucket keep their most recent first order. A shrink merges two
// buckets into one, the pairs of the lower bucket come first.
func (u *HashMap[K, V]) resize(capacity int) {
	old := u.buckets
	u.buckets = makeBuckets[K, V](capacity)
	for _, b := range old {
		for k, v := range b.All() {
			u.bucket(k).appendPair(k, v)
		}
	}
}

func (u *HashMap[K, V]) shouldGrow() bool {
	return 4*u.size >= 3*len(u.buckets)
}

func (u *HashMap[K, V]) shouldShrink() bool {
	half := len(u.buckets) >> 1
	return half >= MinCapacity && half%2 == 0 && 8*u.size <= 3*len(u.buckets)
}

// Set key to val, overwriting the previous value of key.
func (u *HashMap[K, V]) Set(key K, val V) {
	if u.shouldGrow() {
		u.resize(len(u.buckets) << 1)
	}
	if u.bucket(key).Insert(key, val) {
		u.size++
	}
}

// Get the value of key. The error is KeyNotFound if key isn't in the map.
func (u *HashMap[K, V]) Get(key K) (V, error) {
	return u.bucket(key).Get(key)
}

// Exists reports whether key is in the map.
func (u *HashMap[K, V]) Exists(key K) bool {
	return u.bucket(key).Exists(key)
}

// Delete key and return its value. The error is KeyNotFound if key isn't in the map, in which
// case the map is left untouched.
func (u *HashMap[K, V]) Delete(key K) (val V, err error) {
	if !u.Exists(key) {
		err = errors.Wrapf(DataStructures.KeyNotFound{}, "key %v", key)
		return
	}
	if u.shouldShrink() {
		u.resize(len(u.buckets) >> 1)
	}
	if val, err = u.bucket(key).Delete(key); err == nil {
		u.size--
	}
	return
}

// All pairs in bucket order, most recently set first within a bucket.
// Each call returns a new sequence.
func (u *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range u.buckets {
			for k, v := range b.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Keys in the order of All.
func (u *HashMap[K, V]) Keys() []K {
	ks := make([]K, 0, u.size)
	for k := range u.All() {
		ks = append(ks, k)
	}
	return ks
}

// Values in the order of All.
func (u *HashMap[K, V]) Values() []V {
	vs := make([]V, 0, u.size)
	for _, v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

// Clear removes every pair. The capacity is kept.
func (u *HashMap[K, V]) Clear() {
	for _, b := range u.buckets {
		b.Clear()
	}
	u.size = 0
}

// Clone returns an independent map with the same capacity, hasher and pairs.
func (u *HashMap[K, V]) Clone() *HashMap[K, V] {
	c := &HashMap[K, V]{buckets: make([]*Bucket[K, V], len(u.buckets)), size: u.size, hasher: u.hasher}
	for i, b := range u.buckets {
		c.buckets[i] = b.clone()
	}
	return c
}

// Size is the number of keys in the map.
func (u *HashMap[K, V]) Size() int {
	return u.size
}

// Capacity is the number of buckets.
func (u *HashMap[K, V]) Capacity() int {
	return len(u.buckets)
}

// Empty reports whether the map has no keys.
func (u *HashMap[K, V]) Empty() bool {
	return u.size == 0
}

// Stat walks through every bucket and summarises how pairs are spread over them.
//   - includeDistribution set to true fills Stat.BucketDistribution with one entry per bucket.
func (u *HashMap[K, V]) Stat(includeDistribution bool) Stat {
	s := Stat{Size: u.size, Capacity: len(u.buckets), LoadFactor: float64(u.size) / float64(len(u.buckets))}
	if includeDistribution {
		s.BucketDistribution = make([]int, len(u.buckets))
	}
	for i, b := range u.buckets {
		n := b.Size()
		if n > 0 {
			s.UsedBuckets++
		}
		s.LongestChain = max(s.LongestChain, n)
		if includeDistribution {
			s.BucketDistribution[i] = n
		}
	}
	return s
}

func (u *HashMap[K, V]) String() string {
	b := strings.Builder{}
	b.WriteString("HashMap{")
	first := true
	for k, v := range u.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", k, v)
	}
	b.WriteString("}")
	return b.String()
}
