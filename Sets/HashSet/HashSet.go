package HashSet

import (
	"fmt"
	"iter"
	"strings"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
	"github.com/jdkandersson/algorithms-data-structures/Maps"
	"github.com/jdkandersson/algorithms-data-structures/Sets"
)

var (
	_ Sets.Set[int]            = (*HashSet[int])(nil)
	_ DataStructures.Container = (*HashSet[int])(nil)
)

// present marks a key as a member. It takes no space in the buckets.
type present struct{}

// HashSet stores its elements as the keys of a Maps.HashMap, so it resizes the same way.
type HashSet[E comparable] struct {
	m *Maps.HashMap[E, present]
}

// New empty set with capacity buckets. The capacity rules and options are those of Maps.New.
func New[E comparable](capacity int, options ...Maps.Option) (*HashSet[E], error) {
	m, err := Maps.New[E, present](capacity, options...)
	if err != nil {
		return nil, err
	}
	return &HashSet[E]{m}, nil
}

// From returns a set with capacity buckets holding the elements of source.
func From[E comparable](capacity int, source []E, options ...Maps.Option) (*HashSet[E], error) {
	u, err := New[E](capacity, options...)
	if err != nil {
		return nil, err
	}
	for _, e := range source {
		u.Add(e)
	}
	return u, nil
}

// Add e to the set. Adding an element twice keeps one copy.
func (u *HashSet[E]) Add(e E) {
	u.m.Set(e, present{})
}

// Delete e from the set. The error is DataStructures.KeyNotFound if e isn't in the set.
func (u *HashSet[E]) Delete(e E) error {
	_, err := u.m.Delete(e)
	return err
}

// Contains reports whether e is in the set.
func (u *HashSet[E]) Contains(e E) bool {
	return u.m.Exists(e)
}

// Size of the set.
func (u *HashSet[E]) Size() int {
	return u.m.Size()
}

// Capacity is the number of buckets of the backing map.
func (u *HashSet[E]) Capacity() int {
	return u.m.Capacity()
}

// Empty reports whether the set has no elements.
func (u *HashSet[E]) Empty() bool {
	return u.m.Empty()
}

// All elements in the bucket order of the backing map.
func (u *HashSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range u.m.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Values of the set as a slice.
func (u *HashSet[E]) Values() []E {
	return u.m.Keys()
}

// Clear the set.
func (u *HashSet[E]) Clear() {
	u.m.Clear()
}

// Clone returns an independent set with the same elements.
func (u *HashSet[E]) Clone() *HashSet[E] {
	return &HashSet[E]{u.m.Clone()}
}

func (u *HashSet[E]) String() string {
	b := strings.Builder{}
	b.WriteString("HashSet{")
	first := true
	for e := range u.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, e)
	}
	b.WriteString("}")
	return b.String()
}
