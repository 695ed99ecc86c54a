package Lists

import (
	"fmt"
	"iter"
	"strings"

	DataStructures "github.com/jdkandersson/algorithms-data-structures"
)

var _ DataStructures.Container = (*LinkedList[int])(nil)

// Node of a singly linked list. A node exclusively owns the node after it.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next node, nil at the end of the list.
func (u *Node[T]) Next() *Node[T] {
	return u.next
}

// LinkedList is a singly linked list. Values are matched through the equality function
// given at construction; New uses ==.
// The zero value is not usable, create lists with New or NewFunc.
type LinkedList[T any] struct {
	head, tail *Node[T]
	sz         int
	// eq is nil for lists used only by position, then no value matches.
	eq func(a, b T) bool
}

// New list of comparable values, filled with values in order.
func New[T comparable](values ...T) *LinkedList[T] {
	return NewFunc(func(a, b T) bool { return a == b }, values...)
}

// NewFunc creates a list that matches values with eq, filled with values in order.
// With a nil eq, Search, Delete, InsertBefore and InsertAfter find nothing.
func NewFunc[T any](eq func(a, b T) bool, values ...T) *LinkedList[T] {
	l := &LinkedList[T]{eq: eq}
	for _, v := range values {
		l.AddLast(v)
	}
	return l
}

func (u *LinkedList[T]) equal(a, b T) bool {
	return u.eq != nil && u.eq(a, b)
}

// Head node, nil if the list is empty.
func (u *LinkedList[T]) Head() *Node[T] {
	return u.head
}

// AddFirst puts v in front of the list.
func (u *LinkedList[T]) AddFirst(v T) {
	u.head = &Node[T]{v, u.head}
	if u.tail == nil {
		u.tail = u.head
	}
	u.sz++
}

// AddLast appends v to the list.
func (u *LinkedList[T]) AddLast(v T) {
	n := &Node[T]{Value: v}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
}

// InsertBefore puts v in front of the first value matching key. Does nothing if key isn't in the list.
func (u *LinkedList[T]) InsertBefore(key, v T) {
	if u.head == nil {
		return
	}
	if u.equal(u.head.Value, key) {
		u.AddFirst(v)
		return
	}
	for pre := u.head; pre.next != nil; pre = pre.next {
		if u.equal(pre.next.Value, key) {
			pre.next = &Node[T]{v, pre.next}
			u.sz++
			return
		}
	}
}

// InsertAfter puts v behind the first value matching key. Does nothing if key isn't in the list.
func (u *LinkedList[T]) InsertAfter(key, v T) {
	for cur := u.head; cur != nil; cur = cur.next {
		if u.equal(cur.Value, key) {
			cur.next = &Node[T]{v, cur.next}
			if u.tail == cur {
				u.tail = cur.next
			}
			u.sz++
			return
		}
	}
}

// Delete the first value matching v. A missing value is not an error, the returned bool tells
// whether a node was removed.
func (u *LinkedList[T]) Delete(v T) bool {
	_, ok := u.DeleteFunc(func(x T) bool { return u.equal(x, v) })
	return ok
}

// DeleteFunc removes the first value for which f returns true and returns it.
func (u *LinkedList[T]) DeleteFunc(f func(T) bool) (v T, ok bool) {
	var pre *Node[T]
	for cur := u.head; cur != nil; pre, cur = cur, cur.next {
		if f(cur.Value) {
			if pre == nil {
				u.head = cur.next
			} else {
				pre.next = cur.next
			}
			if u.tail == cur {
				u.tail = pre
			}
			u.sz--
			return cur.Value, true
		}
	}
	return
}

// RemoveFirst takes the value in front of the list. ok is false if the list is empty.
func (u *LinkedList[T]) RemoveFirst() (v T, ok bool) {
	if u.head == nil {
		return
	}
	n := u.head
	u.head = n.next
	if u.head == nil {
		u.tail = nil
	}
	u.sz--
	return n.Value, true
}

// First value of the list. ok is false if the list is empty.
func (u *LinkedList[T]) First() (v T, ok bool) {
	if u.head == nil {
		return
	}
	return u.head.Value, true
}

// Search reports whether v is in the list.
func (u *LinkedList[T]) Search(v T) bool {
	_, ok := u.Find(func(x T) bool { return u.equal(x, v) })
	return ok
}

// Find the first value for which f returns true.
func (u *LinkedList[T]) Find(f func(T) bool) (v T, ok bool) {
	for cur := u.head; cur != nil; cur = cur.next {
		if f(cur.Value) {
			return cur.Value, true
		}
	}
	return
}

// Traverse calls f on every value in order.
func (u *LinkedList[T]) Traverse(f func(T)) {
	for cur := u.head; cur != nil; cur = cur.next {
		f(cur.Value)
	}
}

// All values from head to tail. The list must not be modified while ranging over the sequence.
func (u *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := u.head; cur != nil; cur = cur.next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Clone returns a list with new nodes holding the same values.
func (u *LinkedList[T]) Clone() *LinkedList[T] {
	c := &LinkedList[T]{eq: u.eq}
	u.Traverse(c.AddLast)
	return c
}

// Clear the list.
func (u *LinkedList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// Size of the list.
func (u *LinkedList[T]) Size() int {
	return u.sz
}

// Empty reports whether the list has no nodes.
func (u *LinkedList[T]) Empty() bool {
	return u.head == nil
}

// Values in order as a slice.
func (u *LinkedList[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	u.Traverse(func(v T) { vs = append(vs, v) })
	return vs
}

func (u *LinkedList[T]) String() string {
	b := strings.Builder{}
	b.WriteString("LinkedList[")
	first := true
	u.Traverse(func(v T) {
		if !first {
			b.WriteString(" -> ")
		}
		first = false
		fmt.Fprint(&b, v)
	})
	b.WriteString("]")
	return b.String()
}
