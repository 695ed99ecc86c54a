package Lists

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valuesOf(l *LinkedList[int]) []int {
	var vs []int
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

func TestLinkedList_Add(t *testing.T) {
	t.Run("add first to empty list", func(t *testing.T) {
		// Prepare
		l := New[int]()

		// Execute
		l.AddFirst(1)

		// Check
		require.NotNil(t, l.Head(), "head is set")
		assert.Equal(t, 1, l.Head().Value, "head holds the value")
		assert.Nil(t, l.Head().Next(), "single node has no next")
		assert.Equal(t, 1, l.Size())
	})

	t.Run("add first prepends", func(t *testing.T) {
		// Prepare
		l := New(2, 3)

		// Execute
		l.AddFirst(1)

		// Check
		assert.Equal(t, []int{1, 2, 3}, valuesOf(l))
	})

	t.Run("add last appends", func(t *testing.T) {
		// Prepare
		l := New[int]()

		// Execute
		l.AddLast(1)
		l.AddLast(2)
		l.AddFirst(0)
		l.AddLast(3)

		// Check
		assert.Equal(t, []int{0, 1, 2, 3}, valuesOf(l))
		assert.Equal(t, 4, l.Size())
	})
}

func TestLinkedList_Insert(t *testing.T) {
	tests := []struct {
		name   string
		before bool
		key    int
		want   []int
	}{
		{name: "before head", before: true, key: 1, want: []int{9, 1, 2, 3}},
		{name: "before middle", before: true, key: 2, want: []int{1, 9, 2, 3}},
		{name: "before tail", before: true, key: 3, want: []int{1, 2, 9, 3}},
		{name: "before missing", before: true, key: 7, want: []int{1, 2, 3}},
		{name: "after head", key: 1, want: []int{1, 9, 2, 3}},
		{name: "after tail", key: 3, want: []int{1, 2, 3, 9}},
		{name: "after missing", key: 7, want: []int{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Prepare
			l := New(1, 2, 3)

			// Execute
			if test.before {
				l.InsertBefore(test.key, 9)
			} else {
				l.InsertAfter(test.key, 9)
			}

			// Check
			assert.Equal(t, test.want, valuesOf(l))
			assert.Equal(t, len(test.want), l.Size())
		})
	}

	t.Run("insert matches first occurrence only", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 1)

		// Execute
		l.InsertAfter(1, 9)
		l.InsertBefore(1, 8)

		// Check
		assert.Equal(t, []int{8, 1, 9, 2, 1}, valuesOf(l))
	})

	t.Run("insert after tail keeps add last working", func(t *testing.T) {
		// Prepare
		l := New(1)

		// Execute
		l.InsertAfter(1, 2)
		l.AddLast(3)

		// Check
		assert.Equal(t, []int{1, 2, 3}, valuesOf(l))
	})

	t.Run("insert into empty list is a no-op", func(t *testing.T) {
		// Prepare
		l := New[int]()

		// Execute
		l.InsertBefore(1, 2)
		l.InsertAfter(1, 2)

		// Check
		assert.True(t, l.Empty())
	})
}

func TestLinkedList_Delete(t *testing.T) {
	t.Run("delete removes first match only", func(t *testing.T) {
		// Prepare
		l := New(1, 2, 1, 3)

		// Execute
		removed := l.Delete(1)

		// Check
		assert.True(t, removed)
		assert.Equal(t, []int{2, 1, 3}, valuesOf(l))
	})

	t.Run("delete missing value is silent", func(t *testing.T) {
		// Prepare
		l := New(1, 2)

		// Execute
		removed := l.Delete(5)

		// Check
		assert.False(t, removed)
		assert.Equal(t, []int{1, 2}, valuesOf(l))
		assert.Equal(t, 2, l.Size())
	})

	t.Run("delete tail keeps add last working", func(t *testing.T) {
		// Prepare
		l := New(1, 2)

		// Execute
		l.Delete(2)
		l.AddLast(3)

		// Check
		assert.Equal(t, []int{1, 3}, valuesOf(l))
	})

	t.Run("delete last node empties list", func(t *testing.T) {
		// Prepare
		l := New(1)

		// Execute
		l.Delete(1)
		l.AddLast(2)

		// Check
		assert.Equal(t, []int{2}, valuesOf(l))
	})

	t.Run("remove first", func(t *testing.T) {
		// Prepare
		l := New(1, 2)

		// Execute
		v1, ok1 := l.RemoveFirst()
		v2, ok2 := l.RemoveFirst()
		_, ok3 := l.RemoveFirst()

		// Check
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.False(t, ok3)
		assert.Equal(t, 1, v1)
		assert.Equal(t, 2, v2)
		assert.True(t, l.Empty())
	})
}

func TestLinkedList_Search(t *testing.T) {
	l := New(1, 2, 3)
	assert.True(t, l.Search(2))
	assert.False(t, l.Search(4))
	assert.False(t, New[int]().Search(1))

	v, ok := l.Find(func(x int) bool { return x > 1 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestLinkedList_Traverse(t *testing.T) {
	// Prepare
	l := New(1, 2, 3)
	sum := 0

	// Execute
	l.Traverse(func(v int) { sum += v })

	// Check
	assert.Equal(t, 6, sum)
}

func TestLinkedList_Clone(t *testing.T) {
	// Prepare
	l := New(1, 2, 3)

	// Execute
	c := l.Clone()
	c.AddLast(4)
	l.Delete(1)

	// Check
	assert.Equal(t, []int{2, 3}, valuesOf(l))
	assert.Equal(t, []int{1, 2, 3, 4}, valuesOf(c))
	assert.NotSame(t, l.Head(), c.Head())
}

func TestLinkedList_Clear(t *testing.T) {
	l := New(1, 2, 3)
	l.Clear()
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Size())
	assert.Empty(t, valuesOf(l))
	l.AddLast(1)
	assert.Equal(t, []int{1}, valuesOf(l))
}

func TestLinkedList_Func(t *testing.T) {
	// Prepare
	l := NewFunc(strings.EqualFold, "a", "B", "c")

	// Execute
	l.Delete("b")

	// Check
	assert.Equal(t, []string{"a", "c"}, l.Values())
	assert.True(t, l.Search("C"))
	assert.Equal(t, "LinkedList[a -> c]", l.String())
}

// TestLinkedList_Random replays random operations on a gods singly linked list.
func TestLinkedList_NilEq(t *testing.T) {
	// Prepare
	l := NewFunc[int](nil, 1, 2, 3)

	// Execute
	found := l.Search(2)
	deleted := l.Delete(2)
	l.InsertBefore(2, 9)
	l.InsertAfter(2, 9)

	// Check
	assert.False(t, found)
	assert.False(t, deleted)
	assert.Equal(t, []int{1, 2, 3}, valuesOf(l))
	v, ok := l.RemoveFirst()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	l.AddLast(4)
	assert.Equal(t, []int{2, 3, 4}, valuesOf(l))
}

func TestLinkedList_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	l := New[int]()
	ref := singlylinkedlist.New()
	for range 5000 {
		v := rg.Intn(50)
		switch rg.Intn(5) {
		case 0:
			l.AddFirst(v)
			ref.Prepend(v)
		case 1:
			l.AddLast(v)
			ref.Add(v)
		case 2:
			key := rg.Intn(50)
			l.InsertBefore(key, v)
			if i := ref.IndexOf(key); i >= 0 {
				ref.Insert(i, v)
			}
		case 3:
			key := rg.Intn(50)
			l.InsertAfter(key, v)
			if i := ref.IndexOf(key); i >= 0 {
				ref.Insert(i+1, v)
			}
		case 4:
			l.Delete(v)
			if i := ref.IndexOf(v); i >= 0 {
				ref.Remove(i)
			}
		}
		require.Equal(t, ref.Size(), l.Size(), "sizes agree")
	}
	want := make([]int, 0, ref.Size())
	for _, v := range ref.Values() {
		want = append(want, v.(int))
	}
	assert.Equal(t, want, l.Values())
}
