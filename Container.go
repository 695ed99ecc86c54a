package DataStructures

// Container is the base interface that every data structure in this module implements.
type Container interface {
	// Empty reports whether the container holds no values.
	Empty() bool
	// Size is the number of values held.
	Size() int
	// Clear removes every value. Capacities chosen at construction are kept.
	Clear()
}
