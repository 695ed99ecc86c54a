package DataStructures

// InvalidArgument - Custom error to inform that a constructor received a parameter it can't work with
type InvalidArgument struct{}

// Error - Used to notify that an argument was invalid
func (E InvalidArgument) Error() string {
	return "invalid argument"
}

// KeyNotFound - Custom error to inform that a key isn't stored in a map or set
type KeyNotFound struct{}

// Error - Used to notify that no key was found
func (E KeyNotFound) Error() string {
	return "key not found"
}

// ValueNotFound - Custom error to inform that a value isn't stored in a tree
type ValueNotFound struct{}

// Error - Used to notify that no value was found
func (E ValueNotFound) Error() string {
	return "value not found"
}

// QueueEmptyError - Custom error to inform that a queue has nothing to dequeue or peek
type QueueEmptyError struct{}

// Error - Used to notify that the queue is empty
func (E QueueEmptyError) Error() string {
	return "queue is empty"
}

// QueueFullError - Custom error to inform that a bounded queue can't take more values
type QueueFullError struct{}

// Error - Used to notify that the queue is full
func (E QueueFullError) Error() string {
	return "queue is full"
}

// StackEmptyError - Custom error to inform that a stack has nothing to pop or peek
type StackEmptyError struct{}

// Error - Used to notify that the stack is empty
func (E StackEmptyError) Error() string {
	return "stack is empty"
}
