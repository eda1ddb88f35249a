// Package Queues holds the FIFO containers used by the breadth-first walks
// of the tree packages.
package Queues

// Queue is a first in, first out container.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop the front item. Returns EmptyQueueError when there is none.
	Pop() (T, error)
	//Peek at the front item without removing it. The zero value of T is
	//returned for an empty queue.
	Peek() T
	//Empty reports whether the queue holds nothing.
	Empty() bool
	//Size is the number of queued items.
	Size() uint
}

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
