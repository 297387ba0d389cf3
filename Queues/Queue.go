package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	//Push item to the back.
	Push(item T)
	//Pop the item at the front. Returns EmptyQueueError if there's none.
	Pop() (T, error)
	//Peek at the item at the front without removing it. Returns the zero
	//value if the queue is empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a slice that grows by half when full.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current items.
	Shrink()
	//Clear the queue, keeping the backing slice.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
