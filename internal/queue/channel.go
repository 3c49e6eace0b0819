package queue

// ChannelQueue is a Queue backed by a buffered channel.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with a buffer of size items.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Push sends v without blocking, or returns false if the buffer is full.
func (q *ChannelQueue[T]) Push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Pop receives without blocking, or returns false if the buffer is empty.
func (q *ChannelQueue[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the number of buffered items.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the buffer size.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
