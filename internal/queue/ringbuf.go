package queue

import (
	"sync/atomic"
)

// RingBuffer is a lock-free SPSC ring of power-of-two capacity.
//
// Push and Pop each detect a second concurrent caller and panic, so a
// reporter accidentally draining from another goroutine while the runner
// pushes fails loudly instead of corrupting the report.
type RingBuffer[T any] struct {
	buf  []T
	mask uint64

	// head and tail sit on separate cache lines
	_pad0 [56]byte //nolint:unused

	head atomic.Uint64 // next slot to write, owned by the producer

	_pad1 [56]byte //nolint:unused

	tail atomic.Uint64 // next slot to read, owned by the consumer

	_pad2 [56]byte //nolint:unused

	pushing atomic.Uint32
	popping atomic.Uint32
}

// NewRingBuffer creates a RingBuffer holding at least size items.
// The capacity is size rounded up to a power of two.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}
	return &RingBuffer[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

// Push appends v, or returns false if the ring is full.
func (r *RingBuffer[T]) Push(v T) bool {
	if !r.pushing.CompareAndSwap(0, 1) {
		panic("queue: concurrent Push on RingBuffer - only one producer allowed")
	}
	defer r.pushing.Store(0)

	head := r.head.Load()
	if head-r.tail.Load() >= uint64(len(r.buf)) {
		return false
	}
	r.buf[head&r.mask] = v
	r.head.Store(head + 1)
	return true
}

// Pop removes the oldest item, or returns false if the ring is empty.
func (r *RingBuffer[T]) Pop() (T, bool) {
	if !r.popping.CompareAndSwap(0, 1) {
		panic("queue: concurrent Pop on RingBuffer - only one consumer allowed")
	}
	defer r.popping.Store(0)

	var zero T
	tail := r.tail.Load()
	if tail >= r.head.Load() {
		return zero, false
	}
	slot := tail & r.mask
	v := r.buf[slot]
	// Drop the reference so popped measurements can be collected
	r.buf[slot] = zero
	r.tail.Store(tail + 1)
	return v, true
}

// Len returns the number of queued items. It may be stale if the other
// side is running concurrently.
func (r *RingBuffer[T]) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the capacity of the ring.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}
