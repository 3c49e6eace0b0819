package queue

import (
	"fmt"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// minShardedCapacity keeps tiny runs from asking the ring for a
// degenerate shard.
const minShardedCapacity = 8

// ShardedQueue adapts go-lock-free-ring's ShardedRing to Queue.
//
// The ring is MPSC; with a single shard and a single producer id it
// behaves as a FIFO, which is all the runner needs.
type ShardedQueue[T any] struct {
	r *ring.ShardedRing
}

// NewSharded creates a ShardedQueue holding at least size items.
func NewSharded[T any](size int) (*ShardedQueue[T], error) {
	n := uint64(minShardedCapacity)
	for n < uint64(size) {
		n <<= 1
	}
	r, err := ring.NewShardedRing(n, 1)
	if err != nil {
		return nil, fmt.Errorf("queue: sharded ring: %w", err)
	}
	return &ShardedQueue[T]{r: r}, nil
}

// Push writes v as producer 0, or returns false if the shard is full.
func (q *ShardedQueue[T]) Push(v T) bool {
	return q.r.Write(0, v)
}

// Pop reads the next item, or returns false if the ring is empty.
func (q *ShardedQueue[T]) Pop() (T, bool) {
	var zero T
	v, ok := q.r.TryRead()
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("queue: sharded ring returned %T", v))
	}
	return t, true
}
