// Package queue buffers measurements between the runner and the reporter.
//
// Three implementations of the Queue interface are provided:
//   - RingBuffer: Lock-free SPSC ring (the default)
//   - ChannelQueue: Buffered channel with non-blocking select
//   - ShardedQueue: go-lock-free-ring MPSC ring with a single shard
//
// The runner pushes one item per phase and the reporter drains the queue
// once the run ends. Both sides normally live on one goroutine; RingBuffer
// additionally panics if two goroutines push or pop at the same time.
package queue

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by New for an unrecognized Kind.
var ErrUnknownKind = errors.New("queue: unknown kind")

// Queue is a non-blocking single-producer single-consumer FIFO.
//
// Push returns false if the queue is full.
// Pop returns false if the queue is empty.
type Queue[T any] interface {
	Push(T) bool
	Pop() (T, bool)
}

// Kind selects a Queue implementation.
type Kind string

const (
	KindRing    Kind = "ring"
	KindChannel Kind = "channel"
	KindSharded Kind = "sharded"
)

// Kinds lists the accepted Kind values.
func Kinds() []Kind {
	return []Kind{KindRing, KindChannel, KindSharded}
}

// New creates a Queue of the given kind that holds at least size items.
func New[T any](kind Kind, size int) (Queue[T], error) {
	switch kind {
	case KindRing:
		return NewRingBuffer[T](size), nil
	case KindChannel:
		return NewChannel[T](size), nil
	case KindSharded:
		q, err := NewSharded[T](size)
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

// Drain pops every queued item in FIFO order.
func Drain[T any](q Queue[T]) []T {
	var items []T
	for {
		v, ok := q.Pop()
		if !ok {
			return items
		}
		items = append(items, v)
	}
}
