// Package cancel stops a benchmark run between phases.
//
// The timed loops never check for cancellation; a Canceler is polled
// only at phase boundaries, so an interrupt lets the current phase finish
// and skips the rest. Two implementations are provided:
//   - AtomicCanceler: atomic.Bool, triggered from a signal handler
//   - ContextCanceler: wraps a context.Context
package cancel

// Canceler reports whether a run should stop.
//
// Implementations must be safe for concurrent use: Cancel is typically
// called from a signal goroutine while the runner polls Done.
type Canceler interface {
	// Done returns true once Cancel has been called.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}
