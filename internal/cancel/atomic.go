package cancel

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// AtomicCanceler is a Canceler backed by an atomic.Bool.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
func (a *AtomicCanceler) Cancel() {
	a.done.Store(true)
}

// OnSignal cancels c when one of sigs arrives.
//
// The returned release func stops signal delivery and ends the watcher
// goroutine; call it once the run is over.
func OnSignal(c Canceler, sigs ...os.Signal) (release func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	stop := make(chan struct{})
	go func() {
		select {
		case <-ch:
			c.Cancel()
		case <-stop:
		}
	}()
	return func() {
		signal.Stop(ch)
		close(stop)
	}
}
