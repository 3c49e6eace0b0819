package cancel

import "context"

// ContextCanceler is a Canceler derived from a context.Context, for
// callers that already carry one (signal.NotifyContext, deadlines).
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewContext creates a ContextCanceler from a parent context.
// It is done when the parent is done or Cancel is called.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancel(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel cancels the derived context.
func (c *ContextCanceler) Cancel() {
	c.cancel()
}

// Err returns the context's error: nil while running, otherwise
// context.Canceled or context.DeadlineExceeded.
func (c *ContextCanceler) Err() error {
	return c.ctx.Err()
}
