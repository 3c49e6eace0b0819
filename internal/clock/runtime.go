package clock

import (
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the current monotonic time in nanoseconds.
// It skips the time.Time construction that time.Now performs.
//
// Note: This uses go:linkname to access an internal runtime function.
// It may break in future Go versions, though it has been stable.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Runtime reads the runtime's monotonic clock directly.
//
// Typical read cost:
//   - Std.Now(): ~20-40ns
//   - Runtime.Now(): ~10-20ns
type Runtime struct{}

// NewRuntime returns a Runtime clock.
func NewRuntime() Runtime {
	return Runtime{}
}

// Now returns runtime.nanotime as a Duration.
func (Runtime) Now() time.Duration {
	return time.Duration(nanotime())
}
