//go:build !linux && !darwin && !freebsd

package clock

import "time"

// Gettimeofday is a stub for platforms without gettimeofday(2).
// Use Std instead for cross-platform code.
type Gettimeofday struct{}

// NewGettimeofday returns ErrUnsupported on this platform.
func NewGettimeofday() (Gettimeofday, error) {
	return Gettimeofday{}, ErrUnsupported
}

// Now always returns 0 on the stub implementation.
func (Gettimeofday) Now() time.Duration { return 0 }

// Monotonic is a stub for platforms without clock_gettime(2).
type Monotonic struct{}

// NewMonotonic returns ErrUnsupported on this platform.
func NewMonotonic() (Monotonic, error) {
	return Monotonic{}, ErrUnsupported
}

// Now always returns 0 on the stub implementation.
func (Monotonic) Now() time.Duration { return 0 }
