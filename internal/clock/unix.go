//go:build linux || darwin || freebsd

package clock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Gettimeofday reads the wall clock with microsecond resolution.
//
// It is not monotonic: an NTP step between two readings can make the
// difference negative. Callers that report elapsed time clamp at zero.
type Gettimeofday struct{}

// NewGettimeofday returns a Gettimeofday clock.
func NewGettimeofday() (Gettimeofday, error) {
	return Gettimeofday{}, nil
}

// Now returns the wall clock time since the Unix epoch.
func (Gettimeofday) Now() time.Duration {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		panic(fmt.Sprintf("clock: gettimeofday: %v", err))
	}
	return time.Duration(unix.TimevalToNsec(tv))
}

// Monotonic reads clock_gettime(CLOCK_MONOTONIC).
type Monotonic struct{}

// NewMonotonic returns a Monotonic clock after checking the kernel
// accepts the clock id.
func NewMonotonic() (Monotonic, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return Monotonic{}, fmt.Errorf("clock_gettime: %w", err)
	}
	return Monotonic{}, nil
}

// Now returns the monotonic time since an unspecified boot-time epoch.
func (Monotonic) Now() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic(fmt.Sprintf("clock: clock_gettime: %v", err))
	}
	return time.Duration(unix.TimespecToNsec(ts))
}
