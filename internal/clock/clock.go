// Package clock provides timestamp sources for timing benchmark loops.
//
// This package offers several implementations of the Clock interface:
//   - Gettimeofday: Microsecond wall clock via gettimeofday(2)
//   - Monotonic: clock_gettime(CLOCK_MONOTONIC)
//   - Runtime: The Go runtime's internal nanotime
//   - Std: time.Now relative to a fixed epoch
//   - Script: Replays fixed readings, for deterministic tests
//
// Gettimeofday and Monotonic are only available on linux, darwin and
// freebsd. Elsewhere their constructors return ErrUnsupported.
package clock

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnsupported is returned when a clock source is not available on this platform.
var ErrUnsupported = errors.New("clock: source not supported on this platform")

// ErrUnknown is returned by Lookup for a name that is not registered.
var ErrUnknown = errors.New("clock: unknown source")

// Clock reports the time elapsed since a source-specific epoch.
//
// Only differences between two readings of the same Clock are meaningful.
// A Clock is read from a single goroutine; implementations need not be
// safe for concurrent use.
type Clock interface {
	Now() time.Duration
}

// Source names accepted by Lookup.
const (
	NameGettimeofday = "gettimeofday"
	NameMonotonic    = "monotonic"
	NameRuntime      = "runtime"
	NameStd          = "std"
)

// Default is the source used when none is named: the microsecond
// wall clock.
const Default = NameGettimeofday

var sources = map[string]func() (Clock, error){
	NameGettimeofday: func() (Clock, error) { return NewGettimeofday() },
	NameMonotonic:    func() (Clock, error) { return NewMonotonic() },
	NameRuntime:      func() (Clock, error) { return NewRuntime(), nil },
	NameStd:          func() (Clock, error) { return NewStd(), nil },
}

// Lookup returns a new Clock for the named source.
func Lookup(name string) (Clock, error) {
	newClock, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknown, name, Names())
	}
	c, err := newClock()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// Names returns the registered source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Std reads time.Now and reports the monotonic time since construction.
type Std struct {
	epoch time.Time
}

// NewStd creates a Std clock whose epoch is now.
func NewStd() *Std {
	return &Std{epoch: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (s *Std) Now() time.Duration {
	return time.Since(s.epoch)
}
