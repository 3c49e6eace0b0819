package clock

import "time"

// Script is a Clock that replays a fixed list of readings.
//
// Once the readings run out, Now keeps returning the last one.
// An empty Script always reads 0.
type Script struct {
	readings []time.Duration
	next     int
}

// NewScript creates a Script that returns readings in order.
func NewScript(readings ...time.Duration) *Script {
	return &Script{readings: readings}
}

// Elapsed creates a Script for back-to-back timed sections.
//
// Each section reads the clock twice, so section i sees a start
// reading followed by start+elapsed[i]. The next section starts where
// the previous one ended.
func Elapsed(elapsed ...time.Duration) *Script {
	readings := make([]time.Duration, 0, 2*len(elapsed))
	var t time.Duration
	for _, d := range elapsed {
		readings = append(readings, t, t+d)
		t += d
	}
	return NewScript(readings...)
}

// Now returns the next scripted reading.
func (s *Script) Now() time.Duration {
	if len(s.readings) == 0 {
		return 0
	}
	if s.next >= len(s.readings) {
		return s.readings[len(s.readings)-1]
	}
	d := s.readings[s.next]
	s.next++
	return d
}

// Reads returns how many times Now has been called with readings left.
func (s *Script) Reads() int {
	return s.next
}
