// Package phase defines the arithmetic operations timed by the runner.
//
// A Phase is a named per-iteration step. The runner owns the loop and the
// accumulator; a step only maps the current accumulator and the previous
// result to the next result.
package phase

import (
	"math"
	"time"
)

// DefaultExponent is the real exponent used by the Pow phase.
const DefaultExponent = 0.51

// Step computes the next result from the incremented accumulator and the
// previous result.
type Step func(acc, result float64) float64

// Phase is one timed loop.
type Phase struct {
	// Name labels the report line, e.g. "Sqrt".
	Name string

	// Unit names a single application in per-phase unit labels, e.g. "pow".
	Unit string

	Step Step
}

// Sqrt sets the result to the square root of the accumulator.
func Sqrt() Phase {
	return Phase{
		Name: "Sqrt",
		Unit: "sqrt",
		Step: func(acc, _ float64) float64 {
			return math.Sqrt(acc)
		},
	}
}

// Pow raises the accumulator to exp with real-exponent semantics.
func Pow(exp float64) Phase {
	return Phase{
		Name: "Pow",
		Unit: "pow",
		Step: func(acc, _ float64) float64 {
			return math.Pow(acc, exp)
		},
	}
}

// Min keeps the lesser of the previous result and the accumulator.
//
// This is a plain comparison, not math.Min, so NaN and signed zeros
// behave like the ternary the benchmark is meant to time.
func Min() Phase {
	return Phase{
		Name: "Min",
		Unit: "min",
		Step: func(acc, result float64) float64 {
			if result < acc {
				return result
			}
			return acc
		},
	}
}

// Default returns the fixed Sqrt, Pow, Min sequence.
func Default() []Phase {
	return []Phase{Sqrt(), Pow(DefaultExponent), Min()}
}

// Measurement is the outcome of running one Phase.
type Measurement struct {
	Name       string
	Unit       string
	Iterations int

	// Elapsed is the clock difference around the loop, never negative.
	Elapsed time.Duration

	// Accumulator and Result hold the loop-carried values after the
	// last iteration.
	Accumulator float64
	Result      float64
}

// PerIteration returns the average cost of one iteration in microseconds.
func (m Measurement) PerIteration() float64 {
	if m.Iterations <= 0 {
		return 0
	}
	return float64(m.Elapsed) / float64(time.Microsecond) / float64(m.Iterations)
}
