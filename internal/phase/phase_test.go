package phase_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/randomizedcoder/mathcost/internal/phase"
)

func TestSqrt(t *testing.T) {
	p := phase.Sqrt()
	if got := p.Step(11000, 0); got != math.Sqrt(11000) {
		t.Errorf("Sqrt step = %v, want %v", got, math.Sqrt(11000))
	}
	// Previous result is ignored
	if got := p.Step(16, 99); got != 4 {
		t.Errorf("Sqrt step = %v, want 4", got)
	}
}

func TestPow(t *testing.T) {
	p := phase.Pow(phase.DefaultExponent)
	want := math.Pow(21000, 0.51)
	if got := p.Step(21000, 0); got != want {
		t.Errorf("Pow step = %v, want %v", got, want)
	}

	// Real exponent, not integer exponentiation
	if got := phase.Pow(0.5).Step(9, 0); got != 3 {
		t.Errorf("Pow(0.5) step = %v, want 3", got)
	}
}

func TestMin(t *testing.T) {
	p := phase.Min()

	testCases := []struct {
		name        string
		acc, result float64
		want        float64
	}{
		{"result smaller", 31000, 162.5, 162.5},
		{"accumulator smaller", 5, 10, 5},
		{"equal", 7, 7, 7},
		// A NaN result never compares less, so the accumulator wins
		{"nan result", 3, math.NaN(), 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Step(tc.acc, tc.result); got != tc.want {
				t.Errorf("Min step(%v, %v) = %v, want %v", tc.acc, tc.result, got, tc.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	var names, units []string
	for _, p := range phase.Default() {
		names = append(names, p.Name)
		units = append(units, p.Unit)
	}
	if diff := cmp.Diff([]string{"Sqrt", "Pow", "Min"}, names); diff != "" {
		t.Errorf("phase order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"sqrt", "pow", "min"}, units); diff != "" {
		t.Errorf("phase units mismatch (-want +got):\n%s", diff)
	}
}

func TestMeasurement_PerIteration(t *testing.T) {
	testCases := []struct {
		elapsed    time.Duration
		iterations int
		want       float64
	}{
		{10000 * time.Microsecond, 10000, 1},
		{20000 * time.Microsecond, 10000, 2},
		{5000 * time.Microsecond, 10000, 0.5},
		{0, 10000, 0},
		{time.Second, 0, 0},
	}

	for _, tc := range testCases {
		m := phase.Measurement{Elapsed: tc.elapsed, Iterations: tc.iterations}
		if got := m.PerIteration(); got != tc.want {
			t.Errorf("PerIteration(%v / %d) = %v, want %v", tc.elapsed, tc.iterations, got, tc.want)
		}
	}
}
