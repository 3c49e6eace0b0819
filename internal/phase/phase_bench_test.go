package phase_test

import (
	"math"
	"testing"

	"github.com/randomizedcoder/mathcost/internal/phase"
)

// Storing results in a package variable keeps the compiler from
// optimizing the benchmarked steps away.
var sinkFloat float64

func benchmarkStep(b *testing.B, p phase.Phase) {
	acc, result := 1000.0, 1000.0
	for range b.N {
		acc++
		result = p.Step(acc, result)
	}
	sinkFloat = result
}

func BenchmarkSqrt(b *testing.B) { benchmarkStep(b, phase.Sqrt()) }
func BenchmarkPow(b *testing.B)  { benchmarkStep(b, phase.Pow(phase.DefaultExponent)) }
func BenchmarkMin(b *testing.B)  { benchmarkStep(b, phase.Min()) }

// Inline baselines without the Step indirection

func BenchmarkSqrt_Inline(b *testing.B) {
	acc, result := 1000.0, 1000.0
	for range b.N {
		acc++
		result = math.Sqrt(acc)
	}
	sinkFloat = result
}

func BenchmarkPow_Inline(b *testing.B) {
	acc, result := 1000.0, 1000.0
	for range b.N {
		acc++
		result = math.Pow(acc, phase.DefaultExponent)
	}
	sinkFloat = result
}
