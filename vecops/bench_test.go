package vecops_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/vecops"
)

// makeVec fills a length-n vector with predictable values.
func makeVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i%7) - 3
	}

	return v
}

// BenchmarkDot measures the inner product on a mid-sized vector.
func BenchmarkDot(b *testing.B) {
	x := makeVec(1024)
	y := makeVec(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vecops.Dot(x, y)
	}
}

// BenchmarkAddScaled measures the fused a+s·b update against the naive
// Add(Scale) composition it replaces.
func BenchmarkAddScaled(b *testing.B) {
	x := makeVec(1024)
	y := makeVec(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vecops.AddScaled(x, y, 0.5)
	}
}

// BenchmarkAddThenScale is the two-allocation baseline for comparison.
func BenchmarkAddThenScale(b *testing.B) {
	x := makeVec(1024)
	y := makeVec(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vecops.Add(x, vecops.Scale(y, 0.5))
	}
}
