package vecops

import (
	"fmt"
	"math"
)

// sameLen panics when a and b differ in length. Length mismatches are
// programmer errors: every caller in this module passes vectors of one fixed
// dimension n for the whole run.
func sameLen(op string, a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vecops: %s: length mismatch (%d vs %d)", op, len(a), len(b)))
	}
}

// Dot returns the inner product Σ aᵢ·bᵢ of two equal-length vectors.
func Dot(a, b []float64) float64 {
	sameLen("Dot", a, b)

	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Norm returns the Euclidean (L2) norm of v: sqrt(Dot(v, v)).
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// NormInf returns the infinity norm of v: max |vᵢ|. Empty input yields 0.
func NormInf(v []float64) float64 {
	var max float64
	for _, vi := range v {
		if a := math.Abs(vi); a > max {
			max = a
		}
	}

	return max
}

// Scale returns a new vector s·v. The input v is left untouched.
func Scale(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i, vi := range v {
		out[i] = vi * s
	}

	return out
}

// Add returns a new vector a + b.
func Add(a, b []float64) []float64 {
	sameLen("Add", a, b)

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

// Sub returns a new vector a − b.
func Sub(a, b []float64) []float64 {
	sameLen("Sub", a, b)

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// Negate returns a new vector −v.
func Negate(v []float64) []float64 {
	return Scale(v, -1)
}

// Clone returns an independent copy of v; mutating the copy never affects v.
func Clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Zeros returns a zero vector of length n.
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// AddScaled returns a new vector a + s·b in a single pass, avoiding the
// intermediate allocation of Add(a, Scale(b, s)). This is the hot path of
// every line search (x + α·d).
func AddScaled(a, b []float64, s float64) []float64 {
	sameLen("AddScaled", a, b)

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + s*b[i]
	}

	return out
}
