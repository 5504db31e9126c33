package numdiff

import (
	"math"

	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/katalvlaran/lvlopt/vecops"
)

// eps is the IEEE-754 double unit roundoff (2.220446049250313e-16), not the
// smallest positive representable float64.
var (
	eps     = math.Nextafter(1, 2) - 1
	sqrtEps = math.Sqrt(eps)
	cbrtEps = math.Cbrt(eps)
)

// Method selects the finite-difference scheme.
type Method int

const (
	// Forward uses the first-order forward difference (1+n evaluations).
	Forward Method = iota

	// Central uses the second-order central difference (2n evaluations).
	Central
)

// ForwardGradient estimates ∇f(x) by forward differences. The input x is
// never mutated; perturbed points are fresh clones.
func ForwardGradient(f optimize.Objective, x []float64) []float64 {
	n := len(x)
	fx := f(x)
	grad := vecops.Zeros(n)

	for i := 0; i < n; i++ {
		h := sqrtEps * math.Max(math.Abs(x[i]), 1)
		xp := vecops.Clone(x)
		xp[i] += h
		grad[i] = (f(xp) - fx) / h
	}

	return grad
}

// CentralGradient estimates ∇f(x) by central differences — twice the cost of
// ForwardGradient, one order better accuracy.
func CentralGradient(f optimize.Objective, x []float64) []float64 {
	n := len(x)
	grad := vecops.Zeros(n)

	for i := 0; i < n; i++ {
		h := cbrtEps * math.Max(math.Abs(x[i]), 1)
		xp := vecops.Clone(x)
		xm := vecops.Clone(x)
		xp[i] += h
		xm[i] -= h
		grad[i] = (f(xp) - f(xm)) / (2 * h)
	}

	return grad
}

// Gradient returns an optimize.Gradient closure over f using the given
// scheme. Any unrecognized Method falls back to Forward, the default.
func Gradient(f optimize.Objective, m Method) optimize.Gradient {
	if m == Central {
		return func(x []float64) []float64 { return CentralGradient(f, x) }
	}

	return func(x []float64) []float64 { return ForwardGradient(f, x) }
}
