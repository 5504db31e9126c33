package funcs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lvlopt/optimize"
)

// ErrUnknownFunc indicates that ByName was asked for a benchmark that does
// not exist.
var ErrUnknownFunc = errors.New("funcs: unknown benchmark function")

// Func bundles a benchmark objective with its analytic gradient and the
// reference data tests and demos check against.
//
// Name         – canonical display name.
// Dim          – dimensionality of the domain.
// F, Grad      – the objective and its analytic gradient.
// MinimumAt    – a global minimizer (one of several for Himmelblau).
// MinimumValue – the objective value at MinimumAt.
// Start        – the customary starting point used in the literature.
type Func struct {
	Name         string
	Dim          int
	F            optimize.Objective
	Grad         optimize.Gradient
	MinimumAt    []float64
	MinimumValue float64
	Start        []float64
}

// Sphere returns f(x) = x0² + x1², the canonical convex smoke test.
func Sphere() Func {
	return Func{
		Name: "Sphere",
		Dim:  2,
		F: func(x []float64) float64 {
			return x[0]*x[0] + x[1]*x[1]
		},
		Grad: func(x []float64) []float64 {
			return []float64{2 * x[0], 2 * x[1]}
		},
		MinimumAt:    []float64{0, 0},
		MinimumValue: 0,
		Start:        []float64{5, 5},
	}
}

// Booth returns f(x) = (x0+2x1−7)² + (2x0+x1−5)², a mildly coupled
// quadratic with minimum at (1, 3).
func Booth() Func {
	return Func{
		Name: "Booth",
		Dim:  2,
		F: func(x []float64) float64 {
			a := x[0] + 2*x[1] - 7
			b := 2*x[0] + x[1] - 5

			return a*a + b*b
		},
		Grad: func(x []float64) []float64 {
			a := x[0] + 2*x[1] - 7
			b := 2*x[0] + x[1] - 5

			return []float64{2*a + 4*b, 4*a + 2*b}
		},
		MinimumAt:    []float64{1, 3},
		MinimumValue: 0,
		Start:        []float64{0, 0},
	}
}

// Rosenbrock returns f(x) = (1−x0)² + 100(x1−x0²)², the curved banana
// valley that punishes poorly scaled descent directions.
func Rosenbrock() Func {
	return Func{
		Name: "Rosenbrock",
		Dim:  2,
		F: func(x []float64) float64 {
			a := 1 - x[0]
			b := x[1] - x[0]*x[0]

			return a*a + 100*b*b
		},
		Grad: func(x []float64) []float64 {
			b := x[1] - x[0]*x[0]

			return []float64{
				-2*(1-x[0]) - 400*x[0]*b,
				200 * b,
			}
		},
		MinimumAt:    []float64{1, 1},
		MinimumValue: 0,
		Start:        []float64{-1.2, 1},
	}
}

// Beale returns the three-term quartic with a narrow curved valley and
// minimum at (3, 0.5).
func Beale() Func {
	return Func{
		Name: "Beale",
		Dim:  2,
		F: func(x []float64) float64 {
			t1 := 1.5 - x[0] + x[0]*x[1]
			t2 := 2.25 - x[0] + x[0]*x[1]*x[1]
			t3 := 2.625 - x[0] + x[0]*x[1]*x[1]*x[1]

			return t1*t1 + t2*t2 + t3*t3
		},
		Grad: func(x []float64) []float64 {
			y := x[1]
			t1 := 1.5 - x[0] + x[0]*y
			t2 := 2.25 - x[0] + x[0]*y*y
			t3 := 2.625 - x[0] + x[0]*y*y*y

			return []float64{
				2*t1*(y-1) + 2*t2*(y*y-1) + 2*t3*(y*y*y-1),
				2*t1*x[0] + 2*t2*(2*x[0]*y) + 2*t3*(3*x[0]*y*y),
			}
		},
		MinimumAt:    []float64{3, 0.5},
		MinimumValue: 0,
		Start:        []float64{1, 1},
	}
}

// Himmelblau returns the four-minima quartic; (3, 2) is the reported
// minimizer, the other three basins are equally deep.
func Himmelblau() Func {
	return Func{
		Name: "Himmelblau",
		Dim:  2,
		F: func(x []float64) float64 {
			a := x[0]*x[0] + x[1] - 11
			b := x[0] + x[1]*x[1] - 7

			return a*a + b*b
		},
		Grad: func(x []float64) []float64 {
			a := x[0]*x[0] + x[1] - 11
			b := x[0] + x[1]*x[1] - 7

			return []float64{
				4*x[0]*a + 2*b,
				2*a + 4*x[1]*b,
			}
		},
		MinimumAt:    []float64{3, 2},
		MinimumValue: 0,
		Start:        []float64{0, 0},
	}
}

// registry maps lower-case names to constructors. Constructors, not values:
// each lookup hands out independent state.
var registry = map[string]func() Func{
	"sphere":     Sphere,
	"booth":      Booth,
	"rosenbrock": Rosenbrock,
	"beale":      Beale,
	"himmelblau": Himmelblau,
}

// ByName resolves a benchmark by its lower-case name, e.g. "rosenbrock".
func ByName(name string) (Func, error) {
	ctor, ok := registry[name]
	if !ok {
		return Func{}, ErrUnknownFunc
	}

	return ctor(), nil
}

// Names lists the available benchmark names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
