package neldermead_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/funcs"
	"github.com/katalvlaran/lvlopt/neldermead"
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinimize_Sphere: converge on f(x)=x0²+x1² from (5,5) without any
// gradient information.
func TestMinimize_Sphere(t *testing.T) {
	sp := funcs.Sphere()

	res, err := neldermead.Minimize(sp.F, []float64{5, 5})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-6)
	assert.Nil(t, res.Gradient, "derivative-free result carries no gradient")
	assert.Equal(t, 0, res.GradientCalls)
}

// TestMinimize_Booth: from (0,0) the simplex must find the minimum at (1,3).
func TestMinimize_Booth(t *testing.T) {
	b := funcs.Booth()

	res, err := neldermead.Minimize(b.F, []float64{0, 0})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-6)
	assert.InDelta(t, 1, res.X[0], 1e-3)
	assert.InDelta(t, 3, res.X[1], 1e-3)
}

// TestMinimize_Rosenbrock: the simplex crawls the banana valley; allow the
// full default budget but require a true minimum.
func TestMinimize_Rosenbrock(t *testing.T) {
	rb := funcs.Rosenbrock()

	res, err := neldermead.Minimize(rb.F, []float64{-1.2, 1})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.InDelta(t, 1, res.X[0], 1e-3)
	assert.InDelta(t, 1, res.X[1], 1e-3)
}

// TestMinimize_MaxIterationsBudget: a 3-iteration budget stops at ≤3
// iterations without claiming convergence, regardless of tolerances.
func TestMinimize_MaxIterationsBudget(t *testing.T) {
	rb := funcs.Rosenbrock()

	res, err := neldermead.Minimize(rb.F, []float64{-1.2, 1},
		neldermead.WithConvergence(optimize.WithMaxIterations(3)))

	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, 3)
	assert.Equal(t, optimize.ReasonMaxIterations.Message(), res.Message)
}

// TestMinimize_CallAccounting: the function tally must match actual
// invocations, shrink phases included.
func TestMinimize_CallAccounting(t *testing.T) {
	rb := funcs.Rosenbrock()
	calls := 0
	f := func(x []float64) float64 {
		calls++

		return rb.F(x)
	}

	res, err := neldermead.Minimize(f, []float64{-1.2, 1})

	require.NoError(t, err)
	assert.Equal(t, calls, res.FunctionCalls)
}

// TestMinimize_DoesNotMutateStart: x0 stays bit-identical and the result
// does not alias it.
func TestMinimize_DoesNotMutateStart(t *testing.T) {
	sp := funcs.Sphere()
	x0 := []float64{5, 5}

	res, err := neldermead.Minimize(sp.F, x0)

	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, x0)

	res.X[0] = 42
	assert.Equal(t, []float64{5, 5}, x0)
}

// TestMinimize_Validation covers the two error paths.
func TestMinimize_Validation(t *testing.T) {
	sp := funcs.Sphere()

	_, err := neldermead.Minimize(nil, []float64{1})
	assert.ErrorIs(t, err, optimize.ErrNilObjective)

	_, err = neldermead.Minimize(sp.F, nil)
	assert.ErrorIs(t, err, optimize.ErrEmptyPoint)
}

// TestMinimize_CoefficientOverrides: custom coefficients still converge on
// an easy bowl; invalid ones panic at construction.
func TestMinimize_CoefficientOverrides(t *testing.T) {
	sp := funcs.Sphere()

	res, err := neldermead.Minimize(sp.F, []float64{5, 5},
		neldermead.WithAlpha(1.5),
		neldermead.WithGamma(2.5),
		neldermead.WithSimplexScale(0.1))

	require.NoError(t, err)
	assert.True(t, res.Converged, res.Message)

	assert.Panics(t, func() { neldermead.WithAlpha(0) })
	assert.Panics(t, func() { neldermead.WithGamma(1) })
	assert.Panics(t, func() { neldermead.WithRho(1) })
	assert.Panics(t, func() { neldermead.WithSigma(0) })
	assert.Panics(t, func() { neldermead.WithSimplexScale(-0.1) })
}

// TestMinimize_HighDimensionalSphere: the simplex machinery holds up beyond
// two dimensions.
func TestMinimize_HighDimensionalSphere(t *testing.T) {
	f := func(x []float64) float64 {
		var sum float64
		for _, v := range x {
			sum += v * v
		}

		return sum
	}

	res, err := neldermead.Minimize(f, []float64{3, -2, 1, 4},
		neldermead.WithConvergence(optimize.WithMaxIterations(5000)))

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-6)
}
