package bfgs_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/bfgs"
	"github.com/katalvlaran/lvlopt/funcs"
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinimize_SphereAnalytic: the textbook smoke test — converge on
// f(x)=x0²+x1² from (5,5) with the analytic gradient.
func TestMinimize_SphereAnalytic(t *testing.T) {
	sp := funcs.Sphere()

	res, err := bfgs.Minimize(sp.F, sp.Grad, []float64{5, 5})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-6)
	assert.InDelta(t, 0, res.X[0], 1e-3)
	assert.InDelta(t, 0, res.X[1], 1e-3)
	assert.NotNil(t, res.Gradient, "gradient-based result carries the final gradient")
}

// TestMinimize_SphereNumeric: same problem, finite-difference gradient
// (grad=nil).
func TestMinimize_SphereNumeric(t *testing.T) {
	sp := funcs.Sphere()

	res, err := bfgs.Minimize(sp.F, nil, []float64{5, 5})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-6)
}

// TestMinimize_Rosenbrock: the canonical curved-valley benchmark. From
// (-1.2, 1) with the analytic gradient BFGS must reach (1,1) with
// fun < 1e-10 in fewer than 50 iterations.
func TestMinimize_Rosenbrock(t *testing.T) {
	rb := funcs.Rosenbrock()

	res, err := bfgs.Minimize(rb.F, rb.Grad, []float64{-1.2, 1})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-10)
	assert.Less(t, res.Iterations, 50)
	assert.InDelta(t, 1, res.X[0], 1e-4)
	assert.InDelta(t, 1, res.X[1], 1e-4)
}

// TestMinimize_AlreadyStationary: starting at the minimum returns
// immediately with zero iterations.
func TestMinimize_AlreadyStationary(t *testing.T) {
	sp := funcs.Sphere()

	res, err := bfgs.Minimize(sp.F, sp.Grad, []float64{0, 0})

	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, 1, res.FunctionCalls)
	assert.Equal(t, 1, res.GradientCalls)
	assert.Equal(t, optimize.ReasonGradient.Message(), res.Message)
}

// TestMinimize_MaxIterationsBudget: with a 3-iteration budget the run stops
// at or under 3 iterations and does not claim convergence.
func TestMinimize_MaxIterationsBudget(t *testing.T) {
	rb := funcs.Rosenbrock()

	res, err := bfgs.Minimize(rb.F, rb.Grad, []float64{-1.2, 1},
		optimize.WithMaxIterations(3),
		optimize.WithGradTol(1e-300), optimize.WithStepTol(1e-300),
		optimize.WithFuncTol(1e-300))

	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, 3)
	assert.Equal(t, optimize.ReasonMaxIterations.Message(), res.Message)
}

// TestMinimize_CallAccounting: wrap the callbacks with counters and verify
// the result tallies are exact across all line-search phases.
func TestMinimize_CallAccounting(t *testing.T) {
	rb := funcs.Rosenbrock()
	fCalls, gCalls := 0, 0
	f := func(x []float64) float64 {
		fCalls++

		return rb.F(x)
	}
	g := func(x []float64) []float64 {
		gCalls++

		return rb.Grad(x)
	}

	res, err := bfgs.Minimize(f, g, []float64{-1.2, 1})

	require.NoError(t, err)
	assert.Equal(t, fCalls, res.FunctionCalls, "function tally is exact")
	assert.Equal(t, gCalls, res.GradientCalls, "gradient tally is exact")
}

// TestMinimize_DoesNotMutateStart: the caller's x0 must be bit-identical
// after the run, and the result must not alias it.
func TestMinimize_DoesNotMutateStart(t *testing.T) {
	sp := funcs.Sphere()
	x0 := []float64{5, 5}

	res, err := bfgs.Minimize(sp.F, sp.Grad, x0)

	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, x0)

	res.X[0] = 123
	assert.Equal(t, []float64{5, 5}, x0, "result storage is independent of x0")
}

// TestMinimize_L2NormOption: convergence still holds under the L2 norm
// configuration.
func TestMinimize_L2NormOption(t *testing.T) {
	sp := funcs.Sphere()

	res, err := bfgs.Minimize(sp.F, sp.Grad, []float64{5, 5},
		optimize.WithNorm(optimize.NormL2))

	require.NoError(t, err)
	assert.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-6)
}

// TestMinimize_Validation: nil objective and empty starting point are the
// only error paths.
func TestMinimize_Validation(t *testing.T) {
	sp := funcs.Sphere()

	_, err := bfgs.Minimize(nil, nil, []float64{1})
	assert.ErrorIs(t, err, optimize.ErrNilObjective)

	_, err = bfgs.Minimize(sp.F, nil, nil)
	assert.ErrorIs(t, err, optimize.ErrEmptyPoint)
}

// TestMinimize_Booth: a second analytic benchmark, minimum at (1,3).
func TestMinimize_Booth(t *testing.T) {
	b := funcs.Booth()

	res, err := bfgs.Minimize(b.F, b.Grad, []float64{0, 0})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.InDelta(t, 1, res.X[0], 1e-4)
	assert.InDelta(t, 3, res.X[1], 1e-4)
}
