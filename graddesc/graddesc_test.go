package graddesc_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/funcs"
	"github.com/katalvlaran/lvlopt/graddesc"
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinimize_Sphere: steepest descent handles a well-conditioned bowl
// easily, with and without the analytic gradient.
func TestMinimize_Sphere(t *testing.T) {
	sp := funcs.Sphere()

	res, err := graddesc.Minimize(sp.F, sp.Grad, []float64{5, 5})
	require.NoError(t, err)
	assert.True(t, res.Converged, res.Message)
	assert.Less(t, res.Fun, 1e-6)

	res, err = graddesc.Minimize(sp.F, nil, []float64{5, 5})
	require.NoError(t, err)
	assert.True(t, res.Converged, res.Message)
}

// TestMinimize_Booth: a coupled quadratic still converges within the
// default budget.
func TestMinimize_Booth(t *testing.T) {
	b := funcs.Booth()

	res, err := graddesc.Minimize(b.F, b.Grad, []float64{0, 0})

	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	assert.InDelta(t, 1, res.X[0], 1e-3)
	assert.InDelta(t, 3, res.X[1], 1e-3)
}

// TestMinimize_MaxIterationsBudget: the method respects a 3-iteration cap.
func TestMinimize_MaxIterationsBudget(t *testing.T) {
	rb := funcs.Rosenbrock()

	res, err := graddesc.Minimize(rb.F, rb.Grad, []float64{-1.2, 1},
		optimize.WithMaxIterations(3))

	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, 3)
}

// TestMinimize_CallAccounting: exact tallies across backtracking phases.
func TestMinimize_CallAccounting(t *testing.T) {
	sp := funcs.Sphere()
	fCalls, gCalls := 0, 0
	f := func(x []float64) float64 {
		fCalls++

		return sp.F(x)
	}
	g := func(x []float64) []float64 {
		gCalls++

		return sp.Grad(x)
	}

	res, err := graddesc.Minimize(f, g, []float64{5, 5})

	require.NoError(t, err)
	assert.Equal(t, fCalls, res.FunctionCalls)
	assert.Equal(t, gCalls, res.GradientCalls)
}

// TestMinimize_Validation covers the error paths.
func TestMinimize_Validation(t *testing.T) {
	sp := funcs.Sphere()

	_, err := graddesc.Minimize(nil, nil, []float64{1})
	assert.ErrorIs(t, err, optimize.ErrNilObjective)

	_, err = graddesc.Minimize(sp.F, nil, []float64{})
	assert.ErrorIs(t, err, optimize.ErrEmptyPoint)
}
