package graddesc

import (
	"github.com/katalvlaran/lvlopt/linesearch"
	"github.com/katalvlaran/lvlopt/numdiff"
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/katalvlaran/lvlopt/vecops"
)

// Minimize runs steepest descent on f from x0. grad may be nil (forward
// finite differences). Non-convergence is reported via the Result, never as
// an error; errors are reserved for nil f / empty x0.
func Minimize(f optimize.Objective, grad optimize.Gradient, x0 []float64, opts ...optimize.Option) (optimize.Result, error) {
	if f == nil {
		return optimize.Result{}, optimize.ErrNilObjective
	}
	if len(x0) == 0 {
		return optimize.Result{}, optimize.ErrEmptyPoint
	}

	cfg := optimize.Apply(opts)
	norm := cfg.VecNorm()

	gradFn := grad
	if gradFn == nil {
		gradFn = numdiff.Gradient(f, numdiff.Forward)
	}

	x := vecops.Clone(x0)
	fx := f(x)
	gx := gradFn(x)
	functionCalls := 1
	gradientCalls := 1

	terminal := func(reason optimize.Reason, iter int) optimize.Result {
		return optimize.Result{
			X: x, Fun: fx, Gradient: gx,
			Iterations:    iter,
			FunctionCalls: functionCalls,
			GradientCalls: gradientCalls,
			Converged:     reason.Converged(),
			Message:       reason.Message(),
		}
	}

	if norm(gx) < cfg.GradTol {
		return terminal(optimize.ReasonGradient, 0), nil
	}

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		d := vecops.Negate(gx)

		ls := linesearch.Backtracking(f, x, d, fx, gx)
		functionCalls += ls.FunctionCalls

		if !ls.Success {
			return terminal(optimize.ReasonLineSearchFailed, iter), nil
		}

		xNew := vecops.AddScaled(x, d, ls.Alpha)
		gNew := gradFn(xNew)
		gradientCalls++

		gradNorm := norm(gNew)
		stepNorm := norm(vecops.Sub(xNew, x))
		funcChange := fx - ls.FNew
		if funcChange < 0 {
			funcChange = -funcChange
		}

		x, fx, gx = xNew, ls.FNew, gNew

		if reason := optimize.Check(gradNorm, stepNorm, funcChange, iter, cfg); reason != optimize.None {
			return terminal(reason, iter), nil
		}
	}

	return terminal(optimize.ReasonMaxIterations, cfg.MaxIterations), nil
}
