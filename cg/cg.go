package cg

import (
	"github.com/katalvlaran/lvlopt/linesearch"
	"github.com/katalvlaran/lvlopt/numdiff"
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/katalvlaran/lvlopt/vecops"
)

// Minimize runs Polak–Ribière+ conjugate gradient on f from x0. grad may be
// nil (forward finite differences). The restart interval is the problem
// dimension n. Non-convergence is reported via the Result; errors are
// reserved for nil f / empty x0.
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

	n := len(x0)
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

	d := vecops.Negate(gx)

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		// Safeguard: a bent direction that stopped descending is discarded
		// for plain steepest descent.
		if vecops.Dot(gx, d) >= 0 {
			d = vecops.Negate(gx)
		}

		ls := linesearch.StrongWolfe(f, gradFn, x, d, fx, gx)
		functionCalls += ls.FunctionCalls
		gradientCalls += ls.GradientCalls

		if !ls.Success {
			return terminal(optimize.ReasonLineSearchFailed, iter), nil
		}

		xNew := vecops.AddScaled(x, d, ls.Alpha)
		gNew := ls.GNew
		if gNew == nil {
			gNew = gradFn(xNew)
			gradientCalls++
		}

		gradNorm := norm(gNew)
		stepNorm := norm(vecops.Sub(xNew, x))
		funcChange := fx - ls.FNew
		if funcChange < 0 {
			funcChange = -funcChange
		}

		// Polak–Ribière+ coefficient from the old and new gradients, before
		// the state advances. Periodic restart resets to steepest descent.
		var beta float64
		if iter%n != 0 {
			gg := vecops.Dot(gx, gx)
			if gg > 0 {
				beta = vecops.Dot(gNew, vecops.Sub(gNew, gx)) / gg
				if beta < 0 {
					beta = 0
				}
			}
		}

		x, fx, gx = xNew, ls.FNew, gNew

		if reason := optimize.Check(gradNorm, stepNorm, funcChange, iter, cfg); reason != optimize.None {
			return terminal(reason, iter), nil
		}

		d = vecops.AddScaled(vecops.Negate(gx), d, beta)
	}

	return terminal(optimize.ReasonMaxIterations, cfg.MaxIterations), nil
}
