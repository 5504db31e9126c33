package linesearch

import (
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/katalvlaran/lvlopt/vecops"
)

// Backtracking performs an Armijo (sufficient-decrease) line search from x
// along d, given fx = f(x) and gx = ∇f(x).
//
// Starting at InitialAlpha, the step shrinks by Rho until
// f(x + α·d) ≤ fx + C1·α·(gx·d) holds or MaxIterations trials are spent.
// The gradient is never evaluated; Result.GNew is always nil.
//
// A non-descent direction (gx·d ≥ 0) fails immediately without a single
// objective evaluation: no positive step along an ascent direction can
// satisfy Armijo, so probing would only burn the caller's budget.
func Backtracking(f optimize.Objective, x, d []float64, fx float64, gx []float64, opts ...Option) Result {
	cfg := apply(DefaultBacktracking(), opts)

	// 1) Descent check before anything else — zero evaluations on failure.
	dg := vecops.Dot(gx, d)
	if dg >= 0 {
		return Result{Alpha: 0, FNew: fx, Success: false}
	}

	// 2) Geometric shrink until sufficient decrease.
	alpha := cfg.InitialAlpha
	calls := 0

	var lastAlpha, lastF float64
	for i := 0; i < cfg.MaxIterations; i++ {
		xNew := vecops.AddScaled(x, d, alpha)
		fNew := f(xNew)
		calls++

		if fNew <= fx+cfg.C1*alpha*dg {
			return Result{
				Alpha:         alpha,
				FNew:          fNew,
				FunctionCalls: calls,
				Success:       true,
			}
		}

		lastAlpha, lastF = alpha, fNew
		alpha *= cfg.Rho
	}

	// 3) Budget exhausted: report the last trial as a failure, counts exact.
	return Result{
		Alpha:         lastAlpha,
		FNew:          lastF,
		FunctionCalls: calls,
		Success:       false,
	}
}
