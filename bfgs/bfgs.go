package bfgs

import (
	"github.com/katalvlaran/lvlopt/linesearch"
	"github.com/katalvlaran/lvlopt/matrix"
	"github.com/katalvlaran/lvlopt/numdiff"
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/katalvlaran/lvlopt/vecops"
)

// curvatureGuard is the minimum y·s admitted into the inverse-Hessian
// update; anything smaller risks an indefinite H.
const curvatureGuard = 1e-10

// Minimize runs BFGS on f from x0.
//
// grad may be nil, in which case a forward finite-difference gradient is
// used (numdiff.Forward). Options override the shared convergence defaults.
//
// Returns:
//
//   - res: terminal optimize.Result. Non-convergence (budget exhausted,
//     line-search failure) is reported via res.Converged=false, never as an
//     error. res.Gradient carries the gradient at the final point.
//   - err: only for call-boundary validation — optimize.ErrNilObjective,
//     optimize.ErrEmptyPoint.
//
// x0 is cloned at entry and never mutated.
func Minimize(f optimize.Objective, grad optimize.Gradient, x0 []float64, opts ...optimize.Option) (optimize.Result, error) {
	// 1) Validate inputs — the only error paths in this package.
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

	// 2) Evaluate the starting state.
	n := len(x0)
	x := vecops.Clone(x0)
	fx := f(x)
	gx := gradFn(x)
	functionCalls := 1
	gradientCalls := 1

	// 3) Already stationary? Return before allocating H.
	if norm(gx) < cfg.GradTol {
		return optimize.Result{
			X: x, Fun: fx, Gradient: gx,
			Iterations:    0,
			FunctionCalls: functionCalls,
			GradientCalls: gradientCalls,
			Converged:     true,
			Message:       optimize.ReasonGradient.Message(),
		}, nil
	}

	h := matrix.Identity(n)

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		// 4) Quasi-Newton direction.
		d := vecops.Negate(h.MulVec(gx))

		// 5) Strong-Wolfe step along d.
		ls := linesearch.StrongWolfe(f, gradFn, x, d, fx, gx)
		functionCalls += ls.FunctionCalls
		gradientCalls += ls.GradientCalls

		if !ls.Success {
			return optimize.Result{
				X: x, Fun: fx, Gradient: gx,
				Iterations:    iter,
				FunctionCalls: functionCalls,
				GradientCalls: gradientCalls,
				Converged:     false,
				Message:       optimize.ReasonLineSearchFailed.Message(),
			}, nil
		}

		xNew := vecops.AddScaled(x, d, ls.Alpha)
		fNew := ls.FNew
		gNew := ls.GNew
		if gNew == nil {
			gNew = gradFn(xNew)
			gradientCalls++
		}

		// 6) Secant pair and convergence measures.
		s := vecops.Sub(xNew, x)
		y := vecops.Sub(gNew, gx)

		gradNorm := norm(gNew)
		stepNorm := norm(s)
		funcChange := fNew - fx
		if funcChange < 0 {
			funcChange = -funcChange
		}

		x, fx, gx = xNew, fNew, gNew

		if reason := optimize.Check(gradNorm, stepNorm, funcChange, iter, cfg); reason != optimize.None {
			return optimize.Result{
				X: x, Fun: fx, Gradient: gx,
				Iterations:    iter,
				FunctionCalls: functionCalls,
				GradientCalls: gradientCalls,
				Converged:     reason.Converged(),
				Message:       reason.Message(),
			}, nil
		}

		// 7) Rank-2 update, guarded. A failed guard leaves H untouched for
		// the next iteration rather than poisoning it.
		if ys := vecops.Dot(y, s); ys > curvatureGuard {
			h = update(h, s, y, 1/ys)
		}
	}

	// Unreachable: Check returns ReasonMaxIterations at iter==MaxIterations.
	return optimize.Result{
		X: x, Fun: fx, Gradient: gx,
		Iterations:    cfg.MaxIterations,
		FunctionCalls: functionCalls,
		GradientCalls: gradientCalls,
		Converged:     false,
		Message:       optimize.ReasonMaxIterations.Message(),
	}, nil
}

// update computes the BFGS inverse-Hessian update into a fresh matrix:
//
//	H' = (I − ρsyᵀ)·H·(I − ρysᵀ) + ρssᵀ
//
// expanded to
//
//	H'ᵢⱼ = Hᵢⱼ − ρ(sᵢ·(yᵀH)ⱼ + (Hy)ᵢ·sⱼ) + ρ(ρ·yᵀHy + 1)·sᵢ·sⱼ
//
// The expansion costs one H·y product, one yᵀ·H product and an O(n²) fill —
// no intermediate n×n temporaries. H is read-only throughout: the returned
// matrix is freshly allocated, so the caller's direction computation and the
// update never alias.
func update(h *matrix.Dense, s, y []float64, rho float64) *matrix.Dense {
	n := len(s)
	hy := h.MulVec(y)
	yth := h.VecMul(y)
	ythy := vecops.Dot(y, hy)

	coef := rho * (rho*ythy + 1)
	out := matrix.New(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j) - rho*(s[i]*yth[j]+hy[i]*s[j]) + coef*s[i]*s[j]
			out.Set(i, j, v)
		}
	}

	return out
}
