package neldermead

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/katalvlaran/lvlopt/vecops"
)

// vertex pairs a simplex point with its objective value.
type vertex struct {
	x  []float64
	fx float64
}

// Minimize runs the Nelder–Mead simplex method on f from x0.
//
// Returns:
//
//   - res: terminal optimize.Result with Gradient=nil and GradientCalls=0 —
//     the method never touches derivatives. Budget exhaustion reports the
//     best vertex with Converged=false.
//   - err: only optimize.ErrNilObjective / optimize.ErrEmptyPoint.
//
// x0 is cloned into the initial simplex and never mutated.
func Minimize(f optimize.Objective, x0 []float64, opts ...Option) (optimize.Result, error) {
	if f == nil {
		return optimize.Result{}, optimize.ErrNilObjective
	}
	if len(x0) == 0 {
		return optimize.Result{}, optimize.ErrEmptyPoint
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	norm := cfg.VecNorm()

	// 1) Build the initial simplex: x0 plus one axis-offset vertex per
	// coordinate, offset scaled to the coordinate's magnitude.
	n := len(x0)
	verts := make([]vertex, n+1)
	verts[0] = vertex{x: vecops.Clone(x0)}
	for i := 1; i <= n; i++ {
		h := cfg.SimplexScale * math.Max(math.Abs(x0[i-1]), 1)
		xi := vecops.Clone(x0)
		xi[i-1] += h
		verts[i] = vertex{x: xi}
	}

	functionCalls := 0
	for i := range verts {
		verts[i].fx = f(verts[i].x)
		functionCalls++
	}

	terminal := func(reason optimize.Reason, iter int) optimize.Result {
		return optimize.Result{
			X:             vecops.Clone(verts[0].x),
			Fun:           verts[0].fx,
			Gradient:      nil,
			Iterations:    iter,
			FunctionCalls: functionCalls,
			GradientCalls: 0,
			Converged:     reason.Converged(),
			Message:       reason.Message(),
		}
	}

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		// 2) Sort ascending by objective value; stable so equal values keep
		// their arrival order (deterministic trajectories on plateaus).
		sort.SliceStable(verts, func(i, j int) bool { return verts[i].fx < verts[j].fx })

		// 3a) Function-spread convergence: population standard deviation of
		// the n+1 values.
		var mean float64
		for i := range verts {
			mean += verts[i].fx
		}
		mean /= float64(n + 1)

		var variance float64
		for i := range verts {
			d := verts[i].fx - mean
			variance += d * d
		}
		if math.Sqrt(variance/float64(n+1)) < cfg.FuncTol {
			return terminal(optimize.ReasonFunction, iter), nil
		}

		// 3b) Diameter convergence: max distance of the non-best vertices
		// from the best one, in the configured norm.
		var diameter float64
		for i := 1; i <= n; i++ {
			if d := norm(vecops.Sub(verts[i].x, verts[0].x)); d > diameter {
				diameter = d
			}
		}
		if diameter < cfg.StepTol {
			return terminal(optimize.ReasonStep, iter), nil
		}

		// 4) Centroid of every vertex except the worst.
		centroid := vecops.Zeros(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				centroid[j] += verts[i].x[j]
			}
		}
		centroid = vecops.Scale(centroid, 1/float64(n))

		worst := verts[n]

		// 5) Reflect.
		xr := vecops.AddScaled(centroid, vecops.Sub(centroid, worst.x), cfg.Alpha)
		fr := f(xr)
		functionCalls++

		if verts[0].fx <= fr && fr < verts[n-1].fx {
			verts[n] = vertex{x: xr, fx: fr}

			continue
		}

		// 6) Expand when the reflection is a new best; keep the better of
		// the expanded and reflected points.
		if fr < verts[0].fx {
			xe := vecops.AddScaled(centroid, vecops.Sub(xr, centroid), cfg.Gamma)
			fe := f(xe)
			functionCalls++

			if fe < fr {
				verts[n] = vertex{x: xe, fx: fe}
			} else {
				verts[n] = vertex{x: xr, fx: fr}
			}

			continue
		}

		// 7) Contract: outside toward the reflected point when it improves
		// on the worst vertex, inside toward the worst vertex otherwise.
		if fr < worst.fx {
			xc := vecops.AddScaled(centroid, vecops.Sub(xr, centroid), cfg.Rho)
			fc := f(xc)
			functionCalls++

			if fc <= fr {
				verts[n] = vertex{x: xc, fx: fc}

				continue
			}
		} else {
			xc := vecops.AddScaled(centroid, vecops.Sub(worst.x, centroid), cfg.Rho)
			fc := f(xc)
			functionCalls++

			if fc < worst.fx {
				verts[n] = vertex{x: xc, fx: fc}

				continue
			}
		}

		// 8) Shrink every non-best vertex toward the best.
		for i := 1; i <= n; i++ {
			verts[i].x = vecops.AddScaled(verts[0].x, vecops.Sub(verts[i].x, verts[0].x), cfg.Sigma)
			verts[i].fx = f(verts[i].x)
			functionCalls++
		}
	}

	// 9) Budget exhausted: one final sort so the best vertex is reported.
	sort.SliceStable(verts, func(i, j int) bool { return verts[i].fx < verts[j].fx })

	return terminal(optimize.ReasonMaxIterations, cfg.MaxIterations), nil
}
