// Package neldermead implements the Nelder–Mead derivative-free simplex
// minimizer.
//
// 🚀 How it works:
//
//	The method maintains n+1 vertices forming a non-degenerate simplex in
//	ℝⁿ, sorted ascending by objective value after every iteration. Each
//	iteration moves the worst vertex through up to four candidate
//	operations against the centroid of the remaining vertices:
//
//	  1. Reflect  xr = c + α(c − worst)           α = 1
//	  2. Expand   xe = c + γ(xr − c)              γ = 2    (when xr is a new best)
//	  3. Contract xc = c + ρ(xr − c) or            ρ = 0.5  (outside/inside)
//	              xc = c + ρ(worst − c)
//	  4. Shrink   every non-best vertex toward    σ = 0.5
//	              the best one
//
// Acceptance tie-breaks follow the classic formulation exactly: a reflected
// point replaces the worst vertex when fBest ≤ f(xr) < fSecondWorst; an
// outside contraction is kept when f(xc) ≤ f(xr); an inside contraction when
// f(xc) < fWorst. Getting ≤ vs < wrong here changes trajectories on plateaus.
//
// Convergence is tested on the sorted simplex before moving:
//
//	(a) the population standard deviation of the n+1 objective values falls
//	    below FuncTol, or
//	(b) every non-best vertex lies within StepTol of the best vertex,
//	    measured with the configured norm (distance from best, not max
//	    pairwise distance).
//
// No gradients anywhere: Result.Gradient is nil and GradientCalls is 0.
//
// Complexity per iteration: O(n²) for the sort and centroid, plus 1–2
// objective evaluations (n on a shrink). Memory: O(n²) for the simplex.
package neldermead
