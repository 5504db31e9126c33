// Package bfgs implements the BFGS quasi-Newton minimizer for smooth
// unconstrained objectives.
//
// 🚀 What is BFGS?
//
//	BFGS maintains an approximation H to the inverse Hessian, built
//	incrementally from observed gradient differences. Each iteration:
//	  1. direction  d = −H·∇f(x)
//	  2. step       α from a strong-Wolfe line search along d
//	  3. secant     s = xNew − x,  y = ∇f(xNew) − ∇f(x)
//	  4. update     H' = (I − ρsyᵀ)·H·(I − ρysᵀ) + ρssᵀ,  ρ = 1/(y·s)
//
// Two guards keep the recursion honest:
//
//   - Curvature guard: the update is applied only when y·s > 1e-10. A
//     non-positive y·s would make H indefinite, turning later "descent"
//     directions into ascent directions.
//   - Replacement, not mutation: H feeds both the current direction and its
//     own next update, so each accepted iteration computes a brand-new
//     matrix. In-place updates would read and write the same cells inside
//     one formula evaluation.
//
// The gradient may be analytic (supplied by the caller) or a forward-
// difference approximation (pass nil). Convergence follows the shared
// optimize.Check model; line-search failure terminates the run early with
// Converged=false rather than looping on an unusable direction.
//
// Complexity per iteration: O(n²) for the direction and update, plus the
// line search's objective/gradient evaluations. Memory: O(n²) for H.
package bfgs
