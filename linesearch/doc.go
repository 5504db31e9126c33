// Package linesearch finds step sizes along a search direction, for the
// gradient-based minimizers.
//
// 🚀 Two searches are provided:
//
//	– Backtracking: the cheap Armijo (sufficient-decrease) search. Start at
//	  α₀ and shrink geometrically until f(x+αd) ≤ f(x) + c1·α·(g·d). Never
//	  evaluates the gradient. Used by steepest descent.
//	– StrongWolfe: the bracket-and-zoom search producing steps that satisfy
//	  the strong Wolfe conditions — Armijo plus the curvature condition
//	  |∇f(x+αd)·d| ≤ c2·|g·d|. Required by BFGS: the curvature condition is
//	  what keeps the secant pair (s, y) positive-definite-compatible.
//
// Phase outline for StrongWolfe:
//
//  1. Bracket: trial α starts at 1 and doubles (capped at AlphaMax). A trial
//     violating Armijo, or failing to improve on the previous trial, brackets
//     an acceptable step between the previous and current α — hand off to
//     zoom. A trial whose directional derivative turns non-negative brackets
//     in the reverse orientation. A trial satisfying curvature wins outright.
//  2. Zoom: bisect the bracket. Armijo/monotonicity violations shrink the hi
//     end; otherwise the midpoint slope either satisfies curvature (success)
//     or decides, via the sign of slope·(hi−lo), whether hi collapses onto
//     the old lo before lo advances.
//
// Failure semantics (no exception, just Success=false):
//
//	– d is not a descent direction (g·d ≥ 0): fail immediately with zero
//	  objective and gradient evaluations.
//	– Iteration budgets exhaust or the zoom bracket collapses below
//	  BracketTol: return the best point found, marked as failure.
//
// Every Result carries exact FunctionCalls/GradientCalls tallies so the
// outer minimizer's accounting stays exact across all phases.
package linesearch
