// Package lvlopt is a pure-Go toolkit for unconstrained continuous
// optimization — from vector primitives to quasi-Newton minimizers.
//
// 🚀 What is lvlopt?
//
//	A deterministic, allocation-disciplined library that brings together:
//		• Vector primitives: dot products, norms, fused updates (vecops)
//		• Dense matrices:    the row-major storage behind BFGS (matrix)
//		• Convergence model: options, results, termination reasons (optimize)
//		• Derivatives:       forward/central finite differences (numdiff)
//		• Line searches:     Armijo backtracking & strong Wolfe (linesearch)
//		• Minimizers:        BFGS, Nelder–Mead, steepest descent, CG
//
// ✨ Why choose lvlopt?
//
//   - Deterministic – single-threaded, no hidden randomness, exact call counts
//   - Safe by construction – callbacks and inputs are never mutated
//   - Pure Go – no cgo, no hidden deps
//   - Re-entrant – per-call options, zero global state
//
// Everything is organized under small single-purpose packages:
//
//	vecops/     — n-dimensional vector arithmetic (allocating, never mutating)
//	matrix/     — minimal row-major Dense matrix for the inverse Hessian
//	optimize/   — shared Options, Result, and convergence reasons
//	numdiff/    — numerical gradient approximation
//	linesearch/ — step-size searches satisfying Armijo / strong Wolfe
//	bfgs/       — quasi-Newton minimizer
//	neldermead/ — derivative-free simplex minimizer
//	graddesc/   — steepest descent with backtracking
//	cg/         — nonlinear conjugate gradient (Polak–Ribière+)
//	funcs/      — classic benchmark objectives with analytic gradients
//
// Quick example:
//
//	rosen := funcs.Rosenbrock()
//	res, err := bfgs.Minimize(rosen.F, rosen.Grad, []float64{-1.2, 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Message, res.X)
//
// Dive into each package's doc.go for algorithm outlines, complexity notes
// and worked examples.
package lvlopt
