// Package cg implements nonlinear conjugate gradient with the
// Polak–Ribière+ update.
//
// CG sits between steepest descent and BFGS: it bends each new search
// direction with a scalar multiple of the previous one,
//
//	d' = −∇f(xNew) + β·d,  β = max(0, ∇f(xNew)·(∇f(xNew) − ∇f(x)) / ‖∇f(x)‖²)
//
// gaining quadratic-termination behavior without any matrix state — O(n)
// memory where BFGS pays O(n²). The + in Polak–Ribière+ is the clamp
// β ≥ 0, which doubles as an automatic restart when consecutive gradients
// lose conjugacy.
//
// Directions are additionally reset to steepest descent every n iterations
// and whenever the bent direction stops being a descent direction — the
// standard safeguards for nonquadratic objectives. Steps come from the
// shared strong-Wolfe search; convergence from the shared optimize model.
package cg
