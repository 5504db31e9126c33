// Package graddesc implements steepest descent with an Armijo backtracking
// line search.
//
// Each iteration steps along d = −∇f(x) with the largest backtracked step
// satisfying sufficient decrease. No curvature information is kept, so
// convergence is linear at best — on badly conditioned valleys expect a long
// crawl where BFGS takes a handful of iterations. It earns its keep as the
// cheapest gradient method: one gradient per iteration, no matrix state,
// and the backtracking search never evaluates gradients at trial points.
//
// Shares the optimize convergence model and accounting discipline with the
// other minimizers; grad may be nil for a forward finite-difference
// fallback.
package graddesc
