// Package numdiff estimates gradients by finite differences, for callers
// that cannot (or choose not to) supply an analytic gradient.
//
// Two schemes are provided:
//
//	– Forward: gᵢ = (f(x + hᵢ·eᵢ) − f(x)) / hᵢ with hᵢ = √ε·max(|xᵢ|, 1).
//	  Costs 1 baseline + n perturbed evaluations; O(h) truncation error.
//	– Central: gᵢ = (f(x + hᵢ·eᵢ) − f(x − hᵢ·eᵢ)) / (2hᵢ) with
//	  hᵢ = ε^(1/3)·max(|xᵢ|, 1). Costs 2n evaluations; O(h²) error.
//
// ε is the IEEE-754 double-precision unit roundoff, 2.220446049250313e-16,
// obtained as math.Nextafter(1, 2) − 1. It is emphatically NOT Go's
// math.SmallestNonzeroFloat64 — confusing the two is a classic porting bug
// that silently destroys the step-size scaling.
//
// Gradient wraps either scheme as an optimize.Gradient closure; minimizers
// count one gradient call per closure invocation, with the objective
// evaluations inside it priced into that call.
package numdiff
