// Package vecops provides pure n-dimensional vector arithmetic on []float64.
//
// Every operation allocates and returns a fresh slice; no operation ever
// mutates an argument. This discipline is load-bearing for the minimizers
// built on top: a caller's starting point, a simplex vertex or a gradient may
// be held across iterations, and silent aliasing would corrupt them.
//
// Operations:
//
//	– Dot(a, b)          — inner product Σ aᵢ·bᵢ
//	– Norm(v)            — Euclidean (L2) norm, sqrt(Dot(v, v))
//	– NormInf(v)         — infinity norm, max |vᵢ|
//	– Scale(v, s)        — s·v
//	– Add(a, b), Sub(a, b)
//	– Negate(v)          — Scale(v, -1)
//	– Clone(v)           — independent copy
//	– Zeros(n)           — zero vector of length n
//	– AddScaled(a, b, s) — a + s·b in one pass, no intermediate vector
//
// Mismatched operand lengths are a programmer error and panic; there is no
// meaningful recovery from adding a 3-vector to a 4-vector mid-iteration.
//
// Complexity: every operation is O(n) time, O(n) space (O(1) for Dot and the
// norms), with fixed loop order for determinism.
package vecops
