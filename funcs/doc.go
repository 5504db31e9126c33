// Package funcs provides the classic unconstrained-optimization benchmark
// objectives with analytic gradients, known minima and customary starting
// points.
//
// The suite:
//
//	– Sphere      f = x0² + x1²                      min 0 at (0, 0)
//	– Booth       f = (x0+2x1−7)² + (2x0+x1−5)²      min 0 at (1, 3)
//	– Rosenbrock  f = (1−x0)² + 100(x1−x0²)²         min 0 at (1, 1)
//	– Beale       three-term quartic valley           min 0 at (3, 0.5)
//	– Himmelblau  four symmetric minima               min 0 at (3, 2), …
//
// Each constructor returns a fresh Func value, so callers can never share
// mutable state through this package. ByName resolves a lower-case name for
// CLI-style dispatch.
package funcs
