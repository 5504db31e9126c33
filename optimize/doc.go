// Package optimize defines the shared convergence model used by every
// minimizer in lvlopt: per-call options, the immutable result record, and
// the tagged termination reason.
//
// 🚀 What lives here?
//
//	  • Objective / Gradient — the caller-supplied callback types
//	  • Options             — per-call tolerances and iteration budget
//	  • Reason              — why a run terminated (and whether that counts
//	                          as convergence)
//	  • Result              — the terminal record every minimizer returns
//	  • Check               — the single termination test all minimizers share
//
// ⚙️ Termination priority:
//
//	Check tests criteria in strict order gradient → step → function →
//	maxIterations and returns the first satisfied reason. The order is
//	deliberate: a small gradient norm is the strongest mathematical
//	certificate of a stationary point, so it preempts weaker signals even
//	when several thresholds are crossed at once.
//
// Non-convergence is a normal outcome, reported as Result.Converged=false
// with a human-readable Message — never as an error. Errors are reserved for
// call-boundary validation (nil objective, empty starting point).
//
// Options are freshly constructed per call via DefaultOptions plus functional
// overrides; there is no process-wide configuration, so independent
// invocations on separate goroutines are safe by construction.
package optimize
