package optimize

// Reason tags why a minimizer terminated. The zero value None means no
// criterion has been met yet; every other value is terminal.
//
// The closed set of variants:
//
//	None                   – keep iterating
//	ReasonGradient         – gradient norm below GradTol (convergence)
//	ReasonStep             – step norm below StepTol (convergence)
//	ReasonFunction         – function change below FuncTol (convergence)
//	ReasonMaxIterations    – iteration budget exhausted (not convergence)
//	ReasonLineSearchFailed – line search could not find an acceptable step
//	                         (not convergence)
type Reason int

const (
	// None means no termination criterion has been met.
	None Reason = iota

	// ReasonGradient: the gradient norm fell below GradTol.
	ReasonGradient

	// ReasonStep: the step norm fell below StepTol.
	ReasonStep

	// ReasonFunction: the function change fell below FuncTol.
	ReasonFunction

	// ReasonMaxIterations: the iteration budget was exhausted.
	ReasonMaxIterations

	// ReasonLineSearchFailed: no acceptable step exists along the search
	// direction (no descent direction, or the bracket never resolved).
	ReasonLineSearchFailed
)

// Converged reports whether r certifies convergence. Only the gradient, step
// and function criteria do; budget exhaustion and line-search failure are
// terminal but not convergence.
func (r Reason) Converged() bool {
	switch r {
	case ReasonGradient, ReasonStep, ReasonFunction:
		return true
	default:
		return false
	}
}

// Message renders the human-readable termination message carried by Result.
func (r Reason) Message() string {
	switch r {
	case ReasonGradient:
		return "Converged: gradient norm below tolerance"
	case ReasonStep:
		return "Converged: step size below tolerance"
	case ReasonFunction:
		return "Converged: function change below tolerance"
	case ReasonMaxIterations:
		return "Stopped: reached maximum iterations"
	case ReasonLineSearchFailed:
		return "Stopped: line search failed"
	default:
		return "Running: no termination criterion met"
	}
}

// String implements fmt.Stringer with the compact tag names used in logs.
func (r Reason) String() string {
	switch r {
	case ReasonGradient:
		return "gradient"
	case ReasonStep:
		return "step"
	case ReasonFunction:
		return "function"
	case ReasonMaxIterations:
		return "maxIterations"
	case ReasonLineSearchFailed:
		return "lineSearchFailed"
	default:
		return "none"
	}
}

// Check tests the termination criteria in strict priority order
// gradient → step → function → maxIterations and returns the first satisfied
// reason, or None. The ordering is deliberate: a small gradient norm is the
// strongest certificate of a stationary point, so it preempts weaker signals
// even when several thresholds are crossed simultaneously.
func Check(gradNorm, stepNorm, funcChange float64, iteration int, opts Options) Reason {
	if gradNorm < opts.GradTol {
		return ReasonGradient
	}
	if stepNorm < opts.StepTol {
		return ReasonStep
	}
	if funcChange < opts.FuncTol {
		return ReasonFunction
	}
	if iteration >= opts.MaxIterations {
		return ReasonMaxIterations
	}

	return None
}
