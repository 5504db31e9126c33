package optimize

// Result is the terminal record of a minimizer run. It is created once, at
// termination, and never mutated afterward.
//
// X             – best point found (fresh slice, independent of the caller's x0).
// Fun           – objective value at X.
// Gradient      – gradient at X for gradient-based methods; nil for
//                 derivative-free methods (Nelder–Mead).
// Iterations    – outer iterations performed.
// FunctionCalls – exact number of objective invocations, all phases included.
// GradientCalls – exact number of gradient invocations (0 for derivative-free).
// Converged     – true only for the gradient/step/function criteria.
// Message       – human-readable termination description.
type Result struct {
	X             []float64
	Fun           float64
	Gradient      []float64
	Iterations    int
	FunctionCalls int
	GradientCalls int
	Converged     bool
	Message       string
}
