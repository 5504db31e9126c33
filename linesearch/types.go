// Package linesearch: result record, configuration and functional options.
package linesearch

import "fmt"

// Result reports the outcome of a line search.
//
// Alpha         – accepted (or best-found) step size; 0 when nothing was tried.
// FNew          – objective value at x + Alpha·d; the entry fx when Alpha is 0.
// GNew          – gradient at x + Alpha·d when one was evaluated there, else
//                 nil. Backtracking never evaluates gradients, so its GNew is
//                 always nil.
// FunctionCalls – exact objective evaluations performed by the search.
// GradientCalls – exact gradient evaluations performed by the search.
// Success       – whether the search's acceptance condition was met.
type Result struct {
	Alpha         float64
	FNew          float64
	GNew          []float64
	FunctionCalls int
	GradientCalls int
	Success       bool
}

// Defaults — single source of truth for both searches.
const (
	// DefaultInitialAlpha is the first trial step (the quasi-Newton natural step).
	DefaultInitialAlpha = 1.0

	// DefaultC1 is the Armijo sufficient-decrease constant.
	DefaultC1 = 1e-4

	// DefaultC2 is the strong-Wolfe curvature constant.
	DefaultC2 = 0.9

	// DefaultRho is the geometric shrink factor of the backtracking search.
	DefaultRho = 0.5

	// DefaultAlphaMax caps the bracketing phase's doubling trials.
	DefaultAlphaMax = 1e6

	// DefaultBacktrackIterations bounds the backtracking shrink loop.
	DefaultBacktrackIterations = 20

	// DefaultWolfeIterations bounds the bracketing (outer) loop.
	DefaultWolfeIterations = 25

	// DefaultZoomIterations bounds the bisection loop inside zoom.
	DefaultZoomIterations = 20

	// DefaultBracketTol is the bracket width below which zoom gives up and
	// returns its best point as a failure.
	DefaultBracketTol = 1e-12
)

// Options configures either search. Construct via DefaultBacktracking or
// DefaultWolfe and override with functional options; the two constructors
// differ only in MaxIterations.
type Options struct {
	InitialAlpha   float64
	C1             float64
	C2             float64
	Rho            float64
	AlphaMax       float64
	MaxIterations  int
	ZoomIterations int
	BracketTol     float64
}

// Option is a functional override applied on top of a defaults constructor.
type Option func(*Options)

// DefaultBacktracking returns the documented defaults for the Armijo search.
func DefaultBacktracking() Options {
	return Options{
		InitialAlpha:   DefaultInitialAlpha,
		C1:             DefaultC1,
		C2:             DefaultC2,
		Rho:            DefaultRho,
		AlphaMax:       DefaultAlphaMax,
		MaxIterations:  DefaultBacktrackIterations,
		ZoomIterations: DefaultZoomIterations,
		BracketTol:     DefaultBracketTol,
	}
}

// DefaultWolfe returns the documented defaults for the strong-Wolfe search.
func DefaultWolfe() Options {
	o := DefaultBacktracking()
	o.MaxIterations = DefaultWolfeIterations

	return o
}

// WithInitialAlpha overrides the first trial step. Must be positive.
func WithInitialAlpha(a float64) Option {
	if a <= 0 {
		panic(fmt.Sprintf("linesearch: WithInitialAlpha(%g): step must be > 0", a))
	}

	return func(o *Options) { o.InitialAlpha = a }
}

// WithC1 overrides the Armijo constant. Must lie in (0, 1).
func WithC1(c1 float64) Option {
	if c1 <= 0 || c1 >= 1 {
		panic(fmt.Sprintf("linesearch: WithC1(%g): constant must be in (0,1)", c1))
	}

	return func(o *Options) { o.C1 = c1 }
}

// WithC2 overrides the curvature constant. Must lie in (0, 1); callers are
// responsible for keeping C1 < C2, the usual Wolfe ordering.
func WithC2(c2 float64) Option {
	if c2 <= 0 || c2 >= 1 {
		panic(fmt.Sprintf("linesearch: WithC2(%g): constant must be in (0,1)", c2))
	}

	return func(o *Options) { o.C2 = c2 }
}

// WithRho overrides the backtracking shrink factor. Must lie in (0, 1).
func WithRho(rho float64) Option {
	if rho <= 0 || rho >= 1 {
		panic(fmt.Sprintf("linesearch: WithRho(%g): factor must be in (0,1)", rho))
	}

	return func(o *Options) { o.Rho = rho }
}

// WithAlphaMax overrides the bracketing cap. Must be positive.
func WithAlphaMax(a float64) Option {
	if a <= 0 {
		panic(fmt.Sprintf("linesearch: WithAlphaMax(%g): cap must be > 0", a))
	}

	return func(o *Options) { o.AlphaMax = a }
}

// WithMaxIterations overrides the outer iteration budget. Must be ≥ 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("linesearch: WithMaxIterations(%d): budget must be >= 1", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithZoomIterations overrides the zoom bisection budget. Must be ≥ 1.
func WithZoomIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("linesearch: WithZoomIterations(%d): budget must be >= 1", n))
	}

	return func(o *Options) { o.ZoomIterations = n }
}

// WithBracketTol overrides the zoom give-up width. Must be positive.
func WithBracketTol(tol float64) Option {
	if tol <= 0 {
		panic(fmt.Sprintf("linesearch: WithBracketTol(%g): width must be > 0", tol))
	}

	return func(o *Options) { o.BracketTol = tol }
}

func apply(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}

	return base
}
