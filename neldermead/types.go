// Package neldermead: configuration and functional options.
package neldermead

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/optimize"
)

// Default simplex coefficients — the classic Nelder–Mead values.
const (
	// DefaultAlpha is the reflection coefficient.
	DefaultAlpha = 1.0

	// DefaultGamma is the expansion coefficient.
	DefaultGamma = 2.0

	// DefaultRho is the contraction coefficient.
	DefaultRho = 0.5

	// DefaultSigma is the shrink coefficient.
	DefaultSigma = 0.5

	// DefaultSimplexScale sizes the initial simplex: vertex i offsets x0
	// by SimplexScale·max(|x0ᵢ|, 1) along coordinate i.
	DefaultSimplexScale = 0.05
)

// Options configures one Nelder–Mead run: the shared convergence model
// (embedded) plus the simplex coefficients.
type Options struct {
	optimize.Options

	Alpha        float64 // reflection (> 0)
	Gamma        float64 // expansion (> 1)
	Rho          float64 // contraction (in (0, 1))
	Sigma        float64 // shrink (in (0, 1))
	SimplexScale float64 // initial simplex step (> 0)
}

// Option is a functional override applied on top of DefaultOptions.
type Option func(*Options)

// DefaultOptions returns the classic coefficients over the shared
// convergence defaults.
func DefaultOptions() Options {
	return Options{
		Options:      optimize.DefaultOptions(),
		Alpha:        DefaultAlpha,
		Gamma:        DefaultGamma,
		Rho:          DefaultRho,
		Sigma:        DefaultSigma,
		SimplexScale: DefaultSimplexScale,
	}
}

// WithConvergence applies shared convergence overrides (tolerances, budget,
// norm) to the embedded optimize.Options.
func WithConvergence(opts ...optimize.Option) Option {
	return func(o *Options) {
		for _, opt := range opts {
			opt(&o.Options)
		}
	}
}

// WithAlpha overrides the reflection coefficient. Must be positive.
func WithAlpha(a float64) Option {
	if a <= 0 {
		panic(fmt.Sprintf("neldermead: WithAlpha(%g): coefficient must be > 0", a))
	}

	return func(o *Options) { o.Alpha = a }
}

// WithGamma overrides the expansion coefficient. Must exceed 1, otherwise
// "expansion" would not move past the reflected point.
func WithGamma(g float64) Option {
	if g <= 1 {
		panic(fmt.Sprintf("neldermead: WithGamma(%g): coefficient must be > 1", g))
	}

	return func(o *Options) { o.Gamma = g }
}

// WithRho overrides the contraction coefficient. Must lie in (0, 1).
func WithRho(r float64) Option {
	if r <= 0 || r >= 1 {
		panic(fmt.Sprintf("neldermead: WithRho(%g): coefficient must be in (0,1)", r))
	}

	return func(o *Options) { o.Rho = r }
}

// WithSigma overrides the shrink coefficient. Must lie in (0, 1).
func WithSigma(s float64) Option {
	if s <= 0 || s >= 1 {
		panic(fmt.Sprintf("neldermead: WithSigma(%g): coefficient must be in (0,1)", s))
	}

	return func(o *Options) { o.Sigma = s }
}

// WithSimplexScale overrides the initial simplex step. Must be positive.
func WithSimplexScale(s float64) Option {
	if s <= 0 {
		panic(fmt.Sprintf("neldermead: WithSimplexScale(%g): scale must be > 0", s))
	}

	return func(o *Options) { o.SimplexScale = s }
}
