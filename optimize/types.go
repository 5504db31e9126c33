// Package optimize: shared callback types, options and sentinel errors.
package optimize

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlopt/vecops"
)

// Sentinel errors returned by the minimizers' call-boundary validation.
var (
	// ErrNilObjective indicates that a nil objective callback was supplied.
	ErrNilObjective = errors.New("optimize: objective function is nil")

	// ErrEmptyPoint indicates that the starting point has zero length.
	ErrEmptyPoint = errors.New("optimize: starting point is empty")
)

// Objective is a caller-supplied function f: ℝⁿ → ℝ to minimize.
// It must be deterministic and must not retain or mutate its argument.
type Objective func(x []float64) float64

// Gradient is an optional caller-supplied analytic gradient ∇f: ℝⁿ → ℝⁿ.
// It must return a fresh slice and must not retain or mutate its argument.
type Gradient func(x []float64) []float64

// NormKind selects the vector norm used for gradient- and step-convergence
// tests. Reference implementations disagree on this (some use ∞, some L2),
// so it is per-call configuration rather than a hard-coded choice.
type NormKind int

const (
	// NormInf measures convergence with the infinity norm max|vᵢ| (default).
	NormInf NormKind = iota

	// NormL2 measures convergence with the Euclidean norm.
	NormL2
)

// Default tolerances and budget — single source of truth for zero-value
// behavior. These are the values DefaultOptions returns.
const (
	// DefaultGradTol terminates when the gradient norm drops below it.
	DefaultGradTol = 1e-8

	// DefaultStepTol terminates when the step norm drops below it.
	DefaultStepTol = 1e-8

	// DefaultFuncTol terminates when |f change| drops below it.
	DefaultFuncTol = 1e-12

	// DefaultMaxIterations caps the outer iteration count.
	DefaultMaxIterations = 1000
)

// Options configures a single minimizer invocation.
//
// GradTol       – gradient-norm convergence threshold (> 0).
// StepTol       – step-norm convergence threshold (> 0).
// FuncTol       – function-change convergence threshold (> 0).
// MaxIterations – outer iteration budget (≥ 1).
// Norm          – norm used by the gradient/step tests (NormInf or NormL2).
type Options struct {
	GradTol       float64
	StepTol       float64
	FuncTol       float64
	MaxIterations int
	Norm          NormKind
}

// Option represents a functional override applied on top of DefaultOptions.
type Option func(*Options)

// DefaultOptions returns the documented defaults. Use as a starting point
// for functional-option overrides; never shared, always a fresh value.
func DefaultOptions() Options {
	return Options{
		GradTol:       DefaultGradTol,
		StepTol:       DefaultStepTol,
		FuncTol:       DefaultFuncTol,
		MaxIterations: DefaultMaxIterations,
		Norm:          NormInf,
	}
}

// Apply copies o, applies every override, and returns the result. Minimizers
// call this once at entry so a caller's Options value is never aliased.
func Apply(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithGradTol overrides the gradient-norm threshold.
// Must be positive; non-positive values panic (programmer error).
func WithGradTol(tol float64) Option {
	if tol <= 0 {
		panic(fmt.Sprintf("optimize: WithGradTol(%g): tolerance must be > 0", tol))
	}

	return func(o *Options) { o.GradTol = tol }
}

// WithStepTol overrides the step-norm threshold. Must be positive.
func WithStepTol(tol float64) Option {
	if tol <= 0 {
		panic(fmt.Sprintf("optimize: WithStepTol(%g): tolerance must be > 0", tol))
	}

	return func(o *Options) { o.StepTol = tol }
}

// WithFuncTol overrides the function-change threshold. Must be positive.
func WithFuncTol(tol float64) Option {
	if tol <= 0 {
		panic(fmt.Sprintf("optimize: WithFuncTol(%g): tolerance must be > 0", tol))
	}

	return func(o *Options) { o.FuncTol = tol }
}

// WithMaxIterations overrides the outer iteration budget. Must be ≥ 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("optimize: WithMaxIterations(%d): budget must be >= 1", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithNorm selects the convergence norm (NormInf or NormL2).
func WithNorm(k NormKind) Option {
	if k != NormInf && k != NormL2 {
		panic(fmt.Sprintf("optimize: WithNorm(%d): unknown norm kind", k))
	}

	return func(o *Options) { o.Norm = k }
}

// VecNorm returns the vector norm selected by o.Norm.
func (o Options) VecNorm() func([]float64) float64 {
	if o.Norm == NormL2 {
		return vecops.Norm
	}

	return vecops.NormInf
}
