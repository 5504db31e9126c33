package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlopt/bfgs"
	"github.com/katalvlaran/lvlopt/cg"
	"github.com/katalvlaran/lvlopt/funcs"
	"github.com/katalvlaran/lvlopt/graddesc"
	"github.com/katalvlaran/lvlopt/neldermead"
	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/spf13/cobra"
)

var (
	algorithm string
	function  string
	startFlag string
	maxIter   int
	gradTol   float64
	normFlag  string
	numeric   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a minimizer on a benchmark function",
	Long: `Runs the chosen algorithm against a benchmark objective and prints
the terminal result: best point, objective value, iteration and
evaluation counts, and the convergence message.`,
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&algorithm, "algorithm", "bfgs", "Algorithm: bfgs, neldermead, graddesc, cg")
	runCmd.Flags().StringVar(&function, "function", "rosenbrock", "Benchmark: "+strings.Join(funcs.Names(), ", "))
	runCmd.Flags().StringVar(&startFlag, "x0", "", "Starting point as comma-separated floats (default: the benchmark's customary start)")
	runCmd.Flags().IntVar(&maxIter, "max-iter", optimize.DefaultMaxIterations, "Outer iteration budget")
	runCmd.Flags().Float64Var(&gradTol, "grad-tol", optimize.DefaultGradTol, "Gradient-norm convergence tolerance")
	runCmd.Flags().StringVar(&normFlag, "norm", "inf", "Convergence norm: inf or l2")
	runCmd.Flags().BoolVar(&numeric, "numeric", false, "Force finite-difference gradients even when an analytic gradient exists")

	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	fn, err := funcs.ByName(strings.ToLower(function))
	if err != nil {
		return fmt.Errorf("resolving benchmark %q: %w", function, err)
	}

	x0 := fn.Start
	if startFlag != "" {
		if x0, err = parsePoint(startFlag); err != nil {
			return fmt.Errorf("parsing --x0: %w", err)
		}
	}

	norm := optimize.NormInf
	if strings.EqualFold(normFlag, "l2") {
		norm = optimize.NormL2
	}

	grad := fn.Grad
	if numeric {
		grad = nil
	}

	opts := []optimize.Option{
		optimize.WithMaxIterations(maxIter),
		optimize.WithGradTol(gradTol),
		optimize.WithNorm(norm),
	}

	slog.Info("Starting optimization",
		"algorithm", algorithm, "function", fn.Name, "x0", x0, "numeric", numeric)

	start := time.Now()

	var res optimize.Result
	switch strings.ToLower(algorithm) {
	case "bfgs":
		res, err = bfgs.Minimize(fn.F, grad, x0, opts...)
	case "neldermead":
		res, err = neldermead.Minimize(fn.F, x0, neldermead.WithConvergence(opts...))
	case "graddesc":
		res, err = graddesc.Minimize(fn.F, grad, x0, opts...)
	case "cg":
		res, err = cg.Minimize(fn.F, grad, x0, opts...)
	default:
		return fmt.Errorf("unknown algorithm %q (want bfgs, neldermead, graddesc or cg)", algorithm)
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", algorithm, err)
	}

	slog.Info("Finished", "elapsed", time.Since(start), "converged", res.Converged)

	fmt.Printf("%s on %s\n", algorithm, fn.Name)
	fmt.Printf("  x          = %v\n", res.X)
	fmt.Printf("  f(x)       = %.12g\n", res.Fun)
	fmt.Printf("  iterations = %d\n", res.Iterations)
	fmt.Printf("  f calls    = %d, grad calls = %d\n", res.FunctionCalls, res.GradientCalls)
	fmt.Printf("  converged  = %v (%s)\n", res.Converged, res.Message)

	return nil
}

// parsePoint parses "a,b,c" into a float64 slice.
func parsePoint(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		out = append(out, v)
	}

	return out, nil
}
