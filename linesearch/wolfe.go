package linesearch

import (
	"math"

	"github.com/katalvlaran/lvlopt/optimize"
	"github.com/katalvlaran/lvlopt/vecops"
)

// StrongWolfe performs a bracket-and-zoom line search from x along d,
// given fx = f(x) and gx = ∇f(x), returning a step that satisfies the strong
// Wolfe conditions:
//
//	Armijo:    f(x+αd) ≤ fx + C1·α·(gx·d)
//	Curvature: |∇f(x+αd)·d| ≤ C2·|gx·d|
//
// Bracketing starts at InitialAlpha and doubles (capped at AlphaMax) for at
// most MaxIterations trials; zoom bisects a bracket for at most
// ZoomIterations steps. A non-descent direction fails immediately with zero
// evaluations. When a budget exhausts or the bracket collapses below
// BracketTol, the best point found is returned with Success=false.
func StrongWolfe(f optimize.Objective, grad optimize.Gradient, x, d []float64, fx float64, gx []float64, opts ...Option) Result {
	cfg := apply(DefaultWolfe(), opts)

	dg0 := vecops.Dot(gx, d)
	if dg0 >= 0 {
		return Result{Alpha: 0, FNew: fx, Success: false}
	}

	s := wolfeState{
		f: f, grad: grad,
		x: x, d: d,
		fx: fx, dg0: dg0,
		cfg: cfg,
	}

	return s.search()
}

// wolfeState carries the shared evaluation counters and constants through
// the bracket and zoom phases.
type wolfeState struct {
	f    optimize.Objective
	grad optimize.Gradient
	x, d []float64
	fx   float64
	dg0  float64
	cfg  Options

	functionCalls int
	gradientCalls int
}

// phi evaluates φ(α) = f(x + α·d), counting the call.
func (s *wolfeState) phi(alpha float64) float64 {
	s.functionCalls++

	return s.f(vecops.AddScaled(s.x, s.d, alpha))
}

// dphi evaluates φ'(α) = ∇f(x + α·d)·d, counting the call and returning the
// gradient alongside so a successful search hands it to the caller for free.
func (s *wolfeState) dphi(alpha float64) (float64, []float64) {
	s.gradientCalls++
	g := s.grad(vecops.AddScaled(s.x, s.d, alpha))

	return vecops.Dot(g, s.d), g
}

// armijoHolds reports the sufficient-decrease condition at (alpha, phiA).
func (s *wolfeState) armijoHolds(alpha, phiA float64) bool {
	return phiA <= s.fx+s.cfg.C1*alpha*s.dg0
}

// curvatureHolds reports the strong curvature condition for slope φ'(α).
func (s *wolfeState) curvatureHolds(slope float64) bool {
	return math.Abs(slope) <= s.cfg.C2*math.Abs(s.dg0)
}

// search runs the bracketing phase.
//
// Invariants maintained per Nocedal & Wright's Algorithm 3.5:
//   - alphaPrev has passed Armijo with a still-negative slope (or is 0);
//   - the first trial violating Armijo, or not improving on the previous
//     trial, places an acceptable step inside [alphaPrev, alpha];
//   - a trial with non-negative slope places one inside [alpha, alphaPrev].
func (s *wolfeState) search() Result {
	var (
		alphaPrev float64
		phiPrev   = s.fx
		gPrev     []float64 // gradient at alphaPrev; nil at alpha 0
	)

	alpha := s.cfg.InitialAlpha

	for i := 1; i <= s.cfg.MaxIterations; i++ {
		phiA := s.phi(alpha)

		// Armijo violated, or the objective stopped improving between
		// consecutive trials: the bracket [alphaPrev, alpha] holds a winner.
		if !s.armijoHolds(alpha, phiA) || (i > 1 && phiA >= phiPrev) {
			return s.zoom(alphaPrev, alpha, phiPrev, gPrev)
		}

		slope, g := s.dphi(alpha)

		if s.curvatureHolds(slope) {
			return Result{
				Alpha: alpha, FNew: phiA, GNew: g,
				FunctionCalls: s.functionCalls, GradientCalls: s.gradientCalls,
				Success: true,
			}
		}

		// Slope turned non-negative: we overshot a minimum; bracket in
		// reverse orientation.
		if slope >= 0 {
			return s.zoom(alpha, alphaPrev, phiA, g)
		}

		alphaPrev, phiPrev, gPrev = alpha, phiA, g
		alpha = math.Min(2*alpha, s.cfg.AlphaMax)
	}

	// Bracketing budget exhausted. alphaPrev is the last accepted trial and
	// carries its gradient; report it as the best known point, as a failure.
	return Result{
		Alpha: alphaPrev, FNew: phiPrev, GNew: gPrev,
		FunctionCalls: s.functionCalls, GradientCalls: s.gradientCalls,
		Success: false,
	}
}

// zoom bisects the bracket [lo, hi] until the curvature condition is met.
// phiLo is φ(lo); gLo is the gradient at lo when one has been evaluated
// there (nil at α = 0). lo always satisfies Armijo; hi does not, or does not
// improve on lo — the bracket orientation may place hi on either side.
func (s *wolfeState) zoom(lo, hi, phiLo float64, gLo []float64) Result {
	for j := 0; j < s.cfg.ZoomIterations; j++ {
		// Bracket width collapsed: nothing left to resolve.
		if math.Abs(hi-lo) < s.cfg.BracketTol {
			break
		}

		mid := (lo + hi) / 2
		phiMid := s.phi(mid)

		// Armijo or monotonicity violation at the midpoint: shrink hi.
		if !s.armijoHolds(mid, phiMid) || phiMid >= phiLo {
			hi = mid

			continue
		}

		slope, g := s.dphi(mid)

		if s.curvatureHolds(slope) {
			return Result{
				Alpha: mid, FNew: phiMid, GNew: g,
				FunctionCalls: s.functionCalls, GradientCalls: s.gradientCalls,
				Success: true,
			}
		}

		// The minimum lies on the lo side of mid: collapse hi onto the old
		// lo before advancing. Otherwise keep hi and advance lo toward it.
		if slope*(hi-lo) >= 0 {
			hi = lo
		}
		lo, phiLo, gLo = mid, phiMid, g
	}

	// Failure: hand back the best (lo) point with exact accounting. The
	// gradient at lo is reused when in hand, evaluated once otherwise.
	if gLo == nil {
		_, gLo = s.dphi(lo)
	}

	return Result{
		Alpha: lo, FNew: phiLo, GNew: gLo,
		FunctionCalls: s.functionCalls, GradientCalls: s.gradientCalls,
		Success: false,
	}
}
