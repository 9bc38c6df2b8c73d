// Package problem defines the typed Smoothed Convex Optimization
// instance every soco algorithm consumes: dimension, horizon, per-type
// bounds, switching weights, and the hitting-cost closure.
//
// Built by New/NewWithNorm from positional arguments and validated
// separately by Verify, with a sentinel-error catalog: every invariant
// violation has its own exported sentinel, checked with errors.Is.
package problem

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/soco/schedule"
)

// Sentinel errors for Problem construction and verification.
var (
	// ErrInvalidDimension indicates d < 1.
	ErrInvalidDimension = errors.New("problem: dimension must be >= 1")
	// ErrInvalidHorizon indicates t_end < 1.
	ErrInvalidHorizon = errors.New("problem: horizon must be >= 1")
	// ErrInvalidBound indicates some bound m_k < 0.
	ErrInvalidBound = errors.New("problem: bound must be >= 0")
	// ErrInvalidBeta indicates some beta_k <= 0.
	ErrInvalidBeta = errors.New("problem: switching weight must be > 0")
	// ErrNilHittingCost indicates f is nil.
	ErrNilHittingCost = errors.New("problem: hitting cost must not be nil")
)

// ErrHittingCostUndefined wraps ErrCostUndefined with the (t, x) at which
// verification or evaluation found the hitting cost undefined inside
// what should be its total domain.
type ErrHittingCostUndefined struct {
	T int
	X schedule.Config
}

// ErrCostUndefined is the sentinel every ErrHittingCostUndefined wraps.
var ErrCostUndefined = errors.New("problem: hitting cost undefined in its domain")

func (e *ErrHittingCostUndefined) Error() string {
	return fmt.Sprintf("problem: hitting cost undefined at t=%d, x=%v", e.T, e.X)
}

func (e *ErrHittingCostUndefined) Unwrap() error { return ErrCostUndefined }

// ErrProblemVerificationFailure wraps ErrVerificationFailed with a
// human-readable detail of which invariant failed.
type ErrProblemVerificationFailure struct {
	Detail string
}

// ErrVerificationFailed is the sentinel every ErrProblemVerificationFailure wraps.
var ErrVerificationFailed = errors.New("problem: verification failed")

func (e *ErrProblemVerificationFailure) Error() string {
	return fmt.Sprintf("problem: verification failed: %s", e.Detail)
}

func (e *ErrProblemVerificationFailure) Unwrap() error { return ErrVerificationFailed }

// HittingCost evaluates the per-slot operational cost f(t, x). It is
// total on 1 <= t <= T, 0 <= x_k <= m_k, and may report "undefined"
// (ok=false) outside that domain. Implementations are invoked, never
// inspected: an identity-opaque closure wrapper (FuncHittingCost) or any
// other type satisfying this single-method interface is accepted.
type HittingCost interface {
	Evaluate(t int, x schedule.Config) (cost float64, ok bool)
}

// FuncHittingCost adapts a plain function to HittingCost.
type FuncHittingCost func(t int, x schedule.Config) (float64, bool)

// Evaluate implements HittingCost.
func (f FuncHittingCost) Evaluate(t int, x schedule.Config) (float64, bool) { return f(t, x) }

// Problem bundles an SCO instance: dimension d, horizon t_end, per-type
// bounds, per-type switching weights (simplified form), and the hitting
// cost. A Problem is immutable after a successful Verify call; apart
// from Verify recording its own success, nothing in this package
// mutates one after construction.
type Problem struct {
	d       int
	tEnd    int
	kind    schedule.Kind
	bounds  schedule.Config // length d, per-dimension upper bound m_k (lower is always 0)
	betas   []float64       // length d, per-dimension switching weight beta_k > 0
	norm    SwitchingNorm   // optional general switching norm; nil means use the simplified beta form
	f       HittingCost
	verified bool
}

// SwitchingNorm computes the general switching-cost norm ||x_t - x_prev||
// between two successive configurations, for problems that do not use
// the simplified per-dimension beta-weighted form.
type SwitchingNorm func(prev, cur schedule.Config) (float64, error)

// New constructs a Problem in the simplified (beta-weighted) switching
// cost form. Call Verify before using it with any algorithm.
func New(d, tEnd int, kind schedule.Kind, bounds schedule.Config, betas []float64, f HittingCost) (*Problem, error) {
	return &Problem{d: d, tEnd: tEnd, kind: kind, bounds: bounds, betas: betas, f: f}, nil
}

// NewWithNorm constructs a Problem using a general switching norm instead
// of the simplified beta-weighted form. The result has no betas: Betas
// returns nil.
func NewWithNorm(d, tEnd int, kind schedule.Kind, bounds schedule.Config, norm SwitchingNorm, f HittingCost) (*Problem, error) {
	return &Problem{d: d, tEnd: tEnd, kind: kind, bounds: bounds, norm: norm, f: f}, nil
}

// Dimension returns d.
func (p *Problem) Dimension() int { return p.d }

// Horizon returns t_end (T).
func (p *Problem) Horizon() int { return p.tEnd }

// Kind reports whether this Problem's Values are Integral or Fractional.
func (p *Problem) Kind() schedule.Kind { return p.kind }

// Bounds returns the per-dimension upper bound vector m.
func (p *Problem) Bounds() schedule.Config { return p.bounds }

// Betas returns the per-dimension switching weight vector beta, or nil
// if this Problem uses a general SwitchingNorm instead.
func (p *Problem) Betas() []float64 { return p.betas }

// Beta returns the scalar switching weight for a d=1 problem. Panics if
// d != 1; callers that require d=1 (the LCP family) should check
// Dimension() first and surface UnsupportedProblemDimension themselves.
func (p *Problem) Beta() float64 {
	if p.d != 1 {
		panic("problem: Beta() requires d=1")
	}
	return p.betas[0]
}

// HasNorm reports whether this Problem uses a general SwitchingNorm
// instead of the simplified beta-weighted form.
func (p *Problem) HasNorm() bool { return p.norm != nil }

// Norm returns this Problem's general SwitchingNorm. Only meaningful
// when HasNorm() is true.
func (p *Problem) Norm() SwitchingNorm { return p.norm }

// HittingCost returns the problem's hitting-cost closure.
func (p *Problem) HittingCost() HittingCost { return p.f }

// Evaluate is a convenience forward to p.HittingCost().Evaluate.
func (p *Problem) Evaluate(t int, x schedule.Config) (float64, bool) { return p.f.Evaluate(t, x) }

// Verify checks the problem's structural invariants: non-negative bounds,
// positive horizon, positive switching weights (when using the
// simplified form), a non-nil hitting cost, and that f is total on the
// box for every 1<=t<=T. Integral problems are sampled exhaustively;
// fractional problems are sampled at the box corners plus gridPoints-1
// evenly spaced points on the box diagonal (gridPoints below 2 counts
// as 2). Interior points off the diagonal are not sampled.
func (p *Problem) Verify(gridPoints int) error {
	if p.d < 1 {
		return fmt.Errorf("problem: d=%d: %w", p.d, ErrInvalidDimension)
	}
	if p.tEnd < 1 {
		return fmt.Errorf("problem: t_end=%d: %w", p.tEnd, ErrInvalidHorizon)
	}
	if len(p.bounds) != p.d {
		return &ErrProblemVerificationFailure{Detail: fmt.Sprintf("bounds has length %d, want %d", len(p.bounds), p.d)}
	}
	for k, m := range p.bounds {
		if m.ToReal() < 0 {
			return fmt.Errorf("problem: bounds[%d]=%v: %w", k, m, ErrInvalidBound)
		}
	}
	if p.norm == nil {
		if len(p.betas) != p.d {
			return &ErrProblemVerificationFailure{Detail: fmt.Sprintf("betas has length %d, want %d", len(p.betas), p.d)}
		}
		for k, b := range p.betas {
			if b <= 0 {
				return fmt.Errorf("problem: betas[%d]=%g: %w", k, b, ErrInvalidBeta)
			}
		}
	}
	if p.f == nil {
		return ErrNilHittingCost
	}

	if err := p.verifyTotality(gridPoints); err != nil {
		return err
	}
	p.verified = true
	return nil
}

// Verified reports whether Verify has already succeeded on this Problem.
func (p *Problem) Verified() bool { return p.verified }

func (p *Problem) verifyTotality(gridPoints int) error {
	if gridPoints < 2 {
		gridPoints = 2
	}
	for t := 1; t <= p.tEnd; t++ {
		for _, x := range p.sampleBox(gridPoints) {
			if _, ok := p.f.Evaluate(t, x); !ok {
				return fmt.Errorf("problem: %w", &ErrHittingCostUndefined{T: t, X: x})
			}
		}
	}
	return nil
}

// sampleBox enumerates sample points of the feasible box [0, m]^d. For
// integral problems it enumerates exhaustively (every integer point);
// for fractional problems it samples the 2^d corners plus gridPoints-1
// points on the diagonal from 0 to m.
func (p *Problem) sampleBox(gridPoints int) []schedule.Config {
	if p.kind == schedule.Integral {
		return enumerateIntegral(p.bounds)
	}
	return sampleFractional(p.bounds, gridPoints)
}

func enumerateIntegral(bounds schedule.Config) []schedule.Config {
	d := len(bounds)
	maxes := make([]int64, d)
	for i, m := range bounds {
		maxes[i] = m.Int()
	}
	var out []schedule.Config
	cur := make([]int64, d)
	var rec func(i int)
	rec = func(i int) {
		if i == d {
			c := make(schedule.Config, d)
			for k, v := range cur {
				c[k] = schedule.NewIntegral(v)
			}
			out = append(out, c)
			return
		}
		for v := int64(0); v <= maxes[i]; v++ {
			cur[i] = v
			rec(i + 1)
		}
	}
	rec(0)
	return out
}

func sampleFractional(bounds schedule.Config, gridPoints int) []schedule.Config {
	d := len(bounds)
	maxes := make([]float64, d)
	for i, m := range bounds {
		maxes[i] = m.ToReal()
	}

	var out []schedule.Config
	// Corners: 2^d combinations of {0, m_k}.
	for mask := 0; mask < (1 << uint(d)); mask++ {
		c := make(schedule.Config, d)
		for k := 0; k < d; k++ {
			if mask&(1<<uint(k)) != 0 {
				c[k] = schedule.NewFractional(maxes[k])
			} else {
				c[k] = schedule.NewFractional(0)
			}
		}
		out = append(out, c)
	}
	// Interior grid: the diagonal through gridPoints evenly spaced
	// fractions of each bound, a cheap but non-trivial interior probe.
	for i := 1; i < gridPoints; i++ {
		frac := float64(i) / float64(gridPoints)
		c := make(schedule.Config, d)
		for k := 0; k < d; k++ {
			c[k] = schedule.NewFractional(maxes[k] * frac)
		}
		out = append(out, c)
	}
	return out
}

// Online wraps a Problem with a lookahead window w. The LCP family
// specified in package lcp requires w == 0.
type Online struct {
	P *Problem
	W int
}

// NewOnline wraps p with lookahead window w.
func NewOnline(p *Problem, w int) Online { return Online{P: p, W: w} }
