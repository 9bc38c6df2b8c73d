// Package lcp implements the Lazy Capacity Provisioning family of online
// algorithms: at each time slot it projects the previous
// action onto the bound interval [L_t, U_t] produced by package bounds,
// moving the system just enough to re-enter a time-varying commitment
// interval ("lazy").
//
// Grounded on dijkstra/dijkstra.go's idiom: an ordered precondition
// check before any work begins, variant selection through named
// constructors (there are no functional options), and package-level
// sentinel errors checked with errors.Is.
package lcp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/soco/bounds"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// ErrUnsupportedPredictionWindow is returned when Step is invoked with a
// nonzero lookahead window: the LCP family specified here requires w=0.
var ErrUnsupportedPredictionWindow = errors.New("lcp: algorithm requires prediction window w=0")

// ErrUnsupportedProblemDimension is returned when Step, ForwardCP or
// BackwardCP is invoked on a problem with dimension other than 1.
var ErrUnsupportedProblemDimension = errors.New("lcp: algorithm requires dimension d=1")

// Variant selects whether Step rounds its output onto the integer
// lattice (IntegralVariant) or leaves it real-valued (FractionalVariant).
type Variant int

const (
	// FractionalVariant produces real-valued actions with no rounding.
	FractionalVariant Variant = iota
	// IntegralVariant produces integer actions via the integrality cast
	// described below in project.
	IntegralVariant
)

// Algorithm is the Lazy Capacity Provisioning online algorithm: a
// Step-producer consumed by package streaming's Harness. Preconditions
// (w=0, d=1) are enforced at each Step.
//
// Step takes the current Problem explicitly rather than binding one at
// construction, because the streaming harness may evolve the problem
// between slots (revealing new cost functions, extending the horizon)
// via its next callback. Bound-oracle results are pure functions of
// (P, t, t0, x0) and are never cached across problems, so a fresh
// oracle is built from whatever Problem is current on every Step.
type Algorithm struct {
	Variant Variant
}

// NewFractionalLCP builds the fractional LCP variant.
func NewFractionalLCP() *Algorithm { return &Algorithm{Variant: FractionalVariant} }

// NewIntegralLCP builds the integral LCP variant.
func NewIntegralLCP() *Algorithm { return &Algorithm{Variant: IntegralVariant} }

// NewContinuousHomogeneousLCP is the historical d=1 continuous
// specialization. It behaves identically to the fractional variant at
// d=1 with a scalar beta, so it is an alias rather than a separate code
// path.
func NewContinuousHomogeneousLCP() *Algorithm { return NewFractionalLCP() }

// NewDiscreteHomogeneousLCP is the historical d=1 discrete
// specialization; an alias of NewIntegralLCP for the same reason.
func NewDiscreteHomogeneousLCP() *Algorithm { return NewIntegralLCP() }

// Step implements the per-slot procedure:
//  1. find the commitment point (t0, x0) via FindInitialTime;
//  2. read the previous action i (0 if xs is empty);
//  3. compute [L, U] from the oracle at the problem's horizon;
//  4. project i onto [L, U] (with the integrality cast for
//     IntegralVariant);
//  5. return the new action together with (L, U) as the new memory
//     entry; appending it to ms is left to the caller.
func (a *Algorithm) Step(p *problem.Problem, w int, xs schedule.Schedule, ms Memory) (schedule.Config, BoundEntry, error) {
	if w != 0 {
		return nil, BoundEntry{}, ErrUnsupportedPredictionWindow
	}
	if p.Dimension() != 1 {
		return nil, BoundEntry{}, ErrUnsupportedProblemDimension
	}

	oracle := bounds.NewSimplifiedOracle(p)
	tEnd := p.Horizon()
	t0, x0 := FindInitialTime(xs, ms, 1, p.Kind())

	i := 0.0
	if len(xs) > 0 {
		i = xs[len(xs)-1][0].ToReal()
	}

	L, err := oracle.FindLowerBound(tEnd, t0, x0)
	if err != nil {
		return nil, BoundEntry{}, fmt.Errorf("lcp: lower bound: %w", err)
	}
	U, err := oracle.FindUpperBound(tEnd, t0, x0)
	if err != nil {
		return nil, BoundEntry{}, fmt.Errorf("lcp: upper bound: %w", err)
	}
	if L.ToReal() > U.ToReal() {
		return nil, BoundEntry{}, fmt.Errorf("lcp: %w", &bounds.LcpBoundMismatch{L: L, U: U})
	}

	j := a.project(i, L.ToReal(), U.ToReal())

	var x schedule.Value
	if a.Variant == IntegralVariant {
		x = schedule.NewIntegral(int64(math.Round(j)))
	} else {
		x = schedule.NewFractional(j)
	}

	return schedule.Single(x), BoundEntry{L: L, U: U}, nil
}

// project applies the projection rule: a plain clamp for the fractional
// variant, and the ceil/floor-at-the-boundary cast for the integral one
// (i<=L -> ceil(L); i>=U -> floor(U); otherwise keep i).
func (a *Algorithm) project(i, l, u float64) float64 {
	if a.Variant != IntegralVariant {
		if i < l {
			return l
		}
		if i > u {
			return u
		}
		return i
	}
	if i <= l {
		return math.Ceil(l)
	}
	if i >= u {
		return math.Floor(u)
	}
	return i
}
