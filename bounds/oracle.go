// Package bounds implements the bound oracle behind Lazy Capacity
// Provisioning: given (P, t_target, t0, x0), it computes L and U such
// that any offline-optimal schedule's value at t_target, constrained to
// start at x0 at time t0, lies in [L, U].
//
// Grounded on tsp/bound_onetree.go: like the Held-Karp 1-tree bound, the
// oracle here builds a small convex program over a handful of scalar
// variables and solves it iteratively, documents the admissibility
// contract in the doc comment, and reports a typed error rather than
// silently returning a loose bound on failure.
package bounds

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/soco/numerics"
	"github.com/katalvlaran/soco/objective"
	"github.com/katalvlaran/soco/optimizer"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// ErrUnsupportedProblemDimension is returned when the oracle is asked to
// bound a problem with dimension other than 1: this oracle supports only
// the d=1 simplified form.
var ErrUnsupportedProblemDimension = errors.New("bounds: oracle supports only d=1 problems")

// LcpBoundMismatch reports L > U after a bound computation, which
// indicates non-convex input or a solver failure upstream.
type LcpBoundMismatch struct {
	L, U schedule.Value
}

// ErrBoundMismatch is the sentinel every LcpBoundMismatch wraps.
var ErrBoundMismatch = errors.New("bounds: lower bound exceeds upper bound")

func (e *LcpBoundMismatch) Error() string {
	return fmt.Sprintf("bounds: lower bound %v exceeds upper bound %v", e.L, e.U)
}

func (e *LcpBoundMismatch) Unwrap() error { return ErrBoundMismatch }

// Oracle computes the [L, U] bound interval used by the LCP family.
type Oracle interface {
	FindLowerBound(tTarget, t0 int, x0 schedule.Config) (schedule.Value, error)
	FindUpperBound(tTarget, t0 int, x0 schedule.Config) (schedule.Value, error)
}

// SimplifiedOracle implements Oracle for a d=1, beta-weighted simplified
// SCO Problem, using a KKT characterization: L_t is the last
// coordinate of the schedule minimizing the forward objective over
// [t0+1, tTarget] starting from x0; U_t is the same minimization of the
// inverted objective.
type SimplifiedOracle struct {
	P *problem.Problem
}

// NewSimplifiedOracle builds a SimplifiedOracle over p. p must have
// dimension 1; this is checked lazily on first use, raising
// ErrUnsupportedProblemDimension when d != 1.
func NewSimplifiedOracle(p *problem.Problem) *SimplifiedOracle { return &SimplifiedOracle{P: p} }

// FindLowerBound implements Oracle.
func (o *SimplifiedOracle) FindLowerBound(tTarget, t0 int, x0 schedule.Config) (schedule.Value, error) {
	return o.solve(tTarget, t0, x0, false)
}

// FindUpperBound implements Oracle.
func (o *SimplifiedOracle) FindUpperBound(tTarget, t0 int, x0 schedule.Config) (schedule.Value, error) {
	return o.solve(tTarget, t0, x0, true)
}

func (o *SimplifiedOracle) solve(tTarget, t0 int, x0 schedule.Config, inverted bool) (schedule.Value, error) {
	if o.P.Dimension() != 1 {
		return schedule.Value{}, ErrUnsupportedProblemDimension
	}
	if t0 > tTarget {
		return schedule.Value{}, fmt.Errorf("bounds: t0=%d > tTarget=%d", t0, tTarget)
	}
	if t0 == tTarget {
		return x0[0], nil
	}

	n := tTarget - t0
	m := o.P.Bounds()[0].ToReal()
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range lower {
		upper[i] = m
	}

	objFn := func(vars []float64) float64 {
		xs := make(schedule.Schedule, n)
		for i, v := range vars {
			xs[i] = schedule.Config{schedule.NewFractional(v)}
		}
		cost, err := windowedObjective(o.P, t0, x0[0], xs, inverted)
		if err != nil {
			// The box guarantees totality; an error here means a
			// dimension/bound mismatch, a programmer error.
			panic(fmt.Sprintf("bounds: windowed objective: %v", err))
		}
		return cost
	}

	solution, err := optimizer.Minimize(objFn, lower, upper)
	if err != nil {
		return schedule.Value{}, fmt.Errorf("bounds: %w", err)
	}

	// Both the integral and fractional variants take L and U from the
	// fractional relaxation's last coordinate; the LCP kernel (package
	// lcp) is responsible for the integrality cast.
	last := numerics.ApplyPrecision(solution[n-1])
	return schedule.NewFractional(last), nil
}

// windowedObjective evaluates the (possibly inverted) objective of the
// window [t0+1, t0+len(xs)] starting from x0 at t0, without re-summing
// the cost already committed before t0.
func windowedObjective(p *problem.Problem, t0 int, x0 schedule.Value, xs schedule.Schedule, inverted bool) (float64, error) {
	prev := schedule.Config{x0}
	total := 0.0
	for i, x := range xs {
		t := t0 + i + 1
		cost, err := objective.SlotCost(p, t, prev, x, inverted)
		if err != nil {
			return 0, err
		}
		total += cost
		prev = x
	}
	return total, nil
}
