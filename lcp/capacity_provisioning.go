package lcp

import (
	"fmt"

	"github.com/katalvlaran/soco/bounds"
	"github.com/katalvlaran/soco/numerics"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// ForwardCP computes the offline Forward-Recurrent Capacity Provisioning
// schedule for a d=1 problem: for each t = 1..T it reads the bound
// interval [L, U] with the commitment point fixed at (t0=0, x0=0) —
// never the most recently produced action — and projects the running
// value into it.
func ForwardCP(p *problem.Problem) (schedule.Schedule, error) {
	return capacityProvisioning(p, true)
}

// BackwardCP computes the offline Backward-Recurrent Capacity
// Provisioning schedule (also known as brcp): the same recurrence as
// ForwardCP, walked t = T..1 instead.
func BackwardCP(p *problem.Problem) (schedule.Schedule, error) {
	return capacityProvisioning(p, false)
}

// capacityProvisioning drives the shared recurrence behind ForwardCP and
// BackwardCP: both always query the oracle with t0 pinned at 0, only the
// order in which t is visited differs. The result is always Fractional;
// callers after a d=1 Integral problem apply Schedule.ToIntegral.
func capacityProvisioning(p *problem.Problem, forward bool) (schedule.Schedule, error) {
	if p.Dimension() != 1 {
		return nil, ErrUnsupportedProblemDimension
	}

	oracle := bounds.NewSimplifiedOracle(p)
	tEnd := p.Horizon()
	zero := schedule.Config{schedule.NewFractional(0)}

	xs := make(schedule.Schedule, tEnd)
	x := 0.0
	for i := 0; i < tEnd; i++ {
		t := i + 1
		if !forward {
			t = tEnd - i
		}

		l, err := oracle.FindLowerBound(t, 0, zero)
		if err != nil {
			return nil, fmt.Errorf("lcp: capacity provisioning: lower bound at t=%d: %w", t, err)
		}
		u, err := oracle.FindUpperBound(t, 0, zero)
		if err != nil {
			return nil, fmt.Errorf("lcp: capacity provisioning: upper bound at t=%d: %w", t, err)
		}
		if l.ToReal() > u.ToReal() {
			return nil, fmt.Errorf("lcp: capacity provisioning: %w", &bounds.LcpBoundMismatch{L: l, U: u})
		}

		x, err = numerics.Project(x, l.ToReal(), u.ToReal())
		if err != nil {
			return nil, fmt.Errorf("lcp: capacity provisioning: %w", err)
		}
		xs[t-1] = schedule.Single(schedule.NewFractional(x))
	}

	return xs, nil
}
