package lcp

import "github.com/katalvlaran/soco/schedule"

// BoundEntry records the [L, U] bound interval computed by the bound
// oracle at a single LCP step.
type BoundEntry struct {
	L, U schedule.Value
}

// Memory is the append-only, time-aligned record of bound intervals an
// LCP run has computed so far: entry t holds the (L, U) used to produce
// x_t. It is grown by the caller of Step (package streaming's Harness)
// appending each entry Step returns, and read by FindInitialTime to
// locate the most recent commitment point.
type Memory []BoundEntry

// Append returns a new Memory with e appended to the tail.
func (m Memory) Append(e BoundEntry) Memory { return append(m, e) }

// commitmentPrecision is the tolerance used to treat L and U as equal
// when looking for a commitment point, matching numerics.Precision.
const commitmentPrecision = 1e-6

// isCommitmentPoint reports whether e's bounds are equal within
// commitmentPrecision, i.e. L_t == U_t, pinning the offline optimum.
func (e BoundEntry) isCommitmentPoint() bool {
	return abs(e.L.ToReal()-e.U.ToReal()) <= commitmentPrecision
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// FindInitialTime locates the most recent commitment point: it scans
// ms backward and returns the index (1-based slot, as (t0, x0)) of the
// most recent entry whose L == U (a commitment point), together with
// the action recorded in xs at that slot. If no such entry exists, it
// falls back to (0, the zero Config of dimension d).
func FindInitialTime(xs schedule.Schedule, ms Memory, d int, kind schedule.Kind) (t0 int, x0 schedule.Config) {
	for i := len(ms) - 1; i >= 0; i-- {
		if ms[i].isCommitmentPoint() {
			slot := i + 1 // ms[i] corresponds to xs[i], i.e. time slot i+1
			return slot, xs[i]
		}
	}
	return 0, schedule.NewConfig(d, kind)
}
