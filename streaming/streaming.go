// Package streaming drives an online algorithm one time slot at a time,
// carrying the partial schedule and per-algorithm memory across calls
// and optionally evolving the problem between slots.
//
// No context.Context: the core is single-threaded and synchronous with
// no cancellation or timeout model, so adding one here would contradict
// that design rather than extend it.
package streaming

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/soco/lcp"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// ErrHorizonNotRevealed is returned when the problem has not yet
// revealed a cost function for the slot a step would need to look at
// (t_end must exceed w + len(xs)).
var ErrHorizonNotRevealed = errors.New("streaming: horizon does not cover the next step plus lookahead")

// Algorithm is anything that can produce one Step of an online schedule
// given the current problem, lookahead window, schedule-so-far, and
// memory-so-far. *lcp.Algorithm implements this interface.
type Algorithm interface {
	Step(p *problem.Problem, w int, xs schedule.Schedule, ms lcp.Memory) (schedule.Config, lcp.BoundEntry, error)
}

// Next evolves the problem between slots: given the current problem and
// the schedule/memory produced so far, it returns an updated problem to
// continue with, or ok=false to stop the run early (not a failure).
type Next func(p *problem.Problem, xs schedule.Schedule, ms lcp.Memory) (updated *problem.Problem, ok bool)

// Harness drives Algorithm across time slots, owning xs and ms
// exclusively for the duration of a Run call.
type Harness struct {
	Algorithm Algorithm
	Window    int
}

// New builds a Harness around algo with lookahead window w.
func New(algo Algorithm, w int) *Harness {
	return &Harness{Algorithm: algo, Window: w}
}

// Run drives the harness starting from problem p, calling next after
// every successful step to decide whether to continue and how the
// problem should evolve. It stops when next returns ok=false, or after
// a step fails. On failure it returns the partial (xs, ms) produced so
// far together with the error, never silently discarding work already
// committed.
func (h *Harness) Run(p *problem.Problem, next Next) (schedule.Schedule, lcp.Memory, error) {
	xs := schedule.NewSchedule(p.Horizon())
	ms := make(lcp.Memory, 0, p.Horizon())

	for {
		if p.Horizon() <= h.Window+len(xs) {
			return xs, ms, fmt.Errorf("streaming: t_end=%d, w=%d, len(xs)=%d: %w", p.Horizon(), h.Window, len(xs), ErrHorizonNotRevealed)
		}

		x, entry, err := h.Algorithm.Step(p, h.Window, xs, ms)
		if err != nil {
			return xs, ms, fmt.Errorf("streaming: step %d: %w", len(xs)+1, err)
		}
		xs = xs.Append(x)
		ms = ms.Append(entry)

		if next == nil {
			return xs, ms, nil
		}
		updated, ok := next(p, xs, ms)
		if !ok {
			return xs, ms, nil
		}
		p = updated
	}
}

// RunOffline runs the algorithm for exactly tEnd steps against p with no
// Next callback, the offline-stream mode used to reproduce an online
// algorithm's decisions over an already-fully-revealed horizon.
func (h *Harness) RunOffline(p *problem.Problem, tEnd int) (schedule.Schedule, lcp.Memory, error) {
	xs := schedule.NewSchedule(tEnd)
	ms := make(lcp.Memory, 0, tEnd)

	for len(xs) < tEnd {
		if p.Horizon() <= h.Window+len(xs) {
			return xs, ms, fmt.Errorf("streaming: t_end=%d, w=%d, len(xs)=%d: %w", p.Horizon(), h.Window, len(xs), ErrHorizonNotRevealed)
		}
		x, entry, err := h.Algorithm.Step(p, h.Window, xs, ms)
		if err != nil {
			return xs, ms, fmt.Errorf("streaming: step %d: %w", len(xs)+1, err)
		}
		xs = xs.Append(x)
		ms = ms.Append(entry)
	}
	return xs, ms, nil
}
