// Package objective evaluates the total cost of a schedule against a
// problem: the sum of hitting costs plus switching costs between
// successive configurations, and the per-slot cost used by the
// graph-search offline optimum.
//
// Evaluate/EvaluateInverted are kept as free functions over
// (*problem.Problem, schedule.Schedule) rather than methods on Problem:
// evaluation is a dedicated responsibility separate from the problem
// model, and a method on Problem would force package problem to import
// package objective while objective already needs to import problem —
// Go forbids the resulting import cycle. The functions follow a pure,
// fold-elementwise-over-stored-values idiom.
package objective

import (
	"fmt"

	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// Evaluate returns the total cost of xs against p: the sum over
// t=1..len(xs) of the hitting cost plus the simplified (or general-norm)
// switching cost between x_{t-1} (the zero config at t=1) and x_t.
//
// Returns a *problem.ErrHittingCostUndefined-wrapping error if any
// hitting cost along xs is undefined.
func Evaluate(p *problem.Problem, xs schedule.Schedule) (float64, error) {
	return evaluate(p, xs, false)
}

// EvaluateInverted is identical to Evaluate except that only *decreases*
// between successive configurations are penalized by the switching
// cost. The bound oracle in package bounds uses the same inverted
// switching cost per slot through SlotCost.
func EvaluateInverted(p *problem.Problem, xs schedule.Schedule) (float64, error) {
	return evaluate(p, xs, true)
}

func evaluate(p *problem.Problem, xs schedule.Schedule, inverted bool) (float64, error) {
	total := 0.0
	prev := schedule.NewConfig(p.Dimension(), p.Kind())
	for i, x := range xs {
		t := i + 1
		cost, err := SlotCost(p, t, prev, x, inverted)
		if err != nil {
			return 0, err
		}
		total += cost
		prev = x
	}
	return total, nil
}

// SlotCost returns the cost attributed to slot t: the hitting cost
// f(t, x) plus the switching cost between xPrev and x. When inverted is
// true the switching cost penalizes decreases instead of increases,
// matching the bound oracle's backward recurrence.
func SlotCost(p *problem.Problem, t int, xPrev, x schedule.Config, inverted bool) (float64, error) {
	hitting, ok := p.Evaluate(t, x)
	if !ok {
		return 0, fmt.Errorf("objective: %w", &problem.ErrHittingCostUndefined{T: t, X: x})
	}

	switching, err := switchingCost(p, xPrev, x, inverted)
	if err != nil {
		return 0, fmt.Errorf("objective: slot %d: %w", t, err)
	}
	return hitting + switching, nil
}

func switchingCost(p *problem.Problem, xPrev, x schedule.Config, inverted bool) (float64, error) {
	if p.HasNorm() {
		a, b := xPrev, x
		if inverted {
			a, b = x, xPrev
		}
		return p.Norm()(a, b)
	}

	betas := p.Betas()
	if len(betas) != len(x) || len(betas) != len(xPrev) {
		return 0, schedule.ErrDimensionMismatch
	}
	var total float64
	for k := range x {
		var delta float64
		if inverted {
			delta = xPrev[k].ToReal() - x[k].ToReal()
		} else {
			delta = x[k].ToReal() - xPrev[k].ToReal()
		}
		if delta > 0 {
			total += betas[k] * delta
		}
	}
	return total, nil
}
