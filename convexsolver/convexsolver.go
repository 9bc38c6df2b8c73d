// Package convexsolver computes the offline optimum for fractional
// Smoothed Convex Optimization by flattening the whole schedule into a
// single box-constrained minimization and delegating to package
// optimizer, the same dispatcher shape used by the bound oracle in
// package bounds for a single time window.
package convexsolver

import (
	"fmt"

	"github.com/katalvlaran/soco/objective"
	"github.com/katalvlaran/soco/optimizer"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// Solve returns the schedule minimizing p's objective over the whole
// horizon, found by flattening the T configurations of dimension d into
// a single vector of length d*T with per-coordinate box [0, m_k] (tiled
// across time), minimizing via package optimizer, and unflattening the
// result.
//
// Solve fails with an *optimizer.OptimizerError if the underlying solver
// does not converge.
func Solve(p *problem.Problem) (schedule.Schedule, error) {
	d, tEnd := p.Dimension(), p.Horizon()

	lower := make([]float64, d*tEnd)
	upper := make([]float64, d*tEnd)
	bounds := p.Bounds()
	for t := 0; t < tEnd; t++ {
		for k := 0; k < d; k++ {
			upper[t*d+k] = bounds[k].ToReal()
		}
	}

	objFn := func(vars []float64) float64 {
		xs, err := schedule.FromRaw(d, tEnd, vars)
		if err != nil {
			// The box always supplies exactly d*tEnd coordinates; a
			// mismatch here means optimizer violated its own contract.
			panic(fmt.Sprintf("convexsolver: unflatten: %v", err))
		}
		cost, err := objective.Evaluate(p, xs)
		if err != nil {
			// The hitting cost is verified total on the box, so an
			// undefined evaluation here also means a contract breach.
			panic(fmt.Sprintf("convexsolver: evaluate: %v", err))
		}
		return cost
	}

	solution, err := optimizer.Minimize(objFn, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("convexsolver: %w", err)
	}

	xs, err := schedule.FromRaw(d, tEnd, solution)
	if err != nil {
		return nil, fmt.Errorf("convexsolver: %w", err)
	}
	return xs, nil
}
