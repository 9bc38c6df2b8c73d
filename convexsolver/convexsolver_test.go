package convexsolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soco/convexsolver"
	"github.com/katalvlaran/soco/graphsearch"
	"github.com/katalvlaran/soco/objective"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// rampPenaltyCost charges t for staying at 0, nothing otherwise, the
// same cost shape graphsearch's tests use for the integral lattice.
func rampPenaltyCost(t int, x schedule.Config) (float64, bool) {
	if x[0].ToReal() == 0 {
		return float64(t), true
	}
	return 0, true
}

func TestSolveConvergesToRoughlyTheIntegralOptimum(t *testing.T) {
	bounds := schedule.Config{schedule.NewFractional(2)}
	p, err := problem.New(1, 2, schedule.Fractional, bounds, []float64{1}, problem.FuncHittingCost(rampPenaltyCost))
	require.NoError(t, err)
	require.NoError(t, p.Verify(8))

	xs, err := convexsolver.Solve(p)
	require.NoError(t, err)
	require.Len(t, xs, 2)

	cost, err := objective.Evaluate(p, xs)
	require.NoError(t, err)
	require.InDelta(t, 1.0, cost, 0.05)

	rounded := xs.ToIntegral()
	require.Equal(t, int64(1), rounded[0][0].Int())
	require.Equal(t, int64(1), rounded[1][0].Int())
}

func TestSolveReturnedScheduleStaysWithinBounds(t *testing.T) {
	bounds := schedule.Config{schedule.NewFractional(3), schedule.NewFractional(1)}
	betas := []float64{1, 2}
	cost := func(t int, x schedule.Config) (float64, bool) {
		return x[0].ToReal()*x[0].ToReal() + x[1].ToReal(), true
	}
	p, err := problem.New(2, 3, schedule.Fractional, bounds, betas, problem.FuncHittingCost(cost))
	require.NoError(t, err)
	require.NoError(t, p.Verify(5))

	xs, err := convexsolver.Solve(p)
	require.NoError(t, err)
	require.Len(t, xs, 3)
	for _, c := range xs {
		require.GreaterOrEqual(t, c[0].ToReal(), -1e-6)
		require.LessOrEqual(t, c[0].ToReal(), 3.0+1e-6)
		require.GreaterOrEqual(t, c[1].ToReal(), -1e-6)
		require.LessOrEqual(t, c[1].ToReal(), 1.0+1e-6)
	}
}

func TestGraphSearchUpperBoundsConvexSolverOnRoundedProblem(t *testing.T) {
	fracBounds := schedule.Config{schedule.NewFractional(2)}
	fp, err := problem.New(1, 2, schedule.Fractional, fracBounds, []float64{1}, problem.FuncHittingCost(rampPenaltyCost))
	require.NoError(t, err)
	require.NoError(t, fp.Verify(8))

	_, fracCost, err := convexAsTriple(fp)
	require.NoError(t, err)

	intBounds := schedule.Config{schedule.NewIntegral(2)}
	ip, err := problem.New(1, 2, schedule.Integral, intBounds, []float64{1}, problem.FuncHittingCost(rampPenaltyCost))
	require.NoError(t, err)
	require.NoError(t, ip.Verify(4))

	_, intCost, err := graphsearch.Search(ip)
	require.NoError(t, err)

	require.GreaterOrEqual(t, intCost, fracCost-1e-6)
}

func convexAsTriple(p *problem.Problem) (schedule.Schedule, float64, error) {
	xs, err := convexsolver.Solve(p)
	if err != nil {
		return nil, 0, err
	}
	cost, err := objective.Evaluate(p, xs)
	if err != nil {
		return nil, 0, err
	}
	return xs, cost, nil
}
