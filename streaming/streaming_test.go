package streaming_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soco/lcp"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
	"github.com/katalvlaran/soco/streaming"
)

func s1Cost(t int, x schedule.Config) (float64, bool) {
	if x[0].ToReal() == 0 {
		return float64(t), true
	}
	return 0, true
}

func newS1Problem(t *testing.T, tEnd int) *problem.Problem {
	t.Helper()
	bounds := schedule.Config{schedule.NewIntegral(2)}
	p, err := problem.New(1, tEnd, schedule.Integral, bounds, []float64{1}, problem.FuncHittingCost(s1Cost))
	require.NoError(t, err)
	require.NoError(t, p.Verify(4))
	return p
}

func TestRunOfflineReproducesSeedScenarioS1(t *testing.T) {
	p := newS1Problem(t, 1)
	h := streaming.New(lcp.NewIntegralLCP(), 0)

	xs, ms, err := h.RunOffline(p, 1)
	require.NoError(t, err)
	require.Len(t, xs, 1)
	require.Len(t, ms, 1)
	require.Equal(t, int64(0), xs[0][0].Int())
}

func TestRunExtendsHorizonViaNextReproducingSeedScenarioS2(t *testing.T) {
	p1 := newS1Problem(t, 1)
	p2 := newS1Problem(t, 2)
	h := streaming.New(lcp.NewIntegralLCP(), 0)

	calls := 0
	xs, _, err := h.Run(p1, func(_ *problem.Problem, xs schedule.Schedule, _ lcp.Memory) (*problem.Problem, bool) {
		calls++
		if len(xs) >= 2 {
			return nil, false
		}
		return p2, true
	})
	require.NoError(t, err)
	require.Len(t, xs, 2)
	require.Equal(t, int64(0), xs[0][0].Int())
	require.Equal(t, int64(1), xs[1][0].Int())
	require.Equal(t, 2, calls)
}

func TestRunFailsFastWhenHorizonNotYetRevealed(t *testing.T) {
	p := newS1Problem(t, 1)
	h := streaming.New(lcp.NewIntegralLCP(), 0)

	xs, ms, err := h.Run(p, func(_ *problem.Problem, _ schedule.Schedule, _ lcp.Memory) (*problem.Problem, bool) {
		return p, true // never extends the horizon, so the second step must fail
	})
	require.ErrorIs(t, err, streaming.ErrHorizonNotRevealed)
	require.Len(t, xs, 1)
	require.Len(t, ms, 1)
}

func TestRunWithNilNextStopsAfterOneStep(t *testing.T) {
	p := newS1Problem(t, 3)
	h := streaming.New(lcp.NewIntegralLCP(), 0)

	xs, ms, err := h.Run(p, nil)
	require.NoError(t, err)
	require.Len(t, xs, 1)
	require.Len(t, ms, 1)
}
