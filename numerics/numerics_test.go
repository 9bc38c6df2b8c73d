package numerics_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soco/numerics"
)

func TestProject(t *testing.T) {
	t.Run("clamps below lower bound", func(t *testing.T) {
		v, err := numerics.Project(-5, 0, 10)
		require.NoError(t, err)
		require.Equal(t, 0.0, v)
	})

	t.Run("clamps above upper bound", func(t *testing.T) {
		v, err := numerics.Project(15, 0, 10)
		require.NoError(t, err)
		require.Equal(t, 10.0, v)
	})

	t.Run("passes through values inside the interval", func(t *testing.T) {
		v, err := numerics.Project(4, 0, 10)
		require.NoError(t, err)
		require.Equal(t, 4.0, v)
	})

	t.Run("rejects an inverted interval", func(t *testing.T) {
		_, err := numerics.Project(1, 5, 0)
		require.ErrorIs(t, err, numerics.ErrInvalidInterval)
	})

	t.Run("is monotone non-decreasing", func(t *testing.T) {
		prev, err := numerics.Project(-100, -1, 1)
		require.NoError(t, err)
		for x := -100.0; x <= 100; x += 0.5 {
			cur, err := numerics.Project(x, -1, 1)
			require.NoError(t, err)
			require.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		once, err := numerics.Project(37, 0, 10)
		require.NoError(t, err)
		twice, err := numerics.Project(once, 0, 10)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})
}

func TestProjectInt(t *testing.T) {
	v, err := numerics.ProjectInt(3, 5, 10)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)

	_, err = numerics.ProjectInt(0, 10, 5)
	require.ErrorIs(t, err, numerics.ErrInvalidInterval)
}

func TestPos(t *testing.T) {
	require.Equal(t, 0.0, numerics.Pos(-3))
	require.Equal(t, 0.0, numerics.Pos(0))
	require.Equal(t, 2.5, numerics.Pos(2.5))
}

func TestApplyPrecisionIsIdempotent(t *testing.T) {
	for _, v := range []float64{0, 1.23456789, -4.2, 1e-7, 3.0000001} {
		once := numerics.ApplyPrecision(v)
		twice := numerics.ApplyPrecision(once)
		require.Equal(t, once, twice)
	}
}

func TestBisectionFindsRoot(t *testing.T) {
	// f(x) = x - 3, root at x = 3.
	root, err := numerics.Bisection(0, 10, func(x float64) float64 { return x - 3 })
	require.NoError(t, err)
	require.InDelta(t, 3.0, root, 1e-4)
}

func TestBisectionRejectsInvertedInterval(t *testing.T) {
	_, err := numerics.Bisection(10, 0, func(x float64) float64 { return x })
	require.ErrorIs(t, err, numerics.ErrInvalidInterval)
}

func TestBisectionFailsWithoutSignChange(t *testing.T) {
	// f(x) = x + 5 never crosses zero on [0, 10].
	_, err := numerics.Bisection(0, 10, func(x float64) float64 { return x + 5 })
	require.True(t, errors.Is(err, numerics.ErrBisectionDidNotConverge))
}

func TestDerivative(t *testing.T) {
	// f(x) = x^2, f'(x) = 2x.
	d := numerics.Derivative(func(x float64) float64 { return x * x }, 3)
	require.InDelta(t, 6.0, d, 1e-3)
}

func TestSecondDerivative(t *testing.T) {
	// f(x) = x^2, f''(x) = 2.
	d := numerics.SecondDerivative(func(x float64) float64 { return x * x }, 3)
	require.InDelta(t, 2.0, d, 1e-1)
}

func TestApplyPrecisionRoundsToNearestMultiple(t *testing.T) {
	got := numerics.ApplyPrecision(1.00000049)
	require.True(t, math.Abs(got-1.0) < 1e-9)
}
