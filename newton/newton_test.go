package newton_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bwestbro.com/imgsvd/newton"
)

func cubic(x float64) float64  { return 2*x*x*x - 15*x*x + 36*x - 23 }
func dcubic(x float64) float64 { return 6*x*x - 30*x + 36 }

func TestSolveCubic(t *testing.T) {
	res, err := newton.Solve(0, cubic, dcubic)
	require.NoError(t, err)
	assert.InDelta(t, 1, res.Root, newton.Tolerance)
	assert.InDelta(t, 0, cubic(res.Root), 1e-6)
	assert.Less(t, len(res.Steps), newton.MaxIter)

	first := res.Steps[0]
	assert.Equal(t, 0, first.I)
	assert.Equal(t, 0.0, first.X)
	assert.Equal(t, -23.0, first.Fx)
	assert.Equal(t, 36.0, first.Dfx)
	assert.InDelta(t, 23.0/36, first.Next, 1e-15)

	xs := res.Iterates()
	require.Len(t, xs, len(res.Steps)+1)
	for i, s := range res.Steps {
		assert.Equal(t, xs[i], s.X)
		assert.Equal(t, xs[i+1], s.Next)
	}
	last := res.Steps[len(res.Steps)-1]
	assert.LessOrEqual(t, math.Abs(last.Next-last.X), newton.Tolerance)
}

func TestSolveExp(t *testing.T) {
	g := func(x float64) float64 { return math.Exp(0.1*x) - math.Exp(-0.4*x) - 1 }
	dg := func(x float64) float64 { return 0.1*math.Exp(0.1*x) + 0.4*math.Exp(-0.4*x) }
	res, err := newton.Solve(0, g, dg)
	require.NoError(t, err)
	assert.InDelta(t, 0, g(res.Root), 1e-6)
}

func TestSolveNumericDerivative(t *testing.T) {
	exact, err := newton.Solve(0, cubic, dcubic)
	require.NoError(t, err)
	approx, err := newton.Solve(0, cubic, nil)
	require.NoError(t, err)
	assert.InDelta(t, exact.Root, approx.Root, 1e-6)
}

func TestSolveZeroDerivative(t *testing.T) {
	// f'(2) = 0
	res, err := newton.Solve(2, cubic, dcubic)
	require.ErrorIs(t, err, newton.ErrBadDerivative)
	require.Len(t, res.Steps, 1)
}

func TestSolveNoConvergence(t *testing.T) {
	// Newton's method cycles between ±1 on x³ - 2x + 2 from 0
	f := func(x float64) float64 { return x*x*x - 2*x + 2 }
	df := func(x float64) float64 { return 3*x*x - 2 }
	res, err := newton.Solve(0, f, df, newton.WithMaxIter(20))
	require.ErrorIs(t, err, newton.ErrNoConvergence)
	assert.Len(t, res.Steps, 20)
}

func TestWithTolerance(t *testing.T) {
	loose, err := newton.Solve(0, cubic, dcubic, newton.WithTolerance(0.5))
	require.NoError(t, err)
	tight, err := newton.Solve(0, cubic, dcubic, newton.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.Less(t, len(loose.Steps), len(tight.Steps))
	assert.InDelta(t, 1, tight.Root, 1e-12)
}
