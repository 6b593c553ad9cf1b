package pca_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randDense returns a reproducible r×c matrix with entries in [-5, 5)
func randDense(seed int64, r, c int) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 10*rng.Float64() - 5
	}
	return mat.NewDense(r, c, data)
}

// randInts returns a reproducible r×c matrix of small integers
func randInts(seed int64, r, c int) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(rng.Intn(9) - 4)
	}
	return mat.NewDense(r, c, data)
}

// rankDeficient returns an r×c matrix of rank at most k. The factors
// are integers so the product is exact.
func rankDeficient(seed int64, r, c, k int) *mat.Dense {
	var ret mat.Dense
	ret.Mul(randInts(seed, r, k), randInts(seed+1, k, c))
	return &ret
}

func requireMatApprox(t *testing.T, want, got mat.Matrix, tol float64) {
	t.Helper()
	require.Truef(t, mat.EqualApprox(want, got, tol),
		"got\n%v\nwanted\n%v\n",
		mat.Formatted(got, mat.Squeeze()),
		mat.Formatted(want, mat.Squeeze()),
	)
}
