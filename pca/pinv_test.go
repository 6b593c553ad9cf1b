package pca_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"bwestbro.com/imgsvd/pca"
)

// checkPenrose verifies the four Moore-Penrose conditions
func checkPenrose(t *testing.T, a, ap mat.Matrix) {
	t.Helper()
	var aap, aapa, apa, apaap mat.Dense
	aap.Mul(a, ap)
	aapa.Mul(&aap, a)
	requireMatApprox(t, a, &aapa, 1e-8)
	apa.Mul(ap, a)
	apaap.Mul(&apa, ap)
	requireMatApprox(t, ap, &apaap, 1e-8)
	requireMatApprox(t, aap.T(), &aap, 1e-8)
	requireMatApprox(t, apa.T(), &apa, 1e-8)
}

func TestPinv(t *testing.T) {
	tests := []struct {
		name string
		a    *mat.Dense
	}{
		{"square", randDense(30, 4, 4)},
		{"tall", randDense(31, 7, 3)},
		{"wide", randDense(32, 3, 6)},
		{"rank deficient", rankDeficient(33, 6, 5, 2)},
		{"zero", mat.NewDense(3, 2, nil)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ap, err := pca.Pinv(test.a)
			require.NoError(t, err)
			r, c := test.a.Dims()
			pr, pc := ap.Dims()
			require.Equal(t, [2]int{c, r}, [2]int{pr, pc})
			checkPenrose(t, test.a, ap)
		})
	}
}

func TestPinvInverse(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		4, 7,
		2, 6,
	})
	ap, err := pca.Pinv(a)
	require.NoError(t, err)
	var inv mat.Dense
	require.NoError(t, inv.Inverse(a))
	requireMatApprox(t, &inv, ap, 1e-12)
}

func TestPinvEmpty(t *testing.T) {
	_, err := pca.Pinv(&mat.Dense{})
	require.ErrorIs(t, err, pca.ErrInvalidInput)
}
