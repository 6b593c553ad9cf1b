package pca

import (
	"gonum.org/v1/gonum/mat"
)

// Pinv returns the Moore-Penrose pseudoinverse A⁺ = V·Σ⁺·Uᵀ of a, where
// Σ⁺ inverts the singular values above the rank tolerance and maps the
// rest to zero. Rank-deficient input is not an error.
func Pinv(a mat.Matrix) (*mat.Dense, error) {
	t, err := Decompose(a)
	if err != nil {
		return nil, err
	}
	return t.Pinv(), nil
}

// Pinv returns the pseudoinverse of the decomposed matrix, cols×rows
func (t *Truncation) Pinv() *mat.Dense {
	n := len(t.s)
	vs := mat.DenseCopyOf(t.v)
	for j := 0; j < n; j++ {
		var inv float64
		if t.s[j] > t.tol {
			inv = 1 / t.s[j]
		}
		for i := 0; i < t.cols; i++ {
			vs.Set(i, j, vs.At(i, j)*inv)
		}
	}
	var ret mat.Dense
	ret.Mul(vs, t.u.T())
	return &ret
}
