package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// machine epsilon for float64
const eps = 0x1p-52

// Truncation holds the thin singular value decomposition a = U·Σ·Vᵀ of
// an uncentered matrix and builds low-rank approximations from it
type Truncation struct {
	rows, cols int
	u, v       *mat.Dense
	s          []float64
	tol        float64
	rank       int
}

// Decompose computes the thin SVD of a. Singular values come back from
// gonum already sorted in decreasing order.
func Decompose(a mat.Matrix) (*Truncation, error) {
	if err := validate(a); err != nil {
		return nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: thin SVD", ErrComputation)
	}
	t := new(Truncation)
	t.rows, t.cols = a.Dims()
	t.s = svd.Values(nil)
	t.u = new(mat.Dense)
	t.v = new(mat.Dense)
	svd.UTo(t.u)
	svd.VTo(t.v)
	t.tol = tolerance(t.rows, t.cols, t.s)
	t.rank = rank(t.s, t.tol)
	return t, nil
}

// Rank returns the numerical rank of the decomposed matrix
func (t *Truncation) Rank() int {
	return t.rank
}

// Values returns a copy of the singular values in decreasing order
func (t *Truncation) Values() []float64 {
	return append([]float64(nil), t.s...)
}

// U returns a copy of the left singular vectors, rows×min(rows, cols)
func (t *Truncation) U() *mat.Dense {
	return mat.DenseCopyOf(t.u)
}

// V returns a copy of the right singular vectors, cols×min(rows, cols)
func (t *Truncation) V() *mat.Dense {
	return mat.DenseCopyOf(t.v)
}

// S returns Σ as a square diagonal matrix
func (t *Truncation) S() *mat.Dense {
	n := len(t.s)
	ret := mat.NewDense(n, n, nil)
	for i, s := range t.s {
		ret.Set(i, i, s)
	}
	return ret
}

// Approximate returns the rank-rho approximation of the decomposed
// matrix, the sum of uᵢ·σᵢ·vᵢᵀ over the first rho singular triples.
// rho must lie in [0, Rank()].
func (t *Truncation) Approximate(rho int) (*mat.Dense, error) {
	if rho < 0 || rho > t.rank {
		return nil, fmt.Errorf("%w: rho %d outside [0, %d], the rank of the SVD",
			ErrInvalidArgument, rho, t.rank)
	}
	if rho == 0 {
		return mat.NewDense(t.rows, t.cols, nil), nil
	}
	us := mat.DenseCopyOf(t.u.Slice(0, t.rows, 0, rho))
	for j := 0; j < rho; j++ {
		for i := 0; i < t.rows; i++ {
			us.Set(i, j, us.At(i, j)*t.s[j])
		}
	}
	var ret mat.Dense
	ret.Mul(us, t.v.Slice(0, t.cols, 0, rho).T())
	return &ret, nil
}

// tolerance is the threshold below which a singular value is treated
// as zero, the same one LAPACK and Jama use for rank
func tolerance(rows, cols int, s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(max(rows, cols)) * s[0] * eps
}

func rank(s []float64, tol float64) (r int) {
	for _, v := range s {
		if v > tol {
			r++
		}
	}
	return
}

// validate rejects matrices gonum cannot or should not factorize
func validate(a mat.Matrix) error {
	if a == nil {
		return fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return fmt.Errorf("%w: %d×%d matrix", ErrInvalidInput, r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %v at (%d, %d)",
					ErrInvalidInput, v, i, j)
			}
		}
	}
	return nil
}
