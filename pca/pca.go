// Package pca implements principal components analysis and the related
// singular value machinery used by the imgsvd commands: centering,
// truncated reconstructions, the pseudoinverse and approximation error
// metrics.
//
// Throughout the package the rows of a data matrix are samples and the
// columns are variables. Centering removes the mean of each column, and
// the principal components are the right singular vectors of the
// centered data, one entry per variable.
package pca

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Method selects how an Analysis obtains its principal components
type Method int

const (
	// SVD factorizes the centered data directly
	SVD Method = iota
	// Eigen diagonalizes the sample covariance matrix
	Eigen
)

func (m Method) String() string {
	switch m {
	case SVD:
		return "svd"
	case Eigen:
		return "eigen"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod is the inverse of Method.String, ignoring case
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "svd", "":
		return SVD, nil
	case "eigen":
		return Eigen, nil
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
}

// Option configures New
type Option func(*Analysis)

// WithMethod sets the decomposition method, SVD by default
func WithMethod(m Method) Option {
	return func(p *Analysis) {
		p.method = m
	}
}

// Analysis is the principal components analysis of a data matrix. All
// of the decomposition work happens in New; the methods only read the
// cached factors and return fresh matrices.
type Analysis struct {
	method   Method
	samples  int
	vars     int
	centered *mat.Dense
	means    []float64
	// singular values of the centered data, decreasing
	values []float64
	// principal components as columns, vars×Len()
	v *mat.Dense
}

// New centers the columns of a and decomposes the result
func New(a mat.Matrix, opts ...Option) (*Analysis, error) {
	if err := validate(a); err != nil {
		return nil, err
	}
	p := &Analysis{method: SVD}
	for _, opt := range opts {
		opt(p)
	}
	p.samples, p.vars = a.Dims()
	p.centered, p.means = CenterColumns(a)
	var err error
	switch p.method {
	case SVD:
		err = p.factorizeSVD()
	case Eigen:
		err = p.factorizeEigen()
	default:
		err = fmt.Errorf("%w: unknown method %v", ErrInvalidArgument, p.method)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Analysis) factorizeSVD() error {
	var svd mat.SVD
	if ok := svd.Factorize(p.centered, mat.SVDThin); !ok {
		return fmt.Errorf("%w: SVD of %d×%d centered data",
			ErrComputation, p.samples, p.vars)
	}
	p.values = svd.Values(nil)
	p.v = new(mat.Dense)
	svd.VTo(p.v)
	return nil
}

// factorizeEigen diagonalizes C = BᵀB/(n-1). gonum returns the
// eigenvalues in ascending order, so the pairs are re-indexed before
// being converted to singular values σ = √(λ(n-1)).
func (p *Analysis) factorizeEigen() error {
	if p.samples < 2 {
		return fmt.Errorf("%w: covariance needs at least 2 samples, got %d",
			ErrInvalidInput, p.samples)
	}
	cov := mat.NewSymDense(p.vars, nil)
	stat.CovarianceMatrix(cov, p.centered, nil)
	var es mat.EigenSym
	if ok := es.Factorize(cov, true); !ok {
		return fmt.Errorf("%w: eigendecomposition of %d×%d covariance",
			ErrComputation, p.vars, p.vars)
	}
	lambda := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	idx := make([]int, len(lambda))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return lambda[idx[i]] > lambda[idx[j]]
	})
	n := p.Len()
	p.values = make([]float64, n)
	p.v = mat.NewDense(p.vars, n, nil)
	col := make([]float64, p.vars)
	scale := float64(p.samples - 1)
	for k := 0; k < n; k++ {
		// round-off can leave tiny negative eigenvalues
		p.values[k] = math.Sqrt(math.Max(lambda[idx[k]], 0) * scale)
		mat.Col(col, idx[k], &vecs)
		p.v.SetCol(k, col)
	}
	return nil
}

// Method returns the method used to decompose the data
func (p *Analysis) Method() Method {
	return p.method
}

// Len returns the number of principal components, min(samples,
// variables)
func (p *Analysis) Len() int {
	return min(p.samples, p.vars)
}

// Means returns the column means removed during centering
func (p *Analysis) Means() []float64 {
	return append([]float64(nil), p.means...)
}

// Centered returns a copy of the centered data
func (p *Analysis) Centered() *mat.Dense {
	return mat.DenseCopyOf(p.centered)
}

// SingularValue returns the i-th largest singular value of the
// centered data, counting from 0
func (p *Analysis) SingularValue(i int) (float64, error) {
	if err := p.checkIndex(i); err != nil {
		return 0, err
	}
	return p.values[i], nil
}

// SingularValues returns all of the singular values in decreasing order
func (p *Analysis) SingularValues() []float64 {
	return append([]float64(nil), p.values...)
}

// ExplainedVariance returns the variance of the data along the i-th
// principal component, σᵢ²/(n-1)
func (p *Analysis) ExplainedVariance(i int) (float64, error) {
	if err := p.checkIndex(i); err != nil {
		return 0, err
	}
	if p.samples < 2 {
		return 0, nil
	}
	return p.values[i] * p.values[i] / float64(p.samples-1), nil
}

// ExplainedVarianceRatio returns the share of the total variance
// captured by the i-th principal component. Data with no variance at
// all yields 0.
func (p *Analysis) ExplainedVarianceRatio(i int) (float64, error) {
	if err := p.checkIndex(i); err != nil {
		return 0, err
	}
	var total float64
	for _, s := range p.values {
		total += s * s
	}
	if total == 0 {
		return 0, nil
	}
	return p.values[i] * p.values[i] / total, nil
}

// PrincipalComponent returns the i-th principal component, a unit
// vector with one entry per variable
func (p *Analysis) PrincipalComponent(i int) (*mat.VecDense, error) {
	if err := p.checkIndex(i); err != nil {
		return nil, err
	}
	col := make([]float64, p.vars)
	mat.Col(col, i, p.v)
	return mat.NewVecDense(p.vars, col), nil
}

// Basis returns the first k principal components as the columns of a
// variables×k matrix
func (p *Analysis) Basis(k int) (*mat.Dense, error) {
	if err := p.checkRank(k); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(p.v.Slice(0, p.vars, 0, k)), nil
}

// ProjectionMatrix returns the variables×variables matrix V_k·V_kᵀ.
// Multiplying a centered sample (as a column) by it gives the sample's
// orthogonal projection onto the span of the first k components.
func (p *Analysis) ProjectionMatrix(k int) (*mat.Dense, error) {
	vk, err := p.Basis(k)
	if err != nil {
		return nil, err
	}
	var ret mat.Dense
	ret.Mul(vk, vk.T())
	return &ret, nil
}

// ProjectedData returns the coordinates of every centered sample in the
// basis of the first k principal components, samples×k
func (p *Analysis) ProjectedData(k int) (*mat.Dense, error) {
	vk, err := p.Basis(k)
	if err != nil {
		return nil, err
	}
	var ret mat.Dense
	ret.Mul(p.centered, vk)
	return &ret, nil
}

// Reconstruct maps the k-dimensional projection back into the original
// space and restores the means, giving the best rank-k approximation of
// the data around its mean
func (p *Analysis) Reconstruct(k int) (*mat.Dense, error) {
	vk, err := p.Basis(k)
	if err != nil {
		return nil, err
	}
	var scores, ret mat.Dense
	scores.Mul(p.centered, vk)
	ret.Mul(&scores, vk.T())
	addColumns(&ret, p.means)
	return &ret, nil
}

func (p *Analysis) checkIndex(i int) error {
	if i < 0 || i >= p.Len() {
		return fmt.Errorf("%w: component %d of %d",
			ErrIndexOutOfRange, i, p.Len())
	}
	return nil
}

func (p *Analysis) checkRank(k int) error {
	if k < 1 || k > p.Len() {
		return fmt.Errorf("%w: %d components requested, have %d",
			ErrInvalidArgument, k, p.Len())
	}
	return nil
}
