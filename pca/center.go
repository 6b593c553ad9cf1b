package pca

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CenterColumns returns a copy of a with the arithmetic mean of each
// column subtracted from that column, along with the means
// themselves. a is not modified. An empty matrix is returned as an
// empty copy with no means.
func CenterColumns(a mat.Matrix) (*mat.Dense, []float64) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}
	ret := mat.DenseCopyOf(a)
	means := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, ret)
		means[j] = stat.Mean(col, nil)
		for i := 0; i < r; i++ {
			ret.Set(i, j, col[i]-means[j])
		}
	}
	return ret, means
}

// CenterRows is the row-wise counterpart of CenterColumns
func CenterRows(a mat.Matrix) (*mat.Dense, []float64) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}
	ret := mat.DenseCopyOf(a)
	means := make([]float64, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, ret)
		means[i] = stat.Mean(row, nil)
		for j := 0; j < c; j++ {
			ret.Set(i, j, row[j]-means[i])
		}
	}
	return ret, means
}

// addColumns adds v[j] to every entry of column j of m in place
func addColumns(m *mat.Dense, v []float64) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)+v[j])
		}
	}
}
