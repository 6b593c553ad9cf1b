package pca

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxError returns the largest absolute elementwise difference between
// a and its approximation aHat. Like the gonum arithmetic it wraps, it
// panics with mat.ErrShape if the dimensions differ.
func MaxError(a, aHat mat.Matrix) float64 {
	return mat.Max(absDiff(a, aHat))
}

// MeanError returns the mean absolute elementwise difference between a
// and aHat
func MeanError(a, aHat mat.Matrix) float64 {
	diff := absDiff(a, aHat)
	r, c := diff.Dims()
	return mat.Sum(diff) / float64(r*c)
}

func absDiff(a, b mat.Matrix) *mat.Dense {
	var diff mat.Dense
	diff.Sub(a, b)
	diff.Apply(func(_, _ int, v float64) float64 {
		return math.Abs(v)
	}, &diff)
	return &diff
}

// CompressionRatio returns the fraction of storage saved by keeping rho
// singular triples of a rows×cols matrix instead of the matrix itself.
// The result is negative when the triples take more room than the
// matrix. A matrix with no entries has nothing to save and gives 0.
func CompressionRatio(rows, cols, rho int) float64 {
	r, c := float64(rows), float64(cols)
	if r*c == 0 {
		return 0
	}
	kept := float64(rho) * (1 + r + c)
	return 1 - kept/(r*c)
}
