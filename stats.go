package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// elements returns the entries of m in row-major order
func elements(m mat.Matrix) []float64 {
	return mat.DenseCopyOf(m).RawMatrix().Data
}

// Mean returns the mean of all of the entries of m
func Mean(m mat.Matrix) float64 {
	return stat.Mean(elements(m), nil)
}

// StdDev returns the population standard deviation of the entries of
// m, √(E[x²] - E[x]²)
func StdDev(m mat.Matrix) float64 {
	x := elements(m)
	n := float64(len(x))
	if n < 2 {
		return 0
	}
	// MeanVariance is the unbiased estimate, rescale to the population
	_, v := stat.MeanVariance(x, nil)
	return math.Sqrt(v * (n - 1) / n)
}

// Range returns the difference between the largest and smallest
// entries of m
func Range(m mat.Matrix) float64 {
	return mat.Max(m) - mat.Min(m)
}
