package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// return the norm of the difference between got and want and whether or not it
// is greater than eps
func matNorm(got, want mat.Matrix, eps float64) (float64, bool) {
	var diff mat.Dense
	diff.Sub(got, want)
	norm := mat.Norm(&diff, 2)
	return norm, norm > eps
}

// print the difference between got and want entry by entry
func matDiff(got, want mat.Matrix) {
	r, c := got.Dims()
	fmt.Printf("\n%10s%20s%20s%20s\n", "Entry", "Got", "Want", "Diff")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g := got.At(i, j)
			w := want.At(i, j)
			fmt.Printf("%4d,%5d%20.12f%20.12f%20.12f\n",
				i, j, g, w, g-w,
			)
		}
	}
}

func compMat(a, b mat.Matrix, eps float64) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return false
	}
	_, bad := matNorm(a, b, eps)
	return !bad
}

func compFloat(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
