package main

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		m     mat.Matrix
		mean  float64
		stdev float64
		rng   float64
	}{
		{
			name:  "square",
			m:     mat.NewDense(2, 2, []float64{2, 4, 4, 4}),
			mean:  3.5,
			stdev: math.Sqrt(0.75),
			rng:   2,
		},
		{
			name:  "population",
			m:     mat.NewDense(2, 4, []float64{2, 4, 4, 4, 5, 5, 7, 9}),
			mean:  5,
			stdev: 2,
			rng:   7,
		},
		{
			name:  "single",
			m:     mat.NewDense(1, 1, []float64{-3}),
			mean:  -3,
			stdev: 0,
			rng:   0,
		},
	}
	eps := 1e-12
	for _, test := range tests {
		if got := Mean(test.m); math.Abs(got-test.mean) > eps {
			t.Errorf("%s: Mean got %v, wanted %v\n", test.name, got, test.mean)
		}
		if got := StdDev(test.m); math.Abs(got-test.stdev) > eps {
			t.Errorf("%s: StdDev got %v, wanted %v\n", test.name, got, test.stdev)
		}
		if got := Range(test.m); math.Abs(got-test.rng) > eps {
			t.Errorf("%s: Range got %v, wanted %v\n", test.name, got, test.rng)
		}
	}
}

func TestStatsIdentityError(t *testing.T) {
	var e mat.Dense
	e.Sub(Identity(4), Identity(4))
	if Range(&e) != 0 || Mean(&e) != 0 || StdDev(&e) != 0 {
		t.Errorf("got nonzero statistics for %v\n", mat.Formatted(&e))
	}
}
