// Package newton finds roots of real functions with Newton's method and
// keeps every iterate for reporting
package newton

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	// Tolerance is the default bound on |x_{i+1} - x_i| at which
	// iteration stops
	Tolerance = 0.0001
	// MaxIter is the default iteration cap
	MaxIter = 100
)

var (
	// ErrNoConvergence is returned when the iteration cap is reached
	ErrNoConvergence = errors.New("newton: no convergence")
	// ErrBadDerivative is returned when a step cannot be taken
	ErrBadDerivative = errors.New("newton: derivative vanished or iterate diverged")
)

// Func is a real function of one variable
type Func func(float64) float64

// Step records a single iteration
type Step struct {
	I    int
	X    float64
	Fx   float64
	Dfx  float64
	Next float64
}

// Result holds the root estimate and the iterations that produced it
type Result struct {
	Root  float64
	Steps []Step
}

// Iterates returns x_0, x_1, ..., x_n
func (r Result) Iterates() []float64 {
	if len(r.Steps) == 0 {
		return nil
	}
	ret := make([]float64, 0, len(r.Steps)+1)
	for _, s := range r.Steps {
		ret = append(ret, s.X)
	}
	return append(ret, r.Steps[len(r.Steps)-1].Next)
}

type config struct {
	tol     float64
	maxIter int
}

// Option configures Solve
type Option func(*config)

// WithTolerance sets the bound on |x_{i+1} - x_i|, Tolerance by default
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.tol = tol
	}
}

// WithMaxIter sets the iteration cap, MaxIter by default
func WithMaxIter(n int) Option {
	return func(c *config) {
		c.maxIter = n
	}
}

// Solve iterates x_{i+1} = x_i - f(x_i)/f'(x_i) from x0 until successive
// iterates are within the tolerance. If df is nil the derivative is
// approximated with a central difference. On failure the partial
// Result is returned along with the error.
func Solve(x0 float64, f, df Func, opts ...Option) (Result, error) {
	cfg := config{
		tol:     Tolerance,
		maxIter: MaxIter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if df == nil {
		df = func(x float64) float64 {
			return fd.Derivative(f, x, &fd.Settings{
				Formula: fd.Central,
			})
		}
	}
	var res Result
	x := x0
	for i := 0; i < cfg.maxIter; i++ {
		fx, dfx := f(x), df(x)
		next := x - fx/dfx
		res.Steps = append(res.Steps, Step{
			I:    i,
			X:    x,
			Fx:   fx,
			Dfx:  dfx,
			Next: next,
		})
		if dfx == 0 || math.IsNaN(next) || math.IsInf(next, 0) {
			return res, fmt.Errorf("%w: f'(%g) = %g at step %d",
				ErrBadDerivative, x, dfx, i)
		}
		res.Root = next
		if math.Abs(next-x) <= cfg.tol {
			return res, nil
		}
		x = next
	}
	return res, fmt.Errorf("%w: |Δx| still above %g after %d steps",
		ErrNoConvergence, cfg.tol, cfg.maxIter)
}
