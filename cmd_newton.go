package main

import (
	"math"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bwestbro.com/imgsvd/newton"
	"bwestbro.com/imgsvd/table"
)

// function is a named function with its derivative
type function struct {
	name string
	f    newton.Func
	df   newton.Func
}

var functions = []function{
	{
		name: "f",
		f:    func(x float64) float64 { return 2*x*x*x - 15*x*x + 36*x - 23 },
		df:   func(x float64) float64 { return 6*x*x - 30*x + 36 },
	},
	{
		name: "g",
		f: func(x float64) float64 {
			return math.Exp(0.1*x) - math.Exp(-0.4*x) - 1
		},
		df: func(x float64) float64 {
			return 0.1*math.Exp(0.1*x) + 0.4*math.Exp(-0.4*x)
		},
	},
}

func newtonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "newton",
		Short: "Tabulate Newton's method on the two test functions",
		Long: `newton finds roots of f(x) = 2x³ - 15x² + 36x - 23 and
g(x) = exp(0.1x) - exp(-0.4x) - 1 from the configured start and writes
every step into newton/f.tex and newton/g.tex.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNewton()
		},
	}
}

func (a *app) runNewton() error {
	dir, err := a.dir("newton")
	if err != nil {
		return err
	}
	for _, fn := range functions {
		res, err := newton.Solve(a.conf.Start, fn.f, fn.df,
			newton.WithTolerance(a.conf.Tolerance),
			newton.WithMaxIter(a.conf.MaxIt),
		)
		if err != nil {
			return err
		}
		log.Info().Str("function", fn.name).Float64("root", res.Root).
			Int("steps", len(res.Steps)).Msg("converged")
		tab := stepTable(res, fn.name, a.conf.Format)
		if err := tab.WriteFile(filepath.Join(dir, fn.name+".tex")); err != nil {
			return err
		}
	}
	return nil
}

// stepTable lays out one row per Newton step
func stepTable(res newton.Result, name string, f table.Format) *table.Table {
	tab := table.New(len(res.Steps), 5)
	tab.SetHeader(0, "Step $i$")
	tab.SetHeader(1, "$x_i$")
	tab.SetHeader(2, "$"+name+"(x_i)$")
	tab.SetHeader(3, `$\frac{d`+name+`(x)}{dx}\big|_{x = x_i}$`)
	tab.SetHeader(4, "$x_{i+1}$")
	for i, s := range res.Steps {
		tab.SetContent(i, 0, f.Int(s.I))
		tab.SetContent(i, 1, f.Float(s.X))
		tab.SetContent(i, 2, f.Float(s.Fx))
		tab.SetContent(i, 3, f.Float(s.Dfx))
		tab.SetContent(i, 4, f.Float(s.Next))
	}
	return tab
}
