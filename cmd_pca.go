package main

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"bwestbro.com/imgsvd/pca"
	"bwestbro.com/imgsvd/table"
)

func pcaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pca <data> <rows> <cols>",
		Short: "Project tabular data onto its leading principal components",
		Long: `pca reads a rows×cols whitespace-separated matrix with one sample
per row (or per column when transpose is set) and writes the samples'
coordinates along the first components into pca/locations.txt and
the singular values into pca/components.tex.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parseDim("rows", args[1])
			if err != nil {
				return err
			}
			cols, err := parseDim("cols", args[2])
			if err != nil {
				return err
			}
			return a.runPCA(args[0], rows, cols)
		},
	}
}

func (a *app) runPCA(filename string, rows, cols int) error {
	A, err := LoadMat(filename, rows, cols)
	if err != nil {
		return err
	}
	if a.conf.Transpose {
		A = mat.DenseCopyOf(A.T())
	}
	p, err := pca.New(A, pca.WithMethod(a.conf.Method))
	if err != nil {
		return err
	}
	samples, vars := A.Dims()
	log.Info().Int("samples", samples).Int("variables", vars).
		Stringer("method", p.Method()).Msg("decomposed data")

	L, err := p.ProjectedData(a.conf.Components)
	if err != nil {
		return err
	}
	dir, err := a.dir("pca")
	if err != nil {
		return err
	}
	if err := DumpMat(L, filepath.Join(dir, "locations.txt")); err != nil {
		return err
	}
	tab, err := componentTable(p, a.conf.Format)
	if err != nil {
		return err
	}
	return tab.WriteFile(filepath.Join(dir, "components.tex"))
}

// componentTable lists each component's singular value and share of
// the variance
func componentTable(p *pca.Analysis, f table.Format) (*table.Table, error) {
	tab := table.New(p.Len(), 3)
	tab.SetHeader(0, "Component $i$")
	tab.SetHeader(1, `$\sigma_i$`)
	tab.SetHeader(2, "Variance ratio")
	for i := 0; i < p.Len(); i++ {
		s, err := p.SingularValue(i)
		if err != nil {
			return nil, err
		}
		r, err := p.ExplainedVarianceRatio(i)
		if err != nil {
			return nil, err
		}
		tab.SetContent(i, 0, f.Int(i))
		tab.SetContent(i, 1, f.Float(s))
		tab.SetContent(i, 2, f.Float(r))
	}
	return tab, nil
}
