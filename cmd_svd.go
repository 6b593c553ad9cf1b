package main

import (
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"bwestbro.com/imgsvd/pca"
	"bwestbro.com/imgsvd/pgm"
	"bwestbro.com/imgsvd/table"
)

func svdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "svd <image.pgm>",
		Short: "Write the SVD factors and low-rank approximations of an image",
		Long: `svd writes U, Σ and V as images into SVD/, the rank-ρ approximation
for every configured ρ into AHat/<ρ>.pgm, and a table of the
approximation errors and compression into AHat/errors.tex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSVD(cmd, args[0])
		},
	}
}

func (a *app) runSVD(cmd *cobra.Command, filename string) error {
	img, err := pgm.ReadFile(filename)
	if err != nil {
		return err
	}
	A := pgm.ToMatrix(img)
	rows, cols := A.Dims()
	log.Info().Str("file", filename).Int("rows", rows).Int("cols", cols).
		Msg("loaded image")

	d, err := pca.Decompose(A)
	if err != nil {
		return err
	}
	log.Info().Int("rank", d.Rank()).Msg("computed SVD")

	svdDir, err := a.dir("SVD")
	if err != nil {
		return err
	}
	factors := []struct {
		name string
		m    *mat.Dense
	}{
		{"U.pgm", d.U()},
		{"S.pgm", d.S()},
		{"V.pgm", d.V()},
	}
	for _, f := range factors {
		img := pgm.FromMatrix(f.m, pgm.LinearRangeOf(f.m))
		if err := pgm.WriteFile(filepath.Join(svdDir, f.name), img); err != nil {
			return err
		}
	}

	aHatDir, err := a.dir("AHat")
	if err != nil {
		return err
	}
	format := a.conf.Format
	tab := table.New(3, len(a.conf.Rhos)+1)
	tab.SetAlignment(0, table.Left)
	tab.SetHeader(0, `$\rho$`)
	tab.SetContent(0, 0, "Max error")
	tab.SetContent(1, 0, "Mean error")
	tab.SetContent(2, 0, `\% Compression`)
	bar := progressbar.NewOptions(len(a.conf.Rhos),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("approximations"),
	)
	for c, rho := range a.conf.Rhos {
		aHat, err := d.Approximate(rho)
		if err != nil {
			return err
		}
		name := filepath.Join(aHatDir, strconv.Itoa(rho)+".pgm")
		if err := pgm.WriteFile(name, pgm.FromMatrix(aHat, pgm.Truncating{})); err != nil {
			return err
		}
		maxErr := pca.MaxError(A, aHat)
		meanErr := pca.MeanError(A, aHat)
		ratio := pca.CompressionRatio(rows, cols, rho)
		tab.SetHeader(c+1, format.Int(rho))
		tab.SetContent(0, c+1, format.Float(maxErr))
		tab.SetContent(1, c+1, format.Float(meanErr))
		tab.SetContent(2, c+1, format.Float(100*ratio))
		if ratio < 0 {
			log.Debug().Int("rho", rho).Msg("approximation is larger than the image")
		}
		if err := bar.Add(1); err != nil {
			return err
		}
	}
	if err := bar.Finish(); err != nil {
		return err
	}
	return tab.WriteFile(filepath.Join(aHatDir, "errors.tex"))
}
