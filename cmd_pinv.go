package main

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"bwestbro.com/imgsvd/pca"
	"bwestbro.com/imgsvd/pgm"
	"bwestbro.com/imgsvd/table"
)

func pinvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pinv <image.pgm>",
		Short: "Write the pseudoinverse of an image and how close it is to an inverse",
		Long: `pinv writes A⁺, A⁺A and AA⁺ as images into inverse/ together with
inverse/error.tex defining \range, \mean and \stdev of I - A⁺A.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPinv(args[0])
		},
	}
}

func (a *app) runPinv(filename string) error {
	img, err := pgm.ReadFile(filename)
	if err != nil {
		return err
	}
	A := pgm.ToMatrix(img)
	pinv, err := pca.Pinv(A)
	if err != nil {
		return err
	}
	var iHat, b mat.Dense
	iHat.Mul(pinv, A)
	b.Mul(A, pinv)

	dir, err := a.dir("inverse")
	if err != nil {
		return err
	}
	images := []struct {
		name string
		m    mat.Matrix
	}{
		{"Pinv.pgm", pinv},
		{"Ihat.pgm", &iHat},
		{"B.pgm", &b},
	}
	for _, im := range images {
		out := pgm.FromMatrix(im.m, pgm.LinearRangeOf(im.m))
		if err := pgm.WriteFile(filepath.Join(dir, im.name), out); err != nil {
			return err
		}
	}

	n, _ := iHat.Dims()
	var e mat.Dense
	e.Sub(Identity(n), &iHat)
	var vars table.Variables
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"range", Range(&e)},
		{"mean", Mean(&e)},
		{"stdev", StdDev(&e)},
	} {
		if err := vars.Put(v.name, v.value); err != nil {
			return err
		}
		log.Info().Float64(v.name, v.value).Msg("I - A⁺A")
	}
	return vars.WriteFile(filepath.Join(dir, "error.tex"), a.conf.Format)
}
