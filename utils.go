package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// WriteMat writes m to w one row per line with the entries separated
// by single spaces, in a form ReadMat reads back exactly
func WriteMat(w io.Writer, m mat.Matrix) error {
	bw := bufio.NewWriter(w)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpMat writes m to filename
func DumpMat(m mat.Matrix, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteMat(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func Identity(n int) *mat.Dense {
	ret := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		ret.Set(i, i, 1.0)
	}
	return ret
}
