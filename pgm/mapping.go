package pgm

import (
	"image"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mapping turns a real matrix entry into a displayable gray level
type Mapping interface {
	Byte(v float64) uint8
}

// Truncating rounds to the nearest integer and clamps to [0, 255]. It
// suits matrices that already hold pixel values, such as low-rank
// approximations of an image.
type Truncating struct{}

func (Truncating) Byte(v float64) uint8 {
	return clamp(math.Round(v))
}

// LinearRange maps [Min, Max] linearly onto [0, 255]. It suits
// matrices on an arbitrary scale, such as singular vectors. A
// degenerate range maps everything to 0.
type LinearRange struct {
	Min, Max float64
}

func (l LinearRange) Byte(v float64) uint8 {
	if l.Max == l.Min {
		return 0
	}
	return clamp(math.Round(255 * (v - l.Min) / (l.Max - l.Min)))
}

// LinearRangeOf returns the LinearRange spanning the entries of m
func LinearRangeOf(m mat.Matrix) LinearRange {
	return LinearRange{Min: mat.Min(m), Max: mat.Max(m)}
}

func clamp(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// FromMatrix renders m as an image with one pixel per entry, row i of
// m becoming row i of the image
func FromMatrix(m mat.Matrix, f Mapping) *image.Gray {
	r, c := m.Dims()
	img := image.NewGray(image.Rect(0, 0, c, r))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			img.Pix[img.PixOffset(j, i)] = f.Byte(m.At(i, j))
		}
	}
	return img
}

// ToMatrix returns the gray levels of img as a height×width matrix
func ToMatrix(img *image.Gray) *mat.Dense {
	b := img.Bounds()
	if b.Empty() {
		return &mat.Dense{}
	}
	ret := mat.NewDense(b.Dy(), b.Dx(), nil)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ret.Set(y-b.Min.Y, x-b.Min.X, float64(img.GrayAt(x, y).Y))
		}
	}
	return ret
}
