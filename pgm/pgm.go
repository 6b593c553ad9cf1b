// Package pgm reads and writes binary (P5) portable graymap images and
// converts between them and real-valued matrices.
package pgm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
)

const (
	magic = "P5"
	// the writer always emits this maxval
	maxVal = 255
	// largest raster the decoder accepts, 16384×16384
	maxPixels = 1 << 28
)

var (
	// ErrMalformed is returned for anything that is not a well-formed
	// binary PGM image with at most 256 gray levels
	ErrMalformed = errors.New("pgm: malformed image")
	// ErrEmpty is returned when asked to encode an image with no pixels
	ErrEmpty = errors.New("pgm: empty image")
)

func init() {
	image.RegisterFormat("pgm", magic, decode, DecodeConfig)
}

type header struct {
	width, height, max int
}

// decode adapts Decode to the signature image.RegisterFormat wants
func decode(r io.Reader) (image.Image, error) {
	return Decode(r)
}

// Decode reads a binary PGM image from r. Images with a maxval above
// 255 and pixels brighter than the declared maxval are rejected.
func Decode(r io.Reader) (*image.Gray, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	// grows only as raster bytes arrive
	var raster bytes.Buffer
	n := int64(h.width) * int64(h.height)
	if _, err := io.CopyN(&raster, br, n); err != nil {
		return nil, fmt.Errorf("%w: raster of %d×%d pixels: %v",
			ErrMalformed, h.width, h.height, err)
	}
	img := &image.Gray{
		Pix:    raster.Bytes()[:n],
		Stride: h.width,
		Rect:   image.Rect(0, 0, h.width, h.height),
	}
	for i, p := range img.Pix {
		if int(p) > h.max {
			return nil, fmt.Errorf(
				"%w: pixel value %d at (%d, %d) outside of range [0, %d]",
				ErrMalformed, p, i%h.width, i/h.width, h.max)
		}
	}
	return img, nil
}

// DecodeConfig returns the dimensions of a PGM image without reading
// the raster
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.GrayModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}

func readHeader(br *bufio.Reader) (h header, err error) {
	m, err := token(br)
	if err != nil {
		return h, err
	}
	if m != magic {
		return h, fmt.Errorf("%w: magic number %q is not %q",
			ErrMalformed, m, magic)
	}
	fields := []struct {
		name string
		dst  *int
	}{
		{"width", &h.width},
		{"height", &h.height},
		{"maxval", &h.max},
	}
	for _, f := range fields {
		tok, err := token(br)
		if err != nil {
			return h, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 {
			return h, fmt.Errorf("%w: %s %q is not a positive integer",
				ErrMalformed, f.name, tok)
		}
		*f.dst = v
	}
	if h.width > maxPixels/h.height {
		return h, fmt.Errorf("%w: %d×%d image is larger than %d pixels",
			ErrMalformed, h.width, h.height, maxPixels)
	}
	if h.max > maxVal {
		return h, fmt.Errorf(
			"%w: maxval %d, images with more than 256 shades of gray are not supported",
			ErrMalformed, h.max)
	}
	return h, nil
}

// token returns the next whitespace-delimited header field, skipping
// '#' comments. The single whitespace byte ending the field is
// consumed, which leaves br at the start of the raster after maxval.
func token(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err == io.EOF && len(tok) > 0 {
			return string(tok), nil
		} else if err != nil {
			return "", fmt.Errorf("%w: truncated header: %v",
				ErrMalformed, err)
		}
		switch {
		case isSpace(b) && len(tok) > 0:
			return string(tok), nil
		case isSpace(b):
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: truncated header: %v",
					ErrMalformed, err)
			}
		default:
			tok = append(tok, b)
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Encode writes m to w as a binary PGM image with maxval 255. Images
// that are not already *image.Gray are converted with color.GrayModel.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Empty() {
		return ErrEmpty
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, b.Dx(), b.Dy(), maxVal)
	gray, ok := m.(*image.Gray)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if ok {
			i := gray.PixOffset(b.Min.X, y)
			bw.Write(gray.Pix[i : i+b.Dx()])
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			bw.WriteByte(color.GrayModel.Convert(m.At(x, y)).(color.Gray).Y)
		}
	}
	return bw.Flush()
}

// ReadFile decodes the PGM image in filename
func ReadFile(filename string) (*image.Gray, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", filename, err)
	}
	return img, nil
}

// WriteFile encodes m into filename, creating or truncating it
func WriteFile(filename string, m image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("file %s: %w", filename, err)
	}
	return f.Close()
}
