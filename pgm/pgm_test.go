package pgm_test

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"bwestbro.com/imgsvd/pgm"
)

func TestDecode(t *testing.T) {
	in := "P5\n# made by hand\n3 2\n# levels\n200\n" +
		string([]byte{0, 1, 2, 100, 150, 200})
	img, err := pgm.Decode(bytes.NewBufferString(in))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, []byte{0, 1, 2, 100, 150, 200}, img.Pix)
	assert.Equal(t, color.Gray{Y: 100}, img.GrayAt(0, 1))
}

// the byte after maxval is a single whitespace, even if the first
// pixel is itself a whitespace character
func TestDecodeWhitespacePixel(t *testing.T) {
	in := "P5 2 1 255\n" + string([]byte{'\n', ' '})
	img, err := pgm.Decode(bytes.NewBufferString(in))
	require.NoError(t, err)
	assert.Equal(t, []byte{'\n', ' '}, img.Pix)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"ascii magic", "P2\n1 1\n255\n0"},
		{"empty", ""},
		{"bad width", "P5\nx 1\n255\n0"},
		{"zero height", "P5\n1 0\n255\n"},
		{"deep", "P5\n1 1\n65535\n\x00\x00"},
		{"truncated header", "P5\n1 1"},
		{"truncated raster", "P5\n2 2\n255\n\x00\x01\x02"},
		{"pixel over max", "P5\n2 1\n100\n\x10\xc8"},
		{"overflowing size", "P5 4294967296 4294967296 255\n\x00"},
		{"overflowing square", "P5 3037000500 3037000500 255\n\x00"},
		{"too large", "P5 60000 60000 255\n\x00"},
		{"width too long", "P5 99999999999999999999 1 255\n\x00"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := pgm.Decode(bytes.NewBufferString(test.in))
			require.ErrorIs(t, err, pgm.ErrMalformed)
		})
	}
}

func TestDecodeLargeShortRaster(t *testing.T) {
	// within the size limit but only one pixel present
	_, err := pgm.Decode(bytes.NewBufferString("P5 16384 16384 255\n\x00"))
	require.ErrorIs(t, err, pgm.ErrMalformed)
	_, err = pgm.DecodeConfig(bytes.NewBufferString("P5 16385 16384 255\n"))
	require.ErrorIs(t, err, pgm.ErrMalformed)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const rows, cols = 13, 7
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(rng.Intn(256))
	}
	data[0], data[1] = 0, 255
	want := mat.NewDense(rows, cols, data)

	var buf bytes.Buffer
	require.NoError(t, pgm.Encode(&buf, pgm.FromMatrix(want, pgm.Truncating{})))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("P5\n7 13\n255\n")))
	img, err := pgm.Decode(&buf)
	require.NoError(t, err)
	got := pgm.ToMatrix(img)
	assert.True(t, mat.Equal(want, got))
}

func TestEncodeSubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3))
	var buf bytes.Buffer
	require.NoError(t, pgm.Encode(&buf, sub))
	got, err := pgm.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6, 9, 10}, got.Pix)
}

func TestEncodeEmpty(t *testing.T) {
	err := pgm.Encode(&bytes.Buffer{}, image.NewGray(image.Rect(0, 0, 0, 0)))
	require.ErrorIs(t, err, pgm.ErrEmpty)
}

func TestRegisteredFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pgm.Encode(&buf, image.NewGray(image.Rect(0, 0, 5, 3))))
	cfg, name, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "pgm", name)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
	m, name, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "pgm", name)
	assert.IsType(t, &image.Gray{}, m)
}

func TestFiles(t *testing.T) {
	name := filepath.Join(t.TempDir(), "a.pgm")
	want := pgm.FromMatrix(mat.NewDense(2, 2, []float64{0, 64, 128, 255}), pgm.Truncating{})
	require.NoError(t, pgm.WriteFile(name, want))
	got, err := pgm.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, want.Pix, got.Pix)

	require.NoError(t, os.WriteFile(name, []byte("P6\n1 1\n255\n\x00"), 0644))
	_, err = pgm.ReadFile(name)
	require.ErrorIs(t, err, pgm.ErrMalformed)
	assert.Contains(t, err.Error(), name)
}
