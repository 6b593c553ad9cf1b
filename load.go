package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"bwestbro.com/imgsvd/pca"
	"bwestbro.com/imgsvd/table"
)

var (
	ErrConfig          = errors.New("invalid configuration")
	ErrMalformedMatrix = errors.New("malformed matrix file")
)

// RawConf is the configuration file as written by the user
type RawConf struct {
	Rhos       []int   `toml:"rhos"`
	Components int     `toml:"components"`
	Method     string  `toml:"method"`
	Transpose  bool    `toml:"transpose"`
	Digits     int     `toml:"digits"`
	Start      float64 `toml:"start"`
	Tolerance  float64 `toml:"tolerance"`
	MaxIt      int     `toml:"maxit"`
	LogLevel   string  `toml:"loglevel"`
}

// Config is the validated form of RawConf
type Config struct {
	// ranks of the SVD approximations written by svd
	Rhos []int
	// number of principal components kept by pca
	Components int
	Method     pca.Method
	// treat the rows of the pca data file as variables
	Transpose bool
	Format    table.Format
	// Newton's method settings
	Start     float64
	Tolerance float64
	MaxIt     int
	LogLevel  zerolog.Level
}

// DefaultRawConf returns the settings used for anything a
// configuration file leaves out
func DefaultRawConf() RawConf {
	return RawConf{
		Rhos:       []int{1, 2, 3, 4, 5, 10, 20, 30, 40, 80},
		Components: 2,
		Method:     "svd",
		Digits:     5,
		Start:      0,
		Tolerance:  0.0001,
		MaxIt:      100,
		LogLevel:   "info",
	}
}

func (rc RawConf) ToConfig() (conf Config, err error) {
	for _, rho := range rc.Rhos {
		if rho < 0 {
			return conf, fmt.Errorf("%w: negative rho %d", ErrConfig, rho)
		}
	}
	if rc.Components < 1 {
		return conf, fmt.Errorf("%w: components = %d, need at least 1",
			ErrConfig, rc.Components)
	}
	if rc.Tolerance <= 0 {
		return conf, fmt.Errorf("%w: tolerance = %g, need > 0",
			ErrConfig, rc.Tolerance)
	}
	if rc.MaxIt < 1 {
		return conf, fmt.Errorf("%w: maxit = %d, need at least 1",
			ErrConfig, rc.MaxIt)
	}
	conf.Method, err = pca.ParseMethod(rc.Method)
	if err != nil {
		return conf, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	conf.LogLevel, err = zerolog.ParseLevel(rc.LogLevel)
	if err != nil {
		return conf, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	conf.Rhos = rc.Rhos
	conf.Components = rc.Components
	conf.Transpose = rc.Transpose
	conf.Format = table.Format{Digits: rc.Digits}
	conf.Start = rc.Start
	conf.Tolerance = rc.Tolerance
	conf.MaxIt = rc.MaxIt
	return conf, nil
}

// LoadConfig reads the TOML configuration in filename on top of the
// defaults. An empty filename gives the defaults alone.
func LoadConfig(filename string) (Config, error) {
	rc := DefaultRawConf()
	if filename == "" {
		return rc.ToConfig()
	}
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	md, err := toml.Decode(string(cont), &rc)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, filename, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown keys %v",
			ErrConfig, filename, undec)
	}
	return rc.ToConfig()
}

// ReadMat reads a rows×cols matrix of whitespace-separated numbers in
// row-major order. Anything after the last entry is ignored.
func ReadMat(r io.Reader, rows, cols int) (*mat.Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: dimensions %d×%d", ErrMalformedMatrix,
			rows, cols)
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	data := make([]float64, 0, rows*cols)
	for len(data) < rows*cols && scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %q is not a number",
				ErrMalformedMatrix, len(data), scanner.Text())
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(data) < rows*cols {
		return nil, fmt.Errorf("%w: found %d entries, wanted %d×%d",
			ErrMalformedMatrix, len(data), rows, cols)
	}
	return mat.NewDense(rows, cols, data), nil
}

// LoadMat reads a rows×cols matrix from filename
func LoadMat(filename string, rows, cols int) (*mat.Dense, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ReadMat(f, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", filename, err)
	}
	return m, nil
}

// parseDim parses a positive matrix dimension from the command line
func parseDim(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s %q is not a positive integer",
			ErrMalformedMatrix, name, s)
	}
	return n, nil
}
