package table

import (
	"strconv"
	"strings"
)

// Format controls how numbers are rendered into table cells and
// variables. It is passed to whatever needs it instead of living in a
// package variable.
type Format struct {
	// Digits is the maximum number of fraction digits. Trailing zeros
	// are dropped. A negative value gives the shortest representation
	// that round-trips.
	Digits int
}

// Float formats v in plain decimal notation
func (f Format) Float(v float64) string {
	s := strconv.FormatFloat(v, 'f', f.Digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Int formats i in decimal
func (Format) Int(i int) string {
	return strconv.Itoa(i)
}
