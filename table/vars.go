package table

import (
	"errors"
	"fmt"
	"io"
)

// ErrBadName is returned by Put for names LaTeX cannot use as a macro
var ErrBadName = errors.New("table: variable names must be ASCII letters")

// Variables is an ordered set of named values written out as LaTeX
// macros, so a report can reference \mean instead of a pasted number
type Variables struct {
	names  []string
	values map[string]float64
}

// Put sets name to value, keeping the position of an existing name
func (v *Variables) Put(name string, value float64) error {
	if !isMacroName(name) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if v.values == nil {
		v.values = make(map[string]float64)
	}
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
	return nil
}

// Get returns the value of name and whether it has been set
func (v *Variables) Get(name string) (float64, bool) {
	val, ok := v.values[name]
	return val, ok
}

// Len returns the number of variables
func (v *Variables) Len() int {
	return len(v.names)
}

type variable struct {
	Name  string
	Value string
}

// Write emits one \newcommand per variable, in insertion order
func (v *Variables) Write(w io.Writer, f Format) error {
	vars := make([]variable, len(v.names))
	for i, name := range v.names {
		vars[i] = variable{
			Name:  name,
			Value: f.Float(v.values[name]),
		}
	}
	return TEMPLATES.ExecuteTemplate(w, "vars.tmpl", vars)
}

// WriteFile writes the variables to filename
func (v *Variables) WriteFile(filename string, f Format) error {
	return writeFile(filename, func(w io.Writer) error {
		return v.Write(w, f)
	})
}

func isMacroName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
