// Package table writes results as LaTeX fragments: tabular
// environments and \newcommand variables
package table

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
)

//go:embed *.tmpl
var Templates embed.FS

var TEMPLATES *template.Template

func init() {
	var err error
	TEMPLATES, err = template.New("table").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(Templates, "*.tmpl")
	if err != nil {
		panic(err)
	}
}

// Alignment is the justification of a table column
type Alignment int

const (
	Center Alignment = iota
	Left
	Right
)

// String returns the LaTeX column specifier
func (a Alignment) String() string {
	switch a {
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return "c"
	}
}

// Table is a rows×cols grid of preformatted cells with one optional
// header row. Indices out of range panic like slice indexing.
type Table struct {
	align   []Alignment
	header  []string
	content [][]string
}

// New returns an empty table with every column centered
func New(rows, cols int) *Table {
	content := make([][]string, rows)
	for i := range content {
		content[i] = make([]string, cols)
	}
	return &Table{
		align:   make([]Alignment, cols),
		header:  make([]string, cols),
		content: content,
	}
}

// Rows returns the number of content rows, not counting the header
func (t *Table) Rows() int { return len(t.content) }

// Cols returns the number of columns
func (t *Table) Cols() int { return len(t.align) }

// SetAlignment sets the alignment of column col

func (t *Table) SetAlignment(col int, a Alignment) {
	t.align[col] = a
}

// SetHeader sets the header of column col. A table whose headers are
// all empty is written without a header row.
func (t *Table) SetHeader(col int, header string) {
	t.header[col] = header
}

// SetContent sets the cell at row, col
func (t *Table) SetContent(row, col int, content string) {
	t.content[row][col] = content
}

func (t *Table) hasHeader() bool {
	for _, h := range t.header {
		if h != "" {
			return true
		}
	}
	return false
}

// Write renders the table as a LaTeX tabular environment
func (t *Table) Write(w io.Writer) error {
	spec := make([]string, len(t.align))
	for i, a := range t.align {
		spec[i] = a.String()
	}
	data := struct {
		Spec   string
		Header []string
		Rows   [][]string
	}{
		Spec: strings.Join(spec, " "),
		Rows: t.content,
	}
	if t.hasHeader() {
		data.Header = t.header
	}
	return TEMPLATES.ExecuteTemplate(w, "tabular.tmpl", data)
}

// WriteFile writes the table to filename
func (t *Table) WriteFile(filename string) error {
	return writeFile(filename, t.Write)
}

func writeFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}
