package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/signadot/knitchart/attr"
	"github.com/signadot/knitchart/debug"
	"github.com/signadot/knitchart/header"
	"github.com/signadot/knitchart/token"
)

// Chart is a normalized knit chart. It is immutable.
type Chart struct {
	attrs    attr.Attributes
	stitches [][]Stitch
	rows     int
	cols     int
	warnings []Warning
}

// Open reads the chart in the named file.
func Open(path string, opts ...ReadOption) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	c, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return c, nil
}

// Read reads a whole chart: header, CHART line and body. Without a CHART
// line all of the input is header.
func Read(r io.Reader, opts ...ReadOption) (*Chart, error) {
	lr := token.NewLineReader(r)
	hdr, err := header.Read(lr)
	if err != nil {
		return nil, err
	}
	attrs, err := attr.Resolve(hdr)
	if err != nil {
		return nil, err
	}
	lines, err := readBody(lr)
	if err != nil {
		return nil, err
	}
	return build(attrs, lines, newReadOpts(opts))
}

// New builds a chart from resolved attributes and body lines. Lines are
// numbered from 1 in errors and warnings.
func New(attrs *attr.Attributes, lines []string, opts ...ReadOption) (*Chart, error) {
	body := make([]bodyLine, len(lines))
	for i, ln := range lines {
		body[i] = bodyLine{text: ln, number: i + 1}
	}
	return build(attrs, body, newReadOpts(opts))
}

func readBody(lr *token.LineReader) ([]bodyLine, error) {
	var res []bodyLine
	for {
		s, n, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		if token.IsEnd(s) {
			return res, nil
		}
		res = append(res, bodyLine{text: s, number: n})
	}
}

func build(attrs *attr.Attributes, body []bodyLine, o *readOpts) (*Chart, error) {
	grid, err := buildGrid(attrs, body)
	if err != nil {
		return nil, err
	}
	c := &Chart{attrs: *attrs}
	warn := func(w Warning) {
		c.warnings = append(c.warnings, w)
		o.emit(w)
	}
	for _, clash := range attrs.Ambiguous() {
		warn(Warning{Kind: AmbiguousMarkers, Clash: clash})
	}
	lines := make([]int, len(body))
	for i := range body {
		lines[i] = body[i].number
	}
	c.stitches, c.rows, c.cols = normalize(grid, lines, int(attrs.Rows()), int(attrs.Columns()), warn)
	if debug.Grid() {
		debug.Logf("grid: %d body lines, %dx%d chart, %d stored rows, %d warnings\n",
			len(body), c.rows, c.cols, len(c.stitches), len(c.warnings))
	}
	return c, nil
}

// Rows is the effective row count: the rows attribute, or the number of
// body lines when it is 0.
func (c *Chart) Rows() int { return c.rows }

// Columns is the effective column count: the columns attribute, or the
// longest body line when it is 0.
func (c *Chart) Columns() int { return c.cols }

// StoredRows is the number of rows held, which exceeds Rows when the body
// has more lines than the rows attribute declares.
func (c *Chart) StoredRows() int { return len(c.stitches) }

// Stitch returns the stitch at the 0-indexed row and column. It panics if
// row is not below StoredRows or col is not below Columns.
func (c *Chart) Stitch(row, col int) Stitch {
	return c.stitches[row][col]
}

// Row returns a copy of the 0-indexed row.
func (c *Chart) Row(row int) []Stitch {
	return append([]Stitch(nil), c.stitches[row]...)
}

// Attributes returns a copy of the chart's attributes.
func (c *Chart) Attributes() *attr.Attributes {
	a := c.attrs
	return &a
}

func (c *Chart) Background() color.NRGBA { return c.attrs.Background() }
func (c *Chart) GridColor() color.NRGBA { return c.attrs.GridColor() }
func (c *Chart) CellSize() float64 { return c.attrs.CellSize() }
func (c *Chart) DotSize() float64 { return c.attrs.DotSize() }

// Warnings returns the repairs made while building the chart, in order.
func (c *Chart) Warnings() []Warning {
	return append([]Warning(nil), c.warnings...)
}
