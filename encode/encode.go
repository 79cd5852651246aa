package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/knitchart/attr"
	"github.com/signadot/knitchart/chart"
	"github.com/signadot/knitchart/format"
	"github.com/signadot/knitchart/token"
)

type EncState struct {
	format   format.Format
	defaults bool
	warnings bool

	Color func(ColorAttr, string) string
}

func Encode(c *chart.Chart, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(c, w, es)
	case format.YAMLFormat, format.JSONFormat:
		return encodeDoc(c, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func encodeText(c *chart.Chart, w io.Writer, es *EncState) error {
	a := c.Attributes()
	if err := writeAttr(w, es, attr.RowsAttr, strconv.Itoa(c.Rows())); err != nil {
		return err
	}
	if err := writeAttr(w, es, attr.ColumnsAttr, strconv.Itoa(c.Columns())); err != nil {
		return err
	}
	defs := attr.Defaults()
	for _, spec := range attr.Specs() {
		if spec.Name == attr.RowsAttr || spec.Name == attr.ColumnsAttr {
			continue
		}
		v, _ := a.Get(spec.Name)
		if d, _ := defs.Get(spec.Name); v == d && !es.defaults {
			continue
		}
		if err := writeAttr(w, es, spec.Name, v.String()); err != nil {
			return err
		}
	}
	if err := writeString(w, es.color(KeywordColor, token.ChartKeyword)+"\n"); err != nil {
		return err
	}
	for i := range c.StoredRows() {
		if err := writeString(w, renderRow(a, c.Row(i), es)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(w io.Writer, es *EncState, name, value string) error {
	ln := es.color(KeyColor, name) + es.color(SepColor, "=") + es.color(ValueColor, value) + "\n"
	return writeString(w, ln)
}

// renderRow writes a row with the chart's markers, coloring runs of the
// same stitch together.
func renderRow(a *attr.Attributes, row []chart.Stitch, es *EncState) string {
	b := &strings.Builder{}
	run := &strings.Builder{}
	for i, s := range row {
		run.WriteRune(Marker(a, s))
		if i == len(row)-1 || row[i+1] != s {
			b.WriteString(es.color(stitchColor(s), run.String()))
			run.Reset()
		}
	}
	return b.String()
}

// Marker returns the character representing s under a.
func Marker(a *attr.Attributes, s chart.Stitch) rune {
	switch s {
	case chart.Purl:
		return a.Purl()
	case chart.Empty:
		return a.Empty()
	default:
		return a.Knit()
	}
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
