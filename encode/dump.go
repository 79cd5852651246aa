package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/knitchart/attr"
	"github.com/signadot/knitchart/chart"
)

// Doc is the YAML and JSON view of a chart. Grid rows are written with
// the chart's markers. StoredRows is set only when it differs from Rows.
type Doc struct {
	Rows       int       `json:"rows" yaml:"rows"`
	Columns    int       `json:"columns" yaml:"columns"`
	StoredRows int       `json:"storedRows,omitempty" yaml:"storedRows,omitempty"`
	Attributes []AttrDoc `json:"attributes" yaml:"attributes"`
	Grid       []string  `json:"grid" yaml:"grid"`
	Warnings   []string  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type AttrDoc struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// NewDoc builds the document for c. Attributes are listed by name.
func NewDoc(c *chart.Chart, warnings bool) *Doc {
	a := c.Attributes()
	doc := &Doc{
		Rows:       c.Rows(),
		Columns:    c.Columns(),
		Attributes: []AttrDoc{},
		Grid:       make([]string, c.StoredRows()),
	}
	if c.StoredRows() != c.Rows() {
		doc.StoredRows = c.StoredRows()
	}
	for _, spec := range attr.Specs() {
		v, _ := a.Get(spec.Name)
		doc.Attributes = append(doc.Attributes, AttrDoc{
			Name:  spec.Name,
			Kind:  spec.Kind.String(),
			Value: v.String(),
		})
	}
	for i := range doc.Grid {
		b := &strings.Builder{}
		for _, s := range c.Row(i) {
			b.WriteRune(Marker(a, s))
		}
		doc.Grid[i] = b.String()
	}
	if warnings {
		for _, w := range c.Warnings() {
			doc.Warnings = append(doc.Warnings, w.String())
		}
	}
	return doc
}

func encodeDoc(c *chart.Chart, w io.Writer, es *EncState) error {
	doc := NewDoc(c, es.warnings)
	var (
		d   []byte
		err error
	)
	if es.format.IsJSON() {
		d, err = json.MarshalIndent(doc, "", "  ")
		d = append(d, '\n')
	} else {
		d, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", es.format, err)
	}
	_, err = w.Write(d)
	return err
}
