package attr

import (
	"errors"
	"image/color"

	"github.com/signadot/knitchart/debug"
	"github.com/signadot/knitchart/header"
)

// Attributes is the typed configuration of one chart.
type Attributes struct {
	rows    uint
	columns uint

	knit  rune
	purl  rune
	empty rune

	background color.NRGBA
	gridColor  color.NRGBA
	cellSize   float64
	dotSize    float64
}

// Defaults returns a fresh Attributes with every attribute at its default.
func Defaults() *Attributes {
	a := theRegistry().defaults
	return &a
}

// Resolve builds Attributes from a header. Entries are applied in line
// order over the defaults; the first unknown name or bad value fails.
func Resolve(h *header.Header) (*Attributes, error) {
	a := Defaults()
	for _, e := range h.Entries() {
		if err := a.SetValue(e.Name, e.Value); err != nil {
			return nil, withLine(err, e.Line)
		}
		if debug.Attrs() {
			debug.Logf("line %d: %s=%q\n", e.Line, e.Name, e.Value)
		}
	}
	return a, nil
}

// SetValue parses value with the named attribute's parser and stores it.
func (a *Attributes) SetValue(name, value string) error {
	spec, ok := theRegistry().specs[name]
	if !ok {
		return &UnknownAttrErr{Name: name}
	}
	v, err := spec.Parse(value)
	if err != nil {
		return &AttrErr{Name: name, Value: value, Err: err}
	}
	spec.Set(a, v)
	return nil
}

// Get returns the current value of the named attribute.
func (a *Attributes) Get(name string) (Value, bool) {
	spec, ok := theRegistry().specs[name]
	if !ok {
		return Value{}, false
	}
	return spec.Get(a), true
}

func withLine(err error, line int) error {
	var unknown *UnknownAttrErr
	if errors.As(err, &unknown) {
		unknown.Line = line
		return unknown
	}
	var bad *AttrErr
	if errors.As(err, &bad) {
		bad.Line = line
		return bad
	}
	return err
}

// Rows is the declared row count, 0 to infer it from the body.
func (a *Attributes) Rows() uint { return a.rows }

// Columns is the declared column count, 0 to infer it from the body.
func (a *Attributes) Columns() uint { return a.columns }

func (a *Attributes) Knit() rune { return a.knit }
func (a *Attributes) Purl() rune { return a.purl }
func (a *Attributes) Empty() rune { return a.empty }

func (a *Attributes) Background() color.NRGBA { return a.background }
func (a *Attributes) GridColor() color.NRGBA { return a.gridColor }
func (a *Attributes) CellSize() float64 { return a.cellSize }
func (a *Attributes) DotSize() float64 { return a.dotSize }

// Clash is a pair of marker attributes set to the same character.
type Clash struct {
	First, Second string
	Char          rune
}

// Ambiguous returns the marker pairs that share a character, in knit,
// purl, empty precedence order. The first named marker of a pair is the
// one a chart body character resolves to.
func (a *Attributes) Ambiguous() []Clash {
	markers := []struct {
		name string
		r    rune
	}{
		{KnitAttr, a.knit},
		{PurlAttr, a.purl},
		{EmptyAttr, a.empty},
	}
	var res []Clash
	for i := range markers {
		for j := i + 1; j < len(markers); j++ {
			if markers[i].r == markers[j].r {
				res = append(res, Clash{First: markers[i].name, Second: markers[j].name, Char: markers[i].r})
			}
		}
	}
	return res
}
