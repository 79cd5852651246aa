package chart

import (
	"fmt"
	"log/slog"

	"github.com/signadot/knitchart/attr"
)

type WarningKind int

const (
	TooFewRows WarningKind = iota
	TooManyRows
	TooManyStitches
	MissingStitches
	AmbiguousMarkers
)

func (k WarningKind) String() string {
	switch k {
	case TooFewRows:
		return "too few rows, padding"
	case TooManyRows:
		return "too many rows"
	case TooManyStitches:
		return "too many stitches in a row, truncating"
	case MissingStitches:
		return "missing stitches, adding knits"
	case AmbiguousMarkers:
		return "markers share a character"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is a problem that was repaired while reading a chart.
//
// Row is the 1-indexed chart row a row warning applies to and Line its
// source line, 0 for rows added by padding. Got and Want are observed and
// expected counts of rows or stitches. Clash is set for AmbiguousMarkers.
type Warning struct {
	Kind  WarningKind
	Row   int
	Line  int
	Got   int
	Want  int
	Clash attr.Clash
}

func (w Warning) String() string {
	switch w.Kind {
	case TooFewRows, TooManyRows:
		return fmt.Sprintf("%s (got %d, want %d)", w.Kind, w.Got, w.Want)
	case TooManyStitches, MissingStitches:
		return fmt.Sprintf("row %d: %s (got %d, want %d)", w.Row, w.Kind, w.Got, w.Want)
	case AmbiguousMarkers:
		return fmt.Sprintf("%s: %s and %s are both %q, using %s", w.Kind,
			w.Clash.First, w.Clash.Second, w.Clash.Char, w.Clash.First)
	}
	return w.Kind.String()
}

func (w Warning) logAttrs() []any {
	var res []any
	if w.Row != 0 {
		res = append(res, slog.Int("row", w.Row))
	}
	if w.Line != 0 {
		res = append(res, slog.Int("line", w.Line))
	}
	if w.Kind == AmbiguousMarkers {
		return append(res,
			slog.String("first", w.Clash.First),
			slog.String("second", w.Clash.Second),
			slog.String("char", string(w.Clash.Char)))
	}
	return append(res, slog.Int("got", w.Got), slog.Int("want", w.Want))
}
