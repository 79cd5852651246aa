package chart

import (
	"github.com/signadot/knitchart/attr"
	"github.com/signadot/knitchart/token"
)

type bodyLine struct {
	text   string
	number int
}

// buildGrid converts body lines to rows of stitches. Rows keep the length
// of their line. Markers are matched knit, then purl, then empty.
func buildGrid(a *attr.Attributes, lines []bodyLine) ([][]Stitch, error) {
	grid := make([][]Stitch, 0, len(lines))
	for _, ln := range lines {
		row, err := buildRow(a, ln)
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func buildRow(a *attr.Attributes, ln bodyLine) ([]Stitch, error) {
	row := make([]Stitch, 0, len(ln.text))
	col := 0
	for _, r := range ln.text {
		col++
		switch r {
		case a.Knit():
			row = append(row, Knit)
		case a.Purl():
			row = append(row, Purl)
		case a.Empty():
			row = append(row, Empty)
		default:
			return nil, &StitchErr{
				Pos:  token.Pos{Line: ln.number, Col: col},
				Char: r,
				Text: ln.text,
			}
		}
	}
	return row, nil
}
