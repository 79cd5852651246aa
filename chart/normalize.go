package chart

// normalize reshapes a jagged grid to the effective dimensions. A declared
// count of 0 is replaced by the observed one: the number of rows, or the
// longest row. Missing rows are appended and then padded like any short
// row. Surplus rows are kept, and column normalized, but do not count
// toward the returned row count.
//
// lines holds the source line of each grid row.
func normalize(grid [][]Stitch, lines []int, declRows, declCols int, warn func(Warning)) ([][]Stitch, int, int) {
	rows := declRows
	if rows == 0 {
		rows = len(grid)
	}
	cols := declCols
	if cols == 0 {
		for _, row := range grid {
			cols = max(cols, len(row))
		}
	}

	switch {
	case len(grid) < rows:
		warn(Warning{Kind: TooFewRows, Got: len(grid), Want: rows})
	case len(grid) > rows:
		warn(Warning{Kind: TooManyRows, Got: len(grid), Want: rows})
	}

	res := make([][]Stitch, max(rows, len(grid)))
	for i := range res {
		var (
			row  []Stitch
			line int
		)
		if i < len(grid) {
			row, line = grid[i], lines[i]
		}
		res[i] = fitRow(row, cols, func(kind WarningKind) {
			warn(Warning{Kind: kind, Row: i + 1, Line: line, Got: len(row), Want: cols})
		})
	}
	return res, rows, cols
}

// fitRow returns a copy of row with exactly cols stitches, truncating or
// padding with knits.
func fitRow(row []Stitch, cols int, warn func(WarningKind)) []Stitch {
	res := make([]Stitch, 0, cols)
	switch {
	case len(row) > cols:
		warn(TooManyStitches)
		res = append(res, row[:cols]...)
	case len(row) < cols:
		warn(MissingStitches)
		res = append(res, row...)
		for len(res) < cols {
			res = append(res, Knit)
		}
	default:
		res = append(res, row...)
	}
	return res
}
