package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	k = Knit
	p = Purl
	e = Empty
)

type normalizeTest struct {
	name       string
	grid       [][]Stitch
	rows, cols int
	want       [][]Stitch
	wantRows   int
	wantCols   int
	warnings   []Warning
}

func lineNumbers(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i + 1
	}
	return res
}

func TestNormalize(t *testing.T) {
	tests := []normalizeTest{
		{
			name:     "rectangular",
			grid:     [][]Stitch{{k, p}, {p, k}},
			rows:     2,
			cols:     2,
			want:     [][]Stitch{{k, p}, {p, k}},
			wantRows: 2,
			wantCols: 2,
		},
		{
			name:     "inferred",
			grid:     [][]Stitch{{k, p}, {p, e}},
			want:     [][]Stitch{{k, p}, {p, e}},
			wantRows: 2,
			wantCols: 2,
		},
		{
			name:     "jagged inferred",
			grid:     [][]Stitch{{p}, {p, e, p}},
			want:     [][]Stitch{{p, k, k}, {p, e, p}},
			wantRows: 2,
			wantCols: 3,
			warnings: []Warning{
				{Kind: MissingStitches, Row: 1, Line: 1, Got: 1, Want: 3},
			},
		},
		{
			name:     "truncate",
			grid:     [][]Stitch{{p, p, p, e}},
			cols:     2,
			want:     [][]Stitch{{p, p}},
			wantRows: 1,
			wantCols: 2,
			warnings: []Warning{
				{Kind: TooManyStitches, Row: 1, Line: 1, Got: 4, Want: 2},
			},
		},
		{
			name:     "too few rows",
			grid:     [][]Stitch{{p, p}, {p, p}, {p, p}},
			rows:     5,
			want:     [][]Stitch{{p, p}, {p, p}, {p, p}, {k, k}, {k, k}},
			wantRows: 5,
			wantCols: 2,
			warnings: []Warning{
				{Kind: TooFewRows, Got: 3, Want: 5},
				{Kind: MissingStitches, Row: 4, Got: 0, Want: 2},
				{Kind: MissingStitches, Row: 5, Got: 0, Want: 2},
			},
		},
		{
			name:     "too many rows kept",
			grid:     [][]Stitch{{p}, {e}, {p, p}},
			rows:     2,
			cols:     1,
			want:     [][]Stitch{{p}, {e}, {p}},
			wantRows: 2,
			wantCols: 1,
			warnings: []Warning{
				{Kind: TooManyRows, Got: 3, Want: 2},
				{Kind: TooManyStitches, Row: 3, Line: 3, Got: 2, Want: 1},
			},
		},
		{
			name:     "empty",
			want:     [][]Stitch{},
			wantRows: 0,
			wantCols: 0,
		},
		{
			name:     "empty with rows",
			rows:     2,
			want:     [][]Stitch{{}, {}},
			wantRows: 2,
			wantCols: 0,
			warnings: []Warning{
				{Kind: TooFewRows, Got: 0, Want: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings []Warning
			got, rows, cols := normalize(tt.grid, lineNumbers(len(tt.grid)), tt.rows, tt.cols, func(w Warning) {
				warnings = append(warnings, w)
			})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("grid mismatch (-want +got):\n%s", diff)
			}
			if rows != tt.wantRows || cols != tt.wantCols {
				t.Errorf("got %dx%d want %dx%d", rows, cols, tt.wantRows, tt.wantCols)
			}
			if diff := cmp.Diff(tt.warnings, warnings); diff != "" {
				t.Errorf("warnings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	grid := [][]Stitch{{k, p, e}, {e, p, k}, {p, p, p}}
	once, rows, cols := normalize(grid, lineNumbers(3), 0, 0, func(w Warning) {
		t.Errorf("unexpected warning %s", w)
	})
	twice, rows2, cols2 := normalize(once, lineNumbers(3), rows, cols, func(w Warning) {
		t.Errorf("unexpected warning %s", w)
	})
	if diff := cmp.Diff(grid, twice); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if rows2 != 3 || cols2 != 3 {
		t.Errorf("got %dx%d want 3x3", rows2, cols2)
	}
}

func TestNormalizeCopies(t *testing.T) {
	grid := [][]Stitch{{p, p}}
	got, _, _ := normalize(grid, lineNumbers(1), 0, 0, func(Warning) {})
	got[0][0] = e
	if grid[0][0] != p {
		t.Error("normalize aliased its input")
	}
}
