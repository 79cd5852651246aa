// Package chart reads knit charts.
//
// A chart file is a header of name=value attributes (see package attr),
// a line reading CHART, and a body with one row of stitch markers per
// line. The body ends at end of input or at a line starting with OSAAT.
//
//	// 4 by 4 seed stitch
//	rows=4
//	columns=4
//	CHART
//	.X.X
//	X.X.
//	.X.X
//	X.X.
//
// [Read] maps each body character to a [Stitch] and then reconciles the
// body with the declared rows and columns: short rows are padded with
// knits, long rows truncated, and missing rows added. Each repair is
// reported as a [Warning]; rows in excess of the declared count are kept
// but not counted by [Chart.Rows]. Any other problem is an error and no
// chart is returned.
package chart
