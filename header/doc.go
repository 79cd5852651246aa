// Package header builds the attribute header of a knit chart.
//
// The header is the leading run of name=value lines, blank lines and //
// comments, ending at a line reading CHART or at end of input.
package header
