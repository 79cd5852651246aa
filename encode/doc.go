// Package encode writes charts.
//
// The text format is canonical chart text: a header with the effective
// rows and columns and every other attribute that differs from its
// default, the CHART line, then one line per stored row. Reading the
// result yields the same chart.
//
// The YAML and JSON formats write a [Doc].
package encode
