// Package attr resolves a chart header into typed [Attributes].
//
// Every recognized attribute is described by a [Spec] in a registry that is
// built once on first use and is read-only afterwards. A Spec holds the
// attribute's default text, a parser producing a [Value] and a setter that
// stores the value into an Attributes. Defaults go through the same parser
// as header values; the registry refuses to build if any default fails to
// parse.
//
// Recognized attributes:
//
//	rows        count, 0 infers from the chart body
//	columns     count, 0 infers from the chart body
//	knit        marker, default '.'
//	purl        marker, default 'X'
//	empty       marker, default SPACE
//	background  color, default whitesmoke
//	gridColor   color, default darkgray
//	cellSize    length, default 20px
//	dotSize     length, default 10px
//
// Markers are a single printable character or one of the names SPACE,
// BLANK, DOT or CIRCLE (case insensitive). Colors are CSS names, #rgb,
// #rrggbb, rgb(r,g,b) or rgba(r,g,b,a).
package attr
