// Package token classifies the physical lines of a knit chart file.
//
// [Classify] maps one line of text to exactly one [Line]: blank, comment,
// single token, name=value pair or the CHART terminator.
//
// [LineReader] numbers lines as they are read from an [io.Reader] and is the
// shared cursor between the header and the chart body.
package token
