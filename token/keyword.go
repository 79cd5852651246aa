package token

import "strings"

const (
	// ChartKeyword ends the header.
	ChartKeyword = "CHART"
	// EndKeyword optionally ends the body.
	EndKeyword = "OSAAT"
)

func isTerminator(s string) bool {
	return strings.TrimSpace(s) == ChartKeyword
}

// IsEnd reports whether a body line ends the chart body. Anything following
// the keyword on the same line is ignored.
func IsEnd(s string) bool {
	return strings.HasPrefix(s, EndKeyword)
}
