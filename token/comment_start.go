package token

import "strings"

const commentLead = "//"

// comments must start at the beginning of the line, leading
// whitespace makes it something else.
func isComment(s string) bool {
	return strings.HasPrefix(s, commentLead)
}
