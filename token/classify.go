package token

import "strings"

// Classify returns the classification of a single line of text. number is the
// 1-indexed line number recorded in the result and in any error. A trailing
// newline, if present, is ignored.
//
// Pair names are validated before return; a malformed name yields a *LineErr.
// Pair values are everything after the first '=' of the trimmed line and are
// not trimmed again.
func Classify(text string, number int) (*Line, error) {
	text = chomp(text)
	if isComment(text) {
		return &Line{Kind: Comment, Number: number}, nil
	}
	if isTerminator(text) {
		return &Line{Kind: Terminator, Number: number}, nil
	}
	name, value, found := strings.Cut(strings.TrimSpace(text), "=")
	if !found {
		if name == "" {
			return &Line{Kind: Blank, Number: number}, nil
		}
		return &Line{Kind: Single, Number: number, Name: name}, nil
	}
	if err := CheckIdent(name); err != nil {
		return nil, NewLineErr(err, number)
	}
	return &Line{Kind: Pair, Number: number, Name: name, Value: value}, nil
}

func chomp(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
