package attr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var charNames = map[string]rune{
	"SPACE":  ' ',
	"BLANK":  ' ',
	"DOT":    '•',
	"CIRCLE": '◦',
}

// ParseCharName parses a marker: a single printable character or one of
// the names SPACE, BLANK, DOT, CIRCLE in any case.
func ParseCharName(s string) (rune, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCharName)
	}
	if r, ok := charNames[strings.ToUpper(s)]; ok {
		return r, nil
	}
	r, sz := utf8.DecodeRuneInString(s)
	if sz != len(s) {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidCharName, s)
	}
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return 0, fmt.Errorf("%w: %q is not printable", ErrInvalidCharName, s)
	}
	return r, nil
}

// FormatCharName is the inverse of ParseCharName. A space, which a header
// line cannot end with, is written as SPACE.
func FormatCharName(r rune) string {
	if r == ' ' {
		return "SPACE"
	}
	return string(r)
}

func parseChar(s string) (Value, error) {
	r, err := ParseCharName(s)
	if err != nil {
		return Value{}, err
	}
	return CharValue(r), nil
}
