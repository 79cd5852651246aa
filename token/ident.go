package token

// CheckIdent validates an attribute identifier: an ASCII letter followed by
// any number of ASCII letters or digits.
func CheckIdent(s string) error {
	if s == "" {
		return ErrMissingIdent
	}
	if !isAlpha(s[0]) {
		return ErrIdentInitialNotAlpha
	}
	for i := 1; i < len(s); i++ {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return ErrIdentInvalidChar
		}
	}
	return nil
}

// bytes >= 0x80 are never alnum, so multibyte runes fail byte-wise.
func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
