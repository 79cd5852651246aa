package token

import (
	"errors"
	"fmt"
)

var (
	ErrMissingIdent         = errors.New("identifier missing")
	ErrIdentInitialNotAlpha = errors.New("identifier must start with alpha character")
	ErrIdentInvalidChar     = errors.New("identifier contains non-alnum character")
)

// LineErr is an error that occurred on a given 1-indexed input line.
type LineErr struct {
	Err  error
	Line int
}

func NewLineErr(e error, line int) *LineErr {
	return &LineErr{Err: e, Line: line}
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}
