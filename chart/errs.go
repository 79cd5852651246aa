package chart

import (
	"errors"
	"fmt"

	"github.com/signadot/knitchart/token"
)

var (
	ErrBadStitchChar = errors.New("bad stitch char")
)

// StitchErr reports a body character that is none of the markers.
type StitchErr struct {
	Pos  token.Pos
	Char rune
	Text string
}

func (e *StitchErr) Unwrap() error {
	return ErrBadStitchChar
}

func (e *StitchErr) Error() string {
	return fmt.Sprintf("%s %q: `...%s...` at %s", ErrBadStitchChar, e.Char,
		token.Sample(e.Text, e.Pos.Col), e.Pos)
}
