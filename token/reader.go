package token

import (
	"bufio"
	"errors"
	"io"
)

// LineReader reads physical lines and numbers them from 1. The header and
// the chart body share one LineReader so the body resumes exactly where the
// header stopped.
type LineReader struct {
	r    *bufio.Reader
	next int
}

func NewLineReader(r io.Reader) *LineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &LineReader{r: br, next: 1}
}

// Next returns the next line with its line ending removed, and its number.
// At end of input it returns io.EOF. A final line with no newline is
// returned normally.
func (lr *LineReader) Next() (string, int, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", 0, err
		}
		if s == "" {
			return "", 0, io.EOF
		}
	}
	n := lr.next
	lr.next++
	return chomp(s), n, nil
}

// NextLine classifies the next line.
func (lr *LineReader) NextLine() (*Line, error) {
	s, n, err := lr.Next()
	if err != nil {
		return nil, err
	}
	return Classify(s, n)
}

// LineNumber returns the number the next line read will have.
func (lr *LineReader) LineNumber() int {
	return lr.next
}
