package header

import (
	"errors"
	"io"
	"os"
	"sort"

	"github.com/signadot/knitchart/debug"
	"github.com/signadot/knitchart/token"
)

// Entry is one name=value header line.
type Entry struct {
	Name  string
	Value string
	Line  int
}

// Header maps attribute names to their raw values. It is immutable once
// built. When a name is repeated the last line wins.
type Header struct {
	entries    map[string]Entry
	terminated bool
}

// Read consumes lines from lr up to and including the CHART terminator, or
// to end of input. On return lr is positioned at the first body line.
func Read(lr *token.LineReader) (*Header, error) {
	h := &Header{entries: map[string]Entry{}}
	var seen []*token.Line
lines:
	for {
		ln, err := lr.NextLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if debug.Header() {
			seen = append(seen, ln)
		}
		switch ln.Kind {
		case token.Blank, token.Comment:
		case token.Single:
			return nil, token.NewLineErr(ErrBadHeaderLine, ln.Number)
		case token.Pair:
			h.entries[ln.Name] = Entry{Name: ln.Name, Value: ln.Value, Line: ln.Number}
		case token.Terminator:
			h.terminated = true
			break lines
		}
	}
	if debug.Header() {
		token.PrintLines(os.Stderr, seen, "header")
	}
	return h, nil
}

// Parse reads a header from r. Unless r is a *bufio.Reader, input buffered
// past the terminator is lost; use Read with a shared token.LineReader to
// continue with the body.
func Parse(r io.Reader) (*Header, error) {
	return Read(token.NewLineReader(r))
}

// Value returns the raw value for name.
func (h *Header) Value(name string) (string, bool) {
	e, ok := h.entries[name]
	return e.Value, ok
}

func (h *Header) Entry(name string) (Entry, bool) {
	e, ok := h.entries[name]
	return e, ok
}

// Entries returns the entries ordered by line number.
func (h *Header) Entries() []Entry {
	res := make([]Entry, 0, len(h.entries))
	for _, e := range h.entries {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Line < res[j].Line
	})
	return res
}

func (h *Header) Len() int {
	return len(h.entries)
}

// Terminated reports whether the header ended with a CHART line rather
// than at end of input.
func (h *Header) Terminated() bool {
	return h.terminated
}
