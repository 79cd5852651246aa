package token

import (
	"fmt"
	"strconv"
)

// Pos is a 1-indexed line and rune column within an input.
type Pos struct {
	Line int
	Col  int
}

// Sample returns up to 5 runes either side of the rune at col (1-indexed)
// in text, quoted for display. Columns outside text give a shorter or
// empty sample.
func Sample(text string, col int) string {
	rs := []rune(text)
	i := col - 1
	lo := min(max(0, i-5), len(rs))
	hi := max(lo, min(i+5, len(rs)))
	sample := string(rs[lo:hi])
	sample = strconv.Quote(sample)
	return sample[1 : len(sample)-1]
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
}
