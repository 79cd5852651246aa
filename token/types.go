package token

import "fmt"

type Kind int

const (
	Blank Kind = iota
	Comment
	Single
	Pair
	Terminator
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "Blank"
	case Comment:
		return "Comment"
	case Single:
		return "Single"
	case Pair:
		return "Pair"
	case Terminator:
		return "Terminator"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Line is one classified physical line. Name is set for Single and Pair,
// Value only for Pair.
type Line struct {
	Kind   Kind
	Number int
	Name   string
	Value  string
}

func (l *Line) String() string {
	switch l.Kind {
	case Single:
		return fmt.Sprintf("%s(%d, %q)", l.Kind, l.Number, l.Name)
	case Pair:
		return fmt.Sprintf("%s(%d, %q, %q)", l.Kind, l.Number, l.Name, l.Value)
	default:
		return fmt.Sprintf("%s(%d)", l.Kind, l.Number)
	}
}
