package attr

import (
	"fmt"
	"image/color"
	"strconv"
)

type Kind int

const (
	CountKind Kind = iota
	CharKind
	ColorKind
	LengthKind
)

func (k Kind) String() string {
	switch k {
	case CountKind:
		return "count"
	case CharKind:
		return "char"
	case ColorKind:
		return "color"
	case LengthKind:
		return "length"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the result of parsing an attribute: exactly one of a count, a
// rune, a color or a length, according to Kind.
type Value struct {
	kind   Kind
	count  uint
	char   rune
	color  color.NRGBA
	length float64
}

func CountValue(n uint) Value {
	return Value{kind: CountKind, count: n}
}

func CharValue(r rune) Value {
	return Value{kind: CharKind, char: r}
}

func ColorValue(c color.NRGBA) Value {
	return Value{kind: ColorKind, color: c}
}

func LengthValue(f float64) Value {
	return Value{kind: LengthKind, length: f}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Count() uint {
	v.must(CountKind)
	return v.count
}

func (v Value) Char() rune {
	v.must(CharKind)
	return v.char
}

func (v Value) Color() color.NRGBA {
	v.must(ColorKind)
	return v.color
}

func (v Value) Length() float64 {
	v.must(LengthKind)
	return v.length
}

func (v Value) must(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("attr: %s value used as %s", v.kind, k))
	}
}

// String formats the value in a form its parser accepts.
func (v Value) String() string {
	switch v.kind {
	case CountKind:
		return strconv.FormatUint(uint64(v.count), 10)
	case CharKind:
		return FormatCharName(v.char)
	case ColorKind:
		return FormatColor(v.color)
	case LengthKind:
		return FormatLength(v.length)
	}
	return ""
}
