package chart

import "fmt"

type Stitch int

const (
	Knit Stitch = iota
	Purl
	Empty
)

func (s Stitch) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Stitch) MarshalText() ([]byte, error) {
	switch s {
	case Knit:
		return []byte("knit"), nil
	case Purl:
		return []byte("purl"), nil
	case Empty:
		return []byte("empty"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a stitch>", int(s))
	}
}

func (s *Stitch) UnmarshalText(d []byte) error {
	switch string(d) {
	case "knit":
		*s = Knit
	case "purl":
		*s = Purl
	case "empty":
		*s = Empty
	default:
		return fmt.Errorf("%q is not a stitch", d)
	}
	return nil
}
