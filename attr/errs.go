package attr

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAttrName = errors.New("unknown attribute")
	ErrInvalidCharName = errors.New("a char was badly named")
	ErrCount           = errors.New("bad count")
	ErrColor           = errors.New("bad color")
	ErrLength          = errors.New("bad length")

	errSpecExists = errors.New("attribute spec exists")
)

// UnknownAttrErr reports a header name that is not in the registry.
type UnknownAttrErr struct {
	Name string
	Line int
}

func (e *UnknownAttrErr) Unwrap() error {
	return ErrUnknownAttrName
}

func (e *UnknownAttrErr) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("the attr %s is unknown", e.Name)
	}
	return fmt.Sprintf("line %d: the attr %s is unknown", e.Line, e.Name)
}

// AttrErr reports a header value that its attribute could not parse.
type AttrErr struct {
	Name  string
	Line  int
	Value string
	Err   error
}

func (e *AttrErr) Unwrap() error {
	return e.Err
}

func (e *AttrErr) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("attr %s=%q: %s", e.Name, e.Value, e.Err.Error())
	}
	return fmt.Sprintf("line %d: attr %s=%q: %s", e.Line, e.Name, e.Value, e.Err.Error())
}
