package header

import "errors"

var (
	ErrBadHeaderLine = errors.New("header line should have the form 'name=value'")
)
