package resp

import "errors"

var (
	ErrClosed  = errors.New("response closed")
	ErrInvalid = errors.New("invalid")
)
