package render

import "errors"

var (
	ErrNoEngine   = errors.New("template extension not found")
	ErrNoTemplate = errors.New("template not found")
)
