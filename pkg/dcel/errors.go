package dcel

import "errors"

// Mesh errors.
var (
	ErrOutOfRange        = errors.New("index out of range")
	ErrMalformedTopology = errors.New("malformed topology")
	ErrIterationOverrun  = errors.New("iteration overrun")
)
