package graphio

import "errors"

var (
	// ErrBadHeader indicates the "n m" header line is missing or malformed.
	ErrBadHeader = errors.New("graphio: malformed header, want \"n m\"")
	// ErrBadEdge indicates an edge line is missing or malformed.
	ErrBadEdge = errors.New("graphio: malformed edge line, want \"u v\"")
)
