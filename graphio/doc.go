// Package graphio reads and writes pursuit-game base graphs in the
// plain edge-list exchange format:
//
//	n m
//	u v
//	...      (m lines, 0-indexed undirected edges)
//
// ReadGraph builds a game.Graph from the format, adding the symmetric
// entries and self-loops the solver relies on; WriteGraph is its exact
// inverse (self-loops are an internal convention and are not emitted).
// WriteSolution prints the primary result of a solve: the number of
// safe vertices.
//
// Malformed input is reported through sentinel errors (ErrBadHeader,
// ErrBadEdge) or a wrapped game.ErrVertexRange; branch with errors.Is.
package graphio
