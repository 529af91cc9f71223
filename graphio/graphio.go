package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/graphistan/pursuit/game"
)

// ReadGraph parses the edge-list format from r: a header "n m" followed
// by m lines "u v" with 0-indexed endpoints. Tokens may be separated by
// any whitespace. The returned graph carries the self-loops and
// symmetric entries the solver requires.
//
// Errors: ErrBadHeader, ErrBadEdge (with the offending edge number),
// or game errors wrapped from graph construction — notably
// game.ErrVertexRange for out-of-range endpoints.
//
// Complexity: O(n + m).
func ReadGraph(r io.Reader) (*game.Graph, error) {
	br := bufio.NewReader(r)

	var n, m int
	if _, err := fmt.Fscan(br, &n, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	g, err := game.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("graphio: header n=%d: %w", n, err)
	}

	var u, v int
	for i := 0; i < m; i++ {
		if _, err = fmt.Fscan(br, &u, &v); err != nil {
			return nil, fmt.Errorf("%w: edge %d of %d: %v", ErrBadEdge, i+1, m, err)
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graphio: edge %d (%d %d): %w", i+1, u, v, err)
		}
	}

	return g, nil
}

// WriteGraph emits g to w in the format ReadGraph consumes. Each proper
// undirected edge appears once as "u v" with u < v, in ascending order;
// self-loops are omitted.
//
// Complexity: O(n·d).
func WriteGraph(w io.Writer, g *game.Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, g.Order(), g.EdgeCount()); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Neighbors(u) {
			if u >= v {
				continue // emit each edge once, skip the self-loop
			}
			if _, err := fmt.Fprintln(bw, u, v); err != nil {
				return fmt.Errorf("graphio: write edge %d %d: %w", u, v, err)
			}
		}
	}

	return bw.Flush()
}

// WriteSolution prints the primary result of a solve: the count of
// safe vertices, on its own line.
func WriteSolution(w io.Writer, safe []int) error {
	if _, err := fmt.Fprintln(w, len(safe)); err != nil {
		return fmt.Errorf("graphio: write solution: %w", err)
	}

	return nil
}
