package game

import "sort"

// Graph is the undirected base graph of the game: n vertices indexed
// 0..n-1, symmetric adjacency, and a self-loop at every vertex so that
// "stay in place" is always a legal move.
//
// Neighbor sets are stored as maps; enumeration order is unspecified.
// Graph is not safe for concurrent mutation; once fully built it may be
// read from multiple goroutines.
type Graph struct {
	adj []map[int]struct{}
}

// NewGraph returns a graph on n isolated vertices, each carrying its
// self-loop. Returns ErrNonPositiveOrder if n ≤ 0.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	adj := make([]map[int]struct{}, n)
	for v := range adj {
		adj[v] = map[int]struct{}{v: {}}
	}

	return &Graph{adj: adj}, nil
}

// Order returns the number of vertices n.
func (g *Graph) Order() int { return len(g.adj) }

// AddEdge inserts the undirected edge {u, v}. Inserting an existing
// edge, or the edge {u, u}, is a no-op (adjacency is a set and the
// self-loop is already present). Returns ErrVertexRange if either
// endpoint is outside 0..n-1.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return ErrVertexRange
	}

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// HasEdge reports whether v is a neighbor of u. Every vertex is its
// own neighbor. Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns |N(u)|, self-loop included. This is exactly the
// number of moves available to a player standing at u.
func (g *Graph) Degree(u int) int { return len(g.adj[u]) }

// Neighbors returns a sorted copy of N(u), self-loop included.
// Intended for display and tests; hot paths use ForEachNeighbor.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(u int) []int {
	out := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// ForEachNeighbor calls fn for every neighbor of u, self-loop
// included, in unspecified order.
func (g *Graph) ForEachNeighbor(u int, fn func(v int)) {
	for v := range g.adj[u] {
		fn(v)
	}
}

// EdgeCount returns the number of proper undirected edges {u, v} with
// u < v. Self-loops are excluded: they are an internal convention, not
// part of the edge-list exchange format.
//
// Complexity: O(n + m).
func (g *Graph) EdgeCount() int {
	count := 0
	for u := range g.adj {
		for v := range g.adj[u] {
			if u < v {
				count++
			}
		}
	}

	return count
}
