// Package fixture — constructor implementations.
//
// Contract:
//   - Validate parameter domain early; fail fast with sentinel errors.
//   - Emit edges in a stable order so equal inputs give equal graphs.
//   - Stochastic constructors draw from the caller's rng only; the same
//     seed reproduces the same graph bit for bit.
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/graphistan/pursuit/game"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	methodPath    = "PathGraph"
	methodRandom  = "RandomBounded"
	methodMixed   = "Mixed"
	minCycleNodes = 3
	minPathNodes  = 2

	// degreeCapFactor bounds per-vertex degree in RandomBounded at
	// degreeCapFactor·d proper edges.
	degreeCapFactor = 3
)

// identity is the trivial vertex labeling used by the standalone
// constructors; Mixed substitutes a shuffled permutation.
func identity(i int) int { return i }

// Cycle builds the n-vertex ring C_n (n ≥ 3), self-loops included.
// For n ≥ 4 every vertex is a safe evader start.
//
// Complexity: O(n).
func Cycle(n int) (*game.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	g, err := game.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	if err = addCycle(g, identity, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}

	return g, nil
}

// PathGraph builds the n-vertex path P_n (n ≥ 2), self-loops included.
// No vertex is a safe evader start.
//
// Complexity: O(n).
func PathGraph(n int) (*game.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	g, err := game.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	if err = addPath(g, identity, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	return g, nil
}

// RandomBounded builds a random graph on n vertices: n·d edge attempts
// between vertices at index distance ≤ d (cyclically), each accepted
// only while both endpoints hold fewer than 3·d proper edges. Not a
// standard random-graph model; it produces the locally-dense, globally
// sparse shape the solver benchmarks want.
//
// Returns ErrNeedRandSource on a nil rng and ErrBadDegree on d ≤ 0.
//
// Complexity: O(n·d).
func RandomBounded(n, d int, rng *rand.Rand) (*game.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandom, n, ErrTooFewVertices)
	}
	if d <= 0 {
		return nil, fmt.Errorf("%s: d=%d: %w", methodRandom, d, ErrBadDegree)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}
	g, err := game.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	if err = addRandomBounded(g, identity, n, d, rng); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	return g, nil
}

// Mixed builds the disjoint union of Cycle(m), PathGraph(m) and
// RandomBounded(m, d) on 3·m vertices whose labels are shuffled by a
// generator seeded with seed. The cycle component is entirely safe
// (m ≥ 4), the path component entirely unsafe, the random component
// mixed — so the safe set is partially known in advance.
//
// Complexity: O(m·d).
func Mixed(m, d int, seed int64) (*game.Graph, error) {
	if m < minCycleNodes {
		return nil, fmt.Errorf("%s: m=%d < min=%d: %w", methodMixed, m, minCycleNodes, ErrTooFewVertices)
	}
	if d <= 0 {
		return nil, fmt.Errorf("%s: d=%d: %w", methodMixed, d, ErrBadDegree)
	}

	n := 3 * m
	g, err := game.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMixed, err)
	}

	rng := rand.New(rand.NewSource(seed))
	label := rng.Perm(n)

	// Component slots: cycle on label[0:m], path on label[m:2m],
	// random graph on label[2m:3m].
	if err = addCycle(g, func(i int) int { return label[i] }, m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMixed, err)
	}
	if err = addPath(g, func(i int) int { return label[m+i] }, m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMixed, err)
	}
	if err = addRandomBounded(g, func(i int) int { return label[2*m+i] }, m, d, rng); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMixed, err)
	}

	return g, nil
}

// addCycle emits ring edges at(i)—at((i+1) mod n) for i = 0..n-1.
func addCycle(g *game.Graph, at func(int) int, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddEdge(at(i), at((i+1)%n)); err != nil {
			return err
		}
	}

	return nil
}

// addPath emits chain edges at(i)—at(i+1) for i = 0..n-2.
func addPath(g *game.Graph, at func(int) int, n int) error {
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(at(i), at(i+1)); err != nil {
			return err
		}
	}

	return nil
}

// addRandomBounded makes n·d edge attempts. Each draws u uniformly and
// v within cyclic distance d of u, skips u == v, and rejects the edge
// while either endpoint already has degreeCapFactor·d proper edges.
func addRandomBounded(g *game.Graph, at func(int) int, n, d int, rng *rand.Rand) error {
	maxDeg := degreeCapFactor * d
	for attempt := 0; attempt < n*d; attempt++ {
		u := rng.Intn(n)
		v := (u + rng.Intn(d+1)) % n
		u1, v1 := at(u), at(v)
		if u1 == v1 {
			continue
		}
		// Degree counts the self-loop; subtract it for the proper-edge cap.
		if g.Degree(u1)-1 >= maxDeg || g.Degree(v1)-1 >= maxDeg {
			continue
		}
		if err := g.AddEdge(u1, v1); err != nil {
			return err
		}
	}

	return nil
}
