// Package fixture builds deterministic pursuit-game test graphs.
//
// Design contract (strict):
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic.
//   - Determinism: the same parameters and seed always produce the same
//     graph, edge for edge.
//   - Every constructor returns a *game.Graph, so fixtures feed directly
//     into the attractor solver and the graphio writers.
//
// The family mirrors the classical evaluation setup for the game:
//
//   - Cycle(n): a ring. For n ≥ 4 every vertex is safe (the evader
//     circles away). C3 is complete, hence fully unsafe.
//   - PathGraph(n): a path; no vertex is safe (the killer corners the
//     evader at an endpoint).
//   - RandomBounded(n, d, rng): ~n·d random edges with per-vertex degree
//     capped at 3·d; some vertices are safe.
//   - Mixed(m, d, seed): the disjoint union of all three on 3·m vertices
//     with randomly permuted vertex labels — a graph whose safe set is
//     partially known in advance, which is exactly what solver tests
//     want.
package fixture
