// Package game defines the configuration graph of a two-player
// pursuit-evasion game played on an undirected base graph.
//
// Overview:
//
//   - The base Graph holds n vertices indexed 0..n-1 with symmetric
//     adjacency. Every vertex carries a self-loop, so "stay in place"
//     is always a legal move for both players.
//   - A Config is a game state (H, K, Turn): the evader's position, the
//     killer's position, and whose move it is.
//   - Moves enumerates the configurations adjacent to a Config in one
//     game move, in either orientation: Forward yields successors,
//     Backward yields predecessors. Both directions vary exactly one
//     coordinate by a base-graph neighbor and flip the turn, so a single
//     enumeration routine serves both (the direction selects which
//     coordinate is varied).
//
// The configuration space has size exactly 2·n² and is never
// materialized: callers enumerate neighborhoods on demand. Index and
// ConfigAt map configurations to a dense range [0, 2n²) so that solvers
// can keep per-configuration state in flat slices.
//
// Complexity:
//
//   - Moves / ForEachMove: O(d) where d is the degree (self-loop
//     included) of the varied vertex.
//   - OutDegree: O(1).
//   - Graph construction: O(n + m) for n vertices and m edges.
//
// Errors (sentinel):
//
//   - ErrNonPositiveOrder if NewGraph is called with n ≤ 0.
//   - ErrVertexRange if AddEdge references a vertex outside 0..n-1.
//
// The Graph performs no defensive validation beyond edge insertion:
// solvers assume symmetric, self-looped adjacency, which the
// constructor and AddEdge maintain by construction.
package game
