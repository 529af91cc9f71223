// Package attractor provides the retrograde fixed-point solver for the
// pursuit-evasion game: it labels every configuration of the derived
// game graph WINNING or LOSING for the player to move, and extracts
// the set of safe starting vertices for the evader.
//
// Overview:
//
//   - A configuration (h, h, Henri) is LOSING: the killer already
//     stands on Henri's vertex and it is Henri's move.
//   - A configuration is WINNING if at least one of its moves leads to
//     a LOSING configuration (existential rule).
//   - A configuration is LOSING if every one of its moves leads to a
//     WINNING configuration (universal rule).
//
// Solve seeds the capture configurations and propagates labels
// backward over the move relation until no further configuration can
// be labeled (the attractor of the seed set). The universal rule is
// tracked with an escape counter per configuration, initialized to its
// forward out-degree and decremented once for each successor confirmed
// WINNING; the counter reaching zero confirms that every escape is
// gone. Labels are write-once and every configuration enters the
// worklist at most once, so the loop performs at most 2n² pops.
//
// A vertex h is safe when no killer position k ≠ h makes (h, k, Henri)
// LOSING. Configurations the propagation never labels count as
// not-losing: on disconnected graphs a killer in another component
// never threatens the evader.
//
// When to use:
//
//   - To decide, under perfect play by both sides, from which starting
//     vertices an evader moving first can avoid capture forever.
//   - As a template for other two-player reachability games: only the
//     move relation and the seed set are game-specific.
//
// Performance and complexity:
//
//   - Time:  O(n²·d), n = |V| of the base graph, d = max degree.
//   - Each of the 2n² configurations is popped at most once.
//   - Each pop scans one backward neighborhood of size ≤ d.
//   - Space: O(n²) for the dense label and escape-counter slices,
//     released when the Result is garbage.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: a nil *game.Graph was passed to Solve.
//   - ErrBadQueueOrder: returned (via panic) if WithQueueOrder is given
//     an unknown order.
//
// Malformed adjacency (asymmetric, missing self-loops) is a
// precondition violation, not a runtime error: game.Graph cannot
// produce it and Solve performs no defensive validation.
//
// API reference:
//
//	func Solve(g *game.Graph, opts ...Option) (*Result, error)
//
//	  - g:    the self-looped, symmetric base graph.
//	  - opts: zero or more functional options:
//	      • WithQueueOrder(LIFO|FIFO): worklist discipline. The fixed
//	        point is order-independent; the option exists because the
//	        worklist is pure bookkeeping and either container works.
//	  - Result: per-configuration labels plus SafeVertices().
//
// Thread safety:
//
//   - Solve is a pure function of g; run concurrent solves on the same
//     graph freely, but do not mutate g during a solve.
//   - Result is immutable and safe for concurrent reads.
//
// See also:
//
//   - game.Graph: base-graph construction and move enumeration.
//   - fixture: deterministic graphs with known safe sets for testing.
package attractor
