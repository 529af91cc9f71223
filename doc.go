// Package pursuit solves pursuit-evasion games on undirected graphs:
// an evader ("Henri") and a pursuer (the killer) alternate single-step
// moves, and the library determines from which starting vertices the
// evader can escape forever.
//
// 🚀 What is pursuit?
//
//	A small, deterministic library built from three layers:
//		• game/      — the derived configuration graph: positions × turn,
//		               with forward/backward move enumeration
//		• attractor/ — retrograde fixed-point labeling (WINNING/LOSING per
//		               configuration) and safe-vertex extraction
//		• graphio/ + fixture/ — edge-list loading/printing and deterministic
//		               test-graph generators (cycle, path, bounded random)
//
// ✨ Why choose pursuit?
//
//   - Exact – game-theoretic labels under perfect play, not heuristics
//   - Predictable – O(V²·d) time, O(V²) space, fully deterministic
//   - Pure Go library core – no cgo, no hidden deps
//   - Composable – bring any graph as a plain symmetric adjacency
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	on this 4-cycle every vertex is safe: Henri keeps the killer at
//	distance two by walking the ring. On the path 0───1───2 no vertex
//	is safe: the killer corners Henri at an endpoint.
//
// The cmd/pursuit CLI wires the layers together: `pursuit solve` reads
// an edge list and prints the number of safe vertices; `pursuit generate`
// emits reproducible test graphs in the same format.
package pursuit
