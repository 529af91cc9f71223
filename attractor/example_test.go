// File: attractor/example_test.go
package attractor_test

import (
	"fmt"

	"github.com/graphistan/pursuit/attractor"
	"github.com/graphistan/pursuit/game"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve classifies evader starts on a lollipop graph.
// Scenario:
//
//   - A 4-cycle 0─1─2─3 with a pendant vertex 4 hanging off 0
//   - On the ring the evader circles away forever; on the pendant the
//     killer corners him
//   - Expect safe vertices {0, 1, 2, 3} and (4, 0, Henri) Losing
//
// Complexity: O(n²·d)
func ExampleSolve() {
	g, _ := game.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, _ := attractor.Solve(g)
	fmt.Println("safe:", res.SafeVertices())
	fmt.Println("pendant vs killer at 0:", res.Label(game.Config{H: 4, K: 0, Turn: game.Henri}))
	// Output:
	// safe: [0 1 2 3]
	// pendant vs killer at 0: Losing
}
