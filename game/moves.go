package game

// Moves and ForEachMove enumerate the move relation of the game.
//
// From (h, k, Henri) the evader moves: successors are (h1, k, Killer)
// for every neighbor h1 of h. From (h, k, Killer) the pursuer moves:
// successors are (h, k1, Henri) for every neighbor k1 of k.
//
// The Backward orientation enumerates predecessors. Because every move
// replaces one coordinate with a base-graph neighbor and flips the
// turn, and adjacency is symmetric, predecessors are produced by the
// same routine with the varied coordinate swapped: the predecessors of
// (h, k, Henri) are (h, k1, Killer) for k1 neighbor of k, and the
// predecessors of (h, k, Killer) are (h1, k, Henri) for h1 neighbor of
// h. The comparison int(Turn) == int(Direction) encodes exactly this
// swap: Forward varies the mover's coordinate, Backward the other one.

// ForEachMove calls fn for every configuration adjacent to c in the
// given direction, in unspecified order. Self-loops guarantee at least
// one move in each direction.
//
// Complexity: O(d) with d the degree of the varied vertex.
func (g *Graph) ForEachMove(c Config, dir Direction, fn func(Config)) {
	next := c.Turn.Opponent()
	if int(c.Turn) == int(dir) {
		g.ForEachNeighbor(c.H, func(h1 int) {
			fn(Config{H: h1, K: c.K, Turn: next})
		})

		return
	}
	g.ForEachNeighbor(c.K, func(k1 int) {
		fn(Config{H: c.H, K: k1, Turn: next})
	})
}

// Moves returns the configurations adjacent to c in the given
// direction as a fresh slice, in unspecified order.
//
// Complexity: O(d) time and space.
func (g *Graph) Moves(c Config, dir Direction) []Config {
	out := make([]Config, 0, g.branch(c, dir))
	g.ForEachMove(c, dir, func(c1 Config) {
		out = append(out, c1)
	})

	return out
}

// OutDegree returns the forward branching factor of c: the number of
// moves available to the player to move. Equal to len(Moves(c, Forward))
// without the allocation.
func (g *Graph) OutDegree(c Config) int { return g.branch(c, Forward) }

// branch returns the degree of the vertex varied by Moves(c, dir).
func (g *Graph) branch(c Config, dir Direction) int {
	if int(c.Turn) == int(dir) {
		return g.Degree(c.H)
	}

	return g.Degree(c.K)
}
