// Package game defines core types and sentinel errors for the
// pursuit-evasion configuration graph.
package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for base-graph construction.
var (
	// ErrNonPositiveOrder indicates NewGraph was called with n ≤ 0.
	ErrNonPositiveOrder = errors.New("game: graph order must be positive")

	// ErrVertexRange indicates an edge endpoint outside 0..n-1.
	ErrVertexRange = errors.New("game: vertex index out of range")
)

// Turn identifies the player to move at a configuration.
type Turn uint8

const (
	// Henri is the evader; he loses when caught.
	Henri Turn = iota
	// Killer is the pursuer; he wins by reaching Henri's vertex.
	Killer
)

// Opponent returns the other player.
func (t Turn) Opponent() Turn { return t ^ 1 }

// String returns "Henri" or "Killer".
func (t Turn) String() string {
	if t == Henri {
		return "Henri"
	}

	return "Killer"
}

// Direction selects the orientation in which Moves enumerates the
// move relation: Forward yields successors, Backward predecessors.
type Direction uint8

const (
	// Forward enumerates configurations reachable in one game move.
	Forward Direction = iota
	// Backward enumerates configurations that reach the given one in one move.
	Backward
)

// Config is a game state: evader position H, pursuer position K, and
// the player to move. H and K are base-graph vertex indices.
type Config struct {
	H, K int
	Turn Turn
}

// Index maps c to a dense index in [0, 2n²) for a base graph of order n.
// Inverse of ConfigAt.
func (c Config) Index(n int) int {
	return (c.H*n+c.K)*2 + int(c.Turn)
}

// String renders c as "(h, k, Turn)" for diagnostics and test output.
func (c Config) String() string {
	return fmt.Sprintf("(%d, %d, %s)", c.H, c.K, c.Turn)
}

// ConfigAt returns the configuration with dense index i for a base
// graph of order n. Inverse of Config.Index.
func ConfigAt(i, n int) Config {
	return Config{
		H:    i / (2 * n),
		K:    (i / 2) % n,
		Turn: Turn(i % 2),
	}
}

// ConfigCount returns the size of the configuration space, 2·n².
func ConfigCount(n int) int { return 2 * n * n }
