// Package attractor defines labels, configuration options and sentinel
// errors for the retrograde game solver.
//
// Options:
//
//	– QueueOrder: worklist discipline, LIFO (default) or FIFO. The
//	  computed fixed point is identical either way; only the order in
//	  which labels are discovered differs.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrBadQueueOrder if WithQueueOrder receives an unknown order.
package attractor

import (
	"errors"

	"github.com/graphistan/pursuit/game"
)

// Sentinel errors returned by the attractor implementation.
var (
	// ErrNilGraph indicates that a nil *game.Graph was passed to Solve.
	ErrNilGraph = errors.New("attractor: graph is nil")

	// ErrBadQueueOrder indicates an unknown QueueOrder value was supplied
	// to WithQueueOrder.
	ErrBadQueueOrder = errors.New("attractor: unknown queue order")
)

// Label classifies a configuration for the player to move.
// The zero value Open means "not yet determined"; once a configuration
// is labeled Winning or Losing the label never changes.
type Label uint8

const (
	// Open marks a configuration whose outcome is not (yet) forced.
	Open Label = iota
	// Winning means the player to move can force a win.
	Winning
	// Losing means the player to move loses under perfect play.
	Losing
)

// String returns "Open", "Winning" or "Losing".
func (l Label) String() string {
	switch l {
	case Winning:
		return "Winning"
	case Losing:
		return "Losing"
	default:
		return "Open"
	}
}

// QueueOrder selects the worklist discipline of the propagation loop.
type QueueOrder uint8

const (
	// LIFO processes the worklist as a stack (the default).
	LIFO QueueOrder = iota
	// FIFO processes the worklist as a queue.
	FIFO
)

// Options configures the behavior of Solve.
type Options struct {
	// Order is the worklist discipline. Correctness does not depend on
	// it; see the package documentation.
	Order QueueOrder
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithQueueOrder sets the worklist discipline. Panics with
// ErrBadQueueOrder on an unknown value; invalid configuration is a
// programmer error, caught early.
func WithQueueOrder(order QueueOrder) Option {
	return func(o *Options) {
		if order > FIFO {
			panic(ErrBadQueueOrder.Error())
		}
		o.Order = order
	}
}

// DefaultOptions returns the default configuration: LIFO worklist,
// matching the plain stack of the classical formulation.
func DefaultOptions() Options {
	return Options{Order: LIFO}
}

// Result holds the outcome of a solve: one label per configuration of
// the 2n² configuration space. Immutable after Solve returns.
type Result struct {
	n      int
	labels []Label
}

// Order returns the order n of the solved base graph.
func (r *Result) Order() int { return r.n }

// Label returns the label of c, or Open if the propagation never
// reached it.
func (r *Result) Label(c game.Config) Label {
	return r.labels[c.Index(r.n)]
}

// Safe reports whether vertex h is a safe evader start: no killer
// position k ≠ h makes (h, k, Henri) Losing. Configurations left Open
// count as not-losing.
//
// Complexity: O(n).
func (r *Result) Safe(h int) bool {
	for k := 0; k < r.n; k++ {
		if k == h {
			// Capture configuration, excluded from the safety check.
			continue
		}
		if r.labels[(game.Config{H: h, K: k, Turn: game.Henri}).Index(r.n)] == Losing {
			return false
		}
	}

	return true
}

// SafeVertices returns all safe evader starts in ascending order.
//
// Complexity: O(n²).
func (r *Result) SafeVertices() []int {
	safe := make([]int, 0, r.n)
	for h := 0; h < r.n; h++ {
		if r.Safe(h) {
			safe = append(safe, h)
		}
	}

	return safe
}
