// Package attractor implements retrograde analysis of the pursuit game:
// backward fixed-point propagation of WINNING/LOSING labels over the
// configuration graph, with escape counters tracking the universal rule.
//
// Notes on implementation choices:
//
//   - Labels and escape counters live in flat slices indexed by
//     game.Config.Index — the configuration space is dense by
//     construction, so maps would only add overhead.
//   - The worklist is a plain slice, used as a stack (LIFO) or as a
//     queue with an advancing head (FIFO). No priority is needed: any
//     pop order reaches the same fixed point.
//   - Labels are write-once. Every push is guarded by an Open check, so
//     each configuration is pushed and popped at most once.
package attractor

import "github.com/graphistan/pursuit/game"

// Solve labels every configuration of the game on g and returns the
// Result, from which per-configuration labels and the safe-vertex set
// can be read. It accepts functional options (WithQueueOrder).
//
// Preconditions: g is non-nil (ErrNilGraph otherwise), symmetric and
// self-looped — guaranteed by game.NewGraph/AddEdge.
//
// Complexity:
//
//   - Time:  O(n²·d)
//   - Space: O(n²)
func Solve(g *game.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Allocate dense per-configuration state.
	n := g.Order()
	r := &runner{
		g:       g,
		n:       n,
		order:   cfg.Order,
		labels:  make([]Label, game.ConfigCount(n)),
		escapes: make([]int, game.ConfigCount(n)),
	}

	// 4) Seed the capture configurations and run to the fixed point.
	r.init()
	r.process()

	return &Result{n: n, labels: r.labels}, nil
}

// runner holds the mutable state of a single solve.
type runner struct {
	g     *game.Graph // input graph; read-only during the solve
	n     int         // base-graph order
	order QueueOrder  // worklist discipline

	// labels[i] is the write-once label of game.ConfigAt(i, n).
	labels []Label

	// escapes[i] counts the forward moves of configuration i not yet
	// confirmed Winning for the opponent. Initialized to the forward
	// out-degree; reaching zero confirms the universal Losing rule.
	escapes []int

	worklist []game.Config // freshly labeled configurations
	head     int           // FIFO read position; unused under LIFO
}

// init fills the escape counters with forward out-degrees and seeds the
// terminal rule: (v, v, Henri) is Losing — Henri is caught.
func (r *runner) init() {
	// 1) escapes[c] = forward out-degree of c, for every configuration.
	for i := range r.escapes {
		r.escapes[i] = r.g.OutDegree(game.ConfigAt(i, r.n))
	}

	// 2) Seed and enqueue the capture configurations.
	r.worklist = make([]game.Config, 0, r.n)
	for v := 0; v < r.n; v++ {
		c := game.Config{H: v, K: v, Turn: game.Henri}
		r.labels[c.Index(r.n)] = Losing
		r.worklist = append(r.worklist, c)
	}
}

// process propagates labels backward until the worklist empties — the
// fixed point. Each pop applies one of the two closure rules to the
// predecessors of the popped configuration:
//
//   - popped Losing: any predecessor can move into it, so every Open
//     predecessor becomes Winning (existential rule).
//   - popped Winning: one escape of each predecessor is gone; a counter
//     reaching zero on an Open predecessor makes it Losing (universal
//     rule).
//
// Labels must be final before predecessors react to them, which the
// write-once discipline guarantees regardless of pop order.
func (r *runner) process() {
	for r.pending() {
		c := r.pop()

		switch r.labels[c.Index(r.n)] {
		case Losing:
			r.g.ForEachMove(c, game.Backward, func(p game.Config) {
				pi := p.Index(r.n)
				if r.labels[pi] == Open {
					r.labels[pi] = Winning
					r.push(p)
				}
			})
		case Winning:
			r.g.ForEachMove(c, game.Backward, func(p game.Config) {
				pi := p.Index(r.n)
				r.escapes[pi]--
				if r.escapes[pi] == 0 && r.labels[pi] == Open {
					r.labels[pi] = Losing
					r.push(p)
				}
			})
		}
	}
}

// pending reports whether unprocessed configurations remain.
func (r *runner) pending() bool {
	if r.order == FIFO {
		return r.head < len(r.worklist)
	}

	return len(r.worklist) > 0
}

// pop removes the next configuration per the configured discipline.
func (r *runner) pop() game.Config {
	if r.order == FIFO {
		c := r.worklist[r.head]
		r.head++

		return c
	}

	c := r.worklist[len(r.worklist)-1]
	r.worklist = r.worklist[:len(r.worklist)-1]

	return c
}

// push appends a freshly labeled configuration to the worklist.
func (r *runner) push(c game.Config) {
	r.worklist = append(r.worklist, c)
}
