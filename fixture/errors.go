// Package fixture — sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context with %w wrapping, never panic.
package fixture

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum (Cycle needs n ≥ 3, PathGraph n ≥ 2, RandomBounded n ≥ 1).
var ErrTooFewVertices = errors.New("fixture: parameter too small")

// ErrBadDegree indicates a non-positive degree bound for the random
// constructors.
var ErrBadDegree = errors.New("fixture: degree bound must be positive")

// ErrNeedRandSource indicates that a stochastic constructor was called
// with a nil *rand.Rand.
var ErrNeedRandSource = errors.New("fixture: rng is required")
