// SPDX-License-Identifier: MIT
// Package: pqpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error in composition, such as a
// nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates ByName received an unsupported topology name.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices       - size/domain checks first (n, rows, cols).
//    • ErrInvalidProbability   - then probability ranges.
//    • ErrNeedRandSource       - then RNG presence for stochastic builders.
//    • core sentinels          - bounds enforced by the target graph.
