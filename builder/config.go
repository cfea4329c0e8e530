// SPDX-License-Identifier: MIT
// Package: pqpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • firstID     = 0                   (vertex i gets ID firstID+i)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • undirected  = false               (one arc per edge)
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomSparse fixtures and random weights.
//   • Use WithFirstID to place several constructors side by side in one graph.

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// firstID is the vertex ID of index 0.
	firstID int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// undirected emits both arcs for every edge.
	undirected bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		firstID:  0,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int { return c.firstID + i }

// weight draws the next edge weight.
func (c builderConfig) weight() int { return c.weightFn(c.rng) }
