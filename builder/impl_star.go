// SPDX-License-Identifier: MIT
// Package: pqpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - The hub is id(0); leaves are id(1..n-1).
//   - Emits spokes hub → leaf in increasing leaf order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/pqpath/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, MethodStar, n); err != nil {
			return err
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodStar, hub, cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
