// SPDX-License-Identifier: MIT
// Package: pqpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Adds vertices id(0..n-1) in ascending order.
//   - Emits edges id(i-1) → id(i) for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/pqpath/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, cfg.id(i-1), cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
