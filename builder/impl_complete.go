// SPDX-License-Identifier: MIT
// Package: pqpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Adds vertices id(0..n-1) in ascending order.
//   • Emits every ordered pair (i,j), i≠j, lexicographically; each arc draws
//     its own weight. WithUndirected has no extra effect here.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqpath/core"
)

// Complete returns a Constructor that builds the complete directed graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u := cfg.id(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				v, w := cfg.id(j), cfg.weight()
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", MethodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}
