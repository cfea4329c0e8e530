// SPDX-License-Identifier: MIT
// Package: pqpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Adds vertices id(0..n-1) in ascending order.
//   • Emits edges in stable order id(i) → id((i+1)%n) for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/pqpath/core"
)

// Cycle returns a Constructor that builds an n-vertex cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}
		// For i==n-1, connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, cfg.id(i), cfg.id((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
