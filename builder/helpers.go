// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name for uniform reporting.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pqpath/core"
)

// addVertices inserts cfg.id(0..n-1) into g.
// Complexity: O(n) time, O(1) extra space.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}

	return nil
}

// addEdge draws one weight and adds u→v, plus v→u when cfg.undirected.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weight()
	var err error
	if cfg.undirected {
		err = g.AddUndirectedEdge(u, v, w)
	} else {
		err = g.AddEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
