// File: view.go
// Role: Non-mutating graph views: Clone and the dense AdjacencyMatrix export.
// Concurrency:
//   - Read lock on the source; results are fresh values.

package core

import "maps"

// NoEdge marks an absent edge in AdjacencyMatrix.
const NoEdge = -1

// AdjacencyMatrix returns a (maxID+1)×(maxID+1) weight matrix, maxID being
// the largest member ID. Absent edges are NoEdge, the diagonal defaults to 0
// and is overwritten by a self-loop weight. With parallel edges the last one
// added wins. An empty graph yields an empty matrix.
// Complexity: O(maxID² + E).
func (g *Graph) AdjacencyMatrix() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	maxID := -1
	for v := range g.vertices {
		maxID = max(maxID, v)
	}
	n := maxID + 1
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			m[i][j] = NoEdge
		}
		m[i][i] = 0
	}
	for from, edges := range g.adjacency {
		for _, e := range edges {
			m[from][e.To] = e.Weight
		}
	}

	return m
}

// Clone returns a deep copy with the same bounds and options.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		maxVertices: g.maxVertices,
		maxWeight:   g.maxWeight,
		allowMulti:  g.allowMulti,
		vertices:    maps.Clone(g.vertices),
		adjacency:   make(map[int][]Edge, len(g.adjacency)),
		edgeCount:   g.edgeCount,
	}
	for from, edges := range g.adjacency {
		out.adjacency[from] = append([]Edge(nil), edges...)
	}

	return out
}
