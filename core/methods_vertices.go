// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount,
//       IsEmpty/Clear, and the shared range validators.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"slices"
)

// validateVertex rejects IDs outside [0, M). Callers hold a lock or read
// immutable bounds only.
func (g *Graph) validateVertex(v int) error {
	if v < 0 || v >= g.maxVertices {
		return fmt.Errorf("%w: vertex %d not in [0,%d]", ErrVertexOutOfRange, v, g.maxVertices-1)
	}

	return nil
}

// validateWeight rejects weights outside [0, K].
func (g *Graph) validateWeight(w int) error {
	if w < 0 || w > g.maxWeight {
		return fmt.Errorf("%w: weight %d not in [0,%d]", ErrWeightOutOfRange, w, g.maxWeight)
	}

	return nil
}

// AddVertex makes v a member. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(v int) error {
	if err := g.validateVertex(v); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[v] = struct{}{}

	return nil
}

// HasVertex reports whether v is a member. Out-of-range IDs are never members.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[v]

	return ok
}

// Vertices returns all member IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	out := make([]int, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	g.mu.RUnlock()
	slices.Sort(out)

	return out
}

// VertexCount returns the number of member vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool {
	return g.VertexCount() == 0
}

// Clear removes every vertex and edge; bounds and options are kept.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make(map[int]struct{})
	g.adjacency = make(map[int][]Edge)
	g.edgeCount = 0
}
