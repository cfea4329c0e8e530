// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUndirectedEdge/UpdateEdgeWeight/
//       RemoveEdge/HasEdge/EdgeWeight/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors(v) preserves insertion order.
//   - Edges() is sorted by (From, To), insertion order among parallel edges.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddEdge adds the directed edge from→to with the given weight, making both
// endpoints members. Without WithMultiEdges an existing from→to edge has its
// weight overwritten instead.
//
// Errors: ErrVertexOutOfRange, ErrWeightOutOfRange.
// Complexity: O(deg(from)) for the duplicate check, O(1) with multi-edges.
func (g *Graph) AddEdge(from, to, weight int) error {
	if err := g.validateVertex(from); err != nil {
		return err
	}
	if err := g.validateVertex(to); err != nil {
		return err
	}
	if err := g.validateWeight(weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	if !g.allowMulti {
		edges := g.adjacency[from]
		for i := range edges {
			if edges[i].To == to {
				edges[i].Weight = weight
				return nil
			}
		}
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// AddUndirectedEdge adds u→v and v→u with the same weight. A self-loop is
// added once.
func (g *Graph) AddUndirectedEdge(u, v, weight int) error {
	if err := g.AddEdge(u, v, weight); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return g.AddEdge(v, u, weight)
}

// UpdateEdgeWeight sets the weight of every from→to edge.
//
// Errors: ErrVertexOutOfRange, ErrWeightOutOfRange, ErrEdgeNotFound.
func (g *Graph) UpdateEdgeWeight(from, to, weight int) error {
	if err := g.validateVertex(from); err != nil {
		return err
	}
	if err := g.validateVertex(to); err != nil {
		return err
	}
	if err := g.validateWeight(weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	found := false
	edges := g.adjacency[from]
	for i := range edges {
		if edges[i].To == to {
			edges[i].Weight = weight
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return nil
}

// RemoveEdge deletes every from→to edge. Vertices stay members.
//
// Errors: ErrVertexOutOfRange, ErrEdgeNotFound.
func (g *Graph) RemoveEdge(from, to int) error {
	if err := g.validateVertex(from); err != nil {
		return err
	}
	if err := g.validateVertex(to); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	edges := g.adjacency[from]
	kept := edges[:0]
	for _, e := range edges {
		if e.To != to {
			kept = append(kept, e)
		}
	}
	removed := len(edges) - len(kept)
	if removed == 0 {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	clear(edges[len(kept):])
	g.adjacency[from] = kept
	g.edgeCount -= removed

	return nil
}

// HasEdge reports whether at least one from→to edge exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// EdgeWeight returns the weight of the first from→to edge.
//
// Errors: ErrEdgeNotFound.
func (g *Graph) EdgeWeight(from, to int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
}

// Neighbors returns a copy of the outgoing edges of v in insertion order.
//
// Errors: ErrVertexOutOfRange, ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return slices.Clone(g.adjacency[v]), nil
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for _, edges := range g.adjacency {
		out = append(out, edges...)
	}
	g.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	return out
}

// EdgeCount returns the number of edges, parallel edges counted separately.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
