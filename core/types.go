// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex ID outside [0, MaxVertices).
//	ErrWeightOutOfRange - edge weight outside [0, MaxWeight].
//	ErrVertexNotFound   - requested vertex is not a member of the graph.
//	ErrEdgeNotFound     - requested edge does not exist.

package core

import (
	"errors"
	"sync"
)

// Default bounds.
const (
	// DefaultMaxVertices is M: vertex IDs lie in [0, DefaultMaxVertices).
	DefaultMaxVertices = 1000

	// DefaultMaxWeight is K: edge weights lie in [0, DefaultMaxWeight].
	DefaultMaxWeight = 100
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex ID outside [0, MaxVertices).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrWeightOutOfRange indicates an edge weight outside [0, MaxWeight].
	ErrWeightOutOfRange = errors.New("core: weight out of range")

	// ErrVertexNotFound indicates an operation referenced a non-member vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is one directed adjacency entry From→To with an integer Weight.
type Edge struct {
	From   int
	To     int
	Weight int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxVertices sets M, the exclusive upper bound on vertex IDs.
// Panics if m <= 0.
func WithMaxVertices(m int) GraphOption {
	if m <= 0 {
		panic("core: WithMaxVertices requires m > 0")
	}
	return func(g *Graph) { g.maxVertices = m }
}

// WithMaxWeight sets K, the inclusive upper bound on edge weights.
// Panics if k < 0.
func WithMaxWeight(k int) GraphOption {
	if k < 0 {
		panic("core: WithMaxWeight requires k >= 0")
	}
	return func(g *Graph) { g.maxWeight = k }
}

// WithMultiEdges keeps parallel edges instead of updating the weight of an
// existing From→To edge.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a directed weighted graph over bounded integer vertex IDs.
//
// Self-loops are always allowed. Without WithMultiEdges, adding an edge
// that already exists overwrites its weight.
type Graph struct {
	mu sync.RWMutex // guards every field below

	maxVertices int  // M
	maxWeight   int  // K
	allowMulti  bool // keep parallel edges

	vertices  map[int]struct{} // member set
	adjacency map[int][]Edge   // from → outgoing edges in insertion order
	edgeCount int
}

// NewGraph creates an empty Graph. By default M = DefaultMaxVertices,
// K = DefaultMaxWeight and parallel edges are merged.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		maxVertices: DefaultMaxVertices,
		maxWeight:   DefaultMaxWeight,
		vertices:    make(map[int]struct{}),
		adjacency:   make(map[int][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// MaxVertices returns M.
func (g *Graph) MaxVertices() int { return g.maxVertices }

// MaxWeight returns K.
func (g *Graph) MaxWeight() int { return g.maxWeight }

// Multigraph reports whether parallel edges are kept.
func (g *Graph) Multigraph() bool { return g.allowMulti }
