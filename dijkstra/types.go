// File: types.go
// Role: sentinel errors, the Graph collaborator interface, Options and the
// functional-option constructors for Dijkstra.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/pq"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Dijkstra was called without the Source option.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that the source vertex is not a member of the graph.
	ErrUnknownVertex = errors.New("dijkstra: source vertex not in graph")

	// ErrNegativeWeight indicates that a negative edge weight was reached during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

const (
	// Unreachable is the distance reported for vertices the source cannot reach.
	Unreachable int64 = math.MaxInt64

	// NoPredecessor is the predecessor reported for the source and for
	// unreachable vertices.
	NoPredecessor = -1
)

// Graph is the read-only surface Dijkstra consumes. *core.Graph satisfies it.
// Vertex IDs are non-negative, so NoPredecessor never names a vertex.
type Graph interface {
	// HasVertex reports membership.
	HasVertex(v int) bool
	// Neighbors returns the outgoing edges of v in a stable order.
	Neighbors(v int) ([]core.Edge, error)
	// Vertices returns every member ID.
	Vertices() []int
}

var _ Graph = (*core.Graph)(nil)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (required, must be a member of the graph).
// Queue            – priority-queue backing that orders the frontier.
// MaxKey           – key bound N of that queue; distances above it fail.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           int     // The ID of the source vertex
	Queue            pq.Kind // Frontier backing
	MaxKey           int     // Largest distance the frontier accepts
	MaxDistance      int64   // Maximum distance to explore
	InfEdgeThreshold int64   // Weight threshold above which edges are non-traversable

	sourceSet bool // set by Source
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.sourceSet = true
	}
}

// WithQueue selects the priority-queue backing. An invalid kind makes
// Dijkstra fail with pq.ErrUnknownKind.
func WithQueue(kind pq.Kind) Option {
	return func(o *Options) {
		o.Queue = kind
	}
}

// WithMaxKey sets the key bound N of the frontier queue. A tentative
// distance above N makes Dijkstra fail with pq.ErrOutOfRangeKey.
// Panics if n < 0.
func WithMaxKey(n int) Option {
	if n < 0 {
		panic("dijkstra: WithMaxKey requires n >= 0")
	}
	return func(o *Options) {
		o.MaxKey = n
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold on threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Source:           unset (Dijkstra fails with ErrNoSource).
//   - Queue:            pq.KindSorted.
//   - MaxKey:           pq.DefaultMaxKey.
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Queue:            pq.KindSorted,
		MaxKey:           pq.DefaultMaxKey,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
