package dijkstra

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/pqpath/pq"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of
// g, ordering the frontier with the priority-queue backing chosen by
// WithQueue.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrUnknownVertex).
//  4. The queue kind must be valid (pq.ErrUnknownKind).
//
// During the run a negative weight fails with ErrNegativeWeight and a
// tentative distance above the queue key bound fails with a wrapped
// pq.ErrOutOfRangeKey. No partial result is returned on failure.
//
// Complexity depends on the backing:
//
//   - sorted: O(V·E) worst case, each insert shifts the frontier.
//   - tree:   O(E·h), h the tree height (O(E) on adversarial orders).
//   - bucket: O(E + V·N) with N the key bound.
func Dijkstra(g Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if !cfg.sourceSet {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, cfg.Source)
	}

	// 3) Build the frontier queue
	frontier, err := pq.New[item](cfg.Queue, itemKey, pq.WithMaxKey[item](cfg.MaxKey), pq.WithCompare[item](compareItems))
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 4) Run
	r := &runner{
		g:        g,
		options:  cfg,
		frontier: frontier,
		res:      newResult(cfg.Source, g.Vertices()),
	}
	if err = r.init(); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// RunShortestPath is Dijkstra with only the source and backing chosen.
func RunShortestPath(g Graph, source int, kind pq.Kind) (*Result, error) {
	return Dijkstra(g, Source(source), WithQueue(kind))
}

// item is one frontier entry. Several items may exist for the same vertex;
// all but the smallest become stale once the vertex is finalized.
type item struct {
	vertex int
	dist   int
}

func itemKey(it item) int { return it.dist }

// compareItems orders by distance, then by vertex ID. The order is total, so
// every backing extracts the same sequence.
func compareItems(a, b item) int {
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.vertex, b.vertex)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         Graph
	options   Options
	frontier  pq.Queue[item]
	res       *Result
	finalized map[int]bool
}

// init seeds the frontier with the source at distance 0.
func (r *runner) init() error {
	r.finalized = make(map[int]bool, len(r.res.Dist))
	r.res.Dist[r.options.Source] = 0
	if _, err := r.frontier.Insert(item{vertex: r.options.Source}); err != nil {
		return fmt.Errorf("dijkstra: seed source %d: %w", r.options.Source, err)
	}

	return nil
}

// process extracts until the frontier is empty, skipping stale entries and
// stopping early once the minimum exceeds MaxDistance.
func (r *runner) process() error {
	for !r.frontier.IsEmpty() {
		it, err := r.frontier.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		// A finalized vertex is a stale entry; drop it.
		if r.finalized[it.vertex] {
			continue
		}
		if int64(it.dist) > r.options.MaxDistance {
			break
		}
		r.finalized[it.vertex] = true

		if err = r.relax(it.vertex); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's neighbors through u and queues a fresh
// entry for every strict improvement.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		w := int64(e.Weight)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, w)
		}
		if r.finalized[e.To] {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.res.Dist[e.To]; ok && nd >= cur {
			continue
		}
		// The frontier rejects keys above MaxKey with pq.ErrOutOfRangeKey.
		if nd > int64(r.options.MaxKey) {
			return fmt.Errorf("dijkstra: distance %d to vertex %d: %w", nd, e.To, pq.ErrOutOfRangeKey)
		}

		r.res.Dist[e.To] = nd
		r.res.Prev[e.To] = u
		if _, err = r.frontier.Insert(item{vertex: e.To, dist: int(nd)}); err != nil {
			return fmt.Errorf("dijkstra: queue vertex %d: %w", e.To, err)
		}
	}

	return nil
}
