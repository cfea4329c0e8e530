// Package dijkstra computes single-source shortest paths over a bounded,
// non-negative weighted graph, using one of the pq backings as its frontier.
//
// Overview:
//
//   - Distances start at Unreachable except the source (0). The loop extracts
//     the closest frontier entry, finalizes its vertex and relaxes the
//     outgoing edges.
//   - Decrease-key is lazy: every strict improvement inserts a fresh
//     (vertex, distance) entry. Older entries for the same vertex stay in the
//     queue and are skipped when they surface after the vertex is finalized.
//   - Entries compare by distance, then vertex ID. The order is total, so
//     distances and predecessors are identical for every backing.
//
// Options:
//
//	Source(v)                – required starting vertex.
//	WithQueue(kind)          – pq.KindSorted (default), pq.KindTree or pq.KindBucket.
//	WithMaxKey(n)            – frontier key bound; distances above it fail.
//	WithMaxDistance(d)       – do not explore vertices farther than d.
//	WithInfEdgeThreshold(t)  – skip edges whose weight is ≥ t.
//
// Errors:
//
//	ErrNoSource        – Source not given.
//	ErrNilGraph        – nil graph.
//	ErrUnknownVertex   – source is not a member of the graph.
//	ErrNegativeWeight  – a relaxed edge has a negative weight.
//	pq.ErrUnknownKind  – invalid WithQueue kind (wrapped).
//	pq.ErrOutOfRangeKey – a tentative distance exceeds the key bound (wrapped).
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithQueue(pq.KindBucket))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Distance(1), res.Path(1))
//
// Thread safety:
//
//   - Each call owns its queue and result. The graph is only read; concurrent
//     runs over one *core.Graph are safe.
package dijkstra
