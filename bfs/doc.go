// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order.
//
// Edge weights are ignored: BFS answers "which vertices can the source reach,
// and in how many hops". The compare package uses it as an independent
// reachability check for Dijkstra, and on unit-weight graphs the hop counts
// equal the shortest distances.
//
// Options:
//
//	WithContext(ctx)     - cancellation, checked once per dequeued vertex.
//	WithOnVisit(fn)      - callback per visited vertex; an error aborts.
//	WithMaxDepth(d)      - do not enqueue vertices deeper than d (d > 0).
//	WithFilterEdge(fn)   - skip edges for which fn returns false.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
