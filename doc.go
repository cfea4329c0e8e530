// Package pqpath is a small laboratory for priority queues with bounded
// integer keys and for Dijkstra's shortest-path algorithm built on top of
// them.
//
// Three interchangeable queue backings share one contract:
//
//	sorted - a slice kept in ascending order; FindMin reads the front.
//	tree   - an unbalanced binary search tree keyed by priority.
//	bucket - one FIFO bucket per key in [0, MaxKey] plus a size counter.
//
// Packages:
//
//	pq/       - the queue contract, the three backings and handle-based
//	            Remove / DecreaseKey.
//	core/     - a thread-safe directed graph with bounded vertex IDs and
//	            edge weights.
//	dijkstra/ - single-source shortest paths with lazy invalidation, using
//	            any backing as the frontier.
//	bfs/      - hop-count traversal, used as a reachability oracle.
//	builder/  - deterministic graph fixtures (path, cycle, grid, random, ...).
//	compare/  - runs every backing on the same workload and checks agreement.
//	cmd/pqpath - the command-line front end.
//
// Quick example:
//
//	q, _ := pq.NewInts(pq.KindBucket)
//	for _, v := range []int{10, 5, 15, 8} {
//		q.Insert(v)
//	}
//	for !q.IsEmpty() {
//		v, _ := q.ExtractMin()
//		fmt.Println(v) // 5, 8, 10, 15
//	}
package pqpath
