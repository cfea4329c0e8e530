// Package core is the graph collaborator of the shortest-path algorithm: a
// small, bounded, thread-safe directed graph with integer vertex IDs.
//
// Bounds:
//
//   - Vertex IDs lie in [0, M), M = MaxVertices (default 1000).
//   - Edge weights lie in [0, K], K = MaxWeight (default 100).
//   - Bounds are fixed at construction; every mutation validates against them
//     and fails with ErrVertexOutOfRange / ErrWeightOutOfRange.
//
// Edges:
//
//   - AddEdge is directed; AddUndirectedEdge adds both directions.
//   - Self-loops are accepted.
//   - By default a repeated AddEdge(u, v, w) overwrites the weight of the
//     existing u→v edge. WithMultiEdges keeps parallel edges instead.
//
// Read-only surface used by algorithms:
//
//	HasVertex(v)  – membership check.
//	Neighbors(v)  – outgoing edges of v, in insertion order (a copy).
//	Vertices()    – member IDs, ascending.
//
// Bookkeeping helpers (EdgeWeight, UpdateEdgeWeight, RemoveEdge, Edges,
// AdjacencyMatrix, Clone, Clear) serve harnesses and tests.
//
// Thread safety:
//
//   - Every method takes the graph's RWMutex; concurrent readers never block
//     each other, writers are serialised.
package core
