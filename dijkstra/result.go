package dijkstra

import (
	"fmt"
	"slices"
	"strings"
)

// Result holds the distances and predecessors of one Dijkstra run.
//
// Every vertex reported by the graph's Vertices appears in Dist and Prev;
// unreachable ones carry Unreachable and NoPredecessor. The source maps to
// 0 and NoPredecessor.
type Result struct {
	Source int
	Dist   map[int]int64
	Prev   map[int]int
}

func newResult(source int, vertices []int) *Result {
	res := &Result{
		Source: source,
		Dist:   make(map[int]int64, len(vertices)),
		Prev:   make(map[int]int, len(vertices)),
	}
	for _, v := range vertices {
		res.Dist[v] = Unreachable
		res.Prev[v] = NoPredecessor
	}

	return res
}

// Distance returns the shortest distance to v, or Unreachable.
func (r *Result) Distance(v int) int64 {
	if d, ok := r.Dist[v]; ok {
		return d
	}

	return Unreachable
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return r.Distance(v) != Unreachable
}

// Path returns the vertices from Source to target inclusive. It is empty when
// target is unreachable and [Source] when target is the source.
func (r *Result) Path(target int) []int {
	if !r.Reachable(target) {
		return []int{}
	}

	path := []int{target}
	for v := target; v != r.Source; {
		p, ok := r.Prev[v]
		if !ok || p == NoPredecessor {
			// No predecessor and not the source means unreachable.
			return []int{}
		}
		path = append(path, p)
		v = p
	}
	slices.Reverse(path)

	return path
}

// String renders one "v: dist (path)" line per vertex in ascending order.
func (r *Result) String() string {
	vertices := make([]int, 0, len(r.Dist))
	for v := range r.Dist {
		vertices = append(vertices, v)
	}
	slices.Sort(vertices)

	var sb strings.Builder
	fmt.Fprintf(&sb, "source %d\n", r.Source)
	for _, v := range vertices {
		if !r.Reachable(v) {
			fmt.Fprintf(&sb, "%d: unreachable\n", v)
			continue
		}
		fmt.Fprintf(&sb, "%d: %d %v\n", v, r.Dist[v], r.Path(v))
	}

	return sb.String()
}
