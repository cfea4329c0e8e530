package compare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/dijkstra"
)

func TestCheckReachable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddVertex(2))

	good := &dijkstra.Result{
		Source: 0,
		Dist:   map[int]int64{0: 0, 1: 3, 2: dijkstra.Unreachable},
		Prev:   map[int]int{0: dijkstra.NoPredecessor, 1: 0, 2: dijkstra.NoPredecessor},
	}
	assert.NoError(t, checkReachable(context.Background(), g, good))

	bad := &dijkstra.Result{
		Source: 0,
		Dist:   map[int]int64{0: 0, 1: dijkstra.Unreachable, 2: 5},
		Prev:   map[int]int{0: dijkstra.NoPredecessor, 1: dijkstra.NoPredecessor, 2: 0},
	}
	err := checkReachable(context.Background(), g, bad)
	assert.ErrorIs(t, err, ErrReachabilityMismatch)
	assert.Contains(t, err.Error(), "vertex 1")
}

func TestSameMultiset(t *testing.T) {
	assert.True(t, sameMultiset([]int{3, 1, 3}, []int{1, 3, 3}))
	assert.False(t, sameMultiset([]int{3, 1, 3}, []int{1, 1, 3}))
	assert.False(t, sameMultiset([]int{1}, []int{1, 1}))
}
