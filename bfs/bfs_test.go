package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/bfs"
	"github.com/katalvlaran/pqpath/builder"
	"github.com/katalvlaran/pqpath/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 3)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex(0))
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(4))
	res, err := bfs.BFS(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, res.Order)
	assert.Equal(t, map[int]int{4: 0}, res.Depth)
	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, path)
}

// TestBFS_Grid checks layering on an undirected 3×3 grid.
func TestBFS_Grid(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithUndirected()}, builder.Grid(3, 3))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}, res.Order)
	for v := 0; v < 9; v++ {
		assert.Equal(t, v/3+v%3, res.Depth[v], "manhattan distance of %d", v)
	}
	path, err := res.PathTo(8)
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 8, path[4])
}

func TestBFS_DirectedReachability(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 50))
	require.NoError(t, g.AddEdge(2, 0, 1))
	require.NoError(t, g.AddVertex(3))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.True(t, res.Reachable(1))
	assert.False(t, res.Reachable(2))
	assert.False(t, res.Reachable(3))
	_, err = res.PathTo(2)
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_FilterEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	res, err := bfs.BFS(g, 0, bfs.WithFilterEdge(func(e core.Edge) bool { return e.Weight < 5 }))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth[1])
	assert.Equal(t, 2, res.Parent[1])
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)

	stop := errors.New("stop")
	var seen []int
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		seen = append(seen, v)
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestBFS_Canceled(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

type brokenGraph struct{}

func (brokenGraph) HasVertex(int) bool { return true }

func (brokenGraph) Neighbors(int) ([]core.Edge, error) { return nil, errors.New("boom") }

func TestBFS_NeighborsError(t *testing.T) {
	_, err := bfs.BFS(brokenGraph{}, 0)
	assert.ErrorIs(t, err, bfs.ErrNeighbors)
}
