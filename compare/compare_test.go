package compare_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/builder"
	"github.com/katalvlaran/pqpath/compare"
	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/dijkstra"
	"github.com/katalvlaran/pqpath/pq"
)

func TestSort_AllBackingsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	values := make([]int, 500)
	for i := range values {
		values[i] = rng.Intn(pq.DefaultMaxKey + 1)
	}

	rep, err := compare.Sort(context.Background(), values)
	require.NoError(t, err)
	require.Len(t, rep.Runs, len(pq.Kinds))
	assert.True(t, rep.OK())
	for i, run := range rep.Runs {
		assert.Equal(t, pq.Kinds[i], run.Kind)
		assert.Len(t, run.Output, len(values))
	}
}

func TestSort_Scenario(t *testing.T) {
	rep, err := compare.Sort(context.Background(), []int{10, 5, 15, 8})
	require.NoError(t, err)
	for _, run := range rep.Runs {
		assert.Equal(t, []int{5, 8, 10, 15}, run.Output, run.Kind.String())
	}
}

func TestSort_OutOfRangeAggregated(t *testing.T) {
	rep, err := compare.Sort(context.Background(), []int{1, 2, 60}, compare.WithMaxKey(50))
	require.Error(t, err)
	assert.ErrorIs(t, err, pq.ErrOutOfRangeKey)
	assert.False(t, rep.OK())
	for _, run := range rep.Runs {
		assert.ErrorIs(t, run.Err, pq.ErrOutOfRangeKey, run.Kind.String())
	}
	assert.Contains(t, err.Error(), "3 errors occurred")
}

func TestSort_SubsetOfKinds(t *testing.T) {
	rep, err := compare.Sort(context.Background(), []int{3, 1, 2}, compare.WithKinds(pq.KindBucket))
	require.NoError(t, err)
	require.Len(t, rep.Runs, 1)
	assert.Equal(t, pq.KindBucket, rep.Runs[0].Kind)
	assert.Panics(t, func() { compare.WithKinds() })
}

func TestSort_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := compare.Sort(ctx, []int{1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_Triangle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddVertex(3))

	rep, err := compare.ShortestPath(context.Background(), g, 0)
	require.NoError(t, err)
	for _, run := range rep.Runs {
		assert.Equal(t, []int{0, 2, 1}, run.Output.Path(1), run.Kind.String())
		assert.Empty(t, run.Output.Path(3), run.Kind.String())
	}
}

func TestShortestPath_Fixtures(t *testing.T) {
	fixtures := map[string]builder.Constructor{
		"grid":     builder.Grid(8, 8),
		"complete": builder.Complete(12),
		"random":   builder.RandomSparse(80, 0.05),
		"cycle":    builder.Cycle(40),
	}
	for name, ctor := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(5), builder.WithWeightRange(0, 10)},
				ctor,
			)
			require.NoError(t, err)
			_, err = compare.ShortestPath(context.Background(), g, 0)
			assert.NoError(t, err)
		})
	}
}

func TestShortestPath_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 90))
	require.NoError(t, g.AddEdge(1, 2, 90))

	_, err := compare.ShortestPath(context.Background(), g, 0, compare.WithMaxKey(100))
	assert.ErrorIs(t, err, pq.ErrOutOfRangeKey)

	_, err = compare.ShortestPath(context.Background(), g, 9)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
}
