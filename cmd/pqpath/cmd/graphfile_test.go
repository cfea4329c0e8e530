package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/core"
)

const triangleYAML = `source: 0
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 0, to: 2, weight: 1}
  - {from: 2, to: 1, weight: 1}
`

func TestDecodeGraphFile(t *testing.T) {
	gf, err := decodeGraphFile(strings.NewReader(triangleYAML + "vertices: [3]\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, gf.Source)
	assert.Equal(t, []int{3}, gf.Vertices)
	assert.Len(t, gf.Edges, 3)

	g, err := gf.Graph(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	w, err := g.EdgeWeight(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
}

func TestDecodeGraphFile_Errors(t *testing.T) {
	_, err := decodeGraphFile(strings.NewReader("source: 0\nnodes: [1]\n"))
	assert.Error(t, err, "unknown key")

	gf, err := decodeGraphFile(strings.NewReader("edges:\n  - {from: 0, to: 1, weight: 101}\n"))
	require.NoError(t, err)
	_, err = gf.Graph(DefaultConfig())
	assert.ErrorIs(t, err, core.ErrWeightOutOfRange)

	gf, err = decodeGraphFile(strings.NewReader("vertices: [1000]\n"))
	require.NoError(t, err)
	_, err = gf.Graph(DefaultConfig())
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestGraphFile_WriteRead(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(2, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddVertex(9))

	var buf bytes.Buffer
	require.NoError(t, NewGraphFile(g, 2).Write(&buf))

	gf, err := decodeGraphFile(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, gf.Source)
	assert.Equal(t, []int{0, 1, 2, 9}, gf.Vertices)
	assert.Equal(t, []EdgeSpec{{From: 0, To: 2, Weight: 3}, {From: 2, To: 1, Weight: 5}}, gf.Edges)

	back, err := gf.Graph(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
}
