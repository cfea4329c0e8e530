package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/builder"
	"github.com/katalvlaran/pqpath/dijkstra"
	"github.com/katalvlaran/pqpath/pq"
)

// execute runs a fresh command tree and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSortCmd(t *testing.T) {
	for _, kind := range []string{"sorted", "tree", "bucket"} {
		out, err := execute(t, "sort", "--kind", kind, "10", "5", "15", "8", "5")
		require.NoError(t, err, kind)
		assert.Equal(t, "5 5 8 10 15\n", out, kind)
	}
}

func TestSortCmd_InputFile(t *testing.T) {
	path := writeTemp(t, "values.txt", "3 1\n2\n\n0 3\n")
	out, err := execute(t, "sort", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3 3\n", out)
}

func TestSortCmd_Empty(t *testing.T) {
	out, err := execute(t, "sort")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestSortCmd_Errors(t *testing.T) {
	_, err := execute(t, "sort", "1", "x")
	assert.Error(t, err)

	_, err = execute(t, "sort", "--max-key", "20", "5", "25")
	assert.ErrorIs(t, err, pq.ErrOutOfRangeKey)

	_, err = execute(t, "sort", "--kind", "heap", "1")
	assert.ErrorIs(t, err, pq.ErrUnknownKind)

	_, err = execute(t, "sort", "--kind", "bucket", "--max-key", "2000000000", "1")
	assert.ErrorIs(t, err, pq.ErrOutOfRangeKey)
}

func TestSortCmd_CompareAll(t *testing.T) {
	out, err := execute(t, "sort", "--kind", "all", "--random", "200", "--seed", "3")
	require.NoError(t, err)
	for _, kind := range pq.Kinds {
		assert.Contains(t, out, kind.String())
	}
	assert.Equal(t, 3, strings.Count(out, " ok "))
	assert.Contains(t, out, "(200 total)")

	out, err = execute(t, "sort", "--kind", "all", "--max-key", "3", "1", "4")
	assert.ErrorIs(t, err, pq.ErrOutOfRangeKey)
	assert.Contains(t, out, "FAIL")
}

func TestPathCmd(t *testing.T) {
	path := writeTemp(t, "triangle.yaml", triangleYAML+"vertices: [3]\n")
	for _, kind := range []string{"sorted", "tree", "bucket"} {
		out, err := execute(t, "path", path, "--kind", kind)
		require.NoError(t, err, kind)
		assert.Equal(t, "source 0\n0: 0 [0]\n1: 2 [0 2 1]\n2: 1 [0 2]\n3: unreachable\n", out, kind)
	}
}

func TestPathCmd_SourceAndTarget(t *testing.T) {
	path := writeTemp(t, "triangle.yaml", triangleYAML)

	out, err := execute(t, "path", path, "--target", "1")
	require.NoError(t, err)
	assert.Equal(t, "1: 2 [0 2 1]\n", out)

	out, err = execute(t, "path", path, "--source", "2", "--target", "0")
	require.NoError(t, err)
	assert.Equal(t, "0: unreachable\n", out)

	_, err = execute(t, "path", path, "--source", "-1")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
}

func TestPathCmd_CompareAll(t *testing.T) {
	path := writeTemp(t, "triangle.yaml", triangleYAML)
	out, err := execute(t, "path", path, "--kind", "all")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "2 [0 2 1]"))
	assert.Equal(t, 3, strings.Count(out, "1 [0 2]"))

	// --target narrows the table to one row.
	out, err = execute(t, "path", path, "--kind", "all", "--target", "1")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "2 [0 2 1]"))
	assert.NotContains(t, out, "1 [0 2]")
}

func TestPathCmd_ConfigFile(t *testing.T) {
	graph := writeTemp(t, "triangle.yaml", triangleYAML)
	cfg := writeTemp(t, "pqpath.yaml", "max_key: 3\nkind: bucket\n")

	_, err := execute(t, "path", graph, "--config", cfg)
	assert.ErrorIs(t, err, pq.ErrOutOfRangeKey)

	// Flags win over the file.
	out, err := execute(t, "path", graph, "--config", cfg, "--max-key", "10", "--target", "1")
	require.NoError(t, err)
	assert.Equal(t, "1: 2 [0 2 1]\n", out)
}

func TestPathCmd_Errors(t *testing.T) {
	_, err := execute(t, "path")
	assert.Error(t, err, "missing file argument")

	_, err = execute(t, "path", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeTemp(t, "triangle.yaml", triangleYAML)
	_, err = execute(t, "path", path, "--source", "7")
	assert.Error(t, err)
}

func TestGenerateCmd(t *testing.T) {
	out, err := execute(t, "generate", "path", "--size", "4")
	require.NoError(t, err)

	gf, err := decodeGraphFile(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, gf.Vertices)
	assert.Equal(t, []EdgeSpec{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}}, gf.Edges)
}

func TestGenerateCmd_Deterministic(t *testing.T) {
	args := []string{"generate", "random", "--size", "30", "--p", "0.2", "--seed", "11", "--weights", "1:9"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateThenPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "grid.yaml")
	_, err := execute(t, "generate", "grid", "--size", "3", "--undirected", "-o", file)
	require.NoError(t, err)

	out, err := execute(t, "path", file, "--kind", "bucket", "--target", "8")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "8: 4 ["), out)
}

func TestGenerateCmd_Errors(t *testing.T) {
	_, err := execute(t, "generate", "hypercube")
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)

	_, err = execute(t, "generate", "cycle", "--size", "2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = execute(t, "generate", "path", "--weights", "9:1")
	assert.Error(t, err)

	_, err = execute(t, "generate", "path", "--max-weight", "5", "--weights", "1:9", "--size", "50")
	assert.Error(t, err)
}
