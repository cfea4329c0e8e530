package cmd

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/pq"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr bool
	}{
		{
			name:  "empty file keeps defaults",
			input: "",
			want:  DefaultConfig(),
		},
		{
			name:  "partial override",
			input: "max_key: 50\nkind: bucket\n",
			want:  Config{MaxKey: 50, MaxVertices: 1000, MaxWeight: 100, Kind: "bucket"},
		},
		{
			name:  "all backings",
			input: "kind: all\nmax_vertices: 20\nmax_weight: 9\n",
			want:  Config{MaxKey: 1000, MaxVertices: 20, MaxWeight: 9, Kind: "all"},
		},
		{
			name:  "large bound without bucket",
			input: "kind: tree\nmax_key: 2000000000\n",
			want:  Config{MaxKey: 2000000000, MaxVertices: 1000, MaxWeight: 100, Kind: "tree"},
		},
		{name: "bucket bound too large", input: "kind: bucket\nmax_key: 16777217\n", wantErr: true},
		{name: "all includes bucket", input: "kind: all\nmax_key: 2000000000\n", wantErr: true},
		{name: "unknown key", input: "max_keys: 5\n", wantErr: true},
		{name: "bad kind", input: "kind: heap\n", wantErr: true},
		{name: "negative max key", input: "max_key: -1\n", wantErr: true},
		{name: "zero max vertices", input: "max_vertices: 0\n", wantErr: true},
		{name: "negative max weight", input: "max_weight: -3\n", wantErr: true},
		{name: "not yaml", input: "max_key: [\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeConfig(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pqpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_key: 10\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxKey)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_BucketBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kind = "bucket"
	cfg.MaxKey = pq.MaxBucketKey
	assert.NoError(t, cfg.Validate())

	cfg.MaxKey = math.MaxInt
	assert.ErrorIs(t, cfg.Validate(), pq.ErrOutOfRangeKey)
}

func TestConfig_Kinds(t *testing.T) {
	kinds, err := Config{Kind: "ALL"}.Kinds()
	require.NoError(t, err)
	assert.Equal(t, pq.Kinds, kinds)

	kinds, err = Config{Kind: "tree"}.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []pq.Kind{pq.KindTree}, kinds)

	_, err = Config{Kind: "fibonacci"}.Kinds()
	assert.ErrorIs(t, err, pq.ErrUnknownKind)
}

func TestConfig_GraphOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxVertices, cfg.MaxWeight = 5, 7
	gf := &GraphFile{Edges: []EdgeSpec{{From: 0, To: 4, Weight: 7}}}
	g, err := gf.Graph(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, g.MaxVertices())
	assert.Equal(t, 7, g.MaxWeight())
}
