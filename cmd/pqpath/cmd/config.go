package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/pq"
)

// kindAll selects every backing and switches commands to comparison mode.
const kindAll = "all"

// Config holds the bounds and backing selection shared by all commands.
// Values come from the --config file and are overridden by flags.
type Config struct {
	MaxKey      int    `yaml:"max_key"`
	MaxVertices int    `yaml:"max_vertices"`
	MaxWeight   int    `yaml:"max_weight"`
	Kind        string `yaml:"kind"`
}

// DefaultConfig returns the library defaults and the sorted backing.
func DefaultConfig() Config {
	return Config{
		MaxKey:      pq.DefaultMaxKey,
		MaxVertices: core.DefaultMaxVertices,
		MaxWeight:   core.DefaultMaxWeight,
		Kind:        pq.KindSorted.String(),
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r, yaml.Strict())
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the bounds and the backing name. The bucket backing
// allocates one slot per key, so its bound is capped at pq.MaxBucketKey.
func (c Config) Validate() error {
	if c.MaxKey < 0 {
		return fmt.Errorf("max_key must be >= 0, got %d", c.MaxKey)
	}
	if c.MaxVertices <= 0 {
		return fmt.Errorf("max_vertices must be > 0, got %d", c.MaxVertices)
	}
	if c.MaxWeight < 0 {
		return fmt.Errorf("max_weight must be >= 0, got %d", c.MaxWeight)
	}
	kinds, err := c.Kinds()
	if err != nil {
		return err
	}
	if slices.Contains(kinds, pq.KindBucket) && c.MaxKey > pq.MaxBucketKey {
		return fmt.Errorf("max_key %d above %d for the bucket backing: %w", c.MaxKey, pq.MaxBucketKey, pq.ErrOutOfRangeKey)
	}

	return nil
}

// Kinds resolves Kind to the backings to run; "all" yields every backing.
func (c Config) Kinds() ([]pq.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(c.Kind), kindAll) {
		return pq.Kinds, nil
	}
	k, err := pq.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}

	return []pq.Kind{k}, nil
}

// GraphOptions returns the core options matching the configured bounds.
func (c Config) GraphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithMaxVertices(c.MaxVertices), core.WithMaxWeight(c.MaxWeight)}
}
