package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/pqpath/core"
)

// GraphFile is the YAML graph format read by "path" and written by
// "generate":
//
//	source: 0
//	vertices: [0, 1, 2, 3]
//	edges:
//	  - {from: 0, to: 1, weight: 4}
//
// Edge endpoints become vertices implicitly; vertices lists isolated ones.
type GraphFile struct {
	Source   int        `yaml:"source"`
	Vertices []int      `yaml:"vertices,omitempty,flow"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one directed edge of a GraphFile.
type EdgeSpec struct {
	From   int `yaml:"from"`
	To     int `yaml:"to"`
	Weight int `yaml:"weight"`
}

// ReadGraphFile strictly decodes the graph file at path.
func ReadGraphFile(path string) (*GraphFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	return decodeGraphFile(f)
}

func decodeGraphFile(r io.Reader) (*GraphFile, error) {
	var gf GraphFile
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&gf); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}

	return &gf, nil
}

// Graph builds a core.Graph within the configured bounds.
func (gf *GraphFile) Graph(cfg Config) (*core.Graph, error) {
	g := core.NewGraph(cfg.GraphOptions()...)
	for _, v := range gf.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for i, e := range gf.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// NewGraphFile captures g with the given source.
func NewGraphFile(g *core.Graph, source int) *GraphFile {
	gf := &GraphFile{Source: source, Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		gf.Edges = append(gf.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}

	return gf
}

// Write encodes gf as YAML.
func (gf *GraphFile) Write(w io.Writer) error {
	out, err := yaml.Marshal(gf)
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	_, err = w.Write(out)

	return err
}
