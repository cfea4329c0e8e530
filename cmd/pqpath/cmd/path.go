package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pqpath/compare"
	"github.com/katalvlaran/pqpath/dijkstra"
)

var exampleForPathCmd = `
  pqpath path graph.yaml
  pqpath path graph.yaml --source 2 --target 7 --kind tree
  pqpath path graph.yaml --kind all
`

type pathOpts struct {
	source int
	target int
}

// NewPathCmd runs Dijkstra over a YAML graph file.
func NewPathCmd(config func() Config) *cobra.Command {
	opts := &pathOpts{}
	pathCmd := &cobra.Command{
		Use:     "path GRAPH.yaml",
		Short:   "compute shortest paths from a source vertex",
		Example: exampleForPathCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			gf, err := ReadGraphFile(args[0])
			if err != nil {
				return err
			}
			g, err := gf.Graph(cfg)
			if err != nil {
				return err
			}
			source := gf.Source
			if cmd.Flags().Changed("source") {
				source = opts.source
			}
			kinds, err := cfg.Kinds()
			if err != nil {
				return err
			}
			logrus.Debugf("graph %s: %d vertices, %d edges, source %d", args[0], g.VertexCount(), g.EdgeCount(), source)

			out := cmd.OutOrStdout()
			if len(kinds) > 1 {
				rows := g.Vertices()
				if cmd.Flags().Changed("target") {
					rows = []int{opts.target}
				}
				rep, err := compare.ShortestPath(cmd.Context(), g, source,
					compare.WithKinds(kinds...), compare.WithMaxKey(cfg.MaxKey))
				renderPathReport(out, rep, rows)
				return err
			}

			res, err := dijkstra.Dijkstra(g,
				dijkstra.Source(source),
				dijkstra.WithQueue(kinds[0]),
				dijkstra.WithMaxKey(cfg.MaxKey),
			)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("target") {
				_, err = fmt.Fprint(out, res)
				return err
			}
			if !res.Reachable(opts.target) {
				_, err = fmt.Fprintf(out, "%d: unreachable\n", opts.target)
				return err
			}
			_, err = fmt.Fprintf(out, "%d: %d %v\n", opts.target, res.Distance(opts.target), res.Path(opts.target))
			return err
		},
	}
	pathCmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source vertex (default: the file's source)")
	pathCmd.Flags().IntVarP(&opts.target, "target", "t", 0, "print only the path to this vertex")

	return pathCmd
}
