package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool

	kind        string
	maxKey      int
	maxVertices int
	maxWeight   int
}

var longRootCmdDescription = `pqpath compares three priority-queue backings (sorted sequence,
binary search tree, bucket array) by sorting integers and by running
Dijkstra's shortest-path algorithm on graphs read from YAML files.
Use --kind all to run every backing and check that they agree.
`

// NewRootCmd builds the command tree. cfg receives the resolved configuration
// before any subcommand runs.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "pqpath",
		Short:         "Priority-queue backings and shortest paths",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initLogger(cmd, opts)
			resolved, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			cfg = resolved
			logrus.Debugf("config: %+v", cfg)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "YAML config file with max_key, max_vertices, max_weight and kind")
	flags.BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	flags.StringVarP(&opts.kind, "kind", "k", cfg.Kind, "queue backing: sorted, tree, bucket or all")
	flags.IntVar(&opts.maxKey, "max-key", cfg.MaxKey, "largest key the queue accepts")
	flags.IntVar(&opts.maxVertices, "max-vertices", cfg.MaxVertices, "exclusive upper bound on vertex IDs")
	flags.IntVar(&opts.maxWeight, "max-weight", cfg.MaxWeight, "inclusive upper bound on edge weights")

	current := func() Config { return cfg }
	rootCmd.AddCommand(NewSortCmd(current), NewPathCmd(current), NewGenerateCmd(current))
	rootCmd.DisableAutoGenTag = true

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("pqpath: %v", err)
		os.Exit(1)
	}
}

func initLogger(cmd *cobra.Command, opts *rootOpts) {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.debugModeOn {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// resolveConfig loads --config, then applies every flag the user set.
func resolveConfig(cmd *cobra.Command, opts *rootOpts) (Config, error) {
	cfg := DefaultConfig()
	if opts.cfgFile != "" {
		loaded, err := LoadConfig(opts.cfgFile)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
		logrus.Debugf("loaded config file %s", opts.cfgFile)
	}

	flags := cmd.Flags()
	if flags.Changed("kind") {
		cfg.Kind = opts.kind
	}
	if flags.Changed("max-key") {
		cfg.MaxKey = opts.maxKey
	}
	if flags.Changed("max-vertices") {
		cfg.MaxVertices = opts.maxVertices
	}
	if flags.Changed("max-weight") {
		cfg.MaxWeight = opts.maxWeight
	}

	return cfg, cfg.Validate()
}
