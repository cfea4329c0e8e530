package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pqpath/compare"
	"github.com/katalvlaran/pqpath/pq"
)

var exampleForSortCmd = `
  pqpath sort 10 5 15 8
  pqpath sort --kind all --random 10000 --seed 7
  pqpath sort --kind bucket --input values.txt
`

type sortOpts struct {
	input  string
	random int
	seed   int64
}

// NewSortCmd sorts integers by draining a priority queue.
func NewSortCmd(config func() Config) *cobra.Command {
	opts := &sortOpts{}
	sortCmd := &cobra.Command{
		Use:     "sort [VALUE...]",
		Short:   "sort integers in [0, max-key] with a priority queue",
		Example: exampleForSortCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			values, err := sortInput(args, opts, cfg.MaxKey)
			if err != nil {
				return err
			}
			kinds, err := cfg.Kinds()
			if err != nil {
				return err
			}
			logrus.Debugf("sorting %d values with %v", len(values), kinds)

			if len(kinds) == 1 {
				out, err := pq.Sort(kinds[0], values, pq.WithMaxKey[int](cfg.MaxKey))
				if err != nil {
					return err
				}
				return writeValues(cmd.OutOrStdout(), out)
			}

			rep, err := compare.Sort(cmd.Context(), values,
				compare.WithKinds(kinds...), compare.WithMaxKey(cfg.MaxKey))
			renderSortReport(cmd.OutOrStdout(), rep)
			return err
		},
	}
	sortCmd.Flags().StringVarP(&opts.input, "input", "i", "", "read whitespace-separated values from a file (- for stdin)")
	sortCmd.Flags().IntVar(&opts.random, "random", 0, "sort N random values in [0, max-key] instead")
	sortCmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for --random")

	return sortCmd
}

func sortInput(args []string, opts *sortOpts, maxKey int) ([]int, error) {
	switch {
	case opts.random > 0:
		rng := rand.New(rand.NewSource(opts.seed))
		values := make([]int, opts.random)
		for i := range values {
			values[i] = rng.Intn(maxKey + 1)
		}
		return values, nil
	case opts.input == "-":
		return readValues(os.Stdin)
	case opts.input != "":
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readValues(f)
	}

	return parseValues(args)
}

func parseValues(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		values = append(values, v)
	}

	return values, nil
}

func readValues(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return parseValues(fields)
}

func writeValues(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range values {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
