// Package compare runs the same workload on every pq backing and checks that
// they agree. Sort verifies sortedness and multiset preservation; ShortestPath
// verifies that distances and predecessors are identical across backings and
// that the reachable set matches a breadth-first search.
//
// Each backing runs in its own goroutine on its own queue instance; the input
// values or graph are only read.
package compare

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pqpath/bfs"
	"github.com/katalvlaran/pqpath/dijkstra"
	"github.com/katalvlaran/pqpath/pq"
)

// Sentinel errors reported through the aggregated error.
var (
	// ErrNotSorted indicates a backing extracted values out of order.
	ErrNotSorted = errors.New("compare: output not sorted")

	// ErrMultisetMismatch indicates a backing lost, added or changed values.
	ErrMultisetMismatch = errors.New("compare: output is not a permutation of the input")

	// ErrBackingsDisagree indicates two backings produced different results.
	ErrBackingsDisagree = errors.New("compare: backings disagree")

	// ErrReachabilityMismatch indicates Dijkstra and BFS disagree on which
	// vertices the source reaches.
	ErrReachabilityMismatch = errors.New("compare: reachable set differs from BFS")
)

// Run is the outcome of one backing.
type Run[R any] struct {
	Kind    pq.Kind
	Output  R
	Elapsed time.Duration
	Err     error
}

// Report holds one Run per compared backing, in the order requested.
type Report[R any] struct {
	Runs []Run[R]
}

// OK reports whether every run succeeded.
func (r *Report[R]) OK() bool {
	for _, run := range r.Runs {
		if run.Err != nil {
			return false
		}
	}

	return true
}

// Options selects the backings and the queue key bound.
type Options struct {
	Kinds  []pq.Kind
	MaxKey int
}

// Option is a functional option for Sort and ShortestPath.
type Option func(*Options)

// WithKinds restricts the comparison to kinds. Panics if kinds is empty.
func WithKinds(kinds ...pq.Kind) Option {
	if len(kinds) == 0 {
		panic("compare: WithKinds requires at least one kind")
	}
	return func(o *Options) { o.Kinds = slices.Clone(kinds) }
}

// WithMaxKey sets the key bound passed to every backing. Panics if n < 0.
func WithMaxKey(n int) Option {
	if n < 0 {
		panic("compare: WithMaxKey requires n >= 0")
	}
	return func(o *Options) { o.MaxKey = n }
}

func resolve(opts []Option) Options {
	o := Options{Kinds: slices.Clone(pq.Kinds), MaxKey: pq.DefaultMaxKey}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// runAll runs fn once per kind concurrently and records each outcome.
func runAll[R any](ctx context.Context, kinds []pq.Kind, fn func(pq.Kind) (R, error)) *Report[R] {
	rep := &Report[R]{Runs: make([]Run[R], len(kinds))}
	eg, egCtx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				rep.Runs[i] = Run[R]{Kind: kind, Err: err}
				return nil
			}
			start := time.Now()
			out, err := fn(kind)
			rep.Runs[i] = Run[R]{Kind: kind, Output: out, Elapsed: time.Since(start), Err: err}
			// Failures are aggregated by the caller, not short-circuited.
			return nil
		})
	}
	_ = eg.Wait()

	return rep
}

// Sort sorts values with every selected backing and checks each output for
// order, for being a permutation of values, and for equality with the other
// backings. All problems are returned together as a *multierror.Error.
func Sort(ctx context.Context, values []int, opts ...Option) (*Report[[]int], error) {
	o := resolve(opts)
	rep := runAll(ctx, o.Kinds, func(kind pq.Kind) ([]int, error) {
		out, err := pq.Sort(kind, values, pq.WithMaxKey[int](o.MaxKey))
		if err != nil {
			return nil, err
		}
		if !slices.IsSorted(out) {
			return out, ErrNotSorted
		}
		if !sameMultiset(values, out) {
			return out, ErrMultisetMismatch
		}
		return out, nil
	})

	return rep, aggregate(rep, slices.Equal[[]int])
}

// ShortestPath runs Dijkstra from source with every selected backing and
// checks that all results agree. The first successful result is also checked
// against a BFS from source.
func ShortestPath(ctx context.Context, g dijkstra.Graph, source int, opts ...Option) (*Report[*dijkstra.Result], error) {
	o := resolve(opts)
	rep := runAll(ctx, o.Kinds, func(kind pq.Kind) (*dijkstra.Result, error) {
		return dijkstra.Dijkstra(g,
			dijkstra.Source(source),
			dijkstra.WithQueue(kind),
			dijkstra.WithMaxKey(o.MaxKey),
		)
	})

	err := aggregate(rep, sameResult)
	for _, run := range rep.Runs {
		if run.Err != nil {
			continue
		}
		if rerr := checkReachable(ctx, g, run.Output); rerr != nil {
			err = multierror.Append(err, fmt.Errorf("%s: %w", run.Kind, rerr)).ErrorOrNil()
		}
		break
	}

	return rep, err
}

// aggregate collects run failures and, among successful runs, every
// disagreement with the first successful one.
func aggregate[R any](rep *Report[R], equal func(a, b R) bool) error {
	var merr *multierror.Error
	ref := -1
	for i, run := range rep.Runs {
		if run.Err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", run.Kind, run.Err))
			continue
		}
		if ref < 0 {
			ref = i
			continue
		}
		if !equal(rep.Runs[ref].Output, run.Output) {
			merr = multierror.Append(merr, fmt.Errorf("%s vs %s: %w", rep.Runs[ref].Kind, run.Kind, ErrBackingsDisagree))
		}
	}

	return merr.ErrorOrNil()
}

// checkReachable reports the smallest vertex whose reachability in res
// differs from a BFS over g.
func checkReachable(ctx context.Context, g bfs.Graph, res *dijkstra.Result) error {
	walk, err := bfs.BFS(g, res.Source, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	vertices := slices.Sorted(maps.Keys(res.Dist))
	for _, v := range vertices {
		if res.Reachable(v) != walk.Reachable(v) {
			return fmt.Errorf("vertex %d: %w", v, ErrReachabilityMismatch)
		}
	}

	return nil
}

func sameMultiset(in, out []int) bool {
	if len(in) != len(out) {
		return false
	}
	a := slices.Clone(in)
	slices.Sort(a)

	return slices.Equal(a, out)
}

func sameResult(a, b *dijkstra.Result) bool {
	return a.Source == b.Source && maps.Equal(a.Dist, b.Dist) && maps.Equal(a.Prev, b.Prev)
}
