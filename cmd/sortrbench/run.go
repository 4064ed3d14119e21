// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-sortr/sortr"
	"github.com/ajroetker/go-sortr/sortr/contrib/batch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	errInvalidSize = errors.New("invalid size")
	errNotSorted   = errors.New("output not sorted")
)

type runOptions struct {
	sizes    []int
	patterns []string
	trials   int
	parallel int
	shards   int
	seed     int64
}

// method is one way of sorting a generated input.
type method struct {
	name string
	sort func(data []int)

	// sharded methods order each shard but not the whole slice.
	sharded bool
}

type result struct {
	pattern string
	n       int
	method  string
	best    time.Duration
	median  time.Duration
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time sortr strategies on generated inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntSliceVarP(&opts.sizes, "n", "n", []int{1000, 100000}, "input sizes")
	f.StringSliceVarP(&opts.patterns, "pattern", "p", []string{"random"}, "input patterns, or \"all\"")
	f.IntVarP(&opts.trials, "trials", "t", 5, "timed runs per case")
	f.IntVar(&opts.parallel, "parallel", 1, "cases timed concurrently")
	f.IntVar(&opts.shards, "shards", 0, "also time sorting the input as this many shards on a worker pool")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")

	return cmd
}

func runBench(cmd *cobra.Command, opts runOptions) error {
	patterns, err := parsePatterns(opts.patterns)
	if err != nil {
		return err
	}
	for _, n := range opts.sizes {
		if n < 0 {
			return fmt.Errorf("%w: %d", errInvalidSize, n)
		}
	}
	opts.trials = max(opts.trials, 1)

	var pool *batch.Pool
	if opts.shards > 0 {
		pool = batch.New(0)
		defer pool.Close()
	}

	methods := benchMethods(pool, opts.shards)
	slog.Debug("starting benchmark",
		"strategy", sortr.CurrentName(),
		"patterns", patterns,
		"sizes", opts.sizes,
		"methods", lo.Map(methods, func(m method, _ int) string { return m.name }))

	type benchCase struct {
		pattern string
		n       int
		method  method
	}
	var cases []benchCase
	for _, p := range patterns {
		for _, n := range opts.sizes {
			for _, m := range methods {
				cases = append(cases, benchCase{p, n, m})
			}
		}
	}

	results := make([]result, len(cases))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(opts.parallel, 1))
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			rng := rand.New(rand.NewSource(opts.seed))
			input := generators[c.pattern](rng, c.n)
			r, err := timeCase(ctx, input, c.method, opts.trials)
			if err != nil {
				return fmt.Errorf("%s n=%d %s: %w", c.pattern, c.n, c.method.name, err)
			}
			r.pattern = c.pattern
			results[i] = r
			slog.Debug("case done", "pattern", c.pattern, "n", c.n, "method", c.method.name, "median", r.median)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tN\tMETHOD\tBEST\tMEDIAN\tNS/ELEM")
	for _, r := range results {
		perElem := 0.0
		if r.n > 0 {
			perElem = float64(r.median.Nanoseconds()) / float64(r.n)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%v\t%v\t%.2f\n", r.pattern, r.n, r.method, r.best, r.median, perElem)
	}
	return w.Flush()
}

func benchMethods(pool *batch.Pool, shards int) []method {
	methods := []method{
		{name: "sort(" + sortr.CurrentName() + ")", sort: func(data []int) { sortr.Sort(data, cmp.Compare[int]) }},
		{name: "simple", sort: func(data []int) { sortr.SortSimple(data, cmp.Compare[int]) }},
	}
	if pool != nil {
		methods = append(methods, method{
			name: fmt.Sprintf("shards(%d)", shards),
			sort: func(data []int) {
				batch.SortAll(pool, lo.Chunk(data, max(len(data)/shards, 1)), cmp.Compare[int])
			},
			sharded: true,
		})
	}
	return methods
}

// timeCase sorts a fresh copy of input trials times and checks the output.
func timeCase(ctx context.Context, input []int, m method, trials int) (result, error) {
	data := make([]int, len(input))
	durations := make([]time.Duration, 0, trials)

	for t := 0; t < trials; t++ {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		copy(data, input)
		start := time.Now()
		m.sort(data)
		durations = append(durations, time.Since(start))
	}

	if !m.sharded && !sortr.IsSorted(data, cmp.Compare[int]) {
		return result{}, errNotSorted
	}

	slices.Sort(durations)
	return result{
		n:      len(input),
		method: m.name,
		best:   durations[0],
		median: durations[len(durations)/2],
	}, nil
}
