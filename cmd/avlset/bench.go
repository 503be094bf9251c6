package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/typ.v4"

	"github.com/cryptonstudio/avlset/types/avl"
)

type benchOptions struct {
	ops      int
	keys     int
	seed     uint64
	progress bool
}

func (a *app) newBenchCommand() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Apply random adds and removes and report throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&opts.ops, "ops", "n", 1_000_000, "Operations count")
	flags.IntVarP(&opts.keys, "keys", "k", 100_000, "Keys range, smaller values produce more duplicates")
	flags.Uint64Var(&opts.seed, "seed", 1, "Random seed")
	flags.BoolVar(&opts.progress, "progress", true, "Show progress bar on stderr")
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, opts benchOptions) error {
	if opts.ops <= 0 || opts.keys <= 0 {
		return errors.Errorf("ops and keys must be positive, got %d and %d", opts.ops, opts.keys)
	}

	var tree avl.Tree[int]
	if a.cfg.Pooled {
		tree = avl.NewTreePooled(typ.Compare[int], &sync.Pool{
			New: func() any { return new(avl.Node[int]) },
		})
	} else {
		tree = avl.NewOrderedTree[int]()
	}

	var bar *progressbar.ProgressBar
	if opts.progress {
		bar = progressbar.NewOptions(opts.ops,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Applying operations..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
	}

	rnd := rand.New(rand.NewPCG(opts.seed, opts.seed))
	adds, removes, missing := 0, 0, 0
	timeStart := time.Now()
	for i := range opts.ops {
		v := rnd.IntN(opts.keys)
		// Two adds per remove so the tree keeps growing
		if i%3 == 2 {
			if tree.Remove(v) {
				removes++
			} else {
				missing++
			}
		} else {
			tree.Add(v)
			adds++
		}
		if bar != nil && i%1024 == 0 {
			_ = bar.Set(i)
		}
	}
	timeElapsed := time.Since(timeStart)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	if err := tree.Validate(); err != nil {
		a.logger.Error("tree is invalid after benchmark", zap.Error(err))
		return err
	}
	a.logger.Debug("benchmark finished",
		zap.Int("ops", opts.ops),
		zap.Uint64("seed", opts.seed),
		zap.Duration("elapsed", timeElapsed),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "BENCHMARK STATISTICS:\n")
	fmt.Fprintf(out, "Adds %17d\n", adds)
	fmt.Fprintf(out, "Removes %14d\n", removes)
	fmt.Fprintf(out, "Missing removes %6d\n", missing)
	fmt.Fprintf(out, "Final count %10d\n", tree.Count())
	fmt.Fprintf(out, "Final height %9d\n", tree.Height())
	fmt.Fprintf(out, "Time elapsed: %f seconds\n", timeElapsed.Seconds())
	fmt.Fprintf(out, "Throughput: %.0f ops/s\n", float64(opts.ops)/timeElapsed.Seconds())
	return nil
}
