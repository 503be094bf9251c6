package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cryptonstudio/avlset/types/avl"
)

type demoScenario struct {
	name   string
	add    []int
	remove []int
}

var demoScenarios = []demoScenario{
	{
		name: "balanced insertion order",
		add:  []int{5, 3, 8, 1, 4, 7, 9},
	},
	{
		name: "ascending insertion order triggers left rotations",
		add:  []int{1, 2, 3, 4, 5, 6, 7},
	},
	{
		name:   "removing the root of three nodes",
		add:    []int{2, 1, 3},
		remove: []int{2},
	},
}

func (a *app) newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show how the tree rebalances on a few classic sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, sc := range demoScenarios {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := a.runDemo(cmd.OutOrStdout(), sc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runDemo(out io.Writer, sc demoScenario) error {
	tree := avl.NewOrderedTree[int]()
	for _, v := range sc.add {
		tree.Add(v)
	}
	for _, v := range sc.remove {
		tree.Remove(v)
	}
	if err := tree.Validate(); err != nil {
		a.logger.Error("demo tree is invalid", zap.String("scenario", sc.name), zap.Error(err))
		return err
	}
	fmt.Fprintf(out, "# %s\n", sc.name)
	fmt.Fprintf(out, "add %v", sc.add)
	if len(sc.remove) > 0 {
		fmt.Fprintf(out, ", remove %v", sc.remove)
	}
	fmt.Fprintf(out, "\nvalues %v, count %d, height %d\n", tree.Values(), tree.Count(), tree.Height())
	return tree.Fprint(out)
}
