package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gotlibsh/trees/bintree"
	"github.com/gotlibsh/trees/config"
	"github.com/gotlibsh/trees/selfcheck"
)

type treeFlags struct {
	seed       uint64
	count      int
	maxValue   int
	duplicates bool
	format     string
}

func (f *treeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of values to insert")
	cmd.Flags().IntVar(&f.maxValue, "max-value", 0, "values are drawn from [0, max-value)")
	cmd.Flags().BoolVar(&f.duplicates, "duplicates", false, "allow duplicate values")
}

// apply overrides cfg with any flags set on cmd and revalidates it.
func (f *treeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Tree.Seed = f.seed
	}
	if flags.Changed("count") {
		cfg.Tree.Count = f.count
	}
	if flags.Changed("max-value") {
		cfg.Tree.MaxValue = f.maxValue
	}
	if flags.Changed("duplicates") {
		cfg.Tree.AllowDuplicates = f.duplicates
	}
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	return cfg.Validate()
}

func newDemoCommand(root *rootOptions) *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a random search tree and print its traversals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			seed := cfg.Tree.Seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			values := selfcheck.TrialValues(selfcheck.Options{
				Seed:     seed,
				Count:    cfg.Tree.Count,
				MaxValue: cfg.Tree.MaxValue,
			}, 0)

			var tree *bintree.Node
			var rejected = 0
			for _, v := range values {
				var ok bool
				tree, ok = tree.Insert(bintree.NewNode(v), cfg.Tree.AllowDuplicates)
				if !ok {
					logger.Debug("rejected duplicate", "value", v)
					rejected++
				}
			}
			logger.Info("tree built", "seed", seed, "size", tree.Size(), "rejected", rejected)

			r := newTreeReport(tree)
			r.Seed = seed
			r.Values = values
			r.Rejected = rejected
			err = renderTreeReport(cmd.OutOrStdout(), cfg.Output.Format, "tree built!", tree, r)
			tree.Free()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, yaml or json")

	return cmd
}
