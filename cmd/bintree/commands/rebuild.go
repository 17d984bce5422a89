package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gotlibsh/trees/bintree"
)

func newRebuildCommand(root *rootOptions) *cobra.Command {
	var (
		preOrder []int
		inOrder  []int
		format   string
	)

	cmd := &cobra.Command{
		Use:   "rebuild --pre 5,3,1,4,8 --in 1,3,4,5,8",
		Short: "Reconstruct a tree from its pre-order and in-order sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			tree, err := bintree.Rebuild(preOrder, inOrder)
			if err != nil {
				return fmt.Errorf("rebuild: %w", err)
			}
			logger.Info("tree rebuilt", "size", tree.Size())

			r := newTreeReport(tree)
			err = renderTreeReport(cmd.OutOrStdout(), cfg.Output.Format, "rebuilt tree!", tree, r)
			tree.Free()
			return err
		},
	}

	cmd.Flags().IntSliceVar(&preOrder, "pre", nil, "pre-order sequence")
	cmd.Flags().IntSliceVar(&inOrder, "in", nil, "in-order sequence")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, yaml or json")

	return cmd
}
