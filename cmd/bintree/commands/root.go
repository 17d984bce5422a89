// Package commands implements the bintree CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gotlibsh/trees/config"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

// NewRootCommand returns the bintree command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bintree",
		Short: "Binary search tree demonstration driver",
		Long: `bintree exercises the bintree library.

Commands:
  demo      Build a random tree and print its traversals
  rebuild   Reconstruct a tree from pre-order and in-order sequences
  check     Verify tree properties over many random trees`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./bintree.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newDemoCommand(opts))
	rootCmd.AddCommand(newRebuildCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// load reads the configuration and sets up logging and color for cmd.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	if o.noColor || cfg.Output.NoColor {
		color.NoColor = true //nolint:reassign // library global
	}

	logger := cfg.Logging.NewLogger(cmd.ErrOrStderr(), o.verbose)
	logger.Debug("configuration loaded", "path", o.configPath, "format", cfg.Output.Format)

	return cfg, logger, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bintree %s\n", Version)
		},
	}
}
