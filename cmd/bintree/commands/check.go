package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gotlibsh/trees/selfcheck"
)

// ErrCheckFailed is returned when at least one trial violates a property.
var ErrCheckFailed = errors.New("property check failed")

// maxFailureRows bounds the failure table.
const maxFailureRows = 10

func newCheckCommand(root *rootOptions) *cobra.Command {
	flags := &treeFlags{}
	var trials, workers int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify tree properties over many random trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("trials") {
				cfg.Check.Trials = trials
			}
			if cmd.Flags().Changed("workers") {
				cfg.Check.Workers = workers
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			seed := cfg.Tree.Seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			opts := selfcheck.Options{
				Seed:            seed,
				Trials:          cfg.Check.Trials,
				Workers:         cfg.Check.Workers,
				Count:           cfg.Tree.Count,
				MaxValue:        cfg.Tree.MaxValue,
				AllowDuplicates: cfg.Tree.AllowDuplicates,
			}
			logger.Debug("starting check", "seed", seed, "trials", opts.Trials, "workers", opts.Workers)

			start := time.Now()
			report := selfcheck.Run(opts)
			logger.Info("check finished", "elapsed", time.Since(start), "failures", len(report.Failures))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "seed %d: %s of %s trials passed\n",
				seed, humanize.Comma(int64(report.Passed)), humanize.Comma(int64(report.Trials)))

			if len(report.Failures) == 0 {
				color.New(color.FgGreen).Fprintln(w, "all properties hold")
				return nil
			}

			color.New(color.FgRed).Fprintf(w, "%d trials failed\n", len(report.Failures))
			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"trial", "properties", "values"})
			for i, f := range report.Failures {
				if i == maxFailureRows {
					break
				}
				tbl.AppendRow(table.Row{f.Trial, strings.Join(f.Properties, ", "), joinInts(f.Values)})
			}
			fmt.Fprintln(w, tbl.Render())

			return fmt.Errorf("%w: %d of %d trials", ErrCheckFailed, len(report.Failures), report.Trials)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&trials, "trials", 0, "number of random trees to check")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of goroutines")

	return cmd
}
