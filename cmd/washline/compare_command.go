package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"washline/internal/bench"
	"washline/internal/logging"
	"washline/internal/metrics"
	"washline/internal/report"
)

func newCompareCommand(cctx *commandContext) *cobra.Command {
	var items int
	var seed int64
	var trials int
	var chartPath string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run both strategies and report the speedup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("items") {
				items = cfg.Simulation.ItemCount
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Simulation.Seed
			}
			if items < 0 {
				return fmt.Errorf("--items must not be negative")
			}
			if trials < 1 {
				return fmt.Errorf("--trials must be at least 1")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := bench.New(bench.Options{
				ItemCount:   items,
				Seed:        seed,
				Trials:      trials,
				LatencyMin:  cfg.LatencyMin(),
				LatencyMax:  cfg.LatencyMax(),
				PollTimeout: cfg.PollTimeout(),
				JoinTimeout: cfg.JoinTimeout(),
			}, logger)

			cmp, err := runner.Compare(ctx)
			if err != nil {
				return err
			}

			writer := report.NewWriter(cmd.OutOrStdout())
			writer.Comparison(cmp)

			if chartPath != "" {
				if err := report.WriteChart(chartPath, cmp); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote chart to %s\n", chartPath)
			}

			if !noHistory {
				all := make([]metrics.Run, 0, len(cmp.Sequential)+len(cmp.Pipeline))
				all = append(all, cmp.Sequential...)
				all = append(all, cmp.Pipeline...)
				recordRuns(ctx, cfg, logger, seed, all...)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 0, "Number of dishes per trial (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for dish generation and latency sampling (default from config)")
	cmd.Flags().IntVarP(&trials, "trials", "t", 1, "Trials per strategy")
	cmd.Flags().StringVar(&chartPath, "chart", "", "Write an HTML comparison chart to this path")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording the runs in the history database")
	return cmd
}
