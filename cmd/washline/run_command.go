package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"washline/internal/config"
	"washline/internal/dish"
	"washline/internal/history"
	"washline/internal/logging"
	"washline/internal/metrics"
	"washline/internal/pipeline"
	"washline/internal/report"
	"washline/internal/sequential"
)

func newRunCommand(cctx *commandContext) *cobra.Command {
	var strategy string
	var items int
	var seed int64
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the dishwashing workflow once with the chosen strategy",
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

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dishes := dish.Generate(items, seed)

			var run metrics.Run
			switch strategy {
			case "pipeline":
				coordinator := pipeline.New(pipeline.Config{
					PollTimeout: cfg.PollTimeout(),
					JoinTimeout: cfg.JoinTimeout(),
					LatencyMin:  cfg.LatencyMin(),
					LatencyMax:  cfg.LatencyMax(),
					Seed:        seed,
				}, logger)
				run, err = coordinator.Run(ctx, dishes)
			case "sequential":
				runner := sequential.New(sequential.Config{
					LatencyMin: cfg.LatencyMin(),
					LatencyMax: cfg.LatencyMax(),
					Seed:       seed,
				}, logger)
				run, err = runner.Run(ctx, dishes)
			default:
				return fmt.Errorf("unknown strategy %q (use pipeline or sequential)", strategy)
			}
			if err != nil {
				return err
			}

			writer := report.NewWriter(cmd.OutOrStdout())
			writer.Run(run)
			writer.KindBreakdown(dishes)

			if !noHistory {
				recordRuns(ctx, cfg, logger, seed, run)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "pipeline", "Execution strategy: pipeline or sequential")
	cmd.Flags().IntVarP(&items, "items", "n", 0, "Number of dishes to process (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for dish generation and latency sampling (default from config)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording the run in the history database")
	return cmd
}

// recordRuns appends runs to the history database. History is an archive,
// not a dependency of the benchmark itself, so failures are logged and
// swallowed.
func recordRuns(ctx context.Context, cfg *config.Config, logger *slog.Logger, seed int64, runs ...metrics.Run) {
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable; run not recorded", logging.Error(err))
		return
	}
	defer store.Close()

	session := history.NewSessionID()
	for _, run := range runs {
		if err := store.Record(ctx, history.NewRecord(session, seed, run)); err != nil {
			logger.Warn("failed to record run", logging.Error(err))
			return
		}
	}
}
