// Package bench drives comparative benchmarks: it runs the sequential
// baseline and the concurrent pipeline on identically seeded workloads,
// computes the speedup ratio, and aggregates multi-trial statistics.
package bench

import (
	"context"
	"log/slog"
	"time"

	"washline/internal/dish"
	"washline/internal/logging"
	"washline/internal/metrics"
	"washline/internal/pipeline"
	"washline/internal/sequential"
)

// Options configures a comparison.
type Options struct {
	ItemCount   int
	Seed        int64
	Trials      int // defaults to 1
	LatencyMin  time.Duration
	LatencyMax  time.Duration
	PollTimeout time.Duration
	JoinTimeout time.Duration
}

// Comparison holds the per-trial results of both strategies plus aggregate
// statistics over execution times.
type Comparison struct {
	Sequential []metrics.Run
	Pipeline   []metrics.Run

	SequentialStats TrialStats
	PipelineStats   TrialStats

	// Speedup is mean sequential execution time over mean pipeline
	// execution time.
	Speedup float64
}

// Runner executes comparisons.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// New constructs a benchmark runner. A nil logger is replaced with a no-op
// one.
func New(opts Options, logger *slog.Logger) *Runner {
	if opts.Trials <= 0 {
		opts.Trials = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{opts: opts, logger: logger}
}

// Compare runs both strategies opts.Trials times. Each trial regenerates
// the workload from the same seed, so both strategies always see identical
// dishes.
func (r *Runner) Compare(ctx context.Context) (Comparison, error) {
	var cmp Comparison

	seqRunner := sequential.New(sequential.Config{
		LatencyMin: r.opts.LatencyMin,
		LatencyMax: r.opts.LatencyMax,
		Seed:       r.opts.Seed,
	}, r.logger)
	coordinator := pipeline.New(pipeline.Config{
		PollTimeout: r.opts.PollTimeout,
		JoinTimeout: r.opts.JoinTimeout,
		LatencyMin:  r.opts.LatencyMin,
		LatencyMax:  r.opts.LatencyMax,
		Seed:        r.opts.Seed,
	}, r.logger)

	for trial := 0; trial < r.opts.Trials; trial++ {
		r.logger.Info("benchmark trial started",
			logging.Int("trial", trial+1),
			logging.Int("trials", r.opts.Trials),
			logging.Int("dishes", r.opts.ItemCount),
		)

		seqRun, err := seqRunner.Run(ctx, dish.Generate(r.opts.ItemCount, r.opts.Seed))
		if err != nil {
			return cmp, err
		}
		pipeRun, err := coordinator.Run(ctx, dish.Generate(r.opts.ItemCount, r.opts.Seed))
		if err != nil {
			return cmp, err
		}

		cmp.Sequential = append(cmp.Sequential, seqRun)
		cmp.Pipeline = append(cmp.Pipeline, pipeRun)
	}

	cmp.SequentialStats = newTrialStats(cmp.Sequential)
	cmp.PipelineStats = newTrialStats(cmp.Pipeline)
	if cmp.PipelineStats.MeanSeconds > 0 {
		cmp.Speedup = cmp.SequentialStats.MeanSeconds / cmp.PipelineStats.MeanSeconds
	}

	r.logger.Info("benchmark finished",
		logging.Int("trials", r.opts.Trials),
		logging.Float64("speedup", cmp.Speedup),
	)
	return cmp, nil
}
