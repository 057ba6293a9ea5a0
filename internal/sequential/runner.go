// Package sequential implements the single-goroutine baseline: one worker
// carries each dish through all four stages before touching the next dish.
// It exists for comparative benchmarking against the concurrent pipeline
// and shares its metrics schema and latency simulation.
package sequential

import (
	"context"
	"log/slog"
	"time"

	"washline/internal/dish"
	"washline/internal/latency"
	"washline/internal/logging"
	"washline/internal/metrics"
)

// Config carries the timing knobs for a sequential run.
type Config struct {
	LatencyMin time.Duration
	LatencyMax time.Duration
	Seed       int64
}

// Runner processes dishes strictly one at a time.
type Runner struct {
	cfg    Config
	logger *slog.Logger
}

// New constructs a runner. A nil logger is replaced with a no-op one.
func New(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run carries every dish through pre-rinse, wash, dry, and store in order.
// The only error is ctx being cancelled between dishes; individual stage
// work cannot fail and is not interruptible, matching the pipeline's
// cooperative cancellation semantics.
func (r *Runner) Run(ctx context.Context, dishes []*dish.Dish) (metrics.Run, error) {
	start := time.Now()
	sampler := latency.NewSampler(r.cfg.LatencyMin, r.cfg.LatencyMax, r.cfg.Seed)
	r.logger.Info("sequential run started", logging.Int("dishes", len(dishes)))

	completed := 0
	for _, d := range dishes {
		if err := ctx.Err(); err != nil {
			return metrics.Compute(metrics.StrategySequential, len(dishes), completed, time.Since(start)), err
		}
		for status, ok := d.Status.Next(); ok; status, ok = d.Status.Next() {
			time.Sleep(sampler.Sample())
			d.Advance(status)
		}
		completed++
	}

	run := metrics.Compute(metrics.StrategySequential, len(dishes), completed, time.Since(start))
	r.logger.Info("sequential run finished",
		logging.Int("processed", run.DishesDone),
		logging.Duration("elapsed", run.ExecutionTime),
		logging.Float64("throughput", run.Throughput),
	)
	return run, nil
}
