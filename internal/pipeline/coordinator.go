package pipeline

import (
	"context"
	"log/slog"
	"time"

	"washline/internal/dish"
	"washline/internal/latency"
	"washline/internal/logging"
	"washline/internal/metrics"
)

// StageCount is the number of washing stages. One persistent worker runs
// per stage; the count is structural, not tunable.
const StageCount = 4

type stageSpec struct {
	name   string
	target dish.Status
}

var stageSpecs = [StageCount]stageSpec{
	{name: "pre-rinse", target: dish.StatusPreRinsed},
	{name: "wash", target: dish.StatusWashed},
	{name: "dry", target: dish.StatusDried},
	{name: "store", target: dish.StatusStored},
}

// StageNames returns the stage labels in processing order.
func StageNames() []string {
	names := make([]string, 0, StageCount)
	for _, spec := range stageSpecs {
		names = append(names, spec.name)
	}
	return names
}

// Config carries the timing knobs for a pipeline run.
type Config struct {
	// PollTimeout bounds each TryDequeue attempt; on expiry the worker
	// checks for shutdown and polls again.
	PollTimeout time.Duration
	// JoinTimeout bounds the wait for each worker to exit after shutdown.
	JoinTimeout time.Duration
	// LatencyMin and LatencyMax bound the simulated per-stage processing
	// cost.
	LatencyMin time.Duration
	LatencyMax time.Duration
	// Seed derives the per-worker latency samplers; a fixed seed
	// reproduces the latency sequence of every stage.
	Seed int64
}

// Coordinator runs the four-stage pipeline: it spawns the stage workers,
// feeds dishes into the first queue, waits on the drain barriers in stage
// order, signals shutdown, joins the workers, and computes run metrics.
type Coordinator struct {
	cfg    Config
	logger *slog.Logger
}

// New constructs a coordinator. A nil logger is replaced with a no-op one.
func New(cfg Config, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Coordinator{cfg: cfg, logger: logger}
}

// Run processes every dish through all four stages and returns the run
// summary. There is no item-level failure path; the only error is ctx being
// cancelled from outside while the pipeline is mid-run, in which case the
// summary reflects whatever completed before the cancellation.
//
// The drain calls happen strictly in stage order. Draining queue N only
// proves worker N has acknowledged everything it was fed, not that
// downstream stages are finished, so each later drain is required before
// shutdown may be signalled.
func (c *Coordinator) Run(ctx context.Context, dishes []*dish.Dish) (metrics.Run, error) {
	start := time.Now()

	queues := make([]*StageQueue, StageCount)
	for i := range queues {
		queues[i] = NewStageQueue()
	}
	sink := NewResultSink()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := make([]*StageWorker, StageCount)
	exited := make([]chan struct{}, StageCount)
	for i, spec := range stageSpecs {
		var out Output = sink
		if i < StageCount-1 {
			out = queues[i+1]
		}
		sampler := latency.NewSampler(c.cfg.LatencyMin, c.cfg.LatencyMax, c.cfg.Seed+int64(i)+1)
		workers[i] = NewStageWorker(spec.name, queues[i], out, spec.target, sampler, c.cfg.PollTimeout, c.logger)
	}

	for i, w := range workers {
		done := make(chan struct{})
		exited[i] = done
		go func(w *StageWorker, done chan struct{}) {
			defer close(done)
			w.Run(runCtx)
		}(w, done)
	}
	c.logger.Info("pipeline started",
		logging.Int("dishes", len(dishes)),
		logging.Int("workers", StageCount),
	)

	for _, d := range dishes {
		queues[0].Enqueue(d)
	}

	for i, q := range queues {
		if err := q.Drain(ctx); err != nil {
			cancel()
			run := metrics.Compute(metrics.StrategyPipeline, len(dishes), sink.Size(), time.Since(start))
			return run, err
		}
		c.logger.Debug("stage drained", logging.String("stage", stageSpecs[i].name))
	}

	cancel()
	abandoned := c.joinWorkers(workers, exited)

	run := metrics.Compute(metrics.StrategyPipeline, len(dishes), sink.Size(), time.Since(start))
	run.AbandonedWorkers = abandoned
	c.logger.Info("pipeline finished",
		logging.Int("processed", run.DishesDone),
		logging.Duration("elapsed", run.ExecutionTime),
		logging.Float64("throughput", run.Throughput),
	)
	return run, nil
}

// joinWorkers waits for every worker to exit, bounded by one shared join
// deadline. A worker that misses the deadline is abandoned and reported;
// any dish it holds was already handed downstream before its input queue
// drained, so nothing is lost, but the leaked goroutine is still an anomaly
// worth surfacing.
func (c *Coordinator) joinWorkers(workers []*StageWorker, exited []chan struct{}) int {
	deadline := time.Now().Add(c.cfg.JoinTimeout)
	abandoned := 0
	for i, done := range exited {
		wait := time.Until(deadline)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-done:
		case <-time.After(wait):
			abandoned++
			c.logger.Warn("stage worker did not exit within join timeout; abandoning",
				logging.String("stage", workers[i].Name()),
				logging.Duration("timeout", c.cfg.JoinTimeout),
			)
		}
	}
	return abandoned
}
