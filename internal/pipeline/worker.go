package pipeline

import (
	"context"
	"log/slog"
	"time"

	"washline/internal/dish"
	"washline/internal/latency"
	"washline/internal/logging"
)

// Output receives dishes leaving a stage: the next stage's queue, or the
// result sink for the final stage.
type Output interface {
	Receive(d *dish.Dish)
}

// Receive implements Output by enqueueing to the next stage.
func (q *StageQueue) Receive(d *dish.Dish) {
	q.Enqueue(d)
}

// StageWorker runs one washing stage. Every stage shares the same control
// loop, parameterized by its input queue, its output, and the status it
// advances dishes to.
type StageWorker struct {
	name        string
	in          *StageQueue
	out         Output
	target      dish.Status
	sampler     *latency.Sampler
	pollTimeout time.Duration
	logger      *slog.Logger
}

// NewStageWorker wires a worker to its queue, output, and target status.
func NewStageWorker(name string, in *StageQueue, out Output, target dish.Status, sampler *latency.Sampler, pollTimeout time.Duration, logger *slog.Logger) *StageWorker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StageWorker{
		name:        name,
		in:          in,
		out:         out,
		target:      target,
		sampler:     sampler,
		pollTimeout: pollTimeout,
		logger:      logger.With(logging.String("stage", name)),
	}
}

// Run polls the input queue until ctx is cancelled and the queue is empty.
// Cancellation is cooperative: it is only checked between dequeue attempts,
// never during the simulated processing sleep, and a worker never exits
// while its input queue still holds unacknowledged dishes. Processing
// cannot fail; the only exit condition is shutdown plus an empty queue.
func (w *StageWorker) Run(ctx context.Context) {
	w.logger.Debug("stage worker started")
	processed := 0
	for {
		d, ok := w.in.TryDequeue(w.pollTimeout)
		if !ok {
			if ctx.Err() != nil {
				w.logger.Debug("stage worker stopping", logging.Int("processed", processed))
				return
			}
			continue
		}

		time.Sleep(w.sampler.Sample())
		d.Advance(w.target)
		w.out.Receive(d)
		w.in.MarkDone()
		processed++
	}
}

// Name returns the stage label used in logs and reports.
func (w *StageWorker) Name() string {
	return w.name
}
