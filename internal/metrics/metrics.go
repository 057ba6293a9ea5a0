// Package metrics defines the run summary shared by the sequential and
// pipeline strategies and the comparison arithmetic built on top of it.
package metrics

import "time"

// Strategy names the execution strategy that produced a run.
type Strategy string

const (
	StrategySequential Strategy = "sequential"
	StrategyPipeline   Strategy = "pipeline"
)

// Run captures the outcome of one benchmark run.
type Run struct {
	Strategy       Strategy
	ExecutionTime  time.Duration
	Throughput     float64 // dishes per second
	AvgTimePerDish time.Duration
	DishesDone     int
	DishesIn       int
	Efficiency     float64 // done / submitted

	// AbandonedWorkers counts stage workers that failed to exit within the
	// join timeout. Nonzero values indicate a leaked goroutine, not lost
	// dishes; they are reported rather than silently tolerated.
	AbandonedWorkers int
}

// Compute derives a Run from raw counters. A zero completed count produces
// zero throughput and average rather than dividing by zero.
func Compute(strategy Strategy, submitted, completed int, elapsed time.Duration) Run {
	run := Run{
		Strategy:      strategy,
		ExecutionTime: elapsed,
		DishesDone:    completed,
		DishesIn:      submitted,
	}
	if completed > 0 && elapsed > 0 {
		run.Throughput = float64(completed) / elapsed.Seconds()
		run.AvgTimePerDish = elapsed / time.Duration(completed)
	}
	if submitted > 0 {
		run.Efficiency = float64(completed) / float64(submitted)
	}
	return run
}

// Speedup returns sequential execution time divided by parallel execution
// time, the conventional ratio for comparing the two strategies. It returns
// zero when the parallel time is zero.
func Speedup(sequential, parallel Run) float64 {
	if parallel.ExecutionTime <= 0 {
		return 0
	}
	return sequential.ExecutionTime.Seconds() / parallel.ExecutionTime.Seconds()
}
