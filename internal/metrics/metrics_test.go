package metrics_test

import (
	"math"
	"testing"
	"time"

	"washline/internal/metrics"
)

func TestComputePopulatesRates(t *testing.T) {
	run := metrics.Compute(metrics.StrategyPipeline, 100, 100, 2*time.Second)
	if run.DishesDone != 100 || run.DishesIn != 100 {
		t.Fatalf("unexpected counts: %+v", run)
	}
	if math.Abs(run.Throughput-50) > 1e-9 {
		t.Fatalf("throughput = %f, want 50", run.Throughput)
	}
	if run.AvgTimePerDish != 20*time.Millisecond {
		t.Fatalf("avg per dish = %v, want 20ms", run.AvgTimePerDish)
	}
	if run.Efficiency != 1 {
		t.Fatalf("efficiency = %f, want 1", run.Efficiency)
	}
}

func TestComputeZeroDishesDoesNotDivide(t *testing.T) {
	run := metrics.Compute(metrics.StrategySequential, 0, 0, 0)
	if run.Throughput != 0 || run.AvgTimePerDish != 0 || run.Efficiency != 0 {
		t.Fatalf("zero-input run should have zero rates: %+v", run)
	}
}

func TestSpeedup(t *testing.T) {
	seq := metrics.Compute(metrics.StrategySequential, 10, 10, 4*time.Second)
	par := metrics.Compute(metrics.StrategyPipeline, 10, 10, 2*time.Second)
	if got := metrics.Speedup(seq, par); math.Abs(got-2) > 1e-9 {
		t.Fatalf("speedup = %f, want 2", got)
	}
	if got := metrics.Speedup(seq, metrics.Run{}); got != 0 {
		t.Fatalf("speedup against zero time = %f, want 0", got)
	}
}
