package pipeline_test

import (
	"context"
	"testing"
	"time"

	"washline/internal/dish"
	"washline/internal/metrics"
	"washline/internal/pipeline"
)

func testPipelineConfig() pipeline.Config {
	return pipeline.Config{
		PollTimeout: 5 * time.Millisecond,
		JoinTimeout: time.Second,
		LatencyMin:  50 * time.Microsecond,
		LatencyMax:  150 * time.Microsecond,
		Seed:        42,
	}
}

func TestRunProcessesEveryDish(t *testing.T) {
	dishes := dish.Generate(200, 42)
	coord := pipeline.New(testPipelineConfig(), nil)

	run, err := coord.Run(context.Background(), dishes)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if run.Strategy != metrics.StrategyPipeline {
		t.Fatalf("strategy = %q", run.Strategy)
	}
	if run.DishesDone != 200 || run.DishesIn != 200 {
		t.Fatalf("counts: done=%d in=%d, want 200/200", run.DishesDone, run.DishesIn)
	}
	if run.Efficiency != 1 {
		t.Fatalf("efficiency = %f, want 1", run.Efficiency)
	}
	for _, d := range dishes {
		if d.Status != dish.StatusStored {
			t.Fatalf("dish %d ended in status %q", d.ID, d.Status)
		}
	}
}

func TestRunNeverLosesOrDuplicatesDishes(t *testing.T) {
	// Core regression property for the drain/shutdown protocol: repeated
	// concurrent runs must account for every dish exactly once.
	coord := pipeline.New(testPipelineConfig(), nil)
	for round := 0; round < 5; round++ {
		dishes := dish.Generate(150, int64(round))
		run, err := coord.Run(context.Background(), dishes)
		if err != nil {
			t.Fatalf("round %d: Run failed: %v", round, err)
		}
		if run.DishesDone != len(dishes) {
			t.Fatalf("round %d: processed %d of %d", round, run.DishesDone, len(dishes))
		}
		seen := make(map[int64]bool, len(dishes))
		for _, d := range dishes {
			if seen[d.ID] {
				t.Fatalf("round %d: dish %d duplicated", round, d.ID)
			}
			seen[d.ID] = true
		}
	}
}

func TestRunZeroDishes(t *testing.T) {
	coord := pipeline.New(testPipelineConfig(), nil)
	run, err := coord.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if run.DishesDone != 0 || run.Throughput != 0 || run.AvgTimePerDish != 0 {
		t.Fatalf("zero-dish run should report zeros: %+v", run)
	}
}

func TestRunSingleDish(t *testing.T) {
	dishes := dish.Generate(1, 1)
	coord := pipeline.New(testPipelineConfig(), nil)
	run, err := coord.Run(context.Background(), dishes)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if run.DishesDone != 1 {
		t.Fatalf("processed %d, want 1", run.DishesDone)
	}
	if dishes[0].Status != dish.StatusStored {
		t.Fatalf("dish status %q, want stored", dishes[0].Status)
	}
	if run.Throughput <= 0 {
		t.Fatalf("throughput = %f, want positive", run.Throughput)
	}
}

func TestRunReportsExternalCancellation(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.LatencyMin = 20 * time.Millisecond
	cfg.LatencyMax = 40 * time.Millisecond
	coord := pipeline.New(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	dishes := dish.Generate(50, 42)
	if _, err := coord.Run(ctx, dishes); err == nil {
		t.Fatal("expected error when run context is cancelled mid-flight")
	}
}

func TestStageNames(t *testing.T) {
	names := pipeline.StageNames()
	want := []string{"pre-rinse", "wash", "dry", "store"}
	if len(names) != len(want) {
		t.Fatalf("got %d stage names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("stage %d: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestSinkSerializesAppends(t *testing.T) {
	sink := pipeline.NewResultSink()
	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func(base int64) {
			for i := int64(0); i < 100; i++ {
				sink.Append(newDish(base*100 + i))
			}
			done <- struct{}{}
		}(int64(g))
	}
	for g := 0; g < 4; g++ {
		<-done
	}
	if sink.Size() != 400 {
		t.Fatalf("sink size = %d, want 400", sink.Size())
	}
	if got := len(sink.Dishes()); got != 400 {
		t.Fatalf("Dishes() returned %d entries, want 400", got)
	}
}
