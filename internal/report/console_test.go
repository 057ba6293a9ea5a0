package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"washline/internal/bench"
	"washline/internal/dish"
	"washline/internal/history"
	"washline/internal/metrics"
	"washline/internal/report"
)

func sampleComparison() bench.Comparison {
	seq := metrics.Compute(metrics.StrategySequential, 100, 100, 4*time.Second)
	pipe := metrics.Compute(metrics.StrategyPipeline, 100, 100, 2*time.Second)
	return bench.Comparison{
		Sequential:      []metrics.Run{seq},
		Pipeline:        []metrics.Run{pipe},
		SequentialStats: bench.TrialStats{MeanSeconds: 4, MinSeconds: 4, MaxSeconds: 4},
		PipelineStats:   bench.TrialStats{MeanSeconds: 2, MinSeconds: 2, MaxSeconds: 2},
		Speedup:         2,
	}
}

func TestRunTableContainsMetrics(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	w.Run(metrics.Compute(metrics.StrategyPipeline, 100, 100, 2*time.Second))

	out := buf.String()
	for _, want := range []string{"Pipeline", "Dishes processed", "100", "50.00 dishes/s", "Efficiency"} {
		if !strings.Contains(out, want) {
			t.Fatalf("run table missing %q:\n%s", want, out)
		}
	}
}

func TestRunTableReportsAbandonedWorkers(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	run := metrics.Compute(metrics.StrategyPipeline, 10, 10, time.Second)
	run.AbandonedWorkers = 1
	w.Run(run)

	if !strings.Contains(buf.String(), "Abandoned workers") {
		t.Fatalf("abandoned worker count not surfaced:\n%s", buf.String())
	}
}

func TestComparisonTableShowsSpeedup(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	w.Comparison(sampleComparison())

	out := buf.String()
	for _, want := range []string{"Sequential", "Pipeline", "Speedup: 2.00x"} {
		if !strings.Contains(out, want) {
			t.Fatalf("comparison output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryTableRendersRecords(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	w.History([]history.Record{
		{
			ID:          "a",
			Strategy:    "pipeline",
			ItemCount:   100,
			Seed:        42,
			ExecutionMS: 2000,
			Throughput:  50,
			DishesDone:  100,
			CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "b",
			Strategy:    "sequential",
			ItemCount:   100,
			Seed:        42,
			ExecutionMS: 4000,
			Throughput:  25,
			DishesDone:  100,
			CreatedAt:   time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC),
		},
	})

	out := buf.String()
	for _, want := range []string{"When", "pipeline", "sequential", "2000.0ms", "25.00/s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history table missing %q:\n%s", want, out)
		}
	}
}

func TestKindBreakdownTitleCasesKinds(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	w.KindBreakdown(dish.Generate(30, 42))

	out := buf.String()
	for _, want := range []string{"Plate", "Bowl", "Utensil"} {
		if !strings.Contains(out, want) {
			t.Fatalf("breakdown missing %q:\n%s", want, out)
		}
	}
}

func TestWriteChartProducesHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare.html")
	if err := report.WriteChart(path, sampleComparison()); err != nil {
		t.Fatalf("WriteChart failed: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !strings.Contains(string(content), "echarts") {
		t.Fatal("chart HTML does not reference echarts")
	}
}
