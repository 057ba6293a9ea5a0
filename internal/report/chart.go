package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"washline/internal/bench"
	"washline/internal/metrics"
)

// WriteChart renders the comparison as a standalone HTML bar chart: one bar
// per trial and strategy, execution time in seconds on the y axis.
func WriteChart(path string, cmp bench.Comparison) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sequential vs pipeline execution time",
			Subtitle: fmt.Sprintf("speedup %.2fx", cmp.Speedup),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "trial"}),
	)

	trials := len(cmp.Sequential)
	if t := len(cmp.Pipeline); t > trials {
		trials = t
	}
	labels := make([]string, 0, trials)
	for i := 0; i < trials; i++ {
		labels = append(labels, fmt.Sprintf("trial %d", i+1))
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Sequential", barData(cmp.Sequential))
	bar.AddSeries("Pipeline", barData(cmp.Pipeline))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	if err := bar.Render(file); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func barData(runs []metrics.Run) []opts.BarData {
	data := make([]opts.BarData, 0, len(runs))
	for _, run := range runs {
		data = append(data, opts.BarData{Value: run.ExecutionTime.Seconds()})
	}
	return data
}
