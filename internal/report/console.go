package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"washline/internal/bench"
	"washline/internal/dish"
	"washline/internal/history"
	"washline/internal/metrics"
)

var titleCaser = cases.Title(language.Und)

// Writer renders benchmark results as console tables.
type Writer struct {
	out   io.Writer
	style table.Style
}

// NewWriter builds a report writer. Rounded borders are used on terminals;
// piped output falls back to the plain style.
func NewWriter(out io.Writer) *Writer {
	style := table.StyleDefault
	if isTerminal(out) {
		style = table.StyleRounded
	}
	return &Writer{out: out, style: style}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run prints the summary table for a single run.
func (w *Writer) Run(run metrics.Run) {
	tw := w.newTable()
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Strategy", titleCaser.String(string(run.Strategy))},
		{"Dishes submitted", run.DishesIn},
		{"Dishes processed", run.DishesDone},
		{"Execution time", formatDuration(run.ExecutionTime)},
		{"Throughput", fmt.Sprintf("%.2f dishes/s", run.Throughput)},
		{"Avg time per dish", formatDuration(run.AvgTimePerDish)},
		{"Efficiency", fmt.Sprintf("%.1f%%", run.Efficiency*100)},
	})
	if run.AbandonedWorkers > 0 {
		tw.AppendRow(table.Row{"Abandoned workers", run.AbandonedWorkers})
	}
	fmt.Fprintln(w.out, tw.Render())
}

// Comparison prints per-strategy aggregates and the speedup ratio.
func (w *Writer) Comparison(cmp bench.Comparison) {
	tw := w.newTable()
	tw.AppendHeader(table.Row{"Strategy", "Trials", "Mean", "Std Dev", "Min", "Max"})
	tw.AppendRows([]table.Row{
		comparisonRow("Sequential", len(cmp.Sequential), cmp.SequentialStats),
		comparisonRow("Pipeline", len(cmp.Pipeline), cmp.PipelineStats),
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	fmt.Fprintln(w.out, tw.Render())
	fmt.Fprintf(w.out, "Speedup: %.2fx\n", cmp.Speedup)
}

// History prints recorded runs, one row per run, in the order given.
func (w *Writer) History(records []history.Record) {
	tw := w.newTable()
	tw.AppendHeader(table.Row{"When", "Strategy", "Items", "Seed", "Time", "Throughput", "Done"})
	for _, rec := range records {
		tw.AppendRow(table.Row{
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.Strategy,
			rec.ItemCount,
			rec.Seed,
			fmt.Sprintf("%.1fms", rec.ExecutionMS),
			fmt.Sprintf("%.2f/s", rec.Throughput),
			rec.DishesDone,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	fmt.Fprintln(w.out, tw.Render())
}

// KindBreakdown prints how many dishes of each kind a workload contains.
func (w *Writer) KindBreakdown(dishes []*dish.Dish) {
	counts := make(map[dish.Kind]int, len(dish.AllKinds()))
	for _, d := range dishes {
		counts[d.Kind]++
	}

	tw := w.newTable()
	tw.AppendHeader(table.Row{"Kind", "Count"})
	for _, kind := range dish.AllKinds() {
		tw.AppendRow(table.Row{titleCaser.String(string(kind)), counts[kind]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	fmt.Fprintln(w.out, tw.Render())
}

func (w *Writer) newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(w.style)
	return tw
}

func comparisonRow(label string, trials int, stats bench.TrialStats) table.Row {
	return table.Row{
		label,
		trials,
		formatSeconds(stats.MeanSeconds),
		formatSeconds(stats.StdDevSeconds),
		formatSeconds(stats.MinSeconds),
		formatSeconds(stats.MaxSeconds),
	}
}

func formatSeconds(seconds float64) string {
	return formatDuration(time.Duration(seconds * float64(time.Second)))
}

func formatDuration(d time.Duration) string {
	return d.Truncate(time.Microsecond).String()
}
