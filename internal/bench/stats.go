package bench

import (
	"gonum.org/v1/gonum/stat"

	"washline/internal/metrics"
)

// TrialStats aggregates execution times across trials of one strategy.
type TrialStats struct {
	MeanSeconds   float64
	StdDevSeconds float64
	MinSeconds    float64
	MaxSeconds    float64
}

func newTrialStats(runs []metrics.Run) TrialStats {
	if len(runs) == 0 {
		return TrialStats{}
	}
	seconds := make([]float64, 0, len(runs))
	for _, run := range runs {
		seconds = append(seconds, run.ExecutionTime.Seconds())
	}

	stats := TrialStats{
		MeanSeconds: stat.Mean(seconds, nil),
		MinSeconds:  seconds[0],
		MaxSeconds:  seconds[0],
	}
	if len(seconds) > 1 {
		stats.StdDevSeconds = stat.StdDev(seconds, nil)
	}
	for _, s := range seconds[1:] {
		if s < stats.MinSeconds {
			stats.MinSeconds = s
		}
		if s > stats.MaxSeconds {
			stats.MaxSeconds = s
		}
	}
	return stats
}
