package history

import (
	"time"

	"github.com/google/uuid"

	"washline/internal/metrics"
)

// Record is one benchmark run persisted in SQLite. SessionID groups the
// rows of a single comparison (one sequential run plus one pipeline run per
// trial share a session).
type Record struct {
	ID               string
	SessionID        string
	Strategy         string
	ItemCount        int
	Seed             int64
	ExecutionMS      float64
	Throughput       float64
	AvgDishMS        float64
	DishesDone       int
	AbandonedWorkers int
	CreatedAt        time.Time
}

// NewRecord builds a Record from a run summary.
func NewRecord(sessionID string, seed int64, run metrics.Run) *Record {
	return &Record{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		Strategy:         string(run.Strategy),
		ItemCount:        run.DishesIn,
		Seed:             seed,
		ExecutionMS:      float64(run.ExecutionTime) / float64(time.Millisecond),
		Throughput:       run.Throughput,
		AvgDishMS:        float64(run.AvgTimePerDish) / float64(time.Millisecond),
		DishesDone:       run.DishesDone,
		AbandonedWorkers: run.AbandonedWorkers,
		CreatedAt:        time.Now().UTC(),
	}
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}
