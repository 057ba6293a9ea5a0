package pipeline

import (
	"sync"

	"washline/internal/dish"
)

// ResultSink collects dishes leaving the final stage. Appends are
// serialized so the sink stays correct if a stage ever grows more than one
// worker.
type ResultSink struct {
	mu     sync.Mutex
	dishes []*dish.Dish
}

// NewResultSink returns an empty sink.
func NewResultSink() *ResultSink {
	return &ResultSink{}
}

// Append records a completed dish. The dish must not be mutated afterwards.
func (s *ResultSink) Append(d *dish.Dish) {
	s.mu.Lock()
	s.dishes = append(s.dishes, d)
	s.mu.Unlock()
}

// Receive implements Output so the sink can terminate the stage chain.
func (s *ResultSink) Receive(d *dish.Dish) {
	s.Append(d)
}

// Size returns the number of collected dishes. The value is only meaningful
// once all workers have been joined.
func (s *ResultSink) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dishes)
}

// Dishes returns the collected dishes in completion order.
func (s *ResultSink) Dishes() []*dish.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]*dish.Dish, len(s.dishes))
	copy(cp, s.dishes)
	return cp
}
