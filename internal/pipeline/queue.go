package pipeline

import (
	"context"
	"sync"
	"time"

	"washline/internal/dish"
)

// StageQueue is an unbounded FIFO hand-off between two stages with an
// explicit pending counter. Pending counts dishes that have been enqueued
// but not yet acknowledged via MarkDone, so Drain can tell when the
// consumer has fully finished with everything it was ever given, not just
// when the buffer is empty.
type StageQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buf     []*dish.Dish
	pending int
}

// NewStageQueue returns an empty queue.
func NewStageQueue() *StageQueue {
	q := &StageQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends d to the tail and increments the pending count. It never
// blocks; the queue trades unbounded memory for never stalling a producer.
func (q *StageQueue) Enqueue(d *dish.Dish) {
	q.mu.Lock()
	q.buf = append(q.buf, d)
	q.pending++
	q.mu.Unlock()
	q.cond.Broadcast()
}

// TryDequeue waits up to timeout for a dish and returns it, or (nil, false)
// when the queue stays empty. It does not touch the pending count; the
// consumer acknowledges separately with MarkDone once the work is finished.
func (q *StageQueue) TryDequeue(timeout time.Duration) (*dish.Dish, bool) {
	deadline := time.Now().Add(timeout)

	// sync.Cond has no timed wait; a one-shot timer broadcast unblocks
	// waiters so the deadline check below can run. The callback must take
	// the lock: an unlocked broadcast can fire between the deadline check
	// and cond.Wait registering, and a wakeup lost there never recurs.
	timer := time.AfterFunc(timeout, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	defer timer.Stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.buf) == 0 {
		if !time.Now().Before(deadline) {
			return nil, false
		}
		q.cond.Wait()
	}
	d := q.buf[0]
	q.buf = q.buf[1:]
	return d, true
}

// MarkDone acknowledges one previously dequeued dish. When the pending count
// reaches zero every Drain waiter is released. Calling MarkDone more times
// than Enqueue is a misuse and panics, like a negative sync.WaitGroup.
func (q *StageQueue) MarkDone() {
	q.mu.Lock()
	if q.pending <= 0 {
		q.mu.Unlock()
		panic("pipeline: MarkDone called with no pending dishes")
	}
	q.pending--
	done := q.pending == 0
	q.mu.Unlock()
	if done {
		q.cond.Broadcast()
	}
}

// Drain blocks until every dish ever enqueued has been dequeued and
// acknowledged, or until ctx is done. It is safe to call while the upstream
// producer is still live; the coordinator's drain protocol guarantees the
// feed into this queue has stopped by the time Drain is invoked.
func (q *StageQueue) Drain(ctx context.Context) error {
	// Locked for the same reason as the TryDequeue timer: the broadcast
	// must be ordered with the waiter's check-then-Wait.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for q.pending != 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.cond.Wait()
	}
	return nil
}

// Pending reports the number of unacknowledged dishes.
func (q *StageQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}

// Len reports the number of buffered dishes awaiting dequeue.
func (q *StageQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}
