package pipeline_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"washline/internal/dish"
	"washline/internal/pipeline"
)

func newDish(id int64) *dish.Dish {
	return &dish.Dish{ID: id, Kind: dish.KindPlate, Status: dish.StatusDirty}
}

func TestQueuePreservesFIFOOrder(t *testing.T) {
	q := pipeline.NewStageQueue()
	for i := int64(1); i <= 5; i++ {
		q.Enqueue(newDish(i))
	}
	for i := int64(1); i <= 5; i++ {
		d, ok := q.TryDequeue(time.Second)
		if !ok {
			t.Fatalf("dequeue %d: queue unexpectedly empty", i)
		}
		if d.ID != i {
			t.Fatalf("dequeue order broken: got %d, want %d", d.ID, i)
		}
		q.MarkDone()
	}
	if q.Pending() != 0 {
		t.Fatalf("pending = %d after acknowledging everything", q.Pending())
	}
}

func TestTryDequeueTimesOutOnEmptyQueue(t *testing.T) {
	q := pipeline.NewStageQueue()
	start := time.Now()
	d, ok := q.TryDequeue(20 * time.Millisecond)
	if ok || d != nil {
		t.Fatalf("expected timeout, got %v", d)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("returned after %v, before the timeout", elapsed)
	}
}

func TestTryDequeueWakesOnEnqueue(t *testing.T) {
	q := pipeline.NewStageQueue()
	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Enqueue(newDish(1))
	}()
	d, ok := q.TryDequeue(5 * time.Second)
	if !ok || d == nil || d.ID != 1 {
		t.Fatalf("expected dish 1, got %v (ok=%v)", d, ok)
	}
}

func TestTryDequeueAlwaysReturnsUnderTinyTimeouts(t *testing.T) {
	// The timed wait must return even when the timer fires in the window
	// between the waiter's deadline check and cond.Wait registering; a
	// wakeup dropped there is never re-delivered on an idle queue.
	q := pipeline.NewStageQueue()

	var wg sync.WaitGroup
	for g := 0; g < 64; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 500; i++ {
				timeout := time.Duration(rng.Intn(50)+1) * time.Microsecond
				if d, ok := q.TryDequeue(timeout); ok {
					t.Errorf("dequeued %v from an empty queue", d)
					return
				}
			}
		}(int64(g))
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("timed dequeues did not all return; a waiter is stuck in Wait")
	}
}

func TestDrainAlwaysReturnsUnderTinyDeadlines(t *testing.T) {
	q := pipeline.NewStageQueue()
	q.Enqueue(newDish(1)) // pending never reaches zero

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(i%50+1)*time.Microsecond)
			err := q.Drain(ctx)
			cancel()
			if err == nil {
				t.Error("drain returned nil with a dish still pending")
				return
			}
		}
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("drain did not return by its context deadline")
	}
}

func TestDrainWaitsForMarkDone(t *testing.T) {
	q := pipeline.NewStageQueue()
	q.Enqueue(newDish(1))

	drained := make(chan error, 1)
	go func() {
		drained <- q.Drain(context.Background())
	}()

	// Dequeue alone must not release the drain; only MarkDone does.
	if _, ok := q.TryDequeue(time.Second); !ok {
		t.Fatal("dequeue failed")
	}
	select {
	case <-drained:
		t.Fatal("drain returned before MarkDone")
	case <-time.After(20 * time.Millisecond):
	}

	q.MarkDone()
	select {
	case err := <-drained:
		if err != nil {
			t.Fatalf("drain returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("drain did not return after MarkDone")
	}
}

func TestDrainReturnsImmediatelyWhenIdle(t *testing.T) {
	q := pipeline.NewStageQueue()
	if err := q.Drain(context.Background()); err != nil {
		t.Fatalf("drain on idle queue: %v", err)
	}
}

func TestDrainHonorsContextCancellation(t *testing.T) {
	q := pipeline.NewStageQueue()
	q.Enqueue(newDish(1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.Drain(ctx); err == nil {
		t.Fatal("expected context error from drain")
	}
}

func TestMarkDoneWithoutEnqueuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from unmatched MarkDone")
		}
	}()
	pipeline.NewStageQueue().MarkDone()
}

func TestPendingCountsUnacknowledgedDishes(t *testing.T) {
	q := pipeline.NewStageQueue()
	q.Enqueue(newDish(1))
	q.Enqueue(newDish(2))
	if q.Pending() != 2 || q.Len() != 2 {
		t.Fatalf("pending=%d len=%d, want 2/2", q.Pending(), q.Len())
	}
	if _, ok := q.TryDequeue(time.Second); !ok {
		t.Fatal("dequeue failed")
	}
	if q.Pending() != 2 || q.Len() != 1 {
		t.Fatalf("after dequeue: pending=%d len=%d, want 2/1", q.Pending(), q.Len())
	}
	q.MarkDone()
	if q.Pending() != 1 {
		t.Fatalf("after MarkDone: pending=%d, want 1", q.Pending())
	}
}
