package harvest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	wp := NewWorkerPool(3, 0)
	wp.Start(context.Background())

	var ran atomic.Int64
	for i := 0; i < 20; i++ {
		err := wp.Submit(context.Background(), func(context.Context) error {
			ran.Add(1)
			return nil
		})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	wp.Close()

	if got := ran.Load(); got != 20 {
		t.Fatalf("ran %d jobs; want 20", got)
	}
}

func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	wp.Start(context.Background())
	wp.Close()

	err := wp.Submit(context.Background(), func(context.Context) error { return nil })
	if !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestWorkerPoolSubmitHonorsContext(t *testing.T) {
	// No workers are started, so the queue fills and the second submit
	// must bail out on the canceled context instead of blocking.
	wp := NewWorkerPool(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	if err := wp.Submit(ctx, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	cancel()
	err := wp.Submit(ctx, func(context.Context) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWorkerPoolCloseIsIdempotent(t *testing.T) {
	wp := NewWorkerPool(2, 2)
	wp.Start(context.Background())
	wp.Close()
	wp.Close()
}
