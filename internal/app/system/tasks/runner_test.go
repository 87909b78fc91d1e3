package tasks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRunOnce_RunsEveryJob(t *testing.T) {
	r := New(zap.NewNop())

	var first, second atomic.Int64
	r.Register(Job{
		Name:     "first",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			first.Add(1)
			return nil
		},
	})
	r.Register(Job{
		Name:     "second",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			second.Add(1)
			return nil
		},
	})

	r.RunOnce(context.Background())

	if first.Load() != 1 || second.Load() != 1 {
		t.Errorf("runs = %d/%d, want 1/1", first.Load(), second.Load())
	}
}

func TestStartAndStop(t *testing.T) {
	r := New(zap.NewNop())

	var runs atomic.Int64
	r.Register(Job{
		Name:     "counter",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	r.Start()
	r.Start() // second Start is a no-op

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if runs.Load() < 2 {
		t.Fatalf("runs = %d, want at least the startup run plus one tick", runs.Load())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	// No more runs after Stop.
	settled := runs.Load()
	time.Sleep(50 * time.Millisecond)
	if runs.Load() != settled {
		t.Errorf("job kept running after Stop: %d -> %d", settled, runs.Load())
	}
}

func TestStop_WithoutStart(t *testing.T) {
	r := New(zap.NewNop())
	if err := r.Stop(context.Background()); err != nil {
		t.Errorf("Stop() before Start error = %v, want nil", err)
	}
}
