// internal/app/system/tasks/runner.go

// Package tasks runs periodic background maintenance jobs (expired session
// sweeps, stats and audit retention) on simple tickers.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a named periodic task.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner executes registered jobs on their intervals. Each job runs once at
// startup and then on every tick.
type Runner struct {
	logger *zap.Logger
	jobs   []Job

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a runner.
func New(logger *zap.Logger) *Runner {
	return &Runner{logger: logger}
}

// Register adds a job. Must be called before Start.
func (r *Runner) Register(job Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
}

// Start launches one goroutine per registered job. Calling Start twice is
// a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for _, job := range r.jobs {
		r.wg.Add(1)
		go r.loop(ctx, job)
	}

	r.logger.Info("background task runner started", zap.Int("jobs", len(r.jobs)))
}

func (r *Runner) loop(ctx context.Context, job Job) {
	defer r.wg.Done()

	r.runJob(ctx, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runJob(ctx, job)
		}
	}
}

func (r *Runner) runJob(ctx context.Context, job Job) {
	if err := job.Run(ctx); err != nil {
		r.logger.Warn("background job failed",
			zap.String("job", job.Name),
			zap.Error(err))
	}
}

// Stop cancels all jobs and waits for them to finish, bounded by ctx.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	r.cancel()
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("background jobs still running at shutdown deadline")
	}
}

// RunOnce runs every registered job a single time. Test helper.
func (r *Runner) RunOnce(ctx context.Context) {
	r.mu.Lock()
	jobs := make([]Job, len(r.jobs))
	copy(jobs, r.jobs)
	r.mu.Unlock()

	for _, job := range jobs {
		r.runJob(ctx, job)
	}
}
