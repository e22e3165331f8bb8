package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/khmm12/cluster-port-checker/internal/common/logging"
	"github.com/khmm12/cluster-port-checker/internal/common/tracing"
)

type Task interface {
	Execute(ctx context.Context) error
}

type TaskFunc func(ctx context.Context) error

func (f TaskFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Worker runs a task right away and then on every interval tick until it is
// shut down or its parent context is done.
type Worker struct {
	logger *slog.Logger

	interval time.Duration
	task     Task

	mu      sync.Mutex
	running sync.Mutex
	cancel  context.CancelFunc
}

func NewWorker(logger *slog.Logger, interval time.Duration, task Task) *Worker {
	return &Worker{
		logger:   logger,
		interval: interval,
		task:     task,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("worker interval must be greater than zero")
	}

	if !w.running.TryLock() {
		return fmt.Errorf("worker is already running")
	}

	defer w.running.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *Worker) Shutdown(_ context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}

	return nil
}

func (w *Worker) run(ctx context.Context) {
	ctx = tracing.WithTraceID(ctx)
	now := time.Now()

	err := w.task.Execute(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		w.logger.ErrorContext(ctx, "Failed to execute task", logging.Error(err), slog.Duration("duration", time.Since(now)))
		return
	}

	w.logger.DebugContext(ctx, "Finished task", slog.Duration("duration", time.Since(now)))
}
