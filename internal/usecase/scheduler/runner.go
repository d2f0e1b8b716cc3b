package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lounge-pos/internal/pkg/clock"
)

// Runner owns the reservation ticker. Start launches the loop once; Stop
// cancels it and waits for the goroutine to exit.
type Runner struct {
	starter  *AutoStarter
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(starter *AutoStarter, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		starter:  starter,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		r.Run(ctx, ticker.C)
	}(r.done)

	r.logger.Info("reservation scheduler started", "interval", r.interval)
}

// Stop is safe to call when the runner was never started.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		r.logger.Info("reservation scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes ticks until ctx is cancelled. A failed tick is logged and the
// loop keeps going.
func (r *Runner) Run(ctx context.Context, tick <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			if _, err := r.starter.Tick(ctx, r.clock.Now()); err != nil {
				if ctx.Err() != nil {
					return
				}
				r.logger.Error("reservation tick failed", "error", err.Error())
			}
		}
	}
}
