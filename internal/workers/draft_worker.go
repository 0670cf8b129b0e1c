package workers

import (
	"context"
	"time"

	"artbook_backend/internal/logger"
)

// Sweeper discards wizard sessions idle for longer than ttl.
type Sweeper interface {
	SweepIdle(ctx context.Context, ttl time.Duration) int
}

// DraftWorker periodically evicts abandoned onboarding drafts.
type DraftWorker struct {
	sweeper  Sweeper
	ttl      time.Duration
	interval time.Duration
}

func NewDraftWorker(sweeper Sweeper, ttl, interval time.Duration) *DraftWorker {
	return &DraftWorker{
		sweeper:  sweeper,
		ttl:      ttl,
		interval: interval,
	}
}

// Run sweeps every interval until ctx is done.
func (w *DraftWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Draft worker started", "ttl", w.ttl, "interval", w.interval)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Draft worker stopped")
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *DraftWorker) sweep(ctx context.Context) {
	if n := w.sweeper.SweepIdle(ctx, w.ttl); n > 0 {
		logger.WorkerLog("draft_worker", "sweep", nil, "evicted", n)
	}
}
