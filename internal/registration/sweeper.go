package registration

import (
	"context"
	"log/slog"
	"time"

	"disha/internal/platform/metrics"
	"disha/pkg/requestcontext"
)

// Sweeper periodically removes expired pending registrations so abandoned
// intakes do not grow memory without bound. It only ever touches records
// through the store's atomic DeleteExpired, so racing an in-flight
// verification at worst surfaces NotFound to that request.
type Sweeper struct {
	store    PendingStore
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewSweeper(store PendingStore, interval time.Duration, logger *slog.Logger, metrics *metrics.Metrics) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{store: store, interval: interval, logger: logger, metrics: metrics}
}

// Run sweeps on a fixed interval until the context is canceled.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.sweep(requestcontext.WithTime(ctx, now))
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.store.DeleteExpired(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "pending registration sweep failed", "error", err)
		return
	}
	if removed > 0 {
		if s.metrics != nil {
			s.metrics.PendingSwept.Add(float64(removed))
		}
		s.logger.DebugContext(ctx, "swept expired pending registrations", "removed", removed)
	}
}
