package providers

import (
	"context"
	"log/slog"
	"time"
)

// rateLimitedProvider wraps a ScheduleProvider and enforces a minimum
// interval between calls to respect upstream quotas.
type rateLimitedProvider struct {
	next     ScheduleProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a ScheduleProvider that limits calls to the
// given interval. Calls block until the interval elapses.
func NewRateLimitedProvider(next ScheduleProvider, interval time.Duration, logger *slog.Logger) ScheduleProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, date string) (Schedule, error) {
	if p == nil || p.next == nil {
		return Schedule{}, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return Schedule{}, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.FetchSchedule(ctx, date)
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
