package testutil

import (
	"context"

	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/scoreboard"
)

// GoodProvider returns the provided schedule with no error.
type GoodProvider struct {
	Schedule providers.Schedule
}

func (p GoodProvider) FetchSchedule(ctx context.Context, date string) (providers.Schedule, error) {
	_ = ctx
	_ = date
	return p.Schedule, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSchedule(ctx context.Context, date string) (providers.Schedule, error) {
	return providers.Schedule{}, p.Err
}

// EmptyProvider returns an empty schedule, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchSchedule(ctx context.Context, date string) (providers.Schedule, error) {
	return providers.Schedule{Date: date, Games: []scoreboard.Game{}, Index: scoreboard.TeamGameIndex{}}, nil
}

// NotifyingProvider returns a schedule and closes notify on first fetch.
type NotifyingProvider struct {
	Schedule providers.Schedule
	Notify   chan struct{}
}

func (p *NotifyingProvider) FetchSchedule(ctx context.Context, date string) (providers.Schedule, error) {
	_ = ctx
	_ = date
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Schedule, nil
}
