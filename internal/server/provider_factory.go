package server

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/providers/fixture"
	"mlb-scores-service/internal/providers/statsapi"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base := selectProvider(cfg, f.logger, f.metrics)
	// The schedule changes slowly; a shared limiter keeps bursts of poll
	// cycles from hammering the upstream API.
	limited := providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.ScheduleProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New(cfg.Scoreboard.FavoriteTeams)
	case "statsapi", "":
		return statsapi.NewClient(statsapi.Config{
			BaseURL:       cfg.Statsapi.BaseURL,
			LiveURL:       cfg.Statsapi.LiveURL,
			FavoriteTeams: cfg.Scoreboard.FavoriteTeams,
			OverrideDate:  cfg.Statsapi.OverrideDate,
			InningTop:     cfg.Scoreboard.InningTop,
			InningBottom:  cfg.Scoreboard.InningBottom,
			Logger:        logger,
			Metrics:       recorder,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(cfg.Scoreboard.FavoriteTeams)
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from the
// instance when not explicitly configured, so metrics and logs stay consistent.
func normalizeProviderName(raw string, provider providers.ScheduleProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
