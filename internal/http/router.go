package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"mlb-scores-service/internal/http/handlers"
	"mlb-scores-service/internal/http/middleware"
	"mlb-scores-service/internal/metrics"
)

// NewRouter registers all routes and wraps them with CORS and request logging.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/games", handler.Games)
	r.Get("/games/{gameID}", handler.GameByID)
	r.Get("/scoreboard", handler.Scoreboard)

	return middleware.Logging(logger, recorder, r)
}
