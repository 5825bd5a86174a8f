package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/poller"
	"mlb-scores-service/internal/scoreboard"
	"mlb-scores-service/internal/store"
)

// Options controls how game snapshots are ordered and formatted for responses.
type Options struct {
	Renderer     scoreboard.Renderer
	Favorites    []string
	DisplayOrder []scoreboard.Status
	AllGames     bool
	// ScoreboardURL is the league scoreboard page returned alongside the
	// rendered lines, for clients without a specific game to link to.
	ScoreboardURL string
}

// Handler wires HTTP routes to the in-memory scoreboard.
type Handler struct {
	store    *store.MemoryStore
	opts     Options
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(memoryStore *store.MemoryStore, opts Options, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	if len(opts.DisplayOrder) == 0 {
		opts.DisplayOrder = scoreboard.DefaultDisplayOrder
	}
	return &Handler{
		store:    memoryStore,
		opts:     opts,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// gamesResponse is the payload for the games listing endpoint.
type gamesResponse struct {
	Date  string            `json:"date"`
	Count int               `json:"count"`
	Games []scoreboard.Game `json:"games"`
}

// Games returns the current snapshot, ordered for display.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	snap := h.store.Snapshot()
	ordered := h.orderedGames(snap)

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served games",
			slog.String(logging.FieldDate, snap.Date),
			slog.Int(logging.FieldCount, len(ordered)),
		)
	}

	writeJSON(w, nethttp.StatusOK, gamesResponse{
		Date:  snap.Date,
		Count: len(ordered),
		Games: ordered,
	}, h.logger)
}

// GameByID returns a specific game if present in the current snapshot.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw := chi.URLParam(r, "gameID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.store.GetGame(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// scoreboardResponse pairs rendered lines with the snapshot date and the raw
// formatter fields per game, for callers that render their own templates.
type scoreboardResponse struct {
	Date          string              `json:"date"`
	ScoreboardURL string              `json:"scoreboard_url,omitempty"`
	Lines         []string            `json:"lines"`
	Fields        []map[string]string `json:"fields"`
}

// Scoreboard returns formatted one-line summaries for the current snapshot.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	snap := h.store.Snapshot()
	ordered := h.orderedGames(snap)
	lines := h.opts.Renderer.Lines(ordered)
	fields := make([]map[string]string, 0, len(ordered))
	for _, g := range ordered {
		fields = append(fields, g.Fields(h.opts.Renderer.Fields))
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served scoreboard",
			slog.String(logging.FieldDate, snap.Date),
			slog.Int(logging.FieldCount, len(ordered)),
		)
	}

	writeJSON(w, nethttp.StatusOK, scoreboardResponse{
		Date:          snap.Date,
		ScoreboardURL: h.opts.ScoreboardURL,
		Lines:         lines,
		Fields:        fields,
	}, h.logger)
}

func (h *Handler) orderedGames(snap store.Snapshot) []scoreboard.Game {
	return scoreboard.Order(snap.Games, snap.Index, h.opts.Favorites, h.opts.DisplayOrder, h.opts.AllGames)
}
