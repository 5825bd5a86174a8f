package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"mlb-scores-service/internal/http/handlers"
	"mlb-scores-service/internal/scoreboard"
	"mlb-scores-service/internal/store"
	"mlb-scores-service/internal/testutil"
)

func newTestRouter(t *testing.T) nethttp.Handler {
	t.Helper()
	memoryStore := store.NewMemoryStore()
	sched := testutil.SampleSchedule("2024-06-15")
	memoryStore.SetSnapshot(store.Snapshot{Date: sched.Date, Games: sched.Games, Index: sched.Index})

	handler := handlers.NewHandler(memoryStore, handlers.Options{
		Renderer: scoreboard.Renderer{
			Format:        "{away_abbreviation} at {home_abbreviation}",
			FormatNoGames: "No games",
		},
		AllGames: true,
	}, nil, nil)
	return NewRouter(handler, nil, nil)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		path string
		want int
	}{
		{"/health", nethttp.StatusOK},
		{"/ready", nethttp.StatusOK},
		{"/games", nethttp.StatusOK},
		{"/games/2001", nethttp.StatusOK},
		{"/games/999", nethttp.StatusNotFound},
		{"/games/abc", nethttp.StatusBadRequest},
		{"/scoreboard", nethttp.StatusOK},
		{"/nope", nethttp.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(nethttp.MethodGet, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("GET %s: expected %d, got %d", tc.path, tc.want, rec.Code)
		}
	}
}

func TestRouterRejectsOtherMethods(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/games", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST, got %d", rec.Code)
	}
}

func TestRouterGameByIDPayload(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/games/2002", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var game scoreboard.Game
	if err := json.NewDecoder(rec.Body).Decode(&game); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if game.ID != 2002 || game.Home.Abbreviation != "BOS" {
		t.Fatalf("unexpected payload: %+v", game)
	}
}

func TestRouterSetsRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request ID header")
	}
}
