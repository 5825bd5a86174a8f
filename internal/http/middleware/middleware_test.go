package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mlb-scores-service/internal/metrics"
)

func TestLoggingGeneratesRequestID(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	handler := Logging(logger, nil, next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if captured == "" {
		t.Fatal("expected request ID in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != captured {
		t.Fatalf("header request ID %q does not match context %q", got, captured)
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected completion log, got %q", buf.String())
	}
}

func TestLoggingKeepsValidIncomingRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Logging(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, next)

	req := httptest.NewRequest(http.MethodGet, "/games", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected incoming request ID to be kept, got %q", got)
	}
}

func TestLoggingRejectsMalformedRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Logging(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, next)

	req := httptest.NewRequest(http.MethodGet, "/games", nil)
	req.Header.Set("X-Request-ID", "not valid / at all")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got == "not valid / at all" || got == "" {
		t.Fatalf("expected a freshly generated request ID, got %q", got)
	}
}

func TestLoggingCapturesStatus(t *testing.T) {
	recorder := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusNotFound)
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	handler := Logging(logger, recorder, next)

	req := httptest.NewRequest(http.MethodGet, "/games/12345", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 passed through, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "status_code=404") {
		t.Fatalf("expected downstream status in log, got %q", buf.String())
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty request ID, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/health":       "/health",
		"/ready":        "/ready",
		"/games":        "/games",
		"/scoreboard":   "/scoreboard",
		"/games/776000": "/games/:id",
		"/games/x?a=b":  "/games/:id",
		"/somewhere":    "/somewhere",
		"":              "",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Errorf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}
