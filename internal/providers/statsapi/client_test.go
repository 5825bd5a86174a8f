package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/testutil"
)

func scheduleServer(t *testing.T, body string, capture *url.Values) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			*capture = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetchScheduleBuildsQuery(t *testing.T) {
	var query url.Values
	srv := scheduleServer(t, `{"dates": []}`, &query)
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	sched, err := client.FetchSchedule(context.Background(), "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Date != "2024-06-15" || len(sched.Games) != 0 {
		t.Fatalf("unexpected schedule %+v", sched)
	}

	if query.Get("date") != "2024-06-15" {
		t.Fatalf("expected date parameter, got %q", query.Get("date"))
	}
	if query.Get("sportId") != scheduleSportIDs || query.Get("leagueId") != scheduleLeagueIDs {
		t.Fatalf("unexpected league parameters %v", query)
	}
	if query.Get("hydrate") != scheduleHydrate {
		t.Fatalf("unexpected hydrate parameter %q", query.Get("hydrate"))
	}
}

func TestFetchScheduleParsesGames(t *testing.T) {
	body := `{"dates": [{"games": [` +
		gameJSON(1001) + `,` + gameJSON(1002) + `]}]}`
	srv := scheduleServer(t, body, nil)
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client(), FavoriteTeams: []string{"SEA"}})
	sched, err := client.FetchSchedule(context.Background(), "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sched.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(sched.Games))
	}
	// Doubleheader: both game IDs indexed in encounter order.
	if got := sched.Index["SEA"]; len(got) != 2 || got[0] != 1001 || got[1] != 1002 {
		t.Fatalf("unexpected index %v", sched.Index)
	}
	if _, ok := sched.Index["TEX"]; ok {
		t.Fatalf("expected index to cover followed teams only")
	}
}

// A single-game day returns a bare object instead of a list.
func TestFetchScheduleSingleGameObject(t *testing.T) {
	body := `{"dates": [{"games": ` + gameJSON(1001) + `}]}`
	srv := scheduleServer(t, body, nil)
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client(), FavoriteTeams: []string{"TEX"}})
	sched, err := client.FetchSchedule(context.Background(), "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.Games) != 1 || sched.Games[0].ID != 1001 {
		t.Fatalf("expected the single game wrapped as a list, got %+v", sched.Games)
	}
	if got := sched.Index["TEX"]; len(got) != 1 || got[0] != 1001 {
		t.Fatalf("unexpected index %v", sched.Index)
	}
}

func TestFetchScheduleSkipsMalformedEntries(t *testing.T) {
	body := `{"dates": [{"games": [
		{"gameDate": "2024-06-15T02:10:00Z"},
		"not-an-object",
		` + gameJSON(1001) + `
	]}]}`
	srv := scheduleServer(t, body, nil)
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	sched, err := client.FetchSchedule(context.Background(), "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.Games) != 1 || sched.Games[0].ID != 1001 {
		t.Fatalf("expected malformed entries skipped, got %+v", sched.Games)
	}
}

func TestFetchScheduleDefaultsDate(t *testing.T) {
	var query url.Values
	srv := scheduleServer(t, `{"dates": []}`, &query)
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client(), OverrideDate: "2024-04-01"})
	client.now = testutil.NowAt(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	sched, err := client.FetchSchedule(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Date != "2024-04-01" || query.Get("date") != "2024-04-01" {
		t.Fatalf("expected override date used, got %s / %s", sched.Date, query.Get("date"))
	}
}

func TestFetchScheduleRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := client.FetchSchedule(context.Background(), "2024-06-15")

	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.StatusCode != http.StatusTooManyRequests || rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("unexpected rate limit details %+v", rlErr)
	}
}

func TestFetchScheduleUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := client.FetchSchedule(context.Background(), "2024-06-15"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestFetchScheduleDecodeError(t *testing.T) {
	srv := scheduleServer(t, `{"dates": [`, nil)
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := client.FetchSchedule(context.Background(), "2024-06-15"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func gameJSON(id int64) string {
	return `{
		"gamePk": ` + strconv.FormatInt(id, 10) + `,
		"gameDate": "2024-06-15T02:10:00Z",
		"status": {"detailedState": "Scheduled"},
		"teams": {
			"home": {"team": {"teamName": "Mariners", "abbreviation": "SEA", "locationName": "Seattle"}},
			"away": {"team": {"teamName": "Rangers", "abbreviation": "TEX", "locationName": "Texas"}}
		}
	}`
}
