// Package statsapi fetches the MLB schedule feed and normalizes its games.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/nested"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/scoreboard"
	"mlb-scores-service/internal/timeutil"
)

// Config controls how the statsapi client reaches the upstream API and how
// games are normalized.
type Config struct {
	BaseURL string
	// LiveURL is the per-game deep link template; "{id}" is replaced with
	// the game identifier.
	LiveURL    string
	HTTPClient *http.Client
	// FavoriteTeams lists followed team abbreviations; only these appear in
	// the schedule's team-to-games index.
	FavoriteTeams []string
	// OverrideDate pins the schedule date (YYYY-MM-DD), mainly for
	// troubleshooting.
	OverrideDate string
	InningTop    string
	InningBottom string
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
}

// Client fetches games from the MLB schedule API and maps them to normalized
// scoreboard games.
type Client struct {
	baseURL    string
	httpClient httpDoer
	favorites  map[string]bool
	override   string
	now        func() time.Time
	mapper     mapper
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	favorites := make(map[string]bool, len(cfg.FavoriteTeams))
	for _, team := range cfg.FavoriteTeams {
		favorites[strings.ToUpper(team)] = true
	}

	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		favorites:  favorites,
		override:   cfg.OverrideDate,
		now:        time.Now,
		mapper: mapper{
			liveURL:      resolveLiveURL(cfg.LiveURL),
			inningTop:    resolveLabel(cfg.InningTop, defaultInningTop),
			inningBottom: resolveLabel(cfg.InningBottom, defaultInningBottom),
			logger:       cfg.Logger,
			metrics:      cfg.Metrics,
		},
	}
}

// FetchSchedule retrieves the day's games. An empty date resolves via the
// schedule rollover rule (previous day before 10:00 Eastern), unless an
// override date is configured.
func (c *Client) FetchSchedule(ctx context.Context, date string) (providers.Schedule, error) {
	if date == "" {
		date = timeutil.APIDate(c.now(), c.override)
	}

	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return providers.Schedule{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Schedule{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return providers.Schedule{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.Schedule{}, fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload map[string]any
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return providers.Schedule{}, fmt.Errorf("statsapi: decoding schedule: %w", decodeErr)
	}

	games, index := c.collectGames(scheduleGames(payload))
	return providers.Schedule{Date: date, Games: games, Index: index}, nil
}

// scheduleGames extracts the game list under dates[0].games. On days with
// exactly one game the API returns a bare object instead of a list; wrap it
// so the caller always sees a list.
func scheduleGames(payload map[string]any) []any {
	if list := nested.Slice(payload, "dates", 0, "games"); list != nil {
		return list
	}
	if single := nested.Map(payload, "dates", 0, "games"); single != nil {
		return []any{single}
	}
	return nil
}

// collectGames normalizes each raw game and builds the followed-team index.
// Entries without a game identifier are skipped silently.
func (c *Client) collectGames(rawGames []any) ([]scoreboard.Game, scoreboard.TeamGameIndex) {
	games := make([]scoreboard.Game, 0, len(rawGames))
	index := scoreboard.TeamGameIndex{}

	for _, entry := range rawGames {
		game, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := nested.Get(game, "gamePk"); !ok {
			continue
		}
		id := nested.Int64(game, 0, "gamePk")

		homeAbbrev := strings.ToUpper(nested.String(game, "", "teams", "home", "team", "abbreviation"))
		awayAbbrev := strings.ToUpper(nested.String(game, "", "teams", "away", "team", "abbreviation"))
		if homeAbbrev != "" && awayAbbrev != "" {
			for _, team := range []string{homeAbbrev, awayAbbrev} {
				if c.favorites[team] {
					index.Add(team, id)
				}
			}
		}

		games = append(games, c.mapper.mapGame(game))
	}

	return games, index
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sportId", scheduleSportIDs)
	q.Set("date", date)
	q.Set("gameTypes", scheduleGameTypes)
	q.Set("hydrate", scheduleHydrate)
	q.Set("useLatestGames", "false")
	q.Set("language", "en")
	q.Set("leagueId", scheduleLeagueIDs)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 0
}
