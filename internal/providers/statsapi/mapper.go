package statsapi

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/nested"
	"mlb-scores-service/internal/scoreboard"
)

// mapper normalizes one raw schedule game into the flat scoreboard shape.
// Every output field is always set; absent source data degrades to zero
// values instead of being omitted.
type mapper struct {
	liveURL      string
	inningTop    string
	inningBottom string
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

func (m mapper) mapGame(game map[string]any) scoreboard.Game {
	linescore := nested.Map(game, "linescore")
	id := nested.Int64(game, 0, "gamePk")

	g := scoreboard.Game{
		ID:      id,
		Inning:  nested.Int(linescore, 0, "currentInning"),
		Outs:    nested.Int(linescore, 0, "outs"),
		LiveURL: strings.ReplaceAll(m.liveURL, "{id}", strconv.FormatInt(id, 10)),
		Venue:   mapVenue(game),
		Home:    mapSide(game, linescore, "home"),
		Away:    mapSide(game, linescore, "away"),
	}

	m.classifyStatus(game, &g)

	if g.Status == scoreboard.StatusFinal && g.Inning != 9 {
		g.ExtraInnings = strconv.Itoa(g.Inning)
	}

	switch strings.ToLower(nested.String(linescore, "", "inningHalf")) {
	case "top":
		g.TopBottom = m.inningTop
	case "bottom":
		g.TopBottom = m.inningBottom
	}

	g.StartTime = m.mapStartTime(game, id)

	return g
}

// classifyStatus applies the status decision table to the detailed state,
// lower-cased with spaces replaced by underscores. First match wins.
func (m mapper) classifyStatus(game map[string]any, g *scoreboard.Game) {
	detailed := nested.String(game, "", "status", "detailedState")
	status := strings.ToLower(strings.ReplaceAll(detailed, " ", "_"))

	switch {
	case status == "delayed_start":
		g.Status = scoreboard.StatusPregame
		g.Delay = nested.String(game, "Unknown", "status", "reason")
	case strings.HasPrefix(status, "delayed"):
		g.Status = scoreboard.StatusInProgress
		parts := strings.SplitN(detailed, ":", 2)
		g.Delay = strings.TrimSpace(parts[len(parts)-1])
	case status == "postponed":
		g.Status = scoreboard.StatusPostponed
		g.Postponed = nested.String(game, "Unknown Reason", "status", "reason")
	case strings.HasPrefix(status, "suspended"):
		g.Status = scoreboard.StatusSuspended
		g.Suspended = strings.TrimPrefix(
			nested.String(game, "Suspended", "status", "detailedState"),
			"Suspended: ")
	case strings.HasPrefix(status, "completed_early") || status == "game_over":
		g.Status = scoreboard.StatusFinal
	case status == "in_progress":
		g.Status = scoreboard.StatusInProgress
	case status == "final":
		g.Status = scoreboard.StatusFinal
	default:
		g.Status = scoreboard.StatusPregame
	}
}

// mapStartTime parses the fixed UTC gameDate timestamp. A parse failure is
// logged with the raw value and replaced with the epoch so downstream
// formatting never fails; times will be wrong, but the log entry is what
// surfaces upstream format changes.
func (m mapper) mapStartTime(game map[string]any, id int64) time.Time {
	raw := nested.String(game, "", "gameDate")
	parsed, err := time.Parse(gameTimeLayout, raw)
	if err != nil {
		logging.Error(m.logger, "unexpected game time format", err,
			slog.Int64(logging.FieldGameID, id),
			slog.String(logging.FieldRawValue, raw),
			slog.String(logging.FieldProvider, providerName),
		)
		m.metrics.RecordNormalizeAnomaly(providerName)
		return time.Unix(0, 0).UTC()
	}
	return parsed.UTC()
}

func mapSide(game, linescore map[string]any, side string) scoreboard.TeamSide {
	teamData := nested.Map(game, "teams", side)
	return scoreboard.TeamSide{
		City:         nested.String(teamData, "", "team", "locationName"),
		Name:         nested.String(teamData, "", "team", "teamName"),
		Abbreviation: strings.ToUpper(nested.String(teamData, "", "team", "abbreviation")),
		Wins:         nested.Int(teamData, 0, "leagueRecord", "wins"),
		Losses:       nested.Int(teamData, 0, "leagueRecord", "losses"),
		Score:        nested.Int(linescore, 0, "teams", side, "runs"),
	}
}

// Hydrated payloads carry the venue under the home side; older shapes put it
// at the top level of the game.
func mapVenue(game map[string]any) string {
	if venue := nested.String(game, "", "teams", "home", "venue", "name"); venue != "" {
		return venue
	}
	return nested.String(game, "", "venue", "name")
}
