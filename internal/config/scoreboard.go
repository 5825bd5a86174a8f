package config

import (
	"strings"

	"mlb-scores-service/internal/scoreboard"
)

const (
	envFavoriteTeams   = "FAVORITE_TEAMS"
	envAllGames        = "ALL_GAMES"
	envDisplayOrder    = "DISPLAY_ORDER"
	envFormat          = "FORMAT"
	envFormatNoGames   = "FORMAT_NO_GAMES"
	envStatusPregame   = "STATUS_PREGAME"
	envStatusLive      = "STATUS_IN_PROGRESS"
	envStatusFinal     = "STATUS_FINAL"
	envStatusPostponed = "STATUS_POSTPONED"
	envStatusSuspended = "STATUS_SUSPENDED"
	envInningTop       = "INNING_TOP"
	envInningBottom    = "INNING_BOTTOM"
	envTeamColors      = "TEAM_COLORS"
	envTeamFormat      = "TEAM_FORMAT"
	envStartTimeFormat = "START_TIME_FORMAT"
	envFavoriteMarker  = "FAVORITE_MARKER"
	envScoreboardURL   = "SCOREBOARD_URL"

	defaultFormat = "MLB: [{away_favorite} ]{away_team} [{away_score} ]" +
		"({away_wins}-{away_losses}) at [{home_favorite} ]{home_team} " +
		"[{home_score} ]({home_wins}-{home_losses}) {game_status}"
	defaultFormatNoGames   = "MLB: No games"
	defaultStatusPregame   = "{start_time}[ ({delay} Delay)]"
	defaultStatusLive      = "({top_bottom} {inning}, {outs} Out)[ ({delay} Delay)]"
	defaultStatusFinal     = "(Final[/{extra_innings}])"
	defaultStatusPostponed = "(PPD: {postponed})"
	defaultStatusSuspended = "(Suspended: {suspended})"
	defaultInningTop       = "Top"
	defaultInningBottom    = "Bot"
	defaultStartTimeLayout = "15:04 MST"
	defaultFavoriteMarker  = "★"
	defaultScoreboardURL   = "https://www.mlb.com/scoreboard"
)

// ScoreboardConfig controls game ordering and display line rendering.
type ScoreboardConfig struct {
	// FavoriteTeams lists followed team abbreviations; unknown entries are
	// dropped on load.
	FavoriteTeams []string
	// AllGames includes games of non-followed teams after the followed ones.
	AllGames bool
	// DisplayOrder arranges non-followed games by status group.
	DisplayOrder []scoreboard.Status
	// TeamFormat is one of name, abbreviation, or city.
	TeamFormat string
	// TeamColors merges overrides into the built-in color table.
	TeamColors map[string]string

	Format          string
	FormatNoGames   string
	StatusPregame   string
	StatusLive      string
	StatusFinal     string
	StatusPostponed string
	StatusSuspended string
	InningTop       string
	InningBottom    string
	StartTimeLayout string
	FavoriteMarker  string
	// ScoreboardURL is the league scoreboard page linked when no single
	// game is selected.
	ScoreboardURL string
}

func loadScoreboard() ScoreboardConfig {
	return ScoreboardConfig{
		FavoriteTeams:   favoriteTeams(),
		AllGames:        boolEnvOrDefault(envAllGames, true),
		DisplayOrder:    displayOrder(),
		TeamFormat:      teamFormat(),
		TeamColors:      scoreboard.MergeTeamColors(kvEnv(envTeamColors)),
		Format:          envOrDefault(envFormat, defaultFormat),
		FormatNoGames:   envOrDefault(envFormatNoGames, defaultFormatNoGames),
		StatusPregame:   envOrDefault(envStatusPregame, defaultStatusPregame),
		StatusLive:      envOrDefault(envStatusLive, defaultStatusLive),
		StatusFinal:     envOrDefault(envStatusFinal, defaultStatusFinal),
		StatusPostponed: envOrDefault(envStatusPostponed, defaultStatusPostponed),
		StatusSuspended: envOrDefault(envStatusSuspended, defaultStatusSuspended),
		InningTop:       envOrDefault(envInningTop, defaultInningTop),
		InningBottom:    envOrDefault(envInningBottom, defaultInningBottom),
		StartTimeLayout: envOrDefault(envStartTimeFormat, defaultStartTimeLayout),
		FavoriteMarker:  envOrDefault(envFavoriteMarker, defaultFavoriteMarker),
		ScoreboardURL:   envOrDefault(envScoreboardURL, defaultScoreboardURL),
	}
}

// FieldOptions returns the formatter field settings for this configuration.
func (c ScoreboardConfig) FieldOptions() scoreboard.FieldOptions {
	return scoreboard.FieldOptions{
		TimeLayout:     c.StartTimeLayout,
		TeamFormat:     c.TeamFormat,
		FavoriteMarker: c.FavoriteMarker,
		Favorites:      c.FavoriteTeams,
		Colors:         c.TeamColors,
	}
}

// Renderer assembles the display renderer for this configuration.
func (c ScoreboardConfig) Renderer() scoreboard.Renderer {
	return scoreboard.Renderer{
		Format:        c.Format,
		FormatNoGames: c.FormatNoGames,
		StatusFormats: c.StatusFormats(),
		Fields:        c.FieldOptions(),
	}
}

// StatusFormats returns the per-status templates keyed for the renderer.
func (c ScoreboardConfig) StatusFormats() map[scoreboard.Status]string {
	return map[scoreboard.Status]string{
		scoreboard.StatusPregame:    c.StatusPregame,
		scoreboard.StatusInProgress: c.StatusLive,
		scoreboard.StatusFinal:      c.StatusFinal,
		scoreboard.StatusPostponed:  c.StatusPostponed,
		scoreboard.StatusSuspended:  c.StatusSuspended,
	}
}

func favoriteTeams() []string {
	teams := make([]string, 0)
	for _, team := range listEnvOrDefault(envFavoriteTeams, nil) {
		abbrev := strings.ToUpper(team)
		if scoreboard.ValidTeam(abbrev) {
			teams = append(teams, abbrev)
		}
	}
	return teams
}

func displayOrder() []scoreboard.Status {
	order := make([]scoreboard.Status, 0)
	for _, raw := range listEnvOrDefault(envDisplayOrder, nil) {
		if status, ok := scoreboard.ParseStatus(strings.ToLower(raw)); ok {
			order = append(order, status)
		}
	}
	if len(order) == 0 {
		return scoreboard.DefaultDisplayOrder
	}
	return order
}

func teamFormat() string {
	switch mode := strings.ToLower(envOrDefault(envTeamFormat, "")); mode {
	case scoreboard.TeamFormatName, scoreboard.TeamFormatAbbreviation, scoreboard.TeamFormatCity:
		return mode
	default:
		return scoreboard.TeamFormatName
	}
}
