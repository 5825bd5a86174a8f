// Package cli implements the one-shot scoreboard command. It fetches a single
// day's schedule and prints formatted lines, without running the server.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/providers/statsapi"
	"mlb-scores-service/internal/scoreboard"
	"mlb-scores-service/internal/timeutil"
)

var (
	flagDate     string
	flagTeams    []string
	flagAllGames bool
	flagFormat   string
	flagVerbose  bool
)

// newProvider is a hook so tests can substitute the upstream client.
var newProvider = func(cfg config.Config) providers.ScheduleProvider {
	level := "error"
	if flagVerbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{Level: level})
	return statsapi.NewClient(statsapi.Config{
		BaseURL:       cfg.Statsapi.BaseURL,
		LiveURL:       cfg.Statsapi.LiveURL,
		FavoriteTeams: cfg.Scoreboard.FavoriteTeams,
		OverrideDate:  cfg.Statsapi.OverrideDate,
		InningTop:     cfg.Scoreboard.InningTop,
		InningBottom:  cfg.Scoreboard.InningBottom,
		Logger:        logger,
	})
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mlbscores",
		Short: "Print today's MLB scoreboard",
		Long: `Fetches the MLB schedule for a day and prints one formatted line
per game. Followed teams are listed first; configuration comes from the same
environment variables the server uses, with flags taking precedence.`,
		SilenceUsage: true,
		RunE:         runScores,
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "Schedule date (YYYY-MM-DD, default today)")
	cmd.Flags().StringSliceVar(&flagTeams, "teams", nil, "Followed team abbreviations (e.g. SEA,CHC)")
	cmd.Flags().BoolVar(&flagAllGames, "all-games", true, "Include games of non-followed teams")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

func runScores(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagDate != "" {
		if _, err := timeutil.ParseDate(flagDate); err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", flagDate, err)
		}
	}

	cfg := config.Load()
	cfg.Scoreboard.AllGames = flagAllGames
	if flagDate != "" {
		cfg.Statsapi.OverrideDate = flagDate
	}
	if len(flagTeams) > 0 {
		teams := make([]string, 0, len(flagTeams))
		for _, team := range flagTeams {
			abbrev := strings.ToUpper(strings.TrimSpace(team))
			if !scoreboard.ValidTeam(abbrev) {
				return fmt.Errorf("unknown team abbreviation: %s", team)
			}
			teams = append(teams, abbrev)
		}
		cfg.Scoreboard.FavoriteTeams = teams
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetching schedule (date=%q teams=%v)\n", flagDate, cfg.Scoreboard.FavoriteTeams)
	}

	provider := newProvider(cfg)
	sched, err := provider.FetchSchedule(cmd.Context(), flagDate)
	if err != nil {
		return fmt.Errorf("fetching schedule: %w", err)
	}

	ordered := scoreboard.Order(sched.Games, sched.Index, cfg.Scoreboard.FavoriteTeams, cfg.Scoreboard.DisplayOrder, cfg.Scoreboard.AllGames)
	lines := cfg.Scoreboard.Renderer().Lines(ordered)

	result := &OutputResult{
		Date:  sched.Date,
		Count: len(ordered),
		Lines: lines,
		Games: ordered,
	}
	return WriteOutput(cmd.OutOrStdout(), result, format)
}
