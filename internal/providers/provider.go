package providers

import (
	"context"

	"mlb-scores-service/internal/scoreboard"
)

// Schedule is one day's worth of normalized games plus the lookup from
// followed team abbreviation to that team's game IDs.
type Schedule struct {
	Date  string
	Games []scoreboard.Game
	Index scoreboard.TeamGameIndex
}

// ScheduleProvider defines how upstream schedule data is fetched and
// normalized. The date parameter, when provided, should be a YYYY-MM-DD
// string; providers interpret an empty date as "today" under the schedule
// rollover rule (see timeutil.APIDate).
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) (Schedule, error)
}
