package testutil

import (
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/scoreboard"
)

// SampleSchedule builds a small schedule useful across poller/handler tests.
func SampleSchedule(date string) providers.Schedule {
	games := []scoreboard.Game{
		{
			ID:        2001,
			Status:    scoreboard.StatusInProgress,
			Inning:    5,
			Outs:      2,
			TopBottom: "Bot",
			Venue:     "T-Mobile Park",
			LiveURL:   "https://www.mlb.com/gameday/2001",
			StartTime: MustParseRFC3339("2024-06-15T02:10:00Z"),
			Home:      scoreboard.TeamSide{City: "Seattle", Name: "Mariners", Abbreviation: "SEA", Wins: 40, Losses: 30, Score: 1},
			Away:      scoreboard.TeamSide{City: "Houston", Name: "Astros", Abbreviation: "HOU", Wins: 39, Losses: 31, Score: 0},
		},
		{
			ID:        2002,
			Status:    scoreboard.StatusPregame,
			Venue:     "Fenway Park",
			LiveURL:   "https://www.mlb.com/gameday/2002",
			StartTime: MustParseRFC3339("2024-06-15T23:10:00Z"),
			Home:      scoreboard.TeamSide{City: "Boston", Name: "Red Sox", Abbreviation: "BOS", Wins: 38, Losses: 32},
			Away:      scoreboard.TeamSide{City: "New York", Name: "Yankees", Abbreviation: "NYY", Wins: 50, Losses: 20},
		},
	}

	index := scoreboard.TeamGameIndex{}
	index.Add("SEA", 2001)

	return providers.Schedule{Date: date, Games: games, Index: index}
}
