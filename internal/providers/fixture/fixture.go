// Package fixture supplies a deterministic schedule for local runs and tests.
package fixture

import (
	"context"
	"strings"
	"time"

	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/scoreboard"
	"mlb-scores-service/internal/timeutil"
)

// Provider returns a static set of games useful for local testing and bootstrapping.
type Provider struct {
	favorites []string
	now       func() time.Time
}

// New creates a fixture provider. Only the given followed teams appear in the
// schedule index, matching real provider behavior.
func New(favorites []string) *Provider {
	upper := make([]string, 0, len(favorites))
	for _, team := range favorites {
		upper = append(upper, strings.ToUpper(team))
	}
	return &Provider{
		favorites: upper,
		now:       time.Now,
	}
}

// FetchSchedule returns a deterministic set of example games.
func (p *Provider) FetchSchedule(ctx context.Context, date string) (providers.Schedule, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	if date == "" {
		date = timeutil.APIDate(p.now(), "")
	} else if parsed, err := timeutil.ParseDate(date); err == nil {
		start = parsed.UTC().Add(19 * time.Hour)
	}

	games := []scoreboard.Game{
		{
			ID:        1001,
			Status:    scoreboard.StatusInProgress,
			Inning:    6,
			Outs:      1,
			TopBottom: "Top",
			Venue:     "T-Mobile Park",
			LiveURL:   "https://www.mlb.com/gameday/1001",
			StartTime: start,
			Home:      scoreboard.TeamSide{City: "Seattle", Name: "Mariners", Abbreviation: "SEA", Wins: 40, Losses: 30, Score: 3},
			Away:      scoreboard.TeamSide{City: "Texas", Name: "Rangers", Abbreviation: "TEX", Wins: 35, Losses: 35, Score: 2},
		},
		{
			ID:        1002,
			Status:    scoreboard.StatusPregame,
			Venue:     "Yankee Stadium",
			LiveURL:   "https://www.mlb.com/gameday/1002",
			StartTime: start.Add(2 * time.Hour),
			Home:      scoreboard.TeamSide{City: "New York", Name: "Yankees", Abbreviation: "NYY", Wins: 50, Losses: 20},
			Away:      scoreboard.TeamSide{City: "Boston", Name: "Red Sox", Abbreviation: "BOS", Wins: 38, Losses: 32},
		},
		{
			ID:           1003,
			Status:       scoreboard.StatusFinal,
			Inning:       11,
			ExtraInnings: "11",
			Venue:        "Dodger Stadium",
			LiveURL:      "https://www.mlb.com/gameday/1003",
			StartTime:    start.Add(-4 * time.Hour),
			Home:         scoreboard.TeamSide{City: "Los Angeles", Name: "Dodgers", Abbreviation: "LAD", Wins: 45, Losses: 25, Score: 4},
			Away:         scoreboard.TeamSide{City: "San Francisco", Name: "Giants", Abbreviation: "SF", Wins: 33, Losses: 37, Score: 5},
		},
	}

	index := scoreboard.TeamGameIndex{}
	for _, g := range games {
		for _, fav := range p.favorites {
			if g.Home.Abbreviation == fav || g.Away.Abbreviation == fav {
				index.Add(fav, g.ID)
			}
		}
	}

	return providers.Schedule{Date: date, Games: games, Index: index}, nil
}
