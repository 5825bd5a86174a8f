// Package scoreboard holds the normalized per-game shape produced from the
// upstream schedule feed, plus the ordering and text rendering applied before
// games reach a display.
package scoreboard

import "time"

// Status classifies a game's lifecycle for display grouping.
type Status string

const (
	StatusPregame    Status = "pregame"
	StatusInProgress Status = "in_progress"
	StatusFinal      Status = "final"
	StatusPostponed  Status = "postponed"
	StatusSuspended  Status = "suspended"
)

// DefaultDisplayOrder lists the status groups in their default display order.
var DefaultDisplayOrder = []Status{
	StatusInProgress,
	StatusSuspended,
	StatusFinal,
	StatusPregame,
	StatusPostponed,
}

// ParseStatus returns the Status for a raw string and whether it is known.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPregame, StatusInProgress, StatusFinal, StatusPostponed, StatusSuspended:
		return Status(raw), true
	}
	return "", false
}

// TeamSide carries one side's normalized team fields. Numeric fields default
// to zero when the upstream record omits them.
type TeamSide struct {
	City         string `json:"city"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Score        int    `json:"score"`
}

// Game is the flat normalized record for a single game. Every field is always
// populated; absent source data degrades to zero values rather than being
// omitted.
type Game struct {
	ID           int64     `json:"id"`
	Status       Status    `json:"status"`
	Inning       int       `json:"inning"`
	Outs         int       `json:"outs"`
	TopBottom    string    `json:"topBottom"`
	ExtraInnings string    `json:"extraInnings"`
	Delay        string    `json:"delay"`
	Postponed    string    `json:"postponed"`
	Suspended    string    `json:"suspended"`
	Venue        string    `json:"venue"`
	LiveURL      string    `json:"liveUrl"`
	StartTime    time.Time `json:"startTime"`
	Home         TeamSide  `json:"home"`
	Away         TeamSide  `json:"away"`
}

// TeamGameIndex maps a followed team abbreviation to the game IDs it plays on
// a given day, in encounter order. Doubleheaders yield two entries.
type TeamGameIndex map[string][]int64

// Add appends a game ID for a team.
func (idx TeamGameIndex) Add(team string, id int64) {
	idx[team] = append(idx[team], id)
}
