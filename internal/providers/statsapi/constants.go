package statsapi

import "time"

const providerName = "statsapi"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1/schedule"
	defaultLiveURL     = "https://www.mlb.com/gameday/{id}"
	defaultHTTPTimeout = 10 * time.Second

	defaultInningTop    = "Top"
	defaultInningBottom = "Bot"
)

// Schedule query parameters matching the upstream contract. The hydrate list
// pulls team records and the linescore alongside each game.
const (
	scheduleSportIDs  = "1,51"
	scheduleGameTypes = "E,S,R,A,F,D,L,W"
	scheduleLeagueIDs = "103,104,420"
	scheduleHydrate   = "team(),linescore(matchup,runners),stats,game(content(media(featured,epg),summary),tickets),seriesStatus(useOverride=true)"
)

// gameTimeLayout is the fixed UTC timestamp format of the gameDate field.
const gameTimeLayout = "2006-01-02T15:04:05Z"
