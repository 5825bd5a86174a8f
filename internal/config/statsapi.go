package config

const (
	envStatsapiBaseURL = "STATSAPI_BASE_URL"
	envLiveURL         = "LIVE_URL"
	envScoresDate      = "SCORES_DATE"
)

// StatsapiConfig controls how we talk to the MLB schedule API.
type StatsapiConfig struct {
	BaseURL string
	// LiveURL is the per-game deep link template ({id} is substituted).
	LiveURL string
	// OverrideDate pins the schedule date (YYYY-MM-DD); primarily for
	// troubleshooting.
	OverrideDate string
}

func loadStatsapi() StatsapiConfig {
	return StatsapiConfig{
		BaseURL:      envOrDefault(envStatsapiBaseURL, ""),
		LiveURL:      envOrDefault(envLiveURL, ""),
		OverrideDate: envOrDefault(envScoresDate, ""),
	}
}
