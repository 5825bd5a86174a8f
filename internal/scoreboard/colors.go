package scoreboard

// defaultTeamColors maps every MLB team abbreviation to its display color.
var defaultTeamColors = map[string]string{
	"ARI": "#A71930",
	"ATL": "#CE1141",
	"BAL": "#DF4601",
	"BOS": "#BD3039",
	"CHC": "#004EC1",
	"CIN": "#C6011F",
	"CLE": "#E31937",
	"COL": "#5E5EB6",
	"CWS": "#DADADA",
	"DET": "#FF6600",
	"HOU": "#EB6E1F",
	"KC":  "#0046DD",
	"LAA": "#BA0021",
	"LAD": "#005A9C",
	"MIA": "#00A3E0",
	"MIL": "#0747CC",
	"MIN": "#D31145",
	"NYY": "#0747CC",
	"NYM": "#FF5910",
	"OAK": "#006659",
	"PHI": "#E81828",
	"PIT": "#FFCC01",
	"SD":  "#FFC425",
	"SEA": "#2E8B90",
	"SF":  "#FD5A1E",
	"STL": "#B53B30",
	"TB":  "#8FBCE6",
	"TEX": "#C0111F",
	"TOR": "#0046DD",
	"WSH": "#C70003",
}

// DefaultTeamColors returns a copy of the built-in color table.
func DefaultTeamColors() map[string]string {
	colors := make(map[string]string, len(defaultTeamColors))
	for abbrev, hex := range defaultTeamColors {
		colors[abbrev] = hex
	}
	return colors
}

// MergeTeamColors overlays overrides on the built-in table, so callers only
// need to specify the teams they want to change.
func MergeTeamColors(overrides map[string]string) map[string]string {
	colors := DefaultTeamColors()
	for abbrev, hex := range overrides {
		colors[abbrev] = hex
	}
	return colors
}

// ValidTeam reports whether the abbreviation belongs to a known team.
func ValidTeam(abbrev string) bool {
	_, ok := defaultTeamColors[abbrev]
	return ok
}
