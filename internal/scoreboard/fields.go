package scoreboard

import "strconv"

// Team name display modes for the {home_team}/{away_team} formatter fields.
const (
	TeamFormatName         = "name"
	TeamFormatAbbreviation = "abbreviation"
	TeamFormatCity         = "city"
)

// FieldOptions controls how a Game is flattened into formatter fields.
type FieldOptions struct {
	// TimeLayout is the Go layout used for the start_time field.
	TimeLayout string
	// TeamFormat selects the value of the {home_team}/{away_team} fields.
	TeamFormat string
	// FavoriteMarker fills the home_favorite/away_favorite fields for
	// followed teams; other teams get an empty string.
	FavoriteMarker string
	Favorites      []string
	Colors         map[string]string
}

// Fields flattens a game into the mapping consumed by format templates.
// Every key is always present; inapplicable values are empty strings.
func (g Game) Fields(opts FieldOptions) map[string]string {
	layout := opts.TimeLayout
	if layout == "" {
		layout = "15:04 MST"
	}

	fields := map[string]string{
		"id":            strconv.FormatInt(g.ID, 10),
		"status":        string(g.Status),
		"inning":        strconv.Itoa(g.Inning),
		"outs":          strconv.Itoa(g.Outs),
		"top_bottom":    g.TopBottom,
		"extra_innings": g.ExtraInnings,
		"delay":         g.Delay,
		"postponed":     g.Postponed,
		"suspended":     g.Suspended,
		"venue":         g.Venue,
		"live_url":      g.LiveURL,
		"start_time":    g.StartTime.Local().Format(layout),
	}

	addSide(fields, "home", g.Home, opts)
	addSide(fields, "away", g.Away, opts)
	return fields
}

func addSide(fields map[string]string, side string, team TeamSide, opts FieldOptions) {
	fields[side+"_city"] = team.City
	fields[side+"_name"] = team.Name
	fields[side+"_abbreviation"] = team.Abbreviation
	fields[side+"_wins"] = strconv.Itoa(team.Wins)
	fields[side+"_losses"] = strconv.Itoa(team.Losses)
	fields[side+"_score"] = strconv.Itoa(team.Score)
	fields[side+"_team"] = teamDisplay(team, opts.TeamFormat)
	fields[side+"_color"] = opts.Colors[team.Abbreviation]
	fields[side+"_favorite"] = favoriteMarker(team.Abbreviation, opts)
}

func teamDisplay(team TeamSide, mode string) string {
	switch mode {
	case TeamFormatAbbreviation:
		return team.Abbreviation
	case TeamFormatCity:
		return team.City
	default:
		return team.Name
	}
}

func favoriteMarker(abbrev string, opts FieldOptions) string {
	for _, fav := range opts.Favorites {
		if fav == abbrev {
			return opts.FavoriteMarker
		}
	}
	return ""
}
