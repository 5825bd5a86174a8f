package scoreboard

import (
	"testing"
	"time"
)

// Every formatter key must be present even for a zero-value game.
func TestFieldsAlwaysComplete(t *testing.T) {
	required := []string{
		"id", "status", "inning", "outs", "top_bottom", "extra_innings",
		"delay", "postponed", "suspended", "venue", "live_url", "start_time",
	}
	sideKeys := []string{
		"city", "name", "abbreviation", "wins", "losses", "score",
		"team", "color", "favorite",
	}

	fields := (Game{}).Fields(FieldOptions{})
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing field %q", key)
		}
	}
	for _, side := range []string{"home", "away"} {
		for _, key := range sideKeys {
			if _, ok := fields[side+"_"+key]; !ok {
				t.Fatalf("missing field %s_%s", side, key)
			}
		}
	}

	if fields["home_wins"] != "0" || fields["away_score"] != "0" {
		t.Fatalf("expected numeric fields to default to 0, got %v", fields)
	}
	if fields["delay"] != "" || fields["top_bottom"] != "" {
		t.Fatalf("expected text fields to default to empty string")
	}
}

func TestFieldsTeamFormatModes(t *testing.T) {
	g := testGame()
	cases := map[string]string{
		TeamFormatName:         "Mariners",
		TeamFormatAbbreviation: "SEA",
		TeamFormatCity:         "Seattle",
		"":                     "Mariners",
	}
	for mode, expected := range cases {
		fields := g.Fields(FieldOptions{TeamFormat: mode})
		if fields["home_team"] != expected {
			t.Fatalf("mode %q: expected %q, got %q", mode, expected, fields["home_team"])
		}
	}
}

func TestFieldsFavoritesAndColors(t *testing.T) {
	g := testGame()
	fields := g.Fields(FieldOptions{
		FavoriteMarker: "★",
		Favorites:      []string{"SEA"},
		Colors:         DefaultTeamColors(),
	})

	if fields["home_favorite"] != "★" {
		t.Fatalf("expected home favorite marker, got %q", fields["home_favorite"])
	}
	if fields["away_favorite"] != "" {
		t.Fatalf("expected empty away favorite, got %q", fields["away_favorite"])
	}
	if fields["home_color"] != "#2E8B90" {
		t.Fatalf("unexpected home color %q", fields["home_color"])
	}
}

func TestFieldsStartTimeLayout(t *testing.T) {
	g := testGame()
	fields := g.Fields(FieldOptions{TimeLayout: "2006-01-02 15:04 MST"})
	expected := time.Date(2024, 6, 15, 2, 10, 0, 0, time.UTC).Local().Format("2006-01-02 15:04 MST")
	if fields["start_time"] != expected {
		t.Fatalf("expected %q, got %q", expected, fields["start_time"])
	}
}
