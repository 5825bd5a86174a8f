package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Games that start in the evening run past midnight Eastern, so the schedule
// for "today" keeps showing the previous day until this hour.
const rolloverHourEastern = 10

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// APIDate resolves the schedule date to request. A valid override date wins;
// otherwise the current day in US/Eastern is used, shifted back one calendar
// day before 10:00 Eastern so late games from the previous evening stay up.
func APIDate(now time.Time, override string) string {
	if override != "" {
		if _, err := ParseDate(override); err == nil {
			return override
		}
	}

	eastern := now.In(easternLocation())
	if eastern.Hour() < rolloverHourEastern {
		eastern = eastern.AddDate(0, 0, -1)
	}
	return FormatDate(eastern)
}

func easternLocation() *time.Location {
	if loc, err := time.LoadLocation("America/New_York"); err == nil {
		return loc
	}
	return time.UTC
}
