package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MaxSeasonWeek is the last week of the NFL regular season.
const MaxSeasonWeek = 18

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SeasonWeek derives the NFL week number for now given the season kickoff
// date. Week 0 means preseason; weeks are capped at MaxSeasonWeek.
func SeasonWeek(kickoff, now time.Time) int {
	if now.Before(kickoff) {
		return 0
	}
	days := int(now.Sub(kickoff).Hours() / 24)
	week := days/7 + 1
	if week > MaxSeasonWeek {
		return MaxSeasonWeek
	}
	return week
}
