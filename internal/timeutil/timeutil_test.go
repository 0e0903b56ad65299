package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestSeasonWeek(t *testing.T) {
	kickoff := time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before kickoff is preseason", kickoff.AddDate(0, 0, -10), 0},
		{"kickoff day is week 1", kickoff, 1},
		{"sixth day is still week 1", kickoff.AddDate(0, 0, 6), 1},
		{"seventh day rolls to week 2", kickoff.AddDate(0, 0, 7), 2},
		{"mid-season", kickoff.AddDate(0, 0, 9*7), 10},
		{"caps at final week", kickoff.AddDate(0, 0, 40*7), MaxSeasonWeek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeasonWeek(kickoff, tt.now); got != tt.want {
				t.Fatalf("expected week %d, got %d", tt.want, got)
			}
		})
	}
}
