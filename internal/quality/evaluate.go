package quality

import (
	"fmt"
	"time"

	"draftline/internal/domain/catalog"
)

// Default thresholds, matching the pipeline configuration defaults.
const (
	DefaultRedBelow    = 60.0
	DefaultYellowBelow = 80.0
)

// Thresholds are the match-rate floors and roster minimum a run is judged
// against. Zero values fall back to defaults.
type Thresholds struct {
	RedBelow    float64
	YellowBelow float64
	MinRoster   int
}

func (t Thresholds) normalized() Thresholds {
	if t.RedBelow <= 0 {
		t.RedBelow = DefaultRedBelow
	}
	if t.YellowBelow <= 0 {
		t.YellowBelow = DefaultYellowBelow
	}
	if t.MinRoster <= 0 {
		t.MinRoster = 1
	}
	return t
}

// Inputs is everything Evaluate judges. The caller supplies run identity and
// clock so evaluation itself stays a pure function.
type Inputs struct {
	RunID         string
	GeneratedAt   time.Time
	Season        int
	Week          int
	Roster        int
	ADPCandidates int
	MatchedADP    int
	MatchRate     float64
	WeekStats     int
	Consolidated  []catalog.ConsolidatedRecord
	Degraded      []string
	Thresholds    Thresholds
}

// Evaluate classifies one run. Any failure turns the report red and blocks
// publishing; warnings and degraded sources only mark it yellow.
func Evaluate(in Inputs) Report {
	t := in.Thresholds.normalized()

	report := Report{
		RunID:     in.RunID,
		Season:    in.Season,
		Week:      in.Week,
		MatchRate: in.MatchRate,
		Counts: Counts{
			Roster:        in.Roster,
			ADPCandidates: in.ADPCandidates,
			MatchedADP:    in.MatchedADP,
			WeekStats:     in.WeekStats,
			Consolidated:  len(in.Consolidated),
		},
		Degraded:    append([]string(nil), in.Degraded...),
		GeneratedAt: in.GeneratedAt,
	}

	if len(in.Consolidated) == 0 {
		report.Failures = append(report.Failures, "no consolidated records produced")
	}

	if broken := countBrokenIdentities(in.Consolidated); broken > 0 {
		report.Failures = append(report.Failures,
			fmt.Sprintf("%d consolidated records with missing identity fields", broken))
	}

	if in.Roster > 0 && in.Roster < t.MinRoster {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("roster size %d below minimum %d", in.Roster, t.MinRoster))
	}

	switch {
	case in.ADPCandidates == 0:
		report.Warnings = append(report.Warnings, "no adp candidates fetched; match rate not evaluated")
	case in.MatchRate < t.RedBelow:
		report.Failures = append(report.Failures,
			fmt.Sprintf("adp match rate %.2f%% below red floor %.2f%%", in.MatchRate, t.RedBelow))
	case in.MatchRate < t.YellowBelow:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("adp match rate %.2f%% below target %.2f%%", in.MatchRate, t.YellowBelow))
	}

	if in.Week > 0 && in.WeekStats == 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("no weekly stats collected for week %d", in.Week))
	}

	switch {
	case len(report.Failures) > 0:
		report.Status = StatusRed
	case len(report.Warnings) > 0 || len(report.Degraded) > 0:
		report.Status = StatusYellow
	default:
		report.Status = StatusGreen
	}
	return report
}

// countBrokenIdentities counts records whose player is missing any of the
// fields every consolidated record must carry.
func countBrokenIdentities(records []catalog.ConsolidatedRecord) int {
	broken := 0
	for _, rec := range records {
		p := rec.Player
		if p.ID == "" || p.Name == "" || p.Position == "" || p.Team == "" {
			broken++
		}
	}
	return broken
}
