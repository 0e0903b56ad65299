package catalog

import (
	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// ConsolidatedRecord joins one player's roster identity with their draft
// position per format and any weekly performances collected so far.
type ConsolidatedRecord struct {
	Player       players.Player            `json:"player"`
	ADP          adp.ByFormat              `json:"adp"`
	Performances []stats.PerformanceRecord `json:"performances,omitempty"`
}

// DraftDatabase is the season's consolidated output: every fantasy-relevant
// player with whatever draft and performance data matched up.
type DraftDatabase struct {
	Season  int                  `json:"season"`
	Teams   int                  `json:"teams"`
	Formats []formats.Format     `json:"formatsCollected,omitempty"`
	Records []ConsolidatedRecord `json:"records"`
}

// NewDraftDatabase builds a DraftDatabase payload.
func NewDraftDatabase(season, teams int, collected []formats.Format, records []ConsolidatedRecord) DraftDatabase {
	return DraftDatabase{
		Season:  season,
		Teams:   teams,
		Formats: collected,
		Records: records,
	}
}
