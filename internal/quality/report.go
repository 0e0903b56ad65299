package quality

import "time"

// Status classifies a run. Green publishes, yellow publishes with warnings,
// red blocks persistence entirely.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// Counts summarizes record volumes per stage.
type Counts struct {
	Roster        int `json:"roster"`
	ADPCandidates int `json:"adpCandidates"`
	MatchedADP    int `json:"matchedAdp"`
	WeekStats     int `json:"weekStats"`
	Consolidated  int `json:"consolidated"`
}

// Report is the run's verdict: what was collected, how well it joined, and
// whether the result is fit to publish.
type Report struct {
	RunID       string    `json:"runId"`
	Season      int       `json:"season"`
	Week        int       `json:"week"`
	Status      Status    `json:"status"`
	MatchRate   float64   `json:"matchRate"`
	Counts      Counts    `json:"counts"`
	Failures    []string  `json:"failures,omitempty"`
	Warnings    []string  `json:"warnings,omitempty"`
	Degraded    []string  `json:"degradedSources,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Publishable reports whether the dataset behind this report may be written.
func (r Report) Publishable() bool {
	return r.Status != StatusRed
}
