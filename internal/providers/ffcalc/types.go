package ffcalc

// SourceName labels ffcalc in logs, metrics and degradation notes.
const SourceName = "ffcalc"

// adpResponse is the envelope Fantasy Football Calculator wraps every ADP
// answer in. Failures come back with HTTP 200 and a non-Success status.
type adpResponse struct {
	Status  string              `json:"status"`
	Meta    adpMetaResponse     `json:"meta"`
	Players []adpPlayerResponse `json:"players"`
}

type adpMetaResponse struct {
	Type        string `json:"type"`
	Teams       int    `json:"teams"`
	Rounds      int    `json:"rounds"`
	TotalDrafts int    `json:"total_drafts"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type adpPlayerResponse struct {
	PlayerID     int     `json:"player_id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Team         string  `json:"team"`
	ADP          float64 `json:"adp"`
	ADPFormatted string  `json:"adp_formatted"`
	TimesDrafted int     `json:"times_drafted"`
	High         int     `json:"high"`
	Low          int     `json:"low"`
	Stdev        float64 `json:"stdev"`
	Bye          int     `json:"bye"`
}
