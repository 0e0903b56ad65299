package adp

import "draftline/internal/domain/formats"

// Record represents one player's average draft position within a single
// scoring format.
type Record struct {
	PlayerName   string  `json:"playerName"`
	Team         string  `json:"team"`
	Position     string  `json:"position"`
	Bye          int     `json:"bye,omitempty"`
	ADP          float64 `json:"adp"`
	ADPFormatted string  `json:"adpFormatted"`
	TimesDrafted int     `json:"timesDrafted"`
	High         int     `json:"high"`
	Low          int     `json:"low"`
	Stdev        float64 `json:"stdev"`
}

// Board is one format's draft board: every ADP record fetched for a given
// season and league size.
type Board struct {
	Format  formats.Format `json:"format"`
	Season  int            `json:"season"`
	Teams   int            `json:"teams"`
	Records []Record       `json:"records"`
}

// ByFormat carries zero or one ADP record per scoring format for a single
// player. Missing formats stay nil rather than zero-valued.
type ByFormat struct {
	Standard *Record `json:"standard,omitempty"`
	HalfPPR  *Record `json:"halfPpr,omitempty"`
	PPR      *Record `json:"ppr,omitempty"`
}

// Set stores a record under the given format.
func (b *ByFormat) Set(f formats.Format, rec Record) {
	switch f {
	case formats.Standard:
		b.Standard = &rec
	case formats.HalfPPR:
		b.HalfPPR = &rec
	case formats.PPR:
		b.PPR = &rec
	}
}

// Get returns the record stored for the given format, if any.
func (b ByFormat) Get(f formats.Format) (Record, bool) {
	var rec *Record
	switch f {
	case formats.Standard:
		rec = b.Standard
	case formats.HalfPPR:
		rec = b.HalfPPR
	case formats.PPR:
		rec = b.PPR
	}
	if rec == nil {
		return Record{}, false
	}
	return *rec, true
}

// Empty reports whether no format has a record.
func (b ByFormat) Empty() bool {
	return b.Standard == nil && b.HalfPPR == nil && b.PPR == nil
}
