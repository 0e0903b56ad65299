package stats

import "sort"

// StatLine holds the raw counting stats for one player in one week.
type StatLine struct {
	PassYds       float64 `json:"passYds"`
	PassTDs       float64 `json:"passTds"`
	Interceptions float64 `json:"interceptions"`
	RushYds       float64 `json:"rushYds"`
	RushTDs       float64 `json:"rushTds"`
	Receptions    float64 `json:"receptions"`
	RecYds        float64 `json:"recYds"`
	RecTDs        float64 `json:"recTds"`
}

// Add accumulates another line into this one.
func (s *StatLine) Add(other StatLine) {
	s.PassYds += other.PassYds
	s.PassTDs += other.PassTDs
	s.Interceptions += other.Interceptions
	s.RushYds += other.RushYds
	s.RushTDs += other.RushTDs
	s.Receptions += other.Receptions
	s.RecYds += other.RecYds
	s.RecTDs += other.RecTDs
}

// PerformanceRecord is one player's scored output for a single week.
type PerformanceRecord struct {
	PlayerID   string   `json:"playerId,omitempty"`
	PlayerName string   `json:"playerName"`
	Team       string   `json:"team"`
	Position   string   `json:"position"`
	Season     int      `json:"season"`
	Week       int      `json:"week"`
	Line       StatLine `json:"line"`
	Points     Points   `json:"points"`
}

// SeasonLog accumulates weekly performances across a season. Re-collecting a
// week replaces that week's entries instead of appending duplicates.
type SeasonLog struct {
	Season  int                 `json:"season"`
	Entries []PerformanceRecord `json:"entries"`
}

// ReplaceWeek swaps in fresh entries for one week, keeping the log sorted by
// week then player name so rewrites stay byte-stable.
func (l *SeasonLog) ReplaceWeek(week int, entries []PerformanceRecord) {
	kept := l.Entries[:0]
	for _, e := range l.Entries {
		if e.Week != week {
			kept = append(kept, e)
		}
	}
	l.Entries = append(kept, entries...)
	sort.Slice(l.Entries, func(i, j int) bool {
		if l.Entries[i].Week != l.Entries[j].Week {
			return l.Entries[i].Week < l.Entries[j].Week
		}
		if l.Entries[i].PlayerName != l.Entries[j].PlayerName {
			return l.Entries[i].PlayerName < l.Entries[j].PlayerName
		}
		return l.Entries[i].PlayerID < l.Entries[j].PlayerID
	})
}

// Weeks returns the distinct weeks present in the log, ascending.
func (l SeasonLog) Weeks() []int {
	seen := map[int]bool{}
	var weeks []int
	for _, e := range l.Entries {
		if !seen[e.Week] {
			seen[e.Week] = true
			weeks = append(weeks, e.Week)
		}
	}
	sort.Ints(weeks)
	return weeks
}

// TotalRecord summarizes one player's season: accumulated stats, total
// points, and per-game averages.
type TotalRecord struct {
	PlayerID    string   `json:"playerId,omitempty"`
	PlayerName  string   `json:"playerName"`
	Team        string   `json:"team"`
	Position    string   `json:"position"`
	GamesPlayed int      `json:"gamesPlayed"`
	Totals      StatLine `json:"totals"`
	Points      Points   `json:"points"`
	PerGame     Points   `json:"averagePerGame"`
}

// Totals aggregates a season log into per-player totals, sorted by player
// name for stable output.
func Totals(log SeasonLog) []TotalRecord {
	type key struct{ id, name string }
	byPlayer := map[key]*TotalRecord{}
	var order []key

	for _, e := range log.Entries {
		k := key{id: e.PlayerID, name: e.PlayerName}
		rec, ok := byPlayer[k]
		if !ok {
			rec = &TotalRecord{
				PlayerID:   e.PlayerID,
				PlayerName: e.PlayerName,
				Team:       e.Team,
				Position:   e.Position,
			}
			byPlayer[k] = rec
			order = append(order, k)
		}
		rec.GamesPlayed++
		rec.Totals.Add(e.Line)
		rec.Team = e.Team
	}

	totals := make([]TotalRecord, 0, len(order))
	for _, k := range order {
		rec := byPlayer[k]
		rec.Points = PointsFor(rec.Totals)
		rec.PerGame = rec.Points.PerGame(rec.GamesPlayed)
		totals = append(totals, *rec)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].PlayerName != totals[j].PlayerName {
			return totals[i].PlayerName < totals[j].PlayerName
		}
		return totals[i].PlayerID < totals[j].PlayerID
	})
	return totals
}
