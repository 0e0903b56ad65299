package merge

import (
	"math"
	"sort"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/catalog"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// Inputs carries one run's fetched datasets into the merge.
type Inputs struct {
	Season     int
	Teams      int
	Roster     []players.Player
	Boards     []adp.Board
	SeasonLog  stats.SeasonLog
	FuzzyFloor float64
}

// Result is the consolidated database plus the match accounting the quality
// report needs.
type Result struct {
	Database       catalog.DraftDatabase
	MatchedADP     int
	MatchRate      float64
	ADPCandidates  int
	UnmatchedStats int
}

// Merge joins the roster with draft boards and the season's stat lines. Every
// roster player yields exactly one consolidated record; ADP and performance
// linkage is best-effort. Identical inputs produce identical output: players
// are walked in ID order, candidates in normalized-name order, and each board
// record links to at most one player.
func Merge(in Inputs) Result {
	floor := in.FuzzyFloor
	if floor <= 0 {
		floor = defaultFuzzyFloor
	}

	roster := append([]players.Player(nil), in.Roster...)
	sort.Slice(roster, func(i, j int) bool { return roster[i].ID < roster[j].ID })

	pools := make(map[formats.Format]*adpPool, len(in.Boards))
	var boardOrder []formats.Format
	candidates := 0
	for _, board := range in.Boards {
		if _, dup := pools[board.Format]; dup {
			continue
		}
		pools[board.Format] = newADPPool(board.Records, floor)
		boardOrder = append(boardOrder, board.Format)
		candidates += len(board.Records)
	}

	records := make([]catalog.ConsolidatedRecord, 0, len(roster))
	matched := 0
	for _, player := range roster {
		rec := catalog.ConsolidatedRecord{Player: player}
		for _, format := range boardOrder {
			if adpRec, ok := pools[format].match(player); ok {
				rec.ADP.Set(format, adpRec)
			}
		}
		if !rec.ADP.Empty() {
			matched++
		}
		records = append(records, rec)
	}

	index := newPlayerIndex(roster, floor)
	unmatchedStats := 0
	for _, perf := range in.SeasonLog.Entries {
		i, ok := index.find(perf)
		if !ok {
			unmatchedStats++
			continue
		}
		if perf.PlayerID == "" {
			perf.PlayerID = roster[i].ID
		}
		records[i].Performances = append(records[i].Performances, perf)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Player.Name != records[j].Player.Name {
			return records[i].Player.Name < records[j].Player.Name
		}
		return records[i].Player.ID < records[j].Player.ID
	})

	return Result{
		Database:       catalog.NewDraftDatabase(in.Season, in.Teams, boardOrder, records),
		MatchedADP:     matched,
		MatchRate:      MatchRate(matched, len(roster)),
		ADPCandidates:  candidates,
		UnmatchedStats: unmatchedStats,
	}
}

// MatchRate is the percentage of roster players that matched at least one
// board, rounded to two decimals.
func MatchRate(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(total)*100*100) / 100
}
