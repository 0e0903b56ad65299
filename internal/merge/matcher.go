package merge

import (
	"sort"

	"github.com/antzucaro/matchr"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// defaultFuzzyFloor is the Jaro-Winkler similarity below which two names are
// never considered the same player.
const defaultFuzzyFloor = 0.92

// adpPool holds one board's records and hands each out at most once. The
// ladder runs exact name+team, then name+position, then fuzzy name within
// the position group.
type adpPool struct {
	records    []adp.Record
	names      []string
	byNameTeam map[string][]int
	byNamePos  map[string][]int
	claimed    []bool
	floor      float64
}

func newADPPool(records []adp.Record, floor float64) *adpPool {
	sorted := append([]adp.Record(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		ni, nj := NormalizeName(sorted[i].PlayerName), NormalizeName(sorted[j].PlayerName)
		if ni != nj {
			return ni < nj
		}
		if sorted[i].Team != sorted[j].Team {
			return sorted[i].Team < sorted[j].Team
		}
		return sorted[i].Position < sorted[j].Position
	})

	p := &adpPool{
		records:    sorted,
		names:      make([]string, len(sorted)),
		byNameTeam: make(map[string][]int, len(sorted)),
		byNamePos:  make(map[string][]int, len(sorted)),
		claimed:    make([]bool, len(sorted)),
		floor:      floor,
	}
	for i, rec := range sorted {
		name := NormalizeName(rec.PlayerName)
		p.names[i] = name
		teamKey := name + "|" + NormalizeTeam(rec.Team)
		posKey := name + "|" + rec.Position
		p.byNameTeam[teamKey] = append(p.byNameTeam[teamKey], i)
		p.byNamePos[posKey] = append(p.byNamePos[posKey], i)
	}
	return p
}

// match finds the board record for a player, claiming it so later players
// cannot reuse it.
func (p *adpPool) match(player players.Player) (adp.Record, bool) {
	name := NormalizeName(player.Name)
	if name == "" {
		return adp.Record{}, false
	}

	if i, ok := p.claim(p.byNameTeam[name+"|"+NormalizeTeam(player.Team)]); ok {
		return p.records[i], true
	}
	if i, ok := p.claim(p.byNamePos[name+"|"+player.Position]); ok {
		return p.records[i], true
	}

	bestIdx, bestScore := -1, 0.0
	for i := range p.records {
		if p.claimed[i] || p.records[i].Position != player.Position {
			continue
		}
		score := matchr.JaroWinkler(name, p.names[i], false)
		if score < p.floor {
			continue
		}
		if score > bestScore {
			bestScore, bestIdx = score, i
		}
	}
	if bestIdx < 0 {
		return adp.Record{}, false
	}
	p.claimed[bestIdx] = true
	return p.records[bestIdx], true
}

func (p *adpPool) claim(indexes []int) (int, bool) {
	for _, i := range indexes {
		if !p.claimed[i] {
			p.claimed[i] = true
			return i, true
		}
	}
	return 0, false
}

// playerIndex resolves stat rows back to roster players. Unlike the ADP
// pool nothing is claimed; one player accumulates a row per week.
type playerIndex struct {
	roster     []players.Player
	names      []string
	byID       map[string]int
	byNameTeam map[string][]int
	byNamePos  map[string][]int
	floor      float64
}

// newPlayerIndex indexes a roster that is already in its final sorted order.
func newPlayerIndex(roster []players.Player, floor float64) *playerIndex {
	ix := &playerIndex{
		roster:     roster,
		names:      make([]string, len(roster)),
		byID:       make(map[string]int, len(roster)),
		byNameTeam: make(map[string][]int, len(roster)),
		byNamePos:  make(map[string][]int, len(roster)),
		floor:      floor,
	}
	for i, player := range roster {
		name := NormalizeName(player.Name)
		ix.names[i] = name
		if player.ID != "" {
			if _, dup := ix.byID[player.ID]; !dup {
				ix.byID[player.ID] = i
			}
		}
		teamKey := name + "|" + NormalizeTeam(player.Team)
		posKey := name + "|" + player.Position
		ix.byNameTeam[teamKey] = append(ix.byNameTeam[teamKey], i)
		ix.byNamePos[posKey] = append(ix.byNamePos[posKey], i)
	}
	return ix
}

// find returns the roster index a stat row belongs to.
func (ix *playerIndex) find(rec stats.PerformanceRecord) (int, bool) {
	if rec.PlayerID != "" {
		if i, ok := ix.byID[rec.PlayerID]; ok {
			return i, true
		}
	}

	name := NormalizeName(rec.PlayerName)
	if name == "" {
		return 0, false
	}
	if idxs := ix.byNameTeam[name+"|"+NormalizeTeam(rec.Team)]; len(idxs) > 0 {
		return idxs[0], true
	}
	if idxs := ix.byNamePos[name+"|"+rec.Position]; len(idxs) > 0 {
		return idxs[0], true
	}

	bestIdx, bestScore := -1, 0.0
	for i := range ix.roster {
		if ix.roster[i].Position != rec.Position {
			continue
		}
		score := matchr.JaroWinkler(name, ix.names[i], false)
		if score < ix.floor {
			continue
		}
		if score > bestScore {
			bestScore, bestIdx = score, i
		}
	}
	if bestIdx < 0 {
		return 0, false
	}
	return bestIdx, true
}
