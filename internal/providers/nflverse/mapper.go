package nflverse

import (
	"fmt"
	"strconv"
	"strings"

	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// columnIndex resolves the columns this pipeline reads from a stats file.
// nflverse reorders and appends columns between releases, so positions are
// resolved from the header instead of being hardcoded.
type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colPosition, colRecentTeam, colWeek} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("stats file missing column %q", required)
		}
	}
	if _, ok := idx[colDisplayName]; !ok {
		if _, ok := idx[colPlayerName]; !ok {
			return nil, fmt.Errorf("stats file missing column %q", colDisplayName)
		}
	}
	return idx, nil
}

func (idx columnIndex) str(row []string, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// num parses a numeric cell. Empty and NA cells count as zero; nflverse uses
// both for stats a player did not record.
func (idx columnIndex) num(row []string, col string) (float64, error) {
	raw := idx.str(row, col)
	if raw == "" || raw == "NA" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// mapRow converts one CSV row into a weekly performance record. ok is false
// for rows outside the requested season and week, non-fantasy positions, and
// rows too mangled to score.
func mapRow(idx columnIndex, row []string, season, week int) (stats.PerformanceRecord, bool) {
	rowWeek, err := idx.num(row, colWeek)
	if err != nil || int(rowWeek) != week {
		return stats.PerformanceRecord{}, false
	}
	if raw := idx.str(row, colSeason); raw != "" {
		if rowSeason, err := strconv.Atoi(raw); err == nil && rowSeason != season {
			return stats.PerformanceRecord{}, false
		}
	}

	position := idx.str(row, colPosition)
	if !players.IsFantasyPosition(position) {
		return stats.PerformanceRecord{}, false
	}

	name := idx.str(row, colDisplayName)
	if name == "" {
		name = idx.str(row, colPlayerName)
	}
	if name == "" {
		return stats.PerformanceRecord{}, false
	}

	team := idx.str(row, colRecentTeam)
	if team == "" {
		team = players.FreeAgentTeam
	}

	var line stats.StatLine
	cells := []struct {
		col string
		dst *float64
	}{
		{colPassingYards, &line.PassYds},
		{colPassingTDs, &line.PassTDs},
		{colInterceptions, &line.Interceptions},
		{colRushingYards, &line.RushYds},
		{colRushingTDs, &line.RushTDs},
		{colReceptions, &line.Receptions},
		{colReceivingYds, &line.RecYds},
		{colReceivingTDs, &line.RecTDs},
	}
	for _, cell := range cells {
		v, err := idx.num(row, cell.col)
		if err != nil {
			return stats.PerformanceRecord{}, false
		}
		*cell.dst = v
	}

	return stats.PerformanceRecord{
		PlayerName: name,
		Team:       team,
		Position:   position,
		Season:     season,
		Week:       week,
		Line:       line,
		Points:     stats.PointsFor(line),
	}, true
}
