package ffcalc

import (
	"strings"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
)

// mapBoard converts an upstream envelope into a draft board. Records without
// a name are dropped; the second return counts them.
func mapBoard(format formats.Format, season, teams int, payload adpResponse) (adp.Board, int) {
	board := adp.Board{
		Format:  format,
		Season:  season,
		Teams:   teams,
		Records: make([]adp.Record, 0, len(payload.Players)),
	}

	skipped := 0
	for _, p := range payload.Players {
		rec, ok := mapRecord(p)
		if !ok {
			skipped++
			continue
		}
		board.Records = append(board.Records, rec)
	}
	return board, skipped
}

func mapRecord(p adpPlayerResponse) (adp.Record, bool) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return adp.Record{}, false
	}

	team := strings.TrimSpace(p.Team)
	if team == "" {
		team = players.FreeAgentTeam
	}

	return adp.Record{
		PlayerName:   name,
		Team:         team,
		Position:     strings.TrimSpace(p.Position),
		Bye:          p.Bye,
		ADP:          p.ADP,
		ADPFormatted: strings.TrimSpace(p.ADPFormatted),
		TimesDrafted: p.TimesDrafted,
		High:         p.High,
		Low:          p.Low,
		Stdev:        p.Stdev,
	}, true
}
