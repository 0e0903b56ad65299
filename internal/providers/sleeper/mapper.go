package sleeper

import (
	"strings"

	"draftline/internal/domain/players"
)

// mapPlayer converts one dump entry into a domain player. The second return
// is false for entries the pipeline has no use for: non-fantasy positions and
// records with no usable name.
func mapPlayer(id string, p playerResponse) (players.Player, bool) {
	position := resolvePosition(p)
	if position == "" {
		return players.Player{}, false
	}

	name := resolveName(p)
	if name == "" {
		return players.Player{}, false
	}

	team := strings.TrimSpace(p.Team)
	if team == "" {
		team = players.FreeAgentTeam
	}

	status := strings.TrimSpace(p.Status)
	if status == "" {
		status = "Active"
	}

	return players.Player{
		ID:       id,
		Name:     name,
		Position: position,
		Team:     team,
		Meta: players.PlayerMeta{
			FirstName: strings.TrimSpace(p.FirstName),
			LastName:  strings.TrimSpace(p.LastName),
			Status:    status,
			Age:       p.Age,
			YearsExp:  p.YearsExp,
			College:   strings.TrimSpace(p.College),
		},
	}, true
}

// resolvePosition prefers the primary position and falls back to the first
// fantasy-eligible slot. Dual-eligibility players often list their primary
// position as something unrosterable (e.g. "FB").
func resolvePosition(p playerResponse) string {
	if pos := strings.TrimSpace(p.Position); players.IsFantasyPosition(pos) {
		return pos
	}
	for _, pos := range p.FantasyPositions {
		pos = strings.TrimSpace(pos)
		if players.IsFantasyPosition(pos) {
			return pos
		}
	}
	return ""
}

func resolveName(p playerResponse) string {
	if full := strings.TrimSpace(p.FullName); full != "" {
		return full
	}
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
