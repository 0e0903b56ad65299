package fixture

import (
	"context"
	"fmt"
	"sort"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// Provider serves a static eight-player league useful for local runs and
// offseason testing, when live stats do not exist yet. All three source
// interfaces are implemented from the same tables so names and teams line up
// across roster, boards and stat lines.
type Provider struct {
	season int
	teams  int
}

// New creates a fixture provider for the given season and league size.
func New(season, teams int) *Provider {
	return &Provider{season: season, teams: teams}
}

// FetchPlayers returns a deterministic roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return []players.Player{
		{
			ID: "4984", Name: "Josh Allen", Position: "QB", Team: "BUF",
			Meta: players.PlayerMeta{FirstName: "Josh", LastName: "Allen", Status: "Active", Age: 29, YearsExp: 7, College: "Wyoming"},
		},
		{
			ID: "4034", Name: "Christian McCaffrey", Position: "RB", Team: "SF",
			Meta: players.PlayerMeta{FirstName: "Christian", LastName: "McCaffrey", Status: "Active", Age: 29, YearsExp: 8, College: "Stanford"},
		},
		{
			ID: "4039", Name: "Cooper Kupp", Position: "WR", Team: "LAR",
			Meta: players.PlayerMeta{FirstName: "Cooper", LastName: "Kupp", Status: "Active", Age: 32, YearsExp: 8, College: "Eastern Washington"},
		},
		{
			ID: "1466", Name: "Travis Kelce", Position: "TE", Team: "KC",
			Meta: players.PlayerMeta{FirstName: "Travis", LastName: "Kelce", Status: "Active", Age: 35, YearsExp: 12, College: "Cincinnati"},
		},
		{
			ID: "3321", Name: "Tyreek Hill", Position: "WR", Team: "MIA",
			Meta: players.PlayerMeta{FirstName: "Tyreek", LastName: "Hill", Status: "Active", Age: 31, YearsExp: 9, College: "West Alabama"},
		},
		{
			ID: "2749", Name: "Derrick Henry", Position: "RB", Team: "BAL",
			Meta: players.PlayerMeta{FirstName: "Derrick", LastName: "Henry", Status: "Active", Age: 31, YearsExp: 9, College: "Alabama"},
		},
		{
			ID: "4046", Name: "Patrick Mahomes", Position: "QB", Team: "KC",
			Meta: players.PlayerMeta{FirstName: "Patrick", LastName: "Mahomes", Status: "Active", Age: 29, YearsExp: 8, College: "Texas Tech"},
		},
		{
			ID: "2133", Name: "Davante Adams", Position: "WR", Team: "LV",
			Meta: players.PlayerMeta{FirstName: "Davante", LastName: "Adams", Status: "Active", Age: 32, YearsExp: 11, College: "Fresno State"},
		},
	}, nil
}

// adpSeed drives one board record. ADP values differ per format; reception
// heavy players climb as the reception bonus grows.
type adpSeed struct {
	name, team, position string
	bye                  int
	adp                  map[formats.Format]float64
	timesDrafted         int
	high, low            int
	stdev                float64
}

func adpSeeds() []adpSeed {
	return []adpSeed{
		{
			name: "Christian McCaffrey", team: "SF", position: "RB", bye: 9,
			adp:          map[formats.Format]float64{formats.Standard: 1.8, formats.HalfPPR: 1.6, formats.PPR: 1.5},
			timesDrafted: 540, high: 1, low: 4, stdev: 0.7,
		},
		{
			name: "Tyreek Hill", team: "MIA", position: "WR", bye: 6,
			adp:          map[formats.Format]float64{formats.Standard: 4.2, formats.HalfPPR: 3.4, formats.PPR: 2.9},
			timesDrafted: 512, high: 1, low: 7, stdev: 1.1,
		},
		{
			name: "Cooper Kupp", team: "LAR", position: "WR", bye: 6,
			adp:          map[formats.Format]float64{formats.Standard: 6.8, formats.HalfPPR: 5.9, formats.PPR: 5.2},
			timesDrafted: 488, high: 3, low: 11, stdev: 1.6,
		},
		{
			name: "Travis Kelce", team: "KC", position: "TE", bye: 10,
			adp:          map[formats.Format]float64{formats.Standard: 9.5, formats.HalfPPR: 8.1, formats.PPR: 7.3},
			timesDrafted: 470, high: 4, low: 14, stdev: 2.0,
		},
		{
			name: "Derrick Henry", team: "BAL", position: "RB", bye: 14,
			adp:          map[formats.Format]float64{formats.Standard: 8.9, formats.HalfPPR: 11.0, formats.PPR: 12.6},
			timesDrafted: 455, high: 5, low: 17, stdev: 2.4,
		},
		{
			name: "Davante Adams", team: "LV", position: "WR", bye: 10,
			adp:          map[formats.Format]float64{formats.Standard: 10.4, formats.HalfPPR: 9.2, formats.PPR: 8.8},
			timesDrafted: 431, high: 6, low: 15, stdev: 1.9,
		},
		{
			name: "Josh Allen", team: "BUF", position: "QB", bye: 12,
			adp:          map[formats.Format]float64{formats.Standard: 22.0, formats.HalfPPR: 22.5, formats.PPR: 23.1},
			timesDrafted: 402, high: 14, low: 31, stdev: 3.8,
		},
		{
			name: "Patrick Mahomes", team: "KC", position: "QB", bye: 10,
			adp:          map[formats.Format]float64{formats.Standard: 25.3, formats.HalfPPR: 26.0, formats.PPR: 26.8},
			timesDrafted: 390, high: 17, low: 36, stdev: 4.1,
		},
	}
}

// FetchADP returns a deterministic board for the requested format, ordered by
// ascending draft position.
func (p *Provider) FetchADP(ctx context.Context, format formats.Format) (adp.Board, error) {
	_ = ctx
	seeds := adpSeeds()
	board := adp.Board{
		Format:  format,
		Season:  p.season,
		Teams:   p.teams,
		Records: make([]adp.Record, 0, len(seeds)),
	}
	for _, seed := range seeds {
		value, ok := seed.adp[format]
		if !ok {
			return adp.Board{}, fmt.Errorf("fixture: no adp seeded for format %q", format)
		}
		board.Records = append(board.Records, adp.Record{
			PlayerName:   seed.name,
			Team:         seed.team,
			Position:     seed.position,
			Bye:          seed.bye,
			ADP:          value,
			ADPFormatted: formatPick(value, p.teams),
			TimesDrafted: seed.timesDrafted,
			High:         seed.high,
			Low:          seed.low,
			Stdev:        seed.stdev,
		})
	}
	sortBoard(&board)
	return board, nil
}

// FetchWeekStats returns the same eight stat lines for any played week, with
// the requested season and week stamped in.
func (p *Provider) FetchWeekStats(ctx context.Context, season, week int) ([]stats.PerformanceRecord, error) {
	_ = ctx
	lines := []struct {
		name, position, team string
		line                 stats.StatLine
	}{
		{"Josh Allen", "QB", "BUF", stats.StatLine{PassYds: 285, PassTDs: 3, Interceptions: 1, RushYds: 45, RushTDs: 1}},
		{"Christian McCaffrey", "RB", "SF", stats.StatLine{RushYds: 120, RushTDs: 2, Receptions: 6, RecYds: 55, RecTDs: 1}},
		{"Cooper Kupp", "WR", "LAR", stats.StatLine{Receptions: 9, RecYds: 115, RecTDs: 2}},
		{"Travis Kelce", "TE", "KC", stats.StatLine{Receptions: 7, RecYds: 85, RecTDs: 1}},
		{"Tyreek Hill", "WR", "MIA", stats.StatLine{Receptions: 8, RecYds: 95, RecTDs: 1}},
		{"Derrick Henry", "RB", "BAL", stats.StatLine{RushYds: 95, RushTDs: 1, Receptions: 2, RecYds: 25}},
		{"Patrick Mahomes", "QB", "KC", stats.StatLine{PassYds: 320, PassTDs: 2, Interceptions: 1, RushYds: 25}},
		{"Davante Adams", "WR", "LV", stats.StatLine{Receptions: 7, RecYds: 88}},
	}

	records := make([]stats.PerformanceRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, stats.PerformanceRecord{
			PlayerName: l.name,
			Team:       l.team,
			Position:   l.position,
			Season:     season,
			Week:       week,
			Line:       l.line,
			Points:     stats.PointsFor(l.line),
		})
	}
	return records, nil
}

// formatPick renders an overall pick as the round.pick notation draft rooms
// use, e.g. 1.01 for the first overall pick in a 12-team league.
func formatPick(overall float64, teams int) string {
	if teams <= 0 {
		teams = 12
	}
	pick := int(overall + 0.5)
	if pick < 1 {
		pick = 1
	}
	round := (pick-1)/teams + 1
	slot := (pick-1)%teams + 1
	return fmt.Sprintf("%d.%02d", round, slot)
}

func sortBoard(board *adp.Board) {
	sort.Slice(board.Records, func(i, j int) bool {
		return board.Records[i].ADP < board.Records[j].ADP
	})
}
