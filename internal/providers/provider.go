package providers

import (
	"context"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// PlayerSource fetches the normalized fantasy-relevant roster.
type PlayerSource interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// ADPSource fetches one scoring format's draft board. Season and league size
// are fixed at construction; the format varies per call.
type ADPSource interface {
	FetchADP(ctx context.Context, format formats.Format) (adp.Board, error)
}

// StatsSource fetches one week's scored performances.
type StatsSource interface {
	FetchWeekStats(ctx context.Context, season, week int) ([]stats.PerformanceRecord, error)
}

// DataSource combines all source capabilities.
type DataSource interface {
	PlayerSource
	ADPSource
	StatsSource
}

// Composite bundles one source per concern into a DataSource.
type Composite struct {
	Players PlayerSource
	ADP     ADPSource
	Stats   StatsSource
}

func NewComposite(playerSrc PlayerSource, adpSrc ADPSource, statsSrc StatsSource) *Composite {
	return &Composite{
		Players: playerSrc,
		ADP:     adpSrc,
		Stats:   statsSrc,
	}
}

func (c *Composite) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if c == nil || c.Players == nil {
		return nil, ErrSourceUnavailable
	}
	return c.Players.FetchPlayers(ctx)
}

func (c *Composite) FetchADP(ctx context.Context, format formats.Format) (adp.Board, error) {
	if c == nil || c.ADP == nil {
		return adp.Board{}, ErrSourceUnavailable
	}
	return c.ADP.FetchADP(ctx, format)
}

func (c *Composite) FetchWeekStats(ctx context.Context, season, week int) ([]stats.PerformanceRecord, error) {
	if c == nil || c.Stats == nil {
		return nil, ErrSourceUnavailable
	}
	return c.Stats.FetchWeekStats(ctx, season, week)
}
