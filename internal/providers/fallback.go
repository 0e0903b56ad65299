package providers

import (
	"context"
	"fmt"
	"log/slog"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// PlayerCache supplies the last known-good roster when live fetches fail.
type PlayerCache interface {
	ReadPlayers(ctx context.Context) ([]players.Player, error)
}

// ADPCache supplies the prior run's draft board for a format.
type ADPCache interface {
	ReadBoard(ctx context.Context, format formats.Format) (adp.Board, error)
}

type fallbackPlayerSource struct {
	inner  PlayerSource
	cache  PlayerCache
	logger *slog.Logger
	status *Status
}

// NewFallbackPlayerSource serves the cached roster when the live source
// fails, and degrades to an empty roster when there is no usable cache. The
// empty set fails validation downstream; a canceled context still
// propagates.
func NewFallbackPlayerSource(inner PlayerSource, cache PlayerCache, logger *slog.Logger, status *Status) PlayerSource {
	return &fallbackPlayerSource{
		inner:  inner,
		cache:  cache,
		logger: logger,
		status: status,
	}
}

func (s *fallbackPlayerSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if s.inner == nil {
		return nil, ErrSourceUnavailable
	}
	roster, err := s.inner.FetchPlayers(ctx)
	if err == nil {
		return roster, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	logWithSource(ctx, s.logger, slog.LevelWarn, s.status.Source(), "live roster fetch failed, trying cache", "err", err)
	if s.cache != nil {
		cached, cacheErr := s.cache.ReadPlayers(ctx)
		if cacheErr == nil && len(cached) > 0 {
			s.status.markDegraded(fmt.Sprintf("roster served from cache: %v", err))
			return cached, nil
		}
		if cacheErr != nil {
			logWithSource(ctx, s.logger, slog.LevelWarn, s.status.Source(), "roster cache read failed", "err", cacheErr)
		}
	}

	s.status.markDegraded(fmt.Sprintf("roster unavailable, continuing with empty set: %v", err))
	return nil, nil
}

type fallbackADPSource struct {
	inner  ADPSource
	cache  ADPCache
	logger *slog.Logger
	status *Status
}

// NewFallbackADPSource substitutes the prior run's board when the live
// source fails, and degrades to an empty board when there is none. A failed
// ADP fetch never aborts the run.
func NewFallbackADPSource(inner ADPSource, cache ADPCache, logger *slog.Logger, status *Status) ADPSource {
	return &fallbackADPSource{
		inner:  inner,
		cache:  cache,
		logger: logger,
		status: status,
	}
}

func (s *fallbackADPSource) FetchADP(ctx context.Context, format formats.Format) (adp.Board, error) {
	if s.inner == nil {
		return adp.Board{}, ErrSourceUnavailable
	}
	board, err := s.inner.FetchADP(ctx, format)
	if err == nil {
		return board, nil
	}
	if ctx.Err() != nil {
		return adp.Board{}, err
	}

	logWithSource(ctx, s.logger, slog.LevelWarn, s.status.Source(), "live adp fetch failed, trying prior board",
		"format", format.String(), "err", err)
	if s.cache != nil {
		prior, cacheErr := s.cache.ReadBoard(ctx, format)
		if cacheErr == nil && len(prior.Records) > 0 {
			s.status.markDegraded(fmt.Sprintf("%s adp served from prior run: %v", format, err))
			return prior, nil
		}
		if cacheErr != nil {
			logWithSource(ctx, s.logger, slog.LevelWarn, s.status.Source(), "prior board read failed",
				"format", format.String(), "err", cacheErr)
		}
	}

	s.status.markDegraded(fmt.Sprintf("%s adp unavailable, continuing without it: %v", format, err))
	return adp.Board{Format: format}, nil
}

type fallbackStatsSource struct {
	inner  StatsSource
	logger *slog.Logger
	status *Status
}

// NewFallbackStatsSource degrades a failed weekly stats fetch to an empty
// set. Previously collected weeks stay intact in the season log, so the run
// continues with whatever history exists.
func NewFallbackStatsSource(inner StatsSource, logger *slog.Logger, status *Status) StatsSource {
	return &fallbackStatsSource{
		inner:  inner,
		logger: logger,
		status: status,
	}
}

func (s *fallbackStatsSource) FetchWeekStats(ctx context.Context, season, week int) ([]stats.PerformanceRecord, error) {
	if s.inner == nil {
		return nil, ErrSourceUnavailable
	}
	recs, err := s.inner.FetchWeekStats(ctx, season, week)
	if err == nil {
		return recs, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	logWithSource(ctx, s.logger, slog.LevelWarn, s.status.Source(), "weekly stats fetch failed, continuing without",
		"season", season, "week", week, "err", err)
	s.status.markDegraded(fmt.Sprintf("week %d stats unavailable: %v", week, err))
	return nil, nil
}
