package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
	"draftline/internal/telemetry"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retrier drives the shared retry loop for all retrying source wrappers.
// Rate-limited responses wait out the upstream Retry-After; everything else
// backs off exponentially with jitter.
type retrier struct {
	logger         *slog.Logger
	rec            *telemetry.Recorder
	source         string
	maxAttempts    int
	initialBackoff time.Duration
}

func newRetrier(logger *slog.Logger, rec *telemetry.Recorder, source string, maxAttempts int, initialBackoff time.Duration) retrier {
	if source == "" {
		source = "source"
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultBackoff
	}
	return retrier{
		logger:         logger,
		rec:            rec,
		source:         source,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}
}

func (r retrier) do(ctx context.Context, fn func(context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialBackoff
	bo.MaxElapsedTime = 0
	bo.Reset()

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := fn(ctx)
		r.rec.RecordSourceAttempt(r.source, time.Since(start), err)
		if err == nil {
			return nil
		}
		lastErr = err

		if rl, ok := AsRateLimitError(err); ok {
			r.rec.RecordRateLimit(r.source, rl.RetryAfter)
		}
		if attempt == r.maxAttempts {
			break
		}

		delay := nextDelay(bo, err)
		logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "source fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "delay", delay.String(), "err", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "source fetch failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func nextDelay(bo *backoff.ExponentialBackOff, err error) time.Duration {
	if rl, ok := AsRateLimitError(err); ok && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	if d := bo.NextBackOff(); d != backoff.Stop {
		return d
	}
	return bo.InitialInterval
}

type retryingPlayerSource struct {
	inner PlayerSource
	retrier
}

// NewRetryingPlayerSource wraps a PlayerSource with retries. Non-positive
// maxAttempts/backoff fall back to defaults.
func NewRetryingPlayerSource(inner PlayerSource, logger *slog.Logger, rec *telemetry.Recorder, source string, maxAttempts int, initialBackoff time.Duration) PlayerSource {
	return &retryingPlayerSource{
		inner:   inner,
		retrier: newRetrier(logger, rec, source, maxAttempts, initialBackoff),
	}
}

func (s *retryingPlayerSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if s.inner == nil {
		return nil, ErrSourceUnavailable
	}
	var out []players.Player
	err := s.do(ctx, func(ctx context.Context) error {
		res, err := s.inner.FetchPlayers(ctx)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type retryingADPSource struct {
	inner ADPSource
	retrier
}

// NewRetryingADPSource wraps an ADPSource with retries.
func NewRetryingADPSource(inner ADPSource, logger *slog.Logger, rec *telemetry.Recorder, source string, maxAttempts int, initialBackoff time.Duration) ADPSource {
	return &retryingADPSource{
		inner:   inner,
		retrier: newRetrier(logger, rec, source, maxAttempts, initialBackoff),
	}
}

func (s *retryingADPSource) FetchADP(ctx context.Context, format formats.Format) (adp.Board, error) {
	if s.inner == nil {
		return adp.Board{}, ErrSourceUnavailable
	}
	var out adp.Board
	err := s.do(ctx, func(ctx context.Context) error {
		res, err := s.inner.FetchADP(ctx, format)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return adp.Board{}, err
	}
	return out, nil
}

type retryingStatsSource struct {
	inner StatsSource
	retrier
}

// NewRetryingStatsSource wraps a StatsSource with retries.
func NewRetryingStatsSource(inner StatsSource, logger *slog.Logger, rec *telemetry.Recorder, source string, maxAttempts int, initialBackoff time.Duration) StatsSource {
	return &retryingStatsSource{
		inner:   inner,
		retrier: newRetrier(logger, rec, source, maxAttempts, initialBackoff),
	}
}

func (s *retryingStatsSource) FetchWeekStats(ctx context.Context, season, week int) ([]stats.PerformanceRecord, error) {
	if s.inner == nil {
		return nil, ErrSourceUnavailable
	}
	var out []stats.PerformanceRecord
	err := s.do(ctx, func(ctx context.Context) error {
		res, err := s.inner.FetchWeekStats(ctx, season, week)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
