package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
)

const defaultPacingInterval = 2 * time.Second

// pacedADPSource enforces a minimum interval between draft-board requests.
// The first call goes out immediately; later calls wait their turn.
type pacedADPSource struct {
	next     ADPSource
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	last time.Time
}

// NewPacedADPSource returns an ADPSource that spaces calls at least interval
// apart to stay within upstream quotas.
func NewPacedADPSource(next ADPSource, interval time.Duration, logger *slog.Logger) ADPSource {
	if interval <= 0 {
		interval = defaultPacingInterval
	}
	return &pacedADPSource{
		next:     next,
		interval: interval,
		logger:   logger,
	}
}

func (p *pacedADPSource) FetchADP(ctx context.Context, format formats.Format) (adp.Board, error) {
	if p == nil || p.next == nil {
		return adp.Board{}, ErrSourceUnavailable
	}
	if err := p.wait(ctx); err != nil {
		logWithSource(ctx, p.logger, slog.LevelWarn, "paced", "paced fetch canceled", "format", format.String())
		return adp.Board{}, err
	}
	return p.next.FetchADP(ctx, format)
}

// wait reserves the next send slot under the lock so concurrent callers
// queue instead of bursting.
func (p *pacedADPSource) wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	next := p.last.Add(p.interval)
	if next.Before(now) {
		next = now
	}
	p.last = next
	p.mu.Unlock()

	delay := time.Until(next)
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
