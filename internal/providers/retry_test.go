package providers

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
	"draftline/internal/telemetry"
)

type flakeyPlayerSource struct {
	failures int
	calls    int
}

func (f *flakeyPlayerSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("boom")
	}
	return []players.Player{{ID: "ok", Name: "Some Guy", Position: "QB", Team: "KC"}}, nil
}

func TestRetryingPlayerSourceRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyPlayerSource{failures: 2}
	rp := NewRetryingPlayerSource(fp, slog.Default(), telemetry.NewRecorder(), "flakey", 3, time.Millisecond)

	roster, err := rp.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(roster) != 1 || roster[0].ID != "ok" {
		t.Fatalf("unexpected roster %+v", roster)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingPlayerSourceStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyPlayerSource{failures: 5}
	rp := NewRetryingPlayerSource(fp, nil, telemetry.NewRecorder(), "flakey", 2, time.Millisecond)

	_, err := rp.FetchPlayers(context.Background())
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingPlayerSourceRespectsContextCancel(t *testing.T) {
	fp := &flakeyPlayerSource{failures: 5}
	rp := NewRetryingPlayerSource(fp, nil, telemetry.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchPlayers(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestRetryingPlayerSourceNilInner(t *testing.T) {
	rp := NewRetryingPlayerSource(nil, nil, telemetry.NewRecorder(), "", 0, 0)
	if _, err := rp.FetchPlayers(context.Background()); !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

type rateLimitThenSuccessADP struct {
	calls int
}

func (f *rateLimitThenSuccessADP) FetchADP(ctx context.Context, format formats.Format) (adp.Board, error) {
	_ = ctx
	f.calls++
	if f.calls == 1 {
		return adp.Board{}, &RateLimitError{
			Source:     "test",
			StatusCode: 429,
			RetryAfter: time.Millisecond,
		}
	}
	return adp.Board{Format: format, Records: []adp.Record{{PlayerName: "ok"}}}, nil
}

func TestRetryingADPSourceRecordsRateLimitMetrics(t *testing.T) {
	rec := telemetry.NewRecorder()
	rp := NewRetryingADPSource(&rateLimitThenSuccessADP{}, nil, rec, "rl", 2, time.Millisecond)

	board, err := rp.FetchADP(context.Background(), formats.PPR)
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if len(board.Records) != 1 || board.Records[0].PlayerName != "ok" {
		t.Fatalf("unexpected board %+v", board)
	}

	if got := rec.RateLimitHits("rl"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.SourceCalls("rl"); got != 2 {
		t.Fatalf("expected 2 source calls, got %d", got)
	}
	if got := rec.SourceErrors("rl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastRetryAfter("rl"); got != time.Millisecond {
		t.Fatalf("expected retry-after 1ms, got %s", got)
	}
}

func TestNextDelayPrefersRetryAfter(t *testing.T) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxElapsedTime = 0
	bo.Reset()

	rlErr := &RateLimitError{RetryAfter: 3 * time.Second}
	if delay := nextDelay(bo, rlErr); delay != 3*time.Second {
		t.Fatalf("expected retry-after delay 3s, got %s", delay)
	}

	generic := errors.New("boom")
	delay := nextDelay(bo, generic)
	if delay <= 0 {
		t.Fatalf("expected positive delay for generic error, got %s", delay)
	}
	// ExponentialBackOff jitters around the initial interval.
	if delay < 25*time.Millisecond || delay > 75*time.Millisecond {
		t.Fatalf("expected jittered delay near 50ms, got %s", delay)
	}
}

type stubStatsSource struct {
	recs []stats.PerformanceRecord
	err  error
}

func (s *stubStatsSource) FetchWeekStats(ctx context.Context, season, week int) ([]stats.PerformanceRecord, error) {
	_ = ctx
	_ = season
	_ = week
	return s.recs, s.err
}

func TestRetryingStatsSourcePassesThrough(t *testing.T) {
	want := []stats.PerformanceRecord{{PlayerName: "Some Guy", Week: 3}}
	rp := NewRetryingStatsSource(&stubStatsSource{recs: want}, nil, telemetry.NewRecorder(), "stats", 2, time.Millisecond)

	got, err := rp.FetchWeekStats(context.Background(), 2025, 3)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(got) != 1 || got[0].PlayerName != "Some Guy" {
		t.Fatalf("unexpected records %+v", got)
	}
}
