package nflverse

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"draftline/internal/domain/stats"
	"draftline/internal/logging"
	"draftline/internal/providers"
	"draftline/internal/telemetry"
)

// Config controls how the nflverse client reaches the stats releases.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client downloads weekly player stats from the nflverse data releases. Each
// season ships as one CSV keyed by player and week.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient constructs an nflverse client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(base, "/"))
	client.SetTimeout(timeout)
	telemetry.InstrumentResty(client, "draftline/providers/nflverse")

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{http: client, logger: logger}
}

// FetchWeekStats downloads the season's stats file and extracts one week.
// A week with no rows yet is an empty, valid result, not an error.
func (c *Client) FetchWeekStats(ctx context.Context, season, week int) ([]stats.PerformanceRecord, error) {
	res, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf(statsPathFormat, season))
	if err != nil {
		return nil, fmt.Errorf("nflverse: fetch season %d stats: %w", season, err)
	}
	if res.StatusCode() == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Source:     SourceName,
			StatusCode: res.StatusCode(),
			RetryAfter: providers.ParseRetryAfter(res.Header().Get("Retry-After")),
		}
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("nflverse: no stats release for season %d", season)
	}
	if res.IsError() {
		return nil, fmt.Errorf("nflverse: unexpected status %d for season %d stats", res.StatusCode(), season)
	}

	records, malformed, err := parseWeek(res.Body(), season, week)
	if err != nil {
		return nil, fmt.Errorf("nflverse: parse season %d stats: %w", season, err)
	}

	if malformed > 0 {
		c.logger.WarnContext(ctx, "skipped unparseable stat rows",
			slog.String(logging.FieldSource, SourceName),
			slog.Int(logging.FieldCount, malformed),
		)
	}
	c.logger.InfoContext(ctx, "week stats fetched",
		slog.String(logging.FieldSource, SourceName),
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldWeek, week),
		slog.Int(logging.FieldCount, len(records)),
	)
	return records, nil
}

// parseWeek runs the CSV and keeps the requested week's fantasy rows. Rows
// that fail CSV parsing are counted and skipped so one mangled line cannot
// sink an otherwise good file.
func parseWeek(body []byte, season, week int) ([]stats.PerformanceRecord, int, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, 0, err
	}

	var records []stats.PerformanceRecord
	malformed := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				malformed++
				continue
			}
			return nil, malformed, err
		}
		rec, ok := mapRow(idx, row, season, week)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].PlayerName != records[j].PlayerName {
			return records[i].PlayerName < records[j].PlayerName
		}
		return records[i].Team < records[j].Team
	})
	return records, malformed, nil
}
