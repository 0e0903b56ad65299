package ffcalc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/logging"
	"draftline/internal/providers"
	"draftline/internal/telemetry"
)

// Config controls how the ffcalc client reaches the upstream API. Season and
// Teams select which draft boards exist upstream; every fetch uses them.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Season  int
	Teams   int
	Logger  *slog.Logger
}

// Client fetches average draft position boards from Fantasy Football
// Calculator.
type Client struct {
	http   *resty.Client
	season int
	teams  int
	logger *slog.Logger
}

// NewClient constructs an ffcalc client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	season := cfg.Season
	if season <= 0 {
		season = defaultSeason
	}
	teams := cfg.Teams
	if teams <= 0 {
		teams = defaultTeams
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(base, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	telemetry.InstrumentResty(client, "draftline/providers/ffcalc")

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{http: client, season: season, teams: teams, logger: logger}
}

// FetchADP retrieves the draft board for one scoring format. Upstream reports
// failures inside a 200 envelope, so the status field decides success.
func (c *Client) FetchADP(ctx context.Context, format formats.Format) (adp.Board, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"teams": strconv.Itoa(c.teams),
			"year":  strconv.Itoa(c.season),
		}).
		Get("/adp/" + string(format))
	if err != nil {
		return adp.Board{}, fmt.Errorf("ffcalc: fetch %s adp: %w", format, err)
	}
	if res.StatusCode() == http.StatusTooManyRequests {
		return adp.Board{}, &providers.RateLimitError{
			Source:     SourceName,
			StatusCode: res.StatusCode(),
			RetryAfter: providers.ParseRetryAfter(res.Header().Get("Retry-After")),
		}
	}
	if res.IsError() {
		return adp.Board{}, fmt.Errorf("ffcalc: unexpected status %d for %s adp", res.StatusCode(), format)
	}

	var payload adpResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return adp.Board{}, fmt.Errorf("ffcalc: decode %s adp: %w", format, err)
	}
	if payload.Status != statusSuccess {
		return adp.Board{}, fmt.Errorf("ffcalc: %s adp returned status %q: %w", format, payload.Status, providers.ErrMalformedPayload)
	}

	board, skipped := mapBoard(format, c.season, c.teams, payload)
	if skipped > 0 {
		c.logger.WarnContext(ctx, "skipped nameless adp records",
			slog.String(logging.FieldSource, SourceName),
			slog.String(logging.FieldFormat, string(format)),
			slog.Int(logging.FieldCount, skipped),
		)
	}
	c.logger.InfoContext(ctx, "adp board fetched",
		slog.String(logging.FieldSource, SourceName),
		slog.String(logging.FieldFormat, string(format)),
		slog.Int(logging.FieldSeason, c.season),
		slog.Int(logging.FieldCount, len(board.Records)),
	)
	return board, nil
}
