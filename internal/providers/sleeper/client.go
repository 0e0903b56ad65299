package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"draftline/internal/domain/players"
	"draftline/internal/logging"
	"draftline/internal/providers"
	"draftline/internal/telemetry"
)

// Config controls how the sleeper client reaches the upstream API.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client fetches the NFL roster dump from Sleeper and maps it to domain
// players.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient constructs a sleeper client with the provided configuration.
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
	client.SetHeader("Accept", "application/json")
	telemetry.InstrumentResty(client, "draftline/providers/sleeper")

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{http: client, logger: logger}
}

// FetchPlayers retrieves the full player dump and returns the fantasy-relevant
// subset ordered by player ID. Entries that fail to decode are skipped rather
// than failing the fetch; the dump routinely carries a few junk records.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	res, err := c.http.R().SetContext(ctx).Get(playersPath)
	if err != nil {
		return nil, fmt.Errorf("sleeper: fetch players: %w", err)
	}
	if res.StatusCode() == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Source:     SourceName,
			StatusCode: res.StatusCode(),
			RetryAfter: providers.ParseRetryAfter(res.Header().Get("Retry-After")),
		}
	}
	if res.IsError() {
		return nil, fmt.Errorf("sleeper: unexpected status %d", res.StatusCode())
	}

	var dump map[string]json.RawMessage
	if err := json.Unmarshal(res.Body(), &dump); err != nil {
		return nil, fmt.Errorf("sleeper: decode player dump: %w", err)
	}
	if len(dump) == 0 {
		return nil, fmt.Errorf("sleeper: empty player dump: %w", providers.ErrMalformedPayload)
	}

	ids := make([]string, 0, len(dump))
	for id := range dump {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	roster := make([]players.Player, 0, len(dump))
	malformed := 0
	for _, id := range ids {
		var entry playerResponse
		if err := json.Unmarshal(dump[id], &entry); err != nil {
			malformed++
			continue
		}
		player, ok := mapPlayer(id, entry)
		if !ok {
			continue
		}
		roster = append(roster, player)
	}

	if malformed > 0 {
		c.logger.WarnContext(ctx, "skipped undecodable player entries",
			slog.String(logging.FieldSource, SourceName),
			slog.Int(logging.FieldCount, malformed),
		)
	}
	c.logger.InfoContext(ctx, "player dump mapped",
		slog.String(logging.FieldSource, SourceName),
		slog.Int("raw", len(dump)),
		slog.Int(logging.FieldCount, len(roster)),
	)
	return roster, nil
}
