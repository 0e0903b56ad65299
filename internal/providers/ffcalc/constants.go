package ffcalc

import "time"

const (
	defaultBaseURL     = "https://fantasyfootballcalculator.com/api/v1"
	defaultHTTPTimeout = 30 * time.Second
	defaultSeason      = 2025
	defaultTeams       = 12

	statusSuccess = "Success"
)
