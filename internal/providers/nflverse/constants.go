package nflverse

import "time"

const (
	defaultBaseURL     = "https://github.com/nflverse/nflverse-data/releases/download"
	defaultHTTPTimeout = 60 * time.Second

	statsPathFormat = "/player_stats/player_stats_%d.csv"
)
