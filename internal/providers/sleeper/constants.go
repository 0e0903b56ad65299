package sleeper

import "time"

const (
	defaultBaseURL     = "https://api.sleeper.app/v1"
	defaultHTTPTimeout = 60 * time.Second

	playersPath = "/players/nfl"
)
