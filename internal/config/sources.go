package config

// Stats source selection. The mock source scores a fixed fixture roster and
// needs no network access.
const (
	StatsSourceNFLVerse = "nflverse"
	StatsSourceMock     = "mock"
)

// SleeperConfig controls how we talk to the Sleeper API.
type SleeperConfig struct {
	BaseURL string   `json:"baseUrl"`
	Timeout Duration `json:"timeout"`
}

func defaultSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL: defaultSleeperBaseURL,
		Timeout: defaultSleeperTimeout,
	}
}

func (c *SleeperConfig) applyEnv() {
	c.BaseURL = envOrDefault(envSleeperBaseURL, c.BaseURL)
	c.Timeout = durationEnvOrDefault(envSleeperTimeout, c.Timeout)
}

// FFCalcConfig controls how we talk to the Fantasy Football Calculator ADP
// API.
type FFCalcConfig struct {
	BaseURL string   `json:"baseUrl"`
	Timeout Duration `json:"timeout"`
	// Pacing is the minimum delay between consecutive ADP requests.
	Pacing Duration `json:"pacing"`
}

func defaultFFCalc() FFCalcConfig {
	return FFCalcConfig{
		BaseURL: defaultFFCBaseURL,
		Timeout: defaultFFCTimeout,
		Pacing:  defaultFFCPacing,
	}
}

func (c *FFCalcConfig) applyEnv() {
	c.BaseURL = envOrDefault(envFFCBaseURL, c.BaseURL)
	c.Timeout = durationEnvOrDefault(envFFCTimeout, c.Timeout)
	c.Pacing = durationEnvOrDefault(envFFCPacing, c.Pacing)
}

// StatsConfig controls where weekly performance stats come from.
type StatsConfig struct {
	Source  string   `json:"source"`
	BaseURL string   `json:"baseUrl"`
	Timeout Duration `json:"timeout"`
}

func defaultStats() StatsConfig {
	return StatsConfig{
		Source:  defaultStatsSource,
		BaseURL: defaultStatsBaseURL,
		Timeout: defaultStatsTimeout,
	}
}

func (c *StatsConfig) applyEnv() {
	c.Source = envOrDefault(envStatsSource, c.Source)
	c.BaseURL = envOrDefault(envStatsBaseURL, c.BaseURL)
	c.Timeout = durationEnvOrDefault(envStatsTimeout, c.Timeout)
}
