package config

import (
	"fmt"
	"time"

	"draftline/internal/domain/formats"
	"draftline/internal/timeutil"
)

// Config holds runtime configuration for the collector.
type Config struct {
	Season       int            `json:"season"`
	KickoffDate  string         `json:"kickoffDate"`
	LeagueTeams  int            `json:"leagueTeams"`
	Formats      []string       `json:"formats"`
	DataDir      string         `json:"dataDir"`
	FetchTimeout Duration       `json:"fetchTimeout"`
	Logging      LoggingConfig  `json:"logging"`
	Sleeper      SleeperConfig  `json:"sleeper"`
	FFCalc       FFCalcConfig   `json:"ffcalc"`
	Stats        StatsConfig    `json:"stats"`
	Quality      QualityConfig  `json:"quality"`
	Snapshots    SnapshotConfig `json:"snapshots"`
	Metrics      MetricsConfig  `json:"metrics"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Season:       defaultSeason,
		KickoffDate:  defaultKickoffDate,
		LeagueTeams:  defaultLeagueTeams,
		Formats:      formatNames(formats.All()),
		DataDir:      defaultDataDir,
		FetchTimeout: defaultFetchTimeout,
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Sleeper:   defaultSleeper(),
		FFCalc:    defaultFFCalc(),
		Stats:     defaultStats(),
		Quality:   defaultQuality(),
		Snapshots: defaultSnapshots(),
		Metrics:   defaultMetrics(),
	}
}

// Load reads configuration from the optional CONFIG_FILE and environment
// variables, layered over the defaults. Environment wins over file values.
func Load() (Config, error) {
	return LoadFrom(envOrDefault(envConfigFile, ""))
}

// LoadFrom behaves like Load with an explicit config file path. An empty
// path skips the file layer.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Season = intEnvOrDefault(envSeason, c.Season)
	c.KickoffDate = envOrDefault(envKickoffDate, c.KickoffDate)
	c.LeagueTeams = intEnvOrDefault(envLeagueTeams, c.LeagueTeams)
	c.Formats = listEnvOrDefault(envFormats, c.Formats)
	c.DataDir = envOrDefault(envDataDir, c.DataDir)
	c.FetchTimeout = durationEnvOrDefault(envFetchTimeout, c.FetchTimeout)
	c.Logging.Level = envOrDefault(envLogLevel, c.Logging.Level)
	c.Logging.Format = envOrDefault(envLogFormat, c.Logging.Format)
	c.Sleeper.applyEnv()
	c.FFCalc.applyEnv()
	c.Stats.applyEnv()
	c.Quality.applyEnv()
	c.Snapshots.applyEnv()
	c.Metrics.applyEnv()
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Season < 2000 {
		return fmt.Errorf("season %d is not a plausible NFL season", c.Season)
	}
	if c.LeagueTeams < 2 {
		return fmt.Errorf("league size %d is too small", c.LeagueTeams)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("at least one scoring format is required")
	}
	if _, err := c.ScoringFormats(); err != nil {
		return err
	}
	if _, err := c.Kickoff(); err != nil {
		return fmt.Errorf("kickoff date: %w", err)
	}
	if c.Quality.RedBelow > c.Quality.YellowBelow {
		return fmt.Errorf("red threshold %.1f exceeds yellow threshold %.1f", c.Quality.RedBelow, c.Quality.YellowBelow)
	}
	return nil
}

// ScoringFormats parses the configured format names.
func (c Config) ScoringFormats() ([]formats.Format, error) {
	out := make([]formats.Format, 0, len(c.Formats))
	for _, name := range c.Formats {
		f, err := formats.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Kickoff parses the configured season kickoff date.
func (c Config) Kickoff() (time.Time, error) {
	return timeutil.ParseDate(c.KickoffDate)
}

func formatNames(all []formats.Format) []string {
	names := make([]string, 0, len(all))
	for _, f := range all {
		names = append(names, f.String())
	}
	return names
}
