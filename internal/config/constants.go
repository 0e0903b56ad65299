package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envSeason       = "SEASON"
	envKickoffDate  = "KICKOFF_DATE"
	envLeagueTeams  = "LEAGUE_TEAMS"
	envFormats      = "FORMATS"
	envDataDir      = "DATA_DIR"
	envFetchTimeout = "FETCH_TIMEOUT"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	envSleeperBaseURL = "SLEEPER_BASE_URL"
	envSleeperTimeout = "SLEEPER_TIMEOUT"
	envFFCBaseURL     = "FFC_BASE_URL"
	envFFCTimeout     = "FFC_TIMEOUT"
	envFFCPacing      = "FFC_PACING"
	envStatsSource    = "STATS_SOURCE"
	envStatsBaseURL   = "STATS_BASE_URL"
	envStatsTimeout   = "STATS_TIMEOUT"

	envQualityRedBelow    = "QUALITY_RED_BELOW"
	envQualityYellowBelow = "QUALITY_YELLOW_BELOW"
	envQualityFuzzyFloor  = "QUALITY_FUZZY_FLOOR"

	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotsOn       = "SNAPSHOTS_ENABLED"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultSeason = 2025
	// Opening Thursday of the default season; week numbering counts from here.
	defaultKickoffDate = "2025-09-04"
	defaultLeagueTeams = 12
	defaultDataDir     = "data"
	// Upper bound for one full collection stage, not one request.
	defaultFetchTimeout = 5 * Duration(time.Minute)

	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultSleeperBaseURL = "https://api.sleeper.app/v1"
	// The full player dump weighs several MB; give it room.
	defaultSleeperTimeout = 60 * Duration(time.Second)
	defaultFFCBaseURL     = "https://fantasyfootballcalculator.com/api/v1"
	defaultFFCTimeout     = 30 * Duration(time.Second)
	// Spacing between per-format ADP requests to stay polite with FFC.
	defaultFFCPacing    = 2 * Duration(time.Second)
	defaultStatsSource  = "nflverse"
	defaultStatsBaseURL = "https://github.com/nflverse/nflverse-data/releases/download"
	defaultStatsTimeout = 60 * Duration(time.Second)

	// Match-rate bands: below red the run must not publish, below yellow it
	// publishes with a warning.
	defaultQualityRedBelow    = 60.0
	defaultQualityYellowBelow = 80.0
	// Jaro-Winkler similarity required before a fuzzy name match counts.
	defaultQualityFuzzyFloor = 0.92

	defaultSnapshotDir       = "data/snapshots"
	defaultSnapshotsOn       = true
	defaultSnapshotRetention = 60

	defaultMetricsPort = "9090"
)
