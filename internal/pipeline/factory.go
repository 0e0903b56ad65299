package pipeline

import (
	"fmt"
	"log/slog"

	"draftline/internal/config"
	"draftline/internal/providers"
	"draftline/internal/providers/ffcalc"
	"draftline/internal/providers/fixture"
	"draftline/internal/providers/nflverse"
	"draftline/internal/providers/sleeper"
	"draftline/internal/snapshots"
	"draftline/internal/telemetry"
)

// Sources is an assembled source stack plus the per-source statuses the
// quality report reads degradation from.
type Sources struct {
	Source   providers.DataSource
	Statuses []*providers.Status
}

// BuildSources assembles the live stack (retry, pacing, and cached fallback
// around each client) or, with mock set, the deterministic fixture that
// serves all three concerns without network access.
func BuildSources(cfg config.Config, artifacts *snapshots.ArtifactStore, logger *slog.Logger, rec *telemetry.Recorder, mock bool) (*Sources, error) {
	if mock {
		fx := fixture.New(cfg.Season, cfg.LeagueTeams)
		return &Sources{Source: providers.NewComposite(fx, fx, fx)}, nil
	}

	playerStatus := providers.NewStatus(sleeper.SourceName)
	playerSrc := providers.NewFallbackPlayerSource(
		providers.NewRetryingPlayerSource(
			sleeper.NewClient(sleeper.Config{
				BaseURL: cfg.Sleeper.BaseURL,
				Timeout: cfg.Sleeper.Timeout.Std(),
				Logger:  logger,
			}),
			logger, rec, sleeper.SourceName, 0, 0),
		artifacts, logger, playerStatus)

	adpStatus := providers.NewStatus(ffcalc.SourceName)
	adpSrc := providers.NewFallbackADPSource(
		providers.NewRetryingADPSource(
			providers.NewPacedADPSource(
				ffcalc.NewClient(ffcalc.Config{
					BaseURL: cfg.FFCalc.BaseURL,
					Timeout: cfg.FFCalc.Timeout.Std(),
					Season:  cfg.Season,
					Teams:   cfg.LeagueTeams,
					Logger:  logger,
				}),
				cfg.FFCalc.Pacing.Std(), logger),
			logger, rec, ffcalc.SourceName, 0, 0),
		artifacts, logger, adpStatus)

	statsInner, statsName, err := buildStatsSource(cfg, logger)
	if err != nil {
		return nil, err
	}
	statsStatus := providers.NewStatus(statsName)
	statsSrc := providers.NewFallbackStatsSource(
		providers.NewRetryingStatsSource(statsInner, logger, rec, statsName, 0, 0),
		logger, statsStatus)

	return &Sources{
		Source:   providers.NewComposite(playerSrc, adpSrc, statsSrc),
		Statuses: []*providers.Status{playerStatus, adpStatus, statsStatus},
	}, nil
}

func buildStatsSource(cfg config.Config, logger *slog.Logger) (providers.StatsSource, string, error) {
	switch cfg.Stats.Source {
	case config.StatsSourceNFLVerse, "":
		client := nflverse.NewClient(nflverse.Config{
			BaseURL: cfg.Stats.BaseURL,
			Timeout: cfg.Stats.Timeout.Std(),
			Logger:  logger,
		})
		return client, nflverse.SourceName, nil
	case config.StatsSourceMock:
		return fixture.New(cfg.Season, cfg.LeagueTeams), "fixture", nil
	default:
		return nil, "", fmt.Errorf("unknown stats source %q", cfg.Stats.Source)
	}
}

// NewSnapshotWriter builds the snapshot writer, or nil when snapshots are
// disabled.
func NewSnapshotWriter(cfg config.Config) *snapshots.Writer {
	if !cfg.Snapshots.Enabled {
		return nil
	}
	return snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays)
}
