package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"draftline/internal/config"
	"draftline/internal/pipeline"
	"draftline/internal/server"
	"draftline/internal/snapshots"
)

var (
	collectFormats *[]string
	collectWeek    *int
	collectSeason  *int
	collectMock    *bool
	collectDataDir *string
	collectSnapDir *string
)

func init() {
	collectFormats = collectCmd.Flags().StringSlice("format", nil, "Scoring formats to collect (standard, half-ppr, ppr). Defaults to all.")
	collectWeek = collectCmd.Flags().Int("week", 0, "Week to collect stats for. 0 derives the week from the kickoff date.")
	collectSeason = collectCmd.Flags().Int("season", 0, "Season to collect. Defaults to the configured season.")
	collectMock = collectCmd.Flags().Bool("mock", false, "Serve fixture data instead of calling live sources.")
	collectDataDir = collectCmd.Flags().String("data-dir", "", "Directory artifacts are written to.")
	collectSnapDir = collectCmd.Flags().String("snapshot-dir", "", "Directory snapshots are written to.")
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect [--mock] [--week N] [--format ppr]",
	Short: "Runs one collection: fetch, merge, grade, and publish artifacts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applyCollectFlags(&cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := newLogger(cfg)
		ctx := cmd.Context()

		metrics := server.NewMetrics(ctx, cfg.Metrics, logger)
		metrics.Start()
		defer metrics.Shutdown(context.Background())

		artifacts := snapshots.NewArtifactStore(cfg.DataDir, cfg.Season)
		sources, err := pipeline.BuildSources(cfg, artifacts, logger, metrics.Recorder, *collectMock)
		if err != nil {
			return err
		}

		runner, err := pipeline.NewRunner(pipeline.Params{
			Config:       cfg,
			Source:       sources.Source,
			Statuses:     sources.Statuses,
			Artifacts:    artifacts,
			Snapshots:    pipeline.NewSnapshotWriter(cfg),
			Logger:       logger,
			Recorder:     metrics.Recorder,
			WeekOverride: *collectWeek,
		})
		if err != nil {
			return err
		}

		res, err := runner.Run(ctx)
		if err != nil {
			return err
		}

		renderReport(cmd.OutOrStdout(), res.Report)
		if !res.Report.Publishable() {
			return fmt.Errorf("run rejected: quality status %s", res.Report.Status)
		}
		return nil
	},
}

func applyCollectFlags(cfg *config.Config) {
	if len(*collectFormats) > 0 {
		cfg.Formats = *collectFormats
	}
	if *collectSeason > 0 {
		cfg.Season = *collectSeason
	}
	if *collectDataDir != "" {
		cfg.DataDir = *collectDataDir
	}
	if *collectSnapDir != "" {
		cfg.Snapshots.Dir = *collectSnapDir
	}
}
