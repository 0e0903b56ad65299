package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"draftline/internal/config"
	"draftline/internal/domain/catalog"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/stats"
	"draftline/internal/logging"
	"draftline/internal/merge"
	"draftline/internal/providers"
	"draftline/internal/quality"
	"draftline/internal/snapshots"
	"draftline/internal/store"
	"draftline/internal/telemetry"
	"draftline/internal/timeutil"
)

// Params wires one Runner. Source and Artifacts are required; a nil
// Snapshots writer disables snapshotting.
type Params struct {
	Config       config.Config
	Source       providers.DataSource
	Statuses     []*providers.Status
	Artifacts    *snapshots.ArtifactStore
	Snapshots    *snapshots.Writer
	Logger       *slog.Logger
	Recorder     *telemetry.Recorder
	WeekOverride int
}

// Runner executes one collection run: fetch every source, merge, grade the
// result, and persist artifacts when the grade allows it.
type Runner struct {
	cfg          config.Config
	source       providers.DataSource
	statuses     []*providers.Status
	artifacts    *snapshots.ArtifactStore
	snapshots    *snapshots.Writer
	store        *store.ResultStore
	logger       *slog.Logger
	rec          *telemetry.Recorder
	weekOverride int

	now      func() time.Time
	newRunID func() string
}

// Result is what one run produced, whether or not it published.
type Result struct {
	Report   quality.Report
	Database catalog.DraftDatabase
	Totals   []stats.TotalRecord
	Week     int
	// Written lists the artifact names that changed on disk this run.
	Written []string
}

// NewRunner validates params and builds a Runner.
func NewRunner(p Params) (*Runner, error) {
	if p.Source == nil {
		return nil, fmt.Errorf("data source required")
	}
	if p.Artifacts == nil {
		return nil, fmt.Errorf("artifact store required")
	}
	return &Runner{
		cfg:          p.Config,
		source:       p.Source,
		statuses:     p.Statuses,
		artifacts:    p.Artifacts,
		snapshots:    p.Snapshots,
		store:        store.NewResultStore(),
		logger:       p.Logger,
		rec:          p.Recorder,
		weekOverride: p.WeekOverride,
		now:          time.Now,
		newRunID:     uuid.NewString,
	}, nil
}

// Run executes one collection end to end. A red quality verdict is not an
// error: the report still comes back in the Result and only the quality
// report artifact lands on disk. Errors mean the run itself could not
// complete.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	week, err := r.resolveWeek()
	if err != nil {
		return Result{}, err
	}

	fmts, err := r.cfg.ScoringFormats()
	if err != nil {
		return Result{}, err
	}

	logging.Info(r.logger, "collection run starting",
		logging.FieldSeason, r.cfg.Season,
		logging.FieldWeek, week,
		"formats", len(fmts))

	fetchStart := time.Now()
	err = r.fetch(ctx, week, fmts)
	r.stageDone(telemetry.StageFetch, fetchStart, err)
	if err != nil {
		return Result{}, err
	}

	mergeStart := time.Now()
	outcome := r.mergeStage(week)
	r.stageDone(telemetry.StageMerge, mergeStart, nil)

	validateStart := time.Now()
	report := r.evaluate(outcome, week)
	r.stageDone(telemetry.StageValidate, validateStart, nil)

	totals := stats.Totals(outcome.seasonLog)

	persistStart := time.Now()
	written, err := r.persist(outcome, totals, report, week)
	r.stageDone(telemetry.StagePersist, persistStart, err)
	if err != nil {
		return Result{}, err
	}

	logging.Info(r.logger, "collection run finished",
		logging.FieldStatus, string(report.Status),
		logging.FieldWeek, week,
		"match_rate", report.MatchRate,
		"artifacts", len(written))

	return Result{
		Report:   report,
		Database: outcome.result.Database,
		Totals:   totals,
		Week:     week,
		Written:  written,
	}, nil
}

// stageDone records one stage's metric sample plus a debug timing line.
func (r *Runner) stageDone(stage string, start time.Time, err error) {
	elapsed := time.Since(start)
	r.rec.RecordStage(stage, elapsed, err)
	logging.Debug(r.logger, "stage complete",
		logging.FieldStage, stage,
		logging.FieldDurationMS, elapsed.Milliseconds())
}

// resolveWeek picks the collection week: an explicit override wins, else the
// week is derived from the configured kickoff date. Week 0 is preseason and
// skips the stats stage.
func (r *Runner) resolveWeek() (int, error) {
	if r.weekOverride != 0 {
		if r.weekOverride < 0 || r.weekOverride > timeutil.MaxSeasonWeek {
			return 0, fmt.Errorf("week %d outside 1..%d", r.weekOverride, timeutil.MaxSeasonWeek)
		}
		return r.weekOverride, nil
	}
	kickoff, err := r.cfg.Kickoff()
	if err != nil {
		return 0, fmt.Errorf("kickoff date: %w", err)
	}
	return timeutil.SeasonWeek(kickoff, r.now().UTC()), nil
}

// fetch runs the three source stages concurrently under the fetch timeout.
// The fallback layer degrades source outages before they reach here, so a
// roster error means the run itself is broken; board and stats errors are
// logged and the slots stay absent.
func (r *Runner) fetch(ctx context.Context, week int, fmts []formats.Format) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.FetchTimeout.Std())
	defer cancel()

	var (
		wg        sync.WaitGroup
		rosterErr error
		statsErr  error
		adpErrs   []error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		roster, err := r.source.FetchPlayers(ctx)
		if err != nil {
			rosterErr = err
			return
		}
		r.store.SetRoster(roster)
	}()

	// Boards fetch sequentially within one goroutine so pacing between
	// formats holds.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, f := range fmts {
			board, err := r.source.FetchADP(ctx, f)
			if err != nil {
				adpErrs = append(adpErrs, fmt.Errorf("%s: %w", f, err))
				continue
			}
			r.store.SetBoard(board)
		}
	}()

	if week > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs, err := r.source.FetchWeekStats(ctx, r.cfg.Season, week)
			if err != nil {
				statsErr = err
				return
			}
			r.store.SetWeekStats(recs)
		}()
	}

	wg.Wait()

	for _, adpErr := range adpErrs {
		logging.Warn(r.logger, "adp fetch failed", "err", adpErr)
	}
	if statsErr != nil {
		logging.Warn(r.logger, "weekly stats fetch failed", logging.FieldWeek, week, "err", statsErr)
	}
	if rosterErr != nil {
		return fmt.Errorf("roster fetch: %w", rosterErr)
	}
	return nil
}

type mergeOutcome struct {
	result    merge.Result
	seasonLog stats.SeasonLog
	roster    int
	weekCount int
	notes     []string
}

// mergeStage folds this week's stats into the season log and joins
// everything into the consolidated database.
func (r *Runner) mergeStage(week int) mergeOutcome {
	var out mergeOutcome

	roster, _ := r.store.Roster()
	out.roster = len(roster)

	seasonLog, err := r.artifacts.ReadSeasonLog()
	if err != nil {
		logging.Warn(r.logger, "season log unreadable, starting fresh", "err", err)
		out.notes = append(out.notes, fmt.Sprintf("season log unreadable, starting fresh: %v", err))
		seasonLog = stats.SeasonLog{}
	}
	seasonLog.Season = r.cfg.Season

	if week > 0 {
		if recs, ok := r.store.WeekStats(); ok {
			seasonLog.ReplaceWeek(week, recs)
			out.weekCount = len(recs)
		}
	}
	out.seasonLog = seasonLog

	out.result = merge.Merge(merge.Inputs{
		Season:     r.cfg.Season,
		Teams:      r.cfg.LeagueTeams,
		Roster:     roster,
		Boards:     r.store.Boards(),
		SeasonLog:  seasonLog,
		FuzzyFloor: r.cfg.Quality.FuzzyFloor,
	})

	logging.Info(r.logger, "merge complete",
		logging.FieldCount, len(out.result.Database.Records),
		"matched_adp", out.result.MatchedADP,
		"match_rate", out.result.MatchRate,
		"unmatched_stats", out.result.UnmatchedStats)
	return out
}

// evaluate grades the merged dataset and records the match rate.
func (r *Runner) evaluate(out mergeOutcome, week int) quality.Report {
	degraded := degradationNotes(r.statuses)
	degraded = append(degraded, out.notes...)

	report := quality.Evaluate(quality.Inputs{
		RunID:         r.newRunID(),
		GeneratedAt:   r.now().UTC(),
		Season:        r.cfg.Season,
		Week:          week,
		Roster:        out.roster,
		ADPCandidates: out.result.ADPCandidates,
		MatchedADP:    out.result.MatchedADP,
		MatchRate:     out.result.MatchRate,
		WeekStats:     out.weekCount,
		Consolidated:  out.result.Database.Records,
		Degraded:      degraded,
		Thresholds: quality.Thresholds{
			RedBelow:    r.cfg.Quality.RedBelow,
			YellowBelow: r.cfg.Quality.YellowBelow,
		},
	})
	r.rec.RecordMatchRate(out.result.MatchRate)
	return report
}

// persist writes artifacts. The quality report always lands; everything else
// is gated on the report being publishable.
func (r *Runner) persist(out mergeOutcome, totals []stats.TotalRecord, report quality.Report, week int) ([]string, error) {
	var written []string

	write := func(name string, fn func() (bool, error)) error {
		changed, err := fn()
		if err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		if changed {
			r.rec.RecordArtifact(name)
			written = append(written, name)
		}
		return nil
	}

	if err := write("quality_report", func() (bool, error) {
		return r.artifacts.WriteQualityReport(report)
	}); err != nil {
		return written, err
	}

	if !report.Publishable() {
		logging.Warn(r.logger, "run rejected, dataset not published",
			logging.FieldStatus, string(report.Status), "failures", len(report.Failures))
		return written, nil
	}

	roster, _ := r.store.Roster()
	if err := write("players", func() (bool, error) {
		return r.artifacts.WritePlayers(roster)
	}); err != nil {
		return written, err
	}

	for _, board := range r.store.Boards() {
		b := board
		if err := write("adp_"+b.Format.Slug(), func() (bool, error) {
			return r.artifacts.WriteBoard(b)
		}); err != nil {
			return written, err
		}
	}

	if err := write("draft_database", func() (bool, error) {
		return r.artifacts.WriteDatabase(out.result.Database)
	}); err != nil {
		return written, err
	}

	if err := write("season_performances", func() (bool, error) {
		return r.artifacts.WriteSeasonLog(out.seasonLog)
	}); err != nil {
		return written, err
	}

	if err := write("season_totals", func() (bool, error) {
		return r.artifacts.WriteTotals(totals)
	}); err != nil {
		return written, err
	}

	if r.snapshots != nil {
		date := timeutil.FormatDate(r.now().UTC())
		if err := r.snapshots.WriteCatalogSnapshot(date, out.result.Database); err != nil {
			return written, fmt.Errorf("write catalog snapshot: %w", err)
		}
		r.rec.RecordArtifact("catalog_snapshot")
		written = append(written, "catalog_snapshot")
		logging.Debug(r.logger, "catalog snapshot written",
			logging.FieldDate, date,
			logging.FieldPath, snapshots.CatalogSnapshotPath(r.snapshots.BasePath(), date))

		if week > 0 && out.weekCount > 0 {
			recs, _ := r.store.WeekStats()
			if err := r.snapshots.WriteWeekSnapshot(r.cfg.Season, week, recs); err != nil {
				return written, fmt.Errorf("write week snapshot: %w", err)
			}
			r.rec.RecordArtifact("week_snapshot")
			written = append(written, "week_snapshot")
			logging.Debug(r.logger, "week snapshot written",
				logging.FieldWeek, week,
				logging.FieldPath, snapshots.WeekSnapshotPath(r.snapshots.BasePath(), r.cfg.Season, week))
		}
	}

	return written, nil
}

// degradationNotes flattens per-source degradation into report strings.
func degradationNotes(statuses []*providers.Status) []string {
	var notes []string
	for _, st := range statuses {
		if !st.Degraded() {
			continue
		}
		ns := st.Notes()
		if len(ns) == 0 {
			notes = append(notes, st.Source())
			continue
		}
		for _, n := range ns {
			notes = append(notes, fmt.Sprintf("%s: %s", st.Source(), n))
		}
	}
	return notes
}
