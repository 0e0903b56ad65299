package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/catalog"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
	"draftline/internal/quality"
)

// TotalsArtifact is the season-totals file payload.
type TotalsArtifact struct {
	Season int                 `json:"season"`
	Totals []stats.TotalRecord `json:"totals"`
}

// ArtifactStore persists and reloads the pipeline's primary JSON artifacts
// under the data directory. The read side doubles as the cached fallback the
// fetch decorators reach for when an upstream is down.
type ArtifactStore struct {
	dir    string
	season int
}

// NewArtifactStore constructs an artifact store for one season rooted at dir.
func NewArtifactStore(dir string, season int) *ArtifactStore {
	return &ArtifactStore{dir: dir, season: season}
}

// PlayersPath is the player catalog artifact location.
func (s *ArtifactStore) PlayersPath() string {
	return filepath.Join(s.dir, "players.json")
}

// BoardPath is the per-format ADP board artifact location.
func (s *ArtifactStore) BoardPath(format formats.Format) string {
	return filepath.Join(s.dir, "adp", fmt.Sprintf("%s_%d.json", format.Slug(), s.season))
}

// DatabasePath is the consolidated draft database artifact location.
func (s *ArtifactStore) DatabasePath() string {
	return filepath.Join(s.dir, fmt.Sprintf("draft_database_%d.json", s.season))
}

// SeasonLogPath is the weekly performance log artifact location.
func (s *ArtifactStore) SeasonLogPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("season_%d_performances.json", s.season))
}

// TotalsPath is the season totals artifact location.
func (s *ArtifactStore) TotalsPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("season_%d_totals.json", s.season))
}

// QualityReportPath is the quality report artifact location.
func (s *ArtifactStore) QualityReportPath() string {
	return filepath.Join(s.dir, "quality_report.json")
}

// WritePlayers persists the player catalog. The returned bool reports whether
// bytes actually changed on disk.
func (s *ArtifactStore) WritePlayers(roster []players.Player) (bool, error) {
	return writeJSONAtomic(s.PlayersPath(), roster)
}

// WriteBoard persists one format's ADP board.
func (s *ArtifactStore) WriteBoard(board adp.Board) (bool, error) {
	return writeJSONAtomic(s.BoardPath(board.Format), board)
}

// WriteDatabase persists the consolidated draft database.
func (s *ArtifactStore) WriteDatabase(db catalog.DraftDatabase) (bool, error) {
	return writeJSONAtomic(s.DatabasePath(), db)
}

// WriteSeasonLog persists the season's weekly performance log.
func (s *ArtifactStore) WriteSeasonLog(log stats.SeasonLog) (bool, error) {
	return writeJSONAtomic(s.SeasonLogPath(), log)
}

// WriteTotals persists the per-player season totals.
func (s *ArtifactStore) WriteTotals(totals []stats.TotalRecord) (bool, error) {
	return writeJSONAtomic(s.TotalsPath(), TotalsArtifact{Season: s.season, Totals: totals})
}

// WriteQualityReport persists the run's quality report. This is the one
// artifact written even when the run is red.
func (s *ArtifactStore) WriteQualityReport(report quality.Report) (bool, error) {
	return writeJSONAtomic(s.QualityReportPath(), report)
}

// ReadPlayers loads the last persisted player catalog. Satisfies the roster
// fallback cache used when the live source is unreachable.
func (s *ArtifactStore) ReadPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	var roster []players.Player
	if err := s.decode(s.PlayersPath(), &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// ReadBoard loads the last persisted board for a format. Satisfies the ADP
// fallback cache.
func (s *ArtifactStore) ReadBoard(ctx context.Context, format formats.Format) (adp.Board, error) {
	_ = ctx
	var board adp.Board
	if err := s.decode(s.BoardPath(format), &board); err != nil {
		return adp.Board{}, err
	}
	return board, nil
}

// ReadSeasonLog loads the season's performance log. A season with no log yet
// yields an empty one rather than an error.
func (s *ArtifactStore) ReadSeasonLog() (stats.SeasonLog, error) {
	var log stats.SeasonLog
	err := s.decode(s.SeasonLogPath(), &log)
	if errors.Is(err, os.ErrNotExist) {
		return stats.SeasonLog{Season: s.season}, nil
	}
	if err != nil {
		return stats.SeasonLog{}, err
	}
	if log.Season == 0 {
		log.Season = s.season
	}
	return log, nil
}

// ReadDatabase loads the consolidated draft database.
func (s *ArtifactStore) ReadDatabase() (catalog.DraftDatabase, error) {
	var db catalog.DraftDatabase
	if err := s.decode(s.DatabasePath(), &db); err != nil {
		return catalog.DraftDatabase{}, err
	}
	return db, nil
}

// ReadQualityReport loads the most recent quality report.
func (s *ArtifactStore) ReadQualityReport() (quality.Report, error) {
	var report quality.Report
	if err := s.decode(s.QualityReportPath(), &report); err != nil {
		return quality.Report{}, err
	}
	return report, nil
}

func (s *ArtifactStore) decode(path string, payload any) error {
	if s == nil {
		return errors.New("artifact store not configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
