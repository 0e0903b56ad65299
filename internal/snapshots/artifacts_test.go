package snapshots

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/catalog"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
	"draftline/internal/providers"
	"draftline/internal/quality"
)

var (
	_ providers.PlayerCache = (*ArtifactStore)(nil)
	_ providers.ADPCache    = (*ArtifactStore)(nil)
)

func TestArtifactStoreRoundTripsPlayers(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	roster := []players.Player{
		{ID: "4984", Name: "Josh Allen", Position: "QB", Team: "BUF"},
		{ID: "4034", Name: "Christian McCaffrey", Position: "RB", Team: "SF"},
	}
	written, err := store.WritePlayers(roster)
	if err != nil {
		t.Fatalf("failed to write players: %v", err)
	}
	if !written {
		t.Fatalf("expected first write to report a change")
	}
	if _, err := os.Stat(store.PlayersPath()); err != nil {
		t.Fatalf("expected players.json to exist: %v", err)
	}

	got, err := store.ReadPlayers(context.Background())
	if err != nil {
		t.Fatalf("failed to read players back: %v", err)
	}
	if diff := cmp.Diff(roster, got); diff != "" {
		t.Fatalf("players round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestArtifactStoreRoundTripsBoards(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(dir, 2025)

	board := adp.Board{
		Format: formats.HalfPPR,
		Season: 2025,
		Teams:  12,
		Records: []adp.Record{
			{PlayerName: "Christian McCaffrey", Team: "SF", Position: "RB", ADP: 1.6, ADPFormatted: "1.02"},
		},
	}
	if _, err := store.WriteBoard(board); err != nil {
		t.Fatalf("failed to write board: %v", err)
	}

	wantPath := filepath.Join(dir, "adp", "half_ppr_2025.json")
	if store.BoardPath(formats.HalfPPR) != wantPath {
		t.Fatalf("expected board path %s, got %s", wantPath, store.BoardPath(formats.HalfPPR))
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("expected board file to exist: %v", err)
	}

	got, err := store.ReadBoard(context.Background(), formats.HalfPPR)
	if err != nil {
		t.Fatalf("failed to read board back: %v", err)
	}
	if diff := cmp.Diff(board, got); diff != "" {
		t.Fatalf("board round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := store.ReadBoard(context.Background(), formats.PPR); err == nil {
		t.Fatalf("expected error for missing ppr board")
	}
}

func TestArtifactStoreRoundTripsDatabase(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	db := testDatabase("4034", "Christian McCaffrey")
	if _, err := store.WriteDatabase(db); err != nil {
		t.Fatalf("failed to write database: %v", err)
	}

	got, err := store.ReadDatabase()
	if err != nil {
		t.Fatalf("failed to read database back: %v", err)
	}
	if diff := cmp.Diff(db, got); diff != "" {
		t.Fatalf("database round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestArtifactStoreSeasonLogMissingFileIsEmpty(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	log, err := store.ReadSeasonLog()
	if err != nil {
		t.Fatalf("expected missing log to read as empty, got %v", err)
	}
	if log.Season != 2025 {
		t.Fatalf("expected season 2025 on empty log, got %d", log.Season)
	}
	if len(log.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(log.Entries))
	}
}

func TestArtifactStoreRoundTripsSeasonLog(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	log := stats.SeasonLog{Season: 2025}
	log.ReplaceWeek(1, []stats.PerformanceRecord{
		{PlayerID: "1466", PlayerName: "Travis Kelce", Team: "KC", Position: "TE", Season: 2025, Week: 1},
	})
	if _, err := store.WriteSeasonLog(log); err != nil {
		t.Fatalf("failed to write season log: %v", err)
	}

	got, err := store.ReadSeasonLog()
	if err != nil {
		t.Fatalf("failed to read season log back: %v", err)
	}
	if diff := cmp.Diff(log, got); diff != "" {
		t.Fatalf("season log round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestArtifactStoreWritesTotalsEnvelope(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	line := stats.StatLine{Receptions: 7, RecYds: 85, RecTDs: 1}
	totals := []stats.TotalRecord{
		{
			PlayerID:    "1466",
			PlayerName:  "Travis Kelce",
			Team:        "KC",
			Position:    "TE",
			GamesPlayed: 1,
			Totals:      line,
			Points:      stats.PointsFor(line),
			PerGame:     stats.PointsFor(line).PerGame(1),
		},
	}
	if _, err := store.WriteTotals(totals); err != nil {
		t.Fatalf("failed to write totals: %v", err)
	}

	var envelope TotalsArtifact
	if err := store.decode(store.TotalsPath(), &envelope); err != nil {
		t.Fatalf("failed to read totals back: %v", err)
	}
	if envelope.Season != 2025 {
		t.Fatalf("expected totals season 2025, got %d", envelope.Season)
	}
	if diff := cmp.Diff(totals, envelope.Totals); diff != "" {
		t.Fatalf("totals round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestArtifactStoreRoundTripsQualityReport(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	report := quality.Report{
		RunID:     "run-1",
		Season:    2025,
		Week:      4,
		Status:    quality.StatusYellow,
		MatchRate: 72.5,
		Counts:    quality.Counts{Roster: 100, ADPCandidates: 180, MatchedADP: 72, WeekStats: 40, Consolidated: 100},
		Warnings:  []string{"adp match rate 72.50% below 80.00%"},
		Degraded:  []string{"ffcalc"},
		GeneratedAt: time.Date(2025, time.September, 30, 12, 0, 0, 0, time.UTC),
	}
	if _, err := store.WriteQualityReport(report); err != nil {
		t.Fatalf("failed to write quality report: %v", err)
	}

	got, err := store.ReadQualityReport()
	if err != nil {
		t.Fatalf("failed to read quality report back: %v", err)
	}
	if diff := cmp.Diff(report, got); diff != "" {
		t.Fatalf("quality report round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestArtifactStoreArtifactPaths(t *testing.T) {
	store := NewArtifactStore("/data", 2025)

	checks := map[string]string{
		store.PlayersPath():       filepath.Join("/data", "players.json"),
		store.DatabasePath():      filepath.Join("/data", "draft_database_2025.json"),
		store.SeasonLogPath():     filepath.Join("/data", "season_2025_performances.json"),
		store.TotalsPath():        filepath.Join("/data", "season_2025_totals.json"),
		store.QualityReportPath(): filepath.Join("/data", "quality_report.json"),
		store.BoardPath(formats.Standard): filepath.Join("/data", "adp", "standard_2025.json"),
	}
	for got, want := range checks {
		if got != want {
			t.Fatalf("expected path %s, got %s", want, got)
		}
	}
}

func TestArtifactStoreReadErrors(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	if _, err := store.ReadPlayers(context.Background()); err == nil {
		t.Fatalf("expected error for missing players artifact")
	}
	if _, err := store.ReadDatabase(); err == nil {
		t.Fatalf("expected error for missing database artifact")
	}
	if _, err := store.ReadQualityReport(); err == nil {
		t.Fatalf("expected error for missing quality report")
	}

	if err := os.WriteFile(store.PlayersPath(), []byte("not json"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt artifact: %v", err)
	}
	if _, err := store.ReadPlayers(context.Background()); err == nil {
		t.Fatalf("expected decode error for corrupt players artifact")
	}

	var nilStore *ArtifactStore
	if err := nilStore.decode("whatever.json", nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestArtifactStoreSkipsIdenticalWrites(t *testing.T) {
	store := NewArtifactStore(t.TempDir(), 2025)

	roster := []players.Player{{ID: "1", Name: "Test Guy", Position: "RB", Team: "SF"}}
	if _, err := store.WritePlayers(roster); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	written, err := store.WritePlayers(roster)
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if written {
		t.Fatalf("expected identical roster write to be skipped")
	}
}
