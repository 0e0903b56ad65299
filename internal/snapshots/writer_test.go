package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"draftline/internal/domain/catalog"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

func testDatabase(id, name string) catalog.DraftDatabase {
	return catalog.NewDraftDatabase(2025, 12, nil, []catalog.ConsolidatedRecord{
		{Player: players.Player{ID: id, Name: name, Position: "RB", Team: "SF"}},
	})
}

func readManifestFile(t *testing.T, dir string) Manifest {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("failed to decode manifest: %v", err)
	}
	return m
}

func TestWriterWritesCatalogSnapshotAndManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)

	today := time.Now().UTC().Format("2006-01-02")
	if err := w.WriteCatalogSnapshot(today, testDatabase("1", "Test Guy")); err != nil {
		t.Fatalf("expected write to succeed, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "catalog", today+".json"))
	if err != nil {
		t.Fatalf("expected snapshot file, got err %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected snapshot content")
	}

	m := readManifestFile(t, dir)
	if len(m.Catalog.Dates) != 1 || m.Catalog.Dates[0] != today {
		t.Fatalf("expected manifest dates [%s], got %v", today, m.Catalog.Dates)
	}
	if m.Retention.CatalogDays != 10 {
		t.Fatalf("expected retention 10, got %d", m.Retention.CatalogDays)
	}
	if m.Catalog.LastRefreshed.IsZero() {
		t.Fatalf("expected lastRefreshed to be set")
	}
}

func TestWriterPrunesOldCatalogSnapshots(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 1) // 1-day retention

	oldDate := time.Now().UTC().AddDate(0, 0, -5).Format("2006-01-02")
	newDate := time.Now().UTC().Format("2006-01-02")

	for _, d := range []string{oldDate, newDate} {
		if err := w.WriteCatalogSnapshot(d, testDatabase(d, "Player "+d)); err != nil {
			t.Fatalf("failed to write snapshot for %s: %v", d, err)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "catalog", oldDate+".json")); err == nil {
		t.Fatalf("expected old snapshot to be pruned")
	}
	if _, err := os.Stat(filepath.Join(dir, "catalog", newDate+".json")); err != nil {
		t.Fatalf("expected new snapshot to exist")
	}

	m := readManifestFile(t, dir)
	if len(m.Catalog.Dates) != 1 || m.Catalog.Dates[0] != newDate {
		t.Fatalf("expected manifest to list only %s, got %v", newDate, m.Catalog.Dates)
	}
}

func TestWriterKeepsEveryWeekSnapshot(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 1)

	perfs := []stats.PerformanceRecord{
		{PlayerName: "Test Guy", Team: "SF", Position: "RB", Season: 2025, Week: 1},
	}
	for week := 1; week <= 3; week++ {
		perfs[0].Week = week
		if err := w.WriteWeekSnapshot(2025, week, perfs); err != nil {
			t.Fatalf("failed to write week %d: %v", week, err)
		}
	}

	for week := 1; week <= 3; week++ {
		path := filepath.Join(dir, "weeks", WeekKey(2025, week)+".json")
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected week %d snapshot to exist: %v", week, err)
		}
	}

	m := readManifestFile(t, dir)
	want := []string{"2025-W01", "2025-W02", "2025-W03"}
	if len(m.Weeks.Keys) != len(want) {
		t.Fatalf("expected %d week keys, got %v", len(want), m.Weeks.Keys)
	}
	for i, key := range want {
		if m.Weeks.Keys[i] != key {
			t.Fatalf("expected week key %s at %d, got %s", key, i, m.Weeks.Keys[i])
		}
	}
}

func TestWeekSnapshotPayloadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 1)

	perfs := []stats.PerformanceRecord{
		{
			PlayerID:   "4984",
			PlayerName: "Josh Allen",
			Team:       "BUF",
			Position:   "QB",
			Season:     2025,
			Week:       4,
			Line:       stats.StatLine{PassYds: 285, PassTDs: 3, Interceptions: 1, RushYds: 45, RushTDs: 1},
			Points:     stats.PointsFor(stats.StatLine{PassYds: 285, PassTDs: 3, Interceptions: 1, RushYds: 45, RushTDs: 1}),
		},
	}
	if err := w.WriteWeekSnapshot(2025, 4, perfs); err != nil {
		t.Fatalf("failed to write week snapshot: %v", err)
	}

	data, err := os.ReadFile(WeekSnapshotPath(dir, 2025, 4))
	if err != nil {
		t.Fatalf("expected week snapshot file, got err %v", err)
	}
	var snap WeekSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("failed to decode week snapshot: %v", err)
	}
	if snap.Season != 2025 || snap.Week != 4 {
		t.Fatalf("expected season 2025 week 4, got %d week %d", snap.Season, snap.Week)
	}
	if len(snap.Performances) != 1 || snap.Performances[0].PlayerName != "Josh Allen" {
		t.Fatalf("unexpected performances: %+v", snap.Performances)
	}
}

func TestWriterRejectsInvalidInput(t *testing.T) {
	var nilWriter *Writer
	if err := nilWriter.WriteCatalogSnapshot("2025-09-04", catalog.DraftDatabase{}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if err := nilWriter.WriteWeekSnapshot(2025, 1, nil); err == nil {
		t.Fatalf("expected error for nil writer")
	}

	w := NewWriter(t.TempDir(), 1)
	if err := w.WriteCatalogSnapshot("", catalog.DraftDatabase{}); err == nil {
		t.Fatalf("expected error for empty date")
	}
	if err := w.WriteCatalogSnapshot("09/04/2025", catalog.DraftDatabase{}); err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if err := w.WriteWeekSnapshot(0, 1, nil); err == nil {
		t.Fatalf("expected error for zero season")
	}
	if err := w.WriteWeekSnapshot(2025, 0, nil); err == nil {
		t.Fatalf("expected error for zero week")
	}
}

func TestNewWriterDefaultsRetention(t *testing.T) {
	w := NewWriter(t.TempDir(), 0)
	if w.retentionDays != defaultRetentionDays {
		t.Fatalf("expected retention to default when non-positive provided, got %d", w.retentionDays)
	}
}

func TestListKeysIgnoresNonJSONAndDirs(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "catalog", "nested"), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catalog", "2025-09-04.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catalog", "ignore.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write extra file: %v", err)
	}

	w := NewWriter(dir, 1)
	keys, err := w.listKeys(kindCatalog)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(keys) != 1 || keys[0] != "2025-09-04" {
		t.Fatalf("expected only json snapshots, got %v", keys)
	}
}

func TestWeekKeyPadsSingleDigitWeeks(t *testing.T) {
	if got := WeekKey(2025, 4); got != "2025-W04" {
		t.Fatalf("expected 2025-W04, got %s", got)
	}
	if got := WeekKey(2025, 14); got != "2025-W14" {
		t.Fatalf("expected 2025-W14, got %s", got)
	}
}

func TestWriteJSONAtomicSkipsIdenticalPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "payload.json")

	written, err := writeJSONAtomic(path, map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if !written {
		t.Fatalf("expected first write to report a change")
	}

	written, err = writeJSONAtomic(path, map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if written {
		t.Fatalf("expected identical payload to be skipped")
	}

	written, err = writeJSONAtomic(path, map[string]int{"a": 2})
	if err != nil {
		t.Fatalf("third write failed: %v", err)
	}
	if !written {
		t.Fatalf("expected changed payload to be written")
	}
}

func TestBasePathExposesRoot(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 1)
	if w.BasePath() != base {
		t.Fatalf("expected base path %s, got %s", base, w.BasePath())
	}

	var nilWriter *Writer
	if nilWriter.BasePath() != "" {
		t.Fatalf("expected empty base path for nil writer")
	}
}
