package snapshots

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"draftline/internal/domain/catalog"
	"draftline/internal/domain/stats"
	"draftline/internal/timeutil"
)

type snapshotKind string

const (
	kindCatalog snapshotKind = "catalog"
	kindWeeks   snapshotKind = "weeks"
)

const defaultRetentionDays = 60

// WeekSnapshot is the payload stored for one collected week.
type WeekSnapshot struct {
	Season       int                       `json:"season"`
	Week         int                       `json:"week"`
	Performances []stats.PerformanceRecord `json:"performances"`
}

// Writer persists immutable snapshots and a manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath. Dated catalog snapshots
// older than retentionDays are pruned; weekly snapshots are kept for the
// whole season.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteCatalogSnapshot writes the consolidated catalog under the given date
// (YYYY-MM-DD) and prunes snapshots outside the retention window.
func (w *Writer) WriteCatalogSnapshot(date string, db catalog.DraftDatabase) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return fmt.Errorf("snapshot date %q: %w", date, err)
	}

	if _, err := writeJSONAtomic(CatalogSnapshotPath(w.basePath, date), db); err != nil {
		return err
	}
	return w.updateManifest(kindCatalog, date)
}

// WriteWeekSnapshot writes one week's performances.
func (w *Writer) WriteWeekSnapshot(season, week int, performances []stats.PerformanceRecord) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if season <= 0 || week <= 0 {
		return fmt.Errorf("season and week required")
	}

	snapshot := WeekSnapshot{Season: season, Week: week, Performances: performances}
	if _, err := writeJSONAtomic(WeekSnapshotPath(w.basePath, season, week), snapshot); err != nil {
		return err
	}
	return w.updateManifest(kindWeeks, WeekKey(season, week))
}

func (w *Writer) updateManifest(kind snapshotKind, key string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := time.Now().UTC()

	keys, err := w.listKeys(kind)
	if err != nil {
		return err
	}
	if !containsKey(keys, key) {
		keys = append(keys, key)
		sort.Strings(keys)
	}

	switch kind {
	case kindCatalog:
		pruned, err := w.pruneCatalogSnapshots(keys)
		if err != nil {
			return err
		}
		m.Catalog.Dates = pruned
		m.Catalog.LastRefreshed = now
		m.Retention.CatalogDays = w.retentionDays
	case kindWeeks:
		m.Weeks.Keys = keys
		m.Weeks.LastRefreshed = now
	}

	return writeManifest(w.basePath, m)
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func (w *Writer) listKeys(kind snapshotKind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		keys []string
		seen = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		keys = append(keys, base)
	}
	sort.Strings(keys)
	return keys, nil
}

func (w *Writer) pruneCatalogSnapshots(dates []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(CatalogSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
