package snapshots

import (
	"fmt"
	"path/filepath"
)

// CatalogSnapshotPath builds the path to a dated consolidated-catalog
// snapshot.
func CatalogSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "catalog", fmt.Sprintf("%s.json", date))
}

// WeekSnapshotPath builds the path to one week's performance snapshot.
func WeekSnapshotPath(basePath string, season, week int) string {
	return filepath.Join(basePath, "weeks", fmt.Sprintf("%s.json", WeekKey(season, week)))
}

// WeekKey names a season week, zero-padded so lexical order is week order.
func WeekKey(season, week int) string {
	return fmt.Sprintf("%d-W%02d", season, week)
}
