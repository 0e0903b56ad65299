package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadFromFileLayersOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{
		// league overrides
		leagueTeams: 14,
		sleeper: { timeout: "20s" },
	}`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	require.Equal(t, 14, cfg.LeagueTeams)
	require.Equal(t, 20*time.Second, cfg.Sleeper.Timeout.Std())
	// Untouched settings keep their defaults.
	require.Equal(t, defaultSeason, cfg.Season)
}

func TestLoadFromMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{ leagueTeams: 14, season: 2026 }`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ leagueTeams: 8 }`)

	cfg, err := LoadFrom(filepath.Join(dir, "config.json5"))
	require.NoError(t, err)

	require.Equal(t, 8, cfg.LeagueTeams, "local override wins")
	require.Equal(t, 2026, cfg.Season, "base file values survive the local merge")
}

func TestLoadFromEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{ leagueTeams: 14 }`)
	t.Setenv(envLeagueTeams, "16")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.LeagueTeams)
}

func TestLoadFromMissingFileErrors(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDurationUnmarshalAcceptsSeconds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{ ffcalc: { pacing: 3 } }`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.FFCalc.Pacing.Std())
}
