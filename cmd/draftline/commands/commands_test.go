package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestCollectMockRunPublishesGreen(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	dataDir := t.TempDir()
	snapDir := t.TempDir()

	out, err := execute(t, "collect", "--mock", "--week", "3",
		"--data-dir", dataDir, "--snapshot-dir", snapDir)
	if err != nil {
		t.Fatalf("collect --mock failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "GREEN") {
		t.Fatalf("expected green verdict in output:\n%s", out)
	}
	if !strings.Contains(out, "100.00%") {
		t.Fatalf("expected full match rate in output:\n%s", out)
	}

	for _, name := range []string{
		"players.json",
		"quality_report.json",
		filepath.Join("adp", "ppr_2025.json"),
		"draft_database_2025.json",
		"season_2025_performances.json",
		"season_2025_totals.json",
	} {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(snapDir, "weeks", "2025-W03.json")); err != nil {
		t.Fatalf("expected week snapshot: %v", err)
	}
	if _, err := os.Stat(filepath.Join(snapDir, "manifest.json")); err != nil {
		t.Fatalf("expected snapshot manifest: %v", err)
	}
}

func TestCollectRejectsUnknownFormat(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	// The format flag value sticks around between executions.
	t.Cleanup(func() { *collectFormats = nil })

	out, err := execute(t, "collect", "--mock", "--week", "1",
		"--data-dir", t.TempDir(), "--snapshot-dir", t.TempDir(),
		"--format", "turbo")
	if err == nil {
		t.Fatalf("expected unknown format to fail:\n%s", out)
	}
}

func TestValidateGradesPersistedDataset(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	dataDir := t.TempDir()

	if out, err := execute(t, "collect", "--mock", "--week", "2",
		"--data-dir", dataDir, "--snapshot-dir", t.TempDir()); err != nil {
		t.Fatalf("seed collect failed: %v\n%s", err, out)
	}

	out, err := execute(t, "validate", "--data-dir", dataDir)
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "GREEN") {
		t.Fatalf("expected green verdict from validate:\n%s", out)
	}
}

func TestValidateFailsWithoutDataset(t *testing.T) {
	if out, err := execute(t, "validate", "--data-dir", t.TempDir()); err == nil {
		t.Fatalf("expected validate to fail with no dataset:\n%s", out)
	}
}

func TestVersionPrints(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "draftline "+appVersion) {
		t.Fatalf("unexpected version output: %s", out)
	}
}
