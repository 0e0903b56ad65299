package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
)

func TestConsolidatedRecordOmitsMissingADP(t *testing.T) {
	rec := ConsolidatedRecord{
		Player: players.Player{ID: "4046", Name: "Patrick Mahomes", Position: "QB", Team: "KC"},
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "standard") {
		t.Fatalf("expected missing formats to be omitted, got %s", raw)
	}
	if strings.Contains(string(raw), "performances") {
		t.Fatalf("expected empty performances to be omitted, got %s", raw)
	}
}

func TestConsolidatedRecordCarriesADP(t *testing.T) {
	rec := ConsolidatedRecord{
		Player: players.Player{ID: "6786", Name: "Justin Jefferson", Position: "WR", Team: "MIN"},
	}
	rec.ADP.Set(formats.PPR, adp.Record{PlayerName: "Justin Jefferson", ADP: 1.8})

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"ppr"`) {
		t.Fatalf("expected ppr ADP in payload, got %s", raw)
	}
}

func TestNewDraftDatabase(t *testing.T) {
	db := NewDraftDatabase(2025, 12, []formats.Format{formats.PPR, formats.Standard}, nil)
	if db.Season != 2025 || db.Teams != 12 {
		t.Fatalf("unexpected database header: %+v", db)
	}
	if len(db.Formats) != 2 || db.Formats[0] != formats.PPR {
		t.Fatalf("expected collected formats to be recorded, got %v", db.Formats)
	}
}
