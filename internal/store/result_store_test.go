package store

import (
	"testing"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

func TestResultStoreRosterSetAndGet(t *testing.T) {
	s := NewResultStore()

	if _, ok := s.Roster(); ok {
		t.Fatal("expected empty store to report no roster")
	}

	s.SetRoster([]players.Player{
		{ID: "1", Name: "Josh Allen"},
		{ID: "2", Name: "Travis Kelce"},
	})

	roster, ok := s.Roster()
	if !ok {
		t.Fatal("expected roster to be present")
	}
	if len(roster) != 2 || roster[0].Name != "Josh Allen" {
		t.Fatalf("unexpected roster %+v", roster)
	}
}

func TestResultStoreRosterReturnsCopy(t *testing.T) {
	s := NewResultStore()
	s.SetRoster([]players.Player{{ID: "1", Name: "original"}})

	roster, _ := s.Roster()
	roster[0].Name = "mutated"

	again, _ := s.Roster()
	if again[0].Name != "original" {
		t.Fatalf("expected store to remain unchanged, got %s", again[0].Name)
	}
}

func TestResultStoreBoardPerFormat(t *testing.T) {
	s := NewResultStore()

	s.SetBoard(adp.Board{Format: formats.PPR, Season: 2025, Records: []adp.Record{{PlayerName: "A"}}})
	s.SetBoard(adp.Board{Format: formats.Standard, Season: 2025, Records: []adp.Record{{PlayerName: "B"}}})

	if _, ok := s.Board(formats.HalfPPR); ok {
		t.Fatal("expected missing format to report false")
	}

	ppr, ok := s.Board(formats.PPR)
	if !ok || len(ppr.Records) != 1 || ppr.Records[0].PlayerName != "A" {
		t.Fatalf("unexpected ppr board %+v", ppr)
	}

	s.SetBoard(adp.Board{Format: formats.PPR, Season: 2025, Records: []adp.Record{{PlayerName: "C"}}})
	ppr, _ = s.Board(formats.PPR)
	if ppr.Records[0].PlayerName != "C" {
		t.Fatalf("expected replace per format, got %+v", ppr)
	}
}

func TestResultStoreBoardsCanonicalOrder(t *testing.T) {
	s := NewResultStore()
	s.SetBoard(adp.Board{Format: formats.PPR})
	s.SetBoard(adp.Board{Format: formats.Standard})

	boards := s.Boards()
	if len(boards) != 2 {
		t.Fatalf("expected 2 boards, got %d", len(boards))
	}
	if boards[0].Format != formats.Standard || boards[1].Format != formats.PPR {
		t.Fatalf("unexpected board order %+v", boards)
	}
}

func TestResultStoreWeekStatsDistinguishesEmptyFromUnset(t *testing.T) {
	s := NewResultStore()

	if _, ok := s.WeekStats(); ok {
		t.Fatal("expected unset week stats to report false")
	}

	s.SetWeekStats(nil)
	records, ok := s.WeekStats()
	if !ok {
		t.Fatal("expected empty week to count as published")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}

	s.SetWeekStats([]stats.PerformanceRecord{{PlayerName: "Josh Allen", Week: 4}})
	records, _ = s.WeekStats()
	if len(records) != 1 || records[0].Week != 4 {
		t.Fatalf("unexpected records %+v", records)
	}
}
