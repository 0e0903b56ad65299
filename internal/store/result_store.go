package store

import (
	"sync"

	"draftline/internal/domain/adp"
	"draftline/internal/domain/formats"
	"draftline/internal/domain/players"
	"draftline/internal/domain/stats"
)

// ResultStore keeps one run's fetch results in memory. Fetchers publish into
// their own slot concurrently; the merge stage reads a consistent snapshot
// once the fetch stage has finished. Reads and writes copy, so callers can
// mutate what they hold without racing the store.
type ResultStore struct {
	mu        sync.RWMutex
	roster    []players.Player
	hasRoster bool
	boards    map[formats.Format]adp.Board
	week      []stats.PerformanceRecord
	hasWeek   bool
}

// NewResultStore constructs an empty ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{
		boards: make(map[formats.Format]adp.Board),
	}
}

// SetRoster replaces the stored player roster.
func (s *ResultStore) SetRoster(roster []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = append([]players.Player(nil), roster...)
	s.hasRoster = true
}

// Roster returns a copy of the stored roster and whether one was set.
func (s *ResultStore) Roster() ([]players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasRoster {
		return nil, false
	}
	return append([]players.Player(nil), s.roster...), true
}

// SetBoard stores one format's draft board, replacing any earlier board for
// the same format.
func (s *ResultStore) SetBoard(board adp.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board.Records = append([]adp.Record(nil), board.Records...)
	s.boards[board.Format] = board
}

// Board returns a copy of the board stored for the given format.
func (s *ResultStore) Board(format formats.Format) (adp.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, ok := s.boards[format]
	if !ok {
		return adp.Board{}, false
	}
	board.Records = append([]adp.Record(nil), board.Records...)
	return board, true
}

// Boards returns the stored boards in canonical format order.
func (s *ResultStore) Boards() []adp.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]adp.Board, 0, len(s.boards))
	for _, format := range formats.All() {
		board, ok := s.boards[format]
		if !ok {
			continue
		}
		board.Records = append([]adp.Record(nil), board.Records...)
		result = append(result, board)
	}
	return result
}

// SetWeekStats replaces the stored weekly performances.
func (s *ResultStore) SetWeekStats(records []stats.PerformanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.week = append([]stats.PerformanceRecord(nil), records...)
	s.hasWeek = true
}

// WeekStats returns a copy of the stored weekly performances and whether the
// stats fetch published anything, including an empty week.
func (s *ResultStore) WeekStats() ([]stats.PerformanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasWeek {
		return nil, false
	}
	return append([]stats.PerformanceRecord(nil), s.week...), true
}
