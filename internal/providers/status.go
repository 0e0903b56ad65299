package providers

import "sync"

// Status records how one source behaved during a run. Fallback wrappers mark
// it degraded when they substitute or drop data; the quality report surfaces
// the notes.
type Status struct {
	mu       sync.Mutex
	source   string
	degraded bool
	notes    []string
}

func NewStatus(source string) *Status {
	return &Status{source: source}
}

func (s *Status) markDegraded(note string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.degraded = true
	if note != "" {
		s.notes = append(s.notes, note)
	}
}

// Source returns the name this status tracks.
func (s *Status) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Degraded reports whether any fallback fired for this source.
func (s *Status) Degraded() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Notes returns a copy of the degradation notes in the order recorded.
func (s *Status) Notes() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.notes))
	copy(out, s.notes)
	return out
}
