package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/clipdeck/internal/clip"
)

// Search describes the filter currently applied to the view.
type Search struct {
	Active bool
	Query  string
	// LastResult is the most recent search result rendered, nil until one
	// has been applied.
	LastResult clip.List
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Baseline            clip.List
	BaselineMarks       clip.Marks
	Search              Search
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the backend has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store holds the committed baseline and the search state. All access is
// serialised by a mutex so the poller, the search controller and the UI can
// share it.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// CommitBaseline replaces the baseline and the marks it was rendered with.
// The baseline is never patched in place.
func (s *Store) CommitBaseline(list clip.List, marks clip.Marks) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Baseline = list.Clone()
	s.snapshot.BaselineMarks = marks.Clone()
}

// Baseline returns copies of the committed baseline and its marks.
func (s *Store) Baseline() (clip.List, clip.Marks) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Baseline.Clone(), s.snapshot.BaselineMarks.Clone()
}

// EnterSearch marks the view as filtered by query. The previous search
// result is kept so an unchanged response does not re-render.
func (s *Store) EnterSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Search.Active = true
	s.snapshot.Search.Query = query
}

// ExitSearch leaves search mode and forgets the last search result.
func (s *Store) ExitSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Search = Search{}
}

// SetSearchResult records the list most recently rendered for a search.
func (s *Store) SetSearchResult(list clip.List) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list == nil {
		list = clip.List{}
	}
	s.snapshot.Search.LastResult = list.Clone()
}

// Search returns a copy of the search state.
func (s *Store) Search() Search {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.snapshot.Search
	out.LastResult = s.snapshot.Search.LastResult.Clone()
	return out
}

// SearchActive reports whether the baseline is currently frozen by a search.
func (s *Store) SearchActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Search.Active
}

// RecordPoll notes the outcome of a poll. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) RecordPoll(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Baseline = s.snapshot.Baseline.Clone()
	snap.BaselineMarks = s.snapshot.BaselineMarks.Clone()
	snap.Search.LastResult = s.snapshot.Search.LastResult.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
