// Package state holds the view state shared by the poller, the search
// controller and the UI.
//
// # Overview
//
// The Store keeps the baseline, the last entry list committed from a
// non-search poll, together with the marks it was rendered with. It also
// keeps the search state and the outcome of the most recent poll.
//
//	Poller ──ApplyBaseline──┐
//	                        ├──> reconcile.Engine ──CommitBaseline──> Store
//	Search ──ApplySearch────┘                                          │
//	                                                                   ↓
//	                                                       UI reads Snapshot()
//
// # Baseline
//
// CommitBaseline replaces the baseline wholesale. Only the reconciliation
// engine calls it, and only after deciding that a non-search poll differs
// from the current baseline. The marks are stored next to the list so that
// leaving search mode can restore exactly what was on screen before.
//
// # Search State
//
//   - EnterSearch(query): Active becomes true; the baseline is frozen
//   - SetSearchResult(list): remembers the list rendered for the query
//   - ExitSearch(): resets the search state to its zero value
//
// While Active is true the poller does not call the backend at all.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - Mutators (CommitBaseline, EnterSearch, ExitSearch, SetSearchResult,
//     RecordPoll) take the write lock
//   - Baseline(), Search(), SearchActive() and Snapshot() take the read lock
//
// Every slice crossing the Store boundary is cloned in both directions.
//
// # Poll Outcomes
//
// RecordPoll(err) keeps the previous baseline on failure and counts
// consecutive failures. Snapshot.IsOffline reports two or more in a row,
// which the status bar shows as "backend offline".
//
// # Testing Considerations
//
// The zero value is ready to use:
//
//	store := &state.Store{}
package state
