// Package app wires configuration, the backend, the reconciliation engine
// and the UI together, and owns the goroutines that feed the engine.
//
// # Components
//
//   - app.go: Run, the composition root
//   - poller.go: fixed-interval baseline refresh with a single tick permit
//   - search.go: sequence-tagged filter requests with cancellation
//   - actions.go: copy, delete and visibility commands
//   - demo.go: sample entries for the in-memory backend
//
// # Data Flow
//
//	Poller.Tick ──> backend.List("") ──> Engine.ApplyBaseline ──> render + commit
//	Search.run  ──> backend.List(q)  ──> Engine.ApplySearch   ──> render only
//	clear query ──────────────────────> Engine.Restore        ──> render baseline
//
// While a search is active the poller skips its ticks and the baseline stays
// frozen. Clearing the search redraws the baseline exactly as it was last
// committed.
//
// # Error Handling
//
// Fatal errors (returned from Run): configuration, log file and backend
// address problems at startup. Everything after startup is recoverable:
// poll and search failures are logged and retried on schedule, and action
// failures surface as an error toast.
package app
