// Package backend defines the clipboard backend clipdeck talks to and an
// HTTP client for it.
//
// # Endpoints
//
//   - GET /api/items?s=<query>: saved entries, most recent first
//   - POST /api/set_data: make {"item": entry} the current clipboard
//   - POST /api/delete_item: delete {"item": entry} from history
//   - POST /api/toggle_window: show or hide the backend window
//
// Mutating endpoints answer with a JSON string status. Only "OK" means
// success; Status.Err wraps ErrStatus for anything else.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: clipdeck/0.1
//   - Carry a fresh X-Request-Id
//   - Have a 5-second timeout
//
// A non-2xx response is an error whose message includes the response body
// when the backend sent one. Entries with an empty payload are dropped from
// List results with a warning.
//
// The client does not retry or cache. The poller decides the refresh cadence.
package backend
