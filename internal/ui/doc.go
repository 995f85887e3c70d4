// Package ui provides the clipdeck terminal interface, built on Bubble Tea.
//
// # Architecture Overview
//
// The Model owns only presentation state: the prepared rows, the selection,
// the filter input and the overlays. Clipboard data never flows through
// Update directly. The reconcile engine decides when the list changed and
// calls the Renderer, which prepares every row off the program loop and
// hands the batch to the program as a single renderMsg.
//
// # Package Structure
//
//   - app.go: Model, Update, View and the Commands/Searcher seams
//   - renderer.go: Renderer, row preparation and the thumbnail cache
//   - list.go: row layout, scrolling and the empty state
//   - header.go: status bar and key hints
//   - highlight.go: text sanitising, syntax and match highlighting
//   - thumbnail.go: half-block image thumbnails
//   - logs.go, help.go, toast.go: overlays and confirmations
//   - theme.go, style_helpers.go: colours and background-safe rendering
//
// # Concurrency
//
// Update never calls the engine or the backend. Searches are registered in
// Update so their ids follow keystroke order, then executed as commands.
// Copy, delete and visibility actions also run as commands and report back
// with actionDoneMsg.
//
// # Themes
//
// Two themes are available, a dark Nightfox and a light Dayfox palette.
// The initial theme follows the saved preference, or the terminal
// background when the preference is auto. T toggles and saves the choice.
package ui
