// Package logtail reads the end of clipdeck's log file for the diagnostics
// overlay.
//
// Read extracts the last N lines of a file in one pass using a ring buffer
// of size N, so memory stays O(N) regardless of file size. A missing file
// yields no lines and no error.
//
// Humanize turns the JSON records written by the logger into short console
// lines and tags each with its level so the UI can colour them. Lines that
// are not JSON are kept verbatim.
package logtail
