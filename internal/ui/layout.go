package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which key hints are hidden.
	LayoutCompactWidth = 80

	// LayoutThumbWidth is the minimum width to draw image thumbnails.
	LayoutThumbWidth = 50
)

// Diagnostics overlay limits.
const (
	// LogTailLines is how many lines of the log file the overlay shows.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is how often the status bar re-reads the store.
	DefaultUIInterval = time.Second

	// DefaultToastDuration is how long a confirmation stays visible.
	DefaultToastDuration = 3 * time.Second
)
