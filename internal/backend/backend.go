package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/clipdeck/internal/clip"
)

// Backend is the clipboard store clipdeck reads from and writes to.
type Backend interface {
	// List returns the saved entries, most recent first. An empty query
	// returns everything.
	List(ctx context.Context, query string) (clip.List, error)
	// Write makes entry the current clipboard content.
	Write(ctx context.Context, entry clip.Entry) (Status, error)
	// Remove deletes every saved entry equal to entry.
	Remove(ctx context.Context, entry clip.Entry) (Status, error)
	// ToggleVisibility asks the backend to show or hide its window.
	ToggleVisibility(ctx context.Context) (string, error)
}

// Status is the textual result of a mutating backend call.
type Status string

// StatusOK is the only status that means success.
const StatusOK Status = "OK"

// ErrStatus is wrapped by Status.Err for any status other than StatusOK.
var ErrStatus = errors.New("backend rejected request")

// OK reports whether s is StatusOK.
func (s Status) OK() bool { return s == StatusOK }

// Err returns nil for StatusOK and an error wrapping ErrStatus otherwise.
func (s Status) Err() error {
	if s.OK() {
		return nil
	}
	if s == "" {
		return fmt.Errorf("%w: empty status", ErrStatus)
	}
	return fmt.Errorf("%w: %s", ErrStatus, string(s))
}
