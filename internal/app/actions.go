package app

import (
	"context"
	"fmt"

	"github.com/five82/clipdeck/internal/backend"
	"github.com/five82/clipdeck/internal/clip"
	"github.com/five82/clipdeck/internal/logging"
	"github.com/five82/clipdeck/internal/pasteboard"
)

// Toast messages for successful actions.
const (
	MsgCopied  = "Copied to clipboard!"
	MsgDeleted = "Deleted!"
)

// Refresher asks for an out-of-schedule poll.
type Refresher interface {
	Trigger()
}

// Actions runs the per-entry commands. Each returns the confirmation to
// show, or an error when nothing should be confirmed.
type Actions struct {
	backend    backend.Backend
	pasteboard pasteboard.Pasteboard
	refresher  Refresher
}

// NewActions wires the commands to a backend, a local pasteboard and the
// poller. r may be nil.
func NewActions(b backend.Backend, pb pasteboard.Pasteboard, r Refresher) *Actions {
	return &Actions{backend: b, pasteboard: pb, refresher: r}
}

// Copy makes entry the current clipboard content in the backend and, once
// the backend accepts it, mirrors it to the local pasteboard.
func (a *Actions) Copy(ctx context.Context, entry clip.Entry) (string, error) {
	status, err := a.backend.Write(ctx, entry)
	if err == nil {
		err = status.Err()
	}
	if err != nil {
		logging.Warn("copy %q failed: %v", entry.Preview(40), err)
		return "", fmt.Errorf("copy: %w", err)
	}
	if err := a.mirror(entry); err != nil {
		logging.Error("pasteboard write failed: %v", err)
		return "", fmt.Errorf("pasteboard: %w", err)
	}
	a.Refresh()
	return MsgCopied, nil
}

// Delete removes entry from the backend. The row itself disappears on the
// next poll.
func (a *Actions) Delete(ctx context.Context, entry clip.Entry) (string, error) {
	status, err := a.backend.Remove(ctx, entry)
	if err == nil {
		err = status.Err()
	}
	if err != nil {
		logging.Warn("delete %q failed: %v", entry.Preview(40), err)
		return "", fmt.Errorf("delete: %w", err)
	}
	a.Refresh()
	return MsgDeleted, nil
}

// ToggleVisibility forwards a show/hide request and logs the answer.
func (a *Actions) ToggleVisibility(ctx context.Context) (string, error) {
	resp, err := a.backend.ToggleVisibility(ctx)
	if err != nil {
		logging.Warn("toggle visibility failed: %v", err)
		return "", fmt.Errorf("toggle visibility: %w", err)
	}
	logging.Info("toggle visibility: %s", resp)
	return resp, nil
}

// Refresh requests an immediate poll.
func (a *Actions) Refresh() {
	if a.refresher != nil {
		a.refresher.Trigger()
	}
}

func (a *Actions) mirror(entry clip.Entry) error {
	if a.pasteboard == nil {
		return nil
	}
	if entry.Kind.IsImage() {
		data, err := entry.ImageBytes()
		if err != nil {
			return err
		}
		return a.pasteboard.WriteImage(data)
	}
	return a.pasteboard.WriteText(entry.Data)
}
