// Package membackend is an in-memory clipboard backend. It keeps a bounded
// history with the same semantics as the real backend and is used by tests
// and demo mode.
package membackend

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/five82/clipdeck/internal/backend"
	"github.com/five82/clipdeck/internal/clip"
)

// MaxItems is the history size. Adding past it evicts the oldest entry.
const MaxItems = 50

// Op names a backend operation for counters and failure injection.
type Op string

const (
	OpList   Op = "list"
	OpWrite  Op = "write"
	OpRemove Op = "remove"
	OpToggle Op = "toggle"
)

var _ backend.Backend = (*Backend)(nil)

// Backend holds entries oldest first.
type Backend struct {
	mu      sync.Mutex
	items   []clip.Entry
	visible bool
	calls   map[Op]int
	fail    map[Op]error
	status  map[Op]backend.Status
}

// New returns a backend seeded with entries given most recent first, the
// order List returns them in.
func New(seed ...clip.Entry) *Backend {
	b := &Backend{
		calls:  map[Op]int{},
		fail:   map[Op]error{},
		status: map[Op]backend.Status{},
	}
	for i := len(seed) - 1; i >= 0; i-- {
		b.add(seed[i])
	}
	return b
}

// List returns entries whose payload contains query, most recent first.
func (b *Backend) List(ctx context.Context, query string) (clip.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls[OpList]++
	if err := b.fail[OpList]; err != nil {
		return nil, err
	}
	out := make(clip.List, 0, len(b.items))
	for i := len(b.items) - 1; i >= 0; i-- {
		if query == "" || strings.Contains(b.items[i].Data, query) {
			out = append(out, b.items[i])
		}
	}
	return out, nil
}

// Write adds entry as the most recent item. Only text and image entries are
// accepted.
func (b *Backend) Write(ctx context.Context, entry clip.Entry) (backend.Status, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls[OpWrite]++
	if status, ok, err := b.injected(OpWrite); ok {
		return status, err
	}
	if entry.Kind != clip.KindText && entry.Kind != clip.KindImage {
		return backend.Status(fmt.Sprintf("Unsupported item kind: %s", entry.Kind)), nil
	}
	b.add(entry)
	return backend.StatusOK, nil
}

// Remove deletes every entry equal to entry.
func (b *Backend) Remove(ctx context.Context, entry clip.Entry) (backend.Status, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls[OpRemove]++
	if status, ok, err := b.injected(OpRemove); ok {
		return status, err
	}
	kept := b.items[:0]
	for _, e := range b.items {
		if !clip.Equal(e, entry) {
			kept = append(kept, e)
		}
	}
	removed := len(b.items) - len(kept)
	b.items = kept
	if removed == 0 {
		return "Item not found", nil
	}
	return backend.StatusOK, nil
}

// ToggleVisibility flips a visibility flag and reports the new state.
func (b *Backend) ToggleVisibility(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls[OpToggle]++
	if err := b.fail[OpToggle]; err != nil {
		return "", err
	}
	b.visible = !b.visible
	if b.visible {
		return "shown", nil
	}
	return "hidden", nil
}

// Add inserts entry as the most recent item without counting a call. Tests
// use it to simulate copies made outside clipdeck.
func (b *Backend) Add(entry clip.Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.add(entry)
}

// Len returns the number of stored entries.
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Calls returns how many times op has been invoked.
func (b *Backend) Calls(op Op) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

// FailWith makes op return err until cleared with a nil err.
func (b *Backend) FailWith(op Op, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.fail, op)
		return
	}
	b.fail[op] = err
}

// RespondWith makes a mutating op return status instead of performing the
// change. An empty status restores normal behaviour.
func (b *Backend) RespondWith(op Op, status backend.Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if status == "" {
		delete(b.status, op)
		return
	}
	b.status[op] = status
}

func (b *Backend) injected(op Op) (backend.Status, bool, error) {
	if err := b.fail[op]; err != nil {
		return "", true, err
	}
	if status, ok := b.status[op]; ok {
		return status, true, nil
	}
	return "", false, nil
}

// add must be called with mu held or during construction.
func (b *Backend) add(entry clip.Entry) {
	for _, e := range b.items {
		if clip.Equal(e, entry) {
			return
		}
	}
	b.items = append(b.items, entry)
	if len(b.items) > MaxItems {
		b.items = append([]clip.Entry(nil), b.items[len(b.items)-MaxItems:]...)
	}
}
