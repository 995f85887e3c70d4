package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/five82/clipdeck/internal/backend"
	"github.com/five82/clipdeck/internal/logging"
	"github.com/five82/clipdeck/internal/reconcile"
)

// ErrSuperseded is returned for a search that a newer one replaced before
// its result could be shown.
var ErrSuperseded = errors.New("search superseded")

// Search issues filter requests against the backend. Every request gets an
// increasing id; only the latest may touch the view, and starting a new one
// cancels the previous backend call.
type Search struct {
	backend backend.Backend
	engine  *reconcile.Engine
	parent  context.Context

	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc
}

// NewSearch returns a controller whose requests are bound to ctx.
func NewSearch(ctx context.Context, b backend.Backend, engine *reconcile.Engine) *Search {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Search{backend: b, engine: engine, parent: ctx}
}

// Begin registers query as the newest request and returns its id together
// with the function that executes it. Begin is cheap and must be called in
// keystroke order; run may be called from any goroutine. An empty query
// clears the search.
func (s *Search) Begin(query string) (uint64, func() error) {
	s.mu.Lock()
	s.latest++
	id := s.latest
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel
	s.mu.Unlock()

	return id, func() error { return s.run(ctx, id, query) }
}

// Query begins and runs a request synchronously.
func (s *Search) Query(query string) error {
	_, run := s.Begin(query)
	return run()
}

// Latest returns the id of the newest request.
func (s *Search) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Stop cancels the in-flight request, if any.
func (s *Search) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Search) run(ctx context.Context, id uint64, query string) error {
	current := func() bool { return s.Latest() == id }

	if strings.TrimSpace(query) == "" {
		s.engine.Restore(current)
		return nil
	}
	if !s.engine.BeginSearch(query, current) {
		return ErrSuperseded
	}

	list, err := s.backend.List(ctx, query)
	if err != nil {
		if ctx.Err() != nil || !current() {
			return ErrSuperseded
		}
		logging.Warn("search %q failed: %v", query, err)
		return fmt.Errorf("search: %w", err)
	}
	if d := s.engine.ApplySearch(list, current); d.Discarded {
		return ErrSuperseded
	}
	return nil
}
