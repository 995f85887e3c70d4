package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/five82/clipdeck/internal/backend"
	"github.com/five82/clipdeck/internal/logging"
	"github.com/five82/clipdeck/internal/reconcile"
)

const defaultPollInterval = time.Second

// Poller refreshes the baseline from the backend at a fixed cadence. There
// is no backoff: a failed tick is simply retried on the next one.
type Poller struct {
	backend  backend.Backend
	engine   *reconcile.Engine
	interval time.Duration

	// permit allows one tick at a time.
	permit  *semaphore.Weighted
	trigger chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// NewPoller returns a poller that feeds engine from b every interval.
func NewPoller(b backend.Backend, engine *reconcile.Engine, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		backend:  b,
		engine:   engine,
		interval: interval,
		permit:   semaphore.NewWeighted(1),
		trigger:  make(chan struct{}, 1),
	}
}

// Interval returns the tick period.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run ticks immediately and then every interval until ctx is cancelled or
// Stop is called. It blocks.
func (p *Poller) Run(ctx context.Context) {
	p.mu.Lock()
	if p.stopped || p.done != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done
	p.mu.Unlock()

	defer close(done)
	defer cancel()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.Tick(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-p.trigger:
		}
	}
}

// Trigger requests an immediate tick. Requests made while one is already
// pending are merged.
func (p *Poller) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Stop cancels the loop and waits for an in-flight tick to finish. No
// result is applied after Stop returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Tick performs one poll. It reports false when the tick was skipped,
// either because another tick holds the permit or because a search has
// frozen the baseline.
func (p *Poller) Tick(ctx context.Context) bool {
	if !p.permit.TryAcquire(1) {
		return false
	}
	defer p.permit.Release(1)

	store := p.engine.Store()
	if store.SearchActive() {
		return false
	}

	list, err := p.backend.List(ctx, "")
	if ctx.Err() != nil {
		return false
	}
	store.RecordPoll(err)
	if err != nil {
		logging.Warn("poll failed: %v", err)
		return true
	}
	p.engine.ApplyBaseline(list)
	return true
}
