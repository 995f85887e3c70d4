package reconcile

import (
	"sync"
	"sync/atomic"

	"github.com/five82/clipdeck/internal/clip"
	"github.com/five82/clipdeck/internal/logging"
	"github.com/five82/clipdeck/internal/state"
)

// Renderer draws a full list. Implementations must replace whatever they
// showed before in one step.
type Renderer interface {
	Render(list clip.List, marks clip.Marks)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(list clip.List, marks clip.Marks)

// Render implements Renderer.
func (f RendererFunc) Render(list clip.List, marks clip.Marks) { f(list, marks) }

// Engine applies reconciliation decisions to the store and the renderer.
// Every method holds the engine lock for its whole duration, so renders and
// baseline commits are never interleaved.
type Engine struct {
	mu       sync.Mutex
	store    *state.Store
	renderer Renderer
	renders  atomic.Int64
}

// NewEngine returns an engine writing to store and drawing through r.
func NewEngine(store *state.Store, r Renderer) *Engine {
	if store == nil {
		store = &state.Store{}
	}
	return &Engine{store: store, renderer: r}
}

// Store returns the store the engine commits to.
func (e *Engine) Store() *state.Store {
	return e.store
}

// Renders returns how many times the renderer has been invoked.
func (e *Engine) Renders() int64 {
	return e.renders.Load()
}

// ApplyBaseline reconciles an unfiltered poll result against the baseline.
// Results that arrive while a search is active are discarded so they cannot
// clobber the filtered view.
func (e *Engine) ApplyBaseline(incoming clip.List) Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store.SearchActive() {
		return Decision{Mode: ModeBaseline, Discarded: true}
	}
	baseline, _ := e.store.Baseline()
	d := Reconcile(incoming, baseline, ModeBaseline)
	if !d.Changed {
		return d
	}
	e.render(d)
	// Commit only after rendering so the baseline always matches the screen.
	e.store.CommitBaseline(d.List, d.Marks)
	return d
}

// BeginSearch freezes the baseline for query. It returns false without
// touching the store when current reports the request was superseded.
func (e *Engine) BeginSearch(query string, current func() bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if current != nil && !current() {
		return false
	}
	e.store.EnterSearch(query)
	return true
}

// ApplySearch renders a search result without committing it. The result is
// compared with the list currently on screen and marked against the baseline,
// so entries already known are not flagged just because a filter shows them.
func (e *Engine) ApplySearch(incoming clip.List, current func() bool) Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.store.SearchActive() || (current != nil && !current()) {
		return Decision{Mode: ModeEphemeral, Discarded: true}
	}
	baseline, _ := e.store.Baseline()
	onScreen := e.store.Search().LastResult
	if onScreen == nil {
		onScreen = baseline
	}
	d := decide(incoming, onScreen, baseline, ModeEphemeral)
	if !d.Changed {
		return d
	}
	e.render(d)
	e.store.SetSearchResult(d.List)
	return d
}

// Restore leaves search mode and redraws the baseline with the marks it was
// committed with. It reports whether a render happened; nothing is drawn
// when no search was active or current reports the request was superseded.
func (e *Engine) Restore(current func() bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if current != nil && !current() {
		return false
	}
	if !e.store.SearchActive() {
		return false
	}
	e.store.ExitSearch()
	baseline, marks := e.store.Baseline()
	if baseline == nil {
		baseline = clip.List{}
	}
	e.render(Decision{Changed: true, List: baseline, Marks: marks, Mode: ModeBaseline})
	return true
}

func (e *Engine) render(d Decision) {
	e.renders.Add(1)
	logging.Logger().Debug().
		Str("mode", d.Mode.String()).
		Int("entries", len(d.List)).
		Int("new", d.Marks.Count()).
		Msg("render")
	if e.renderer == nil {
		return
	}
	e.renderer.Render(d.List.Clone(), d.Marks.Clone())
}
