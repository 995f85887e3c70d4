package app

import (
	"sync"

	"github.com/five82/clipdeck/internal/clip"
	"github.com/five82/clipdeck/internal/reconcile"
	"github.com/five82/clipdeck/internal/state"
)

type recordingRenderer struct {
	mu    sync.Mutex
	lists []clip.List
	marks []clip.Marks
}

func (r *recordingRenderer) Render(list clip.List, marks clip.Marks) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists = append(r.lists, list)
	r.marks = append(r.marks, marks)
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lists)
}

func (r *recordingRenderer) last() (clip.List, clip.Marks) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lists) == 0 {
		return nil, nil
	}
	return r.lists[len(r.lists)-1], r.marks[len(r.marks)-1]
}

func newTestEngine() (*reconcile.Engine, *recordingRenderer, *state.Store) {
	r := &recordingRenderer{}
	store := &state.Store{}
	return reconcile.NewEngine(store, r), r, store
}
