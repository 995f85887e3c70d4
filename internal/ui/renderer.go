package ui

import (
	"crypto/sha256"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clipdeck/internal/clip"
	"github.com/five82/clipdeck/internal/logging"
	"github.com/five82/clipdeck/internal/reconcile"
)

// Preview limits per entry.
const (
	maxPreviewLines = 4
	thumbCols       = 32
	thumbRows       = 6
	// highlightLimit bounds how much text is handed to the syntax
	// highlighter.
	highlightLimit = 4 << 10
)

// entryView is a fully prepared row. Views are built off the program loop
// and handed to the model as a batch.
type entryView struct {
	entry clip.Entry
	isNew bool
	kind  string

	// lines holds the sanitized text, one element per source line.
	lines []string
	// code holds chroma-coloured lines, nil when the text is not code or
	// highlighting is off.
	code     []string
	language string

	thumb   []string
	caption string
	broken  bool
}

// renderMsg replaces every row at once. gen orders messages: a rebuild
// carries the generation of the list it was built from, so it never
// overwrites a newer render.
type renderMsg struct {
	gen   uint64
	views []entryView
}

// RendererOptions configure how rows are prepared.
type RendererOptions struct {
	SyntaxHighlight bool
	ChromaStyle     string
}

type thumbResult struct {
	lines   []string
	caption string
	broken  bool
}

// Renderer prepares rows for a list and delivers them to the program in a
// single message. It implements reconcile.Renderer.
type Renderer struct {
	mu          sync.Mutex
	send        func(tea.Msg)
	highlight   bool
	chromaStyle string

	thumbs map[[sha256.Size]byte]thumbResult

	gen       uint64
	lastList  clip.List
	lastMarks clip.Marks
	hasLast   bool
	pending   *renderMsg
}

var _ reconcile.Renderer = (*Renderer)(nil)

// NewRenderer returns a renderer that is not yet attached to a program.
func NewRenderer(opts RendererOptions) *Renderer {
	style := opts.ChromaStyle
	if style == "" {
		style = nightfoxTheme().ChromaStyle
	}
	return &Renderer{
		highlight:   opts.SyntaxHighlight,
		chromaStyle: style,
		thumbs:      make(map[[sha256.Size]byte]thumbResult),
	}
}

// Attach sets the delivery function, normally tea.Program.Send. A render
// that happened before Attach is delivered immediately.
func (r *Renderer) Attach(send func(tea.Msg)) {
	r.mu.Lock()
	r.send = send
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	if pending != nil && send != nil {
		send(*pending)
	}
}

// Detach stops delivery. Later renders are kept until the next Attach.
func (r *Renderer) Detach() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.send = nil
}

// Render builds a view for every entry and swaps them into the model.
func (r *Renderer) Render(list clip.List, marks clip.Marks) {
	r.mu.Lock()
	r.lastList = list.Clone()
	r.lastMarks = marks.Clone()
	r.hasLast = true
	r.gen++
	msg := renderMsg{gen: r.gen, views: r.buildLocked(list, marks)}
	send := r.send
	if send == nil {
		r.pending = &msg
	}
	r.mu.Unlock()

	if send != nil {
		send(msg)
	}
}

// SetChromaStyle changes the syntax style and returns a command that
// rebuilds the last rendered list with it.
func (r *Renderer) SetChromaStyle(name string) tea.Cmd {
	r.mu.Lock()
	r.chromaStyle = name
	r.mu.Unlock()
	return r.rebuildCmd()
}

// rebuildCmd prepares the last list again without going through the
// engine.
func (r *Renderer) rebuildCmd() tea.Cmd {
	return func() tea.Msg {
		r.mu.Lock()
		defer r.mu.Unlock()
		if !r.hasLast {
			return nil
		}
		return renderMsg{gen: r.gen, views: r.buildLocked(r.lastList, r.lastMarks)}
	}
}

// buildLocked must be called with mu held.
func (r *Renderer) buildLocked(list clip.List, marks clip.Marks) []entryView {
	views := make([]entryView, 0, len(list))
	live := make(map[[sha256.Size]byte]struct{})
	for i, e := range list {
		v := entryView{entry: e, isNew: marks.IsNew(i), kind: e.Kind.String()}
		if e.Kind.IsImage() {
			digest := sha256.Sum256([]byte(e.Data))
			live[digest] = struct{}{}
			res, ok := r.thumbs[digest]
			if !ok {
				res = buildThumb(e)
				r.thumbs[digest] = res
			}
			v.thumb, v.caption, v.broken = res.lines, res.caption, res.broken
		} else {
			text := sanitize(e.Data)
			v.lines = strings.Split(text, "\n")
			if r.highlight && len(text) <= highlightLimit {
				v.code, v.language = highlightCode(text, r.chromaStyle)
			}
		}
		views = append(views, v)
	}
	for digest := range r.thumbs {
		if _, ok := live[digest]; !ok {
			delete(r.thumbs, digest)
		}
	}
	return views
}

// buildThumb reads the image header for the caption before decoding pixels.
// An image whose header is valid but whose pixels are not keeps its caption
// and draws no thumbnail.
func buildThumb(e clip.Entry) thumbResult {
	info, err := e.Inspect()
	if err != nil {
		logging.Logger().Debug().Err(err).Int("payload", len(e.Data)).Msg("image unavailable")
		return thumbResult{caption: "image unavailable", broken: true}
	}
	img, _, err := e.DecodeImage()
	if err != nil {
		logging.Logger().Debug().Err(err).Str("image", info.String()).Msg("image pixels unavailable")
		return thumbResult{caption: info.String()}
	}
	return thumbResult{
		lines:   thumbnail(img, thumbCols, thumbRows),
		caption: info.String(),
	}
}
