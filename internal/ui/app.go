package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clipdeck/internal/clip"
	"github.com/five82/clipdeck/internal/logging"
	"github.com/five82/clipdeck/internal/prefs"
	"github.com/five82/clipdeck/internal/state"
)

// Commands are the entry and backend actions the UI can run. Each returns
// the confirmation to show, or an error.
type Commands interface {
	Copy(ctx context.Context, entry clip.Entry) (string, error)
	Delete(ctx context.Context, entry clip.Entry) (string, error)
	ToggleVisibility(ctx context.Context) (string, error)
	Refresh()
}

// Searcher runs filter requests. Begin must be called in keystroke order;
// the returned function performs the request and may block.
type Searcher interface {
	Begin(query string) (uint64, func() error)
}

// Options configures the UI.
type Options struct {
	Context       context.Context
	Store         *state.Store
	Renderer      *Renderer
	Commands      Commands
	Search        Searcher
	ThemeName     string // auto, dark or light
	PrefsPath     string
	LogPath       string
	ToastDuration time.Duration
	PollTick      time.Duration
	APIBind       string
	Demo          bool

	// hasDark overrides terminal background detection in tests.
	hasDark func() bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	store         *state.Store
	renderer      *Renderer
	commands      Commands
	search        Searcher
	prefsPath     string
	logPath       string
	toastDuration time.Duration
	pollTick      time.Duration
	apiBind       string
	demo          bool

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot  state.Snapshot
	rows      []entryView
	renderGen uint64
	rendered  bool

	// List state
	selected int
	offset   int

	// Filter state
	filter    textinput.Model
	filtering bool
	query     string
	searchID  uint64
	searching bool
	spinner   spinner.Model

	// Toast
	toast toast

	// Overlays
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	toastDuration := opts.ToastDuration
	if toastDuration <= 0 {
		toastDuration = DefaultToastDuration
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	hasDark := opts.hasDark
	if hasDark == nil {
		hasDark = lipgloss.HasDarkBackground
	}
	theme := GetTheme(prefs.ResolveTheme(opts.ThemeName, hasDark))

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter entries"
	filter.CharLimit = 256

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:           ctx,
		store:         opts.Store,
		renderer:      opts.Renderer,
		commands:      opts.Commands,
		search:        opts.Search,
		prefsPath:     prefsPath,
		logPath:       opts.LogPath,
		toastDuration: toastDuration,
		pollTick:      pollTick,
		apiBind:       opts.APIBind,
		demo:          opts.Demo,
		keys:          DefaultKeyMap(),
		theme:         theme,
		filter:        filter,
		spinner:       spin,
		logViewport:   viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.filter.Width = maxInt(10, m.width-6)
		m.resizeLogViewport()
		m.ensureVisible()
		return m, nil

	case renderMsg:
		if msg.gen < m.renderGen {
			return m, nil
		}
		m.renderGen = msg.gen
		m.rows = msg.views
		m.rendered = true
		m.selected = clamp(m.selected, 0, len(m.rows)-1)
		m.ensureVisible()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case searchDoneMsg:
		if msg.id == m.searchID {
			m.searching = false
			if msg.err != nil {
				return m, m.setToast("Search failed: "+msg.err.Error(), toastError)
			}
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			return m, m.setToast(msg.failure+": "+msg.err.Error(), toastError)
		}
		if msg.message == "" {
			return m, nil
		}
		return m, m.setToast(msg.message, toastSuccess)

	case toastExpireMsg:
		if msg.id == m.toast.id {
			m.toast = toast{id: m.toast.id}
		}
		return m, nil

	case logLinesMsg:
		m.setLogContent(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.query == "" {
			return m, nil
		}
		m.filter.SetValue("")
		return m, m.issueSearch("")

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		m.resizeLogViewport()
		return m, readLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Refresh):
		if m.commands != nil {
			m.commands.Refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleVisibility):
		return m, m.toggleVisibilityCmd()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd()

	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteCmd()
	}

	m.handleNavKey(msg)
	return m, nil
}

// handleFilterKey routes keys while the filter input has focus. Every edit
// issues a search.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		if m.query == "" {
			return m, nil
		}
		return m, m.issueSearch("")
	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown, msg.Type == tea.KeyCtrlU,
		msg.Type == tea.KeyCtrlD, msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		m.handleNavKey(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if strings.TrimSpace(m.filter.Value()) == m.query {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.issueSearch(m.filter.Value()))
}

// handleNavKey moves the selection.
func (m *Model) handleNavKey(msg tea.KeyMsg) {
	count := len(m.rows)
	if count == 0 {
		return
	}
	half := maxInt(1, m.listHeight()/6)
	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected++
	case key.Matches(msg, m.keys.Up):
		m.selected--
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		m.selected += half
	case key.Matches(msg, m.keys.HalfPageUp):
		m.selected -= half
	default:
		return
	}
	m.selected = clamp(m.selected, 0, count-1)
	m.ensureVisible()
}

// issueSearch registers query synchronously so ids follow keystroke order,
// then runs it off the loop.
// A blank query clears the filter.
func (m *Model) issueSearch(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	m.query = query
	if m.search == nil {
		return nil
	}
	id, run := m.search.Begin(query)
	m.searchID = id
	if query == "" {
		m.searching = false
		return func() tea.Msg { return searchDoneMsg{id: id, err: run()} }
	}
	cmd := func() tea.Msg { return searchDoneMsg{id: id, err: run()} }
	if m.searching {
		return cmd
	}
	m.searching = true
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) selectedEntry() (clip.Entry, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return clip.Entry{}, false
	}
	return m.rows[m.selected].entry, true
}

func (m Model) copyCmd() tea.Cmd {
	entry, ok := m.selectedEntry()
	if !ok || m.commands == nil {
		return nil
	}
	ctx, commands := m.ctx, m.commands
	return func() tea.Msg {
		msg, err := commands.Copy(ctx, entry)
		return actionDoneMsg{message: msg, err: err, failure: "Copy failed"}
	}
}

func (m Model) deleteCmd() tea.Cmd {
	entry, ok := m.selectedEntry()
	if !ok || m.commands == nil {
		return nil
	}
	ctx, commands := m.ctx, m.commands
	return func() tea.Msg {
		msg, err := commands.Delete(ctx, entry)
		return actionDoneMsg{message: msg, err: err, failure: "Delete failed"}
	}
}

func (m Model) toggleVisibilityCmd() tea.Cmd {
	if m.commands == nil {
		return nil
	}
	ctx, commands := m.ctx, m.commands
	return func() tea.Msg {
		_, err := commands.ToggleVisibility(ctx)
		return actionDoneMsg{err: err, failure: "Toggle failed"}
	}
}

// toggleTheme flips between dark and light, saves the choice and rebuilds
// rows whose colours depend on it.
func (m *Model) toggleTheme() tea.Cmd {
	m.theme = GetTheme(prefs.Toggle(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			logging.Warn("save prefs: %v", err)
		}
	}
	if m.renderer == nil {
		return nil
	}
	return m.renderer.SetChromaStyle(m.theme.ChromaStyle)
}

// handleTick processes the status refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.showLogs {
		cmds = append(cmds, readLogsCmd(m.logPath))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	var filterLine string
	if m.filtering || m.query != "" {
		filterLine = m.renderFilter()
	}

	used := lipgloss.Height(header) + lipgloss.Height(footer)
	if filterLine != "" {
		used += lipgloss.Height(filterLine)
	}
	body := m.renderList(maxInt(1, m.height-used))

	parts := []string{header}
	if filterLine != "" {
		parts = append(parts, filterLine)
	}
	parts = append(parts, body, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type searchDoneMsg struct {
	id  uint64
	err error
}

type actionDoneMsg struct {
	message string
	err     error
	failure string
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// NewProgram builds the Bubble Tea program. The caller attaches the
// renderer to the program's Send before running it.
func NewProgram(opts Options) *tea.Program {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
