package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/five82/clipdeck/internal/backend"
	"github.com/five82/clipdeck/internal/backend/membackend"
	"github.com/five82/clipdeck/internal/config"
	"github.com/five82/clipdeck/internal/logging"
	"github.com/five82/clipdeck/internal/pasteboard"
	"github.com/five82/clipdeck/internal/prefs"
	"github.com/five82/clipdeck/internal/reconcile"
	"github.com/five82/clipdeck/internal/state"
	"github.com/five82/clipdeck/internal/ui"
)

// Options configure the clipdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/clipdeck/prefs.toml
	PollEvery  time.Duration // zero uses the configured interval
	LogLevel   string        // overrides log_level when set
	Demo       bool          // use a seeded in-memory backend
}

// Run boots the clipdeck TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := logging.Init(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	var (
		b  backend.Backend
		pb pasteboard.Pasteboard
	)
	if opts.Demo {
		b = membackend.New(demoEntries()...)
		pb = &pasteboard.Memory{}
	} else {
		client, err := backend.NewClient(cfg.APIBind)
		if err != nil {
			return fmt.Errorf("init backend client: %w", err)
		}
		logging.Debug("backend at %s", client.BaseURL())
		b = client
		pb = pasteboard.NewSystem()
	}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = opts.PollEvery
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	themeName := prefs.ResolveTheme(userPrefs.Theme, lipgloss.HasDarkBackground)

	store := &state.Store{}
	renderer := ui.NewRenderer(ui.RendererOptions{
		SyntaxHighlight: cfg.SyntaxHighlight,
		ChromaStyle:     ui.GetTheme(themeName).ChromaStyle,
	})
	engine := reconcile.NewEngine(store, renderer)
	poller := NewPoller(b, engine, interval)
	search := NewSearch(ctx, b, engine)
	actions := NewActions(b, pb, poller)

	logging.Logger().Info().
		Str("api_bind", cfg.APIBind).
		Bool("demo", opts.Demo).
		Str("theme", themeName).
		Dur("poll_interval", poller.Interval()).
		Msg("clipdeck starting")

	program := ui.NewProgram(ui.Options{
		Context:       ctx,
		Store:         store,
		Renderer:      renderer,
		Commands:      actions,
		Search:        search,
		ThemeName:     themeName,
		PrefsPath:     opts.PrefsPath,
		LogPath:       cfg.LogFile,
		ToastDuration: cfg.ToastDuration,
		APIBind:       cfg.APIBind,
		Demo:          opts.Demo,
	})
	renderer.Attach(program.Send)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		poller.Run(gctx)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	})

	err = g.Wait()
	poller.Stop()
	search.Stop()
	renderer.Detach()
	logging.Info("clipdeck stopped")
	return err
}
