package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"golang.org/x/term"

	"github.com/five82/clipdeck/internal/app"
)

type args struct {
	Config   string        `arg:"--config" help:"config file path (default ~/.config/clipdeck/config.toml)"`
	Prefs    string        `arg:"--prefs" help:"preferences file path (default ~/.config/clipdeck/prefs.toml)"`
	Poll     time.Duration `arg:"--poll" help:"refresh interval, e.g. 500ms or 2s (defaults to poll_interval)"`
	LogLevel string        `arg:"--log-level" help:"debug, info, warn or error"`
	Demo     bool          `arg:"--demo" help:"run against a seeded in-memory clipboard"`
}

func (args) Description() string {
	return "clipdeck browses clipboard manager history in the terminal"
}

func (args) Version() string {
	return "clipdeck 0.1.0"
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	arg.MustParse(&a)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "clipdeck: stdout is not a terminal")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: a.Config,
		PrefsPath:  a.Prefs,
		LogLevel:   a.LogLevel,
		Demo:       a.Demo,
	}
	if a.Poll > 0 {
		opts.PollEvery = a.Poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "clipdeck: %v\n", err)
		return 1
	}
	return 0
}
