// Package logging configures clipdeck's file logger.
//
// The terminal belongs to the UI, so log output only ever goes to a rotating
// file. Until Init is called every helper is a no-op.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/five82/clipdeck/internal/config"
)

// Options controls the log destination and rotation.
type Options struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

var (
	mu           sync.RWMutex
	globalLogger = zerolog.Nop()
	closer       io.Closer
)

// Init sets up the global logger writing to opts.File with rotation.
func Init(opts Options) error {
	path, err := config.ExpandPath(opts.File)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    orDefault(opts.MaxSizeMB, 5),
		MaxAge:     orDefault(opts.MaxAgeDays, 14),
		MaxBackups: orDefault(opts.MaxBackups, 3),
		LocalTime:  true,
		Compress:   true,
	}

	logger := zerolog.New(writer).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	globalLogger = logger
	closer = writer
	return nil
}

// SetOutput points the global logger at w. Tests use it to capture output.
func SetOutput(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Discard silences the global logger.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = zerolog.Nop()
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = zerolog.Nop()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns the configured logger for structured fields.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := globalLogger
	return &l
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	Logger().Debug().Msgf(format, args...)
}

// Info logs an info message
func Info(format string, args ...any) {
	Logger().Info().Msgf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	Logger().Warn().Msgf(format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	Logger().Error().Msgf(format, args...)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
