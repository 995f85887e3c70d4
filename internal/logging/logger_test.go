package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetOutput_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "warn")
	t.Cleanup(Discard)

	Info("hidden %d", 1)
	Warn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("warn message missing: %q", out)
	}
}

func TestDiscard_IsSilent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "debug")
	Discard()
	Error("nope")
	if buf.Len() != 0 {
		t.Fatalf("Discard still wrote %q", buf.String())
	}
}

func TestInit_WritesToFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := Init(Options{File: "~/logs/clipdeck.log", Level: "debug"}); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	Debug("hello %s", "file")
	if err := Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "logs", "clipdeck.log"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log file = %q, want it to contain message", data)
	}
}

func TestInit_EmptyPathFails(t *testing.T) {
	if err := Init(Options{File: "  "}); err == nil {
		t.Fatal("Init returned nil error for empty path")
	}
}

func TestInit_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(func() { _ = Close() })

	if err := Init(Options{File: "~/state/clipdeck.log", Level: "info"}); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	Info("hello")
	if err := Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "state", "clipdeck.log")); err != nil {
		t.Fatalf("log file not created under home: %v", err)
	}
}
