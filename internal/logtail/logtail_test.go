package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "zero reads nothing",
			maxLines: 0,
			expected: nil,
		},
		{
			name:     "negative reads nothing",
			maxLines: -1,
			expected: nil,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestHumanize(t *testing.T) {
	lines := []string{
		`{"level":"warn","time":"2024-10-10T14:32:15Z","message":"poll failed"}`,
		`{"level":"debug","mode":"baseline","entries":3,"message":"render"}`,
		"",
		"plain text line",
		`{broken`,
	}
	got := Humanize(lines)
	if len(got) != 4 {
		t.Fatalf("Humanize returned %d lines, want 4: %#v", len(got), got)
	}

	if got[0].Level != LevelWarn || !strings.Contains(got[0].Text, "WRN") || !strings.Contains(got[0].Text, "poll failed") {
		t.Errorf("line 0 = %#v, want WRN poll failed", got[0])
	}
	if !strings.Contains(got[1].Text, "entries=3") || !strings.Contains(got[1].Text, "mode=baseline") {
		t.Errorf("line 1 = %q, want fields rendered", got[1].Text)
	}
	if got[2].Text != "plain text line" || got[2].Level != LevelNone {
		t.Errorf("line 2 = %#v, want passthrough", got[2])
	}
	if got[3].Text != "{broken" || got[3].Level != LevelNone {
		t.Errorf("line 3 = %#v, want passthrough", got[3])
	}
}
