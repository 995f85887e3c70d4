package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFitThumb(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"fits", 10, 6, 32, 12, 10, 6},
		{"wide", 640, 100, 32, 12, 32, 5},
		{"tall", 100, 400, 32, 12, 3, 12},
		{"thin line", 1000, 1, 32, 12, 32, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitThumb(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestThumbnailRowsAndWidth(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	lines := thumbnail(img, 32, 6)
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 4, ansi.StringWidth(line))
	}

	assert.Nil(t, thumbnail(nil, 32, 6))
	assert.Nil(t, thumbnail(img, 0, 6))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a    b", sanitize("a\tb"))
	assert.Equal(t, "one\ntwo", sanitize("one\r\ntwo"))
	assert.Equal(t, "bell", sanitize("be\x07ll"))
	assert.Equal(t, "title", sanitize("\x1b]0;evil\x07title"))
	assert.Equal(t, "héllo ✓", sanitize("héllo ✓"))
}

func TestHighlightMatchesKeepsText(t *testing.T) {
	plain := lipgloss.NewStyle()
	match := lipgloss.NewStyle().Bold(true)

	for _, tc := range []struct{ line, query string }{
		{"hello world", "hw"},
		{"naïve café", "cf"},
		{"no match here", "zzz"},
		{"", "a"},
		{"anything", ""},
	} {
		got := highlightMatches(tc.line, tc.query, plain, match)
		assert.Equal(t, tc.line, ansi.Strip(got), "line %q query %q", tc.line, tc.query)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel...", truncate("hello world", 6))
	assert.Equal(t, "he", truncate("hello", 2))
	assert.Equal(t, "trimmed", truncate("  trimmed  ", 0))
}

func TestTruncateMiddle(t *testing.T) {
	assert.Equal(t, "short", truncateMiddle("short", 10))
	got := truncateMiddle("/home/user/.local/state/clipdeck/clipdeck.log", 20)
	assert.Len(t, got, 20)
	assert.Contains(t, got, "...")
	assert.Equal(t, "", truncateMiddle("x", 0))
}

func TestPluralAndClamp(t *testing.T) {
	assert.Equal(t, "1 line", plural(1, "line", "lines"))
	assert.Equal(t, "0 lines", plural(0, "line", "lines"))
	assert.Equal(t, "7 lines", plural(7, "line", "lines"))

	assert.Equal(t, 0, clamp(-3, 0, 5))
	assert.Equal(t, 5, clamp(9, 0, 5))
	assert.Equal(t, 0, clamp(3, 0, -1))
}

func TestClassifyConnectionError(t *testing.T) {
	assert.Equal(t, "ERROR", classifyConnectionError(errString("boom")))
	assert.Equal(t, "OFFLINE", classifyConnectionError(errString("dial tcp: connection refused")))
	assert.Equal(t, "TIMEOUT", classifyConnectionError(errString("context deadline exceeded")))
}

type errString string

func (e errString) Error() string { return string(e) }

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "dark", GetTheme("dark").Name)
	assert.Equal(t, "light", GetTheme("light").Name)
	assert.Equal(t, "dark", GetTheme("bogus").Name)
	assert.NotEqual(t, GetTheme("dark").ChromaStyle, GetTheme("light").ChromaStyle)
}

func TestBgStyleKeepsText(t *testing.T) {
	bg := NewBgStyle("#192330")
	style := lipgloss.NewStyle().Bold(true)

	assert.Equal(t, "", bg.Render("", style))
	assert.Equal(t, "Retrying now", ansi.Strip(bg.Render("Retrying now", style)))
	assert.Equal(t, "a  b", ansi.Strip(bg.Render("a  b", style)))
	assert.Equal(t, "   ", ansi.Strip(bg.Spaces(3)))
	assert.Equal(t, "on:off", ansi.Strip(bg.Join([]string{"on", "off"}, ":")))
}
