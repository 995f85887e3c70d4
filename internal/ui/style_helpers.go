package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders the pieces of a surface bar (status bar, key hints, log
// header) so the bar colour runs unbroken behind every segment. A plain
// lipgloss render resets the background after each styled piece, leaving
// gaps at the spaces between them.
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle returns a helper for bars painted with bgColor.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render applies style on the bar colour. Words are rendered one at a time
// and joined with painted spaces.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space is one painted space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces is n painted spaces.
func (b BgStyle) Spaces(n int) string {
	return strings.Repeat(b.space, n)
}

// Sep paints a separator such as ":" between a key and its label.
func (b BgStyle) Sep(sep string) string {
	return lipgloss.NewStyle().Background(b.bg).Render(sep)
}

// Join places a painted separator between status segments.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}
