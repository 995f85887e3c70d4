package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const (
	gutterNew    = "▌"
	gutterPlain  = "│"
	gutterCursor = "›"
	// rowIndent is the width of the gutter and cursor columns.
	rowIndent = 3
)

// renderList draws the visible rows into height lines.
func (m Model) renderList(height int) string {
	styles := m.theme.Styles()

	if len(m.rows) == 0 {
		return lipgloss.NewStyle().Height(height).Render(m.emptyLine(styles))
	}

	var lines []string
	for i := m.offset; i < len(m.rows) && len(lines) < height; i++ {
		lines = append(lines, m.renderRow(i, styles)...)
		if i < len(m.rows)-1 {
			lines = append(lines, "")
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(lines, "\n"))
}

// emptyLine explains an empty list. An empty backend never produces a render
// because an empty poll matches the empty baseline, so a successful poll
// counts as loaded too.
func (m Model) emptyLine(styles Styles) string {
	loaded := m.rendered || (!m.snapshot.LastUpdated.IsZero() && m.snapshot.LastError == nil)
	switch {
	case !loaded:
		return styles.MutedText.Render("  Waiting for clipboard history...")
	case m.query != "":
		return styles.MutedText.Render("  No entries match ") + styles.AccentText.Render(truncate(m.query, 40))
	default:
		return styles.MutedText.Render("  Clipboard history is empty")
	}
}

// renderRow returns the lines for row i: a title line followed by the
// preview.
func (m Model) renderRow(i int, styles Styles) []string {
	v := m.rows[i]
	selected := i == m.selected

	gutter := styles.Gutter.Render(gutterPlain)
	if v.isNew {
		gutter = styles.NewGutter.Render(gutterNew)
	}
	cursor := " "
	if selected {
		cursor = styles.AccentText.Bold(true).Render(gutterCursor)
	}
	prefix := gutter + cursor + " "
	blank := gutter + "  "

	body := m.rowBody(v, styles)
	out := make([]string, 0, len(body)+1)
	out = append(out, prefix+m.rowTitle(v, selected, styles))
	for _, line := range body {
		out = append(out, blank+line)
	}
	return out
}

// rowTitle builds the badges line: kind, NEW and a detail such as the
// language or image size.
func (m Model) rowTitle(v entryView, selected bool, styles Styles) string {
	parts := []string{styles.KindStyle(v.kind).Render(v.kind)}
	if v.isNew {
		parts = append(parts, styles.NewBadge.Render("NEW"))
	}
	switch {
	case v.caption != "" && v.broken:
		parts = append(parts, styles.DangerText.Render(v.caption))
	case v.caption != "":
		parts = append(parts, styles.MutedText.Render(v.caption))
	case v.language != "" && m.query == "":
		parts = append(parts, styles.FaintText.Render(v.language))
	}
	if n := len(v.lines); n > maxPreviewLines {
		parts = append(parts, styles.FaintText.Render(plural(n, "line", "lines")))
	}
	title := strings.Join(parts, " ")
	if selected {
		return styles.Selected.Render(" ") + title
	}
	return title
}

// rowBody returns the preview lines of a row, already styled and cut to the
// content width.
func (m Model) rowBody(v entryView, styles Styles) []string {
	width := m.contentWidth()

	if v.thumb != nil {
		if m.width < LayoutThumbWidth {
			return nil
		}
		return v.thumb
	}
	if v.broken {
		return nil
	}

	if v.code != nil && m.query == "" {
		return cutLines(v.code, width, maxPreviewLines)
	}

	var out []string
	for _, line := range v.lines {
		for _, wrapped := range strings.Split(wordwrap.String(line, width), "\n") {
			out = append(out, wrapped)
			if len(out) == maxPreviewLines {
				break
			}
		}
		if len(out) == maxPreviewLines {
			break
		}
	}
	for i, line := range out {
		line = ansi.Truncate(line, width, "…")
		if m.query != "" {
			out[i] = highlightMatches(line, m.query, styles.Text, styles.Match)
		} else {
			out[i] = styles.Text.Render(line)
		}
	}
	if len(v.lines) > maxPreviewLines && len(out) == maxPreviewLines {
		out = append(out, styles.FaintText.Render("…"))
	}
	return out
}

// cutLines keeps at most limit lines, each truncated to width.
func cutLines(lines []string, width, limit int) []string {
	n := len(lines)
	if n > limit {
		n = limit
	}
	out := make([]string, 0, n)
	for _, line := range lines[:n] {
		out = append(out, ansi.Truncate(line, width, "…"))
	}
	return out
}

func (m Model) contentWidth() int {
	return maxInt(8, m.width-rowIndent-1)
}

// listHeight is the number of lines available for rows.
func (m Model) listHeight() int {
	used := 2 // header and footer
	if m.filtering || m.query != "" {
		used++
	}
	return maxInt(1, m.height-used)
}

// rowHeight is the number of lines row i occupies including its spacer.
func (m Model) rowHeight(i int) int {
	h := 1 + len(m.rowBody(m.rows[i], m.theme.Styles()))
	if i < len(m.rows)-1 {
		h++
	}
	return h
}

// ensureVisible scrolls so the selected row is fully on screen.
func (m *Model) ensureVisible() {
	if len(m.rows) == 0 {
		m.selected, m.offset = 0, 0
		return
	}
	m.offset = clamp(m.offset, 0, len(m.rows)-1)
	if m.selected < m.offset {
		m.offset = m.selected
		return
	}
	if m.width == 0 {
		return
	}
	height := m.listHeight()
	for m.offset < m.selected {
		used := 0
		for i := m.offset; i <= m.selected; i++ {
			used += m.rowHeight(i)
		}
		if used <= height {
			break
		}
		m.offset++
	}
}
