package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clipdeck/internal/logtail"
)

// logLinesMsg carries the humanized tail of the log file.
type logLinesMsg struct {
	lines []logtail.Line
	err   error
}

// readLogsCmd reads the log tail off the program loop.
func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		raw, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logLinesMsg{err: err}
		}
		return logLinesMsg{lines: logtail.Humanize(raw)}
	}
}

// resizeLogViewport fits the viewport inside the overlay box.
func (m *Model) resizeLogViewport() {
	m.logViewport.Width = maxInt(10, m.width-4)
	m.logViewport.Height = maxInt(1, m.height-4)
}

// setLogContent renders the lines with level colours and keeps the view
// pinned to the bottom if it already was.
func (m *Model) setLogContent(msg logLinesMsg) {
	styles := m.theme.Styles()
	follow := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0

	var content string
	switch {
	case msg.err != nil:
		content = styles.DangerText.Render("Unable to read log: " + msg.err.Error())
	case m.logPath == "":
		content = styles.MutedText.Render("Logging to a file is disabled.")
	case len(msg.lines) == 0:
		content = styles.MutedText.Render("Log is empty.")
	default:
		rendered := make([]string, 0, len(msg.lines))
		for _, line := range msg.lines {
			rendered = append(rendered, logLineStyle(line.Level, styles).Render(line.Text))
		}
		content = strings.Join(rendered, "\n")
	}

	m.logViewport.SetContent(content)
	if follow {
		m.logViewport.GotoBottom()
	}
}

func logLineStyle(level logtail.Level, styles Styles) lipgloss.Style {
	switch level {
	case logtail.LevelError:
		return styles.DangerText
	case logtail.LevelWarn:
		return styles.WarningText
	case logtail.LevelDebug:
		return styles.FaintText
	default:
		return styles.Text
	}
}

// handleLogsKey handles keys while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "L":
		m.showLogs = false
		return m, nil
	case "g", "home":
		m.logViewport.GotoTop()
		return m, nil
	case "G", "end":
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := "Log"
	if m.logPath != "" {
		title += " " + truncateMiddle(m.logPath, maxInt(10, m.width-20))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(0, 1).
		Width(maxInt(10, m.width-2)).
		Render(m.logViewport.View())

	header := styles.Header.Width(m.width).Render(bg.Render(title, styles.AccentText.Bold(true)))
	percent := int(m.logViewport.ScrollPercent() * 100)
	status := styles.Footer.Width(m.width).Render(
		bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Close", styles.MutedText) + bg.Spaces(2) +
			bg.Render("j/k", styles.AccentText) + bg.Sep(":") + bg.Render("Scroll", styles.MutedText) + bg.Spaces(2) +
			bg.Render(plural(m.logViewport.TotalLineCount(), "line", "lines"), styles.FaintText) + bg.Spaces(2) +
			bg.Render(fmt.Sprintf("%d%%", percent), styles.FaintText))

	return lipgloss.JoinVertical(lipgloss.Left, header, box, status)
}
