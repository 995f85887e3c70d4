package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: entry counts, filter state and
// backend health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("clipdeck", styles.Logo)}
	if m.demo {
		parts = append(parts, bg.Render("DEMO", styles.WarningText.Bold(true)))
	}

	switch {
	case m.snapshot.IsOffline():
		parts = append(parts,
			bg.Render("● "+classifyConnectionError(m.snapshot.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(truncateMiddle(m.apiBind, 30), styles.MutedText),
		)
	case m.snapshot.LastError != nil:
		parts = append(parts, bg.Render("● SLOW", styles.WarningText))
	case !m.snapshot.LastUpdated.IsZero():
		parts = append(parts, bg.Render("● ON", styles.SuccessText))
	default:
		parts = append(parts, bg.Render("Connecting...", styles.WarningText.Bold(true)))
	}

	if m.query != "" {
		label := bg.Render("Matches:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d", len(m.rows)), styles.Text)
		if m.searching {
			label += bg.Space() + bg.Render(m.spinner.View(), styles.AccentText)
		}
		parts = append(parts, label)
	} else {
		parts = append(parts,
			bg.Render("Entries:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.rows)), styles.Text))
	}

	if n := m.newCount(); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d new", n), styles.SuccessText))
	}

	if ts := m.formatTimestamp(); ts != "" && m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		MaxHeight(1).
		Render(bg.Join(parts, "  "))
}

// renderFooter shows the active toast, or key hints when there is none.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if m.toast.text != "" {
		style := styles.SuccessText
		if m.toast.kind == toastError {
			style = styles.DangerText
		}
		return styles.Footer.Width(m.width).MaxHeight(1).Render(bg.Render(m.toast.text, style))
	}

	bindings := m.keys.ShortHelp()
	if m.width < LayoutCompactWidth {
		bindings = []key.Binding{m.keys.Filter, m.keys.Help}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).MaxHeight(1).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderFilter renders the filter input, or the applied query once the
// input has been confirmed.
func (m Model) renderFilter() string {
	styles := m.theme.Styles()
	if m.filtering {
		return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(m.filter.View())
	}
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(
		styles.AccentText.Render("/ "+truncate(m.query, maxInt(8, m.width-20))) + styles.FaintText.Render("  esc to clear"))
}

func (m Model) newCount() int {
	n := 0
	for _, v := range m.rows {
		if v.isNew {
			n++
		}
	}
	return n
}

func (m Model) formatTimestamp() string {
	last := m.snapshot.LastUpdated
	if last.IsZero() {
		return ""
	}

	timeSince := time.Since(last)
	timeStr := last.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError maps a poll error to a short status label.
func classifyConnectionError(err error) string {
	if err == nil {
		return "OFFLINE"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 5 {
		return s[:max]
	}
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return s[:startLen] + "..." + s[len(s)-endLen:]
}
