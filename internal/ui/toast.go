package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// toast is a short confirmation shown in the footer. id increases with
// every toast so an expiry only clears the toast it was scheduled for.
type toast struct {
	id   uint64
	text string
	kind toastKind
}

type toastExpireMsg struct {
	id uint64
}

// setToast shows text and schedules its removal.
func (m *Model) setToast(text string, kind toastKind) tea.Cmd {
	m.toast = toast{id: m.toast.id + 1, text: text, kind: kind}
	id := m.toast.id
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}
