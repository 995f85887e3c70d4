package pasteboard

import "sync"

// Memory records writes instead of touching the system clipboard. It is used
// by tests and demo mode.
type Memory struct {
	mu     sync.Mutex
	text   string
	image  []byte
	writes int
	err    error
}

var _ Pasteboard = (*Memory)(nil)

// WriteText records text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if text == "" {
		return ErrEmpty
	}
	m.text = text
	m.image = nil
	m.writes++
	return nil
}

// WriteImage records a copy of data.
func (m *Memory) WriteImage(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if len(data) == 0 {
		return ErrEmpty
	}
	m.image = append([]byte(nil), data...)
	m.text = ""
	m.writes++
	return nil
}

// FailWith makes every subsequent write return err. A nil err clears it.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Text returns the last text written.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Image returns the last image written.
func (m *Memory) Image() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.image...)
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
