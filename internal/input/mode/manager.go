package mode

import (
	"errors"
	"slices"
)

// ErrNoModeToPop is returned when popping the base Insert mode.
var ErrNoModeToPop = errors.New("no mode to pop")

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Manager manages the mode stack and coordinates mode transitions.
// The base of the stack is always Insert.
type Manager struct {
	// stack holds the active modes; the last one is current.
	stack []Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// NewManager creates a manager in Insert mode.
func NewManager() *Manager {
	return &Manager{stack: append(make([]Mode, 0, 4), New(Insert))}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.stack[len(m.stack)-1]
}

// Push makes next the current mode. A message mode pushed over another
// message mode replaces it.
func (m *Manager) Push(next Mode) {
	from := m.Current()
	if next.Kind.IsMessage() && from.Kind.IsMessage() {
		m.stack[len(m.stack)-1] = next
	} else {
		m.stack = append(m.stack, next)
	}
	m.notify(from, next)
}

// Pop restores the mode below the current one.
func (m *Manager) Pop() error {
	if len(m.stack) == 1 {
		return ErrNoModeToPop
	}
	from := m.Current()
	m.stack = m.stack[:len(m.stack)-1]
	m.notify(from, m.Current())
	return nil
}

// Reset returns to Insert mode, discarding the whole stack.
func (m *Manager) Reset() {
	if len(m.stack) == 1 {
		return
	}
	from := m.Current()
	m.stack = m.stack[:1]
	m.notify(from, m.Current())
}

// StackDepth returns the number of modes above Insert.
func (m *Manager) StackDepth() int {
	return len(m.stack) - 1
}

// IsMode returns true if the current mode is any of kinds.
func (m *Manager) IsMode(kinds ...Kind) bool {
	return slices.Contains(kinds, m.Current().Kind)
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

func (m *Manager) notify(from, to Mode) {
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}
