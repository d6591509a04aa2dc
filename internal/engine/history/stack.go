package history

import (
	"errors"
	"time"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNoChangesToUndo = errors.New("no changes to undo")
	ErrNoChangesToRedo = errors.New("no changes to redo")
)

// Stack is a LIFO of change sets with an optional depth limit.
type Stack struct {
	entries    []*ChangeSet
	maxEntries int
}

// NewStack creates a stack keeping at most maxEntries change sets.
// Zero or less means unbounded.
func NewStack(maxEntries int) *Stack {
	return &Stack{maxEntries: maxEntries}
}

// Push adds cs on top, dropping the oldest entry beyond the limit.
func (s *Stack) Push(cs *ChangeSet) {
	s.entries = append(s.entries, cs)
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		excess := len(s.entries) - s.maxEntries
		s.entries = s.entries[excess:]
	}
}

// Pop removes and returns the top change set.
func (s *Stack) Pop() (*ChangeSet, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	cs := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return cs, true
}

// Peek returns the top change set without removing it.
func (s *Stack) Peek() (*ChangeSet, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of change sets.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes every change set.
func (s *Stack) Clear() {
	s.entries = nil
}

// Info provides read-only info about a change set.
// Used for displaying undo/redo history to users.
type Info struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the change set was recorded
	Delta       int       // Positive for insertions, negative for deletions
}

func infoOf(cs *ChangeSet) Info {
	return Info{Description: cs.Description(), Timestamp: cs.Timestamp, Delta: cs.Delta()}
}

// History manages undo/redo state for a buffer.
// History is owned by a single editor and is not safe for concurrent use.
type History struct {
	undo *Stack
	redo *Stack
}

// New creates a history keeping at most maxEntries undo entries.
// Zero or less means unbounded.
func New(maxEntries int) *History {
	return &History{
		undo: NewStack(maxEntries),
		redo: NewStack(0),
	}
}

// Record pushes a completed change set and clears the redo stack.
func (h *History) Record(cs *ChangeSet) {
	h.undo.Push(cs)
	h.redo.Clear()
}

// Undo reverts the last change set on buf and moves it to the redo stack.
// The caller restores cs.SelectionsBefore.
func (h *History) Undo(buf *buffer.Buffer) (*ChangeSet, error) {
	cs, ok := h.undo.Pop()
	if !ok {
		return nil, ErrNoChangesToUndo
	}
	if err := cs.undo(buf); err != nil {
		// Restore entry on failure
		h.undo.Push(cs)
		return nil, err
	}
	h.redo.Push(cs)
	return cs, nil
}

// Redo reapplies the last undone change set on buf and moves it back to the
// undo stack. The caller restores cs.SelectionsAfter.
func (h *History) Redo(buf *buffer.Buffer) (*ChangeSet, error) {
	cs, ok := h.redo.Pop()
	if !ok {
		return nil, ErrNoChangesToRedo
	}
	if err := cs.redo(buf); err != nil {
		// Restore entry on failure
		h.redo.Push(cs)
		return nil, err
	}
	h.undo.Push(cs)
	return cs, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return h.undo.Len() > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return h.redo.Len() > 0
}

// UndoCount returns the number of undo entries available.
func (h *History) UndoCount() int {
	return h.undo.Len()
}

// RedoCount returns the number of redo entries available.
func (h *History) RedoCount() int {
	return h.redo.Len()
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
}

// PeekUndo returns info about the next undo entry without removing it.
func (h *History) PeekUndo() (Info, bool) {
	cs, ok := h.undo.Peek()
	if !ok {
		return Info{}, false
	}
	return infoOf(cs), true
}

// PeekRedo returns info about the next redo entry without removing it.
func (h *History) PeekRedo() (Info, bool) {
	cs, ok := h.redo.Peek()
	if !ok {
		return Info{}, false
	}
	return infoOf(cs), true
}
