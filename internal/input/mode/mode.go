package mode

import (
	"fmt"
	"strings"
)

// Kind identifies an editor mode.
type Kind uint8

const (
	// Insert is the base mode: typing inserts text.
	Insert Kind = iota

	// View scrolls the view independently of the selections.
	View

	// Goto reads a line number.
	Goto

	// Find reads a search pattern.
	Find

	// Split reads a pattern to split selections on.
	Split

	// Command reads a command line.
	Command

	// AddSurround waits for the pair to wrap selections in.
	AddSurround

	// Object waits for a text object to select.
	Object

	// Error shows an error message.
	Error

	// Warning shows a warning message.
	Warning

	// Notify shows a notification.
	Notify

	// Info shows an informational message.
	Info
)

var kindNames = [...]string{
	Insert:      "insert",
	View:        "view",
	Goto:        "goto",
	Find:        "find",
	Split:       "split",
	Command:     "command",
	AddSurround: "add_surround",
	Object:      "object",
	Error:       "error",
	Warning:     "warning",
	Notify:      "notify",
	Info:        "info",
}

// String returns the configuration name of the mode.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// DisplayName returns the name shown in the status line.
func (k Kind) DisplayName() string {
	return strings.ToUpper(strings.ReplaceAll(k.String(), "_", " "))
}

// ParseKind parses a mode name such as "insert" or "warning".
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Insert, fmt.Errorf("unknown mode %q", s)
}

// IsMessage reports whether the mode displays a message.
func (k Kind) IsMessage() bool {
	return k >= Error && k <= Info
}

// IsTextEntry reports whether the mode reads a line of text.
func (k Kind) IsTextEntry() bool {
	return k >= Goto && k <= Command
}

// FallsThrough reports whether an unhandled key should pop the mode and be
// handled by the mode below.
func (k Kind) FallsThrough() bool {
	return k == Warning || k == Notify || k == Info
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor.
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Mode is a mode plus the message it carries, if any.
type Mode struct {
	Kind    Kind
	Message string
}

// New returns a mode without a message.
func New(kind Kind) Mode {
	return Mode{Kind: kind}
}

// WithMessage returns a message mode carrying msg.
func WithMessage(kind Kind, msg string) Mode {
	return Mode{Kind: kind, Message: msg}
}

// String returns the mode name, followed by its message if any.
func (m Mode) String() string {
	if m.Message == "" {
		return m.Kind.String()
	}
	return fmt.Sprintf("%s: %s", m.Kind, m.Message)
}

// CursorStyle returns the text cursor style for the mode. blockCursor is
// the configured cursor shape for editing modes. Text-entry modes draw
// their own cursor in the utility line, so the text cursor is hidden.
func (m Mode) CursorStyle(blockCursor bool) CursorStyle {
	switch {
	case m.Kind.IsTextEntry():
		return CursorHidden
	case m.Kind == View:
		return CursorUnderline
	case blockCursor:
		return CursorBlock
	}
	return CursorBar
}
