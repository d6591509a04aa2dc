package selection

import (
	"fmt"
	"strings"
)

// Semantics selects how a cursor relates to the text.
type Semantics uint8

const (
	// Bar treats the cursor as a point between graphemes.
	Bar Semantics = iota

	// Block treats the cursor as covering one grapheme.
	Block
)

// String returns the configuration name of the semantics.
func (s Semantics) String() string {
	switch s {
	case Bar:
		return "bar"
	case Block:
		return "block"
	default:
		return fmt.Sprintf("Semantics(%d)", uint8(s))
	}
}

// ParseSemantics parses "bar" or "block", ignoring case.
func ParseSemantics(s string) (Semantics, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar":
		return Bar, nil
	case "block":
		return Block, nil
	}
	return Bar, fmt.Errorf("unknown cursor semantics %q", s)
}

// Direction records which end of an extended selection is the cursor.
type Direction uint8

const (
	// NoDirection marks a non-extended selection.
	NoDirection Direction = iota

	// Forward puts the cursor at the end of the range.
	Forward

	// Backward puts the cursor at the start of the range.
	Backward
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Movement chooses between collapsing and extending in PutCursor.
type Movement uint8

const (
	// Move collapses the selection to the target.
	Move Movement = iota

	// Extend keeps the anchor and moves the cursor to the target.
	Extend
)
