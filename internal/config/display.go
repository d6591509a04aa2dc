package config

import (
	"fmt"
	"strings"
)

// DisplayMode says how an error of a given class is shown to the user.
type DisplayMode uint8

const (
	DisplayError DisplayMode = iota
	DisplayWarning
	DisplayNotify
	DisplayInfo
	DisplayIgnore
)

var displayModeNames = [...]string{
	DisplayError:   "error",
	DisplayWarning: "warning",
	DisplayNotify:  "notify",
	DisplayInfo:    "info",
	DisplayIgnore:  "ignore",
}

// String returns the configuration name of the display mode.
func (d DisplayMode) String() string {
	if int(d) < len(displayModeNames) {
		return displayModeNames[d]
	}
	return fmt.Sprintf("DisplayMode(%d)", d)
}

// ParseDisplayMode parses a display mode name, ignoring case.
func ParseDisplayMode(s string) (DisplayMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range displayModeNames {
		if n == name {
			return DisplayMode(i), nil
		}
	}
	return DisplayError, fmt.Errorf("unknown display mode %q", s)
}

// ErrorClass is the stable name of a kind of editor error. Display policy
// is keyed by class.
type ErrorClass string

const (
	ClassSameState          ErrorClass = "same_state"
	ClassDocBounds          ErrorClass = "doc_bounds"
	ClassSingleSelection    ErrorClass = "single_selection"
	ClassMultipleSelections ErrorClass = "multiple_selections"
	ClassSpansMultipleLines ErrorClass = "spans_multiple_lines"
	ClassDirectionMismatch  ErrorClass = "direction_mismatch"
	ClassNoOverlap          ErrorClass = "no_overlap"
	ClassCannotAddAbove     ErrorClass = "cannot_add_above"
	ClassCannotAddBelow     ErrorClass = "cannot_add_below"
	ClassNoSearchMatches    ErrorClass = "no_search_matches"
	ClassInvalidInput       ErrorClass = "invalid_input"
	ClassReadOnly           ErrorClass = "read_only"
	ClassNoUndo             ErrorClass = "no_undo"
	ClassNoRedo             ErrorClass = "no_redo"
	ClassFileModified       ErrorClass = "file_modified"
	ClassIO                 ErrorClass = "io"
	ClassOther              ErrorClass = "other"
)

// ErrorClasses lists every known class.
var ErrorClasses = []ErrorClass{
	ClassSameState,
	ClassDocBounds,
	ClassSingleSelection,
	ClassMultipleSelections,
	ClassSpansMultipleLines,
	ClassDirectionMismatch,
	ClassNoOverlap,
	ClassCannotAddAbove,
	ClassCannotAddBelow,
	ClassNoSearchMatches,
	ClassInvalidInput,
	ClassReadOnly,
	ClassNoUndo,
	ClassNoRedo,
	ClassFileModified,
	ClassIO,
	ClassOther,
}

func knownClass(c ErrorClass) bool {
	for _, k := range ErrorClasses {
		if k == c {
			return true
		}
	}
	return false
}

// DefaultDisplay returns the built-in display policy.
func DefaultDisplay() map[ErrorClass]DisplayMode {
	d := make(map[ErrorClass]DisplayMode, len(ErrorClasses))
	for _, c := range ErrorClasses {
		d[c] = DisplayError
	}
	d[ClassSameState] = DisplayIgnore
	d[ClassDocBounds] = DisplayWarning
	d[ClassSingleSelection] = DisplayWarning
	d[ClassMultipleSelections] = DisplayWarning
	d[ClassFileModified] = DisplayWarning
	return d
}
