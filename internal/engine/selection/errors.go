package selection

import "errors"

// Errors returned by single-selection operations.
var (
	// ErrResultsInSameState indicates the operation would not change anything.
	ErrResultsInSameState = errors.New("results in same state")

	// ErrSpansMultipleLines indicates a line operation on a multi-line selection.
	ErrSpansMultipleLines = errors.New("selection spans multiple lines")

	// ErrDirectionMismatch indicates a direction that disagrees with the
	// selection's width.
	ErrDirectionMismatch = errors.New("direction does not match selection width")

	// ErrNoOverlap indicates two selections that do not overlap.
	ErrNoOverlap = errors.New("selections do not overlap")
)

// Errors returned by selection-set operations. ErrResultsInSameState and
// ErrSpansMultipleLines are shared with single selections.
var (
	// ErrSingleSelection indicates an operation that needs more than one selection.
	ErrSingleSelection = errors.New("only one selection")

	// ErrMultipleSelections indicates an operation that needs exactly one selection.
	ErrMultipleSelections = errors.New("more than one selection")

	// ErrCannotAddSelectionAbove indicates the first selection is on the first line.
	ErrCannotAddSelectionAbove = errors.New("cannot add selection above")

	// ErrCannotAddSelectionBelow indicates the last selection is on the last line.
	ErrCannotAddSelectionBelow = errors.New("cannot add selection below")

	// ErrNoSearchMatches indicates no selection contained a match.
	ErrNoSearchMatches = errors.New("no search matches")
)
