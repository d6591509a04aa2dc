// Package selection provides selections and multi-selection sets over a
// buffer.
//
// The selection package handles:
//
//   - Single selections as a (Range, Direction, stored column) triple
//   - Two cursor semantics: Bar (a point between graphemes) and Block (a
//     cursor covering one grapheme)
//   - Motions: horizontal, vertical, word, line, page and document
//   - Selections: a sorted, merged, non-empty set with a primary selection
//   - Combinators that lift a single-selection motion over a whole set
//   - Structural operations: add above/below, surrounding pairs, surround,
//     regex search and split within selections
//
// Selection Model:
//
// A selection is a half-open character range plus an optional direction
// that records which end is the cursor:
//   - Forward: the cursor is at the end
//   - Backward: the cursor is at the start
//   - NoDirection: the selection is not extended
//
// Under Block semantics a non-extended selection covers exactly one
// grapheme, and a cursor sitting past the last character occupies the
// virtual slot [len, len+1).
//
// Every operation is a pure function of (Selection, *buffer.Buffer,
// Semantics) that returns a new value or an error. Operations that would
// change nothing return ErrResultsInSameState.
//
// Basic usage:
//
//	buf := buffer.NewFromString("idk\nsomething\nelse")
//	sel := selection.NewCursor(6, buf, selection.Bar)
//	sel, err := sel.ExtendDown(1, buf, selection.Bar)
//
//	set := selection.New([]selection.Selection{sel}, 0, buf, selection.Bar)
//	set, err = set.MoveCursorNonOverlapping(buf, selection.Bar, selection.Selection.CollapseToCursor)
//
// Thread Safety:
//
// Selection and Selections are immutable values and safe for concurrent
// reads.
package selection
