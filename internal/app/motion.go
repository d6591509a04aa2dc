package app

import (
	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/selection"
)

// update replaces the selections with the result of f, wrapping failures
// as SelectionsError.
func (a *Application) update(op string, f func(selection.Selections) (selection.Selections, error)) error {
	next, err := f(a.sels)
	if err != nil {
		return selectionsError(op, err)
	}
	a.sels = next
	return nil
}

func (a *Application) counted(op string, count int, f selection.CountedMoveFunc) error {
	count = max(count, 1)
	return a.update(op, func(s selection.Selections) (selection.Selections, error) {
		return s.MoveSelection(count, a.buf, a.sem(), f)
	})
}

func (a *Application) overlapping(op string, f selection.MoveFunc) error {
	return a.update(op, func(s selection.Selections) (selection.Selections, error) {
		return s.MoveCursorPotentiallyOverlapping(a.buf, a.sem(), f)
	})
}

func (a *Application) nonOverlapping(op string, f selection.MoveFunc) error {
	return a.update(op, func(s selection.Selections) (selection.Selections, error) {
		return s.MoveCursorNonOverlapping(a.buf, a.sem(), f)
	})
}

func (a *Application) primaryOnly(op string, f selection.MoveFunc) error {
	return a.update(op, func(s selection.Selections) (selection.Selections, error) {
		return s.MoveCursorClearingNonPrimary(a.buf, a.sem(), f)
	})
}

// Horizontal and vertical motion.

// MoveCursorLeft moves every cursor count graphemes left.
func (a *Application) MoveCursorLeft(count int) error {
	return a.counted("move_left", count, selection.Selection.MoveLeft)
}

// MoveCursorRight moves every cursor count graphemes right.
func (a *Application) MoveCursorRight(count int) error {
	return a.counted("move_right", count, selection.Selection.MoveRight)
}

// MoveCursorUp moves every cursor count lines up, keeping its column.
func (a *Application) MoveCursorUp(count int) error {
	return a.counted("move_up", count, selection.Selection.MoveUp)
}

// MoveCursorDown moves every cursor count lines down, keeping its column.
func (a *Application) MoveCursorDown(count int) error {
	return a.counted("move_down", count, selection.Selection.MoveDown)
}

// ExtendSelectionLeft extends every selection count graphemes left.
func (a *Application) ExtendSelectionLeft(count int) error {
	return a.counted("extend_left", count, selection.Selection.ExtendLeft)
}

// ExtendSelectionRight extends every selection count graphemes right.
func (a *Application) ExtendSelectionRight(count int) error {
	return a.counted("extend_right", count, selection.Selection.ExtendRight)
}

// ExtendSelectionUp extends every selection count lines up.
func (a *Application) ExtendSelectionUp(count int) error {
	return a.counted("extend_up", count, selection.Selection.ExtendUp)
}

// ExtendSelectionDown extends every selection count lines down.
func (a *Application) ExtendSelectionDown(count int) error {
	return a.counted("extend_down", count, selection.Selection.ExtendDown)
}

// MovePageUp moves every cursor up by the height of the view.
func (a *Application) MovePageUp() error {
	return a.counted("page_up", a.view.Height, selection.Selection.MoveUp)
}

// MovePageDown moves every cursor down by the height of the view.
func (a *Application) MovePageDown() error {
	return a.counted("page_down", a.view.Height, selection.Selection.MoveDown)
}

// Word motion.

// MoveCursorWordBoundaryForward moves every cursor to the next word boundary.
func (a *Application) MoveCursorWordBoundaryForward() error {
	return a.overlapping("move_word_forward", selection.Selection.MoveNextWord)
}

// MoveCursorWordBoundaryBackward moves every cursor to the previous word boundary.
func (a *Application) MoveCursorWordBoundaryBackward() error {
	return a.overlapping("move_word_backward", selection.Selection.MovePreviousWord)
}

// ExtendSelectionWordBoundaryForward extends every selection to the next word boundary.
func (a *Application) ExtendSelectionWordBoundaryForward() error {
	return a.overlapping("extend_word_forward", selection.Selection.ExtendNextWord)
}

// ExtendSelectionWordBoundaryBackward extends every selection to the previous word boundary.
func (a *Application) ExtendSelectionWordBoundaryBackward() error {
	return a.overlapping("extend_word_backward", selection.Selection.ExtendPreviousWord)
}

// Line motion.

// MoveCursorLineStart moves every cursor to column 0.
func (a *Application) MoveCursorLineStart() error {
	return a.overlapping("move_line_start", selection.Selection.MoveLineStart)
}

// MoveCursorLineTextStart moves every cursor to the first non-blank of its line.
func (a *Application) MoveCursorLineTextStart() error {
	return a.overlapping("move_line_text_start", selection.Selection.MoveLineTextStart)
}

// MoveCursorLineEnd moves every cursor to the end of its line's text.
func (a *Application) MoveCursorLineEnd() error {
	return a.overlapping("move_line_end", selection.Selection.MoveLineTextEnd)
}

// MoveCursorHome toggles between the first non-blank and the line start.
func (a *Application) MoveCursorHome() error {
	return a.overlapping("move_home", selection.Selection.MoveHome)
}

// ExtendSelectionLineStart extends every selection to column 0.
func (a *Application) ExtendSelectionLineStart() error {
	return a.overlapping("extend_line_start", selection.Selection.ExtendLineStart)
}

// ExtendSelectionLineEnd extends every selection to the end of its line's text.
func (a *Application) ExtendSelectionLineEnd() error {
	return a.overlapping("extend_line_end", selection.Selection.ExtendLineTextEnd)
}

// ExtendSelectionHome extends every selection the way MoveCursorHome moves.
func (a *Application) ExtendSelectionHome() error {
	return a.overlapping("extend_home", selection.Selection.ExtendHome)
}

// Document motion.

// MoveCursorDocumentStart moves every cursor to the start of the buffer.
func (a *Application) MoveCursorDocumentStart() error {
	return a.overlapping("move_document_start", selection.Selection.MoveDocumentStart)
}

// MoveCursorDocumentEnd moves every cursor to the end of the buffer.
func (a *Application) MoveCursorDocumentEnd() error {
	return a.overlapping("move_document_end", selection.Selection.MoveDocumentEnd)
}

// ExtendSelectionDocumentStart extends every selection to the start of the buffer.
func (a *Application) ExtendSelectionDocumentStart() error {
	return a.overlapping("extend_document_start", selection.Selection.ExtendDocumentStart)
}

// ExtendSelectionDocumentEnd extends every selection to the end of the buffer.
func (a *Application) ExtendSelectionDocumentEnd() error {
	return a.overlapping("extend_document_end", selection.Selection.ExtendDocumentEnd)
}

// GotoLine moves the primary cursor to the start of the 1-based line and
// drops the other selections.
func (a *Application) GotoLine(line int) error {
	if line < 1 {
		return ErrInvalidInput
	}
	return a.primaryOnly("goto_line", func(s selection.Selection, buf *buffer.Buffer, sem selection.Semantics) (selection.Selection, error) {
		return s.GotoLine(line, buf, sem)
	})
}

// GotoLineColumn places a single cursor at the 1-based line and column,
// clamping both to the buffer.
func (a *Application) GotoLineColumn(line, column int) {
	l := max(0, min(line-1, a.buf.LenLines()-1))
	at := a.buf.CharAtColumn(l, max(column-1, 0))
	sel := selection.NewCursor(at, a.buf, a.sem())
	sel.StoredLineOffset = selection.Offset(a.buf.Column(at))
	a.sels = selection.Single(sel)
}

// Whole-selection operations.

// SelectLine extends every selection over its whole line.
func (a *Application) SelectLine() error {
	return a.overlapping("select_line", selection.Selection.SelectLine)
}

// SelectAll replaces the selections with one covering the buffer.
func (a *Application) SelectAll() error {
	return a.primaryOnly("select_all", selection.Selection.SelectAll)
}

// CollapseSelectionToCursor shrinks every selection to its cursor.
func (a *Application) CollapseSelectionToCursor() error {
	return a.nonOverlapping("collapse_to_cursor", selection.Selection.CollapseToCursor)
}

// CollapseSelectionToAnchor shrinks every selection to its anchor.
func (a *Application) CollapseSelectionToAnchor() error {
	return a.nonOverlapping("collapse_to_anchor", selection.Selection.CollapseToAnchor)
}

// FlipSelectionDirection swaps the cursor and anchor of every selection.
func (a *Application) FlipSelectionDirection() error {
	return a.nonOverlapping("flip_direction", selection.Selection.FlipDirection)
}

// Multiple selections.

// AddSelectionAbove adds a selection on the line above the first one.
func (a *Application) AddSelectionAbove() error {
	return a.update("add_selection_above", func(s selection.Selections) (selection.Selections, error) {
		return s.AddSelectionAbove(a.buf, a.sem())
	})
}

// AddSelectionBelow adds a selection on the line below the last one.
func (a *Application) AddSelectionBelow() error {
	return a.update("add_selection_below", func(s selection.Selections) (selection.Selections, error) {
		return s.AddSelectionBelow(a.buf, a.sem())
	})
}

// IncrementPrimarySelection makes the next selection primary.
func (a *Application) IncrementPrimarySelection() error {
	return a.update("increment_primary", selection.Selections.IncrementPrimary)
}

// DecrementPrimarySelection makes the previous selection primary.
func (a *Application) DecrementPrimarySelection() error {
	return a.update("decrement_primary", selection.Selections.DecrementPrimary)
}

// ClearNonPrimarySelections drops every selection but the primary.
func (a *Application) ClearNonPrimarySelections() error {
	return a.update("clear_non_primary", selection.Selections.ClearNonPrimary)
}

// RemovePrimarySelection drops the primary selection.
func (a *Application) RemovePrimarySelection() error {
	return a.update("remove_primary", selection.Selections.RemovePrimary)
}

// SelectNearestSurroundingPair selects the brackets or quotes around each
// selection.
func (a *Application) SelectNearestSurroundingPair() error {
	return a.update("select_surrounding_pair", func(s selection.Selections) (selection.Selections, error) {
		return s.NearestSurroundingPair(a.buf, a.sem())
	})
}

// SelectSurround selects the grapheme on either side of each selection.
func (a *Application) SelectSurround() error {
	return a.update("select_surround", func(s selection.Selections) (selection.Selections, error) {
		return s.Surround(a.buf, a.sem())
	})
}
