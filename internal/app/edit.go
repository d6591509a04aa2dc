package app

import (
	"strings"

	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/history"
	"github.com/dshills/kestrel/internal/engine/selection"
)

// placement says where a selection goes after its edit.
type placement uint8

const (
	// placeCursor collapses to a cursor after the new text.
	placeCursor placement = iota
	// placeSelect selects the new text.
	placeSelect
)

// editFunc computes the edit for one selection against the current buffer.
// low is the first index the edit may touch; text before it belongs to
// selections already edited.
type editFunc func(sel selection.Selection, low int) (history.Operation, placement)

// applyEdit runs f over the selections in index order, applying each
// operation at once and shifting the later selections by its length delta.
// The whole edit becomes one change set. When every selection yields a
// NoOp, nothing is recorded and boundsErr is returned.
func (a *Application) applyEdit(name string, boundsErr error, f editFunc) error {
	if a.buf.ReadOnly() {
		return ErrReadOnlyBuffer
	}

	sem := a.sem()
	before := a.sels
	sels := a.sels
	changes := make([]history.Change, 0, sels.Len())
	low := 0
	allNoOp := true

	for i := 0; i < sels.Len(); i++ {
		sel := sels.At(i)
		op, place := f(sel, low)
		if op.Kind != history.NoOp && op.Range.Start < low {
			op = history.NewNoOp(sel.Range.Start)
		}
		if err := op.Apply(a.buf); err != nil {
			a.rollback(changes)
			return err
		}

		after := a.placeAfter(sel, op, place)
		changes = append(changes, history.NewChange(op, sel, after))
		sels = sels.With(i, after).ShiftSubsequent(i, op.Delta())
		low = min(after.Range.End, a.buf.LenChars())
		if op.Kind != history.NoOp {
			allNoOp = false
		}
	}

	if allNoOp {
		return boundsErr
	}

	final := sels.Normalize(a.buf, sem)
	cs := history.NewChangeSet(name, changes, before, final)
	a.history.Record(cs)
	a.sels = final
	a.logger.WithComponent("edit").Debug("%s", cs.Description())
	return nil
}

// rollback undoes applied changes, newest first.
func (a *Application) rollback(changes []history.Change) {
	for i := len(changes) - 1; i >= 0; i-- {
		if err := changes[i].Inverse.Apply(a.buf); err != nil {
			panic("app: rollback failed: " + err.Error())
		}
	}
}

func (a *Application) placeAfter(sel selection.Selection, op history.Operation, place placement) selection.Selection {
	sem := a.sem()
	if op.Kind == history.NoOp {
		return sel
	}

	r := op.NewRange()
	if place == placeSelect {
		dir := sel.Direction
		if dir == selection.NoDirection {
			dir = selection.Forward
		}
		if next, err := selection.FromRange(r, dir, a.buf, sem); err == nil {
			return next
		}
	}

	next := selection.NewCursor(r.End, a.buf, sem)
	next.StoredLineOffset = selection.Offset(a.buf.Column(next.Cursor(a.buf, sem)))
	return next
}

// selectedRange is the text an extended selection covers, or the empty
// range at the cursor.
func (a *Application) selectedRange(sel selection.Selection) buffer.Range {
	if !sel.IsExtended() {
		c := sel.Cursor(a.buf, a.sem())
		return buffer.Range{Start: c, End: c}
	}
	return buffer.Range{Start: sel.Range.Start, End: min(sel.Range.End, a.buf.LenChars())}
}

// selectionText is the text of sel, or the grapheme under a block cursor.
func (a *Application) selectionText(sel selection.Selection) string {
	end := min(sel.Range.End, a.buf.LenChars())
	return a.buf.Slice(sel.Range.Start, end)
}

func (a *Application) replaceOrInsert(r buffer.Range, text string) history.Operation {
	if r.IsEmpty() {
		return history.NewInsert(r.Start, text)
	}
	return history.NewReplace(r, a.buf.Slice(r.Start, r.End), text)
}

// InsertString inserts s at every selection, replacing extended selections.
// A lone tab becomes spaces up to the next tab stop unless hard tabs are
// configured.
func (a *Application) InsertString(s string) error {
	if s == "" {
		return ErrInvalidInput
	}
	return a.insert("insert", s)
}

func (a *Application) insert(name, s string) error {
	softTab := s == "\t" && !a.cfg.UseHardTab
	tabWidth := a.cfg.TabWidth

	return a.applyEdit(name, nil, func(sel selection.Selection, _ int) (history.Operation, placement) {
		r := a.selectedRange(sel)
		text := s
		if softTab {
			n := buffer.DistanceToNextTabStop(a.buf.Column(r.Start), tabWidth)
			if n == 0 {
				n = tabWidth
			}
			text = strings.Repeat(" ", n)
		}
		return a.replaceOrInsert(r, text), placeCursor
	})
}

// Delete removes the text of every extended selection and the grapheme
// under every cursor. A lone cursor at the end of the buffer fails with
// ErrSelectionAtDocBounds.
func (a *Application) Delete() error {
	return a.applyEdit("delete", ErrSelectionAtDocBounds, func(sel selection.Selection, _ int) (history.Operation, placement) {
		if sel.IsExtended() {
			return a.deleteRange(a.selectedRange(sel)), placeCursor
		}
		c := sel.Cursor(a.buf, a.sem())
		if c >= a.buf.LenChars() {
			return history.NewNoOp(sel.Range.Start), placeCursor
		}
		return a.deleteRange(buffer.Range{Start: c, End: a.buf.NextGraphemeBoundary(c)}), placeCursor
	})
}

// Backspace removes the text of every extended selection and the grapheme
// before every cursor. Without hard tabs, a cursor on a tab stop preceded by
// a full tab of spaces removes all of them. A lone cursor at the start of
// the buffer fails with ErrSelectionAtDocBounds.
func (a *Application) Backspace() error {
	tabWidth := a.cfg.TabWidth
	softTab := !a.cfg.UseHardTab

	return a.applyEdit("backspace", ErrSelectionAtDocBounds, func(sel selection.Selection, low int) (history.Operation, placement) {
		if sel.IsExtended() {
			return a.deleteRange(a.selectedRange(sel)), placeCursor
		}
		c := sel.Cursor(a.buf, a.sem())
		if c == 0 {
			return history.NewNoOp(sel.Range.Start), placeCursor
		}
		if softTab && c-tabWidth >= low && a.atSoftTab(c, tabWidth) {
			return a.deleteRange(buffer.Range{Start: c - tabWidth, End: c}), placeCursor
		}
		return a.deleteRange(buffer.Range{Start: a.buf.PreviousGraphemeBoundary(c), End: c}), placeCursor
	})
}

// atSoftTab reports whether the cursor at c sits on a positive tab stop with
// tabWidth spaces before it on the same line.
func (a *Application) atSoftTab(c, tabWidth int) bool {
	col := a.buf.Column(c)
	if col == 0 || col%tabWidth != 0 {
		return false
	}
	line := a.buf.CharToLine(c)
	off := c - a.buf.LineToChar(line)
	return off >= tabWidth && buffer.SliceIsAllSpaces(a.buf.LineText(line), off-tabWidth, off)
}

func (a *Application) deleteRange(r buffer.Range) history.Operation {
	return history.NewDelete(r, a.buf.Slice(r.Start, r.End))
}

// Cut copies the single selection to the clipboard and deletes it.
func (a *Application) Cut() error {
	if a.sels.Len() > 1 {
		return selectionsError("cut", selection.ErrMultipleSelections)
	}
	text := a.cutText(a.sels.Primary())
	if err := a.Delete(); err != nil {
		return err
	}
	a.clipboard = text
	return nil
}

// cutText is the text Delete removes for sel: its contents when extended,
// else the grapheme at the cursor.
func (a *Application) cutText(sel selection.Selection) string {
	if sel.IsExtended() {
		return a.selectionText(sel)
	}
	c := sel.Cursor(a.buf, a.sem())
	if c >= a.buf.LenChars() {
		return ""
	}
	return a.buf.Slice(c, a.buf.NextGraphemeBoundary(c))
}

// Copy puts the text of the single selection on the clipboard.
func (a *Application) Copy() error {
	if a.sels.Len() > 1 {
		return selectionsError("copy", selection.ErrMultipleSelections)
	}
	text := a.selectionText(a.sels.Primary())
	if text == "" {
		return ErrInvalidInput
	}
	a.clipboard = text
	return nil
}

// Paste inserts the clipboard at every selection.
func (a *Application) Paste() error {
	if a.clipboard == "" {
		return ErrInvalidInput
	}
	return a.insert("paste", a.clipboard)
}

// AddSurround wraps every selection in open and close and selects the
// result. A cursor at the end of the buffer has nothing to wrap; when it is
// the only selection the call fails with ErrInvalidInput.
func (a *Application) AddSurround(open, close string) error {
	if open == "" || close == "" {
		return ErrInvalidInput
	}

	return a.applyEdit("surround", ErrInvalidInput, func(sel selection.Selection, _ int) (history.Operation, placement) {
		r := a.selectedRange(sel)
		if !sel.IsExtended() {
			if r.Start >= a.buf.LenChars() {
				return history.NewNoOp(sel.Range.Start), placeCursor
			}
			if a.sem() == selection.Block {
				r.End = a.buf.NextGraphemeBoundary(r.Start)
			}
		}
		inner := a.buf.Slice(r.Start, r.End)
		return a.replaceOrInsert(r, open+inner+close), placeSelect
	})
}

// Undo reverts the last change set and restores the selections it started
// from.
func (a *Application) Undo() error {
	cs, err := a.history.Undo(a.buf)
	if err != nil {
		return err
	}
	a.sels = cs.SelectionsBefore
	a.logger.WithComponent("history").Debug("undo %s", cs.Description())
	return nil
}

// Redo reapplies the last undone change set and restores the selections it
// ended with.
func (a *Application) Redo() error {
	cs, err := a.history.Redo(a.buf)
	if err != nil {
		return err
	}
	a.sels = cs.SelectionsAfter
	a.logger.WithComponent("history").Debug("redo %s", cs.Description())
	return nil
}
