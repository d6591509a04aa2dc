package selection

import "github.com/dshills/kestrel/internal/engine/buffer"

// Horizontal motion

func (s Selection) moveHorizontally(count int, forward bool, movement Movement, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	to := s.Cursor(buf, sem)
	for n := max(count, 1); n > 0; n-- {
		var next int
		if forward {
			next = buf.NextGraphemeBoundary(to)
		} else {
			next = buf.PreviousGraphemeBoundary(to)
		}
		if next == to {
			break
		}
		to = next
	}
	return s.PutCursor(to, buf, movement, sem, true)
}

// MoveRight moves the cursor count graphemes right.
func (s Selection) MoveRight(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveHorizontally(count, true, Move, buf, sem)
}

// MoveLeft moves the cursor count graphemes left.
func (s Selection) MoveLeft(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveHorizontally(count, false, Move, buf, sem)
}

// ExtendRight extends the selection count graphemes right.
func (s Selection) ExtendRight(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveHorizontally(count, true, Extend, buf, sem)
}

// ExtendLeft extends the selection count graphemes left.
func (s Selection) ExtendLeft(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveHorizontally(count, false, Extend, buf, sem)
}

// Vertical motion

// moveVertically keeps the remembered column across lines. The stored
// offset is seeded from the current column on the first vertical move and
// then left alone, so passing through a short line does not lose it.
func (s Selection) moveVertically(count int, down bool, movement Movement, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	cur := s.Cursor(buf, sem)
	line := buf.CharToLine(cur)
	goal := line - max(count, 1)
	if down {
		goal = line + max(count, 1)
	}
	goal = max(0, min(goal, buf.LenLines()-1))
	if goal == line {
		return s, ErrResultsInSameState
	}

	stored := s.StoredLineOffset
	if !stored.Valid {
		stored = Offset(buf.Column(cur))
	}
	next, err := s.PutCursor(buf.CharAtColumn(goal, stored.Column), buf, movement, sem, false)
	if err != nil {
		return s, err
	}
	next.StoredLineOffset = stored
	return next, nil
}

// MoveUp moves the cursor count lines up.
func (s Selection) MoveUp(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveVertically(count, false, Move, buf, sem)
}

// MoveDown moves the cursor count lines down.
func (s Selection) MoveDown(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveVertically(count, true, Move, buf, sem)
}

// ExtendUp extends the selection count lines up.
func (s Selection) ExtendUp(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveVertically(count, false, Extend, buf, sem)
}

// ExtendDown extends the selection count lines down.
func (s Selection) ExtendDown(count int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.moveVertically(count, true, Extend, buf, sem)
}

// GotoLine moves the cursor to the start of the 1-based line, clamped to
// the buffer.
func (s Selection) GotoLine(line int, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	line = max(0, min(line-1, buf.LenLines()-1))
	return s.PutCursor(buf.LineToChar(line), buf, Move, sem, true)
}

// Word motion

func (s Selection) nextWord(movement Movement, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	to := buf.NextWordBoundary(s.Cursor(buf, sem))
	if n := buf.LenChars(); sem == Block && to >= n && n > 0 {
		to = buf.PreviousGraphemeBoundary(n)
	}
	return s.PutCursor(to, buf, movement, sem, true)
}

func (s Selection) previousWord(movement Movement, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	to := buf.PreviousWordBoundary(s.Cursor(buf, sem))
	return s.PutCursor(to, buf, movement, sem, true)
}

// MoveNextWord moves the cursor to the start of the next word.
func (s Selection) MoveNextWord(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.nextWord(Move, buf, sem)
}

// MovePreviousWord moves the cursor to the start of the previous word.
func (s Selection) MovePreviousWord(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.previousWord(Move, buf, sem)
}

// ExtendNextWord extends the selection to the start of the next word.
func (s Selection) ExtendNextWord(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.nextWord(Extend, buf, sem)
}

// ExtendPreviousWord extends the selection to the start of the previous word.
func (s Selection) ExtendPreviousWord(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.previousWord(Extend, buf, sem)
}

// Line motion

func (s Selection) cursorLine(buf *buffer.Buffer, sem Semantics) int {
	return buf.CharToLine(s.Cursor(buf, sem))
}

func lineTextStart(line int, buf *buffer.Buffer) int {
	return buf.LineToChar(line) + buf.FirstNonWhitespaceOffset(line)
}

func lineTextEnd(line int, buf *buffer.Buffer, sem Semantics) int {
	end := buf.LineContentEnd(line)
	if sem == Block && end > buf.LineToChar(line) {
		return buf.PreviousGraphemeBoundary(end)
	}
	return end
}

func (s Selection) home(movement Movement, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	line := s.cursorLine(buf, sem)
	to := lineTextStart(line, buf)
	if s.Cursor(buf, sem) == to {
		to = buf.LineToChar(line)
	}
	return s.PutCursor(to, buf, movement, sem, true)
}

// MoveLineStart moves the cursor to the start of its line.
func (s Selection) MoveLineStart(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(buf.LineToChar(s.cursorLine(buf, sem)), buf, Move, sem, true)
}

// MoveLineTextStart moves the cursor to the first non-whitespace character
// of its line.
func (s Selection) MoveLineTextStart(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(lineTextStart(s.cursorLine(buf, sem), buf), buf, Move, sem, true)
}

// MoveLineTextEnd moves the cursor to the end of its line's text. Under
// Block the cursor lands on the last grapheme before the line break.
func (s Selection) MoveLineTextEnd(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(lineTextEnd(s.cursorLine(buf, sem), buf, sem), buf, Move, sem, true)
}

// MoveHome toggles the cursor between the line's text start and line start.
func (s Selection) MoveHome(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.home(Move, buf, sem)
}

// ExtendLineStart extends the selection to the start of the cursor's line.
func (s Selection) ExtendLineStart(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(buf.LineToChar(s.cursorLine(buf, sem)), buf, Extend, sem, true)
}

// ExtendLineTextEnd extends the selection to the end of the line's text.
func (s Selection) ExtendLineTextEnd(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(lineTextEnd(s.cursorLine(buf, sem), buf, sem), buf, Extend, sem, true)
}

// ExtendHome extends the selection, toggling like MoveHome.
func (s Selection) ExtendHome(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.home(Extend, buf, sem)
}

// Document motion

// MoveDocumentStart moves the cursor to the start of the buffer.
func (s Selection) MoveDocumentStart(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(0, buf, Move, sem, true)
}

// MoveDocumentEnd moves the cursor past the last character.
func (s Selection) MoveDocumentEnd(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(buf.LenChars(), buf, Move, sem, true)
}

// ExtendDocumentStart extends the selection to the start of the buffer.
func (s Selection) ExtendDocumentStart(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(0, buf, Extend, sem, true)
}

// ExtendDocumentEnd extends the selection to the end of the buffer.
func (s Selection) ExtendDocumentEnd(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	return s.PutCursor(buf.LenChars(), buf, Extend, sem, true)
}

// Whole-selection operations

// SelectLine selects the cursor's line including its terminator.
func (s Selection) SelectLine(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	if s.SpansMultipleLines(buf) {
		return s, ErrSpansMultipleLines
	}
	line := buf.CharToLine(min(s.Range.Start, buf.LenChars()))
	r := buffer.Range{Start: buf.LineToChar(line), End: buf.LineToChar(line + 1)}
	next := fromRangeForward(r, buf, sem)
	next.StoredLineOffset = s.StoredLineOffset
	if next.Range == s.Range && next.Direction == s.Direction {
		return s, ErrResultsInSameState
	}
	return next, nil
}

// SelectAll selects the whole buffer.
func (s Selection) SelectAll(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	next := fromRangeForward(buffer.Range{Start: 0, End: buf.LenChars()}, buf, sem)
	if next.Range == s.Range && next.Direction == s.Direction {
		return s, ErrResultsInSameState
	}
	return next, nil
}

// CollapseToCursor drops the anchor, leaving a cursor where the head was.
func (s Selection) CollapseToCursor(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	if !s.IsExtended() {
		return s, ErrResultsInSameState
	}
	return s.PutCursor(s.Cursor(buf, sem), buf, Move, sem, true)
}

// CollapseToAnchor drops the head, leaving a cursor at the anchor.
func (s Selection) CollapseToAnchor(buf *buffer.Buffer, sem Semantics) (Selection, error) {
	if !s.IsExtended() {
		return s, ErrResultsInSameState
	}
	return s.PutCursor(s.Anchor(buf, sem), buf, Move, sem, true)
}

// FlipDirection swaps which end of an extended selection is the cursor.
func (s Selection) FlipDirection(_ *buffer.Buffer, _ Semantics) (Selection, error) {
	switch s.Direction {
	case Forward:
		s.Direction = Backward
	case Backward:
		s.Direction = Forward
	default:
		return s, ErrResultsInSameState
	}
	return s, nil
}
