package selection

import (
	"fmt"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// LineOffset is an optional remembered grapheme column.
type LineOffset struct {
	Column int
	Valid  bool
}

// Offset returns a valid LineOffset for column.
func Offset(column int) LineOffset {
	return LineOffset{Column: column, Valid: true}
}

// Selection is a range of the buffer plus the direction of its cursor.
// Selection is an immutable value type; operations return new values.
type Selection struct {
	Range            buffer.Range
	Direction        Direction
	StoredLineOffset LineOffset
}

// Position is a 0-indexed line and grapheme column.
type Position struct {
	Line   int
	Column int
}

// Selection2D is a selection projected to line/column positions.
type Selection2D struct {
	Head   Position
	Anchor Position
}

// NewCursor returns a non-extended selection at at. Under Block the
// selection covers the grapheme at at, or the virtual slot past the end.
func NewCursor(at int, buf *buffer.Buffer, sem Semantics) Selection {
	at = max(0, min(at, buf.LenChars()))
	if sem == Block {
		return Selection{Range: buffer.Range{Start: at, End: blockEnd(buf, at)}}
	}
	return Selection{Range: buffer.Range{Start: at, End: at}}
}

// FromRange returns a selection over r with direction dir. It fails with
// ErrDirectionMismatch when dir is NoDirection for an extended range or set
// for a non-extended one.
func FromRange(r buffer.Range, dir Direction, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	if isExtendedRange(r, buf, sem) != (dir != NoDirection) {
		return Selection{}, ErrDirectionMismatch
	}
	return Selection{Range: r, Direction: dir}, nil
}

// fromRangeForward builds a selection over r, Forward when r is extended.
func fromRangeForward(r buffer.Range, buf *buffer.Buffer, sem Semantics) Selection {
	if !isExtendedRange(r, buf, sem) {
		return NewCursor(r.Start, buf, sem)
	}
	return Selection{Range: r, Direction: Forward}
}

// blockEnd is the end of a block cursor at at.
func blockEnd(buf *buffer.Buffer, at int) int {
	if at >= buf.LenChars() {
		return buf.LenChars() + 1
	}
	return buf.NextGraphemeBoundary(at)
}

func isExtendedRange(r buffer.Range, buf *buffer.Buffer, sem Semantics) bool {
	if sem == Block {
		return r.End > blockEnd(buf, r.Start)
	}
	return r.End > r.Start
}

// String returns a compact representation such as "[3:7) forward".
func (s Selection) String() string {
	if s.Direction == NoDirection {
		return s.Range.String()
	}
	return fmt.Sprintf("%s %s", s.Range, s.Direction)
}

// IsExtended reports whether the selection covers more than a cursor.
func (s Selection) IsExtended() bool {
	return s.Direction != NoDirection
}

// Cursor returns the index of the moving end. Under Block this is the
// grapheme under the rendered block.
func (s Selection) Cursor(buf *buffer.Buffer, sem Semantics) int {
	switch {
	case s.Direction == Backward:
		return s.Range.Start
	case sem == Bar:
		return s.Range.End
	case s.Direction == Forward:
		return buf.PreviousGraphemeBoundary(s.Range.End)
	}
	return s.Range.Start
}

// Anchor returns the index of the fixed end.
func (s Selection) Anchor(buf *buffer.Buffer, sem Semantics) int {
	switch {
	case s.Direction != Backward:
		return s.Range.Start
	case sem == Bar:
		return s.Range.End
	}
	return buf.PreviousGraphemeBoundary(s.Range.End)
}

// PutCursor moves the cursor to to. Move collapses the selection there;
// Extend keeps the anchor, and under Block keeps the anchor grapheme
// selected when the direction flips. Extend never reaches the virtual slot
// past the end of the buffer. When updateStored is set the stored line
// offset becomes the new cursor's column.
func (s Selection) PutCursor(to int, buf *buffer.Buffer, movement Movement, sem Semantics, updateStored bool) (Selection, error) {
	n := buf.LenChars()
	to = max(0, min(to, n))

	var next Selection
	if movement == Move {
		next = NewCursor(to, buf, sem)
	} else {
		next = s.extendTo(to, buf, sem)
	}

	next.StoredLineOffset = s.StoredLineOffset
	if updateStored {
		next.StoredLineOffset = Offset(buf.Column(next.Cursor(buf, sem)))
	}
	if next.Range == s.Range && next.Direction == s.Direction {
		return s, ErrResultsInSameState
	}
	return next, nil
}

func (s Selection) extendTo(to int, buf *buffer.Buffer, sem Semantics) Selection {
	anchor := s.Anchor(buf, sem)
	if sem == Bar {
		switch {
		case to > anchor:
			return Selection{Range: buffer.Range{Start: anchor, End: to}, Direction: Forward}
		case to < anchor:
			return Selection{Range: buffer.Range{Start: to, End: anchor}, Direction: Backward}
		}
		return NewCursor(to, buf, sem)
	}

	if n := buf.LenChars(); n > 0 {
		last := buf.PreviousGraphemeBoundary(n)
		to, anchor = min(to, last), min(anchor, last)
	}
	switch {
	case to > anchor:
		return Selection{Range: buffer.Range{Start: anchor, End: blockEnd(buf, to)}, Direction: Forward}
	case to < anchor:
		return Selection{Range: buffer.Range{Start: to, End: blockEnd(buf, anchor)}, Direction: Backward}
	}
	return NewCursor(anchor, buf, sem)
}

// Shift returns the selection moved by delta characters.
func (s Selection) Shift(delta int) Selection {
	s.Range = s.Range.Shift(delta)
	return s
}

// Merge returns the union of two overlapping selections, keeping the
// receiver's direction where the union is extended.
func (s Selection) Merge(other Selection, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	if !s.Range.Overlaps(other.Range) {
		return s, ErrNoOverlap
	}
	return s.withRange(s.Range.Merge(other.Range), buf, sem), nil
}

// Intersect returns the overlap of two selections.
func (s Selection) Intersect(other Selection, buf *buffer.Buffer, sem Semantics) (Selection, error) {
	r, ok := s.Range.Intersection(other.Range)
	if !ok {
		return s, ErrNoOverlap
	}
	if sem == Block && r.IsEmpty() {
		return NewCursor(r.Start, buf, sem), nil
	}
	return s.withRange(r, buf, sem), nil
}

// withRange replaces the range and repairs the direction to match its width.
func (s Selection) withRange(r buffer.Range, buf *buffer.Buffer, sem Semantics) Selection {
	s.Range = r
	switch {
	case !isExtendedRange(r, buf, sem):
		s.Direction = NoDirection
	case s.Direction == NoDirection:
		s.Direction = Forward
	}
	return s
}

// SpansMultipleLines reports whether the selected text crosses a line break.
// A trailing newline at the end of the selection does not count.
func (s Selection) SpansMultipleLines(buf *buffer.Buffer) bool {
	if s.Range.Len() <= 1 {
		return false
	}
	last := min(s.Range.End, buf.LenChars()) - 1
	return buf.CharToLine(s.Range.Start) != buf.CharToLine(max(last, s.Range.Start))
}

// To2D projects the cursor and anchor to line/column positions.
func (s Selection) To2D(buf *buffer.Buffer, sem Semantics) Selection2D {
	pos := func(i int) Position {
		i = min(i, buf.LenChars())
		return Position{Line: buf.CharToLine(i), Column: buf.Column(i)}
	}
	return Selection2D{Head: pos(s.Cursor(buf, sem)), Anchor: pos(s.Anchor(buf, sem))}
}

// assertValid panics when s lies outside the buffer.
func (s Selection) assertValid(buf *buffer.Buffer, sem Semantics) {
	limit := buf.LenChars()
	if sem == Block {
		limit++
	}
	if s.Range.Start < 0 || s.Range.Start > s.Range.End || s.Range.End > limit {
		panic(fmt.Sprintf("selection: range %s out of bounds for buffer of %d chars", s.Range, buf.LenChars()))
	}
}
