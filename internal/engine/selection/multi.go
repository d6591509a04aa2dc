package selection

import (
	"slices"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// AddSelectionAbove adds a copy of the primary selection's columns on the
// line above the first selection. The primary does not change.
func (s Selections) AddSelectionAbove(buf *buffer.Buffer, sem Semantics) (Selections, error) {
	if s.anySpansMultipleLines(buf) {
		return s, ErrSpansMultipleLines
	}
	line := buf.CharToLine(s.inner[0].Range.Start)
	if line == 0 {
		return s, ErrCannotAddSelectionAbove
	}
	added := s.projectPrimary(line-1, buf, sem)
	inner := append([]Selection{added}, s.inner...)
	return New(inner, s.primary+1, buf, sem), nil
}

// AddSelectionBelow adds a copy of the primary selection's columns on the
// line below the last selection. The primary does not change.
func (s Selections) AddSelectionBelow(buf *buffer.Buffer, sem Semantics) (Selections, error) {
	if s.anySpansMultipleLines(buf) {
		return s, ErrSpansMultipleLines
	}
	last := s.inner[len(s.inner)-1]
	line := buf.CharToLine(min(last.Range.Start, buf.LenChars()))
	if line >= buf.LenLines()-1 {
		return s, ErrCannotAddSelectionBelow
	}
	added := s.projectPrimary(line+1, buf, sem)
	inner := append(slices.Clone(s.inner), added)
	return New(inner, s.primary, buf, sem), nil
}

func (s Selections) anySpansMultipleLines(buf *buffer.Buffer) bool {
	return slices.ContainsFunc(s.inner, func(sel Selection) bool {
		return sel.SpansMultipleLines(buf)
	})
}

// projectPrimary places the primary's column span on line, clamped to the
// line's content. A span that collapses becomes a cursor.
func (s Selections) projectPrimary(line int, buf *buffer.Buffer, sem Semantics) Selection {
	p := s.Primary()
	start := buf.CharAtColumn(line, buf.Column(min(p.Range.Start, buf.LenChars())))
	if !p.IsExtended() {
		return NewCursor(start, buf, sem)
	}

	endCol := buf.Column(buf.PreviousGraphemeBoundary(p.Range.End)) + 1
	r := buffer.Range{Start: start, End: max(start, buf.CharAtColumn(line, endCol))}
	if !isExtendedRange(r, buf, sem) {
		return NewCursor(start, buf, sem)
	}
	return Selection{Range: r, Direction: p.Direction, StoredLineOffset: p.StoredLineOffset}
}
