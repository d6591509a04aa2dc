package selection

import (
	"errors"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// MoveFunc is a single-selection operation. Method expressions such as
// Selection.MoveLineStart satisfy it.
type MoveFunc func(Selection, *buffer.Buffer, Semantics) (Selection, error)

// CountedMoveFunc is a single-selection operation taking a repeat count.
// Method expressions such as Selection.MoveRight satisfy it.
type CountedMoveFunc func(Selection, int, *buffer.Buffer, Semantics) (Selection, error)

// apply runs f over every selection. Selections f fails on are kept. When f
// fails on all of them, the first error other than ErrResultsInSameState is
// returned, or ErrResultsInSameState if there is none.
func (s Selections) apply(buf *buffer.Buffer, sem Semantics, f MoveFunc) ([]Selection, error) {
	out := make([]Selection, len(s.inner))
	var firstErr error
	failed := 0
	for i, sel := range s.inner {
		next, err := f(sel, buf, sem)
		if err != nil {
			failed++
			if firstErr == nil && !errors.Is(err, ErrResultsInSameState) {
				firstErr = err
			}
			next = sel
		}
		out[i] = next
	}
	if failed == len(out) {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, ErrResultsInSameState
	}
	return out, nil
}

// MoveCursorPotentiallyOverlapping applies f to every selection, then
// re-sorts and merges the results.
func (s Selections) MoveCursorPotentiallyOverlapping(buf *buffer.Buffer, sem Semantics, f MoveFunc) (Selections, error) {
	out, err := s.apply(buf, sem, f)
	if err != nil {
		return s, err
	}
	next := New(out, s.primary, buf, sem)
	if next.sameState(s) {
		return s, ErrResultsInSameState
	}
	return next, nil
}

// MoveCursorNonOverlapping applies f to every selection. f must not move a
// selection beyond its own range, so no re-merge happens.
func (s Selections) MoveCursorNonOverlapping(buf *buffer.Buffer, sem Semantics, f MoveFunc) (Selections, error) {
	out, err := s.apply(buf, sem, f)
	if err != nil {
		return s, err
	}
	next := Selections{inner: out, primary: s.primary}
	next.assertValid(buf, sem)
	if next.sameState(s) {
		return s, ErrResultsInSameState
	}
	return next, nil
}

// MoveCursorClearingNonPrimary drops every selection but the primary and
// applies f to it. When f would not change the primary, dropping the others
// is still a change.
func (s Selections) MoveCursorClearingNonPrimary(buf *buffer.Buffer, sem Semantics, f MoveFunc) (Selections, error) {
	primary := s.Primary()
	next, err := f(primary, buf, sem)
	if err != nil {
		if errors.Is(err, ErrResultsInSameState) && len(s.inner) > 1 {
			return Single(primary), nil
		}
		return s, err
	}
	return Single(next), nil
}

// MoveSelection applies a counted motion to every selection, merging the
// results.
func (s Selections) MoveSelection(count int, buf *buffer.Buffer, sem Semantics, f CountedMoveFunc) (Selections, error) {
	return s.MoveCursorPotentiallyOverlapping(buf, sem, func(sel Selection, buf *buffer.Buffer, sem Semantics) (Selection, error) {
		return f(sel, count, buf, sem)
	})
}

// assertValid panics if the set breaks its ordering invariants.
func (s Selections) assertValid(buf *buffer.Buffer, sem Semantics) {
	if len(s.inner) == 0 {
		panic("selection: empty selection set")
	}
	if s.primary < 0 || s.primary >= len(s.inner) {
		panic("selection: primary index out of range")
	}
	for i, sel := range s.inner {
		sel.assertValid(buf, sem)
		if i > 0 {
			prev := s.inner[i-1]
			if prev.Range.Start > sel.Range.Start || collide(prev.Range, sel.Range) {
				panic("selection: selections unsorted or overlapping: " + s.String())
			}
		}
	}
}
