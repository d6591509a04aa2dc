package selection

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// Selections is a non-empty set of selections sorted by start, with no two
// members overlapping, plus the index of the primary selection.
// Selections is an immutable value type; operations return new values.
type Selections struct {
	inner   []Selection
	primary int
}

// New sorts and merges sels into a valid set. The selection at primary stays
// primary; if it merges with others, the merged selection becomes primary
// and takes its direction. New panics when sels is empty, primary is out of
// range, or a selection lies outside the buffer.
func New(sels []Selection, primary int, buf *buffer.Buffer, sem Semantics) Selections {
	if len(sels) == 0 {
		panic("selection: empty selection set")
	}
	if primary < 0 || primary >= len(sels) {
		panic(fmt.Sprintf("selection: primary index %d out of range for %d selections", primary, len(sels)))
	}

	type entry struct {
		sel     Selection
		primary bool
	}
	entries := make([]entry, len(sels))
	for i, sel := range sels {
		sel.assertValid(buf, sem)
		entries[i] = entry{sel: sel, primary: i == primary}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.sel.Range.Start - b.sel.Range.Start
	})

	out := make([]Selection, 0, len(entries))
	newPrimary := 0
	for _, e := range entries {
		if n := len(out); n > 0 && collide(out[n-1].Range, e.sel.Range) {
			merged := out[n-1]
			if e.primary {
				merged.Direction = e.sel.Direction
				merged.StoredLineOffset = e.sel.StoredLineOffset
				newPrimary = n - 1
			}
			out[n-1] = merged.withRange(merged.Range.Merge(e.sel.Range), buf, sem)
			continue
		}
		out = append(out, e.sel)
		if e.primary {
			newPrimary = len(out) - 1
		}
	}
	return Selections{inner: out, primary: newPrimary}
}

// collide reports whether two members of a set must merge. Ranges that
// share a start or an end, or that cross, collide. Ranges that only meet end
// to start do not, so cursors on adjacent graphemes stay apart.
func collide(a, b buffer.Range) bool {
	return a.Start == b.Start || a.End == b.End || (a.End > b.Start && b.End > a.Start)
}

// Single returns a set holding only sel.
func Single(sel Selection) Selections {
	return Selections{inner: []Selection{sel}}
}

// Len returns the number of selections.
func (s Selections) Len() int {
	return len(s.inner)
}

// Primary returns the primary selection.
func (s Selections) Primary() Selection {
	return s.inner[s.primary]
}

// PrimaryIndex returns the index of the primary selection.
func (s Selections) PrimaryIndex() int {
	return s.primary
}

// At returns the selection at index i.
func (s Selections) At(i int) Selection {
	return s.inner[i]
}

// All returns a copy of the selections in order.
func (s Selections) All() []Selection {
	return slices.Clone(s.inner)
}

// Equal reports whether both sets hold identical selections and primary.
func (s Selections) Equal(other Selections) bool {
	return s.primary == other.primary && slices.Equal(s.inner, other.inner)
}

// sameState compares ranges, directions and primary, ignoring stored
// line offsets.
func (s Selections) sameState(other Selections) bool {
	if s.primary != other.primary || len(s.inner) != len(other.inner) {
		return false
	}
	for i, sel := range s.inner {
		o := other.inner[i]
		if sel.Range != o.Range || sel.Direction != o.Direction {
			return false
		}
	}
	return true
}

// String returns the selections in order, marking the primary with '*'.
func (s Selections) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, sel := range s.inner {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i == s.primary {
			sb.WriteByte('*')
		}
		sb.WriteString(sel.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// With returns the set with the selection at i replaced. The result is not
// re-sorted; callers editing in index order call Normalize when done.
func (s Selections) With(i int, sel Selection) Selections {
	inner := slices.Clone(s.inner)
	inner[i] = sel
	return Selections{inner: inner, primary: s.primary}
}

// ShiftSubsequent shifts every selection after index i by delta characters.
func (s Selections) ShiftSubsequent(i, delta int) Selections {
	if delta == 0 {
		return s
	}
	inner := slices.Clone(s.inner)
	for j := i + 1; j < len(inner); j++ {
		inner[j] = inner[j].Shift(delta)
	}
	return Selections{inner: inner, primary: s.primary}
}

// Normalize re-sorts and merges the set against the current buffer.
func (s Selections) Normalize(buf *buffer.Buffer, sem Semantics) Selections {
	return New(s.inner, s.primary, buf, sem)
}

// IncrementPrimary makes the next selection primary, wrapping around.
func (s Selections) IncrementPrimary() (Selections, error) {
	if len(s.inner) == 1 {
		return s, ErrSingleSelection
	}
	s.primary = (s.primary + 1) % len(s.inner)
	return s, nil
}

// DecrementPrimary makes the previous selection primary, wrapping around.
func (s Selections) DecrementPrimary() (Selections, error) {
	if len(s.inner) == 1 {
		return s, ErrSingleSelection
	}
	s.primary = (s.primary + len(s.inner) - 1) % len(s.inner)
	return s, nil
}

// ClearNonPrimary keeps only the primary selection.
func (s Selections) ClearNonPrimary() (Selections, error) {
	if len(s.inner) == 1 {
		return s, ErrSingleSelection
	}
	return Single(s.Primary()), nil
}

// RemovePrimary drops the primary selection. The selection before it
// becomes primary, or the first one when the primary was first.
func (s Selections) RemovePrimary() (Selections, error) {
	if len(s.inner) == 1 {
		return s, ErrSingleSelection
	}
	inner := slices.Delete(slices.Clone(s.inner), s.primary, s.primary+1)
	return Selections{inner: inner, primary: max(s.primary-1, 0)}, nil
}
