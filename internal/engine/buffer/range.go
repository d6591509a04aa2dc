package buffer

import "fmt"

// Range is a half-open interval [Start, End) of character indices.
type Range struct {
	Start int
	End   int
}

// NewRange creates a Range. It panics if start > end, which is always a
// programming error.
func NewRange(start, end int) Range {
	if start > end {
		panic(fmt.Sprintf("buffer: invalid range [%d:%d)", start, end))
	}
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the number of characters in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Overlaps reports whether the ranges touch or cross. A shared endpoint counts.
func (r Range) Overlaps(other Range) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// Contains reports whether Start <= i <= End.
func (r Range) Contains(i int) bool {
	return r.Start <= i && i <= r.End
}

// Intersection returns the overlap of two ranges, or false if they are disjoint.
func (r Range) Intersection(other Range) (Range, bool) {
	if !r.Overlaps(other) {
		return Range{}, false
	}
	return Range{Start: max(r.Start, other.Start), End: min(r.End, other.End)}, true
}

// Merge returns [min(starts), max(ends)) whether or not the ranges overlap.
func (r Range) Merge(other Range) Range {
	return Range{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

// Shift returns the range moved by delta characters.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}
