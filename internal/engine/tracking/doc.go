// Package tracking compares buffer text against a saved snapshot.
//
// The editor keeps the rope it last saved. Because ropes are immutable and
// share structure, holding that snapshot is O(1), and this package turns the
// pair into a line-level diff:
//
//	result, err := tracking.ComputeLineDiff(buf.Saved(), buf.Rope(), tracking.DefaultDiffOptions())
//	fmt.Println(result.Summary()) // "2 lines added, 1 line removed"
//
// Lines are compared whole. Each distinct line is interned as one symbol and
// the symbol sequences are diffed, so an inserted line never shows up as a
// changed neighbour.
//
// UnifiedDiff renders the same comparison in the standard unified format.
package tracking
