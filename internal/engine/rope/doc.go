// Package rope provides an immutable rope for editor text storage.
//
// A rope is a B+ tree whose leaves hold bounded UTF-8 chunks and whose internal
// nodes cache aggregated metrics (bytes, characters, newlines). Every public
// position is a character (rune) index, which is the unit the editing engine
// works in; byte offsets only appear at the edges where text is sliced.
//
// Key features:
//   - O(log n) character, line and byte lookups via cached summaries
//   - Immutable operations return new ropes; originals are never modified
//   - Copy-on-write semantics make snapshots free
//   - Safe for concurrent read access
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")    // "hello, world"
//	r = r.Delete(0, 7)      // "world"
//	line := r.CharToLine(3) // 0
package rope
