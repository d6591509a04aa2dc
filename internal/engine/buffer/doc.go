// Package buffer provides the document text of the editor, indexed by
// character rather than byte.
//
// The buffer package provides:
//
//   - Character-indexed access over an immutable rope
//   - Line and character conversion
//   - Grapheme-cluster boundaries and columns (Unicode extended grapheme
//     clusters via uniseg)
//   - Word-boundary queries
//   - File path, read-only flag and modified tracking against the last save
//   - Range, the half-open interval every selection is built on
//
// Basic usage:
//
//	buf := buffer.NewFromString("Hello, World!")
//	_ = buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//	_ = buf.Remove(0, 7)             // "Beautiful World!"
//
// Lines end at '\n'. A "\r\n" pair is one grapheme and is treated as the line
// terminator, so text is kept exactly as read.
//
// A Buffer is owned by a single goroutine. Ropes are immutable, so Rope()
// hands out a snapshot that is safe to read elsewhere.
package buffer
