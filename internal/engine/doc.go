// Package engine groups the text core of kestrel. It has no code of its
// own; the work is done by its sub-packages, each depending only on the
// ones above it:
//
//   - rope: persistent B+ tree of text chunks with character and line indexes
//   - buffer: a rope plus file path, read-only flag, grapheme queries and
//     the saved snapshot
//   - view: the visible window over a buffer
//   - selection: ranges with a direction, their motions, and sorted
//     non-overlapping selection sets
//   - history: undo and redo stacks of change sets
//   - tracking: diffs between the saved text and the current text
//
// The app package combines them into the editor state.
package engine
