// Package history provides undo/redo functionality for the editing engine.
//
// # Operations
//
// An Operation is a single text edit against the buffer: Insert, Delete,
// Replace or NoOp. It records the affected range and the text on both sides
// of the edit, so it can be applied and inverted.
//
// # Changes and Change Sets
//
// A Change pairs an Operation with its inverse and the selection before and
// after it. A ChangeSet groups one Change per selection for a single user
// action, plus the whole selection set before and after:
//
//	cs := history.NewChangeSet("insert", changes, before, after)
//	h.Record(cs)
//
// Changes are stored in ascending selection order. Each operation's range
// is expressed after the earlier changes of the same set were applied.
//
// # History Stack
//
// The History type manages the undo and redo stacks:
//
//	h := history.New(1000) // keep at most 1000 change sets; 0 is unbounded
//
//	cs, err := h.Undo(buf) // restore cs.SelectionsBefore
//	cs, err = h.Redo(buf)  // restore cs.SelectionsAfter
//
// Recording a new change set clears the redo stack.
package history
