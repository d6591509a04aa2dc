package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// Kind identifies the shape of an edit.
type Kind uint8

const (
	// NoOp changes nothing.
	NoOp Kind = iota

	// Insert adds text at Range.Start.
	Insert

	// Delete removes the text in Range.
	Delete

	// Replace swaps the text in Range for new text.
	Replace
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "noop"
	}
}

// Operation represents a single undoable edit.
// It captures all information needed to apply or invert the edit.
type Operation struct {
	Kind    Kind
	Range   buffer.Range // Range that is modified, before the edit
	OldText string       // Text in Range before the edit
	NewText string       // Text in its place after the edit
}

// NewInsert creates an operation inserting text at offset.
func NewInsert(offset int, text string) Operation {
	return Operation{
		Kind:    Insert,
		Range:   buffer.Range{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an operation removing deleted from r.
func NewDelete(r buffer.Range, deleted string) Operation {
	return Operation{Kind: Delete, Range: r, OldText: deleted}
}

// NewReplace creates an operation replacing oldText in r with newText.
func NewReplace(r buffer.Range, oldText, newText string) Operation {
	return Operation{Kind: Replace, Range: r, OldText: oldText, NewText: newText}
}

// NewNoOp creates an operation that changes nothing at offset.
func NewNoOp(offset int) Operation {
	return Operation{Kind: NoOp, Range: buffer.Range{Start: offset, End: offset}}
}

// String returns a compact description such as `insert [3:3) "x"`.
func (op Operation) String() string {
	switch op.Kind {
	case Insert:
		return fmt.Sprintf("insert %s %q", op.Range, op.NewText)
	case Delete:
		return fmt.Sprintf("delete %s", op.Range)
	case Replace:
		return fmt.Sprintf("replace %s %q", op.Range, op.NewText)
	}
	return "noop"
}

// Delta returns the change in document length in characters.
func (op Operation) Delta() int {
	return utf8.RuneCountInString(op.NewText) - op.Range.Len()
}

// NewRange returns the range of the text after the operation.
func (op Operation) NewRange() buffer.Range {
	return buffer.Range{
		Start: op.Range.Start,
		End:   op.Range.Start + utf8.RuneCountInString(op.NewText),
	}
}

// Invert returns an operation that undoes this one. Inserts invert to
// deletes of the inserted text and deletes to inserts of the removed text.
func (op Operation) Invert() Operation {
	switch op.Kind {
	case Insert:
		return NewDelete(op.NewRange(), op.NewText)
	case Delete:
		return NewInsert(op.Range.Start, op.OldText)
	case Replace:
		return NewReplace(op.NewRange(), op.NewText, op.OldText)
	}
	return op
}

// Shift returns the operation moved by delta characters.
func (op Operation) Shift(delta int) Operation {
	op.Range = op.Range.Shift(delta)
	return op
}

// Apply performs the operation on buf.
func (op Operation) Apply(buf *buffer.Buffer) error {
	switch op.Kind {
	case Insert:
		return buf.Insert(op.Range.Start, op.NewText)
	case Delete:
		return buf.Remove(op.Range.Start, op.Range.End)
	case Replace:
		if err := buf.Remove(op.Range.Start, op.Range.End); err != nil {
			return err
		}
		return buf.Insert(op.Range.Start, op.NewText)
	}
	return nil
}
