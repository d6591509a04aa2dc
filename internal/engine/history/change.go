package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/selection"
)

// Change is one selection's part of an edit.
type Change struct {
	Operation       Operation
	Inverse         Operation
	SelectionBefore selection.Selection
	SelectionAfter  selection.Selection
}

// NewChange records op together with its inverse.
func NewChange(op Operation, before, after selection.Selection) Change {
	return Change{
		Operation:       op,
		Inverse:         op.Invert(),
		SelectionBefore: before,
		SelectionAfter:  after,
	}
}

// ChangeSet is the atomic unit of undo and redo: one Change per selection
// plus the selection set on either side of the edit.
type ChangeSet struct {
	ID               uuid.UUID
	Name             string
	Changes          []Change
	SelectionsBefore selection.Selections
	SelectionsAfter  selection.Selections
	Timestamp        time.Time
}

// NewChangeSet creates a change set with a fresh ID.
func NewChangeSet(name string, changes []Change, before, after selection.Selections) *ChangeSet {
	return &ChangeSet{
		ID:               uuid.New(),
		Name:             name,
		Changes:          changes,
		SelectionsBefore: before,
		SelectionsAfter:  after,
		Timestamp:        time.Now(),
	}
}

// Delta returns the total change in document length.
func (cs *ChangeSet) Delta() int {
	total := 0
	for _, c := range cs.Changes {
		total += c.Operation.Delta()
	}
	return total
}

// Description summarizes the change set for logs and status messages.
func (cs *ChangeSet) Description() string {
	return fmt.Sprintf("%s: %d change(s), %+d chars [%s]", cs.Name, len(cs.Changes), cs.Delta(), cs.ID.String()[:8])
}

// undo applies the inverses in order. Each inverse is shifted by the length
// already given back by the earlier ones.
func (cs *ChangeSet) undo(buf *buffer.Buffer) error {
	shift := 0
	for _, c := range cs.Changes {
		inv := c.Inverse.Shift(shift)
		if err := inv.Apply(buf); err != nil {
			return err
		}
		shift += inv.Delta()
	}
	return nil
}

// redo applies the operations in order. Their ranges were recorded after
// the earlier changes took effect, so no shift is needed.
func (cs *ChangeSet) redo(buf *buffer.Buffer) error {
	for _, c := range cs.Changes {
		if err := c.Operation.Apply(buf); err != nil {
			return err
		}
	}
	return nil
}
