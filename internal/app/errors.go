package app

import (
	"errors"
	"fmt"

	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/history"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/engine/view"
)

// Application errors.
var (
	// ErrSelectionAtDocBounds indicates a single selection cannot move or
	// delete past the start or end of the buffer.
	ErrSelectionAtDocBounds = errors.New("selection at document bounds")

	// ErrInvalidInput indicates an argument the operation cannot use.
	ErrInvalidInput = errors.New("invalid input")

	// ErrReadOnlyBuffer indicates an edit was attempted on a read-only buffer.
	ErrReadOnlyBuffer = errors.New("buffer is read only")

	// ErrFileIsModified indicates quitting would lose unsaved changes.
	ErrFileIsModified = errors.New("file has unsaved changes")

	// ErrNoFilePath indicates the buffer has no file to save to.
	ErrNoFilePath = errors.New("buffer has no file name")

	// ErrNoChangesToUndo and ErrNoChangesToRedo come from the history.
	ErrNoChangesToUndo = history.ErrNoChangesToUndo
	ErrNoChangesToRedo = history.ErrNoChangesToRedo
)

// SelectionsError wraps a failure of a selection operation.
type SelectionsError struct {
	Op  string
	Err error
}

func (e *SelectionsError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SelectionsError) Unwrap() error {
	return e.Err
}

// ViewError wraps a failure of a view operation.
type ViewError struct {
	Op  string
	Err error
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// IOError wraps a file system failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func selectionsError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &SelectionsError{Op: op, Err: err}
}

func viewError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ViewError{Op: op, Err: err}
}

// classes pairs sentinels with their error class. Order matters: the first
// match wins.
var classes = []struct {
	err   error
	class config.ErrorClass
}{
	{selection.ErrResultsInSameState, config.ClassSameState},
	{view.ErrResultsInSameState, config.ClassSameState},
	{ErrSelectionAtDocBounds, config.ClassDocBounds},
	{selection.ErrSingleSelection, config.ClassSingleSelection},
	{selection.ErrMultipleSelections, config.ClassMultipleSelections},
	{selection.ErrSpansMultipleLines, config.ClassSpansMultipleLines},
	{selection.ErrDirectionMismatch, config.ClassDirectionMismatch},
	{selection.ErrNoOverlap, config.ClassNoOverlap},
	{selection.ErrCannotAddSelectionAbove, config.ClassCannotAddAbove},
	{selection.ErrCannotAddSelectionBelow, config.ClassCannotAddBelow},
	{selection.ErrNoSearchMatches, config.ClassNoSearchMatches},
	{ErrReadOnlyBuffer, config.ClassReadOnly},
	{buffer.ErrReadOnly, config.ClassReadOnly},
	{ErrNoChangesToUndo, config.ClassNoUndo},
	{ErrNoChangesToRedo, config.ClassNoRedo},
	{ErrFileIsModified, config.ClassFileModified},
	{ErrInvalidInput, config.ClassInvalidInput},
	{view.ErrInvalidInput, config.ClassInvalidInput},
	{ErrNoFilePath, config.ClassInvalidInput},
}

// ClassifyError maps err to the class its display policy is keyed by.
func ClassifyError(err error) config.ErrorClass {
	for _, c := range classes {
		if errors.Is(err, c.err) {
			return c.class
		}
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return config.ClassIO
	}
	return config.ClassOther
}
