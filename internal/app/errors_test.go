package app

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/engine/view"
	"github.com/dshills/kestrel/internal/input/mode"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want config.ErrorClass
	}{
		{selectionsError("move_left", selection.ErrResultsInSameState), config.ClassSameState},
		{viewError("scroll_up", view.ErrResultsInSameState), config.ClassSameState},
		{ErrSelectionAtDocBounds, config.ClassDocBounds},
		{selectionsError("cut", selection.ErrMultipleSelections), config.ClassMultipleSelections},
		{selectionsError("remove_primary", selection.ErrSingleSelection), config.ClassSingleSelection},
		{selectionsError("add_selection_above", selection.ErrCannotAddSelectionAbove), config.ClassCannotAddAbove},
		{selectionsError("search", selection.ErrNoSearchMatches), config.ClassNoSearchMatches},
		{ErrReadOnlyBuffer, config.ClassReadOnly},
		{buffer.ErrReadOnly, config.ClassReadOnly},
		{ErrNoChangesToUndo, config.ClassNoUndo},
		{ErrNoChangesToRedo, config.ClassNoRedo},
		{ErrFileIsModified, config.ClassFileModified},
		{fmt.Errorf("%w: unknown command", ErrInvalidInput), config.ClassInvalidInput},
		{viewError("scroll_down", view.ErrInvalidInput), config.ClassInvalidInput},
		{&IOError{Op: "save", Path: "x", Err: os.ErrPermission}, config.ClassIO},
		{errors.New("something else"), config.ClassOther},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.want {
				t.Errorf("ClassifyError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := &IOError{Op: "save", Path: "/tmp/f", Err: os.ErrPermission}
	if got, want := err.Error(), "save /tmp/f: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("IOError should unwrap to its cause")
	}
	if got := selectionsError("cut", selection.ErrMultipleSelections).Error(); got != "cut: more than one selection" {
		t.Errorf("SelectionsError = %q", got)
	}
	if selectionsError("x", nil) != nil || viewError("x", nil) != nil {
		t.Error("wrapping nil should give nil")
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want mode.Kind
	}{
		{"ignored", selectionsError("move_left", selection.ErrResultsInSameState), mode.Insert},
		{"warning", ErrSelectionAtDocBounds, mode.Warning},
		{"error", ErrReadOnlyBuffer, mode.Error},
		{"nil", nil, mode.Insert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, "abc", selection.Block)
			a.ReportError(tt.err)
			if a.Mode().Kind != tt.want {
				t.Errorf("mode = %v, want %v", a.Mode(), tt.want)
			}
			if tt.want != mode.Insert && a.Message() != tt.err.Error() {
				t.Errorf("message = %q, want %q", a.Message(), tt.err.Error())
			}
		})
	}
}

func TestReportErrorHonorsDisplayPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Display[config.ClassNoUndo] = config.DisplayInfo
	cfg.Display[config.ClassDocBounds] = config.DisplayIgnore
	a, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a.ReportError(a.Backspace())
	if a.Mode().Kind != mode.Insert {
		t.Errorf("ignored class changed mode to %v", a.Mode())
	}
	a.ReportError(a.Undo())
	if a.Mode().Kind != mode.Info {
		t.Errorf("mode = %v, want info", a.Mode())
	}

	a.ReportError(ErrReadOnlyBuffer)
	if a.Mode().Kind != mode.Error || a.Modes().StackDepth() != 1 {
		t.Errorf("second message should replace the first: mode %v, depth %d", a.Mode(), a.Modes().StackDepth())
	}
}
