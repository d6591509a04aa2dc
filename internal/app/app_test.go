package app

import (
	"errors"
	"testing"

	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/input/mode"
)

func newTestApp(t *testing.T, text string, sem selection.Semantics, opts ...buffer.Option) *Application {
	t.Helper()
	cfg := config.Default()
	cfg.Semantics = sem
	a, err := New(Options{Config: cfg, Buffer: buffer.NewFromString(text, opts...), Width: 80, Height: 24})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func rng(start, end int) buffer.Range {
	return buffer.Range{Start: start, End: end}
}

func setCursors(a *Application, primary int, at ...int) {
	sels := make([]selection.Selection, len(at))
	for i, c := range at {
		sels[i] = selection.NewCursor(c, a.Buffer(), a.Config().Semantics)
	}
	a.SetSelections(selection.New(sels, primary, a.Buffer(), a.Config().Semantics))
}

func setSelection(a *Application, start, end int, dir selection.Direction) {
	sel := selection.Selection{Range: rng(start, end), Direction: dir}
	a.SetSelections(selection.Single(sel))
}

func assertText(t *testing.T, a *Application, want string) {
	t.Helper()
	if got := a.Buffer().Text(); got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func assertRanges(t *testing.T, a *Application, want ...buffer.Range) {
	t.Helper()
	sels := a.Selections()
	if sels.Len() != len(want) {
		t.Fatalf("selections = %v, want %v", sels, want)
	}
	for i, r := range want {
		if got := sels.At(i).Range; got != r {
			t.Errorf("selection %d = %v, want %v", i, got, r)
		}
	}
}

func TestNew(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	assertRanges(t, a, rng(0, 1))
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}
	if a.ShouldQuit() {
		t.Error("new application should not quit")
	}

	cfg := config.Default()
	cfg.TabWidth = 0
	if _, err := New(Options{Config: cfg}); !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("New with bad config error = %v, want validation failure", err)
	}
}

func TestInsertAcrossTwoCursors(t *testing.T) {
	a := newTestApp(t, "some\nshit\n", selection.Block)
	setCursors(a, 0, 0, 5)

	if err := a.InsertString("x"); err != nil {
		t.Fatalf("InsertString: %v", err)
	}
	assertText(t, a, "xsome\nxshit\n")
	assertRanges(t, a, rng(1, 2), rng(7, 8))
	for i, sel := range a.Selections().All() {
		if sel.StoredLineOffset != selection.Offset(1) {
			t.Errorf("selection %d stored offset = %+v, want 1", i, sel.StoredLineOffset)
		}
	}
	if a.Selections().PrimaryIndex() != 0 {
		t.Errorf("primary = %d, want 0", a.Selections().PrimaryIndex())
	}
}

func TestInsertRejectsEmptyAndReadOnly(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	if err := a.InsertString(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("InsertString(\"\") error = %v, want ErrInvalidInput", err)
	}

	ro := newTestApp(t, "abc", selection.Block, buffer.WithReadOnly(true))
	if err := ro.InsertString("x"); !errors.Is(err, ErrReadOnlyBuffer) {
		t.Errorf("read-only insert error = %v, want ErrReadOnlyBuffer", err)
	}
	assertText(t, ro, "abc")
	if ro.History().CanUndo() {
		t.Error("failed insert should not be recorded")
	}
}

func TestInsertReplacesExtendedSelection(t *testing.T) {
	a := newTestApp(t, "hello world", selection.Bar)
	setSelection(a, 0, 5, selection.Forward)
	if err := a.InsertString("bye"); err != nil {
		t.Fatalf("InsertString: %v", err)
	}
	assertText(t, a, "bye world")
	assertRanges(t, a, rng(3, 3))
}

func TestInsertTab(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		hard   bool
		want   string
		after  int
	}{
		{"soft tab to next stop", "ab", 1, false, "a   b", 4},
		{"soft tab on a stop inserts a full tab", "ab", 0, false, "    ab", 4},
		{"soft tab one short of a stop", "abcd", 3, false, "abc d", 4},
		{"hard tab", "ab", 1, true, "a\tb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, tt.text, selection.Bar)
			a.cfg.UseHardTab = tt.hard
			setCursors(a, 0, tt.cursor)
			if err := a.InsertString("\t"); err != nil {
				t.Fatalf("InsertString: %v", err)
			}
			assertText(t, a, tt.want)
			assertRanges(t, a, rng(tt.after, tt.after))
		})
	}
}

func TestDelete(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	if err := a.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	assertText(t, a, "bc")
	assertRanges(t, a, rng(0, 1))

	setCursors(a, 0, 2)
	if err := a.Delete(); !errors.Is(err, ErrSelectionAtDocBounds) {
		t.Errorf("Delete at end error = %v, want ErrSelectionAtDocBounds", err)
	}
	assertText(t, a, "bc")
}

func TestDeleteSkipsCursorAtEnd(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	setCursors(a, 0, 0, 3)
	if err := a.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	assertText(t, a, "bc")
	assertRanges(t, a, rng(0, 1), rng(2, 3))
}

func TestDeleteKeepsAdjacentCursorsApart(t *testing.T) {
	a := newTestApp(t, "abcd\n", selection.Block)
	setCursors(a, 0, 0, 2)
	if err := a.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	assertText(t, a, "bd\n")
	assertRanges(t, a, rng(0, 1), rng(1, 2))

	if err := a.InsertString("x"); err != nil {
		t.Fatalf("InsertString: %v", err)
	}
	assertText(t, a, "xbxd\n")
	assertRanges(t, a, rng(1, 2), rng(3, 4))
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
		after  buffer.Range
	}{
		{"soft tab", "    idk", 4, "idk", rng(0, 1)},
		{"single grapheme", "abc", 2, "ac", rng(1, 2)},
		{"spaces off a tab stop", "   x", 3, "  x", rng(2, 3)},
		{"combining grapheme", "ae\u0301b", 3, "ab", rng(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, tt.text, selection.Block)
			setCursors(a, 0, tt.cursor)
			if err := a.Backspace(); err != nil {
				t.Fatalf("Backspace: %v", err)
			}
			assertText(t, a, tt.want)
			assertRanges(t, a, tt.after)
		})
	}
}

func TestBackspaceAtStart(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	if err := a.Backspace(); !errors.Is(err, ErrSelectionAtDocBounds) {
		t.Errorf("Backspace at start error = %v, want ErrSelectionAtDocBounds", err)
	}
	if a.History().CanUndo() {
		t.Error("failed backspace should not be recorded")
	}
}

func TestCutCopyPaste(t *testing.T) {
	a := newTestApp(t, "hello world", selection.Bar)
	setSelection(a, 0, 6, selection.Forward)

	if err := a.Cut(); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	assertText(t, a, "world")
	if a.Clipboard() != "hello " {
		t.Errorf("clipboard = %q, want %q", a.Clipboard(), "hello ")
	}
	assertRanges(t, a, rng(0, 0))

	if err := a.Paste(); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	assertText(t, a, "hello world")
	assertRanges(t, a, rng(6, 6))

	if err := a.Copy(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Copy of a bar cursor error = %v, want ErrInvalidInput", err)
	}

	setSelection(a, 6, 11, selection.Backward)
	if err := a.Copy(); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if a.Clipboard() != "world" {
		t.Errorf("clipboard = %q, want %q", a.Clipboard(), "world")
	}
	if a.History().UndoCount() != 2 {
		t.Errorf("undo count = %d, want 2", a.History().UndoCount())
	}
}

func TestCutBarCursorTakesDeletedGrapheme(t *testing.T) {
	a := newTestApp(t, "ae\u0301b", selection.Bar)
	setCursors(a, 0, 1)
	if err := a.Cut(); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	assertText(t, a, "ab")
	if a.Clipboard() != "e\u0301" {
		t.Errorf("clipboard = %q, want %q", a.Clipboard(), "e\u0301")
	}
	assertRanges(t, a, rng(1, 1))
}

func TestCutAndCopyNeedOneSelection(t *testing.T) {
	a := newTestApp(t, "ab\ncd", selection.Block)
	setCursors(a, 0, 0, 3)

	for name, f := range map[string]func() error{"cut": a.Cut, "copy": a.Copy} {
		err := f()
		if !errors.Is(err, selection.ErrMultipleSelections) {
			t.Errorf("%s error = %v, want ErrMultipleSelections", name, err)
		}
		var selErr *SelectionsError
		if !errors.As(err, &selErr) || selErr.Op != name {
			t.Errorf("%s error = %#v, want *SelectionsError for %q", name, err, name)
		}
	}
	assertText(t, a, "ab\ncd")
}

func TestPasteEmptyClipboard(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	if err := a.Paste(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Paste error = %v, want ErrInvalidInput", err)
	}
}

func TestAddSurround(t *testing.T) {
	a := newTestApp(t, "abc", selection.Bar)
	setSelection(a, 1, 2, selection.Forward)
	if err := a.AddSurround("(", ")"); err != nil {
		t.Fatalf("AddSurround: %v", err)
	}
	assertText(t, a, "a(b)c")
	assertRanges(t, a, rng(1, 4))
	if a.Selections().Primary().Direction != selection.Forward {
		t.Errorf("direction = %v, want forward", a.Selections().Primary().Direction)
	}

	b := newTestApp(t, "abc", selection.Block)
	if err := b.AddSurround("[", "]"); err != nil {
		t.Fatalf("AddSurround on block cursor: %v", err)
	}
	assertText(t, b, "[a]bc")
	assertRanges(t, b, rng(0, 3))

	c := newTestApp(t, "ab", selection.Block)
	setCursors(c, 0, 2)
	if err := c.AddSurround("(", ")"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AddSurround at end error = %v, want ErrInvalidInput", err)
	}
}

func TestUndoRestoresSelections(t *testing.T) {
	a := newTestApp(t, "some\nshit\n", selection.Block)
	setCursors(a, 0, 0, 5)
	initial := a.Selections()

	if err := a.InsertString("x"); err != nil {
		t.Fatalf("InsertString: %v", err)
	}
	edited := a.Selections()

	if err := a.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	assertText(t, a, "some\nshit\n")
	if !a.Selections().Equal(initial) {
		t.Errorf("after undo selections = %v, want %v", a.Selections(), initial)
	}

	if err := a.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	assertText(t, a, "xsome\nxshit\n")
	if !a.Selections().Equal(edited) {
		t.Errorf("after redo selections = %v, want %v", a.Selections(), edited)
	}

	if err := a.Redo(); !errors.Is(err, ErrNoChangesToRedo) {
		t.Errorf("second Redo error = %v, want ErrNoChangesToRedo", err)
	}
}

func TestUndoWithoutHistory(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	if err := a.Undo(); !errors.Is(err, ErrNoChangesToUndo) {
		t.Errorf("Undo error = %v, want ErrNoChangesToUndo", err)
	}
}

func TestEditsThenUndosRestoreState(t *testing.T) {
	for _, sem := range []selection.Semantics{selection.Bar, selection.Block} {
		t.Run(sem.String(), func(t *testing.T) {
			a := newTestApp(t, "some\nshit\n", sem)
			setCursors(a, 0, 1, 6)
			initial := a.Selections()

			edits := []func() error{
				func() error { return a.InsertString("x") },
				a.Backspace,
				func() error { return a.InsertString("\t") },
				a.Delete,
				func() error { return a.AddSurround("<", ">") },
			}
			for i, edit := range edits {
				if err := edit(); err != nil {
					t.Fatalf("edit %d: %v", i, err)
				}
			}
			for range edits {
				if err := a.Undo(); err != nil {
					t.Fatalf("Undo: %v", err)
				}
			}
			assertText(t, a, "some\nshit\n")
			if !a.Selections().Equal(initial) {
				t.Errorf("selections = %v, want %v", a.Selections(), initial)
			}
			if a.IsModified() {
				t.Error("buffer back at its saved text should not be modified")
			}
		})
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	_ = a.InsertString("x")
	_ = a.Undo()
	_ = a.InsertString("y")
	if err := a.Redo(); !errors.Is(err, ErrNoChangesToRedo) {
		t.Errorf("Redo after new edit error = %v, want ErrNoChangesToRedo", err)
	}
	assertText(t, a, "yabc")
}
