package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/input/mode"
)

func TestSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	a := newTestApp(t, "hello\n", selection.Block)
	_ = a.InsertString("x")

	if err := a.ExecuteCommand("w " + path); err != nil {
		t.Fatalf("w %s: %v", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "xhello\n" {
		t.Errorf("file = %q, want %q", data, "xhello\n")
	}
	if a.IsModified() {
		t.Error("buffer should be unmodified after save")
	}
	if a.Buffer().FilePath() != path {
		t.Errorf("file path = %q, want %q", a.Buffer().FilePath(), path)
	}
	if a.Mode().Kind != mode.Info || !strings.Contains(a.Message(), "notes.txt") {
		t.Errorf("mode = %v, want info naming the file", a.Mode())
	}
}

func TestSaveKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("old"), 0o750); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, "new", selection.Block)
	a.Buffer().SetFilePath(path)
	if err := a.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o750 {
		t.Errorf("mode = %v, want 0750", info.Mode().Perm())
	}
}

func TestSaveErrors(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	if err := a.Save(); !errors.Is(err, ErrNoFilePath) {
		t.Errorf("Save without path error = %v, want ErrNoFilePath", err)
	}

	bad := filepath.Join(t.TempDir(), "missing", "file.txt")
	err := a.SaveAs(bad)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Path != bad {
		t.Fatalf("SaveAs into a missing directory error = %v, want *IOError", err)
	}
	if ClassifyError(err) != config.ClassIO {
		t.Errorf("class = %v, want io", ClassifyError(err))
	}
	if a.Buffer().FilePath() != "" {
		t.Errorf("failed SaveAs set file path to %q", a.Buffer().FilePath())
	}
}

func TestQuitCommands(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	_ = a.InsertString("x")

	if err := a.ExecuteCommand("q"); !errors.Is(err, ErrFileIsModified) {
		t.Errorf("q error = %v, want ErrFileIsModified", err)
	}
	if a.ShouldQuit() {
		t.Fatal("q on a modified buffer should not quit")
	}
	if err := a.ExecuteCommand("q!"); err != nil {
		t.Fatalf("q!: %v", err)
	}
	if !a.ShouldQuit() {
		t.Error("q! should quit")
	}
}

func TestWriteQuitCommands(t *testing.T) {
	for _, cmd := range []string{"wq", "x"} {
		t.Run(cmd, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.txt")
			a := newTestApp(t, "abc", selection.Block)
			a.Buffer().SetFilePath(path)
			_ = a.InsertString("x")

			if err := a.ExecuteCommand(cmd); err != nil {
				t.Fatalf("%s: %v", cmd, err)
			}
			if !a.ShouldQuit() {
				t.Errorf("%s should quit", cmd)
			}
			if data, _ := os.ReadFile(path); string(data) != "xabc" {
				t.Errorf("file = %q, want %q", data, "xabc")
			}
		})
	}
}

func TestExecuteCommand(t *testing.T) {
	a := newTestApp(t, "a\nb\nc", selection.Bar)

	if err := a.ExecuteCommand("3"); err != nil {
		t.Fatalf("3: %v", err)
	}
	assertRanges(t, a, rng(4, 4))

	_ = a.InsertString("z")
	if err := a.ExecuteCommand("undo"); err != nil {
		t.Fatalf("undo: %v", err)
	}
	assertText(t, a, "a\nb\nc")
	if err := a.ExecuteCommand("redo"); err != nil {
		t.Fatalf("redo: %v", err)
	}
	assertText(t, a, "a\nb\nzc")

	if err := a.ExecuteCommand("diff"); err != nil {
		t.Fatalf("diff: %v", err)
	}
	if a.Mode().Kind != mode.Info || a.Message() != "1 line added, 1 line removed" {
		t.Errorf("diff shows %v", a.Mode())
	}

	if err := a.ExecuteCommand("stats"); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if a.Mode().Kind != mode.Info || !strings.Contains(a.Message(), "actions") {
		t.Errorf("stats shows %v", a.Mode())
	}
}

func TestHistoryCommand(t *testing.T) {
	a := newTestApp(t, "abc", selection.Bar)
	if err := a.ExecuteCommand("history"); err != nil {
		t.Fatalf("history: %v", err)
	}
	if got := a.Message(); got != "undo: none | redo: none" {
		t.Errorf("empty history shows %q", got)
	}

	_ = a.InsertString("x")
	_ = a.InsertString("y")
	if err := a.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if err := a.ExecuteCommand("history"); err != nil {
		t.Fatalf("history: %v", err)
	}
	msg := a.Message()
	if !strings.HasPrefix(msg, "undo (1): insert: 1 change(s), +1 chars") {
		t.Errorf("undo part of %q", msg)
	}
	if !strings.Contains(msg, "| redo (1): insert: 1 change(s), +1 chars") {
		t.Errorf("redo part of %q", msg)
	}
	if err := a.ExecuteCommand("history now"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("history with arguments error = %v, want ErrInvalidInput", err)
	}
}

func TestExecuteCommandRejects(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	for _, line := range []string{"", "   ", "frobnicate", "w a b", "q now", "diff x"} {
		if err := a.ExecuteCommand(line); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ExecuteCommand(%q) error = %v, want ErrInvalidInput", line, err)
		}
	}
	if a.ShouldQuit() {
		t.Error("rejected commands should not quit")
	}
}

func TestDiffSinceSave(t *testing.T) {
	a := newTestApp(t, "one\ntwo\n", selection.Block)
	if a.DiffSinceSave().HasChanges() {
		t.Error("fresh buffer should have no changes")
	}
	_ = a.InsertString("x")

	diff, err := a.UnifiedDiffSinceSave()
	if err != nil {
		t.Fatalf("UnifiedDiffSinceSave: %v", err)
	}
	if !strings.Contains(diff, "-one") || !strings.Contains(diff, "+xone") {
		t.Errorf("diff missing changed line:\n%s", diff)
	}
}
