package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/kestrel/internal/engine/tracking"
	"github.com/dshills/kestrel/internal/input/mode"
)

// Save writes the buffer to its file and marks it saved.
func (a *Application) Save() error {
	path := a.buf.FilePath()
	if path == "" {
		return ErrNoFilePath
	}
	return a.writeTo(path)
}

// SaveAs writes the buffer to path and makes path its file.
func (a *Application) SaveAs(path string) error {
	if path == "" {
		return ErrNoFilePath
	}
	if err := a.writeTo(path); err != nil {
		return err
	}
	a.buf.SetFilePath(path)
	return nil
}

// writeTo writes through a temporary file in the same directory and renames
// it into place.
func (a *Application) writeTo(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return &IOError{Op: "save", Path: path, Err: err}
	}

	w := bufio.NewWriter(tmp)
	if _, err := a.buf.WriteTo(w); err != nil {
		return cleanup(err)
	}
	if err := w.Flush(); err != nil {
		return cleanup(err)
	}
	if info, err := os.Stat(path); err == nil {
		_ = tmp.Chmod(info.Mode().Perm())
	} else {
		_ = tmp.Chmod(0o644)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return &IOError{Op: "save", Path: path, Err: err}
	}

	a.buf.MarkSaved()
	a.logger.WithComponent("file").Info("wrote %s (%d lines)", path, a.buf.LenLines())
	a.ShowMessage(mode.Info, fmt.Sprintf("%q %dL written", a.displayName(path), a.buf.LenLines()))
	return nil
}

// Quit asks to exit. It fails with ErrFileIsModified when there are unsaved
// changes.
func (a *Application) Quit() error {
	if a.buf.IsModified() {
		return ErrFileIsModified
	}
	a.quit = true
	return nil
}

// QuitIgnoringChanges exits even with unsaved changes.
func (a *Application) QuitIgnoringChanges() {
	a.quit = true
}

// DiffSinceSave compares the buffer with its last saved text.
func (a *Application) DiffSinceSave() tracking.DiffResult {
	return tracking.ComputeLineDiff(a.buf.Saved(), a.buf.Rope(), tracking.DefaultDiffOptions())
}

// UnifiedDiffSinceSave renders DiffSinceSave as a unified diff.
func (a *Application) UnifiedDiffSinceSave() (string, error) {
	name := a.FileName()
	return tracking.UnifiedDiff(a.DiffSinceSave(), name+" (saved)", name, tracking.DefaultDiffOptions().ContextLines)
}
