package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/kestrel/internal/engine/history"
	"github.com/dshills/kestrel/internal/input/mode"
)

// ExecuteCommand runs a command line typed in Command mode.
//
//	w [path]   save, optionally under a new name
//	q          quit unless modified
//	q!         quit discarding changes
//	wq         save and quit
//	x          save if modified, then quit
//	<n>        go to line n
//	diff       summarize changes since the last save
//	undo, redo
//	history    show the next undo and redo entries
//	stats      show action timings
func (a *Application) ExecuteCommand(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ErrInvalidInput
	}
	name, args := fields[0], fields[1:]
	a.logger.WithComponent("command").Debug("execute %q", line)

	if n, err := strconv.Atoi(name); err == nil && len(args) == 0 {
		return a.GotoLine(n)
	}

	switch name {
	case "w", "write":
		switch len(args) {
		case 0:
			return a.Save()
		case 1:
			return a.SaveAs(args[0])
		}
	case "q", "quit":
		if len(args) == 0 {
			return a.Quit()
		}
	case "q!", "quit!":
		if len(args) == 0 {
			a.QuitIgnoringChanges()
			return nil
		}
	case "wq":
		if len(args) == 0 {
			if err := a.Save(); err != nil {
				return err
			}
			return a.Quit()
		}
	case "x":
		if len(args) == 0 {
			if a.IsModified() {
				if err := a.Save(); err != nil {
					return err
				}
			}
			return a.Quit()
		}
	case "diff":
		if len(args) == 0 {
			a.ShowMessage(mode.Info, a.DiffSinceSave().Summary())
			return nil
		}
	case "undo":
		if len(args) == 0 {
			return a.Undo()
		}
	case "redo":
		if len(args) == 0 {
			return a.Redo()
		}
	case "history":
		if len(args) == 0 {
			a.ShowMessage(mode.Info, a.historySummary())
			return nil
		}
	case "stats":
		if len(args) == 0 {
			a.ShowMessage(mode.Info, a.metrics.Snapshot().String())
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown command %q", ErrInvalidInput, name)
	}
	return fmt.Errorf("%w: bad arguments to %q", ErrInvalidInput, name)
}

// historySummary describes the entries the next undo and redo would apply.
func (a *Application) historySummary() string {
	describe := func(label string, count int, info history.Info, ok bool) string {
		if !ok {
			return label + ": none"
		}
		return fmt.Sprintf("%s (%d): %s", label, count, info.Description)
	}
	undo, canUndo := a.history.PeekUndo()
	redo, canRedo := a.history.PeekRedo()
	return describe("undo", a.history.UndoCount(), undo, canUndo) + " | " +
		describe("redo", a.history.RedoCount(), redo, canRedo)
}
