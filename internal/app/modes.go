package app

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/input/mode"
)

// searchSession remembers the selections a search or split started from.
type searchSession struct {
	snapshot selection.Selections
	lastErr  error
}

// PushMode enters kind. Text entry modes start with an empty utility line;
// Find and Split also start a search session.
func (a *Application) PushMode(kind mode.Kind) {
	if kind.IsTextEntry() {
		a.util = ""
	}
	if kind == mode.Find || kind == mode.Split {
		a.BeginSearch()
	}
	a.modes.Push(mode.New(kind))
}

// PopMode leaves the current mode. Leaving Find or Split this way cancels
// the search.
func (a *Application) PopMode() error {
	if a.modes.IsMode(mode.Find, mode.Split) {
		a.CancelSearch()
	}
	return a.modes.Pop()
}

// ShowMessage enters a message mode carrying msg.
func (a *Application) ShowMessage(kind mode.Kind, msg string) {
	a.modes.Push(mode.WithMessage(kind, msg))
}

// UtilText returns the utility line being typed.
func (a *Application) UtilText() string {
	return a.util
}

// UtilInsert appends s to the utility line. In Find and Split modes the
// selections follow the pattern as it is typed.
func (a *Application) UtilInsert(s string) error {
	if !a.Mode().Kind.IsTextEntry() {
		return ErrInvalidInput
	}
	a.util += s
	a.utilChanged()
	return nil
}

// UtilBackspace removes the last character of the utility line.
func (a *Application) UtilBackspace() error {
	if !a.Mode().Kind.IsTextEntry() || a.util == "" {
		return ErrInvalidInput
	}
	_, size := utf8.DecodeLastRuneInString(a.util)
	a.util = a.util[:len(a.util)-size]
	a.utilChanged()
	return nil
}

func (a *Application) utilChanged() {
	switch a.Mode().Kind {
	case mode.Find:
		_ = a.SearchInSelections(a.util)
	case mode.Split:
		_ = a.SplitSelections(a.util)
	}
}

// UtilAccept finishes the utility line: Goto jumps, Find and Split keep
// their result, Command runs the command. The mode is left in every case.
func (a *Application) UtilAccept() error {
	kind := a.Mode().Kind
	text := a.util
	switch kind {
	case mode.Goto:
		_ = a.modes.Pop()
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("%w: line number %q", ErrInvalidInput, text)
		}
		return a.GotoLine(n)
	case mode.Find, mode.Split:
		a.utilChanged()
		err := a.AcceptSearch()
		_ = a.modes.Pop()
		return err
	case mode.Command:
		_ = a.modes.Pop()
		return a.ExecuteCommand(text)
	}
	return ErrInvalidInput
}

// UtilCancel abandons the utility line.
func (a *Application) UtilCancel() error {
	if !a.Mode().Kind.IsTextEntry() {
		return ErrInvalidInput
	}
	return a.PopMode()
}

// BeginSearch remembers the current selections as the base for
// SearchInSelections and SplitSelections.
func (a *Application) BeginSearch() {
	a.search = &searchSession{snapshot: a.sels}
}

// SearchInSelections selects every match of pattern inside the selections
// the session started with.
func (a *Application) SearchInSelections(pattern string) error {
	return a.searchWith("search", pattern, selection.Selections.Search)
}

// SplitSelections splits the selections the session started with at every
// match of pattern.
func (a *Application) SplitSelections(pattern string) error {
	return a.searchWith("split", pattern, selection.Selections.Split)
}

type searchFunc func(selection.Selections, *regexp.Regexp, *buffer.Buffer, selection.Semantics) (selection.Selections, error)

func (a *Application) searchWith(op, pattern string, f searchFunc) error {
	if a.search == nil {
		a.BeginSearch()
	}
	s := a.search
	a.sels = s.snapshot

	if pattern == "" {
		s.lastErr = selectionsError(op, selection.ErrNoSearchMatches)
		return s.lastErr
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		s.lastErr = fmt.Errorf("%w: %v", ErrInvalidInput, err)
		return s.lastErr
	}

	next, err := f(s.snapshot, re, a.buf, a.sem())
	if err != nil {
		s.lastErr = selectionsError(op, err)
		return s.lastErr
	}
	s.lastErr = nil
	a.sels = next
	return nil
}

// AcceptSearch ends the session. If the last pattern failed, the
// selections go back to the snapshot and its error is returned.
func (a *Application) AcceptSearch() error {
	s := a.search
	a.search = nil
	if s == nil {
		return nil
	}
	if s.lastErr != nil {
		a.sels = s.snapshot
	}
	return s.lastErr
}

// CancelSearch ends the session and restores the snapshot.
func (a *Application) CancelSearch() {
	if a.search != nil {
		a.sels = a.search.snapshot
		a.search = nil
	}
}
