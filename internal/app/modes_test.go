package app

import (
	"errors"
	"testing"

	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/input/mode"
)

func typeUtil(t *testing.T, a *Application, s string) {
	t.Helper()
	for _, r := range s {
		if err := a.UtilInsert(string(r)); err != nil {
			t.Fatalf("UtilInsert(%q): %v", r, err)
		}
	}
}

func TestIncrementalSearch(t *testing.T) {
	a := newTestApp(t, "foo boo", selection.Bar)
	if err := a.SelectAll(); err != nil {
		t.Fatalf("SelectAll: %v", err)
	}

	a.PushMode(mode.Find)
	typeUtil(t, a, "o+")
	if a.UtilText() != "o+" {
		t.Errorf("util text = %q, want %q", a.UtilText(), "o+")
	}
	assertRanges(t, a, rng(1, 3), rng(5, 7))

	if err := a.UtilAccept(); err != nil {
		t.Fatalf("UtilAccept: %v", err)
	}
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}
	assertRanges(t, a, rng(1, 3), rng(5, 7))
}

func TestSearchFollowsBackspace(t *testing.T) {
	a := newTestApp(t, "foo boo", selection.Bar)
	_ = a.SelectAll()
	a.PushMode(mode.Find)
	typeUtil(t, a, "b")
	assertRanges(t, a, rng(4, 5))

	if err := a.UtilBackspace(); err != nil {
		t.Fatalf("UtilBackspace: %v", err)
	}
	assertRanges(t, a, rng(0, 7))
	if err := a.UtilBackspace(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("UtilBackspace on empty line error = %v, want ErrInvalidInput", err)
	}
}

func TestSearchCancelRestores(t *testing.T) {
	a := newTestApp(t, "foo boo", selection.Bar)
	_ = a.SelectAll()
	a.PushMode(mode.Find)
	typeUtil(t, a, "o+")

	if err := a.UtilCancel(); err != nil {
		t.Fatalf("UtilCancel: %v", err)
	}
	assertRanges(t, a, rng(0, 7))
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}
}

func TestSearchAcceptReportsFailure(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"bad pattern", "(", ErrInvalidInput},
		{"no match", "z", selection.ErrNoSearchMatches},
		{"empty pattern", "", selection.ErrNoSearchMatches},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, "foo boo", selection.Bar)
			_ = a.SelectAll()
			a.PushMode(mode.Find)
			typeUtil(t, a, tt.pattern)
			if err := a.UtilAccept(); !errors.Is(err, tt.want) {
				t.Errorf("UtilAccept error = %v, want %v", err, tt.want)
			}
			assertRanges(t, a, rng(0, 7))
			if a.Mode().Kind != mode.Insert {
				t.Errorf("mode = %v, want insert", a.Mode())
			}
		})
	}
}

func TestSplitSelections(t *testing.T) {
	a := newTestApp(t, "foo boo", selection.Bar)
	_ = a.SelectAll()
	a.PushMode(mode.Split)
	typeUtil(t, a, " ")
	if err := a.UtilAccept(); err != nil {
		t.Fatalf("UtilAccept: %v", err)
	}
	assertRanges(t, a, rng(0, 3), rng(4, 7))
}

func TestSearchWithoutMode(t *testing.T) {
	a := newTestApp(t, "one two one", selection.Bar)
	_ = a.SelectAll()
	a.BeginSearch()
	if err := a.SearchInSelections("one"); err != nil {
		t.Fatalf("SearchInSelections: %v", err)
	}
	assertRanges(t, a, rng(0, 3), rng(8, 11))
	if err := a.AcceptSearch(); err != nil {
		t.Errorf("AcceptSearch: %v", err)
	}
}

func TestGotoMode(t *testing.T) {
	a := newTestApp(t, "a\nb\nc", selection.Bar)
	a.PushMode(mode.Goto)
	typeUtil(t, a, "2")
	if err := a.UtilAccept(); err != nil {
		t.Fatalf("UtilAccept: %v", err)
	}
	assertRanges(t, a, rng(2, 2))

	a.PushMode(mode.Goto)
	typeUtil(t, a, "x")
	if err := a.UtilAccept(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("goto %q error = %v, want ErrInvalidInput", "x", err)
	}
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}
}

func TestCommandMode(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	a.PushMode(mode.Command)
	typeUtil(t, a, "q")
	if err := a.UtilAccept(); err != nil {
		t.Fatalf("UtilAccept: %v", err)
	}
	if !a.ShouldQuit() {
		t.Error("q on an unmodified buffer should quit")
	}
}

func TestUtilOutsideTextEntry(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	if err := a.UtilInsert("x"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("UtilInsert in insert mode error = %v, want ErrInvalidInput", err)
	}
	if err := a.UtilAccept(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("UtilAccept in insert mode error = %v, want ErrInvalidInput", err)
	}
	if err := a.UtilCancel(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("UtilCancel in insert mode error = %v, want ErrInvalidInput", err)
	}
}

func TestPushModeClearsUtil(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	a.PushMode(mode.Command)
	typeUtil(t, a, "wq")
	_ = a.PopMode()
	a.PushMode(mode.Goto)
	if a.UtilText() != "" {
		t.Errorf("util text = %q, want empty", a.UtilText())
	}
}

func TestShowMessage(t *testing.T) {
	a := newTestApp(t, "abc", selection.Block)
	a.ShowMessage(mode.Warning, "careful")
	if a.Mode().Kind != mode.Warning || a.Message() != "careful" {
		t.Errorf("mode = %v, want warning: careful", a.Mode())
	}
	if err := a.PopMode(); err != nil {
		t.Fatalf("PopMode: %v", err)
	}
	if a.Message() != "" {
		t.Errorf("message after pop = %q, want empty", a.Message())
	}
}
