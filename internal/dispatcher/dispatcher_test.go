package dispatcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/input/mode"
)

func newTestApp(t *testing.T, text string, height int) *app.Application {
	t.Helper()
	a, err := app.New(app.Options{
		Config: config.Default(),
		Buffer: buffer.NewFromString(text),
		Width:  80,
		Height: height,
	})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return a
}

func primaryRange(a *app.Application) buffer.Range {
	return a.Selections().Primary().Range
}

func mustDispatch(t *testing.T, d *Dispatcher, action Action) {
	t.Helper()
	if err := d.Dispatch(action); err != nil {
		t.Fatalf("Dispatch(%s): %v", action, err)
	}
}

func TestDispatchRoutesNamespaces(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionInsert, Text: "x"})
	if got := a.Buffer().Text(); got != "xabc" {
		t.Errorf("buffer = %q, want %q", got, "xabc")
	}
	mustDispatch(t, d, Action{Name: ActionMoveRight})
	if got := primaryRange(a); got != (buffer.Range{Start: 2, End: 3}) {
		t.Errorf("cursor = %v, want [2, 3)", got)
	}
	mustDispatch(t, d, Action{Name: ActionUndo})
	if got := a.Buffer().Text(); got != "abc" {
		t.Errorf("after undo buffer = %q, want %q", got, "abc")
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	for _, name := range []string{"cursor.teleport", "nonamespace", "bogus.action"} {
		if err := d.Dispatch(Action{Name: name}); !errors.Is(err, ErrNoHandler) {
			t.Errorf("Dispatch(%q) error = %v, want ErrNoHandler", name, err)
		}
	}
	if got := d.Metrics().TotalErrors(); got != 3 {
		t.Errorf("TotalErrors = %d, want 3", got)
	}
	if got := a.Metrics().Snapshot().FailedActions; got != 3 {
		t.Errorf("app FailedActions = %d, want 3", got)
	}
}

func TestDispatchClampsCount(t *testing.T) {
	a := newTestApp(t, "abcdef", 10)
	d := New(a, DefaultConfig().WithMaxRepeatCount(2))

	mustDispatch(t, d, Action{Name: ActionMoveRight, Count: 100})
	if got := primaryRange(a); got != (buffer.Range{Start: 2, End: 3}) {
		t.Errorf("cursor = %v, want [2, 3)", got)
	}
}

func TestRegisteredHandlerOverridesNamespace(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	var calls []string
	d.RegisterHandlerFunc(ActionMoveRight, func(*app.Application, Action) error {
		calls = append(calls, "low")
		return nil
	})
	d.RegisterHandler(ActionMoveRight, WithPriority(func(*app.Application, Action) error {
		calls = append(calls, "high")
		return nil
	}, 10))

	mustDispatch(t, d, Action{Name: ActionMoveRight})
	if strings.Join(calls, ",") != "high" {
		t.Errorf("calls = %v, want [high]", calls)
	}
	if got := primaryRange(a); got != (buffer.Range{Start: 0, End: 1}) {
		t.Errorf("builtin handler ran: cursor = %v", got)
	}

	d.Registry().Unregister(ActionMoveRight)
	mustDispatch(t, d, Action{Name: ActionMoveRight})
	if got := primaryRange(a); got != (buffer.Range{Start: 1, End: 2}) {
		t.Errorf("after unregister cursor = %v, want [1, 2)", got)
	}
}

func TestPanicRecovery(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := New(a, DefaultConfig().WithPanicRecovery(true))
	d.RegisterHandlerFunc("test.explode", func(*app.Application, Action) error {
		panic("boom")
	})

	err := d.Dispatch(Action{Name: "test.explode"})
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("error = %v, want ErrPanic", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should carry the panic value", err)
	}
	if got := d.Metrics().TotalPanics(); got != 1 {
		t.Errorf("TotalPanics = %d, want 1", got)
	}
}

func TestPanicPropagatesByDefault(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)
	d.RegisterHandlerFunc("test.explode", func(*app.Application, Action) error {
		panic("boom")
	})

	defer func() {
		if recover() == nil {
			t.Error("panic should propagate when recovery is off")
		}
	}()
	_ = d.Dispatch(Action{Name: "test.explode"})
}

func TestPostHooksSeeErrors(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	var got []error
	d.RegisterPostHook(PostDispatchFunc(func(_ Action, err error) {
		got = append(got, err)
	}))

	mustDispatch(t, d, Action{Name: ActionMoveRight})
	_ = d.Dispatch(Action{Name: ActionRedo})

	if len(got) != 2 {
		t.Fatalf("hook calls = %d, want 2", len(got))
	}
	if got[0] != nil {
		t.Errorf("first hook error = %v, want nil", got[0])
	}
	if got[1] == nil {
		t.Error("second hook should see the failed redo")
	}
}

func TestReportErrorHook(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)
	d.RegisterPostHook(PostDispatchFunc(func(_ Action, err error) {
		a.ReportError(err)
	}))

	_ = d.Dispatch(Action{Name: ActionUndo})
	if !a.Mode().Kind.IsMessage() {
		t.Errorf("mode = %v, want a message mode after a failed undo", a.Mode())
	}
}

func TestDispatchScrollsToCursor(t *testing.T) {
	a := newTestApp(t, strings.Repeat("line\n", 9)+"last", 3)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionGotoLine, Count: 8})
	if !a.View().ContainsLine(7) {
		t.Errorf("view %+v should contain line 7", a.View())
	}

	mustDispatch(t, d, Action{Name: ActionMoveDocumentStart})
	if a.View().VerticalStart != 0 {
		t.Errorf("VerticalStart = %d, want 0", a.View().VerticalStart)
	}
}

func TestViewScrollAmount(t *testing.T) {
	a := newTestApp(t, strings.Repeat("line\n", 9)+"last", 3)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionScrollDown})
	if got := a.View().VerticalStart; got != a.Config().ViewScrollAmount {
		t.Errorf("VerticalStart = %d, want %d", got, a.Config().ViewScrollAmount)
	}
	mustDispatch(t, d, Action{Name: ActionScrollDown, Count: 3})
	if got := a.View().VerticalStart; got != 4 {
		t.Errorf("VerticalStart = %d, want 4", got)
	}
	if got := primaryRange(a); got != (buffer.Range{Start: 0, End: 1}) {
		t.Errorf("scrolling moved the cursor to %v", got)
	}
}

func TestModePush(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionModePush, Text: "view"})
	if a.Mode().Kind != mode.View {
		t.Errorf("mode = %v, want view", a.Mode())
	}
	mustDispatch(t, d, Action{Name: ActionModePop})
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}

	for _, text := range []string{"bogus", "insert", "error"} {
		if err := d.Dispatch(Action{Name: ActionModePush, Text: text}); !errors.Is(err, ErrInvalidAction) {
			t.Errorf("push %q error = %v, want ErrInvalidAction", text, err)
		}
	}
}

func TestAddSurroundLeavesMode(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionModePush, Text: "add_surround"})
	mustDispatch(t, d, Action{Name: ActionAddSurround, Text: ")"})
	if got := a.Buffer().Text(); got != "(a)bc" {
		t.Errorf("buffer = %q, want %q", got, "(a)bc")
	}
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}

	if err := d.Dispatch(Action{Name: ActionAddSurround, Text: "ab"}); !errors.Is(err, app.ErrInvalidInput) {
		t.Errorf("two-character pair error = %v, want ErrInvalidInput", err)
	}
}

func TestSurroundPair(t *testing.T) {
	tests := []struct {
		in          rune
		open, close string
	}{
		{'(', "(", ")"},
		{')', "(", ")"},
		{'[', "[", "]"},
		{'}', "{", "}"},
		{'<', "<", ">"},
		{'"', `"`, `"`},
		{'*', "*", "*"},
	}
	for _, tt := range tests {
		open, close := SurroundPair(tt.in)
		if open != tt.open || close != tt.close {
			t.Errorf("SurroundPair(%q) = %q, %q; want %q, %q", tt.in, open, close, tt.open, tt.close)
		}
	}
}

func TestObjectActionsLeaveMode(t *testing.T) {
	a := newTestApp(t, "(abc)", 10)
	d := NewWithDefaults(a)
	sel := selection.Selection{Range: buffer.Range{Start: 2, End: 3}, Direction: selection.Forward}
	a.SetSelections(selection.Single(sel))

	mustDispatch(t, d, Action{Name: ActionModePush, Text: "object"})
	mustDispatch(t, d, Action{Name: ActionSurroundingPair})
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}
	if got := primaryRange(a); got == (buffer.Range{Start: 2, End: 3}) {
		t.Error("surrounding pair selection did not change")
	}
}

func TestGotoThroughUtilLine(t *testing.T) {
	a := newTestApp(t, "one\ntwo\nthree", 10)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionModePush, Text: "goto"})
	mustDispatch(t, d, Action{Name: ActionUtilInsert, Text: "3"})
	mustDispatch(t, d, Action{Name: ActionUtilAccept})
	if got := a.Buffer().CharToLine(primaryRange(a).Start); got != 2 {
		t.Errorf("cursor line = %d, want 2", got)
	}
	if a.Mode().Kind != mode.Insert {
		t.Errorf("mode = %v, want insert", a.Mode())
	}
}

func TestFileActions(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionInsert, Text: "x"})
	if err := d.Dispatch(Action{Name: ActionQuit}); !errors.Is(err, app.ErrFileIsModified) {
		t.Errorf("quit with changes error = %v, want ErrFileIsModified", err)
	}
	if a.ShouldQuit() {
		t.Error("quit with changes should be refused")
	}
	mustDispatch(t, d, Action{Name: ActionForceQuit})
	if !a.ShouldQuit() {
		t.Error("force quit should quit")
	}
}

func TestMetricsRecorded(t *testing.T) {
	a := newTestApp(t, "abc", 10)
	d := NewWithDefaults(a)

	mustDispatch(t, d, Action{Name: ActionMoveRight})
	mustDispatch(t, d, Action{Name: ActionMoveRight})
	_ = d.Dispatch(Action{Name: ActionRedo})

	stats := d.Metrics().ActionStats(ActionMoveRight)
	if stats == nil || stats.DispatchCount != 2 {
		t.Fatalf("moveRight stats = %+v, want 2 dispatches", stats)
	}
	redo := d.Metrics().ActionStats(ActionRedo)
	if redo == nil || redo.ErrorCount != 1 || redo.LastErr == nil {
		t.Errorf("redo stats = %+v, want one error", redo)
	}

	noMetrics := New(a, DefaultConfig().WithMetrics(false))
	if noMetrics.Metrics() != nil {
		t.Error("metrics should be nil when disabled")
	}
	mustDispatch(t, noMetrics, Action{Name: ActionMoveLeft})
}

func TestLookup(t *testing.T) {
	d := NewWithDefaults(newTestApp(t, "", 10))

	if d.Lookup(ActionSave) == nil {
		t.Errorf("Lookup(%q) = nil", ActionSave)
	}
	if d.Lookup("file.burn") != nil {
		t.Error("Lookup of unknown file action should be nil")
	}
	want := []string{"cursor", "edit", "file", "mode", "selection", "util", "view"}
	if got := d.Router().Namespaces(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Namespaces = %v, want %v", got, want)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Action{Name: ActionMoveDown}, "cursor.moveDown"},
		{Action{Name: ActionMoveDown, Count: 3}, "cursor.moveDown(3)"},
		{Action{Name: ActionInsert, Text: "x"}, `edit.insert("x")`},
		{Action{Name: ActionInsert, Count: 2, Text: "x"}, `edit.insert(2, "x")`},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
