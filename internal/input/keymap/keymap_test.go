package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/kestrel/internal/dispatcher"
	"github.com/dshills/kestrel/internal/input/mode"
	"github.com/gdamore/tcell/v2"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"a", Key{Code: tcell.KeyRune, Rune: 'a'}},
		{"A", Key{Code: tcell.KeyRune, Rune: 'A'}},
		{"C-s", Key{Code: tcell.KeyRune, Rune: 's', Mods: tcell.ModCtrl}},
		{"<C-s>", Key{Code: tcell.KeyRune, Rune: 's', Mods: tcell.ModCtrl}},
		{"Ctrl+S", Key{Code: tcell.KeyRune, Rune: 's', Mods: tcell.ModCtrl}},
		{"S-Left", Key{Code: tcell.KeyLeft, Mods: tcell.ModShift}},
		{"C-S-End", Key{Code: tcell.KeyEnd, Mods: tcell.ModCtrl | tcell.ModShift}},
		{"A-;", Key{Code: tcell.KeyRune, Rune: ';', Mods: tcell.ModAlt}},
		{"Enter", Key{Code: tcell.KeyEnter}},
		{"esc", Key{Code: tcell.KeyEscape}},
		{"<CR>", Key{Code: tcell.KeyEnter}},
		{"Space", Key{Code: tcell.KeyRune, Rune: ' '}},
		{"-", Key{Code: tcell.KeyRune, Rune: '-'}},
		{"C--", Key{Code: tcell.KeyRune, Rune: '-', Mods: tcell.ModCtrl}},
		{"Ctrl++", Key{Code: tcell.KeyRune, Rune: '+', Mods: tcell.ModCtrl}},
		{"F5", Key{Code: tcell.KeyF5}},
		{"PgDn", Key{Code: tcell.KeyPgDn}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("  "); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(blank) error = %v, want ErrEmptySpec", err)
	}
	for _, spec := range []string{"X-a", "Foo", "C-Foo"} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidSpec", spec, err)
		}
	}
}

func TestKeyString(t *testing.T) {
	for _, spec := range []string{"x", "C-s", "S-Left", "A-S-Right", "C-S-End", "Enter", "Esc", "Space", "BS", "F5"} {
		if got := MustParse(spec).String(); got != spec {
			t.Errorf("MustParse(%q).String() = %q", spec, got)
		}
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "x"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), "X"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "A-x"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), "C-s"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "Enter"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "Tab"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Esc"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "BS"},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), "S-Left"},
		{"ctrl shift arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl|tcell.ModShift), "C-S-Right"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "S-Tab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromEvent(tt.ev).String(); got != tt.want {
				t.Errorf("FromEvent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeymapBindings(t *testing.T) {
	km := NewKeymap(mode.View).
		Add("j", dispatcher.ActionScrollDown).
		Add("k", dispatcher.ActionScrollUp).
		Add("j", dispatcher.ActionScrollRight)

	if km.Len() != 2 {
		t.Fatalf("Len = %d, want 2", km.Len())
	}
	bs := km.Bindings()
	if bs[0].Keys != "j" || bs[0].Action != dispatcher.ActionScrollRight || bs[1].Keys != "k" {
		t.Errorf("Bindings = %+v, want j rebound in place then k", bs)
	}

	km.Unbind(MustParse("j"))
	if _, ok := km.Lookup(MustParse("j")); ok {
		t.Error("j should be unbound")
	}
	if len(km.Bindings()) != 1 {
		t.Errorf("Bindings after Unbind = %+v", km.Bindings())
	}

	if err := km.Bind(NewBinding("j", "")); err == nil {
		t.Error("Bind with empty action should fail")
	}
	if err := km.Bind(NewBinding("Nope", dispatcher.ActionCenter)); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("Bind with bad keys error = %v, want ErrInvalidSpec", err)
	}
}

func TestResolveInsert(t *testing.T) {
	r := NewResolver()
	tests := []struct {
		spec string
		want dispatcher.Action
	}{
		{"x", dispatcher.Action{Name: dispatcher.ActionInsert, Text: "x"}},
		{"Space", dispatcher.Action{Name: dispatcher.ActionInsert, Text: " "}},
		{"Enter", dispatcher.Action{Name: dispatcher.ActionInsert, Text: "\n"}},
		{"Tab", dispatcher.Action{Name: dispatcher.ActionInsert, Text: "\t"}},
		{"BS", dispatcher.Action{Name: dispatcher.ActionBackspace}},
		{"S-Right", dispatcher.Action{Name: dispatcher.ActionExtendRight}},
		{"C-s", dispatcher.Action{Name: dispatcher.ActionSave}},
		{"C-f", dispatcher.Action{Name: dispatcher.ActionModePush, Text: "find"}},
		{"C-t", dispatcher.Action{Name: dispatcher.ActionModePush, Text: "add_surround"}},
	}
	for _, tt := range tests {
		got, ok := r.ResolveKey(mode.Insert, MustParse(tt.spec))
		if !ok || got != tt.want {
			t.Errorf("ResolveKey(insert, %q) = %v, %v; want %v", tt.spec, got, ok, tt.want)
		}
	}

	for _, spec := range []string{"F9", "A-z", "C-b"} {
		if got, ok := r.ResolveKey(mode.Insert, MustParse(spec)); ok {
			t.Errorf("ResolveKey(insert, %q) = %v, want unbound", spec, got)
		}
	}
}

func TestResolveFallbacks(t *testing.T) {
	r := NewResolver()
	tests := []struct {
		name   string
		kind   mode.Kind
		spec   string
		want   dispatcher.Action
		wantOK bool
	}{
		{"find types", mode.Find, "a", dispatcher.Action{Name: dispatcher.ActionUtilInsert, Text: "a"}, true},
		{"command accepts", mode.Command, "Enter", dispatcher.Action{Name: dispatcher.ActionUtilAccept}, true},
		{"goto cancels", mode.Goto, "Esc", dispatcher.Action{Name: dispatcher.ActionUtilCancel}, true},
		{"surround pair", mode.AddSurround, "(", dispatcher.Action{Name: dispatcher.ActionAddSurround, Text: "("}, true},
		{"object pair", mode.Object, "p", dispatcher.Action{Name: dispatcher.ActionSurroundingPair}, true},
		{"object unbound", mode.Object, "q", dispatcher.Action{}, false},
		{"error any key", mode.Error, "F1", dispatcher.Action{Name: dispatcher.ActionModePop}, true},
		{"warning falls through", mode.Warning, "x", dispatcher.Action{}, false},
		{"warning dismissed", mode.Warning, "Esc", dispatcher.Action{Name: dispatcher.ActionModePop}, true},
		{"view scrolls", mode.View, "j", dispatcher.Action{Name: dispatcher.ActionScrollDown}, true},
		{"view ignores typing", mode.View, "x", dispatcher.Action{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveKey(tt.kind, MustParse(tt.spec))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveKey = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveEvent(t *testing.T) {
	r := NewResolver()
	got, ok := r.Resolve(mode.Insert, tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if !ok || got.Name != dispatcher.ActionUndo {
		t.Errorf("Resolve(C-z) = %v, %v; want undo", got, ok)
	}
}

func TestDefaultBindingsAreRouted(t *testing.T) {
	known := make(map[string]bool)
	for _, km := range Defaults() {
		for _, b := range km.Bindings() {
			known[b.Action] = true
		}
	}
	for name := range known {
		if dispatcher.ExtractNamespace(name) == "" {
			t.Errorf("action %q has no namespace", name)
		}
	}
	if !known[dispatcher.ActionSurround] || !known[dispatcher.ActionCenter] {
		t.Error("defaults should bind surround and center")
	}
}

func TestLoadReader(t *testing.T) {
	r := NewResolver()
	src := `
[insert]
"C-b" = "selection.addBelow"
"C-s" = { action = "edit.insert", text = "saved?" }

[view]
"Space" = { action = "view.scrollDown", count = 10 }
`
	if err := r.LoadReader(strings.NewReader(src)); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	tests := []struct {
		kind mode.Kind
		spec string
		want dispatcher.Action
	}{
		{mode.Insert, "C-b", dispatcher.Action{Name: dispatcher.ActionAddBelow}},
		{mode.Insert, "C-s", dispatcher.Action{Name: dispatcher.ActionInsert, Text: "saved?"}},
		{mode.Insert, "C-z", dispatcher.Action{Name: dispatcher.ActionUndo}},
		{mode.View, "Space", dispatcher.Action{Name: dispatcher.ActionScrollDown, Count: 10}},
	}
	for _, tt := range tests {
		got, ok := r.ResolveKey(tt.kind, MustParse(tt.spec))
		if !ok || got != tt.want {
			t.Errorf("ResolveKey(%s, %q) = %v, %v; want %v", tt.kind, tt.spec, got, ok, tt.want)
		}
	}
}

func TestLoadReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown mode", "[normal]\n\"x\" = \"cursor.moveLeft\"\n"},
		{"not a table", "insert = 3\n"},
		{"bad key", "[insert]\n\"Hyper-x\" = \"cursor.moveLeft\"\n"},
		{"bad value", "[insert]\n\"x\" = 3\n"},
		{"unknown field", "[insert]\n\"x\" = { action = \"edit.cut\", when = \"always\" }\n"},
		{"negative count", "[insert]\n\"x\" = { action = \"edit.cut\", count = -1 }\n"},
		{"syntax", "[insert\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewResolver().LoadReader(strings.NewReader(tt.src)); err == nil {
				t.Error("LoadReader should fail")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	r := NewResolver()
	if err := r.LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err != nil {
		t.Errorf("missing file error = %v, want nil", err)
	}

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[goto]\n\"C-g\" = \"util.cancel\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got, ok := r.ResolveKey(mode.Goto, MustParse("C-g"))
	if !ok || got.Name != dispatcher.ActionUtilCancel {
		t.Errorf("ResolveKey(goto, C-g) = %v, %v", got, ok)
	}
	if r.Keymap(mode.Goto).Len() != len(textEntryKeymap(mode.Goto).Bindings())+1 {
		t.Errorf("user binding should be merged into the defaults")
	}
}
