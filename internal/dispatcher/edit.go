package dispatcher

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/input/mode"
)

// surroundPairs maps either character of a pair to the pair.
var surroundPairs = map[rune][2]string{
	'(': {"(", ")"}, ')': {"(", ")"},
	'[': {"[", "]"}, ']': {"[", "]"},
	'{': {"{", "}"}, '}': {"{", "}"},
	'<': {"<", ">"}, '>': {"<", ">"},
}

// SurroundPair returns the open and close strings for a pair character.
// Brackets pair with their partner; any other character wraps with itself.
func SurroundPair(r rune) (open, close string) {
	if p, ok := surroundPairs[r]; ok {
		return p[0], p[1]
	}
	return string(r), string(r)
}

func editHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("edit")
	h.Register(ActionInsert, func(a *app.Application, action Action) error {
		return a.InsertString(action.Text)
	})
	h.Register(ActionDelete, plain((*app.Application).Delete))
	h.Register(ActionBackspace, plain((*app.Application).Backspace))
	h.Register(ActionCut, plain((*app.Application).Cut))
	h.Register(ActionCopy, plain((*app.Application).Copy))
	h.Register(ActionPaste, plain((*app.Application).Paste))
	h.Register(ActionUndo, plain((*app.Application).Undo))
	h.Register(ActionRedo, plain((*app.Application).Redo))
	h.Register(ActionAddSurround, addSurround)
	return h
}

func addSurround(a *app.Application, action Action) error {
	if a.Mode().Kind == mode.AddSurround {
		_ = a.PopMode()
	}
	r, size := utf8.DecodeRuneInString(action.Text)
	if r == utf8.RuneError || size != len(action.Text) {
		return fmt.Errorf("%w: surround needs one character, got %q", app.ErrInvalidInput, action.Text)
	}
	open, close := SurroundPair(r)
	return a.AddSurround(open, close)
}
