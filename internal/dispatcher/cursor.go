package dispatcher

import "github.com/dshills/kestrel/internal/app"

// counted adapts an operation taking a repeat count.
func counted(f func(*app.Application, int) error) HandlerFunc {
	return func(a *app.Application, action Action) error {
		return f(a, action.count())
	}
}

// plain adapts an operation without arguments.
func plain(f func(*app.Application) error) HandlerFunc {
	return func(a *app.Application, _ Action) error {
		return f(a)
	}
}

func cursorHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("cursor")
	h.Register(ActionMoveLeft, counted((*app.Application).MoveCursorLeft))
	h.Register(ActionMoveRight, counted((*app.Application).MoveCursorRight))
	h.Register(ActionMoveUp, counted((*app.Application).MoveCursorUp))
	h.Register(ActionMoveDown, counted((*app.Application).MoveCursorDown))
	h.Register(ActionMoveWordForward, plain((*app.Application).MoveCursorWordBoundaryForward))
	h.Register(ActionMoveWordBackward, plain((*app.Application).MoveCursorWordBoundaryBackward))
	h.Register(ActionMoveLineStart, plain((*app.Application).MoveCursorLineStart))
	h.Register(ActionMoveLineTextStart, plain((*app.Application).MoveCursorLineTextStart))
	h.Register(ActionMoveLineEnd, plain((*app.Application).MoveCursorLineEnd))
	h.Register(ActionMoveHome, plain((*app.Application).MoveCursorHome))
	h.Register(ActionMoveDocumentStart, plain((*app.Application).MoveCursorDocumentStart))
	h.Register(ActionMoveDocumentEnd, plain((*app.Application).MoveCursorDocumentEnd))
	h.Register(ActionPageUp, plain((*app.Application).MovePageUp))
	h.Register(ActionPageDown, plain((*app.Application).MovePageDown))

	// The count is the 1-based line; without one, go to the first line.
	h.Register(ActionGotoLine, counted((*app.Application).GotoLine))
	return h
}
