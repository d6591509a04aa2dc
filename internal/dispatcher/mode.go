package dispatcher

import (
	"fmt"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/input/mode"
)

func modeHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("mode")
	h.Register(ActionModePush, func(a *app.Application, action Action) error {
		kind, err := mode.ParseKind(action.Text)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		if kind == mode.Insert || kind.IsMessage() {
			return fmt.Errorf("%w: cannot push %s", ErrInvalidAction, kind)
		}
		a.PushMode(kind)
		return nil
	})
	h.Register(ActionModePop, plain((*app.Application).PopMode))
	return h
}

func utilHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("util")
	h.Register(ActionUtilInsert, func(a *app.Application, action Action) error {
		return a.UtilInsert(action.Text)
	})
	h.Register(ActionUtilBackspace, plain((*app.Application).UtilBackspace))
	h.Register(ActionUtilAccept, plain((*app.Application).UtilAccept))
	h.Register(ActionUtilCancel, plain((*app.Application).UtilCancel))
	return h
}

func fileHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("file")
	h.Register(ActionSave, plain((*app.Application).Save))
	h.Register(ActionQuit, plain((*app.Application).Quit))
	h.Register(ActionForceQuit, func(a *app.Application, _ Action) error {
		a.QuitIgnoringChanges()
		return nil
	})
	return h
}
