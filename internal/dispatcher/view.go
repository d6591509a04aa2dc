package dispatcher

import "github.com/dshills/kestrel/internal/app"

// scrolled adapts a scroll; without a count it scrolls by the configured
// view_scroll_amount.
func scrolled(f func(*app.Application, int) error) HandlerFunc {
	return func(a *app.Application, action Action) error {
		amount := action.Count
		if amount <= 0 {
			amount = a.Config().ViewScrollAmount
		}
		return f(a, amount)
	}
}

func viewHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("view")
	h.Register(ActionCenter, plain((*app.Application).CenterViewVerticallyAroundCursor))
	h.Register(ActionScrollUp, scrolled((*app.Application).ScrollViewUp))
	h.Register(ActionScrollDown, scrolled((*app.Application).ScrollViewDown))
	h.Register(ActionScrollLeft, scrolled((*app.Application).ScrollViewLeft))
	h.Register(ActionScrollRight, scrolled((*app.Application).ScrollViewRight))
	return h
}
