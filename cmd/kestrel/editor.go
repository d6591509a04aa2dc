package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/dispatcher"
	"github.com/dshills/kestrel/internal/input/keymap"
	"github.com/dshills/kestrel/internal/renderer"
	"github.com/dshills/kestrel/internal/renderer/backend"
)

// editor runs the event loop: keys are resolved to actions, actions are
// dispatched, and the screen is redrawn after every event.
type editor struct {
	app        *app.Application
	dispatcher *dispatcher.Dispatcher
	keys       *keymap.Resolver
	renderer   *renderer.Renderer
	term       backend.Backend
	logger     *app.Logger
}

func newEditor(a *app.Application, keys *keymap.Resolver, term backend.Backend) *editor {
	e := &editor{
		app:        a,
		dispatcher: dispatcher.NewWithDefaults(a),
		keys:       keys,
		renderer:   renderer.New(term, renderer.DefaultTheme()),
		term:       term,
		logger:     a.Logger().WithComponent("loop"),
	}
	e.dispatcher.RegisterPostHook(dispatcher.PostDispatchFunc(func(action dispatcher.Action, err error) {
		if err != nil {
			e.logger.Debug("%s: %v", action, err)
		}
		a.ReportError(err)
	}))
	return e
}

// run processes events until the application quits or the event source
// closes.
func (e *editor) run() {
	e.resize()
	e.renderer.Draw(e.app)

	for !e.app.ShouldQuit() {
		switch ev := e.term.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			e.logger.Info("interrupted")
			return
		case *tcell.EventResize:
			e.term.Sync()
			e.resize()
		case *tcell.EventKey:
			e.handleKey(ev)
		}
		e.renderer.Draw(e.app)
	}
}

func (e *editor) resize() {
	w, h := e.renderer.TextArea()
	e.app.Resize(w, h)
}

// handleKey resolves a key in the current mode. A message mode that falls
// through is dismissed and the key goes to the mode below it.
func (e *editor) handleKey(ev *tcell.EventKey) {
	kind := e.app.Mode().Kind
	action, ok := e.keys.Resolve(kind, ev)
	if !ok && kind.FallsThrough() {
		if err := e.app.PopMode(); err != nil {
			e.app.ReportError(err)
			return
		}
		kind = e.app.Mode().Kind
		action, ok = e.keys.Resolve(kind, ev)
	}
	if !ok {
		e.logger.Debug("unbound key %s in %s mode", keymap.FromEvent(ev), kind)
		return
	}
	_ = e.dispatcher.Dispatch(action)
}

// topActions lists the most dispatched actions, or "" without metrics.
func (e *editor) topActions(n int) string {
	m := e.dispatcher.Metrics()
	if m == nil {
		return ""
	}
	return m.Summary(n)
}
