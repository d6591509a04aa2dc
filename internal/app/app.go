// Package app owns the editor state and implements every editor operation.
//
// An Application holds one buffer, its selections, the undo history, the
// view and the mode stack. Operations run to completion on the caller's
// goroutine; nothing here blocks except saving.
package app

import (
	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/engine/history"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/engine/view"
	"github.com/dshills/kestrel/internal/input/mode"
)

// Application is the editor state.
type Application struct {
	cfg     config.Config
	buf     *buffer.Buffer
	sels    selection.Selections
	history *history.History
	view    view.View
	modes   *mode.Manager

	clipboard string
	util      string
	search    *searchSession
	quit      bool

	logger  *Logger
	metrics *Metrics
}

// Options configures the application.
type Options struct {
	// Config is the editor configuration. It must validate.
	Config config.Config

	// Buffer is the text to edit. Nil means a new empty buffer.
	Buffer *buffer.Buffer

	// Logger receives operation logs. Nil means NullLogger.
	Logger *Logger

	// Width and Height are the size of the text area.
	Width, Height int
}

// New creates an Application with one cursor at the start of the buffer,
// in Insert mode.
func New(opts Options) (*Application, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	buf := opts.Buffer
	if buf == nil {
		buf = buffer.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	a := &Application{
		cfg:     opts.Config,
		buf:     buf,
		history: history.New(opts.Config.MaxUndo),
		view:    view.New(opts.Width, opts.Height),
		modes:   mode.NewManager(),
		logger:  logger,
		metrics: NewMetrics(),
	}
	a.sels = selection.Single(selection.NewCursor(0, buf, a.sem()))
	return a, nil
}

func (a *Application) sem() selection.Semantics {
	return a.cfg.Semantics
}

// Config returns the configuration the application was built with.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Buffer returns the buffer. Callers must not edit it directly.
func (a *Application) Buffer() *buffer.Buffer {
	return a.buf
}

// Selections returns the current selections.
func (a *Application) Selections() selection.Selections {
	return a.sels
}

// SetSelections replaces the selections. It panics when sels does not fit
// the buffer.
func (a *Application) SetSelections(sels selection.Selections) {
	a.sels = sels.Normalize(a.buf, a.sem())
}

// History returns the undo history.
func (a *Application) History() *history.History {
	return a.history
}

// View returns the visible window.
func (a *Application) View() view.View {
	return a.view
}

// Resize changes the size of the text area and keeps the cursor visible.
func (a *Application) Resize(width, height int) {
	a.view = a.view.Resize(width, height)
	a.ScrollToCursor()
}

// Modes returns the mode stack.
func (a *Application) Modes() *mode.Manager {
	return a.modes
}

// Mode returns the current mode.
func (a *Application) Mode() mode.Mode {
	return a.modes.Current()
}

// Logger returns the application's logger.
func (a *Application) Logger() *Logger {
	return a.logger
}

// Clipboard returns the text last cut or copied.
func (a *Application) Clipboard() string {
	return a.clipboard
}

// ShouldQuit reports whether a quit was accepted.
func (a *Application) ShouldQuit() bool {
	return a.quit
}
