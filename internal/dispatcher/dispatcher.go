package dispatcher

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/kestrel/internal/app"
)

// Dispatcher routes actions to handlers and runs them against one
// Application.
type Dispatcher struct {
	app      *app.Application
	registry *Registry
	router   *Router
	config   Config
	metrics  *Metrics
	logger   *app.Logger

	postHooks []PostDispatchHook
}

// New creates a dispatcher for a with every built-in namespace registered.
func New(a *app.Application, config Config) *Dispatcher {
	d := &Dispatcher{
		app:      a,
		registry: NewRegistry(),
		router:   NewRouter(),
		config:   config,
		logger:   a.Logger().WithComponent("dispatch"),
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	for _, ns := range builtinNamespaces() {
		d.router.RegisterNamespace(ns)
	}
	return d
}

// NewWithDefaults creates a dispatcher with the default configuration.
func NewWithDefaults(a *app.Application) *Dispatcher {
	return New(a, DefaultConfig())
}

func builtinNamespaces() []NamespaceHandler {
	return []NamespaceHandler{
		cursorHandler(),
		selectionHandler(),
		editHandler(),
		viewHandler(),
		modeHandler(),
		utilHandler(),
		fileHandler(),
	}
}

// Dispatch runs action. This is the driver's only way to change the editor.
// After an action that moves the selections, the view scrolls to keep the
// primary cursor visible.
func (d *Dispatcher) Dispatch(action Action) error {
	start := time.Now()

	if d.config.MaxRepeatCount > 0 && action.Count > d.config.MaxRepeatCount {
		action.Count = d.config.MaxRepeatCount
	}

	h := d.Lookup(action.Name)
	if h == nil {
		err := fmt.Errorf("%w: %s", ErrNoHandler, action.Name)
		d.finish(action, start, err)
		return err
	}

	before := d.app.Selections()
	var err error
	if d.config.RecoverFromPanic {
		err = d.executeWithRecovery(h, action)
	} else {
		err = h.Handle(d.app, action)
	}
	if !d.app.Selections().Equal(before) {
		d.app.ScrollToCursor()
	}

	d.finish(action, start, err)
	return err
}

// Lookup returns the handler Dispatch would run for actionName, or nil.
// Exact registrations take precedence over namespaces.
func (d *Dispatcher) Lookup(actionName string) Handler {
	if h := d.registry.Get(actionName); h != nil {
		return h
	}
	return d.router.Route(actionName)
}

func (d *Dispatcher) finish(action Action, start time.Time, err error) {
	elapsed := time.Since(start)
	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, elapsed, err)
	}
	d.app.Metrics().RecordAction(elapsed, err != nil)

	log := d.logger.WithFields(map[string]any{
		"action":     action.Name,
		"selections": d.app.Selections().Len(),
	})
	if err != nil {
		log.WithField("class", app.ClassifyError(err)).Warn("%s failed: %v", action, err)
	} else {
		log.Debug("%s in %s", action, elapsed)
	}

	d.runPostHooks(action, err)
}

// executeWithRecovery executes a handler, turning a panic into ErrPanic.
func (d *Dispatcher) executeWithRecovery(h Handler, action Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.logger.Error("panic in %s: %v\n%s", action.Name, r, stack[:n])
			if d.metrics != nil {
				d.metrics.RecordPanic()
			}
			err = fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r)
		}
	}()
	return h.Handle(d.app, action)
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a function for an exact action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn HandlerFunc) {
	d.registry.Register(actionName, fn)
}

// RegisterNamespace registers a namespace handler, replacing any handler
// already registered for the namespace.
func (d *Dispatcher) RegisterNamespace(h NamespaceHandler) {
	d.router.RegisterNamespace(h)
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Router returns the namespace router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector (nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
