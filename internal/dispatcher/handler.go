package dispatcher

import (
	"fmt"

	"github.com/dshills/kestrel/internal/app"
)

// Handler runs an action against the application.
type Handler interface {
	// Handle executes the action.
	Handle(a *app.Application, action Action) error

	// Priority returns the handler priority (higher = checked first).
	Priority() int
}

// HandlerFunc adapts a function to Handler with priority 0.
type HandlerFunc func(a *app.Application, action Action) error

// Handle implements Handler.
func (f HandlerFunc) Handle(a *app.Application, action Action) error {
	return f(a, action)
}

// Priority implements Handler.
func (f HandlerFunc) Priority() int {
	return 0
}

// prioritized is a HandlerFunc with a priority.
type prioritized struct {
	HandlerFunc
	prio int
}

func (p prioritized) Priority() int {
	return p.prio
}

// WithPriority wraps fn as a Handler of the given priority.
func WithPriority(fn HandlerFunc, priority int) Handler {
	return prioritized{HandlerFunc: fn, prio: priority}
}

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot ("cursor" in "cursor.moveDown").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(a *app.Application, action Action) error

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix.
	Namespace() string
}

// namespaceAdapter adapts NamespaceHandler to Handler.
type namespaceAdapter struct {
	h NamespaceHandler
}

func (n namespaceAdapter) Handle(a *app.Application, action Action) error {
	return n.h.HandleAction(a, action)
}

func (n namespaceAdapter) Priority() int {
	return 0
}

// BaseNamespaceHandler maps the action names of one namespace to functions.
type BaseNamespaceHandler struct {
	namespace string
	actions   map[string]HandlerFunc
}

// NewBaseNamespaceHandler creates an empty handler for namespace.
func NewBaseNamespaceHandler(namespace string) *BaseNamespaceHandler {
	return &BaseNamespaceHandler{
		namespace: namespace,
		actions:   make(map[string]HandlerFunc),
	}
}

// Register registers fn for a full action name.
func (h *BaseNamespaceHandler) Register(actionName string, fn HandlerFunc) {
	h.actions[actionName] = fn
}

// Namespace implements NamespaceHandler.
func (h *BaseNamespaceHandler) Namespace() string {
	return h.namespace
}

// CanHandle implements NamespaceHandler.
func (h *BaseNamespaceHandler) CanHandle(actionName string) bool {
	_, ok := h.actions[actionName]
	return ok
}

// HandleAction implements NamespaceHandler.
func (h *BaseNamespaceHandler) HandleAction(a *app.Application, action Action) error {
	fn, ok := h.actions[action.Name]
	if !ok {
		return fmt.Errorf("%w: %s not in namespace %s", ErrNoHandler, action.Name, h.namespace)
	}
	return fn(a, action)
}

// Actions returns the action names the handler knows.
func (h *BaseNamespaceHandler) Actions() []string {
	names := make([]string, 0, len(h.actions))
	for name := range h.actions {
		names = append(names, name)
	}
	return names
}
