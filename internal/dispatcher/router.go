package dispatcher

import (
	"slices"
	"strings"
)

// Router routes actions to handlers using namespace prefixes.
type Router struct {
	namespaces map[string]NamespaceHandler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]NamespaceHandler),
	}
}

// RegisterNamespace registers a handler for all actions in its namespace.
func (r *Router) RegisterNamespace(h NamespaceHandler) {
	r.namespaces[h.Namespace()] = h
}

// Route finds the namespace handler for an action, or nil.
func (r *Router) Route(actionName string) Handler {
	if h, ok := r.namespaces[ExtractNamespace(actionName)]; ok && h.CanHandle(actionName) {
		return namespaceAdapter{h: h}
	}
	return nil
}

// Namespaces returns all registered namespace names, sorted.
func (r *Router) Namespaces() []string {
	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ExtractNamespace extracts the namespace from "namespace.action" format.
// Returns "" if there is no dot.
func ExtractNamespace(actionName string) string {
	ns, _, ok := strings.Cut(actionName, ".")
	if !ok {
		return ""
	}
	return ns
}

// ExtractActionName returns the part after the namespace.
// For "cursor.moveDown", returns "moveDown".
func ExtractActionName(fullName string) string {
	_, name, ok := strings.Cut(fullName, ".")
	if !ok {
		return fullName
	}
	return name
}
