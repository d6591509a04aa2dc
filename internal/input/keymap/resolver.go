package keymap

import (
	"github.com/dshills/kestrel/internal/dispatcher"
	"github.com/dshills/kestrel/internal/input/mode"
	"github.com/gdamore/tcell/v2"
)

// Resolver resolves key events against the keymap of the current mode.
type Resolver struct {
	keymaps map[mode.Kind]*Keymap
}

// NewResolver creates a resolver holding the default keymaps.
func NewResolver() *Resolver {
	r := &Resolver{keymaps: make(map[mode.Kind]*Keymap)}
	for _, km := range Defaults() {
		r.Register(km)
	}
	return r
}

// Register merges km into the keymap of its mode. Later bindings replace
// earlier ones for the same key.
func (r *Resolver) Register(km *Keymap) {
	existing, ok := r.keymaps[km.Mode]
	if !ok {
		existing = NewKeymap(km.Mode).WithSource(km.Source)
		r.keymaps[km.Mode] = existing
	}
	existing.Merge(km)
}

// Keymap returns the keymap of a mode, or nil.
func (r *Resolver) Keymap(kind mode.Kind) *Keymap {
	return r.keymaps[kind]
}

// Resolve returns the action a key event triggers in a mode.
func (r *Resolver) Resolve(kind mode.Kind, ev *tcell.EventKey) (dispatcher.Action, bool) {
	return r.ResolveKey(kind, FromEvent(ev))
}

// ResolveKey is Resolve for an already normalized key.
func (r *Resolver) ResolveKey(kind mode.Kind, key Key) (dispatcher.Action, bool) {
	if km := r.keymaps[kind]; km != nil {
		if b, ok := km.Lookup(key); ok {
			return b.action(), true
		}
	}
	return fallback(kind, key)
}

// fallback is the behavior of keys a mode does not bind.
func fallback(kind mode.Kind, key Key) (dispatcher.Action, bool) {
	switch {
	case kind == mode.Error:
		return dispatcher.Action{Name: dispatcher.ActionModePop}, true
	case !key.IsPrintable():
		return dispatcher.Action{}, false
	case kind == mode.Insert:
		return dispatcher.Action{Name: dispatcher.ActionInsert, Text: string(key.Rune)}, true
	case kind.IsTextEntry():
		return dispatcher.Action{Name: dispatcher.ActionUtilInsert, Text: string(key.Rune)}, true
	case kind == mode.AddSurround:
		return dispatcher.Action{Name: dispatcher.ActionAddSurround, Text: string(key.Rune)}, true
	}
	return dispatcher.Action{}, false
}
