package keymap

import (
	"fmt"
	"slices"

	"github.com/dshills/kestrel/internal/input/mode"
)

// Keymap holds the key bindings of one mode.
type Keymap struct {
	// Mode is the mode this keymap applies to.
	Mode mode.Kind

	// Source indicates where this keymap was defined, e.g. "default" or a
	// file path.
	Source string

	bindings map[Key]Binding
	order    []Key
}

// NewKeymap creates an empty keymap for a mode.
func NewKeymap(kind mode.Kind) *Keymap {
	return &Keymap{
		Mode:     kind,
		bindings: make(map[Key]Binding),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add binds keys to action. It panics on a malformed key specification,
// so it is meant for built-in bindings.
func (k *Keymap) Add(keys, action string) *Keymap {
	if err := k.Bind(NewBinding(keys, action)); err != nil {
		panic(err)
	}
	return k
}

// AddText binds keys to action with a text argument.
func (k *Keymap) AddText(keys, action, text string) *Keymap {
	if err := k.Bind(NewBinding(keys, action).WithText(text)); err != nil {
		panic(err)
	}
	return k
}

// Bind adds a binding, replacing any binding of the same key.
func (k *Keymap) Bind(b Binding) error {
	if b.Action == "" {
		return fmt.Errorf("binding %q: empty action", b.Keys)
	}
	key, err := Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	if _, exists := k.bindings[key]; !exists {
		k.order = append(k.order, key)
	}
	k.bindings[key] = b
	return nil
}

// Unbind removes the binding of a key.
func (k *Keymap) Unbind(key Key) {
	if _, ok := k.bindings[key]; !ok {
		return
	}
	delete(k.bindings, key)
	k.order = slices.DeleteFunc(k.order, func(o Key) bool { return o == key })
}

// Lookup returns the binding of a key.
func (k *Keymap) Lookup(key Key) (Binding, bool) {
	b, ok := k.bindings[key]
	return b, ok
}

// Bindings returns the bindings in the order they were added.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, len(k.order))
	for i, key := range k.order {
		out[i] = k.bindings[key]
	}
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Merge copies every binding of other into k, replacing existing ones.
func (k *Keymap) Merge(other *Keymap) {
	for _, key := range other.order {
		if _, exists := k.bindings[key]; !exists {
			k.order = append(k.order, key)
		}
		k.bindings[key] = other.bindings[key]
	}
}
