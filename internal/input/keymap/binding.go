package keymap

import "github.com/dshills/kestrel/internal/dispatcher"

// Binding maps a key to an action.
type Binding struct {
	// Keys is the key specification, e.g. "C-s" or "S-Left".
	Keys string

	// Action is the dispatcher action name, e.g. "file.save".
	Action string

	// Text is passed to the action as its text argument.
	Text string

	// Count is passed to the action as its repeat count.
	Count int

	// Description documents the binding for the tutorial and help output.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithText sets the text argument for this binding.
func (b Binding) WithText(text string) Binding {
	b.Text = text
	return b
}

// WithCount sets the repeat count for this binding.
func (b Binding) WithCount(count int) Binding {
	b.Count = count
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// action builds the dispatcher action the binding triggers.
func (b Binding) action() dispatcher.Action {
	return dispatcher.Action{Name: b.Action, Count: b.Count, Text: b.Text}
}
