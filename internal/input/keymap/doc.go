// Package keymap maps terminal key events to dispatcher actions.
//
// Every mode has its own Keymap. A key that is not bound falls back to the
// mode's default behavior:
//
//	Insert                         printable keys insert text
//	Goto, Find, Split, Command     printable keys go to the utility line
//	AddSurround                    any printable key names the pair
//	Error                          any key dismisses the message
//
// Warning, Notify and Info have no fallback: Resolve reports false and the
// driver pops the message and resolves the key again in the mode below.
//
// # Key Notation
//
//	"a", "A", "%"     single character
//	"C-s", "<C-s>"    Ctrl+S
//	"A-Left"          Alt+Left
//	"S-Home"          Shift+Home
//	"C-S-End"         Ctrl+Shift+End
//	"Enter", "Esc", "Tab", "BS", "Del", "Space", "PgUp", "PgDn", "F1"
//
// # Usage
//
//	r := keymap.NewResolver()
//	if err := r.LoadFile(path); err != nil { ... }
//
//	if action, ok := r.Resolve(app.Mode().Kind, ev); ok {
//	    err := d.Dispatch(action)
//	}
package keymap
