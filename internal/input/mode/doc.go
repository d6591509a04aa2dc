// Package mode provides the modal editing states for kestrel.
//
// The editor is always in exactly one mode. Modes form a stack with Insert
// at the bottom:
//   - Insert: text input and selection motions
//   - View: scrolling the view without moving selections
//   - Goto, Find, Split, Command: one-line text entry in the utility line
//   - AddSurround, Object: waiting for a pair character or text object
//   - Error, Warning, Notify, Info: showing a message
//
// # Mode Lifecycle
//
//	┌─────────┐    Push()    ┌─────────┐
//	│ Insert  │ ───────────▶ │  Find   │
//	└─────────┘              └─────────┘
//	     ▲                        │
//	     │  Pop()                 │
//	     └────────────────────────┘
//
// Pushing a message mode over another message mode replaces it, so a burst
// of errors never stacks up. Warning, Notify and Info fall through: the
// driver pops them on the first key they do not handle.
package mode
