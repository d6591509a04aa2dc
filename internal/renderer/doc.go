// Package renderer draws the editor state onto a terminal.
//
// The screen is split into three areas:
//
//	┌─────────────────────────────────────────┐
//	│  text area (view height rows)           │
//	│                                         │
//	├─────────────────────────────────────────┤
//	│  status line                            │
//	├─────────────────────────────────────────┤
//	│  utility line (prompt or message)       │
//	└─────────────────────────────────────────┘
//
// The renderer only reads from a Source. It never changes the editor
// state, so the caller is expected to size the view with TextArea before
// drawing.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultTheme())
//	w, h := r.TextArea()
//	app.Resize(w, h)
//	r.Draw(app)
package renderer
