package renderer

import (
	"time"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/engine/view"
	"github.com/dshills/kestrel/internal/input/mode"
	"github.com/dshills/kestrel/internal/renderer/backend"
)

// reservedRows are the status and utility lines below the text area.
const reservedRows = 2

// Source is the editor state the renderer reads. *app.Application
// implements it.
type Source interface {
	Mode() mode.Mode
	Config() config.Config
	View() view.View
	VisibleLines() []view.Line
	SelectionHighlights() []app.Highlight
	PrimaryCursorPosition() selection.Position
	StatusLine() (left, right string)
	UtilText() string
	Metrics() *app.Metrics
}

// Renderer draws a Source onto a Backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
	frames  uint64
}

// New creates a renderer.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{backend: b, theme: theme}
}

// TextArea returns the size the view should have for the current
// terminal size.
func (r *Renderer) TextArea() (width, height int) {
	w, h := r.backend.Size()
	return max(w, 0), max(h-reservedRows, 0)
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Draw redraws the whole screen and returns how long it took.
func (r *Renderer) Draw(src Source) time.Duration {
	timer := app.StartTimer()

	width, height := r.backend.Size()
	r.backend.Clear()

	m := src.Mode()
	blockCursor := src.Config().Semantics == selection.Block

	cur := r.drawText(src, width, max(height-reservedRows, 0), blockCursor)
	if height >= reservedRows {
		r.drawStatus(src, width, height-2)
	}
	promptEnd := -1
	if height >= 1 {
		promptEnd = r.drawUtil(src, width, height-1, m)
	}

	switch {
	case m.Kind.IsTextEntry() && promptEnd >= 0:
		r.backend.SetCursorStyle(backend.CursorBar)
		r.backend.ShowCursor(min(promptEnd, max(width-1, 0)), height-1)
	case cur.visible:
		style := cursorStyle(m.CursorStyle(blockCursor))
		r.backend.SetCursorStyle(style)
		if style == backend.CursorHidden {
			r.backend.HideCursor()
		} else {
			r.backend.ShowCursor(cur.x, cur.y)
		}
	default:
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.frames++

	elapsed := timer.Stop()
	if metrics := src.Metrics(); metrics != nil {
		metrics.RecordRender(elapsed)
	}
	return elapsed
}

func cursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	case mode.CursorHidden:
		return backend.CursorHidden
	default:
		return backend.CursorBlock
	}
}
