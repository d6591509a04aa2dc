package backend

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	sim    tcell.SimulationScreen
	style  CursorStyle
	mu     sync.Mutex
}

// NewTerminal creates a backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewSimulation creates an initialized in-memory backend of the given size.
func NewSimulation(width, height int) (*Terminal, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	t := &Terminal{screen: sim, sim: sim}
	if err := t.Init(); err != nil {
		return nil, err
	}
	sim.SetSize(width, height)
	return t, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, cluster string, style tcell.Style) {
	if cluster == "" {
		return
	}
	runes := []rune(cluster)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, runes[0], runes[1:], style)
}

func (t *Terminal) Fill(x, y, width int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := 0; i < width; i++ {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.style = style
	switch style {
	case CursorBlock:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	case CursorUnderline:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	case CursorHidden:
		t.screen.HideCursor()
	}
}

// PollEvent is not guarded by the mutex so drawing can continue while it
// blocks.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func (t *Terminal) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Resize changes the size of a simulated terminal and queues a resize
// event. It does nothing for a real terminal.
func (t *Terminal) Resize(width, height int) {
	if t.sim == nil {
		return
	}
	t.mu.Lock()
	t.sim.SetSize(width, height)
	t.mu.Unlock()
	_ = t.screen.PostEvent(tcell.NewEventResize(width, height))
}

// Cell returns the grapheme cluster and style at (x, y).
func (t *Terminal) Cell(x, y int) (string, tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, combc, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return string(append([]rune{mainc}, combc...)), style
}

// Row returns the text of row y with trailing blanks trimmed.
func (t *Terminal) Row(y int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, _ := t.screen.Size()
	var sb strings.Builder
	for x := 0; x < w; {
		mainc, combc, _, width := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		sb.WriteRune(mainc)
		for _, r := range combc {
			sb.WriteRune(r)
		}
		x += max(width, 1)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Cursor reports the cursor position and visibility of a simulated
// terminal. A real terminal reports a hidden cursor.
func (t *Terminal) Cursor() (x, y int, visible bool) {
	if t.sim == nil {
		return 0, 0, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	x, y, visible = t.sim.GetCursor()
	return x, y, visible && t.style != CursorHidden
}

// CursorStyle returns the last style set.
func (t *Terminal) CursorStyle() CursorStyle {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.style
}
