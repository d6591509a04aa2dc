// Package backend abstracts the terminal the renderer draws on.
package backend

import "github.com/gdamore/tcell/v2"

// CursorStyle defines the terminal cursor shape.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorUnderline
	CursorHidden
)

// Backend is a cell grid plus an event source.
type Backend interface {
	// Init prepares the terminal for drawing.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the terminal size in cells.
	Size() (width, height int)

	// SetContent writes one grapheme cluster at (x, y).
	SetContent(x, y int, cluster string, style tcell.Style)

	// Fill writes the same rune into a whole row segment.
	Fill(x, y, width int, r rune, style tcell.Style)

	// Clear blanks the screen.
	Clear()

	// Show flushes pending changes to the terminal.
	Show()

	// Sync redraws every cell, e.g. after a resize.
	Sync()

	// ShowCursor places the cursor at (x, y).
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle sets the cursor shape.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until an event arrives. It returns nil after Shutdown.
	PollEvent() tcell.Event

	// PostEvent queues an event for PollEvent.
	PostEvent(ev tcell.Event) error
}
