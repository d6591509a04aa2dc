// Package view tracks the display area: the window of lines and grapheme
// columns of the buffer currently on screen.
package view

import (
	"errors"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// Errors returned by view operations.
var (
	// ErrInvalidInput indicates a zero scroll amount or an empty view.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResultsInSameState indicates the view is already at the requested edge.
	ErrResultsInSameState = errors.New("results in same state")
)

// View is the visible window. Starts are a line index and a grapheme column;
// Width and Height are in cells and lines.
type View struct {
	HorizontalStart int
	VerticalStart   int
	Width           int
	Height          int
}

// New creates a view of the given size anchored at the top-left.
func New(width, height int) View {
	return View{Width: max(width, 0), Height: max(height, 0)}
}

// Resize returns the view with a new size, keeping its origin.
func (v View) Resize(width, height int) View {
	v.Width, v.Height = max(width, 0), max(height, 0)
	return v
}

// ContainsLine reports whether line is on screen.
func (v View) ContainsLine(line int) bool {
	return line >= v.VerticalStart && line < v.VerticalStart+v.Height
}

// CenterVerticallyAround centers the view on line. It fails when line is too
// close to either end of the buffer to be centered, or when nothing moves.
func (v View) CenterVerticallyAround(line int, buf *buffer.Buffer) (View, error) {
	if v.Height == 0 {
		return v, ErrInvalidInput
	}
	half := v.Height / 2
	lines := buf.LenLines()
	if line <= half || line >= lines-half {
		return v, ErrResultsInSameState
	}

	next := v
	next.VerticalStart = max(0, min(line-half, lines-v.Height))
	if next == v {
		return v, ErrResultsInSameState
	}
	return next, nil
}

// ScrollUp moves the view up by amount lines.
func (v View) ScrollUp(amount int) (View, error) {
	if amount == 0 {
		return v, ErrInvalidInput
	}
	if v.VerticalStart == 0 {
		return v, ErrResultsInSameState
	}
	v.VerticalStart = max(0, v.VerticalStart-amount)
	return v, nil
}

// ScrollDown moves the view down by amount lines, stopping once the last
// line is on screen.
func (v View) ScrollDown(amount int, buf *buffer.Buffer) (View, error) {
	if amount == 0 {
		return v, ErrInvalidInput
	}
	limit := max(0, buf.LenLines()-v.Height)
	if v.VerticalStart >= limit {
		return v, ErrResultsInSameState
	}
	v.VerticalStart = min(v.VerticalStart+amount, limit)
	return v, nil
}

// ScrollLeft moves the view left by amount columns.
func (v View) ScrollLeft(amount int) (View, error) {
	if amount == 0 {
		return v, ErrInvalidInput
	}
	if v.HorizontalStart == 0 {
		return v, ErrResultsInSameState
	}
	v.HorizontalStart = max(0, v.HorizontalStart-amount)
	return v, nil
}

// ScrollRight moves the view right by amount columns, stopping once the end
// of the longest visible line is on screen.
func (v View) ScrollRight(amount int, buf *buffer.Buffer) (View, error) {
	if amount == 0 {
		return v, ErrInvalidInput
	}
	longest := 0
	last := min(v.VerticalStart+v.Height, buf.LenLines())
	for line := v.VerticalStart; line < last; line++ {
		longest = max(longest, buf.LineWidth(line, false))
	}
	limit := max(0, longest-v.Width+1)
	if v.HorizontalStart >= limit {
		return v, ErrResultsInSameState
	}
	v.HorizontalStart = min(v.HorizontalStart+amount, limit)
	return v, nil
}

// FollowCursor returns the smallest shift of the view that puts the cursor
// at (line, column) on screen.
func (v View) FollowCursor(line, column int) View {
	if v.Height > 0 {
		switch {
		case line < v.VerticalStart:
			v.VerticalStart = line
		case line >= v.VerticalStart+v.Height:
			v.VerticalStart = line - v.Height + 1
		}
	}
	if v.Width > 0 {
		switch {
		case column < v.HorizontalStart:
			v.HorizontalStart = column
		case column >= v.HorizontalStart+v.Width:
			v.HorizontalStart = column - v.Width + 1
		}
	}
	return v
}

// Line is one visible line, already cut to the view's columns.
type Line struct {
	// Number is the buffer line index.
	Number int

	// Start is the character index of the first visible character.
	Start int

	// Text is the visible content without the line terminator.
	Text string
}

// Lines returns the visible part of every on-screen line.
func (v View) Lines(buf *buffer.Buffer) []Line {
	last := min(v.VerticalStart+v.Height, buf.LenLines())
	out := make([]Line, 0, max(last-v.VerticalStart, 0))
	for n := v.VerticalStart; n < last; n++ {
		start := buf.CharAtColumn(n, v.HorizontalStart)
		end := buf.CharAtColumn(n, v.HorizontalStart+v.Width)
		out = append(out, Line{Number: n, Start: start, Text: buf.Slice(start, end)})
	}
	return out
}
