package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/kestrel/internal/engine/selection"
	"github.com/dshills/kestrel/internal/engine/view"
)

// scratchName is shown for a buffer without a file.
const scratchName = "[scratch]"

// PrimaryCursorPosition returns the line and column of the primary cursor.
func (a *Application) PrimaryCursorPosition() selection.Position {
	return a.sels.Primary().To2D(a.buf, a.sem()).Head
}

// VisibleLines returns the part of the buffer inside the view.
func (a *Application) VisibleLines() []view.Line {
	return a.view.Lines(a.buf)
}

// Highlight is a run of selected columns on one line.
type Highlight struct {
	Line int

	// StartColumn and EndColumn bound the run in grapheme columns.
	StartColumn, EndColumn int

	// Primary marks runs of the primary selection.
	Primary bool

	// Cursor marks the cell of a selection's cursor.
	Cursor bool
}

// SelectionHighlights returns the highlighted runs and cursor cells inside
// the view, in line order.
func (a *Application) SelectionHighlights() []Highlight {
	var out []Highlight
	sem := a.sem()
	n := a.buf.LenChars()
	top, bottom := a.view.VerticalStart, a.view.VerticalStart+a.view.Height

	for i := 0; i < a.sels.Len(); i++ {
		sel := a.sels.At(i)
		primary := i == a.sels.PrimaryIndex()

		if sel.IsExtended() {
			start, end := sel.Range.Start, min(sel.Range.End, n)
			first, last := a.buf.CharToLine(start), a.buf.CharToLine(end)
			for line := max(first, top); line <= last && line < bottom; line++ {
				startCol := 0
				if line == first {
					startCol = a.buf.Column(start)
				}
				endCol := a.buf.LineWidth(line, true)
				if line == last {
					endCol = a.buf.Column(end)
				}
				if endCol > startCol {
					out = append(out, Highlight{Line: line, StartColumn: startCol, EndColumn: endCol, Primary: primary})
				}
			}
		}

		cursor := min(sel.Cursor(a.buf, sem), n)
		if line := a.buf.CharToLine(cursor); line >= top && line < bottom {
			col := a.buf.Column(cursor)
			out = append(out, Highlight{Line: line, StartColumn: col, EndColumn: col + 1, Primary: primary, Cursor: true})
		}
	}
	return out
}

// IsModified reports unsaved changes.
func (a *Application) IsModified() bool {
	return a.buf.IsModified()
}

// IsReadOnly reports whether edits are refused.
func (a *Application) IsReadOnly() bool {
	return a.buf.ReadOnly()
}

// FileName returns the buffer's name for display.
func (a *Application) FileName() string {
	return a.displayName(a.buf.FilePath())
}

func (a *Application) displayName(path string) string {
	switch {
	case path == "":
		return scratchName
	case a.cfg.UseFullFilePath:
		return path
	}
	return filepath.Base(path)
}

// LineCount returns the number of lines in the buffer.
func (a *Application) LineCount() int {
	return a.buf.LenLines()
}

// Status is what the status line shows.
type Status struct {
	Mode       string
	FileName   string
	Modified   bool
	ReadOnly   bool
	Selections int
	Line       int // 1-based
	Column     int // 1-based
	ShowLine   bool
	ShowColumn bool
}

// Status collects the status line fields.
func (a *Application) Status() Status {
	pos := a.PrimaryCursorPosition()
	return Status{
		Mode:       a.Mode().Kind.DisplayName(),
		FileName:   a.FileName(),
		Modified:   a.IsModified(),
		ReadOnly:   a.IsReadOnly(),
		Selections: a.sels.Len(),
		Line:       pos.Line + 1,
		Column:     pos.Column + 1,
		ShowLine:   a.cfg.ShowCursorLine,
		ShowColumn: a.cfg.ShowCursorColumn,
	}
}

// StatusLine formats Status as left and right halves.
func (a *Application) StatusLine() (left, right string) {
	s := a.Status()

	var sb strings.Builder
	fmt.Fprintf(&sb, " %s  %s", s.Mode, s.FileName)
	if s.Modified {
		sb.WriteString(" [+]")
	}
	if s.ReadOnly {
		sb.WriteString(" [RO]")
	}
	left = sb.String()

	var parts []string
	if s.Selections > 1 {
		parts = append(parts, fmt.Sprintf("%d sel", s.Selections))
	}
	switch {
	case s.ShowLine && s.ShowColumn:
		parts = append(parts, fmt.Sprintf("%d:%d", s.Line, s.Column))
	case s.ShowLine:
		parts = append(parts, fmt.Sprintf("ln %d", s.Line))
	case s.ShowColumn:
		parts = append(parts, fmt.Sprintf("col %d", s.Column))
	}
	if len(parts) > 0 {
		right = strings.Join(parts, "  ") + " "
	}
	return left, right
}

// Message returns the text of the current message mode, or "".
func (a *Application) Message() string {
	return a.Mode().Message
}
