package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/input/mode"
)

// replacement is drawn for control characters.
const replacement = "�"

// screenCursor is where the primary cursor landed on screen.
type screenCursor struct {
	x, y    int
	visible bool
}

// drawText draws the visible lines with their selections and returns the
// screen position of the primary cursor.
func (r *Renderer) drawText(src Source, width, rows int, blockCursor bool) screenCursor {
	var cur screenCursor
	if width <= 0 || rows <= 0 {
		return cur
	}

	byLine := make(map[int][]app.Highlight)
	for _, h := range src.SelectionHighlights() {
		byLine[h.Line] = append(byLine[h.Line], h)
	}
	primary := src.PrimaryCursorPosition()
	tabWidth := max(src.Config().TabWidth, 1)
	firstCol := src.View().HorizontalStart

	for row, line := range src.VisibleLines() {
		if row >= rows {
			break
		}
		hls := byLine[line.Number]
		onCursorLine := line.Number == primary.Line

		x, col := 0, firstCol
		rest, state := line.Text, -1
		for rest != "" && x < width {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

			w := clusterWidth(cluster, x, tabWidth)
			if x+w > width {
				break
			}
			style := r.styleAt(hls, col, blockCursor)
			switch {
			case cluster == "\t":
				r.backend.Fill(x, row, w, ' ', style)
			case isControl(cluster):
				r.backend.SetContent(x, row, replacement, style)
			default:
				r.backend.SetContent(x, row, cluster, style)
			}
			if onCursorLine && col == primary.Column {
				cur = screenCursor{x: x, y: row, visible: true}
			}
			x += w
			col++
		}

		// The cell past the text stands for the line terminator.
		if rest == "" && x < width {
			if style := r.styleAt(hls, col, blockCursor); style != r.theme.Text {
				r.backend.SetContent(x, row, " ", style)
			}
			if onCursorLine && col == primary.Column {
				cur = screenCursor{x: x, y: row, visible: true}
			}
		}
	}
	return cur
}

// styleAt returns the style of the cell at a grapheme column. Cursors win
// over selections, and primary runs win over secondary ones.
func (r *Renderer) styleAt(hls []app.Highlight, col int, blockCursor bool) tcell.Style {
	style, rank := r.theme.Text, 0
	for _, h := range hls {
		if col < h.StartColumn || col >= h.EndColumn {
			continue
		}
		var s tcell.Style
		var k int
		switch {
		case h.Cursor && h.Primary:
			if !blockCursor {
				continue
			}
			s, k = r.theme.PrimaryCursor, 4
		case h.Cursor:
			s, k = r.theme.Cursor, 3
		case h.Primary:
			s, k = r.theme.PrimarySelection, 2
		default:
			s, k = r.theme.Selection, 1
		}
		if k > rank {
			style, rank = s, k
		}
	}
	return style
}

// clusterWidth returns how many cells a grapheme cluster takes when drawn
// at screen column x. Tabs stretch to the next tab stop.
func clusterWidth(cluster string, x, tabWidth int) int {
	if cluster == "\t" {
		return tabWidth - x%tabWidth
	}
	if isControl(cluster) {
		return 1
	}
	return max(runewidth.StringWidth(cluster), 1)
}

func isControl(cluster string) bool {
	return len(cluster) == 1 && (cluster[0] < 0x20 || cluster[0] == 0x7f)
}

// drawString draws s from x and returns the column after it. It stops at
// the screen edge.
func (r *Renderer) drawString(x, y, width int, s string, style tcell.Style) int {
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := clusterWidth(cluster, x, 1)
		if x+w > width {
			break
		}
		if isControl(cluster) {
			cluster = replacement
		}
		r.backend.SetContent(x, y, cluster, style)
		x += w
	}
	return x
}

// drawStatus draws the status line: left part at the start and right
// part flush with the right edge.
func (r *Renderer) drawStatus(src Source, width, y int) {
	r.backend.Fill(0, y, width, ' ', r.theme.StatusLine)
	left, right := src.StatusLine()
	end := r.drawString(0, y, width, left, r.theme.StatusLine)
	if right == "" {
		return
	}
	x := width - runewidth.StringWidth(right)
	if x <= end {
		x = end + 1
	}
	r.drawString(x, y, width, right, r.theme.StatusLine)
}

// prompts prefix the utility text of text-entry modes.
var prompts = map[mode.Kind]string{
	mode.Goto:    "goto: ",
	mode.Find:    "find: ",
	mode.Split:   "split: ",
	mode.Command: ":",
}

// drawUtil draws the utility line and returns the column after the prompt
// text, or -1 when no prompt is shown.
func (r *Renderer) drawUtil(src Source, width, y int, m mode.Mode) int {
	switch {
	case m.Kind.IsTextEntry():
		x := r.drawString(0, y, width, prompts[m.Kind], r.theme.Prompt)
		return r.drawString(x, y, width, src.UtilText(), r.theme.Text)
	case m.Kind.IsMessage():
		style := r.theme.message(m.Kind)
		r.backend.Fill(0, y, width, ' ', style)
		r.drawString(0, y, width, m.Message, style)
	case m.Kind == mode.AddSurround:
		r.drawString(0, y, width, "surround with: ", r.theme.Prompt)
	case m.Kind == mode.Object:
		r.drawString(0, y, width, "object: ", r.theme.Prompt)
	}
	return -1
}
