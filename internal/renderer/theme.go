package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kestrel/internal/input/mode"
)

// Theme holds the styles used for each part of the screen.
type Theme struct {
	Text             tcell.Style
	Selection        tcell.Style
	PrimarySelection tcell.Style

	// Cursor styles the cells of secondary cursors, and of the primary
	// cursor when cursors are blocks.
	Cursor        tcell.Style
	PrimaryCursor tcell.Style

	StatusLine tcell.Style
	Prompt     tcell.Style

	// Messages styles the utility line per message mode.
	Messages map[mode.Kind]tcell.Style
}

// DefaultTheme returns a theme that works on 16-color terminals.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Text:             base,
		Selection:        base.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
		PrimarySelection: base.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite),
		Cursor:           base.Background(tcell.ColorGray).Foreground(tcell.ColorBlack),
		PrimaryCursor:    base.Reverse(true),
		StatusLine:       base.Reverse(true),
		Prompt:           base.Bold(true),
		Messages: map[mode.Kind]tcell.Style{
			mode.Error:   base.Foreground(tcell.ColorRed).Bold(true),
			mode.Warning: base.Foreground(tcell.ColorYellow),
			mode.Notify:  base.Foreground(tcell.ColorGreen),
			mode.Info:    base,
		},
	}
}

// message returns the style for a message mode.
func (t Theme) message(kind mode.Kind) tcell.Style {
	if s, ok := t.Messages[kind]; ok {
		return s
	}
	return t.Text
}
