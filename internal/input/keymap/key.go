package keymap

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Key is a normalized key press. Control letters arrive from tcell as
// KeyCtrlA..KeyCtrlZ; Key stores them as the letter with ModCtrl so bindings
// can be written "C-s". Shift is dropped from printable runes because it is
// already part of the rune.
type Key struct {
	Code tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// RuneKey returns the key for r with mods.
func RuneKey(r rune, mods tcell.ModMask) Key {
	if mods&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		r = unicode.ToLower(r)
	} else {
		mods &^= tcell.ModShift
	}
	return Key{Code: tcell.KeyRune, Rune: r, Mods: mods}
}

// FromEvent normalizes a tcell key event.
func FromEvent(ev *tcell.EventKey) Key {
	code, mods := ev.Key(), ev.Modifiers()

	switch {
	case code == tcell.KeyRune:
		return RuneKey(ev.Rune(), mods)
	case code == tcell.KeyBackspace2:
		return Key{Code: tcell.KeyBackspace, Mods: mods}
	case code == tcell.KeyBacktab:
		return Key{Code: tcell.KeyTab, Mods: mods | tcell.ModShift}
	}

	// Backspace, Tab, Enter and Esc share codes with Ctrl-H, Ctrl-I, Ctrl-M
	// and Ctrl-[; without Ctrl held they are the named keys.
	if mods&tcell.ModCtrl == 0 {
		switch code {
		case tcell.KeyBackspace, tcell.KeyTab, tcell.KeyEnter, tcell.KeyEscape:
			return Key{Code: code, Mods: mods}
		}
	}
	if code >= tcell.KeyCtrlA && code <= tcell.KeyCtrlZ {
		return RuneKey(rune('a'+code-tcell.KeyCtrlA), mods|tcell.ModCtrl)
	}
	return Key{Code: code, Mods: mods}
}

// IsPrintable reports whether the key types a character: a rune with no
// Ctrl, Alt or Meta held.
func (k Key) IsPrintable() bool {
	return k.Code == tcell.KeyRune &&
		k.Mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 &&
		unicode.IsPrint(k.Rune)
}

// String returns the key in binding notation, e.g. "C-s" or "S-Left".
func (k Key) String() string {
	var parts []string
	if k.Mods&tcell.ModCtrl != 0 {
		parts = append(parts, "C")
	}
	if k.Mods&tcell.ModAlt != 0 {
		parts = append(parts, "A")
	}
	if k.Mods&tcell.ModMeta != 0 {
		parts = append(parts, "M")
	}
	if k.Mods&tcell.ModShift != 0 {
		parts = append(parts, "S")
	}

	switch {
	case k.Code == tcell.KeyRune && k.Rune == ' ':
		parts = append(parts, "Space")
	case k.Code == tcell.KeyRune:
		parts = append(parts, string(k.Rune))
	default:
		name, ok := keyNames[k.Code]
		if !ok {
			name = fmt.Sprintf("Key(%d)", k.Code)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "-")
}

// keyNames holds the canonical name of each named key.
var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:     "Enter",
	tcell.KeyEscape:    "Esc",
	tcell.KeyTab:       "Tab",
	tcell.KeyBackspace: "BS",
	tcell.KeyDelete:    "Del",
	tcell.KeyInsert:    "Ins",
	tcell.KeyHome:      "Home",
	tcell.KeyEnd:       "End",
	tcell.KeyPgUp:      "PgUp",
	tcell.KeyPgDn:      "PgDn",
	tcell.KeyUp:        "Up",
	tcell.KeyDown:      "Down",
	tcell.KeyLeft:      "Left",
	tcell.KeyRight:     "Right",
	tcell.KeyF1:        "F1",
	tcell.KeyF2:        "F2",
	tcell.KeyF3:        "F3",
	tcell.KeyF4:        "F4",
	tcell.KeyF5:        "F5",
	tcell.KeyF6:        "F6",
	tcell.KeyF7:        "F7",
	tcell.KeyF8:        "F8",
	tcell.KeyF9:        "F9",
	tcell.KeyF10:       "F10",
	tcell.KeyF11:       "F11",
	tcell.KeyF12:       "F12",
}
