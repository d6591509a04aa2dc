package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Parse errors
var (
	// ErrEmptySpec indicates an empty key specification.
	ErrEmptySpec = errors.New("empty key specification")

	// ErrInvalidSpec indicates a key specification that cannot be parsed.
	ErrInvalidSpec = errors.New("invalid key specification")
)

// keyAliases maps lowercase key names to keys, including Vim aliases.
var keyAliases = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"cr":        tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"bs":        tcell.KeyBackspace,
	"backspace": tcell.KeyBackspace,
	"del":       tcell.KeyDelete,
	"delete":    tcell.KeyDelete,
	"ins":       tcell.KeyInsert,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pageup":    tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"pagedown":  tcell.KeyPgDn,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
}

// runeAliases are named printable keys.
var runeAliases = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"bar":    '|',
	"bslash": '\\',
	"minus":  '-',
}

func init() {
	for code, name := range keyNames {
		if strings.HasPrefix(name, "F") {
			keyAliases[strings.ToLower(name)] = code
		}
	}
}

// Parse parses a key specification such as "a", "C-s", "<A-Left>" or
// "Ctrl+Shift+Home".
func Parse(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Key{}, ErrEmptySpec
	}
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		spec = spec[1 : len(spec)-1]
	}

	// The first '-' or '+' after the first character picks the separator.
	sep := "-"
	if i := strings.IndexAny(spec[1:], "-+"); i >= 0 {
		sep = string(spec[i+1])
	}
	parts := strings.Split(spec, sep)
	// "C--" and "C-+" end in an empty part: the key is the separator itself.
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = append(parts[:len(parts)-2], sep)
	}

	var mods tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Key{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods |= m
	}
	return parseKey(parts[len(parts)-1], mods)
}

// MustParse is like Parse but panics on error. It is meant for built-in
// bindings.
func MustParse(spec string) Key {
	k, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return k
}

var modifierNames = map[string]tcell.ModMask{
	"c":       tcell.ModCtrl,
	"ctrl":    tcell.ModCtrl,
	"control": tcell.ModCtrl,
	"a":       tcell.ModAlt,
	"alt":     tcell.ModAlt,
	"opt":     tcell.ModAlt,
	"s":       tcell.ModShift,
	"shift":   tcell.ModShift,
	"m":       tcell.ModMeta,
	"meta":    tcell.ModMeta,
	"d":       tcell.ModMeta,
	"cmd":     tcell.ModMeta,
}

func parseKey(name string, mods tcell.ModMask) (Key, error) {
	if name == "" {
		return Key{}, ErrInvalidSpec
	}
	lower := strings.ToLower(name)
	if code, ok := keyAliases[lower]; ok {
		return Key{Code: code, Mods: mods}, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return RuneKey(r, mods), nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return Key{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	return RuneKey(runes[0], mods), nil
}
