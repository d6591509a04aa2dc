package buffer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// graphemeBounds returns the character offsets of the grapheme boundaries of
// s, starting with 0 and ending with the rune count of s.
func graphemeBounds(s string) []int {
	bounds := make([]int, 1, len(s)+1)
	state := -1
	pos := 0
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		pos += utf8.RuneCountInString(cluster)
		bounds = append(bounds, pos)
	}
	return bounds
}

// lineBounds returns where line starts and its grapheme boundaries,
// terminator included.
func (b *Buffer) lineBounds(line int) (int, []int) {
	return b.rope.LineToChar(line), graphemeBounds(b.rope.Line(line))
}

// NextGraphemeBoundary returns the first grapheme boundary after i.
// Indices at or past the end yield LenChars().
func (b *Buffer) NextGraphemeBoundary(i int) int {
	n := b.rope.LenChars()
	if i >= n {
		return n
	}
	if i < 0 {
		return 0
	}
	start, bounds := b.lineBounds(b.rope.CharToLine(i))
	off := i - start
	for _, bd := range bounds {
		if bd > off {
			return min(start+bd, n)
		}
	}
	return n
}

// PreviousGraphemeBoundary returns the last grapheme boundary before i.
// Indices past the end are treated as LenChars().
func (b *Buffer) PreviousGraphemeBoundary(i int) int {
	i = min(i, b.rope.LenChars())
	if i <= 0 {
		return 0
	}
	start, bounds := b.lineBounds(b.rope.CharToLine(i - 1))
	off := i - start
	prev := 0
	for _, bd := range bounds {
		if bd >= off {
			break
		}
		prev = bd
	}
	return start + prev
}

// IsGraphemeBoundary reports whether i sits between two graphemes.
// Both buffer ends are boundaries.
func (b *Buffer) IsGraphemeBoundary(i int) bool {
	if i <= 0 || i >= b.rope.LenChars() {
		return true
	}
	start, bounds := b.lineBounds(b.rope.CharToLine(i))
	off := i - start
	for _, bd := range bounds {
		if bd == off {
			return true
		}
		if bd > off {
			return false
		}
	}
	return false
}

// AlignToGrapheme snaps i down to the nearest grapheme boundary.
func (b *Buffer) AlignToGrapheme(i int) int {
	if b.IsGraphemeBoundary(i) {
		return i
	}
	return b.PreviousGraphemeBoundary(i)
}

// LineWidth returns the number of graphemes on line, counting the terminator
// as one grapheme when includeNewline is set.
func (b *Buffer) LineWidth(line int, includeNewline bool) int {
	content, term := splitTerminator(b.rope.Line(line))
	w := len(graphemeBounds(content)) - 1
	if includeNewline && term != "" {
		w++
	}
	return w
}

// Column returns the grapheme column of i within its line.
func (b *Buffer) Column(i int) int {
	i = max(0, min(i, b.rope.LenChars()))
	start, bounds := b.lineBounds(b.rope.CharToLine(i))
	off := i - start
	col := 0
	for _, bd := range bounds[1:] {
		if bd > off {
			break
		}
		col++
	}
	return col
}

// CharAtColumn returns the index of grapheme column col on line, clamped to
// the end of the line's content.
func (b *Buffer) CharAtColumn(line, col int) int {
	content, _ := splitTerminator(b.rope.Line(line))
	bounds := graphemeBounds(content)
	col = max(0, min(col, len(bounds)-1))
	return b.rope.LineToChar(line) + bounds[col]
}

// FirstNonWhitespaceOffset returns the offset of the first non-whitespace
// character of line, or 0 if the line is empty or all whitespace.
func (b *Buffer) FirstNonWhitespaceOffset(line int) int {
	content, _ := splitTerminator(b.rope.Line(line))
	off := 0
	for _, r := range content {
		if !unicode.IsSpace(r) {
			return off
		}
		off++
	}
	return 0
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
