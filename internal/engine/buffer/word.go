package buffer

import "unicode"

type charClass uint8

const (
	classWhitespace charClass = iota
	classNewline
	classWord
	classPunctuation
)

func classify(r rune) charClass {
	switch {
	case r == '\n' || r == '\r':
		return classNewline
	case unicode.IsSpace(r):
		return classWhitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
		return classWord
	}
	return classPunctuation
}

func (b *Buffer) classAt(i int) charClass {
	r, _ := b.rope.CharAt(i)
	return classify(r)
}

// NextWordBoundary returns the start of the next word after i: the end of
// the run of characters sharing i's class, past any following whitespace and
// line breaks. It returns LenChars() when no word follows.
func (b *Buffer) NextWordBoundary(i int) int {
	n := b.rope.LenChars()
	if i >= n {
		return n
	}
	i = max(i, 0)

	j := i
	c := b.classAt(j)
	if c == classNewline {
		j = b.NextGraphemeBoundary(j)
	} else {
		for j < n && b.classAt(j) == c {
			j = b.NextGraphemeBoundary(j)
		}
	}
	for j < n {
		if c := b.classAt(j); c != classWhitespace && c != classNewline {
			break
		}
		j = b.NextGraphemeBoundary(j)
	}
	return j
}

// PreviousWordBoundary returns the start of the word before i, skipping
// whitespace and line breaks first. It returns 0 at the start of the buffer.
func (b *Buffer) PreviousWordBoundary(i int) int {
	i = min(i, b.rope.LenChars())
	if i <= 0 {
		return 0
	}

	j := b.PreviousGraphemeBoundary(i)
	for j > 0 {
		if c := b.classAt(j); c != classWhitespace && c != classNewline {
			break
		}
		j = b.PreviousGraphemeBoundary(j)
	}
	c := b.classAt(j)
	for j > 0 {
		p := b.PreviousGraphemeBoundary(j)
		if b.classAt(p) != c {
			break
		}
		j = p
	}
	return j
}
