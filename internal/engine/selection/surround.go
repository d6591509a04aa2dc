package selection

import (
	"github.com/dshills/kestrel/internal/engine/buffer"
)

var closerFor = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

var openerFor = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
	'>': '<',
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// NearestSurroundingPair replaces each selection with two one-grapheme
// selections over the nearest enclosing bracket or quote pair. Selections
// with no enclosing pair are kept as they are.
func (s Selections) NearestSurroundingPair(buf *buffer.Buffer, sem Semantics) (Selections, error) {
	text := []rune(buf.Text())

	var out []Selection
	primary := 0
	found := false
	for i, sel := range s.inner {
		if i == s.primary {
			primary = len(out)
		}
		open, close, ok := surroundingPair(text, sel.Range.Start)
		if !ok {
			out = append(out, sel)
			continue
		}
		found = true
		out = append(out, graphemeAt(open, buf, sem), graphemeAt(close, buf, sem))
	}
	if !found {
		return s, ErrResultsInSameState
	}
	return New(out, primary, buf, sem), nil
}

// Surround replaces each selection [s, e) with one-grapheme selections at s
// and at e. Selections whose end is at or past the buffer end are skipped.
func (s Selections) Surround(buf *buffer.Buffer, sem Semantics) (Selections, error) {
	n := buf.LenChars()

	var out []Selection
	primary := -1
	for i, sel := range s.inner {
		if sel.Range.End >= n {
			continue
		}
		if i == s.primary || primary < 0 && i > s.primary {
			primary = len(out)
		}
		out = append(out, graphemeAt(sel.Range.Start, buf, sem), graphemeAt(sel.Range.End, buf, sem))
	}
	if len(out) == 0 {
		return s, ErrResultsInSameState
	}
	if primary < 0 {
		primary = len(out) - 1
	}
	return New(out, primary, buf, sem), nil
}

// graphemeAt selects the single grapheme starting at i.
func graphemeAt(i int, buf *buffer.Buffer, sem Semantics) Selection {
	return fromRangeForward(buffer.Range{Start: i, End: buf.NextGraphemeBoundary(i)}, buf, sem)
}

// surroundingPair finds the nearest pair enclosing from. The opener lies
// before from and the closer at or after it.
func surroundingPair(text []rune, from int) (open, close int, ok bool) {
	from = min(from, len(text))
	depth := make(map[rune]int)
	for i := from - 1; i >= 0; i-- {
		r := text[i]
		if _, isCloser := openerFor[r]; isCloser {
			depth[r]++
			continue
		}
		if c, isOpener := closerFor[r]; isOpener {
			if depth[c] > 0 {
				depth[c]--
				continue
			}
			if end, ok := findCloser(text, from, r, c); ok {
				return i, end, true
			}
			continue
		}
		if isQuote(r) && opensQuote(text, i, from) {
			if end, ok := nextRune(text, i+1, r); ok {
				return i, end, true
			}
		}
	}
	return 0, 0, false
}

// findCloser scans forward from from for the closer matching an opener,
// skipping nested pairs of the same kind.
func findCloser(text []rune, from int, open, close rune) (int, bool) {
	depth := 0
	for i := from; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

// opensQuote reports whether the quote at i starts a quoted run containing
// from: an even number of the same quote precede it on its line, and its
// partner lies at or after from.
func opensQuote(text []rune, i, from int) bool {
	q := text[i]
	count := 0
	for j := i - 1; j >= 0 && text[j] != '\n'; j-- {
		if text[j] == q {
			count++
		}
	}
	if count%2 != 0 {
		return false
	}
	end, ok := nextRune(text, i+1, q)
	return ok && end >= from
}

func nextRune(text []rune, from int, r rune) (int, bool) {
	for i := from; i < len(text); i++ {
		if text[i] == r {
			return i, true
		}
	}
	return 0, false
}
