package selection

import (
	"regexp"
	"unicode/utf8"

	"github.com/dshills/kestrel/internal/engine/buffer"
)

// Search replaces each selection with one selection per match of re inside
// it. Selections without a match are dropped. The first match inside the
// original primary becomes primary; failing that, the first match after it.
func (s Selections) Search(re *regexp.Regexp, buf *buffer.Buffer, sem Semantics) (Selections, error) {
	return s.searchOrSplit(re, buf, sem, false)
}

// Split replaces each selection with the pieces between matches of re
// inside it. Selections without a match are kept whole.
func (s Selections) Split(re *regexp.Regexp, buf *buffer.Buffer, sem Semantics) (Selections, error) {
	return s.searchOrSplit(re, buf, sem, true)
}

func (s Selections) searchOrSplit(re *regexp.Regexp, buf *buffer.Buffer, sem Semantics, split bool) (Selections, error) {
	if re == nil || re.String() == "" {
		return s, ErrNoSearchMatches
	}

	var out []Selection
	first := make([]int, len(s.inner))
	count := make([]int, len(s.inner))
	matched := false
	for i, sel := range s.inner {
		matches := findMatches(re, sel.Range, buf)
		first[i] = len(out)
		switch {
		case len(matches) == 0 && split:
			out = append(out, sel)
		case split:
			matched = true
			for _, r := range splitRanges(sel.Range, matches, buf) {
				out = append(out, fromRangeForward(r, buf, sem))
			}
		default:
			matched = matched || len(matches) > 0
			for _, r := range matches {
				out = append(out, fromRangeForward(r, buf, sem))
			}
		}
		count[i] = len(out) - first[i]
	}
	if !matched || len(out) == 0 {
		return s, ErrNoSearchMatches
	}

	primary := len(out) - 1
	for i := s.primary; i < len(s.inner); i++ {
		if count[i] > 0 {
			primary = first[i]
			break
		}
	}
	return New(out, primary, buf, sem), nil
}

// findMatches returns the non-empty matches of re inside r, as grapheme
// aligned character ranges.
func findMatches(re *regexp.Regexp, r buffer.Range, buf *buffer.Buffer) []buffer.Range {
	end := min(r.End, buf.LenChars())
	if end <= r.Start {
		return nil
	}
	text := buf.Slice(r.Start, end)

	var out []buffer.Range
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		start := buf.AlignToGrapheme(r.Start + utf8.RuneCountInString(text[:loc[0]]))
		stop := r.Start + utf8.RuneCountInString(text[:loc[1]])
		if !buf.IsGraphemeBoundary(stop) {
			stop = buf.NextGraphemeBoundary(stop)
		}
		stop = min(stop, end)
		if n := len(out); n > 0 && start < out[n-1].End {
			start = out[n-1].End
		}
		if stop > start {
			out = append(out, buffer.Range{Start: start, End: stop})
		}
	}
	return out
}

// splitRanges returns the non-empty gaps of r around matches.
func splitRanges(r buffer.Range, matches []buffer.Range, buf *buffer.Buffer) []buffer.Range {
	end := min(r.End, buf.LenChars())
	var out []buffer.Range
	prev := r.Start
	for _, m := range matches {
		if m.Start > prev {
			out = append(out, buffer.Range{Start: prev, End: m.Start})
		}
		prev = m.End
	}
	if end > prev {
		out = append(out, buffer.Range{Start: prev, End: end})
	}
	return out
}
