package rope

import "unicode/utf8"

// TextSummary holds aggregated metrics for a text span.
// Summaries form a monoid under Add, which is what lets internal nodes cache them.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the rune count.
	Chars int

	// Lines is the number of newline characters.
	Lines int

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all characters are ASCII (< 128).
	FlagASCII TextFlags = 1 << iota

	// FlagHasNewlines indicates the text contains newline characters.
	FlagHasNewlines
)

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	result := TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
		Flags: s.Flags & other.Flags & FlagASCII,
	}
	if (s.Flags|other.Flags)&FlagHasNewlines != 0 {
		result.Flags |= FlagHasNewlines
	}
	return result
}

// IsZero returns true if this is the identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	sum := TextSummary{Bytes: len(s), Flags: FlagASCII}
	if len(s) == 0 {
		return sum
	}

	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\n' {
			sum.Lines++
		}
		if b >= utf8.RuneSelf {
			sum.Flags &^= FlagASCII
		}
	}
	if sum.Flags&FlagASCII != 0 {
		sum.Chars = len(s)
	} else {
		sum.Chars = utf8.RuneCountInString(s)
	}
	if sum.Lines > 0 {
		sum.Flags |= FlagHasNewlines
	}
	return sum
}

// charToByteIn returns the byte offset of the n-th rune of s.
// An n at or past the rune count yields len(s).
func charToByteIn(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

// nthNewlineIn returns the rune index just past the n-th newline (1-indexed)
// of s, or -1 if s has fewer than n newlines.
func nthNewlineIn(s string, n int) int {
	seen := 0
	chars := 0
	for _, r := range s {
		chars++
		if r == '\n' {
			seen++
			if seen == n {
				return chars
			}
		}
	}
	return -1
}

// countNewlinesIn returns the number of newlines in the first n runes of s.
func countNewlinesIn(s string, n int) int {
	lines := 0
	chars := 0
	for _, r := range s {
		if chars == n {
			break
		}
		if r == '\n' {
			lines++
		}
		chars++
	}
	return lines
}
