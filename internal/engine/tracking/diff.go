package tracking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	udiff "github.com/aymanbagabas/go-udiff"

	"github.com/dshills/kestrel/internal/engine/rope"
)

// DiffOptions configures diff computation.
type DiffOptions struct {
	// ContextLines is the number of unchanged lines to include
	// around each change in unified output. Default is 3.
	ContextLines int

	// IgnoreCase performs case-insensitive comparison.
	IgnoreCase bool

	// IgnoreWhitespace ignores leading/trailing whitespace on each line.
	IgnoreWhitespace bool
}

// DefaultDiffOptions returns default diff options.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{ContextLines: udiff.DefaultContextLines}
}

// LineEdit replaces a run of old lines with a run of new lines.
type LineEdit struct {
	// OldStart and OldEnd bound the replaced lines in the old text (0-indexed).
	OldStart, OldEnd int

	// NewStart is where the inserted lines begin in the new text.
	NewStart int

	// Deleted and Inserted hold the line contents, terminators included.
	Deleted  []string
	Inserted []string
}

// DiffResult contains the complete result of a diff operation.
type DiffResult struct {
	Edits        []LineEdit
	OldLineCount int
	NewLineCount int

	oldText string
	byteOff []int // byte offset of each old line, plus the end
}

// HasChanges returns true if there are any differences.
func (dr DiffResult) HasChanges() bool {
	return len(dr.Edits) > 0
}

// InsertedLines returns the total number of inserted lines.
func (dr DiffResult) InsertedLines() int {
	count := 0
	for _, e := range dr.Edits {
		count += len(e.Inserted)
	}
	return count
}

// DeletedLines returns the total number of deleted lines.
func (dr DiffResult) DeletedLines() int {
	count := 0
	for _, e := range dr.Edits {
		count += len(e.Deleted)
	}
	return count
}

// ChangedLines returns the new-text line numbers that were inserted.
func (dr DiffResult) ChangedLines() []int {
	var out []int
	for _, e := range dr.Edits {
		for i := range e.Inserted {
			out = append(out, e.NewStart+i)
		}
	}
	return out
}

// Summary describes the diff in one line.
func (dr DiffResult) Summary() string {
	if !dr.HasChanges() {
		return "no changes"
	}
	return fmt.Sprintf("%s added, %s removed", plural(dr.InsertedLines(), "line"), plural(dr.DeletedLines(), "line"))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// ComputeLineDiff computes line-based diff between two ropes.
func ComputeLineDiff(oldRope, newRope rope.Rope, opts DiffOptions) DiffResult {
	return ComputeLineDiffStrings(oldRope.String(), newRope.String(), opts)
}

// ComputeLineDiffStrings computes line-based diff between two strings.
func ComputeLineDiffStrings(oldStr, newStr string, opts DiffOptions) DiffResult {
	oldLines := splitLines(oldStr)
	newLines := splitLines(newStr)

	in := newInterner(opts)
	encOld := in.encode(oldLines)
	encNew := in.encode(newLines)

	result := DiffResult{
		OldLineCount: len(oldLines),
		NewLineCount: len(newLines),
		oldText:      oldStr,
		byteOff:      make([]int, len(oldLines)+1),
	}
	for i, l := range oldLines {
		result.byteOff[i+1] = result.byteOff[i] + len(l)
	}

	delta := 0
	for _, e := range udiff.Strings(encOld, encNew) {
		start := utf8.RuneCountInString(encOld[:e.Start])
		end := utf8.RuneCountInString(encOld[:e.End])
		inserted := utf8.RuneCountInString(e.New)
		newStart := start + delta

		edit := LineEdit{
			OldStart: start,
			OldEnd:   end,
			NewStart: newStart,
			Deleted:  oldLines[start:end],
			Inserted: newLines[newStart : newStart+inserted],
		}
		result.Edits = append(result.Edits, edit)
		delta += inserted - (end - start)
	}
	return result
}

// UnifiedDiff returns the diff in unified diff format.
func UnifiedDiff(result DiffResult, oldName, newName string, contextLines int) (string, error) {
	if !result.HasChanges() {
		return "", nil
	}
	edits := make([]udiff.Edit, len(result.Edits))
	for i, e := range result.Edits {
		edits[i] = udiff.Edit{
			Start: result.byteOff[e.OldStart],
			End:   result.byteOff[e.OldEnd],
			New:   strings.Join(e.Inserted, ""),
		}
	}
	return udiff.ToUnified(oldName, newName, result.oldText, edits, contextLines)
}

// splitLines splits text after each newline, dropping the empty tail.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// interner maps each distinct line to one rune so lines diff as symbols.
type interner struct {
	opts DiffOptions
	ids  map[string]rune
}

// symbolBase starts above the BMP, clear of the surrogate range.
const symbolBase = 0x10000

func newInterner(opts DiffOptions) *interner {
	return &interner{opts: opts, ids: make(map[string]rune)}
}

func (in *interner) encode(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		key := in.normalize(l)
		id, ok := in.ids[key]
		if !ok {
			id = rune(symbolBase + len(in.ids))
			in.ids[key] = id
		}
		sb.WriteRune(id)
	}
	return sb.String()
}

func (in *interner) normalize(line string) string {
	if in.opts.IgnoreWhitespace {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(line, "\n") {
			trimmed += "\n"
		}
		line = trimmed
	}
	if in.opts.IgnoreCase {
		line = strings.ToLower(line)
	}
	return line
}
