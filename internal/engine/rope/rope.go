package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Rope is an immutable rope data structure for efficient text storage.
// Operations return new Rope values; the original is never modified.
// Positions are character (rune) indices unless a name says otherwise.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	var b Builder
	if _, err := io.Copy(&b, r); err != nil {
		return Rope{}, err
	}
	return b.Build(), nil
}

func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	nodes := make([]*Node, 0, len(chunks)/MaxChunksPerLeaf+1)
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leaf := make([]Chunk, end-i)
		copy(leaf, chunks[i:end])
		nodes = append(nodes, newLeafNodeWithChunks(leaf))
	}
	for len(nodes) > 1 {
		parents := make([]*Node, 0, len(nodes)/MaxChildren+1)
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}
	return Rope{root: nodes[0]}
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{}
	}
	return r.root.summary
}

// Len returns the total byte length.
func (r Rope) Len() int {
	return r.Summary().Bytes
}

// LenChars returns the number of characters.
func (r Rope) LenChars() int {
	return r.Summary().Chars
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	return r.Summary().Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.Len())
	r.root.appendTo(&sb)
	return sb.String()
}

// WriteTo writes the rope's text to w chunk by chunk.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	it := r.Chunks()
	for it.Next() {
		n, err := io.WriteString(w, it.Chunk().String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// CharToByte converts a character index to a byte offset.
// Indices past the end clamp to Len().
func (r Rope) CharToByte(ci int) int {
	if r.root == nil || ci <= 0 {
		return 0
	}
	sum := r.root.summary
	if ci >= sum.Chars {
		return sum.Bytes
	}
	if sum.Flags&FlagASCII != 0 {
		return ci
	}
	c, before := r.root.seekChar(ci)
	return before.Bytes + charToByteIn(c.String(), ci-before.Chars)
}

// ByteToChar converts a byte offset to a character index.
// An offset inside a UTF-8 sequence counts the partial rune.
func (r Rope) ByteToChar(bi int) int {
	if r.root == nil || bi <= 0 {
		return 0
	}
	sum := r.root.summary
	if bi >= sum.Bytes {
		return sum.Chars
	}
	if sum.Flags&FlagASCII != 0 {
		return bi
	}
	return utf8.RuneCountInString(r.sliceBytes(0, bi))
}

// CharAt returns the character at index ci.
func (r Rope) CharAt(ci int) (rune, bool) {
	if r.root == nil || ci < 0 || ci >= r.LenChars() {
		return 0, false
	}
	c, before := r.root.seekChar(ci)
	s := c.String()
	off := charToByteIn(s, ci-before.Chars)
	ch, _ := utf8.DecodeRuneInString(s[off:])
	return ch, true
}

// Slice returns the text in the character range [start, end).
func (r Rope) Slice(start, end int) string {
	if r.root == nil || start >= end {
		return ""
	}
	return r.sliceBytes(r.CharToByte(start), r.CharToByte(end))
}

func (r Rope) sliceBytes(start, end int) string {
	end = min(end, r.Len())
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// LineToChar returns the character index of the start of line.
// Lines are 0-indexed; lines past the end clamp to LenChars().
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	sum := r.root.summary
	if line > sum.Lines {
		return sum.Chars
	}
	c, before, ok := r.root.seekLine(line)
	if !ok {
		return sum.Chars
	}
	return before.Chars + nthNewlineIn(c.String(), line-before.Lines)
}

// CharToLine returns the line containing character index ci.
// An index at or past the end yields the last line.
func (r Rope) CharToLine(ci int) int {
	if r.root == nil || ci <= 0 {
		return 0
	}
	sum := r.root.summary
	if ci >= sum.Chars {
		return sum.Lines
	}
	c, before := r.root.seekChar(ci)
	return before.Lines + countNewlinesIn(c.String(), ci-before.Chars)
}

// Line returns the text of line including its trailing newline, if any.
func (r Rope) Line(line int) string {
	return r.Slice(r.LineToChar(line), r.LineToChar(line+1))
}

// Insert inserts text at character index ci.
func (r Rope) Insert(ci int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.IsEmpty() {
		return FromString(text)
	}
	left, right := r.splitBytes(r.CharToByte(ci))
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes the characters in [start, end).
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil || start >= end || start >= r.LenChars() {
		return r
	}
	bs, be := r.CharToByte(start), r.CharToByte(end)
	left, rest := r.splitBytes(bs)
	_, right := rest.splitBytes(be - bs)
	return left.Concat(right)
}

// Replace replaces the characters in [start, end) with text.
func (r Rope) Replace(start, end int, text string) Rope {
	return r.Delete(start, end).Insert(start, text)
}

// Split splits the rope at character index ci.
func (r Rope) Split(ci int) (Rope, Rope) {
	return r.splitBytes(r.CharToByte(ci))
}

func (r Rope) splitBytes(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat concatenates two ropes.
func (r Rope) Concat(other Rope) Rope {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rope{root: concat(r.root, other.root)}
}

// Height returns the height of the rope tree.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// Equals returns true if two ropes contain the same text.
func (r Rope) Equals(other Rope) bool {
	if r.root == other.root {
		return true
	}
	if r.Summary() != other.Summary() {
		return false
	}
	return r.String() == other.String()
}
