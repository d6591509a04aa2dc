package buffer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/kestrel/internal/engine/rope"
)

// Buffer wraps a Rope with the file state the editor needs.
// All positions are character indices.
type Buffer struct {
	rope     rope.Rope
	saved    rope.Rope
	path     string
	readOnly bool
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{rope: rope.New()}
	for _, opt := range opts {
		opt(b)
	}
	b.saved = b.rope
	return b
}

// NewFromString creates a buffer with initial content, which counts as saved.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.rope = rope.FromString(s)
	b.saved = b.rope
	return b
}

// NewFromReader creates a buffer from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	rp, err := rope.FromReader(r)
	if err != nil {
		return nil, err
	}
	b := New(opts...)
	b.rope = rp
	b.saved = rp
	return b, nil
}

// Open reads the file at path into a new buffer bound to that path.
func Open(path string, opts ...Option) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewFromReader(f, append([]Option{WithFilePath(path)}, opts...)...)
}

// Read Operations

// Rope returns an immutable snapshot of the text.
func (b *Buffer) Rope() rope.Rope {
	return b.rope
}

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return b.rope.String()
}

// LenChars returns the number of characters in the buffer.
func (b *Buffer) LenChars() int {
	return b.rope.LenChars()
}

// LenLines returns the number of lines. An empty buffer has one line, and a
// trailing newline starts a final empty line.
func (b *Buffer) LenLines() int {
	return b.rope.LineCount()
}

// Char returns the character at index i.
func (b *Buffer) Char(i int) (rune, bool) {
	return b.rope.CharAt(i)
}

// Line returns the text of line including its terminator.
func (b *Buffer) Line(line int) string {
	return b.rope.Line(line)
}

// LineText returns the text of line without its terminator.
func (b *Buffer) LineText(line int) string {
	content, _ := splitTerminator(b.rope.Line(line))
	return content
}

// CharToLine returns the line containing character index i.
func (b *Buffer) CharToLine(i int) int {
	return b.rope.CharToLine(i)
}

// LineToChar returns the character index where line starts.
func (b *Buffer) LineToChar(line int) int {
	return b.rope.LineToChar(line)
}

// LineContentEnd returns the index just past the last non-terminator
// character of line.
func (b *Buffer) LineContentEnd(line int) int {
	text := b.rope.Line(line)
	_, term := splitTerminator(text)
	return b.rope.LineToChar(line) + runeLen(text) - runeLen(term)
}

// Slice returns the text in [start, end), clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	return b.rope.Slice(max(start, 0), min(end, b.rope.LenChars()))
}

// WriteTo writes the buffer's text to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	return b.rope.WriteTo(w)
}

// Write Operations

// Insert inserts s at character index i.
func (b *Buffer) Insert(i int, s string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if i < 0 || i > b.rope.LenChars() {
		return ErrOffsetOutOfRange
	}
	b.rope = b.rope.Insert(i, s)
	return nil
}

// Remove deletes the characters in [start, end).
func (b *Buffer) Remove(start, end int) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if start < 0 || start > end || end > b.rope.LenChars() {
		return ErrRangeInvalid
	}
	b.rope = b.rope.Delete(start, end)
	return nil
}

// File State

// IsModified reports whether the text differs from the last save.
func (b *Buffer) IsModified() bool {
	return !b.rope.Equals(b.saved)
}

// MarkSaved records the current text as the saved state.
func (b *Buffer) MarkSaved() {
	b.saved = b.rope
}

// Saved returns the text as of the last save.
func (b *Buffer) Saved() rope.Rope {
	return b.saved
}

// FilePath returns the file path, or "" for an unnamed buffer.
func (b *Buffer) FilePath() string {
	return b.path
}

// SetFilePath binds the buffer to path.
func (b *Buffer) SetFilePath(path string) {
	b.path = path
}

// FileName returns the full path when full is set, else the base name.
func (b *Buffer) FileName(full bool) string {
	if b.path == "" || full {
		return b.path
	}
	return filepath.Base(b.path)
}

// ReadOnly reports whether the buffer rejects mutation.
func (b *Buffer) ReadOnly() bool {
	return b.readOnly
}

// SetReadOnly sets the read-only flag.
func (b *Buffer) SetReadOnly(readOnly bool) {
	b.readOnly = readOnly
}

// splitTerminator separates a line from its "\n" or "\r\n" terminator.
func splitTerminator(line string) (content, term string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
