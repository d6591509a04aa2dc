package rope

import (
	"strings"
	"unicode/utf8"
)

// Builder accumulates text and builds a rope in one pass.
// It implements io.Writer so readers can be copied straight into it.
type Builder struct {
	chunks []Chunk
	buf    strings.Builder
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) (int, error) {
	b.buf.WriteString(s)
	if b.buf.Len() >= MaxChunkSize*4 {
		b.flush(false)
	}
	return len(s), nil
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	return b.WriteString(string(p))
}

// flush moves buffered text into chunks. Unless final, an incomplete trailing
// UTF-8 sequence stays buffered so no chunk splits a rune.
func (b *Builder) flush(final bool) {
	s := b.buf.String()
	b.buf.Reset()

	cut := len(s)
	if !final {
		p := len(s) - 1
		for p > 0 && p > len(s)-utf8.UTFMax && !isUTF8Start(s[p]) {
			p--
		}
		if p >= 0 && !utf8.FullRuneInString(s[p:]) {
			cut = p
		}
	}
	b.chunks = append(b.chunks, splitIntoChunks(s[:cut])...)
	b.buf.WriteString(s[cut:])
}

// Build returns the rope and resets the builder.
func (b *Builder) Build() Rope {
	b.flush(true)
	r := buildFromChunks(b.chunks)
	b.chunks = nil
	return r
}
