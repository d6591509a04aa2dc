package rope

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"testing/quick"
	"unicode/utf8"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if !r.IsEmpty() {
		t.Error("New rope should be empty")
	}
	if r.LineCount() != 1 {
		t.Errorf("New rope should have 1 line, got %d", r.LineCount())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"with newline", "hello\nworld"},
		{"unicode", "hello 世界 🌍"},
		{"combining", "été"},
		{"long string", strings.Repeat("abcdefghij", 100)},
		{"very long unicode", strings.Repeat("ñandú\n", 2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if r.Len() != len(tt.input) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.input))
			}
			if want := utf8.RuneCountInString(tt.input); r.LenChars() != want {
				t.Errorf("LenChars() = %d, want %d", r.LenChars(), want)
			}
			if want := strings.Count(tt.input, "\n") + 1; r.LineCount() != want {
				t.Errorf("LineCount() = %d, want %d", r.LineCount(), want)
			}
		})
	}
}

func TestFromReaderKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("é世🌍x\n", 700)
	r, err := FromReader(iotest.OneByteReader(strings.NewReader(text)))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if r.String() != text {
		t.Fatal("FromReader produced different text")
	}
	it := r.Chunks()
	for it.Next() {
		if !utf8.ValidString(it.Chunk().String()) {
			t.Fatalf("chunk splits a rune: %q", it.Chunk().String())
		}
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		at       int
		text     string
		expected string
	}{
		{"insert at start", "world", 0, "hello ", "hello world"},
		{"insert at end", "hello", 5, " world", "hello world"},
		{"insert in middle", "helloworld", 5, " ", "hello world"},
		{"insert into empty", "", 0, "hello", "hello"},
		{"insert empty string", "hello", 3, "", "hello"},
		{"insert between wide runes", "世界", 1, "!", "世!界"},
		{"insert past end appends", "ab", 10, "c", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.initial).Insert(tt.at, tt.text)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		start    int
		end      int
		expected string
	}{
		{"delete from start", "hello world", 0, 6, "world"},
		{"delete from end", "hello world", 5, 11, "hello"},
		{"delete all", "hello", 0, 5, ""},
		{"delete nothing", "hello", 3, 3, "hello"},
		{"delete beyond end", "hello", 0, 100, ""},
		{"delete wide rune", "a世b", 1, 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.initial).Delete(tt.start, tt.end)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	r := FromString("hello world").Replace(6, 11, "universe")
	if got := r.String(); got != "hello universe" {
		t.Errorf("got %q", got)
	}
	r = FromString("hello").Replace(5, 5, " world")
	if got := r.String(); got != "hello world" {
		t.Errorf("got %q", got)
	}
}

func TestSplitAndConcat(t *testing.T) {
	text := strings.Repeat("0123456789ñ", 300)
	r := FromString(text)
	for _, at := range []int{0, 1, 11, 250, 1000, r.LenChars()} {
		left, right := r.Split(at)
		if left.LenChars() != at {
			t.Errorf("Split(%d) left has %d chars", at, left.LenChars())
		}
		if got := left.Concat(right).String(); got != text {
			t.Errorf("Split(%d) then Concat lost text", at)
		}
	}
}

func TestLineQueries(t *testing.T) {
	r := FromString("a\nbc\n\nd")

	lineStarts := []int{0, 2, 5, 6}
	for line, want := range lineStarts {
		if got := r.LineToChar(line); got != want {
			t.Errorf("LineToChar(%d) = %d, want %d", line, got, want)
		}
	}
	if got := r.LineToChar(10); got != r.LenChars() {
		t.Errorf("LineToChar past end = %d, want %d", got, r.LenChars())
	}

	charLines := map[int]int{0: 0, 1: 0, 2: 1, 4: 1, 5: 2, 6: 3, 7: 3, 99: 3}
	for ci, want := range charLines {
		if got := r.CharToLine(ci); got != want {
			t.Errorf("CharToLine(%d) = %d, want %d", ci, got, want)
		}
	}

	lines := []string{"a\n", "bc\n", "\n", "d"}
	for i, want := range lines {
		if got := r.Line(i); got != want {
			t.Errorf("Line(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestLineQueriesAcrossChunks(t *testing.T) {
	// Seven characters and eight bytes per line.
	r := FromString(strings.Repeat("line ñ\n", 500))
	for _, k := range []int{0, 1, 37, 250, 499} {
		if got := r.LineToChar(k); got != 7*k {
			t.Errorf("LineToChar(%d) = %d, want %d", k, got, 7*k)
		}
		if got := r.CharToLine(7*k + 3); got != k {
			t.Errorf("CharToLine(%d) = %d, want %d", 7*k+3, got, k)
		}
		if got := r.CharToByte(7 * k); got != 8*k {
			t.Errorf("CharToByte(%d) = %d, want %d", 7*k, got, 8*k)
		}
		if got := r.ByteToChar(8 * k); got != 7*k {
			t.Errorf("ByteToChar(%d) = %d, want %d", 8*k, got, 7*k)
		}
		if ch, _ := r.CharAt(7*k + 5); ch != 'ñ' {
			t.Errorf("CharAt(%d) = %q, want 'ñ'", 7*k+5, ch)
		}
	}
	if r.LineCount() != 501 {
		t.Errorf("LineCount() = %d, want 501", r.LineCount())
	}
}

func TestWriteTo(t *testing.T) {
	text := strings.Repeat("write me\n", 100)
	var sb strings.Builder
	n, err := FromString(text).WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(len(text)) || sb.String() != text {
		t.Errorf("WriteTo wrote %d bytes, text equal = %v", n, sb.String() == text)
	}
	var _ io.WriterTo = Rope{}
}

func TestEquals(t *testing.T) {
	a := FromString(strings.Repeat("x", 1000))
	b := FromString(strings.Repeat("x", 500)).Concat(FromString(strings.Repeat("x", 500)))
	if !a.Equals(b) {
		t.Error("ropes with equal text should be equal")
	}
	if a.Equals(b.Insert(3, "y")) {
		t.Error("ropes with different text should differ")
	}
}

func TestInsertMatchesRuneModel(t *testing.T) {
	f := func(s string, at uint16, ins string) bool {
		runes := []rune(s)
		pos := int(at) % (len(runes) + 1)
		want := string(runes[:pos]) + ins + string(runes[pos:])
		r := FromString(s).Insert(pos, ins)
		return r.String() == want && r.LenChars() == utf8.RuneCountInString(want)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDeleteMatchesRuneModel(t *testing.T) {
	f := func(s string, a, b uint16) bool {
		runes := []rune(s)
		start := int(a) % (len(runes) + 1)
		end := start + int(b)%(len(runes)-start+1)
		want := string(runes[:start]) + string(runes[end:])
		return FromString(s).Delete(start, end).String() == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
