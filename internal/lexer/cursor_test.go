package lexer

import (
	"testing"

	"litsort/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.go.in", []byte(content))
	return fs.Get(id)
}

// "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("expected EOF with zero bytes")
	}
}

func TestMarkSpanReset(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	if sp := cursor.SpanFrom(m); sp.Start != 1 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 1 {
		t.Fatalf("Reset: Off = %d", cursor.Off)
	}
}

func TestPeek2AtEnd(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatal("Peek2 must fail with one byte left")
	}
}

func TestEat(t *testing.T) {
	cursor := NewCursor(createFile("/x"))
	if cursor.Eat('x') {
		t.Fatal("Eat must not consume a mismatching byte")
	}
	if !cursor.Eat('/') || cursor.Off != 1 {
		t.Fatal("Eat must consume a matching byte")
	}
}

func TestRangeCursorClamps(t *testing.T) {
	f := createFile("abcdef")
	c := NewRangeCursor(f, source.Span{Start: 2, End: 4})
	if c.Peek() != 'c' {
		t.Fatalf("range start: %q", c.Peek())
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Fatal("Peek2 must respect Limit")
	}
	if string(c.Rest()) != "d" {
		t.Fatalf("Rest = %q", c.Rest())
	}
	c.Bump()
	if !c.EOF() {
		t.Fatal("expected EOF at range end")
	}

	wide := NewRangeCursor(f, source.Span{Start: 4, End: 100})
	if wide.Limit != 6 {
		t.Fatalf("Limit must clamp to content, got %d", wide.Limit)
	}
	inverted := NewRangeCursor(f, source.Span{Start: 5, End: 1})
	if !inverted.EOF() {
		t.Fatal("inverted range must be empty")
	}
}
