package lexer

import (
	"testing"

	"loom/internal/source"
)

func createFile(content string) *source.SourceFile {
	mgr := source.NewSourceManager()
	id, err := mgr.AddVirtual("test.lm", []byte(content))
	if err != nil {
		panic(err)
	}
	return mgr.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	if cursor.EOF() {
		t.Error("expected not EOF at start")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("expected peek 'a', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'a' {
		t.Errorf("expected bump 'a', got %c", b)
	}

	if cursor.Peek() != '\n' {
		t.Errorf("expected peek '\\n', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != '\n' {
		t.Errorf("expected bump '\\n', got %c", b)
	}

	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'b' {
		t.Errorf("expected bump 'b', got %c", b)
	}

	if !cursor.EOF() {
		t.Error("expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("expected peek 0 at EOF, got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 0 {
		t.Errorf("expected bump 0 at EOF, got %c", b)
	}
}

func TestCursorPeek2(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("expected Peek2('a','b'), got (%c,%c,%v)", b0, b1, ok)
	}

	cursor.Bump() // 'a'

	b0, b1, ok = cursor.Peek2()
	if !ok || b0 != 'b' || b1 != 'c' {
		t.Errorf("expected Peek2('b','c'), got (%c,%c,%v)", b0, b1, ok)
	}

	cursor.Bump() // 'b'

	b0, b1, ok = cursor.Peek2()
	if ok || b0 != 0 || b1 != 0 {
		t.Errorf("expected Peek2 to fail at end, got (%c,%c,%v)", b0, b1, ok)
	}
}

func TestSpanFromResolve(t *testing.T) {
	mgr := source.NewSourceManager()
	id, err := mgr.AddVirtual("test.lm", []byte("α\nβ"))
	if err != nil {
		t.Fatal(err)
	}
	file := mgr.Get(id)
	cursor := NewCursor(file)

	mark := cursor.Mark()
	cursor.Bump() // first byte of α
	cursor.Bump() // second byte of α
	span := cursor.SpanFrom(mark)

	if span.Start != 0 || span.End != 2 {
		t.Errorf("expected span (0,2), got (%d,%d)", span.Start, span.End)
	}

	start, end := mgr.Resolve(span)
	if start != (source.LineCol{Line: 1, Col: 1}) {
		t.Errorf("expected start {1,1}, got %+v", start)
	}
	if end != (source.LineCol{Line: 1, Col: 3}) {
		t.Errorf("expected end {1,3}, got %+v", end)
	}

	mark2 := cursor.Mark()
	cursor.Bump() // '\n'
	span2 := cursor.SpanFrom(mark2)
	if span2.Start != 2 || span2.End != 3 {
		t.Errorf("expected span2 (2,3), got (%d,%d)", span2.Start, span2.End)
	}

	start2, end2 := mgr.Resolve(span2)
	if start2 != (source.LineCol{Line: 1, Col: 3}) {
		t.Errorf("expected start2 {1,3}, got %+v", start2)
	}
	if end2 != (source.LineCol{Line: 2, Col: 1}) {
		t.Errorf("expected end2 {2,1}, got %+v", end2)
	}
}

func TestEatNewline(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	if !cursor.Eat('a') {
		t.Error("expected Eat('a') to succeed")
	}
	if cursor.Peek() != '\n' {
		t.Errorf("expected peek '\\n' after Eat('a'), got %c", cursor.Peek())
	}

	if !cursor.Eat('\n') {
		t.Error("expected Eat('\\n') to succeed")
	}
	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b' after Eat('\\n'), got %c", cursor.Peek())
	}

	if !cursor.Eat('b') {
		t.Error("expected Eat('b') to succeed")
	}
	if !cursor.EOF() {
		t.Error("expected EOF after Eat('b')")
	}
	if cursor.Eat('x') {
		t.Error("expected Eat('x') at EOF to fail")
	}

	cursor.Reset(Mark(0))
	if cursor.Eat('x') {
		t.Error("expected Eat('x') to fail when current char is 'a'")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("expected cursor unchanged after failed Eat, got %c", cursor.Peek())
	}
}

func TestMarkReset(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	mark1 := cursor.Mark()
	cursor.Bump()
	mark2 := cursor.Mark()
	cursor.Bump()

	cursor.Reset(mark2)
	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b' after reset to mark2, got %c", cursor.Peek())
	}

	cursor.Reset(mark1)
	if cursor.Peek() != 'a' {
		t.Errorf("expected peek 'a' after reset to mark1, got %c", cursor.Peek())
	}
}
