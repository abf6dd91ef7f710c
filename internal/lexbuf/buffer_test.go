package lexbuf_test

import (
	"testing"

	"github.com/cwbudde/go-basic/internal/lexbuf"
	"github.com/cwbudde/go-basic/internal/lexer"
	"github.com/cwbudde/go-basic/internal/source"
)

func newBuffer(src string) *lexbuf.Buffer {
	return lexbuf.New(lexer.New(source.NewFromString(src)))
}

func TestReadIsIdempotentUntilConsume(t *testing.T) {
	buf := newBuffer("FOO")
	first, err := buf.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := buf.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("Read without Consume returned different lexemes: %v != %v", first, second)
	}
}

func TestMarkBacktrackRestoresCursor(t *testing.T) {
	buf := newBuffer("FOO BAR")

	before, _ := buf.Read()
	buf.Mark()
	buf.Consume()
	mid, _ := buf.Read()
	if mid == before {
		t.Fatalf("expected cursor to advance past Consume")
	}

	buf.Backtrack()
	after, _ := buf.Read()
	if after != before {
		t.Errorf("Backtrack did not restore cursor: got %v, want %v", after, before)
	}
}

func TestNestedMarkPanics(t *testing.T) {
	buf := newBuffer("FOO")
	buf.Mark()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on nested Mark")
		}
	}()
	buf.Mark()
}

func TestClearDropsOutstandingMark(t *testing.T) {
	buf := newBuffer("FOO")
	buf.Mark()
	buf.Clear()
	// A second Mark must not panic once Clear has run.
	buf.Mark()
}
