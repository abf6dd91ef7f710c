// Package lexbuf provides a buffered, markable cursor over a Lexer's
// output stream, giving the parser one-step peek plus mark/backtrack
// for speculative productions (spec §4.3).
package lexbuf

import (
	"github.com/cwbudde/go-basic/internal/lexer"
)

// Buffer is a stateful cursor over a Lexer. Read returns the current
// lexeme without consuming it; Consume advances past it. Mark records
// the cursor position for a later Backtrack; only one mark may be
// outstanding at a time — calling Mark twice without an intervening
// Backtrack or Clear is a programmer error and panics, matching the
// "no nested marks" contract in spec §4.3.
type Buffer struct {
	lex     *lexer.Lexer
	history []lexer.Lexeme
	index   int
	markAt  int
	marked  bool
}

// New wraps lex as a Buffer.
func New(lex *lexer.Lexer) *Buffer {
	return &Buffer{lex: lex}
}

// Read returns the lexeme at the current cursor position, reading
// from the underlying lexer only if it hasn't been buffered yet.
// Idempotent until Consume is called.
func (b *Buffer) Read() (lexer.Lexeme, error) {
	if b.index >= len(b.history) {
		tok, err := b.lex.Read()
		if err != nil {
			return lexer.Lexeme{}, err
		}
		b.history = append(b.history, tok)
	}
	return b.history[b.index], nil
}

// Consume advances the cursor past the lexeme last returned by Read.
// Panics if nothing has ever been read, mirroring the buffer's "no
// reads yet" programmer-error contract.
func (b *Buffer) Consume() {
	if len(b.history) == 0 {
		panic("lexbuf: Consume called without a prior Read")
	}
	b.index++
}

// Mark records the current cursor position for a later Backtrack.
// Panics if a mark is already outstanding.
func (b *Buffer) Mark() {
	if b.marked {
		panic("lexbuf: Mark called without an intervening Backtrack or Clear")
	}
	b.markAt = b.index
	b.marked = true
}

// Backtrack restores the cursor to the position recorded by the most
// recent Mark and clears the mark.
func (b *Buffer) Backtrack() {
	b.index = b.markAt
	b.marked = false
}

// Clear drops history before the cursor and clears any outstanding
// mark. Call at safe points between top-level items to bound buffer
// growth (spec §9).
func (b *Buffer) Clear() {
	if b.index > 0 {
		b.history = append([]lexer.Lexeme(nil), b.history[b.index:]...)
		b.index = 0
	}
	b.marked = false
}
