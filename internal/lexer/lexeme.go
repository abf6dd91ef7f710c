// Package lexer classifies BASIC source characters into a positioned
// stream of lexemes using maximal munch.
package lexer

import (
	"fmt"

	"github.com/cwbudde/go-basic/internal/source"
)

// Kind tags the payload carried by a Lexeme.
type Kind int

const (
	KindWord Kind = iota
	KindWhitespace
	KindDigits
	KindEOL
	KindSymbol
	KindEOF
)

// Lexeme is a single positioned lexical token. Which payload fields
// are meaningful is selected by Kind: Text for Word, Whitespace, EOL,
// and Digits; Digits additionally for KindDigits; Symbol for
// KindSymbol.
type Lexeme struct {
	Kind   Kind
	Pos    source.Position
	Text   string // raw source text for Word, Whitespace, EOL, and Digits
	Digits uint64 // parsed value for KindDigits
	Symbol rune   // the punctuation character for KindSymbol
}

// String renders the lexeme for diagnostics and test failure messages.
func (l Lexeme) String() string {
	switch l.Kind {
	case KindWord:
		return fmt.Sprintf("Word(%q)", l.Text)
	case KindWhitespace:
		return fmt.Sprintf("Whitespace(%q)", l.Text)
	case KindDigits:
		return fmt.Sprintf("Digits(%d)", l.Digits)
	case KindEOL:
		return fmt.Sprintf("EOL(%q)", l.Text)
	case KindSymbol:
		return fmt.Sprintf("Symbol(%q)", l.Symbol)
	default:
		return "EOF"
	}
}

// Content returns the literal source text the lexeme was read from.
// Concatenating Content() across a whole lexeme stream reproduces the
// source text exactly (the lex-round-trip property).
func (l Lexeme) Content() string {
	switch l.Kind {
	case KindWord, KindWhitespace, KindEOL, KindDigits:
		return l.Text
	case KindSymbol:
		return string(l.Symbol)
	default:
		return ""
	}
}

// symbolSet is the recognized punctuation set from spec §3, plus '.',
// which the parser needs to compose fractional numeric literals.
var symbolSet = map[rune]bool{
	'"': true, '\'': true, '!': true, ',': true, '$': true, '%': true,
	'&': true, '#': true, '+': true, '-': true, '*': true, '/': true,
	'(': true, ')': true, '=': true, '<': true, '>': true, '.': true,
}
