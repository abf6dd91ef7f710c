package lexbuf

import (
	"strings"

	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/lexer"
)

// TryConsumeWord consumes and returns true if the current lexeme is a
// Word matching text case-insensitively.
func (b *Buffer) TryConsumeWord(text string) (bool, error) {
	tok, err := b.Read()
	if err != nil {
		return false, err
	}
	if tok.Kind == lexer.KindWord && strings.EqualFold(tok.Text, text) {
		b.Consume()
		return true, nil
	}
	return false, nil
}

// TryConsumeAnyWord consumes and returns the current lexeme's text if
// it is a Word, regardless of content.
func (b *Buffer) TryConsumeAnyWord() (string, bool, error) {
	tok, err := b.Read()
	if err != nil {
		return "", false, err
	}
	if tok.Kind == lexer.KindWord {
		b.Consume()
		return tok.Text, true, nil
	}
	return "", false, nil
}

// TryConsumeSymbol consumes and returns true if the current lexeme is
// the Symbol ch.
func (b *Buffer) TryConsumeSymbol(ch rune) (bool, error) {
	tok, err := b.Read()
	if err != nil {
		return false, err
	}
	if tok.Kind == lexer.KindSymbol && tok.Symbol == ch {
		b.Consume()
		return true, nil
	}
	return false, nil
}

// TryConsumeSymbolOneOf consumes and returns the current lexeme's
// symbol if it is one of the given symbols.
func (b *Buffer) TryConsumeSymbolOneOf(symbols ...rune) (rune, bool, error) {
	tok, err := b.Read()
	if err != nil {
		return 0, false, err
	}
	if tok.Kind == lexer.KindSymbol {
		for _, s := range symbols {
			if tok.Symbol == s {
				b.Consume()
				return s, true, nil
			}
		}
	}
	return 0, false, nil
}

// DemandAnyWord consumes and returns the current lexeme's text,
// erroring if it is not a Word.
func (b *Buffer) DemandAnyWord() (string, error) {
	tok, err := b.Read()
	if err != nil {
		return "", err
	}
	if tok.Kind != lexer.KindWord {
		return "", basicerrors.Unexpected("word", tok.String(), tok.Pos)
	}
	b.Consume()
	return tok.Text, nil
}

// DemandSpecificWord consumes the current lexeme if it is a Word
// matching expected case-insensitively, erroring otherwise.
func (b *Buffer) DemandSpecificWord(expected string) error {
	tok, err := b.Read()
	if err != nil {
		return err
	}
	if tok.Kind != lexer.KindWord || !strings.EqualFold(tok.Text, expected) {
		return basicerrors.Unexpected(expected, tok.String(), tok.Pos)
	}
	b.Consume()
	return nil
}

// DemandSymbol consumes the current lexeme if it is the Symbol ch,
// erroring otherwise.
func (b *Buffer) DemandSymbol(ch rune) error {
	tok, err := b.Read()
	if err != nil {
		return err
	}
	if tok.Kind != lexer.KindSymbol || tok.Symbol != ch {
		return basicerrors.Unexpected("symbol '"+string(ch)+"'", tok.String(), tok.Pos)
	}
	b.Consume()
	return nil
}

// DemandEOL consumes the current lexeme if it is EOL, erroring
// otherwise.
func (b *Buffer) DemandEOL() error {
	tok, err := b.Read()
	if err != nil {
		return err
	}
	if tok.Kind != lexer.KindEOL {
		return basicerrors.Unexpected("end of line", tok.String(), tok.Pos)
	}
	b.Consume()
	return nil
}

// DemandEOLOrEOF consumes the current lexeme if it is EOL or EOF,
// erroring otherwise.
func (b *Buffer) DemandEOLOrEOF() error {
	tok, err := b.Read()
	if err != nil {
		return err
	}
	if tok.Kind != lexer.KindEOL && tok.Kind != lexer.KindEOF {
		return basicerrors.Unexpected("end of line or end of file", tok.String(), tok.Pos)
	}
	b.Consume()
	return nil
}

// DemandWhitespace consumes the current lexeme if it is Whitespace,
// erroring otherwise.
func (b *Buffer) DemandWhitespace() error {
	tok, err := b.Read()
	if err != nil {
		return err
	}
	if tok.Kind != lexer.KindWhitespace {
		return basicerrors.Unexpected("whitespace", tok.String(), tok.Pos)
	}
	b.Consume()
	return nil
}

// SkipWhitespace consumes lexemes while the current one is
// Whitespace. Returns true if at least one was consumed.
func (b *Buffer) SkipWhitespace() (bool, error) {
	found := false
	for {
		tok, err := b.Read()
		if err != nil {
			return found, err
		}
		if tok.Kind != lexer.KindWhitespace {
			return found, nil
		}
		b.Consume()
		found = true
	}
}

// SkipWhitespaceAndEOL consumes lexemes while the current one is
// Whitespace or EOL.
func (b *Buffer) SkipWhitespaceAndEOL() error {
	for {
		tok, err := b.Read()
		if err != nil {
			return err
		}
		if tok.Kind != lexer.KindWhitespace && tok.Kind != lexer.KindEOL {
			return nil
		}
		b.Consume()
	}
}
