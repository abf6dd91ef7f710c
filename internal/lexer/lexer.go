package lexer

import (
	"math"

	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/source"
)

// Lexer classifies characters from a source.Reader into lexemes using
// maximal munch, per spec §4.2:
//
//   - a letter starts a greedy Word (letters only, no digits/underscore
//     — this dialect's identifiers are pure ASCII letter runs);
//   - a digit starts a greedy Digits run, parsed to an unsigned
//     accumulator that errors on overflow;
//   - space/tab starts a greedy Whitespace run;
//   - CR/LF (in any mixture) starts a greedy EOL run;
//   - a character in the recognized punctuation set yields a single
//     Symbol lexeme;
//   - end of input yields EOF forever;
//   - anything else is a lexer error.
type Lexer struct {
	r *source.Reader
}

// New wraps r as a Lexer.
func New(r *source.Reader) *Lexer {
	return &Lexer{r: r}
}

// Read returns the next lexeme. The attached position is the position
// of the lexeme's first character.
func (l *Lexer) Read() (Lexeme, error) {
	ch, ok := l.r.Peek()
	if !ok {
		return Lexeme{Kind: KindEOF, Pos: l.r.Pos()}, nil
	}
	pos := l.r.Pos()

	switch {
	case isLetter(ch):
		return l.readWord(pos)
	case isDigit(ch):
		return l.readDigits(pos)
	case isSpaceOrTab(ch):
		return l.readWhitespace(pos)
	case ch == '\r' || ch == '\n':
		return l.readEOL(pos)
	case symbolSet[ch]:
		l.r.Consume()
		return Lexeme{Kind: KindSymbol, Pos: pos, Symbol: ch}, nil
	default:
		l.r.Consume()
		return Lexeme{}, basicerrors.UnexpectedChar(ch, pos)
	}
}

func (l *Lexer) readWord(pos source.Position) (Lexeme, error) {
	var text []rune
	for {
		ch, ok := l.r.Peek()
		if !ok || !isLetter(ch) {
			break
		}
		l.r.Consume()
		text = append(text, ch)
	}
	return Lexeme{Kind: KindWord, Pos: pos, Text: string(text)}, nil
}

func (l *Lexer) readWhitespace(pos source.Position) (Lexeme, error) {
	var text []rune
	for {
		ch, ok := l.r.Peek()
		if !ok || !isSpaceOrTab(ch) {
			break
		}
		l.r.Consume()
		text = append(text, ch)
	}
	return Lexeme{Kind: KindWhitespace, Pos: pos, Text: string(text)}, nil
}

func (l *Lexer) readEOL(pos source.Position) (Lexeme, error) {
	var text []rune
	for {
		ch, ok := l.r.Peek()
		if !ok || (ch != '\r' && ch != '\n') {
			break
		}
		l.r.Consume()
		text = append(text, ch)
	}
	return Lexeme{Kind: KindEOL, Pos: pos, Text: string(text)}, nil
}

func (l *Lexer) readDigits(pos source.Position) (Lexeme, error) {
	var text []rune
	var value uint64
	for {
		ch, ok := l.r.Peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.r.Consume()
		text = append(text, ch)

		digit := uint64(ch - '0')
		if value > (math.MaxUint64-digit)/10 { // value*10+digit would overflow uint64
			return Lexeme{}, basicerrors.NumericLiteralOverflow(string(text), pos)
		}
		value = value*10 + digit
	}
	return Lexeme{Kind: KindDigits, Pos: pos, Text: string(text), Digits: value}, nil
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSpaceOrTab(ch rune) bool {
	return ch == ' ' || ch == '\t'
}
