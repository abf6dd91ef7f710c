package parser

import (
	"strconv"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/lexer"
)

// parseStringLiteral parses a string opened on '"': it reads any
// lexeme other than '"'/EOL/EOF, appending its textual content, and
// closes on '"'. An EOL or EOF before the closing quote is an
// UnterminatedString error (spec §4.4).
func (p *Parser) parseStringLiteral() (*ast.Expression, error) {
	open, err := p.buf.Read()
	if err != nil {
		return nil, err
	}
	pos := open.Pos
	p.buf.Consume() // opening quote

	var text []byte
	for {
		tok, err := p.buf.Read()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == lexer.KindSymbol && tok.Symbol == '"':
			p.buf.Consume()
			return ast.StringLiteral(pos, string(text)), nil
		case tok.Kind == lexer.KindEOL || tok.Kind == lexer.KindEOF:
			return nil, basicerrors.UnterminatedString(pos)
		default:
			text = append(text, tok.Content()...)
			p.buf.Consume()
		}
	}
}

// parseNumericLiteral composes an integer, single, or double literal
// from the lexer's primitive Digits/Symbol('.')/Word("E")/Digits
// stream (spec §9 Open Question, resolved in SPEC_FULL.md §4.4):
//
//	Digits                        -> IntegerLiteral
//	Digits '.' Digits             -> SingleLiteral
//	Digits ['.' Digits] E [+-] Digits -> DoubleLiteral
func (p *Parser) parseNumericLiteral() (*ast.Expression, error) {
	lead, err := p.buf.Read()
	if err != nil {
		return nil, err
	}
	pos := lead.Pos
	p.buf.Consume()

	intText := lead.Text
	hasFraction := false
	fracText := ""

	if _, ok, err := p.peekSymbol('.'); err != nil {
		return nil, err
	} else if ok {
		p.buf.Consume()
		fracTok, err := p.demandDigitsLexeme()
		if err != nil {
			return nil, err
		}
		hasFraction = true
		fracText = fracTok.Text
	}

	hasExponent, sign, expText, err := p.tryParseExponent()
	if err != nil {
		return nil, err
	}

	switch {
	case hasExponent:
		literal := intText
		if hasFraction {
			literal += "." + fracText
		}
		literal += "e" + sign + expText
		f, perr := strconv.ParseFloat(literal, 64)
		if perr != nil {
			return nil, basicerrors.Unexpected("well-formed double literal", literal, pos)
		}
		return ast.DoubleLiteral(pos, f), nil
	case hasFraction:
		literal := intText + "." + fracText
		f, perr := strconv.ParseFloat(literal, 32)
		if perr != nil {
			return nil, basicerrors.Unexpected("well-formed single literal", literal, pos)
		}
		return ast.SingleLiteral(pos, float32(f)), nil
	default:
		if lead.Digits > (1<<31 - 1) {
			return nil, basicerrors.Unexpected("integer literal in range", intText, pos)
		}
		return ast.IntegerLiteral(pos, int32(lead.Digits)), nil
	}
}

// peekSymbol reports whether the current lexeme is the Symbol ch,
// without consuming it.
func (p *Parser) peekSymbol(ch rune) (rune, bool, error) {
	tok, err := p.buf.Read()
	if err != nil {
		return 0, false, err
	}
	if tok.Kind == lexer.KindSymbol && tok.Symbol == ch {
		return ch, true, nil
	}
	return 0, false, nil
}

func (p *Parser) demandDigitsLexeme() (lexer.Lexeme, error) {
	tok, err := p.buf.Read()
	if err != nil {
		return lexer.Lexeme{}, err
	}
	if tok.Kind != lexer.KindDigits {
		return lexer.Lexeme{}, basicerrors.Unexpected("digits", tok.String(), tok.Pos)
	}
	p.buf.Consume()
	return tok, nil
}

// tryParseExponent consumes an 'E'/'e' exponent marker with an
// optional sign and mandatory digits, immediately following (no
// intervening whitespace) the fractional or integer part.
func (p *Parser) tryParseExponent() (present bool, sign, digits string, err error) {
	tok, err := p.buf.Read()
	if err != nil {
		return false, "", "", err
	}
	if tok.Kind != lexer.KindWord || !(tok.Text == "E" || tok.Text == "e") {
		return false, "", "", nil
	}
	p.buf.Consume()

	sign = "+"
	if _, ok, err := p.peekSymbol('-'); err != nil {
		return false, "", "", err
	} else if ok {
		p.buf.Consume()
		sign = "-"
	} else if _, ok, err := p.peekSymbol('+'); err != nil {
		return false, "", "", err
	} else if ok {
		p.buf.Consume()
	}

	digitsTok, err := p.demandDigitsLexeme()
	if err != nil {
		return false, "", "", err
	}
	return true, sign, digitsTok.Text, nil
}
