package parser

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/lexer"
)

// parseExpression parses the full comparison-level production (spec
// §4.4): comparison < additive < multiplicative < unary < atom.
func (p *Parser) parseExpression() (*ast.Expression, error) {
	return p.parseComparison()
}

func (p *Parser) parseComparison() (*ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		op, ok, err := p.tryConsumeComparisonOp()
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(left.Pos, op, left, right)
	}
}

// tryConsumeComparisonOp consumes one of =, <>, <=, >=, <, > — the
// two-character forms must be tried before the corresponding
// single-character one.
func (p *Parser) tryConsumeComparisonOp() (ast.BinOp, bool, error) {
	if ok, err := p.buf.TryConsumeSymbol('='); err != nil {
		return 0, false, err
	} else if ok {
		return ast.OpEq, true, nil
	}
	if ok, err := p.tryConsumeSymbolPair('<', '>'); err != nil {
		return 0, false, err
	} else if ok {
		return ast.OpNe, true, nil
	}
	if ok, err := p.tryConsumeSymbolPair('<', '='); err != nil {
		return 0, false, err
	} else if ok {
		return ast.OpLe, true, nil
	}
	if ok, err := p.tryConsumeSymbolPair('>', '='); err != nil {
		return 0, false, err
	} else if ok {
		return ast.OpGe, true, nil
	}
	if ok, err := p.buf.TryConsumeSymbol('<'); err != nil {
		return 0, false, err
	} else if ok {
		return ast.OpLt, true, nil
	}
	if ok, err := p.buf.TryConsumeSymbol('>'); err != nil {
		return 0, false, err
	} else if ok {
		return ast.OpGt, true, nil
	}
	return 0, false, nil
}

// tryConsumeSymbolPair speculatively consumes two adjacent symbols,
// backtracking if the second does not match and dropping the mark if
// both do.
func (p *Parser) tryConsumeSymbolPair(first, second rune) (bool, error) {
	p.buf.Mark()
	ok, err := p.buf.TryConsumeSymbol(first)
	if err != nil {
		return false, err
	}
	if !ok {
		p.buf.Backtrack()
		return false, nil
	}
	ok, err = p.buf.TryConsumeSymbol(second)
	if err != nil {
		return false, err
	}
	if !ok {
		p.buf.Backtrack()
		return false, nil
	}
	p.buf.Clear()
	return true, nil
}

func (p *Parser) parseAdditive() (*ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		sym, ok, err := p.buf.TryConsumeSymbolOneOf('+', '-')
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		op := ast.OpAdd
		if sym == '-' {
			op = ast.OpSub
		}
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(left.Pos, op, left, right)
	}
}

func (p *Parser) parseMultiplicative() (*ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		sym, ok, err := p.buf.TryConsumeSymbolOneOf('*', '/')
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		op := ast.OpMul
		if sym == '/' {
			op = ast.OpDiv
		}
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(left.Pos, op, left, right)
	}
}

// parseUnary handles a leading unary minus by desugaring it to
// "0 - operand" (spec §4.4), since the value domain has no standalone
// negation operator.
func (p *Parser) parseUnary() (*ast.Expression, error) {
	tok, err := p.buf.Read()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lexer.KindSymbol && tok.Symbol == '-' {
		pos := tok.Pos
		p.buf.Consume()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Binary(pos, ast.OpSub, ast.IntegerLiteral(pos, 0), operand), nil
	}
	return p.parseAtom()
}

// parseAtom parses a string literal, numeric literal, parenthesized
// expression, or a qualified name optionally followed by "(args)" as a
// function call (spec §4.4).
func (p *Parser) parseAtom() (*ast.Expression, error) {
	tok, err := p.buf.Read()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == lexer.KindSymbol && tok.Symbol == '"':
		return p.parseStringLiteral()
	case tok.Kind == lexer.KindDigits:
		return p.parseNumericLiteral()
	case tok.Kind == lexer.KindSymbol && tok.Symbol == '(':
		p.buf.Consume()
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		if err := p.buf.DemandSymbol(')'); err != nil {
			return nil, err
		}
		return inner, nil
	case tok.Kind == lexer.KindWord:
		name, err := p.demandName()
		if err != nil {
			return nil, err
		}
		args, isCall, err := p.tryParseCallArgs()
		if err != nil {
			return nil, err
		}
		if isCall {
			return ast.Call(tok.Pos, name, args), nil
		}
		return ast.Variable(tok.Pos, name), nil
	default:
		return nil, basicerrors.Unexpected("expression", tok.String(), tok.Pos)
	}
}

// tryParseCallArgs parses "(expr [, expr]*)" immediately following a
// name, with no intervening whitespace before '(' — distinguishing a
// call from "name (expr)" which spec §4.4 treats as the bare variable
// name followed by a parenthesized expression statement boundary.
func (p *Parser) tryParseCallArgs() ([]*ast.Expression, bool, error) {
	ok, err := p.buf.TryConsumeSymbol('(')
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	closed, err := p.buf.TryConsumeSymbol(')')
	if err != nil {
		return nil, false, err
	}
	if closed {
		return nil, true, nil
	}

	var args []*ast.Expression
	for {
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, false, err
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, false, err
		}
		args = append(args, arg)

		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, false, err
		}
		comma, err := p.buf.TryConsumeSymbol(',')
		if err != nil {
			return nil, false, err
		}
		if !comma {
			break
		}
	}

	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandSymbol(')'); err != nil {
		return nil, false, err
	}
	return args, true, nil
}
