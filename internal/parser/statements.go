package parser

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/lexer"
)

// unexpectedBlockToken reports a lexeme that matched no statement
// production and no block terminator.
func unexpectedBlockToken(tok lexer.Lexeme) error {
	return basicerrors.Unexpected("statement or end of block", tok.String(), tok.Pos)
}

// tryParseStatement tries each statement production in the order
// given by spec §4.4: FOR loop, IF block, then assignment-or-sub-call
// (distinguished by the presence of '=' after the leading identifier).
func (p *Parser) tryParseStatement() (*ast.Statement, bool, error) {
	if stmt, ok, err := p.tryParseForLoop(); err != nil || ok {
		return stmt, ok, err
	}
	if stmt, ok, err := p.tryParseIfBlock(); err != nil || ok {
		return stmt, ok, err
	}
	return p.tryParseAssignmentOrSubCall()
}

// tryParseAssignmentOrSubCall parses "name [qualifier] = expr" as an
// Assignment, or "identifier [arg[, arg]*]" as a SubCall (spec §4.4).
// A leading reserved word (NEXT/END/ELSE/ELSEIF) is never a statement
// — it terminates the enclosing block instead.
func (p *Parser) tryParseAssignmentOrSubCall() (*ast.Statement, bool, error) {
	lead, err := p.buf.Read()
	if err != nil {
		return nil, false, err
	}
	if lead.Kind != lexer.KindWord || isReservedWord(lead.Text) {
		return nil, false, nil
	}
	pos := lead.Pos

	name, err := p.demandName()
	if err != nil {
		return nil, false, err
	}

	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	isAssign, err := p.buf.TryConsumeSymbol('=')
	if err != nil {
		return nil, false, err
	}
	if isAssign {
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, false, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, false, err
		}
		stmt := &ast.Statement{
			Kind:       ast.StmtAssignment,
			Pos:        pos,
			Assignment: &ast.Assignment{Target: name, Value: value},
		}
		return stmt, true, nil
	}

	args, err := p.parseSubCallArgs()
	if err != nil {
		return nil, false, err
	}
	stmt := &ast.Statement{
		Kind:    ast.StmtSubCall,
		Pos:     pos,
		SubCall: &ast.SubCall{Name: name.Ident, Args: args},
	}
	return stmt, true, nil
}

// parseSubCallArgs parses a comma-separated argument list with no
// enclosing parentheses, terminated by EOL/EOF (spec §4.4). An empty
// list is valid (e.g. bare "SYSTEM").
func (p *Parser) parseSubCallArgs() ([]*ast.Expression, error) {
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, err
	}
	tok, err := p.buf.Read()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lexer.KindEOL || tok.Kind == lexer.KindEOF {
		return nil, nil
	}

	var args []*ast.Expression
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		comma, err := p.buf.TryConsumeSymbol(',')
		if err != nil {
			return nil, err
		}
		if !comma {
			return args, nil
		}
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
	}
}

// parseBlockBody parses statements until the next non-whitespace,
// non-EOL lexeme is one of the given terminator words (consumed by
// the caller, not here), accumulating each via tryParseStatement.
func (p *Parser) parseBlockBody(terminators ...string) ([]*ast.Statement, error) {
	var body []*ast.Statement
	for {
		if err := p.buf.SkipWhitespaceAndEOL(); err != nil {
			return nil, err
		}
		if p.peekWordOneOf(terminators...) {
			return body, nil
		}
		stmt, ok, err := p.tryParseStatement()
		if err != nil {
			return nil, err
		}
		if !ok {
			tok, err := p.buf.Read()
			if err != nil {
				return nil, err
			}
			return nil, unexpectedBlockToken(tok)
		}
		body = append(body, stmt)
	}
}

// peekWordOneOf reports whether the current lexeme is a Word matching
// one of words, case-insensitively, without consuming it.
func (p *Parser) peekWordOneOf(words ...string) bool {
	tok, err := p.buf.Read()
	if err != nil || tok.Kind != lexer.KindWord {
		return false
	}
	upper := upperASCII(tok.Text)
	for _, w := range words {
		if upper == upperASCII(w) {
			return true
		}
	}
	return false
}
