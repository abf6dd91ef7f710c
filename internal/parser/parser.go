// Package parser implements the recursive-descent parser that turns a
// LexemeBuffer into a Program (spec §4.4). Productions are speculative:
// where the grammar is ambiguous at a glance (DECLARE/FUNCTION/FOR/IF
// vs. a bare sub-call), the parser marks the buffer, tries a
// production, and backtracks on failure to try the next one.
package parser

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/lexbuf"
	"github.com/cwbudde/go-basic/internal/lexer"
)

// Parser holds the single LexemeBuffer it parses from. It keeps no
// other mutable state: productions read buffer state directly and
// return fresh AST nodes.
type Parser struct {
	buf *lexbuf.Buffer
}

// New wraps buf as a Parser.
func New(buf *lexbuf.Buffer) *Parser {
	return &Parser{buf: buf}
}

// Parse runs the top-level loop of spec §4.4 to completion, producing
// a Program or the first ParseError encountered (no error recovery is
// attempted — spec §4.4 "Failure semantics").
func (p *Parser) Parse() (*ast.Program, error) {
	var items []*ast.TopLevelItem
	for {
		if err := p.buf.SkipWhitespaceAndEOL(); err != nil {
			return nil, err
		}
		p.buf.Clear()

		item, done, err := p.parseTopLevelItem()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		items = append(items, item)
	}
	return &ast.Program{Items: items}, nil
}

// parseTopLevelItem tries each top-level production in the order
// given by spec §4.4. done is true once EOF has been reached.
func (p *Parser) parseTopLevelItem() (*ast.TopLevelItem, bool, error) {
	if item, ok, err := p.tryParseFunctionDeclaration(); err != nil || ok {
		return item, false, err
	}
	if item, ok, err := p.tryParseFunctionImplementation(); err != nil || ok {
		return item, false, err
	}
	if item, ok, err := p.tryParseDefType(); err != nil || ok {
		return item, false, err
	}
	if stmt, ok, err := p.tryParseStatement(); err != nil || ok {
		if err != nil {
			return nil, false, err
		}
		return &ast.TopLevelItem{Kind: ast.ItemStatement, Pos: stmt.Pos, Statement: stmt}, false, nil
	}

	tok, err := p.buf.Read()
	if err != nil {
		return nil, false, err
	}
	if tok.Kind == lexer.KindEOF {
		return nil, true, nil
	}
	return nil, false, basicerrors.Unexpected("top-level item", tok.String(), tok.Pos)
}

// reservedWords cannot start an assignment or sub-call statement; they
// terminate an enclosing block instead.
var reservedWords = map[string]bool{
	"NEXT": true, "END": true, "ELSE": true, "ELSEIF": true,
}

func isReservedWord(word string) bool {
	return reservedWords[upperASCII(word)]
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
