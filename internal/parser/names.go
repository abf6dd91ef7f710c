package parser

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/lexer"
	"github.com/cwbudde/go-basic/internal/token"
)

// demandName parses an identifier optionally followed immediately
// (no intervening whitespace) by one sigil character (spec §4.4).
func (p *Parser) demandName() (ast.Name, error) {
	ident, err := p.buf.DemandAnyWord()
	if err != nil {
		return ast.Name{}, err
	}
	q, err := p.tryParseQualifier()
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{Ident: ident, Qualifier: q}, nil
}

// tryParseQualifier consumes a trailing sigil if present, returning
// token.None otherwise.
func (p *Parser) tryParseQualifier() (token.Qualifier, error) {
	tok, err := p.buf.Read()
	if err != nil {
		return token.None, err
	}
	if tok.Kind != lexer.KindSymbol {
		return token.None, nil
	}
	q, ok := token.QualifierForSigil(tok.Symbol)
	if !ok {
		return token.None, nil
	}
	p.buf.Consume()
	return q, nil
}

// parseParamList parses "(name[sigil] [, name[sigil]]*)" or an absent
// parameter list, which is treated as empty (spec §4.4).
func (p *Parser) parseParamList() ([]ast.Name, error) {
	ok, err := p.buf.TryConsumeSymbol('(')
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var params []ast.Name
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, err
	}

	closed, err := p.buf.TryConsumeSymbol(')')
	if err != nil {
		return nil, err
	}
	if closed {
		return params, nil
	}

	for {
		name, err := p.demandName()
		if err != nil {
			return nil, err
		}
		params = append(params, name)

		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
		comma, err := p.buf.TryConsumeSymbol(',')
		if err != nil {
			return nil, err
		}
		if !comma {
			break
		}
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, err
		}
	}

	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, err
	}
	if err := p.buf.DemandSymbol(')'); err != nil {
		return nil, err
	}
	return params, nil
}
