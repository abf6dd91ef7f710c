package parser

import (
	"github.com/cwbudde/go-basic/internal/ast"
)

// tryParseFunctionDeclaration parses "DECLARE FUNCTION Name(params)"
// (spec §4.4), a forward declaration with no body.
func (p *Parser) tryParseFunctionDeclaration() (*ast.TopLevelItem, bool, error) {
	lead, err := p.buf.Read()
	if err != nil {
		return nil, false, err
	}
	pos := lead.Pos

	p.buf.Mark()
	ok, err := p.buf.TryConsumeWord("DECLARE")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.buf.Backtrack()
		return nil, false, nil
	}
	p.buf.Clear()

	if err := p.buf.DemandWhitespace(); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandSpecificWord("FUNCTION"); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandWhitespace(); err != nil {
		return nil, false, err
	}
	name, err := p.demandName()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return nil, false, err
	}

	item := &ast.TopLevelItem{
		Kind:     ast.ItemFunctionDeclaration,
		Pos:      pos,
		FuncDecl: &ast.FunctionDeclaration{Name: name, Params: params},
	}
	return item, true, nil
}

// tryParseFunctionImplementation parses
// "FUNCTION Name(params) ... END FUNCTION" (spec §4.4).
func (p *Parser) tryParseFunctionImplementation() (*ast.TopLevelItem, bool, error) {
	lead, err := p.buf.Read()
	if err != nil {
		return nil, false, err
	}
	pos := lead.Pos

	p.buf.Mark()
	ok, err := p.buf.TryConsumeWord("FUNCTION")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.buf.Backtrack()
		return nil, false, nil
	}
	p.buf.Clear()

	if err := p.buf.DemandWhitespace(); err != nil {
		return nil, false, err
	}
	name, err := p.demandName()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return nil, false, err
	}

	body, err := p.parseBlockBody("END")
	if err != nil {
		return nil, false, err
	}

	if err := p.buf.DemandSpecificWord("END"); err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandSpecificWord("FUNCTION"); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return nil, false, err
	}

	item := &ast.TopLevelItem{
		Kind: ast.ItemFunctionImplementation,
		Pos:  pos,
		FuncImpl: &ast.FunctionImplementation{
			Name:   name,
			Params: params,
			Body:   body,
		},
	}
	return item, true, nil
}
