package parser

import (
	"github.com/cwbudde/go-basic/internal/ast"
)

// tryParseForLoop speculatively parses:
//
//	FOR name [qualifier] = expr TO expr [STEP expr] <EOL> body NEXT [name] <EOL|EOF>
//
// (spec §4.4). The whole production backtracks as a unit if the
// leading "FOR" keyword is absent.
func (p *Parser) tryParseForLoop() (*ast.Statement, bool, error) {
	lead, err := p.buf.Read()
	if err != nil {
		return nil, false, err
	}
	pos := lead.Pos

	p.buf.Mark()
	ok, err := p.buf.TryConsumeWord("FOR")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.buf.Backtrack()
		return nil, false, nil
	}
	p.buf.Clear() // committed to this production; body may Mark() its own lookahead

	if err := p.buf.DemandWhitespace(); err != nil {
		return nil, false, err
	}
	counter, err := p.demandName()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandSymbol('='); err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	lower, err := p.parseExpression()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandSpecificWord("TO"); err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	upper, err := p.parseExpression()
	if err != nil {
		return nil, false, err
	}

	var step *ast.Expression
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	hasStep, err := p.buf.TryConsumeWord("STEP")
	if err != nil {
		return nil, false, err
	}
	if hasStep {
		if _, err := p.buf.SkipWhitespace(); err != nil {
			return nil, false, err
		}
		step, err = p.parseExpression()
		if err != nil {
			return nil, false, err
		}
	}

	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return nil, false, err
	}

	body, err := p.parseBlockBody("NEXT")
	if err != nil {
		return nil, false, err
	}

	if err := p.buf.DemandSpecificWord("NEXT"); err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	var nextCounter *ast.Name
	if word, ok, err := p.buf.TryConsumeAnyWord(); err != nil {
		return nil, false, err
	} else if ok {
		q, err := p.tryParseQualifier()
		if err != nil {
			return nil, false, err
		}
		n := ast.Name{Ident: word, Qualifier: q}
		nextCounter = &n
	}
	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return nil, false, err
	}

	stmt := &ast.Statement{
		Kind: ast.StmtForLoop,
		Pos:  pos,
		ForLoop: &ast.ForLoop{
			Counter:     counter,
			Lower:       lower,
			Upper:       upper,
			Step:        step,
			Body:        body,
			NextCounter: nextCounter,
		},
	}
	return stmt, true, nil
}

// tryParseIfBlock speculatively parses:
//
//	IF cond THEN <EOL> block [ELSEIF cond THEN <EOL> block]* [ELSE <EOL> block] END IF <EOL|EOF>
//
// (spec §4.4). Single-line IF-THEN is not supported.
func (p *Parser) tryParseIfBlock() (*ast.Statement, bool, error) {
	lead, err := p.buf.Read()
	if err != nil {
		return nil, false, err
	}
	pos := lead.Pos

	p.buf.Mark()
	ok, err := p.buf.TryConsumeWord("IF")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.buf.Backtrack()
		return nil, false, nil
	}
	p.buf.Clear() // committed to this production; body may Mark() its own lookahead

	ifBlock, err := p.parseCondBlock()
	if err != nil {
		return nil, false, err
	}

	var elseIfs []ast.CondBlock
	for {
		if err := p.buf.SkipWhitespaceAndEOL(); err != nil {
			return nil, false, err
		}
		more, err := p.buf.TryConsumeWord("ELSEIF")
		if err != nil {
			return nil, false, err
		}
		if !more {
			break
		}
		cb, err := p.parseCondBlock()
		if err != nil {
			return nil, false, err
		}
		elseIfs = append(elseIfs, cb)
	}

	var elseBody []*ast.Statement
	if err := p.buf.SkipWhitespaceAndEOL(); err != nil {
		return nil, false, err
	}
	hasElse, err := p.buf.TryConsumeWord("ELSE")
	if err != nil {
		return nil, false, err
	}
	if hasElse {
		if err := p.buf.DemandEOLOrEOF(); err != nil {
			return nil, false, err
		}
		elseBody, err = p.parseBlockBody("END")
		if err != nil {
			return nil, false, err
		}
	}

	if err := p.buf.DemandSpecificWord("END"); err != nil {
		return nil, false, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandSpecificWord("IF"); err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return nil, false, err
	}

	stmt := &ast.Statement{
		Kind: ast.StmtIfBlock,
		Pos:  pos,
		IfBlock: &ast.IfBlock{
			If:      ifBlock,
			ElseIfs: elseIfs,
			Else:    elseBody,
		},
	}
	return stmt, true, nil
}

// parseCondBlock parses "cond THEN <EOL> block", used for both IF and
// ELSEIF. The leading keyword (IF/ELSEIF) has already been consumed.
func (p *Parser) parseCondBlock() (ast.CondBlock, error) {
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return ast.CondBlock{}, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return ast.CondBlock{}, err
	}
	if _, err := p.buf.SkipWhitespace(); err != nil {
		return ast.CondBlock{}, err
	}
	if err := p.buf.DemandSpecificWord("THEN"); err != nil {
		return ast.CondBlock{}, err
	}
	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return ast.CondBlock{}, err
	}
	body, err := p.parseBlockBody("ELSEIF", "ELSE", "END")
	if err != nil {
		return ast.CondBlock{}, err
	}
	return ast.CondBlock{Cond: cond, Body: body}, nil
}
