package parser

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/lexer"
	"github.com/cwbudde/go-basic/internal/token"
)

// defTypeKeywords maps each DEFtype directive word to the qualifier it
// assigns (spec §4.4, §3).
var defTypeKeywords = map[string]token.Qualifier{
	"DEFSNG": token.BangSingle,
	"DEFDBL": token.HashDouble,
	"DEFSTR": token.DollarString,
	"DEFINT": token.PercentInteger,
	"DEFLNG": token.AmpersandLong,
}

// tryParseDefType parses "DEFINT|DEFSNG|DEFDBL|DEFLNG|DEFSTR range",
// where range is a letter range like "A-Z" or a single letter.
func (p *Parser) tryParseDefType() (*ast.TopLevelItem, bool, error) {
	lead, err := p.buf.Read()
	if err != nil {
		return nil, false, err
	}
	pos := lead.Pos
	if lead.Kind != lexer.KindWord {
		return nil, false, nil
	}
	qualifier, known := defTypeKeywords[upperASCII(lead.Text)]
	if !known {
		return nil, false, nil
	}

	p.buf.Mark()
	p.buf.Consume()
	p.buf.Clear()

	if err := p.buf.DemandWhitespace(); err != nil {
		return nil, false, err
	}
	from, to, err := p.parseLetterRange()
	if err != nil {
		return nil, false, err
	}
	if err := p.buf.DemandEOLOrEOF(); err != nil {
		return nil, false, err
	}

	item := &ast.TopLevelItem{
		Kind: ast.ItemDefType,
		Pos:  pos,
		DefType: &ast.DefType{
			From:      from,
			To:        to,
			Qualifier: qualifier,
		},
	}
	return item, true, nil
}

// parseLetterRange parses "A-Z" or "A" into an inclusive uppercase
// byte range.
func (p *Parser) parseLetterRange() (from, to byte, err error) {
	startTok, err := p.buf.Read()
	if err != nil {
		return 0, 0, err
	}
	startWord, err := p.buf.DemandAnyWord()
	if err != nil {
		return 0, 0, err
	}
	start, err := singleLetter(startWord, startTok.Pos)
	if err != nil {
		return 0, 0, err
	}

	hasDash, err := p.buf.TryConsumeSymbol('-')
	if err != nil {
		return 0, 0, err
	}
	if !hasDash {
		return start, start, nil
	}

	endTok, err := p.buf.Read()
	if err != nil {
		return 0, 0, err
	}
	endWord, err := p.buf.DemandAnyWord()
	if err != nil {
		return 0, 0, err
	}
	end, err := singleLetter(endWord, endTok.Pos)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, basicerrors.Unexpected("letter range with From <= To", startWord+"-"+endWord, startTok.Pos)
	}
	return start, end, nil
}

func singleLetter(word string, pos ast.Pos) (byte, error) {
	if len(word) != 1 {
		return 0, basicerrors.Unexpected("single letter", word, pos)
	}
	c := word[0]
	if c >= 'a' && c <= 'z' {
		c = c - 'a' + 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0, basicerrors.Unexpected("single letter", word, pos)
	}
	return c, nil
}
