// Package basic is the top-level façade wiring the full pipeline
// source text → CharReader → Lexer → LexemeBuffer → Parser → Program
// → Evaluator (spec §2) behind a single entry point, the way the
// teacher's internal/interp/runner package wires its own pipeline
// behind runner.New.
package basic

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/eval"
	"github.com/cwbudde/go-basic/internal/lexbuf"
	"github.com/cwbudde/go-basic/internal/lexer"
	"github.com/cwbudde/go-basic/internal/parser"
	"github.com/cwbudde/go-basic/internal/source"
	"github.com/cwbudde/go-basic/pkg/stdlib"
)

// Run parses src and executes it against std, returning the first
// LexerError, ParseError, or EvalError encountered (spec §4.6's
// public entry).
func Run(src string, std stdlib.Stdlib) error {
	program, err := Parse(src)
	if err != nil {
		return err
	}
	return eval.Run(program, std)
}

// Parse runs the pipeline up to and including the parser, without
// evaluating — used by cmd/basic's "parse" subcommand and by tests
// that only care about AST shape.
func Parse(src string) (*ast.Program, error) {
	r := source.NewFromString(src)
	lx := lexer.New(r)
	buf := lexbuf.New(lx)
	p := parser.New(buf)
	return p.Parse()
}
