package parser_test

import (
	"testing"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/lexbuf"
	"github.com/cwbudde/go-basic/internal/lexer"
	"github.com/cwbudde/go-basic/internal/parser"
	"github.com/cwbudde/go-basic/internal/source"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	buf := lexbuf.New(lexer.New(source.NewFromString(src)))
	program, err := parser.New(buf).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return program
}

func TestParseForLoop(t *testing.T) {
	program := parse(t, "FOR I% = 1 TO 10 STEP 2\nPRINT I%\nNEXT I%\n")
	if len(program.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(program.Items))
	}
	item := program.Items[0]
	if item.Kind != ast.ItemStatement || item.Statement.Kind != ast.StmtForLoop {
		t.Fatalf("expected a FOR loop statement, got %+v", item)
	}
	loop := item.Statement.ForLoop
	if loop.Counter.Ident != "I" {
		t.Errorf("counter = %q, want I", loop.Counter.Ident)
	}
	if loop.Step == nil {
		t.Fatal("expected a STEP expression")
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	src := `IF X = 1 THEN
PRINT "one"
ELSEIF X = 2 THEN
PRINT "two"
ELSE
PRINT "other"
END IF
`
	program := parse(t, src)
	item := program.Items[0]
	ifBlock := item.Statement.IfBlock
	if len(ifBlock.ElseIfs) != 1 {
		t.Fatalf("got %d ELSEIF clauses, want 1", len(ifBlock.ElseIfs))
	}
	if ifBlock.Else == nil {
		t.Fatal("expected an ELSE clause")
	}
}

func TestParseFunctionDeclarationAndImplementation(t *testing.T) {
	src := `DECLARE FUNCTION Add(a, b)

FUNCTION Add(a, b)
Add = a + b
END FUNCTION
`
	program := parse(t, src)
	if len(program.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(program.Items))
	}
	if program.Items[0].Kind != ast.ItemFunctionDeclaration {
		t.Errorf("item 0 kind = %v, want ItemFunctionDeclaration", program.Items[0].Kind)
	}
	if program.Items[1].Kind != ast.ItemFunctionImplementation {
		t.Errorf("item 1 kind = %v, want ItemFunctionImplementation", program.Items[1].Kind)
	}
}

func TestParseDefType(t *testing.T) {
	program := parse(t, "DEFINT A-Z\nX = 1\n")
	if program.Items[0].Kind != ast.ItemDefType {
		t.Fatalf("item 0 kind = %v, want ItemDefType", program.Items[0].Kind)
	}
	dt := program.Items[0].DefType
	if dt.From != 'A' || dt.To != 'Z' {
		t.Errorf("range = %c-%c, want A-Z", dt.From, dt.To)
	}
}

func TestParseComparisonOperators(t *testing.T) {
	for _, op := range []string{"=", "<>", "<=", ">=", "<", ">"} {
		src := "IF X " + op + " 1 THEN\nPRINT 1\nEND IF\n"
		program := parse(t, src)
		if len(program.Items) != 1 {
			t.Fatalf("op %q: got %d items, want 1", op, len(program.Items))
		}
	}
}

func TestParseSubCallWithArgs(t *testing.T) {
	program := parse(t, `PRINT "hi", 1, 2`)
	stmt := program.Items[0].Statement
	if stmt.Kind != ast.StmtSubCall {
		t.Fatalf("kind = %v, want StmtSubCall", stmt.Kind)
	}
	if len(stmt.SubCall.Args) != 3 {
		t.Errorf("got %d args, want 3", len(stmt.SubCall.Args))
	}
}
