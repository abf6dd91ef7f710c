package eval_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/eval"
	"github.com/cwbudde/go-basic/internal/lexbuf"
	"github.com/cwbudde/go-basic/internal/lexer"
	"github.com/cwbudde/go-basic/internal/parser"
	"github.com/cwbudde/go-basic/internal/source"
	"github.com/cwbudde/go-basic/pkg/stdlib"
	"github.com/gkampitakis/go-snaps/snaps"
)

// fixture is one embedded BASIC program exercised end to end: parse,
// evaluate, and assert the recorded PRINT output and terminal error
// (if any) against a stored snapshot.
type fixture struct {
	name   string
	src    string
	inputs []string
}

var fixtures = []fixture{
	{
		name: "for_loop_counts_up",
		src: `FOR I% = 1 TO 5
PRINT I%
NEXT I%
`,
	},
	{
		name: "for_loop_step_down",
		src: `FOR I% = 10 TO 0 STEP -2
PRINT I%
NEXT
`,
	},
	{
		name: "nested_if_elseif_else",
		src: `FOR I% = 1 TO 3
IF I% = 1 THEN
PRINT "one"
ELSEIF I% = 2 THEN
PRINT "two"
ELSE
PRINT "other"
END IF
NEXT I%
`,
	},
	{
		name: "forward_referenced_function",
		src: `PRINT Double(21)

FUNCTION Double(n)
Double = n * 2
END FUNCTION
`,
	},
	{
		name: "declared_without_implementation_errors",
		src: `DECLARE FUNCTION Missing(n)
PRINT Missing(1)
`,
	},
	{
		name: "undeclared_function_call_is_tolerant",
		src: `PRINT NeverDefined(1) + 1
`,
	},
	{
		name: "string_numeric_type_mismatch",
		src: `PRINT "x" + 1
`,
	},
	{
		name: "input_binds_typed_variable",
		src: `INPUT N%
PRINT N% * 2
`,
		inputs: []string{"21"},
	},
}

func TestFixtures(t *testing.T) {
	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			program, parseErr := parseFixture(f.src)
			rec := stdlib.NewRecorder(f.inputs...)

			var runErr error
			if parseErr == nil {
				runErr = eval.Run(program, rec)
			}

			var sb strings.Builder
			sb.WriteString("output:\n")
			for _, line := range rec.Output {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
			sb.WriteString("parse error: ")
			sb.WriteString(errString(parseErr))
			sb.WriteString("\neval error: ")
			sb.WriteString(errString(runErr))
			sb.WriteString("\n")

			snaps.MatchSnapshot(t, sb.String())
		})
	}
}

func parseFixture(src string) (*ast.Program, error) {
	r := source.NewFromString(src)
	lx := lexer.New(r)
	buf := lexbuf.New(lx)
	p := parser.New(buf)
	return p.Parse()
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", err)
}
