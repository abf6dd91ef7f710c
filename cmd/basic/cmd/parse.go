package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/token"
	"github.com/cwbudde/go-basic/pkg/basic"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a BASIC program and dump its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseProgram,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline source instead of reading from a file")
}

func parseProgram(_ *cobra.Command, args []string) error {
	src, _, err := readSource(args, parseEvalExpr)
	if err != nil {
		return err
	}

	program, err := basic.Parse(src)
	if err != nil {
		if be, ok := err.(*basicerrors.Error); ok {
			fmt.Fprintln(os.Stderr, be.Format(src))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("parsing failed")
	}

	for _, item := range program.Items {
		dumpItem(item, 0)
	}
	return nil
}

func indent(n int) string {
	return strings.Repeat("  ", n)
}

func dumpItem(item *ast.TopLevelItem, depth int) {
	switch item.Kind {
	case ast.ItemStatement:
		dumpStatement(item.Statement, depth)
	case ast.ItemFunctionDeclaration:
		d := item.FuncDecl
		fmt.Printf("%sDECLARE FUNCTION %s(%s)\n", indent(depth), d.Name, joinNames(d.Params))
	case ast.ItemFunctionImplementation:
		f := item.FuncImpl
		fmt.Printf("%sFUNCTION %s(%s)\n", indent(depth), f.Name, joinNames(f.Params))
		dumpStatements(f.Body, depth+1)
	case ast.ItemDefType:
		d := item.DefType
		fmt.Printf("%s%s %c-%c\n", indent(depth), defTypeKeyword(d.Qualifier), d.From, d.To)
	}
}

func dumpStatements(stmts []*ast.Statement, depth int) {
	for _, s := range stmts {
		dumpStatement(s, depth)
	}
}

func dumpStatement(s *ast.Statement, depth int) {
	switch s.Kind {
	case ast.StmtAssignment:
		a := s.Assignment
		fmt.Printf("%s%s = %s\n", indent(depth), a.Target, dumpExpr(a.Value))
	case ast.StmtSubCall:
		c := s.SubCall
		fmt.Printf("%s%s %s\n", indent(depth), c.Name, joinExprs(c.Args))
	case ast.StmtForLoop:
		f := s.ForLoop
		fmt.Printf("%sFOR %s = %s TO %s\n", indent(depth), f.Counter, dumpExpr(f.Lower), dumpExpr(f.Upper))
		dumpStatements(f.Body, depth+1)
		fmt.Printf("%sNEXT\n", indent(depth))
	case ast.StmtIfBlock:
		b := s.IfBlock
		fmt.Printf("%sIF %s THEN\n", indent(depth), dumpExpr(b.If.Cond))
		dumpStatements(b.If.Body, depth+1)
		for _, ei := range b.ElseIfs {
			fmt.Printf("%sELSEIF %s THEN\n", indent(depth), dumpExpr(ei.Cond))
			dumpStatements(ei.Body, depth+1)
		}
		if b.Else != nil {
			fmt.Printf("%sELSE\n", indent(depth))
			dumpStatements(b.Else, depth+1)
		}
		fmt.Printf("%sEND IF\n", indent(depth))
	}
}

func dumpExpr(e *ast.Expression) string {
	switch e.Kind {
	case ast.ExprStringLiteral:
		return fmt.Sprintf("%q", e.Str)
	case ast.ExprIntegerLiteral:
		return fmt.Sprintf("%d", e.Int)
	case ast.ExprSingleLiteral:
		return fmt.Sprintf("%g", e.Single)
	case ast.ExprDoubleLiteral:
		return fmt.Sprintf("%g", e.Double)
	case ast.ExprVariable:
		return e.Name.String()
	case ast.ExprFunctionCall:
		return fmt.Sprintf("%s(%s)", e.Name, joinExprs(e.Args))
	case ast.ExprBinary:
		return fmt.Sprintf("(%s %s %s)", dumpExpr(e.Left), e.Op, dumpExpr(e.Right))
	default:
		return "?"
	}
}

func joinNames(names []ast.Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

func defTypeKeyword(q token.Qualifier) string {
	switch q {
	case token.BangSingle:
		return "DEFSNG"
	case token.HashDouble:
		return "DEFDBL"
	case token.DollarString:
		return "DEFSTR"
	case token.PercentInteger:
		return "DEFINT"
	case token.AmpersandLong:
		return "DEFLNG"
	default:
		return "DEF?"
	}
}

func joinExprs(exprs []*ast.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = dumpExpr(e)
	}
	return strings.Join(parts, ", ")
}
