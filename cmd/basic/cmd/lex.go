package cmd

import (
	"fmt"

	"github.com/cwbudde/go-basic/internal/lexer"
	"github.com/cwbudde/go-basic/internal/source"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a BASIC program and print the resulting lexemes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexProgram,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show lexeme positions (row:col)")
}

func lexProgram(_ *cobra.Command, args []string) error {
	src, _, err := readSource(args, lexEvalExpr)
	if err != nil {
		return err
	}

	lx := lexer.New(source.NewFromString(src))
	for {
		lexeme, err := lx.Read()
		if err != nil {
			return err
		}
		if lexShowPos {
			fmt.Printf("%-20s @%s\n", lexeme.String(), lexeme.Pos)
		} else {
			fmt.Println(lexeme.String())
		}
		if lexeme.Kind == lexer.KindEOF {
			break
		}
	}
	return nil
}
