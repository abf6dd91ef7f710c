package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/pkg/basic"
	"github.com/cwbudde/go-basic/pkg/stdlib"
	"github.com/spf13/cobra"
)

var runEvalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a BASIC program",
	Long: `Execute a BASIC program from a file or inline source.

Examples:
  basic run hello.bas
  basic run -e "PRINT \"Hello, World!\""`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "run inline source instead of reading from a file")
}

func runProgram(_ *cobra.Command, args []string) error {
	src, _, err := readSource(args, runEvalExpr)
	if err != nil {
		return err
	}

	console := stdlib.NewConsole(os.Stdin, os.Stdout)
	if err := basic.Run(src, console); err != nil {
		if be, ok := err.(*basicerrors.Error); ok {
			fmt.Fprintln(os.Stderr, be.Format(src))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("execution failed")
	}
	return nil
}
