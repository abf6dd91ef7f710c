package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "basic",
	Short: "A minimal line-oriented BASIC interpreter",
	Long: `basic runs programs written in a small classic-BASIC dialect:
FOR/NEXT, IF/ELSEIF/ELSE/END IF, DECLARE FUNCTION/FUNCTION ... END
FUNCTION, DEFtype directives, and the PRINT/INPUT/SYSTEM built-ins.`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func readSource(args []string, inlineExpr string) (src, label string, err error) {
	if inlineExpr != "" {
		return inlineExpr, "<eval>", nil
	}
	if len(args) == 1 {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}
