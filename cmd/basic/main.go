// Command basic is a small operator-facing front end over the
// interpreter core: run a program, or inspect the lexeme/AST stages
// that feed it, mirroring the teacher's dwscript CLI's run/lex/parse
// split.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-basic/cmd/basic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
