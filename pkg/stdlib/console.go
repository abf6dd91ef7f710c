package stdlib

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Console is the production Stdlib host (spec §9): it wraps an
// io.Writer/io.Reader pair the way the teacher's
// internal/interp/runner.New(output io.Writer) wraps process output,
// and calls os.Exit for System.
type Console struct {
	out     io.Writer
	scanner *bufio.Scanner
}

// NewConsole wires a Console over the given reader/writer pair. The
// CLI in cmd/basic constructs one over os.Stdin/os.Stdout.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{out: out, scanner: bufio.NewScanner(in)}
}

// Print joins lines with single spaces and writes a trailing newline
// (spec §6).
func (c *Console) Print(lines []string) error {
	_, err := io.WriteString(c.out, strings.Join(lines, " ")+"\n")
	return err
}

// Input reads one line, trimmed of its terminator (spec §6).
func (c *Console) Input() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// System terminates the process immediately, matching the legacy
// DOS-box SYSTEM statement this host stands in for (spec §1's
// "standard library host" collaborator).
func (c *Console) System() error {
	os.Exit(0)
	return nil
}
