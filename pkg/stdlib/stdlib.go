// Package stdlib provides the evaluator's standard-I/O collaborator
// (spec §6, §9): the capability bundle {print, input, system} the
// evaluator dispatches PRINT/INPUT/SYSTEM sub-calls to, plus two
// concrete implementations grounded on the teacher's own minimal
// "host" interface (internal/interp/runner.New(output io.Writer)).
package stdlib

import "errors"

// ErrHalt is returned by System to signal a requested, successful
// program termination. The evaluator recognizes it and stops walking
// the program without surfacing it as a failure.
var ErrHalt = errors.New("stdlib: SYSTEM requested termination")

// Stdlib is the capability bundle the evaluator requires (spec §6).
// Print receives one already-stringified element per PRINT argument;
// implementations join them with single spaces and a trailing
// newline, per the minimal dialect's formatting rule (spec §6).
type Stdlib interface {
	Print(lines []string) error
	Input() (string, error)
	System() error
}
