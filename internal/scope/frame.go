// Package scope implements the nested variable-context stack the
// evaluator mutates while walking the AST (spec §3, §4.6).
package scope

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/value"
)

// Frame is a per-call variable map keyed by Name.Key(). A function's
// return value lives in its own frame under the function's own name.
type Frame struct {
	vars map[string]value.Variant
}

// NewFrame returns an empty Frame.
func NewFrame() *Frame {
	return &Frame{vars: make(map[string]value.Variant)}
}

// Get returns the stored value for name and whether it was present.
func (f *Frame) Get(name ast.Name) (value.Variant, bool) {
	v, ok := f.vars[name.Key()]
	return v, ok
}

// Set stores v under name, overwriting any previous value.
func (f *Frame) Set(name ast.Name, v value.Variant) {
	f.vars[name.Key()] = v
}

// Stack is a nonempty stack of Frames; the top frame is the current
// scope. Frame 0 is the global frame.
type Stack struct {
	frames []*Frame
}

// NewStack returns a Stack containing a single global Frame.
func NewStack() *Stack {
	return &Stack{frames: []*Frame{NewFrame()}}
}

// Depth returns the number of frames currently on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Current returns the top (current) frame.
func (s *Stack) Current() *Frame {
	return s.frames[len(s.frames)-1]
}

// Push adds a fresh frame on function entry.
func (s *Stack) Push() {
	s.frames = append(s.frames, NewFrame())
}

// Pop removes the top frame on function return. Panics if called on
// the global frame — a programmer error, never reachable from
// well-formed evaluation (every Push is paired with exactly one Pop).
func (s *Stack) Pop() {
	if len(s.frames) <= 1 {
		panic("scope: Pop called on the global frame")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Global returns the bottom (global) frame.
func (s *Stack) Global() *Frame {
	return s.frames[0]
}
