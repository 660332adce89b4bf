// Package nfa builds and simulates Thompson-construction
// nondeterministic finite automata.
//
// An automaton is composed from fragments, each with exactly one start
// state and one accept state, using the seven Thompson primitives on
// Builder. Two compilers produce whole automata: CompileTree walks a
// derivation tree from the syntax package, CompilePostfix runs a stack
// machine over a postfix token stream. Matching is an active-state-set
// simulation: it advances the full set of reachable states one input
// symbol at a time and never backtracks, so cost is linear in input
// length and automaton size for any pattern shape.
package nfa

import (
	"errors"
	"fmt"
)

// Common compilation errors
var (
	// ErrUnrecognizedNode indicates the tree compiler met a node label
	// outside the grammar vocabulary. Unreachable for parser-produced
	// trees; it guards hand-built ones.
	ErrUnrecognizedNode = errors.New("unrecognized node")

	// ErrMissingOperand indicates a postfix operator had too few
	// fragments on the stack.
	ErrMissingOperand = errors.New("missing operand")

	// ErrUnbalanced indicates a postfix stream left more than one
	// fragment on the stack, i.e. operands without an operator.
	ErrUnbalanced = errors.New("unbalanced postfix expression")
)

// CompileError wraps compilation failures with the input that caused
// them. Construction aborts before any automaton is produced: a
// CompileError never comes with a partial NFA.
type CompileError struct {
	Input string
	Err   error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("NFA compilation failed for %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an inconsistency in the state arena detected
// when finalizing a Builder into an NFA.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
