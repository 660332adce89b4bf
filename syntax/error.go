// Package syntax parses the regular-expression surface accepted by
// this engine into a derivation tree.
//
// The accepted surface is intentionally small: literal characters,
// '|' (alternation), the postfix quantifiers '*', '+' and '?',
// grouping with '(' ')', and '\' which escapes the following
// character (including metacharacters, parentheses and '\' itself)
// into a literal.
//
// The grammar is LL(1) over this token set and is parsed by recursive
// descent with single-character lookahead and no backtracking:
//
//	Expr     -> Term | Term '|' Expr
//	Term     -> Factor | Factor Term
//	Factor   -> Atom | Atom MetaChar
//	Atom     -> Char | '(' Expr ')'
//	Char     -> AnyCharExceptMeta | '\' AnyChar
//	MetaChar -> '?' | '*' | '+'
package syntax

import (
	"errors"
	"fmt"
)

// Sentinel parse errors. Every error returned by Parse wraps exactly
// one of these, so callers can classify failures with errors.Is.
var (
	// ErrUnexpectedSymbol indicates the next character in the pattern
	// does not match what the current grammar rule expects.
	ErrUnexpectedSymbol = errors.New("unexpected symbol")

	// ErrUnexpectedEOF indicates a grammar rule required a character
	// but the pattern was exhausted (e.g. an unclosed group or a
	// trailing '\').
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// SyntaxError reports a parse failure with its position in the
// pattern. It wraps ErrUnexpectedSymbol or ErrUnexpectedEOF.
type SyntaxError struct {
	// Pos is the byte offset in the pattern where parsing failed.
	// For ErrUnexpectedEOF this is len(pattern).
	Pos int

	// Got is the offending character. Zero when the input was
	// exhausted.
	Got byte

	// Expected describes what the grammar rule wanted at Pos.
	Expected string

	// Err is the sentinel classifying this failure.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if errors.Is(e.Err, ErrUnexpectedEOF) {
		return fmt.Sprintf("syntax error at %d: unexpected end of input (want %s)", e.Pos, e.Expected)
	}
	return fmt.Sprintf("syntax error at %d: unexpected symbol %q (want %s)", e.Pos, e.Got, e.Expected)
}

// Unwrap returns the sentinel error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}
