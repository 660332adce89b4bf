// Package thompson is a regular-expression compiler and matcher built
// on Thompson's construction.
//
// The pipeline has three stages:
//   - the syntax package parses an infix pattern into a derivation
//     tree following a fixed LL(1) grammar
//   - the nfa package compiles that tree (or an equivalent postfix
//     token stream) into a nondeterministic finite automaton of
//     epsilon- and symbol-transitions, held in an indexable state
//     arena
//   - the matching engine simulates the automaton with an
//     active-state set, advancing the whole set per input symbol
//
// Matching never backtracks: cost is O(len(word) * states) for any
// pattern shape. Matching is whole-word acceptance, not substring
// search.
//
// Accepted surface: literal characters, '|' (alternation), '*' '+'
// '?' (postfix quantifiers), '(' ')' (grouping), '\' (escapes the
// next character into a literal). In the postfix token form only,
// '.' is the explicit concatenation operator, not a wildcard.
//
// Basic usage:
//
//	n, err := thompson.Compile("(a|b)*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n.MatchString("bbac") // true
//	n.MatchString("ca")   // false
//
// For repeated matching against one pattern, compile once with
// NewMatcher:
//
//	m := thompson.MustMatcher("foo|bar|baz")
//	m.MatchString("bar") // true
package thompson

import (
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/syntax"
)

// Parse parses an infix pattern into its derivation tree.
// It fails with a *syntax.SyntaxError wrapping
// syntax.ErrUnexpectedSymbol or syntax.ErrUnexpectedEOF.
func Parse(pattern string) (*syntax.Node, error) {
	return syntax.Parse(pattern)
}

// Compile compiles an infix pattern into an immutable NFA.
// An empty pattern compiles to the empty-string automaton without
// invoking the parser.
func Compile(pattern string) (*nfa.NFA, error) {
	if pattern == "" {
		b := nfa.NewBuilder()
		return b.Build(b.Epsilon())
	}
	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return nfa.CompileTree(tree)
}

// MustCompile compiles an infix pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *nfa.NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic("thompson: Compile(`" + pattern + "`): " + err.Error())
	}
	return n
}

// CompileTree compiles a parsed derivation tree into an NFA.
func CompileTree(tree *syntax.Node) (*nfa.NFA, error) {
	return nfa.CompileTree(tree)
}

// CompilePostfix compiles a postfix token stream into an NFA.
// See nfa.CompilePostfix for the token forms and failure modes.
func CompilePostfix(tokens string) (*nfa.NFA, error) {
	return nfa.CompilePostfix(tokens)
}

// Match reports whether the automaton accepts exactly the given word.
func Match(n *nfa.NFA, word string) bool {
	return n.MatchString(word)
}

// QuoteMeta returns a pattern that matches the literal text: every
// metacharacter of the accepted surface is escaped.
//
// Example:
//
//	thompson.MustCompile(thompson.QuoteMeta("a*")).MatchString("a*") // true
func QuoteMeta(s string) string {
	const special = `\|*+?()`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
