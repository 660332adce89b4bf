package thompson

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/syntax"
)

// Matcher is a pattern compiled once for repeated matching.
//
// At construction the pattern is analyzed: when it is a finite union
// of literal words (no quantifiers), an Aho-Corasick automaton over
// those words serves as a rejecting prefilter: a word that contains
// none of them cannot equal any of them, so it is rejected without
// running the simulation. The NFA simulation remains the semantic
// reference and confirms every candidate the prefilter lets through.
//
// A Matcher is immutable after construction and safe for concurrent
// use from multiple goroutines.
//
// Example:
//
//	m, err := thompson.NewMatcher("(a|b)*c")
//	if err != nil {
//	    return err
//	}
//	m.MatchString("bbac") // true
type Matcher struct {
	pattern   string
	nfa       *nfa.NFA
	prefilter *ahocorasick.Automaton
}

// NewMatcher compiles the pattern once and returns a reusable Matcher,
// so repeated matches against the same pattern avoid recompilation.
// It fails with the same errors as Compile.
func NewMatcher(pattern string) (*Matcher, error) {
	m := &Matcher{pattern: pattern}

	if pattern == "" {
		b := nfa.NewBuilder()
		n, err := b.Build(b.Epsilon())
		if err != nil {
			return nil, err
		}
		m.nfa = n
		return m, nil
	}

	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	n, err := nfa.CompileTree(tree)
	if err != nil {
		return nil, err
	}
	m.nfa = n
	m.prefilter = buildPrefilter(tree)
	return m, nil
}

// MustMatcher is like NewMatcher but panics if the pattern is invalid.
func MustMatcher(pattern string) *Matcher {
	m, err := NewMatcher(pattern)
	if err != nil {
		panic("thompson: NewMatcher(`" + pattern + "`): " + err.Error())
	}
	return m
}

// buildPrefilter returns an Aho-Corasick automaton over the pattern's
// literal words, or nil when the pattern is not a finite literal
// union. A build failure just disables the fast path; the simulation
// answers everything on its own.
func buildPrefilter(tree *syntax.Node) *ahocorasick.Automaton {
	seq := literal.New(literal.DefaultConfig()).Extract(tree)
	if !seq.IsComplete() || seq.IsEmpty() {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// Match reports whether the compiled pattern accepts exactly the given
// bytes.
func (m *Matcher) Match(b []byte) bool {
	if m.prefilter != nil && !m.prefilter.IsMatch(b) {
		// The pattern language is a finite set of words; a word that
		// contains none of them as a substring cannot equal one.
		return false
	}
	return m.nfa.Match(b)
}

// MatchString reports whether the compiled pattern accepts exactly the
// given word.
func (m *Matcher) MatchString(word string) bool {
	return m.Match([]byte(word))
}

// NFA returns the compiled automaton backing this matcher.
func (m *Matcher) NFA() *nfa.NFA {
	return m.nfa
}

// String returns the source pattern this matcher was compiled from.
func (m *Matcher) String() string {
	return m.pattern
}
