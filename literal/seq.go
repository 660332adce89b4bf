// Package literal extracts the literal words of a pattern from its
// derivation tree, for prefilter construction by the matcher.
package literal

// Seq is an ordered, duplicate-free sequence of literal words
// extracted from a pattern.
//
// When IsComplete reports true the sequence is exactly the language of
// the pattern: a word is accepted iff it equals one of the literals.
// When false the pattern's language is not a finite literal union (it
// contains a quantifier, or extraction hit its limit) and the sequence
// must not be used to decide matches.
type Seq struct {
	lits     [][]byte
	complete bool
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal.
// The returned slice is shared and must not be modified.
func (s *Seq) Get(i int) []byte {
	return s.lits[i]
}

// IsEmpty returns true if no literals were extracted.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// IsComplete reports whether the literals are exactly the pattern's
// language.
func (s *Seq) IsComplete() bool {
	return s.complete
}

// Strings returns the literals as strings, in extraction order.
func (s *Seq) Strings() []string {
	out := make([]string, len(s.lits))
	for i, l := range s.lits {
		out[i] = string(l)
	}
	return out
}
