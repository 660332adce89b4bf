package literal

import (
	"github.com/coregx/thompson/syntax"
)

// Config configures extraction limits.
type Config struct {
	// MaxLiterals limits how many literal words extraction may
	// produce. Alternations multiply under concatenation
	// ((a|b)(c|d) has four words), so an unbounded walk could bloat
	// memory on adversarial patterns. When the limit is exceeded the
	// result is marked incomplete. Default: 64.
	MaxLiterals int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{MaxLiterals: 64}
}

// Extractor walks a derivation tree and collects the pattern's literal
// words when the pattern is a finite union of plain concatenations.
// Any quantifier anywhere in the tree makes the language infinite (or
// at least not a plain union), so the result is marked incomplete and
// carries no literals.
//
// Example:
//
//	tree, _ := syntax.Parse("foo|ba(r|z)")
//	seq := literal.New(literal.DefaultConfig()).Extract(tree)
//	// seq.Strings() = ["foo", "bar", "baz"], seq.IsComplete() = true
type Extractor struct {
	config Config
}

// New creates an Extractor with the given limits.
func New(config Config) *Extractor {
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	return &Extractor{config: config}
}

// Extract returns the literal words of the pattern rooted at tree.
func (e *Extractor) Extract(tree *syntax.Node) *Seq {
	words, ok := e.walk(tree)
	if !ok {
		return &Seq{}
	}
	lits := make([][]byte, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		lits = append(lits, []byte(w))
	}
	return &Seq{lits: lits, complete: true}
}

// walk returns the exact word set of the subtree, or ok=false when the
// subtree is not a finite literal union within limits.
func (e *Extractor) walk(n *syntax.Node) ([]string, bool) {
	switch n.Label {
	case syntax.LabelExpr:
		if len(n.Children) == 3 {
			left, ok := e.walk(n.Children[0])
			if !ok {
				return nil, false
			}
			right, ok := e.walk(n.Children[2])
			if !ok {
				return nil, false
			}
			union := append(left, right...)
			if len(union) > e.config.MaxLiterals {
				return nil, false
			}
			return union, true
		}
		return e.walk(n.Children[0])

	case syntax.LabelTerm:
		if len(n.Children) == 2 {
			left, ok := e.walk(n.Children[0])
			if !ok {
				return nil, false
			}
			right, ok := e.walk(n.Children[1])
			if !ok {
				return nil, false
			}
			if len(left)*len(right) > e.config.MaxLiterals {
				return nil, false
			}
			product := make([]string, 0, len(left)*len(right))
			for _, l := range left {
				for _, r := range right {
					product = append(product, l+r)
				}
			}
			return product, true
		}
		return e.walk(n.Children[0])

	case syntax.LabelFactor:
		if len(n.Children) == 2 {
			// Quantified factor: not a finite union.
			return nil, false
		}
		return e.walk(n.Children[0])

	case syntax.LabelAtom:
		if len(n.Children) == 3 {
			return e.walk(n.Children[1])
		}
		return e.walk(n.Children[0])

	case syntax.LabelChar:
		leaf := n.Children[len(n.Children)-1]
		return []string{leaf.Label}, true

	default:
		return nil, false
	}
}
