package syntax

// parser holds the scan state of one Parse invocation: the pattern and
// a cursor into it. A fresh parser is built per call, so concurrent
// Parse calls never interfere.
type parser struct {
	pattern string
	pos     int
}

// Parse parses an infix pattern into a derivation tree.
//
// The returned tree follows the grammar exactly: one interior node per
// rule application, with the matched tokens as leaf children. See the
// package documentation for the grammar.
//
// Parse fails with a *SyntaxError wrapping ErrUnexpectedSymbol when a
// character does not fit the grammar, and wrapping ErrUnexpectedEOF
// when a rule requires a character past the end of the pattern.
// There is no partial result: on error the returned node is nil.
func Parse(pattern string) (*Node, error) {
	p := &parser{pattern: pattern}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	// The grammar must consume the whole pattern: a leftover character
	// here is a stray ')' or a quantifier with no preceding atom.
	if c, ok := p.peek(); ok {
		return nil, p.unexpected(c, "end of pattern")
	}
	return node, nil
}

// expr parses: Expr -> Term | Term '|' Expr
func (p *parser) expr() (*Node, error) {
	term, err := p.term()
	if err != nil {
		return nil, err
	}
	if c, ok := p.peek(); ok && c == '|' {
		p.advance()
		rest, err := p.expr()
		if err != nil {
			return nil, err
		}
		return rule(LabelExpr, term, leaf('|'), rest), nil
	}
	return rule(LabelExpr, term), nil
}

// term parses: Term -> Factor | Factor Term
func (p *parser) term() (*Node, error) {
	factor, err := p.factor()
	if err != nil {
		return nil, err
	}
	// Another factor follows unless the pattern ends here or the next
	// character belongs to the enclosing rule ('|' continues the Expr,
	// ')' closes a group).
	if c, ok := p.peek(); ok && c != '|' && c != ')' {
		rest, err := p.term()
		if err != nil {
			return nil, err
		}
		return rule(LabelTerm, factor, rest), nil
	}
	return rule(LabelTerm, factor), nil
}

// factor parses: Factor -> Atom | Atom MetaChar
func (p *parser) factor() (*Node, error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	if c, ok := p.peek(); ok && isMeta(c) {
		p.advance()
		return rule(LabelFactor, atom, leaf(c)), nil
	}
	return rule(LabelFactor, atom), nil
}

// atom parses: Atom -> Char | '(' Expr ')'
func (p *parser) atom() (*Node, error) {
	if c, ok := p.peek(); ok && c == '(' {
		p.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return rule(LabelAtom, leaf('('), inner, leaf(')')), nil
	}
	char, err := p.char()
	if err != nil {
		return nil, err
	}
	return rule(LabelAtom, char), nil
}

// char parses: Char -> AnyCharExceptMeta | '\' AnyChar
func (p *parser) char() (*Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.eof("character")
	}
	if c == '\\' {
		p.advance()
		escaped, ok := p.peek()
		if !ok {
			return nil, p.eof("escaped character")
		}
		p.advance()
		return rule(LabelChar, leaf('\\'), leaf(escaped)), nil
	}
	// Metacharacters and parentheses must be escaped to act as
	// literals; bare they are a syntax error here.
	if isMeta(c) || c == '(' || c == ')' || c == '|' {
		return nil, p.unexpected(c, "character")
	}
	p.advance()
	return rule(LabelChar, leaf(c)), nil
}

// isMeta reports whether c is a postfix quantifier.
func isMeta(c byte) bool {
	return c == '*' || c == '+' || c == '?'
}

// peek returns the next character without consuming it.
// ok is false when the pattern is exhausted; lookahead past the end is
// an explicit condition, never a sentinel character.
func (p *parser) peek() (c byte, ok bool) {
	if p.pos >= len(p.pattern) {
		return 0, false
	}
	return p.pattern[p.pos], true
}

// advance consumes the current character.
func (p *parser) advance() {
	p.pos++
}

// expect consumes the next character if it equals want, and fails with
// a position-accurate error otherwise.
func (p *parser) expect(want byte) error {
	c, ok := p.peek()
	if !ok {
		return p.eof("'" + string(want) + "'")
	}
	if c != want {
		return p.unexpected(c, "'"+string(want)+"'")
	}
	p.advance()
	return nil
}

func (p *parser) unexpected(got byte, expected string) error {
	return &SyntaxError{
		Pos:      p.pos,
		Got:      got,
		Expected: expected,
		Err:      ErrUnexpectedSymbol,
	}
}

func (p *parser) eof(expected string) error {
	return &SyntaxError{
		Pos:      len(p.pattern),
		Expected: expected,
		Err:      ErrUnexpectedEOF,
	}
}
