package nfa

import (
	"fmt"

	"github.com/coregx/thompson/syntax"
)

// CompileTree compiles a derivation tree produced by syntax.Parse into
// an NFA by structural recursion on the node label:
//
//   - Expr with three children is a union of the first and third
//   - Term with two children is a concatenation
//   - Factor with a quantifier leaf dispatches to Closure, OneOrMore
//     or ZeroOrOne
//   - Atom with parentheses compiles its inner Expr
//   - Char compiles to a single-symbol fragment (the escaped leaf when
//     present, else the bare leaf)
//
// A node label outside the grammar vocabulary fails with a
// *CompileError wrapping ErrUnrecognizedNode. That path is unreachable
// for parser-produced trees.
func CompileTree(tree *syntax.Node) (*NFA, error) {
	b := NewBuilder()
	frag, err := compileNode(b, tree)
	if err != nil {
		return nil, err
	}
	return b.Build(frag)
}

func compileNode(b *Builder, n *syntax.Node) (Fragment, error) {
	switch n.Label {
	case syntax.LabelExpr:
		if len(n.Children) == 3 {
			left, err := compileNode(b, n.Children[0])
			if err != nil {
				return Fragment{}, err
			}
			right, err := compileNode(b, n.Children[2])
			if err != nil {
				return Fragment{}, err
			}
			return b.Union(left, right), nil
		}
		return compileNode(b, n.Children[0])

	case syntax.LabelTerm:
		if len(n.Children) == 2 {
			left, err := compileNode(b, n.Children[0])
			if err != nil {
				return Fragment{}, err
			}
			right, err := compileNode(b, n.Children[1])
			if err != nil {
				return Fragment{}, err
			}
			return b.Concat(left, right), nil
		}
		return compileNode(b, n.Children[0])

	case syntax.LabelFactor:
		if len(n.Children) == 2 {
			a, err := compileNode(b, n.Children[0])
			if err != nil {
				return Fragment{}, err
			}
			switch n.Children[1].Byte() {
			case '*':
				return b.Closure(a), nil
			case '+':
				return b.OneOrMore(a), nil
			case '?':
				return b.ZeroOrOne(a), nil
			default:
				return Fragment{}, &CompileError{
					Err: fmt.Errorf("%w: quantifier %q", ErrUnrecognizedNode, n.Children[1].Label),
				}
			}
		}
		return compileNode(b, n.Children[0])

	case syntax.LabelAtom:
		if len(n.Children) == 3 {
			// '(' Expr ')'
			return compileNode(b, n.Children[1])
		}
		return compileNode(b, n.Children[0])

	case syntax.LabelChar:
		// [c] for a bare character, ['\', c] for an escaped one.
		leaf := n.Children[len(n.Children)-1]
		return b.Symbol(leaf.Byte()), nil

	default:
		return Fragment{}, &CompileError{
			Err: fmt.Errorf("%w: %q", ErrUnrecognizedNode, n.Label),
		}
	}
}

// CompilePostfix compiles a postfix token stream into an NFA with a
// stack machine. Quantifier tokens ('*', '+', '?') pop one fragment;
// '|' and the explicit concatenation token '.' pop two (right operand
// first, preserving left-to-right order); any other token pushes a
// single-symbol fragment. An empty stream compiles to the empty-string
// automaton.
//
// Malformed input fails fast: an operator with too few operands fails
// with ErrMissingOperand, and a stream that leaves more than one
// fragment on the stack fails with ErrUnbalanced. Both arrive wrapped
// in a *CompileError carrying the offending stream.
func CompilePostfix(tokens string) (*NFA, error) {
	b := NewBuilder()
	if tokens == "" {
		return b.Build(b.Epsilon())
	}

	var stack []Fragment
	pop := func() (Fragment, bool) {
		if len(stack) == 0 {
			return Fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for i := 0; i < len(tokens); i++ {
		c := tokens[i]
		switch c {
		case '*', '+', '?':
			a, ok := pop()
			if !ok {
				return nil, &CompileError{
					Input: tokens,
					Err:   fmt.Errorf("%w for %q at %d", ErrMissingOperand, c, i),
				}
			}
			switch c {
			case '*':
				stack = append(stack, b.Closure(a))
			case '+':
				stack = append(stack, b.OneOrMore(a))
			case '?':
				stack = append(stack, b.ZeroOrOne(a))
			}
		case '|', '.':
			right, ok := pop()
			if !ok {
				return nil, &CompileError{
					Input: tokens,
					Err:   fmt.Errorf("%w for %q at %d", ErrMissingOperand, c, i),
				}
			}
			left, ok := pop()
			if !ok {
				return nil, &CompileError{
					Input: tokens,
					Err:   fmt.Errorf("%w for %q at %d", ErrMissingOperand, c, i),
				}
			}
			if c == '|' {
				stack = append(stack, b.Union(left, right))
			} else {
				stack = append(stack, b.Concat(left, right))
			}
		default:
			stack = append(stack, b.Symbol(c))
		}
	}

	if len(stack) != 1 {
		return nil, &CompileError{
			Input: tokens,
			Err:   fmt.Errorf("%w: %d fragments left", ErrUnbalanced, len(stack)),
		}
	}
	return b.Build(stack[0])
}
