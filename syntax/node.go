package syntax

import "strings"

// Grammar rule labels. Every interior Node produced by Parse carries
// one of these.
const (
	LabelExpr   = "Expr"
	LabelTerm   = "Term"
	LabelFactor = "Factor"
	LabelAtom   = "Atom"
	LabelChar   = "Char"
)

// Node is one derivation step of the grammar, or a terminal.
//
// Interior nodes are labeled with the grammar rule that produced them
// (LabelExpr, LabelTerm, ...) and their children mirror the matched
// alternative, including the literal tokens '|', '(', ')', '\' and the
// quantifier characters as leaf children. This keeps the tree fully
// traceable to the source pattern.
//
// Leaf nodes carry the literal character as their label and have no
// children.
//
// Nodes are immutable once Parse returns. The tree is owned by its
// root; no node is shared between trees.
type Node struct {
	Label    string
	Children []*Node
}

// IsLeaf returns true if this node is a terminal (literal character or
// token character).
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Byte returns the literal character of a leaf node.
// Returns 0 for interior nodes.
func (n *Node) Byte() byte {
	if n.IsLeaf() && len(n.Label) == 1 {
		return n.Label[0]
	}
	return 0
}

// String renders the derivation tree with one node per line, children
// indented under their parent. Intended for debugging and the CLI.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, 0)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	if n.IsLeaf() {
		sb.WriteString("'" + n.Label + "'")
	} else {
		sb.WriteString(n.Label)
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		c.render(sb, depth+1)
	}
}

// rule builds an interior node for the given grammar rule.
func rule(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// leaf builds a terminal node for a single character.
func leaf(c byte) *Node {
	return &Node{Label: string(c)}
}
