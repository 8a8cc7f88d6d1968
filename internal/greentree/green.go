// Package greentree implements the immutable, offset-less "green" syntax
// tree (spec.md §4.4): GreenNode/GreenToken carry a SyntaxKind and their own
// byte width but no absolute position, so structurally equal subtrees can be
// shared across parses. Absolute offsets are the red tree's job
// (internal/redtree).
package greentree

import "github.com/leafc-lang/leafc/internal/syntaxkind"

// GreenToken is an immutable leaf: a kind and its exact source text.
type GreenToken struct {
	Kind syntaxkind.Kind
	Text string
}

// Width is the token's byte length.
func (t *GreenToken) Width() int { return len(t.Text) }

// GreenChild is either a GreenNode or a GreenToken. Exactly one of Node/
// Token is non-nil.
type GreenChild struct {
	Node  *GreenNode
	Token *GreenToken
}

// IsToken reports whether this child is a leaf.
func (c GreenChild) IsToken() bool { return c.Token != nil }

// Width returns the child's byte width, whichever variant it is.
func (c GreenChild) Width() int {
	if c.Token != nil {
		return c.Token.Width()
	}
	return c.Node.Width()
}

// GreenNode is an immutable record of a SyntaxKind and its children.
// Two GreenNodes are structurally equal when their Kind and every child
// compare structurally equal in order; nothing here forbids two equal
// subtrees from being the same *GreenNode (the builder below always
// hash-conses them), but nothing requires it either — spec.md §4.4
// permits but does not mandate hash-consing.
type GreenNode struct {
	Kind     syntaxkind.Kind
	Children []GreenChild
	width    int
}

// NewGreenNode builds a node from Children, computing Width as the sum of
// child widths (spec.md §8 invariant 9: "green-tree width").
func NewGreenNode(kind syntaxkind.Kind, children []GreenChild) *GreenNode {
	w := 0
	for _, c := range children {
		w += c.Width()
	}
	return &GreenNode{Kind: kind, Children: children, width: w}
}

// Width is the node's total byte width: the sum of its children's widths.
func (n *GreenNode) Width() int { return n.width }

// NodeChildren returns only the node-valued children, in order.
func (n *GreenNode) NodeChildren() []*GreenNode {
	var out []*GreenNode
	for _, c := range n.Children {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// structurallyEqual reports whether a and b have the same kind and
// recursively equal children; used by the hash-consing pool.
func structurallyEqual(a, b *GreenNode) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		ca, cb := a.Children[i], b.Children[i]
		if ca.IsToken() != cb.IsToken() {
			return false
		}
		if ca.IsToken() {
			if ca.Token.Kind != cb.Token.Kind || ca.Token.Text != cb.Token.Text {
				return false
			}
			continue
		}
		if !structurallyEqual(ca.Node, cb.Node) {
			return false
		}
	}
	return true
}
