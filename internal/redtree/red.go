// Package redtree implements the lazily-constructed "red" view over a
// greentree.GreenNode (spec.md §4.4): SyntaxNode/SyntaxToken carry absolute
// offsets and a parent pointer, computed on demand from the green tree's
// widths rather than stored, so the same immutable green tree can be viewed
// from many positions (or many parses) without recomputation.
package redtree

import (
	"github.com/leafc-lang/leafc/internal/greentree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
	"github.com/leafc-lang/leafc/internal/text"
)

// SyntaxNode is a red view of a green node: its green payload, its absolute
// offset, and a link back to its parent (nil for the root). Children are
// computed lazily in Children/ChildrenWithTokens, never stored.
type SyntaxNode struct {
	green  *greentree.GreenNode
	offset text.ByteOffset
	parent *SyntaxNode
	// indexInParent is this node's position among its parent's node-and-
	// token children, needed to resurrect siblings without rescanning.
	indexInParent int
}

// SyntaxToken is the token-level counterpart to SyntaxNode.
type SyntaxToken struct {
	green  *greentree.GreenToken
	offset text.ByteOffset
	parent *SyntaxNode
}

// NewRoot builds the red root view of a green tree at offset 0.
func NewRoot(green *greentree.GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, offset: 0, parent: nil, indexInParent: -1}
}

// Kind is the node's syntax kind.
func (n *SyntaxNode) Kind() syntaxkind.Kind { return n.green.Kind }

// TextRange is the node's absolute byte span within the source.
func (n *SyntaxNode) TextRange() text.Span {
	return text.Span{Start: n.offset, End: n.offset + text.ByteOffset(n.green.Width())}
}

// Parent returns the enclosing node, or nil at the root.
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

// Green exposes the underlying immutable green node.
func (n *SyntaxNode) Green() *greentree.GreenNode { return n.green }

// SyntaxElement is either a *SyntaxNode or a *SyntaxToken; exactly one
// field is non-nil. children_with_tokens in spec.md §4.4 returns a sequence
// of these.
type SyntaxElement struct {
	Node  *SyntaxNode
	Token *SyntaxToken
}

// TextRange returns the element's absolute span regardless of variant.
func (e SyntaxElement) TextRange() text.Span {
	if e.Token != nil {
		return e.Token.TextRange()
	}
	return e.Node.TextRange()
}

// ChildrenWithTokens returns every direct child, node or token, in source
// order, each carrying its absolute offset computed by walking the green
// children and accumulating widths.
func (n *SyntaxNode) ChildrenWithTokens() []SyntaxElement {
	out := make([]SyntaxElement, 0, len(n.green.Children))
	cur := n.offset
	idx := 0
	for _, c := range n.green.Children {
		if c.IsToken() {
			out = append(out, SyntaxElement{Token: &SyntaxToken{
				green: c.Token, offset: cur, parent: n,
			}})
			cur += text.ByteOffset(c.Token.Width())
			idx++
			continue
		}
		out = append(out, SyntaxElement{Node: &SyntaxNode{
			green: c.Node, offset: cur, parent: n, indexInParent: idx,
		}})
		cur += text.ByteOffset(c.Node.Width())
		idx++
	}
	return out
}

// Children returns only the node-valued direct children, in source order.
func (n *SyntaxNode) Children() []*SyntaxNode {
	elems := n.ChildrenWithTokens()
	out := make([]*SyntaxNode, 0, len(elems))
	for _, e := range elems {
		if e.Node != nil {
			out = append(out, e.Node)
		}
	}
	return out
}

// FirstToken returns the leftmost token reachable by descending first
// children, or nil if the subtree contains none (an empty node).
func (n *SyntaxNode) FirstToken() *SyntaxToken {
	for _, e := range n.ChildrenWithTokens() {
		if e.Token != nil {
			return e.Token
		}
		if t := e.Node.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the rightmost token reachable by descending last
// children, or nil for an empty subtree.
func (n *SyntaxNode) LastToken() *SyntaxToken {
	elems := n.ChildrenWithTokens()
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if e.Token != nil {
			return e.Token
		}
		if t := e.Node.LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// Descendants yields n and every node beneath it, preorder.
func (n *SyntaxNode) Descendants() []*SyntaxNode {
	out := []*SyntaxNode{n}
	for _, c := range n.Children() {
		out = append(out, c.Descendants()...)
	}
	return out
}

// WalkEvent distinguishes entering versus leaving a node during a preorder
// walk, mirroring spec.md §4.4's "preorder traversal with enter/leave
// events" (needed by consumers, like a pretty-printer, that must know when
// a subtree closes).
type WalkEvent struct {
	Node  *SyntaxNode
	Enter bool
}

// Walk performs a full preorder traversal emitting an Enter event before a
// node's children and a Leave event after, via visit.
func (n *SyntaxNode) Walk(visit func(WalkEvent)) {
	visit(WalkEvent{Node: n, Enter: true})
	for _, c := range n.Children() {
		c.Walk(visit)
	}
	visit(WalkEvent{Node: n, Enter: false})
}

// Kind is the token's syntax kind.
func (t *SyntaxToken) Kind() syntaxkind.Kind { return t.green.Kind }

// Text is the token's exact source text.
func (t *SyntaxToken) Text() string { return t.green.Text }

// TextRange is the token's absolute byte span.
func (t *SyntaxToken) TextRange() text.Span {
	return text.Span{Start: t.offset, End: t.offset + text.ByteOffset(len(t.green.Text))}
}

// Parent returns the enclosing node.
func (t *SyntaxToken) Parent() *SyntaxNode { return t.parent }
