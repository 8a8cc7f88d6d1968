// Package ast is the typed AST projection layer over internal/redtree
// (spec.md §4.4): every AST type is a thin newtype around a *redtree.
// SyntaxNode of a specific syntaxkind.Kind (or a disjoint union of kinds for
// the enum-style types in enums.go). Field accessors are pure projections
// over the underlying syntax tree — they never allocate new tree state.
package ast

import (
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// AstNode is implemented by every typed wrapper: it exposes the red node it
// projects and nothing else, matching spec.md §4.4's `syntax()` accessor.
type AstNode interface {
	Syntax() *redtree.SyntaxNode
}

// firstChildOfKind returns the first direct child node of n with kind k.
func firstChildOfKind(n *redtree.SyntaxNode, k syntaxkind.Kind) (*redtree.SyntaxNode, bool) {
	for _, c := range n.Children() {
		if c.Kind() == k {
			return c, true
		}
	}
	return nil, false
}

// childrenOfKind returns every direct child node of n with kind k, in order.
func childrenOfKind(n *redtree.SyntaxNode, k syntaxkind.Kind) []*redtree.SyntaxNode {
	var out []*redtree.SyntaxNode
	for _, c := range n.Children() {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}
