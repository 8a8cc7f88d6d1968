package ast

import (
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// node is embedded by every single-kind AST wrapper to supply Syntax().
type node struct{ n *redtree.SyntaxNode }

// Syntax returns the wrapped red node.
func (w node) Syntax() *redtree.SyntaxNode { return w.n }

// castOfKind is the shared cast() body for wrapper types backed by exactly
// one SyntaxKind: spec.md §4.4 requires cast to return Some exactly when
// can_cast(node.kind()) holds.
func castOfKind[T any](n *redtree.SyntaxNode, kind syntaxkind.Kind, build func(*redtree.SyntaxNode) T) (T, bool) {
	var zero T
	if n == nil || n.Kind() != kind {
		return zero, false
	}
	return build(n), true
}
