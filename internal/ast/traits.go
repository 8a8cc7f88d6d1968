package ast

import (
	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// HasAttrs, HasName, HasVisibility, HasModuleItem, and HasDocComments are
// the marker-trait interfaces spec.md §4.4 names. Each is implemented by
// every AST type whose schema declares the corresponding capability,
// expressed as a Go interface over the capability rather than a deep
// inheritance hierarchy (spec.md's REDESIGN FLAGS note on polymorphism).
type HasAttrs interface {
	AstNode
	Attrs() []Attr
}

type HasName interface {
	AstNode
	Name() (Name, bool)
}

type HasVisibility interface {
	AstNode
	Visibility() (Visibility, bool)
}

// HasModuleItem is implemented by AST types that directly enclose a list of
// items (Module, TraitDef and ImplDef bodies, and the top-level SourceFile).
type HasModuleItem interface {
	AstNode
	Items() []Item
}

type HasDocComments interface {
	AstNode
	DocComments() []string
}

func attrsOfChildren(n *redtree.SyntaxNode) []Attr {
	var out []Attr
	for _, c := range childrenOfKind(n, syntaxkind.Attr) {
		out = append(out, Attr{node{c}})
	}
	return out
}

func nameOfFirstChild(n *redtree.SyntaxNode) (Name, bool) {
	c, ok := firstChildOfKind(n, syntaxkind.Name)
	if !ok {
		return Name{}, false
	}
	return Name{node{c}}, true
}

func visibilityOfFirstChild(n *redtree.SyntaxNode) (Visibility, bool) {
	c, ok := firstChildOfKind(n, syntaxkind.Visibility)
	if !ok {
		return Visibility{}, false
	}
	return Visibility{node{c}}, true
}

// docCommentsBefore collects the `///`-style doc comment tokens immediately
// preceding n among its parent's children, in source order. Lossless
// parsing attaches trivia into the tree as ordinary token children (spec.md
// §4.5's attachment rule), so a doc comment block shows up as a run of
// TokenDocComment-kind token siblings right before the node they document,
// with only whitespace tokens interleaved.
func docCommentsBefore(n *redtree.SyntaxNode) []string {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	elems := parent.ChildrenWithTokens()
	selfStart := n.TextRange().Start

	idx := -1
	for i, e := range elems {
		if e.Node != nil && e.Node.TextRange().Start == selfStart && e.Node.Kind() == n.Kind() {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return nil
	}

	docKind := syntaxkind.FromToken(lexer.TokenDocComment)
	wsKind := syntaxkind.FromToken(lexer.TokenWhitespace)

	var comments []string
	for i := idx - 1; i >= 0; i-- {
		e := elems[i]
		if e.Token == nil {
			break
		}
		switch e.Token.Kind() {
		case docKind:
			comments = append([]string{e.Token.Text()}, comments...)
		case wsKind:
			continue
		default:
			return comments
		}
	}
	return comments
}
