package ast

import (
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// Name is a binding occurrence of an identifier (a declaration site).
type Name struct{ node }

func CanCastName(k syntaxkind.Kind) bool { return k == syntaxkind.Name }

func CastName(n *redtree.SyntaxNode) (Name, bool) {
	return castOfKind(n, syntaxkind.Name, func(n *redtree.SyntaxNode) Name { return Name{node{n}} })
}

// NameRef is a use occurrence of an identifier (a reference site).
type NameRef struct{ node }

func CanCastNameRef(k syntaxkind.Kind) bool { return k == syntaxkind.NameRef }

func CastNameRef(n *redtree.SyntaxNode) (NameRef, bool) {
	return castOfKind(n, syntaxkind.NameRef, func(n *redtree.SyntaxNode) NameRef { return NameRef{node{n}} })
}

// Visibility marks an item `pub`.
type Visibility struct{ node }

func CanCastVisibility(k syntaxkind.Kind) bool { return k == syntaxkind.Visibility }

func CastVisibility(n *redtree.SyntaxNode) (Visibility, bool) {
	return castOfKind(n, syntaxkind.Visibility, func(n *redtree.SyntaxNode) Visibility { return Visibility{node{n}} })
}

// Rename is the `as NameRef` tail of a use tree.
type Rename struct{ node }

func CanCastRename(k syntaxkind.Kind) bool { return k == syntaxkind.Rename }

func CastRename(n *redtree.SyntaxNode) (Rename, bool) {
	return castOfKind(n, syntaxkind.Rename, func(n *redtree.SyntaxNode) Rename { return Rename{node{n}} })
}

func (r Rename) NameRef() (NameRef, bool) {
	c, ok := firstChildOfKind(r.Syntax(), syntaxkind.NameRef)
	if !ok {
		return NameRef{}, false
	}
	return NameRef{node{c}}, true
}

// PathSegment is one dotted component of a Path.
type PathSegment struct{ node }

func CanCastPathSegment(k syntaxkind.Kind) bool { return k == syntaxkind.PathSegment }

func CastPathSegment(n *redtree.SyntaxNode) (PathSegment, bool) {
	return castOfKind(n, syntaxkind.PathSegment, func(n *redtree.SyntaxNode) PathSegment { return PathSegment{node{n}} })
}

func (s PathSegment) NameRef() (NameRef, bool) {
	c, ok := firstChildOfKind(s.Syntax(), syntaxkind.NameRef)
	if !ok {
		return NameRef{}, false
	}
	return NameRef{node{c}}, true
}

// Path is a possibly-qualified name (`a::b::c`).
type Path struct{ node }

func CanCastPath(k syntaxkind.Kind) bool { return k == syntaxkind.Path }

func CastPath(n *redtree.SyntaxNode) (Path, bool) {
	return castOfKind(n, syntaxkind.Path, func(n *redtree.SyntaxNode) Path { return Path{node{n}} })
}

func (p Path) Segments() []PathSegment {
	var out []PathSegment
	for _, c := range childrenOfKind(p.Syntax(), syntaxkind.PathSegment) {
		out = append(out, PathSegment{node{c}})
	}
	return out
}

// TokenTree is the opaque token sequence inside an attribute's arguments.
type TokenTree struct{ node }

func CanCastTokenTree(k syntaxkind.Kind) bool { return k == syntaxkind.TokenTree }

func CastTokenTree(n *redtree.SyntaxNode) (TokenTree, bool) {
	return castOfKind(n, syntaxkind.TokenTree, func(n *redtree.SyntaxNode) TokenTree { return TokenTree{node{n}} })
}

// Meta is an attribute's body: a path plus an optional argument token tree.
type Meta struct{ node }

func CanCastMeta(k syntaxkind.Kind) bool { return k == syntaxkind.Meta }

func CastMeta(n *redtree.SyntaxNode) (Meta, bool) {
	return castOfKind(n, syntaxkind.Meta, func(n *redtree.SyntaxNode) Meta { return Meta{node{n}} })
}

func (m Meta) Path() (Path, bool) {
	c, ok := firstChildOfKind(m.Syntax(), syntaxkind.Path)
	if !ok {
		return Path{}, false
	}
	return Path{node{c}}, true
}

func (m Meta) TokenTree() (TokenTree, bool) {
	c, ok := firstChildOfKind(m.Syntax(), syntaxkind.TokenTree)
	if !ok {
		return TokenTree{}, false
	}
	return TokenTree{node{c}}, true
}

// Attr is a `#[...]` attribute attached to the following item.
type Attr struct{ node }

func CanCastAttr(k syntaxkind.Kind) bool { return k == syntaxkind.Attr }

func CastAttr(n *redtree.SyntaxNode) (Attr, bool) {
	return castOfKind(n, syntaxkind.Attr, func(n *redtree.SyntaxNode) Attr { return Attr{node{n}} })
}

func (a Attr) Meta() (Meta, bool) {
	c, ok := firstChildOfKind(a.Syntax(), syntaxkind.Meta)
	if !ok {
		return Meta{}, false
	}
	return Meta{node{c}}, true
}

// RetType is a function's `-> Type` return annotation.
type RetType struct{ node }

func CanCastRetType(k syntaxkind.Kind) bool { return k == syntaxkind.RetType }

func CastRetType(n *redtree.SyntaxNode) (RetType, bool) {
	return castOfKind(n, syntaxkind.RetType, func(n *redtree.SyntaxNode) RetType { return RetType{node{n}} })
}

func (r RetType) Type() (Type, bool) { return typeOfFirstChild(r.Syntax()) }

// NeverType is the uninhabited `!` return type.
type NeverType struct{ node }

func CanCastNeverType(k syntaxkind.Kind) bool { return k == syntaxkind.NeverType }

func CastNeverType(n *redtree.SyntaxNode) (NeverType, bool) {
	return castOfKind(n, syntaxkind.NeverType, func(n *redtree.SyntaxNode) NeverType { return NeverType{node{n}} })
}

// ParenType is a parenthesized type, `(T)`.
type ParenType struct{ node }

func CanCastParenType(k syntaxkind.Kind) bool { return k == syntaxkind.ParenType }

func CastParenType(n *redtree.SyntaxNode) (ParenType, bool) {
	return castOfKind(n, syntaxkind.ParenType, func(n *redtree.SyntaxNode) ParenType { return ParenType{node{n}} })
}

func (t ParenType) Inner() (Type, bool) { return typeOfFirstChild(t.Syntax()) }

// PathType is a named type reference, e.g. `i32` or `a::B`.
type PathType struct{ node }

func CanCastPathType(k syntaxkind.Kind) bool { return k == syntaxkind.PathType }

func CastPathType(n *redtree.SyntaxNode) (PathType, bool) {
	return castOfKind(n, syntaxkind.PathType, func(n *redtree.SyntaxNode) PathType { return PathType{node{n}} })
}

func (t PathType) Path() (Path, bool) {
	c, ok := firstChildOfKind(t.Syntax(), syntaxkind.Path)
	if !ok {
		return Path{}, false
	}
	return Path{node{c}}, true
}
