package ast

import (
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// Type is the enum-style AST union `NeverType | ParenType | PathType`
// (spec.md §4.4). It is a tagged union, not an interface hierarchy: Cast
// tries each variant's can_cast in turn and wraps whichever matches.
type Type struct {
	node
	Never *NeverType
	Paren *ParenType
	Path  *PathType
}

func CanCastType(k syntaxkind.Kind) bool {
	return CanCastNeverType(k) || CanCastParenType(k) || CanCastPathType(k)
}

func CastType(n *redtree.SyntaxNode) (Type, bool) {
	if n == nil {
		return Type{}, false
	}
	switch {
	case CanCastNeverType(n.Kind()):
		v, _ := CastNeverType(n)
		return Type{node: node{n}, Never: &v}, true
	case CanCastParenType(n.Kind()):
		v, _ := CastParenType(n)
		return Type{node: node{n}, Paren: &v}, true
	case CanCastPathType(n.Kind()):
		v, _ := CastPathType(n)
		return Type{node: node{n}, Path: &v}, true
	default:
		return Type{}, false
	}
}

func typeOfFirstChild(n *redtree.SyntaxNode) (Type, bool) {
	for _, c := range n.Children() {
		if t, ok := CastType(c); ok {
			return t, true
		}
	}
	return Type{}, false
}

// Expr is the enum-style AST union over every expression kind the grammar
// produces. spec.md §4.4 names `FieldExpr | RefExpr` as the minimal
// example; the full grammar (spec.md §4.5's precedence-climbing parser)
// needs the rest of these variants to express real function bodies.
type Expr struct {
	node
	Field   *FieldExpr
	Ref     *RefExpr
	Call    *CallExpr
	Bin     *BinExpr
	Prefix  *PrefixExpr
	Literal *LiteralExpr
	Paren   *ParenExpr
	Block   *BlockExpr
	If      *IfExpr
	While   *WhileExpr
	Loop    *LoopExpr
	Match   *MatchExpr
	Return  *ReturnExpr
}

func CanCastExpr(k syntaxkind.Kind) bool {
	switch k {
	case syntaxkind.FieldExpr, syntaxkind.RefExpr, syntaxkind.CallExpr, syntaxkind.BinExpr,
		syntaxkind.PrefixExpr, syntaxkind.LiteralExpr, syntaxkind.ParenExpr, syntaxkind.BlockExpr,
		syntaxkind.IfExpr, syntaxkind.WhileExpr, syntaxkind.LoopExpr, syntaxkind.MatchExpr,
		syntaxkind.ReturnExpr:
		return true
	default:
		return false
	}
}

func CastExpr(n *redtree.SyntaxNode) (Expr, bool) {
	if n == nil {
		return Expr{}, false
	}
	base := node{n}
	switch n.Kind() {
	case syntaxkind.FieldExpr:
		v := FieldExpr{base}
		return Expr{node: base, Field: &v}, true
	case syntaxkind.RefExpr:
		v := RefExpr{base}
		return Expr{node: base, Ref: &v}, true
	case syntaxkind.CallExpr:
		v := CallExpr{base}
		return Expr{node: base, Call: &v}, true
	case syntaxkind.BinExpr:
		v := BinExpr{base}
		return Expr{node: base, Bin: &v}, true
	case syntaxkind.PrefixExpr:
		v := PrefixExpr{base}
		return Expr{node: base, Prefix: &v}, true
	case syntaxkind.LiteralExpr:
		v := LiteralExpr{base}
		return Expr{node: base, Literal: &v}, true
	case syntaxkind.ParenExpr:
		v := ParenExpr{base}
		return Expr{node: base, Paren: &v}, true
	case syntaxkind.BlockExpr:
		v := BlockExpr{base}
		return Expr{node: base, Block: &v}, true
	case syntaxkind.IfExpr:
		v := IfExpr{base}
		return Expr{node: base, If: &v}, true
	case syntaxkind.WhileExpr:
		v := WhileExpr{base}
		return Expr{node: base, While: &v}, true
	case syntaxkind.LoopExpr:
		v := LoopExpr{base}
		return Expr{node: base, Loop: &v}, true
	case syntaxkind.MatchExpr:
		v := MatchExpr{base}
		return Expr{node: base, Match: &v}, true
	case syntaxkind.ReturnExpr:
		v := ReturnExpr{base}
		return Expr{node: base, Return: &v}, true
	default:
		return Expr{}, false
	}
}

func exprOfFirstChild(n *redtree.SyntaxNode) (Expr, bool) {
	for _, c := range n.Children() {
		if e, ok := CastExpr(c); ok {
			return e, true
		}
	}
	return Expr{}, false
}

func exprsOfChildren(n *redtree.SyntaxNode) []Expr {
	var out []Expr
	for _, c := range n.Children() {
		if e, ok := CastExpr(c); ok {
			out = append(out, e)
		}
	}
	return out
}

// Item is the enum-style AST union over top-level/module-level
// declarations. spec.md §4.4 names `Module | Use` as the minimal example;
// the parser's state machine (spec.md §4.5) accepts the full
// `mod|pub|use|fn|struct|enum|trait|impl|type|const|static` set, so the
// union is supplemented with the rest of those kinds.
type Item struct {
	node
	Module *Module
	Use    *Use
	Fn     *Function
	Struct *StructDef
	Enum   *EnumDef
	Trait  *TraitDef
	Impl   *ImplDef
	Alias  *TypeAlias
	Const  *ConstDef
	Static *StaticDef
}

func CanCastItem(k syntaxkind.Kind) bool {
	switch k {
	case syntaxkind.Module, syntaxkind.Use, syntaxkind.Function, syntaxkind.StructDef,
		syntaxkind.EnumDef, syntaxkind.TraitDef, syntaxkind.ImplDef, syntaxkind.TypeAlias,
		syntaxkind.ConstDef, syntaxkind.StaticDef:
		return true
	default:
		return false
	}
}

func CastItem(n *redtree.SyntaxNode) (Item, bool) {
	if n == nil {
		return Item{}, false
	}
	base := node{n}
	switch n.Kind() {
	case syntaxkind.Module:
		v := Module{base}
		return Item{node: base, Module: &v}, true
	case syntaxkind.Use:
		v := Use{base}
		return Item{node: base, Use: &v}, true
	case syntaxkind.Function:
		v := Function{base}
		return Item{node: base, Fn: &v}, true
	case syntaxkind.StructDef:
		v := StructDef{base}
		return Item{node: base, Struct: &v}, true
	case syntaxkind.EnumDef:
		v := EnumDef{base}
		return Item{node: base, Enum: &v}, true
	case syntaxkind.TraitDef:
		v := TraitDef{base}
		return Item{node: base, Trait: &v}, true
	case syntaxkind.ImplDef:
		v := ImplDef{base}
		return Item{node: base, Impl: &v}, true
	case syntaxkind.TypeAlias:
		v := TypeAlias{base}
		return Item{node: base, Alias: &v}, true
	case syntaxkind.ConstDef:
		v := ConstDef{base}
		return Item{node: base, Const: &v}, true
	case syntaxkind.StaticDef:
		v := StaticDef{base}
		return Item{node: base, Static: &v}, true
	default:
		return Item{}, false
	}
}

func itemsOfChildren(n *redtree.SyntaxNode) []Item {
	var out []Item
	for _, c := range n.Children() {
		if it, ok := CastItem(c); ok {
			out = append(out, it)
		}
	}
	return out
}

// Stmt is `ExprStmt | Item`: spec.md §4.4 calls for flattening the nested
// Item case rather than subtyping it, so Stmt.Item is the same Item union
// defined above, not a second wrapper.
type Stmt struct {
	node
	ExprStmt *ExprStmt
	LetStmt  *LetStmt
	Item     *Item
}

func CanCastStmt(k syntaxkind.Kind) bool {
	return k == syntaxkind.ExprStmt || k == syntaxkind.LetStmt || CanCastItem(k)
}

func CastStmt(n *redtree.SyntaxNode) (Stmt, bool) {
	if n == nil {
		return Stmt{}, false
	}
	base := node{n}
	switch {
	case n.Kind() == syntaxkind.ExprStmt:
		v := ExprStmt{base}
		return Stmt{node: base, ExprStmt: &v}, true
	case n.Kind() == syntaxkind.LetStmt:
		v := LetStmt{base}
		return Stmt{node: base, LetStmt: &v}, true
	case CanCastItem(n.Kind()):
		it, _ := CastItem(n)
		return Stmt{node: base, Item: &it}, true
	default:
		return Stmt{}, false
	}
}

func stmtsOfChildren(n *redtree.SyntaxNode) []Stmt {
	var out []Stmt
	for _, c := range n.Children() {
		if s, ok := CastStmt(c); ok {
			out = append(out, s)
		}
	}
	return out
}

// FieldList is `RecordFieldList | TupleFieldList`, the two shapes a
// struct's or variant's fields can take.
type FieldList struct {
	node
	Record *RecordFieldList
	Tuple  *TupleFieldList
}

func CanCastFieldList(k syntaxkind.Kind) bool {
	return k == syntaxkind.RecordFieldList || k == syntaxkind.TupleFieldList
}

func CastFieldList(n *redtree.SyntaxNode) (FieldList, bool) {
	if n == nil {
		return FieldList{}, false
	}
	base := node{n}
	switch n.Kind() {
	case syntaxkind.RecordFieldList:
		v := RecordFieldList{base}
		return FieldList{node: base, Record: &v}, true
	case syntaxkind.TupleFieldList:
		v := TupleFieldList{base}
		return FieldList{node: base, Tuple: &v}, true
	default:
		return FieldList{}, false
	}
}

func fieldListOfFirstChild(n *redtree.SyntaxNode) (FieldList, bool) {
	for _, c := range n.Children() {
		if fl, ok := CastFieldList(c); ok {
			return fl, true
		}
	}
	return FieldList{}, false
}
