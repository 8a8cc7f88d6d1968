package ast

import (
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// SourceFile is the root of every parse: `(attribute | item)* EOF`
// (spec.md §4.5's top-level state machine).
type SourceFile struct{ node }

func CanCastSourceFile(k syntaxkind.Kind) bool { return k == syntaxkind.SourceFile }

func CastSourceFile(n *redtree.SyntaxNode) (SourceFile, bool) {
	return castOfKind(n, syntaxkind.SourceFile, func(n *redtree.SyntaxNode) SourceFile { return SourceFile{node{n}} })
}

func (f SourceFile) Attrs() []Attr { return attrsOfChildren(f.Syntax()) }
func (f SourceFile) Items() []Item { return itemsOfChildren(f.Syntax()) }

var (
	_ HasAttrs      = SourceFile{}
	_ HasModuleItem = SourceFile{}
)

// Module is `mod NAME { ItemList }` or `mod NAME;`.
type Module struct{ node }

func CanCastModule(k syntaxkind.Kind) bool { return k == syntaxkind.Module }

func CastModule(n *redtree.SyntaxNode) (Module, bool) {
	return castOfKind(n, syntaxkind.Module, func(n *redtree.SyntaxNode) Module { return Module{node{n}} })
}

func (m Module) Name() (Name, bool)             { return nameOfFirstChild(m.Syntax()) }
func (m Module) Attrs() []Attr                  { return attrsOfChildren(m.Syntax()) }
func (m Module) Visibility() (Visibility, bool) { return visibilityOfFirstChild(m.Syntax()) }
func (m Module) DocComments() []string          { return docCommentsBefore(m.Syntax()) }
func (m Module) ItemList() (ItemList, bool) {
	c, ok := firstChildOfKind(m.Syntax(), syntaxkind.ItemList)
	if !ok {
		return ItemList{}, false
	}
	return ItemList{node{c}}, true
}
func (m Module) Items() []Item {
	if il, ok := m.ItemList(); ok {
		return il.Items()
	}
	return nil
}

var (
	_ HasName        = Module{}
	_ HasAttrs       = Module{}
	_ HasVisibility  = Module{}
	_ HasDocComments = Module{}
	_ HasModuleItem  = Module{}
)

// ItemList is the brace-delimited body of a Module, TraitDef or ImplDef.
type ItemList struct{ node }

func CanCastItemList(k syntaxkind.Kind) bool { return k == syntaxkind.ItemList }

func CastItemList(n *redtree.SyntaxNode) (ItemList, bool) {
	return castOfKind(n, syntaxkind.ItemList, func(n *redtree.SyntaxNode) ItemList { return ItemList{node{n}} })
}

func (l ItemList) Items() []Item { return itemsOfChildren(l.Syntax()) }

// Use is a `use UseTree;` import declaration.
type Use struct{ node }

func CanCastUse(k syntaxkind.Kind) bool { return k == syntaxkind.Use }

func CastUse(n *redtree.SyntaxNode) (Use, bool) {
	return castOfKind(n, syntaxkind.Use, func(n *redtree.SyntaxNode) Use { return Use{node{n}} })
}

func (u Use) Attrs() []Attr                  { return attrsOfChildren(u.Syntax()) }
func (u Use) Visibility() (Visibility, bool) { return visibilityOfFirstChild(u.Syntax()) }
func (u Use) UseTree() (UseTree, bool) {
	c, ok := firstChildOfKind(u.Syntax(), syntaxkind.UseTree)
	if !ok {
		return UseTree{}, false
	}
	return UseTree{node{c}}, true
}

var (
	_ HasAttrs      = Use{}
	_ HasVisibility = Use{}
)

// UseTree is a single `path::segment::{...}` or `path as rename` import path.
type UseTree struct{ node }

func CanCastUseTree(k syntaxkind.Kind) bool { return k == syntaxkind.UseTree }

func CastUseTree(n *redtree.SyntaxNode) (UseTree, bool) {
	return castOfKind(n, syntaxkind.UseTree, func(n *redtree.SyntaxNode) UseTree { return UseTree{node{n}} })
}

func (t UseTree) Path() (Path, bool) {
	c, ok := firstChildOfKind(t.Syntax(), syntaxkind.Path)
	if !ok {
		return Path{}, false
	}
	return Path{node{c}}, true
}

func (t UseTree) Rename() (Rename, bool) {
	c, ok := firstChildOfKind(t.Syntax(), syntaxkind.Rename)
	if !ok {
		return Rename{}, false
	}
	return Rename{node{c}}, true
}

// Function is `fn NAME(ParamList) -> RetType BlockExpr`.
type Function struct{ node }

func CanCastFunction(k syntaxkind.Kind) bool { return k == syntaxkind.Function }

func CastFunction(n *redtree.SyntaxNode) (Function, bool) {
	return castOfKind(n, syntaxkind.Function, func(n *redtree.SyntaxNode) Function { return Function{node{n}} })
}

func (f Function) Name() (Name, bool)             { return nameOfFirstChild(f.Syntax()) }
func (f Function) Attrs() []Attr                  { return attrsOfChildren(f.Syntax()) }
func (f Function) Visibility() (Visibility, bool) { return visibilityOfFirstChild(f.Syntax()) }
func (f Function) DocComments() []string          { return docCommentsBefore(f.Syntax()) }
func (f Function) ParamList() (ParamList, bool) {
	c, ok := firstChildOfKind(f.Syntax(), syntaxkind.ParamList)
	if !ok {
		return ParamList{}, false
	}
	return ParamList{node{c}}, true
}
func (f Function) RetType() (RetType, bool) {
	c, ok := firstChildOfKind(f.Syntax(), syntaxkind.RetType)
	if !ok {
		return RetType{}, false
	}
	return RetType{node{c}}, true
}
func (f Function) Body() (BlockExpr, bool) {
	c, ok := firstChildOfKind(f.Syntax(), syntaxkind.BlockExpr)
	if !ok {
		return BlockExpr{}, false
	}
	return BlockExpr{node{c}}, true
}

var (
	_ HasName        = Function{}
	_ HasAttrs       = Function{}
	_ HasVisibility  = Function{}
	_ HasDocComments = Function{}
)

// ParamList is a function's parenthesized parameter list.
type ParamList struct{ node }

func CanCastParamList(k syntaxkind.Kind) bool { return k == syntaxkind.ParamList }

func CastParamList(n *redtree.SyntaxNode) (ParamList, bool) {
	return castOfKind(n, syntaxkind.ParamList, func(n *redtree.SyntaxNode) ParamList { return ParamList{node{n}} })
}

func (l ParamList) Params() []Param {
	var out []Param
	for _, c := range childrenOfKind(l.Syntax(), syntaxkind.Param) {
		out = append(out, Param{node{c}})
	}
	return out
}

// Param is a single `name: Type` function parameter.
type Param struct{ node }

func CanCastParam(k syntaxkind.Kind) bool { return k == syntaxkind.Param }

func CastParam(n *redtree.SyntaxNode) (Param, bool) {
	return castOfKind(n, syntaxkind.Param, func(n *redtree.SyntaxNode) Param { return Param{node{n}} })
}

func (p Param) Name() (Name, bool) { return nameOfFirstChild(p.Syntax()) }
func (p Param) Type() (Type, bool) { return typeOfFirstChild(p.Syntax()) }

var _ HasName = Param{}

// StructDef is `struct NAME FieldList` (record or tuple shape).
type StructDef struct{ node }

func CanCastStructDef(k syntaxkind.Kind) bool { return k == syntaxkind.StructDef }

func CastStructDef(n *redtree.SyntaxNode) (StructDef, bool) {
	return castOfKind(n, syntaxkind.StructDef, func(n *redtree.SyntaxNode) StructDef { return StructDef{node{n}} })
}

func (s StructDef) Name() (Name, bool)             { return nameOfFirstChild(s.Syntax()) }
func (s StructDef) Attrs() []Attr                  { return attrsOfChildren(s.Syntax()) }
func (s StructDef) Visibility() (Visibility, bool) { return visibilityOfFirstChild(s.Syntax()) }
func (s StructDef) DocComments() []string          { return docCommentsBefore(s.Syntax()) }
func (s StructDef) FieldList() (FieldList, bool)   { return fieldListOfFirstChild(s.Syntax()) }

var (
	_ HasName        = StructDef{}
	_ HasAttrs       = StructDef{}
	_ HasVisibility  = StructDef{}
	_ HasDocComments = StructDef{}
)

// RecordFieldList is `{ field: Type, ... }`.
type RecordFieldList struct{ node }

func CanCastRecordFieldList(k syntaxkind.Kind) bool { return k == syntaxkind.RecordFieldList }

func CastRecordFieldList(n *redtree.SyntaxNode) (RecordFieldList, bool) {
	return castOfKind(n, syntaxkind.RecordFieldList, func(n *redtree.SyntaxNode) RecordFieldList {
		return RecordFieldList{node{n}}
	})
}

func (l RecordFieldList) Fields() []RecordField {
	var out []RecordField
	for _, c := range childrenOfKind(l.Syntax(), syntaxkind.RecordField) {
		out = append(out, RecordField{node{c}})
	}
	return out
}

// RecordField is a single `name: Type` struct field.
type RecordField struct{ node }

func CanCastRecordField(k syntaxkind.Kind) bool { return k == syntaxkind.RecordField }

func CastRecordField(n *redtree.SyntaxNode) (RecordField, bool) {
	return castOfKind(n, syntaxkind.RecordField, func(n *redtree.SyntaxNode) RecordField { return RecordField{node{n}} })
}

func (f RecordField) Name() (Name, bool)             { return nameOfFirstChild(f.Syntax()) }
func (f RecordField) Type() (Type, bool)             { return typeOfFirstChild(f.Syntax()) }
func (f RecordField) Visibility() (Visibility, bool) { return visibilityOfFirstChild(f.Syntax()) }

var (
	_ HasName       = RecordField{}
	_ HasVisibility = RecordField{}
)

// TupleFieldList is `(Type, Type, ...)`.
type TupleFieldList struct{ node }

func CanCastTupleFieldList(k syntaxkind.Kind) bool { return k == syntaxkind.TupleFieldList }

func CastTupleFieldList(n *redtree.SyntaxNode) (TupleFieldList, bool) {
	return castOfKind(n, syntaxkind.TupleFieldList, func(n *redtree.SyntaxNode) TupleFieldList {
		return TupleFieldList{node{n}}
	})
}

func (l TupleFieldList) Fields() []TupleField {
	var out []TupleField
	for _, c := range childrenOfKind(l.Syntax(), syntaxkind.TupleField) {
		out = append(out, TupleField{node{c}})
	}
	return out
}

// TupleField is a single positional field in a tuple struct.
type TupleField struct{ node }

func CanCastTupleField(k syntaxkind.Kind) bool { return k == syntaxkind.TupleField }

func CastTupleField(n *redtree.SyntaxNode) (TupleField, bool) {
	return castOfKind(n, syntaxkind.TupleField, func(n *redtree.SyntaxNode) TupleField { return TupleField{node{n}} })
}

func (f TupleField) Type() (Type, bool)             { return typeOfFirstChild(f.Syntax()) }
func (f TupleField) Visibility() (Visibility, bool) { return visibilityOfFirstChild(f.Syntax()) }

var _ HasVisibility = TupleField{}

// EnumDef is `enum NAME { VariantList }`.
type EnumDef struct{ node }

func CanCastEnumDef(k syntaxkind.Kind) bool { return k == syntaxkind.EnumDef }

func CastEnumDef(n *redtree.SyntaxNode) (EnumDef, bool) {
	return castOfKind(n, syntaxkind.EnumDef, func(n *redtree.SyntaxNode) EnumDef { return EnumDef{node{n}} })
}

func (e EnumDef) Name() (Name, bool)             { return nameOfFirstChild(e.Syntax()) }
func (e EnumDef) Attrs() []Attr                  { return attrsOfChildren(e.Syntax()) }
func (e EnumDef) Visibility() (Visibility, bool) { return visibilityOfFirstChild(e.Syntax()) }
func (e EnumDef) DocComments() []string          { return docCommentsBefore(e.Syntax()) }
func (e EnumDef) VariantList() (VariantList, bool) {
	c, ok := firstChildOfKind(e.Syntax(), syntaxkind.VariantList)
	if !ok {
		return VariantList{}, false
	}
	return VariantList{node{c}}, true
}

var (
	_ HasName        = EnumDef{}
	_ HasAttrs       = EnumDef{}
	_ HasVisibility  = EnumDef{}
	_ HasDocComments = EnumDef{}
)

// VariantList is the brace-delimited body of an EnumDef.
type VariantList struct{ node }

func CanCastVariantList(k syntaxkind.Kind) bool { return k == syntaxkind.VariantList }

func CastVariantList(n *redtree.SyntaxNode) (VariantList, bool) {
	return castOfKind(n, syntaxkind.VariantList, func(n *redtree.SyntaxNode) VariantList { return VariantList{node{n}} })
}

func (l VariantList) Variants() []Variant {
	var out []Variant
	for _, c := range childrenOfKind(l.Syntax(), syntaxkind.Variant) {
		out = append(out, Variant{node{c}})
	}
	return out
}

// Variant is a single enum case, with an optional RecordFieldList or
// TupleFieldList payload.
type Variant struct{ node }

func CanCastVariant(k syntaxkind.Kind) bool { return k == syntaxkind.Variant }

func CastVariant(n *redtree.SyntaxNode) (Variant, bool) {
	return castOfKind(n, syntaxkind.Variant, func(n *redtree.SyntaxNode) Variant { return Variant{node{n}} })
}

func (v Variant) Name() (Name, bool)           { return nameOfFirstChild(v.Syntax()) }
func (v Variant) FieldList() (FieldList, bool) { return fieldListOfFirstChild(v.Syntax()) }

var _ HasName = Variant{}

// TraitDef is `trait NAME { ItemList }`.
type TraitDef struct{ node }

func CanCastTraitDef(k syntaxkind.Kind) bool { return k == syntaxkind.TraitDef }

func CastTraitDef(n *redtree.SyntaxNode) (TraitDef, bool) {
	return castOfKind(n, syntaxkind.TraitDef, func(n *redtree.SyntaxNode) TraitDef { return TraitDef{node{n}} })
}

func (t TraitDef) Name() (Name, bool)             { return nameOfFirstChild(t.Syntax()) }
func (t TraitDef) Attrs() []Attr                  { return attrsOfChildren(t.Syntax()) }
func (t TraitDef) Visibility() (Visibility, bool) { return visibilityOfFirstChild(t.Syntax()) }
func (t TraitDef) DocComments() []string          { return docCommentsBefore(t.Syntax()) }
func (t TraitDef) Items() []Item {
	c, ok := firstChildOfKind(t.Syntax(), syntaxkind.ItemList)
	if !ok {
		return nil
	}
	return ItemList{node{c}}.Items()
}

var (
	_ HasName        = TraitDef{}
	_ HasAttrs       = TraitDef{}
	_ HasVisibility  = TraitDef{}
	_ HasDocComments = TraitDef{}
	_ HasModuleItem  = TraitDef{}
)

// ImplDef is `impl PathType { ItemList }`.
type ImplDef struct{ node }

func CanCastImplDef(k syntaxkind.Kind) bool { return k == syntaxkind.ImplDef }

func CastImplDef(n *redtree.SyntaxNode) (ImplDef, bool) {
	return castOfKind(n, syntaxkind.ImplDef, func(n *redtree.SyntaxNode) ImplDef { return ImplDef{node{n}} })
}

func (i ImplDef) Type() (Type, bool) { return typeOfFirstChild(i.Syntax()) }
func (i ImplDef) Items() []Item {
	c, ok := firstChildOfKind(i.Syntax(), syntaxkind.ItemList)
	if !ok {
		return nil
	}
	return ItemList{node{c}}.Items()
}

var _ HasModuleItem = ImplDef{}

// TypeAlias is `type NAME = Type;`.
type TypeAlias struct{ node }

func CanCastTypeAlias(k syntaxkind.Kind) bool { return k == syntaxkind.TypeAlias }

func CastTypeAlias(n *redtree.SyntaxNode) (TypeAlias, bool) {
	return castOfKind(n, syntaxkind.TypeAlias, func(n *redtree.SyntaxNode) TypeAlias { return TypeAlias{node{n}} })
}

func (a TypeAlias) Name() (Name, bool)             { return nameOfFirstChild(a.Syntax()) }
func (a TypeAlias) Visibility() (Visibility, bool) { return visibilityOfFirstChild(a.Syntax()) }
func (a TypeAlias) Type() (Type, bool)             { return typeOfFirstChild(a.Syntax()) }

var (
	_ HasName       = TypeAlias{}
	_ HasVisibility = TypeAlias{}
)

// ConstDef is `const NAME: Type = Expr;`.
type ConstDef struct{ node }

func CanCastConstDef(k syntaxkind.Kind) bool { return k == syntaxkind.ConstDef }

func CastConstDef(n *redtree.SyntaxNode) (ConstDef, bool) {
	return castOfKind(n, syntaxkind.ConstDef, func(n *redtree.SyntaxNode) ConstDef { return ConstDef{node{n}} })
}

func (c ConstDef) Name() (Name, bool)             { return nameOfFirstChild(c.Syntax()) }
func (c ConstDef) Visibility() (Visibility, bool) { return visibilityOfFirstChild(c.Syntax()) }
func (c ConstDef) Type() (Type, bool)             { return typeOfFirstChild(c.Syntax()) }
func (c ConstDef) Value() (Expr, bool)            { return exprOfFirstChild(c.Syntax()) }

var (
	_ HasName       = ConstDef{}
	_ HasVisibility = ConstDef{}
)

// StaticDef is `static NAME: Type = Expr;`.
type StaticDef struct{ node }

func CanCastStaticDef(k syntaxkind.Kind) bool { return k == syntaxkind.StaticDef }

func CastStaticDef(n *redtree.SyntaxNode) (StaticDef, bool) {
	return castOfKind(n, syntaxkind.StaticDef, func(n *redtree.SyntaxNode) StaticDef { return StaticDef{node{n}} })
}

func (s StaticDef) Name() (Name, bool)             { return nameOfFirstChild(s.Syntax()) }
func (s StaticDef) Visibility() (Visibility, bool) { return visibilityOfFirstChild(s.Syntax()) }
func (s StaticDef) Type() (Type, bool)             { return typeOfFirstChild(s.Syntax()) }
func (s StaticDef) Value() (Expr, bool)            { return exprOfFirstChild(s.Syntax()) }

var (
	_ HasName       = StaticDef{}
	_ HasVisibility = StaticDef{}
)
