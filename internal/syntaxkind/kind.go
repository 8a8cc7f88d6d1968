// Package syntaxkind is the numeric tag space shared by every token and
// every non-terminal node in the green/red syntax tree (spec.md §3). It is
// a superset of lexer.TokenKind: token kinds lift directly into it, and
// node kinds are declared above lexer's highest value so the two spaces
// never collide.
package syntaxkind

import (
	"fmt"

	"github.com/leafc-lang/leafc/internal/lexer"
)

// Kind identifies either a token or a non-terminal node. It fits in 16 bits
// (spec.md §3: "Representable in 16 bits").
type Kind uint16

// nodeKindBase is the first value above every possible lexer.TokenKind.
// lexer.TokenKind values never exceed a few hundred, so this leaves ample
// headroom without the two packages needing to agree on an exact boundary.
const nodeKindBase Kind = 4096

const (
	SourceFile Kind = nodeKindBase + iota
	Module
	Use
	UseTree
	Path
	PathSegment
	Attr
	Meta
	ItemList
	RecordField
	TupleField
	RecordFieldList
	TupleFieldList
	ExprStmt
	LetStmt
	FieldExpr
	RefExpr
	CallExpr
	BinExpr
	PrefixExpr
	LiteralExpr
	ParenExpr
	BlockExpr
	IfExpr
	WhileExpr
	LoopExpr
	MatchExpr
	MatchArm
	MatchArmList
	ReturnExpr
	NeverType
	ParenType
	PathType
	Name
	NameRef
	Visibility
	Rename
	TokenTree
	Function
	ParamList
	Param
	RetType
	StructDef
	EnumDef
	Variant
	VariantList
	TraitDef
	ImplDef
	TypeAlias
	ConstDef
	StaticDef
	Error
)

var names = map[Kind]string{
	SourceFile:      "SOURCE_FILE",
	Module:          "MODULE",
	Use:             "USE",
	UseTree:         "USE_TREE",
	Path:            "PATH",
	PathSegment:     "PATH_SEGMENT",
	Attr:            "ATTR",
	Meta:            "META",
	ItemList:        "ITEM_LIST",
	RecordField:     "RECORD_FIELD",
	TupleField:      "TUPLE_FIELD",
	RecordFieldList: "RECORD_FIELD_LIST",
	TupleFieldList:  "TUPLE_FIELD_LIST",
	ExprStmt:        "EXPR_STMT",
	LetStmt:         "LET_STMT",
	FieldExpr:       "FIELD_EXPR",
	RefExpr:         "REF_EXPR",
	CallExpr:        "CALL_EXPR",
	BinExpr:         "BIN_EXPR",
	PrefixExpr:      "PREFIX_EXPR",
	LiteralExpr:     "LITERAL_EXPR",
	ParenExpr:       "PAREN_EXPR",
	BlockExpr:       "BLOCK_EXPR",
	IfExpr:          "IF_EXPR",
	WhileExpr:       "WHILE_EXPR",
	LoopExpr:        "LOOP_EXPR",
	MatchExpr:       "MATCH_EXPR",
	MatchArm:        "MATCH_ARM",
	MatchArmList:    "MATCH_ARM_LIST",
	ReturnExpr:      "RETURN_EXPR",
	NeverType:       "NEVER_TYPE",
	ParenType:       "PAREN_TYPE",
	PathType:        "PATH_TYPE",
	Name:            "NAME",
	NameRef:         "NAME_REF",
	Visibility:      "VISIBILITY",
	Rename:          "RENAME",
	TokenTree:       "TOKEN_TREE",
	Function:        "FUNCTION",
	ParamList:       "PARAM_LIST",
	Param:           "PARAM",
	RetType:         "RET_TYPE",
	StructDef:       "STRUCT_DEF",
	EnumDef:         "ENUM_DEF",
	Variant:         "VARIANT",
	VariantList:     "VARIANT_LIST",
	TraitDef:        "TRAIT_DEF",
	ImplDef:         "IMPL_DEF",
	TypeAlias:       "TYPE_ALIAS",
	ConstDef:        "CONST_DEF",
	StaticDef:       "STATIC_DEF",
	Error:           "ERROR_NODE",
}

func (k Kind) String() string {
	if k < nodeKindBase {
		return lexer.TokenKind(k).String()
	}
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsToken reports whether k identifies a terminal (lifted TokenKind) rather
// than a non-terminal node.
func (k Kind) IsToken() bool {
	return k < nodeKindBase
}

// FromToken lifts a lexer.TokenKind into the shared Kind space.
func FromToken(tk lexer.TokenKind) Kind {
	return Kind(tk)
}

// AsToken recovers the original lexer.TokenKind from a token-valued Kind.
// Calling it on a node kind is a programmer error and panics.
func (k Kind) AsToken() lexer.TokenKind {
	if !k.IsToken() {
		panic(fmt.Sprintf("syntaxkind: %v is not a token kind", k))
	}
	return lexer.TokenKind(k)
}
