package ast

import (
	"testing"

	"github.com/leafc-lang/leafc/internal/greentree"
	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

func tok(b *greentree.Builder, tk lexer.TokenKind, text string) {
	b.Token(syntaxkind.FromToken(tk), text)
}

// buildSourceFile constructs the green tree for:
//
//	/// doubles x
//	fn double(x: i32) -> i32 {
//	    return x;
//	}
func buildSourceFile() *greentree.GreenNode {
	b := greentree.NewBuilder()
	b.StartNode(syntaxkind.SourceFile)

	tok(b, lexer.TokenDocComment, "/// doubles x")
	tok(b, lexer.TokenWhitespace, "\n")

	b.StartNode(syntaxkind.Function)
	tok(b, lexer.KwFn, "fn")
	tok(b, lexer.TokenWhitespace, " ")

	b.StartNode(syntaxkind.Name)
	tok(b, lexer.TokenIdentifier, "double")
	b.FinishNode()

	tok(b, lexer.TokenLParen, "(")
	b.StartNode(syntaxkind.ParamList)
	b.StartNode(syntaxkind.Param)
	b.StartNode(syntaxkind.Name)
	tok(b, lexer.TokenIdentifier, "x")
	b.FinishNode()
	tok(b, lexer.TokenColon, ":")
	tok(b, lexer.TokenWhitespace, " ")
	b.StartNode(syntaxkind.PathType)
	b.StartNode(syntaxkind.Path)
	b.StartNode(syntaxkind.PathSegment)
	b.StartNode(syntaxkind.NameRef)
	tok(b, lexer.TokenIdentifier, "i32")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	b.FinishNode() // Param
	b.FinishNode() // ParamList
	tok(b, lexer.TokenRParen, ")")
	tok(b, lexer.TokenWhitespace, " ")

	tok(b, lexer.TokenRArrow, "->")
	tok(b, lexer.TokenWhitespace, " ")
	b.StartNode(syntaxkind.RetType)
	b.StartNode(syntaxkind.PathType)
	b.StartNode(syntaxkind.Path)
	b.StartNode(syntaxkind.PathSegment)
	b.StartNode(syntaxkind.NameRef)
	tok(b, lexer.TokenIdentifier, "i32")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	b.FinishNode() // RetType
	tok(b, lexer.TokenWhitespace, " ")

	b.StartNode(syntaxkind.BlockExpr)
	tok(b, lexer.TokenLBrace, "{")
	tok(b, lexer.TokenWhitespace, "\n    ")

	b.StartNode(syntaxkind.ExprStmt)
	b.StartNode(syntaxkind.ReturnExpr)
	tok(b, lexer.KwReturn, "return")
	tok(b, lexer.TokenWhitespace, " ")
	b.StartNode(syntaxkind.RefExpr)
	b.StartNode(syntaxkind.Path)
	b.StartNode(syntaxkind.PathSegment)
	b.StartNode(syntaxkind.NameRef)
	tok(b, lexer.TokenIdentifier, "x")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	b.FinishNode() // RefExpr
	b.FinishNode() // ReturnExpr
	tok(b, lexer.TokenSemicolon, ";")
	b.FinishNode() // ExprStmt

	tok(b, lexer.TokenWhitespace, "\n")
	tok(b, lexer.TokenRBrace, "}")
	b.FinishNode() // BlockExpr

	b.FinishNode() // Function
	b.FinishNode() // SourceFile
	return b.Finish()
}

func TestASTProjectionOverAFunctionDeclaration(t *testing.T) {
	t.Parallel()

	root := redtree.NewRoot(buildSourceFile())
	sf, ok := CastSourceFile(root)
	if !ok {
		t.Fatal("CastSourceFile failed on SourceFile root")
	}

	items := sf.Items()
	if len(items) != 1 || items[0].Fn == nil {
		t.Fatalf("expected exactly one Function item, got %+v", items)
	}
	fn := *items[0].Fn

	name, ok := fn.Name()
	if !ok || name.Syntax().FirstToken().Text() != "double" {
		t.Fatalf("Function.Name() = %+v, ok=%v", name, ok)
	}

	docs := fn.DocComments()
	if len(docs) != 1 || docs[0] != "/// doubles x" {
		t.Fatalf("DocComments() = %v, want [\"/// doubles x\"]", docs)
	}

	params, ok := fn.ParamList()
	if !ok || len(params.Params()) != 1 {
		t.Fatalf("ParamList() = %+v, ok=%v", params, ok)
	}
	pname, ok := params.Params()[0].Name()
	if !ok || pname.Syntax().FirstToken().Text() != "x" {
		t.Fatalf("param name = %+v", pname)
	}

	ret, ok := fn.RetType()
	if !ok {
		t.Fatal("RetType() missing")
	}
	retTy, ok := ret.Type()
	if !ok || retTy.Path == nil {
		t.Fatalf("RetType.Type() = %+v, ok=%v", retTy, ok)
	}

	body, ok := fn.Body()
	if !ok {
		t.Fatal("Body() missing")
	}
	stmts := body.Stmts()
	if len(stmts) != 1 || stmts[0].ExprStmt == nil {
		t.Fatalf("body stmts = %+v", stmts)
	}

	exprStmt := *stmts[0].ExprStmt
	expr, ok := exprStmt.Expr()
	if !ok || expr.Return == nil {
		t.Fatalf("ExprStmt.Expr() = %+v, ok=%v", expr, ok)
	}

	retVal, ok := expr.Return.Value()
	if !ok || retVal.Ref == nil {
		t.Fatalf("ReturnExpr.Value() = %+v, ok=%v", retVal, ok)
	}

	path, ok := retVal.Ref.Path()
	if !ok || len(path.Segments()) != 1 {
		t.Fatalf("RefExpr.Path() = %+v, ok=%v", path, ok)
	}
}

func TestCanCastFamiliesAreDisjointFromNodeKind(t *testing.T) {
	t.Parallel()

	if !CanCastExpr(syntaxkind.RefExpr) || CanCastExpr(syntaxkind.Function) {
		t.Fatal("CanCastExpr should accept expression kinds only")
	}
	if !CanCastItem(syntaxkind.Function) || CanCastItem(syntaxkind.RefExpr) {
		t.Fatal("CanCastItem should accept item kinds only")
	}
	if !CanCastStmt(syntaxkind.Function) {
		t.Fatal("CanCastStmt must flatten Item kinds (spec: Stmt = ExprStmt | Item)")
	}
}

func TestCastReturnsFalseForWrongKind(t *testing.T) {
	t.Parallel()

	root := redtree.NewRoot(buildSourceFile())
	if _, ok := CastFunction(root); ok {
		t.Fatal("CastFunction should fail on a SourceFile node")
	}
}
