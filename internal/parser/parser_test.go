package parser

import (
	"testing"

	"github.com/leafc-lang/leafc/internal/ast"
	"github.com/leafc-lang/leafc/internal/codemap"
	"github.com/leafc-lang/leafc/internal/intern"
	"github.com/leafc-lang/leafc/internal/redtree"
)

func newTestFile(src string) codemap.FileID {
	fs := codemap.NewFileSet("/work", intern.NewStringInterner(), intern.NewFileInterner())
	return fs.AddFile("main.leaf", []byte(src))
}

func TestParseWellFormedFunctionDeclaration(t *testing.T) {
	src := "fn double(x: i32) -> i32 {\n    return x * 2;\n}\n"
	green, diags := Parse([]byte(src), newTestFile(src))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}

	root := redtree.NewRoot(green)
	sf, ok := ast.CastSourceFile(root)
	if !ok {
		t.Fatalf("root is not a SourceFile, got %v", root.Kind())
	}
	items := sf.Items()
	if len(items) != 1 || items[0].Fn == nil {
		t.Fatalf("expected exactly one function item, got %#v", items)
	}

	fn := *items[0].Fn
	name, ok := fn.Name()
	if !ok || name.Syntax().FirstToken().Text() != "double" {
		t.Fatalf("expected function name 'double', got %#v ok=%v", name, ok)
	}
	params, ok := fn.ParamList()
	if !ok || len(params.Params()) != 1 {
		t.Fatalf("expected one parameter, got %#v", params)
	}
	if _, ok := fn.RetType(); !ok {
		t.Fatal("expected a return type")
	}
	body, ok := fn.Body()
	if !ok {
		t.Fatal("expected a function body")
	}
	stmts := body.Stmts()
	if len(stmts) != 1 || stmts[0].ExprStmt == nil {
		t.Fatalf("expected a single expression statement, got %#v", stmts)
	}
}

func TestParseAcceptsTrailingCommaInParamList(t *testing.T) {
	src := "fn f(a: i32, b: i32,) {}\n"
	green, diags := Parse([]byte(src), newTestFile(src))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	root := redtree.NewRoot(green)
	sf, _ := ast.CastSourceFile(root)
	fn := *sf.Items()[0].Fn
	params, _ := fn.ParamList()
	if len(params.Params()) != 2 {
		t.Fatalf("expected two parameters despite trailing comma, got %d", len(params.Params()))
	}
}

func TestParseBinaryExpressionRespectsPrecedence(t *testing.T) {
	src := "const X: i32 = 1 + 2 * 3;\n"
	green, diags := Parse([]byte(src), newTestFile(src))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	root := redtree.NewRoot(green)
	sf, _ := ast.CastSourceFile(root)
	item := sf.Items()[0]
	if item.Const == nil {
		t.Fatalf("expected a const item, got %#v", item)
	}
	value, ok := item.Const.Value()
	if !ok || value.Bin == nil {
		t.Fatalf("expected the const value to be a top-level BinExpr, got %#v", value)
	}
	lhs, rhs, ok := value.Bin.Operands()
	if !ok {
		t.Fatal("expected BinExpr to have two operands")
	}
	if lhs.Literal == nil {
		t.Fatalf("expected the left operand of + to be the literal 1, got %#v", lhs)
	}
	if rhs.Bin == nil {
		t.Fatalf("expected the right operand of + to be the nested 2 * 3, got %#v", rhs)
	}
}

func TestParseRecoversFromMissingSemicolon(t *testing.T) {
	src := "fn f() {\n    let x = 1\n    let y = 2;\n}\n"
	green, diags := Parse([]byte(src), newTestFile(src))
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for the missing semicolon")
	}
	root := redtree.NewRoot(green)
	sf, _ := ast.CastSourceFile(root)
	fn := *sf.Items()[0].Fn
	body, _ := fn.Body()
	stmts := body.Stmts()
	if len(stmts) != 2 {
		t.Fatalf("expected both let statements to survive recovery, got %d", len(stmts))
	}
}

func TestParseRecoversFromGarbageBeforeParamList(t *testing.T) {
	src := "fn @@ () {}\n"
	green, diags := Parse([]byte(src), newTestFile(src))
	if !diags.HasErrors() {
		t.Fatal("expected diagnostics for the malformed function header")
	}
	if n := len(diags.Errors()); n > 2 {
		t.Fatalf("expected recovery to stop cascading diagnostics, got %d: %v", n, diags.Errors())
	}

	root := redtree.NewRoot(green)
	sf, ok := ast.CastSourceFile(root)
	if !ok {
		t.Fatalf("root is not a SourceFile, got %v", root.Kind())
	}
	items := sf.Items()
	if len(items) != 1 || items[0].Fn == nil {
		t.Fatalf("expected exactly one function item, got %#v", items)
	}
	fn := *items[0].Fn
	params, ok := fn.ParamList()
	if !ok {
		t.Fatal("expected a param list to survive recovery")
	}
	if got := len(params.Params()); got != 0 {
		t.Fatalf("expected the garbage tokens to be skipped rather than parsed as a param, got %d params", got)
	}
	if _, ok := fn.Body(); !ok {
		t.Fatal("expected the function body to still parse after recovery")
	}
	if got := reconstruct(root); got != src {
		t.Fatalf("round trip mismatch after recovery:\nwant %q\ngot  %q", src, got)
	}
}

func TestParseIfElseChain(t *testing.T) {
	src := "fn f(n: i32) -> i32 {\n" +
		"    if n { return 1; } else if n { return 2; } else { return 3; }\n" +
		"}\n"
	green, diags := Parse([]byte(src), newTestFile(src))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	root := redtree.NewRoot(green)
	sf, _ := ast.CastSourceFile(root)
	fn := *sf.Items()[0].Fn
	body, _ := fn.Body()
	ifExpr, ok := body.Stmts()[0].ExprStmt.Expr()
	if !ok || ifExpr.If == nil {
		t.Fatalf("expected an if-expression, got %#v ok=%v", ifExpr, ok)
	}
	elseExpr, ok := ifExpr.If.Else()
	if !ok || elseExpr.If == nil {
		t.Fatalf("expected the else branch to be a nested if-expression, got %#v ok=%v", elseExpr, ok)
	}
}

func TestTokensRoundTripThroughTheTree(t *testing.T) {
	src := "/// doubles\nfn double(x: i32) -> i32 {\n    return x;\n}\n"
	green, _ := Parse([]byte(src), newTestFile(src))
	root := redtree.NewRoot(green)
	if got := reconstruct(root); got != src {
		t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", src, got)
	}
}

func reconstruct(n *redtree.SyntaxNode) string {
	var out []byte
	for _, el := range n.ChildrenWithTokens() {
		switch {
		case el.Node != nil:
			out = append(out, reconstruct(el.Node)...)
		case el.Token != nil:
			out = append(out, el.Token.Text()...)
		}
	}
	return string(out)
}
