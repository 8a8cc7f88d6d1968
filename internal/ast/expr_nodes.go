package ast

import (
	"github.com/leafc-lang/leafc/internal/redtree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// BlockExpr is `{ Stmt* }`.
type BlockExpr struct{ node }

func CanCastBlockExpr(k syntaxkind.Kind) bool { return k == syntaxkind.BlockExpr }

func CastBlockExpr(n *redtree.SyntaxNode) (BlockExpr, bool) {
	return castOfKind(n, syntaxkind.BlockExpr, func(n *redtree.SyntaxNode) BlockExpr { return BlockExpr{node{n}} })
}

func (b BlockExpr) Stmts() []Stmt { return stmtsOfChildren(b.Syntax()) }

// ExprStmt is an expression used as a statement, `Expr;`.
type ExprStmt struct{ node }

func CanCastExprStmt(k syntaxkind.Kind) bool { return k == syntaxkind.ExprStmt }

func CastExprStmt(n *redtree.SyntaxNode) (ExprStmt, bool) {
	return castOfKind(n, syntaxkind.ExprStmt, func(n *redtree.SyntaxNode) ExprStmt { return ExprStmt{node{n}} })
}

func (s ExprStmt) Expr() (Expr, bool) { return exprOfFirstChild(s.Syntax()) }

// LetStmt is `let NAME: Type = Expr;`, with Type and the initializer both
// optional per the grammar.
type LetStmt struct{ node }

func CanCastLetStmt(k syntaxkind.Kind) bool { return k == syntaxkind.LetStmt }

func CastLetStmt(n *redtree.SyntaxNode) (LetStmt, bool) {
	return castOfKind(n, syntaxkind.LetStmt, func(n *redtree.SyntaxNode) LetStmt { return LetStmt{node{n}} })
}

func (l LetStmt) Name() (Name, bool)        { return nameOfFirstChild(l.Syntax()) }
func (l LetStmt) Type() (Type, bool)        { return typeOfFirstChild(l.Syntax()) }
func (l LetStmt) Initializer() (Expr, bool) { return exprOfFirstChild(l.Syntax()) }

var _ HasName = LetStmt{}

// FieldExpr is `Expr.NameRef`, a field access.
type FieldExpr struct{ node }

func CanCastFieldExpr(k syntaxkind.Kind) bool { return k == syntaxkind.FieldExpr }

func CastFieldExpr(n *redtree.SyntaxNode) (FieldExpr, bool) {
	return castOfKind(n, syntaxkind.FieldExpr, func(n *redtree.SyntaxNode) FieldExpr { return FieldExpr{node{n}} })
}

func (e FieldExpr) Receiver() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }
func (e FieldExpr) Field() (NameRef, bool) {
	c, ok := firstChildOfKind(e.Syntax(), syntaxkind.NameRef)
	if !ok {
		return NameRef{}, false
	}
	return NameRef{node{c}}, true
}

// RefExpr is a bare identifier used as a value, `NameRef` or `Path`.
type RefExpr struct{ node }

func CanCastRefExpr(k syntaxkind.Kind) bool { return k == syntaxkind.RefExpr }

func CastRefExpr(n *redtree.SyntaxNode) (RefExpr, bool) {
	return castOfKind(n, syntaxkind.RefExpr, func(n *redtree.SyntaxNode) RefExpr { return RefExpr{node{n}} })
}

func (e RefExpr) Path() (Path, bool) {
	c, ok := firstChildOfKind(e.Syntax(), syntaxkind.Path)
	if !ok {
		return Path{}, false
	}
	return Path{node{c}}, true
}

// CallExpr is `Callee(Args...)`. There is no separate ArgList node kind —
// the callee is the first Expr child, every subsequent Expr child is an
// argument, in source order.
type CallExpr struct{ node }

func CanCastCallExpr(k syntaxkind.Kind) bool { return k == syntaxkind.CallExpr }

func CastCallExpr(n *redtree.SyntaxNode) (CallExpr, bool) {
	return castOfKind(n, syntaxkind.CallExpr, func(n *redtree.SyntaxNode) CallExpr { return CallExpr{node{n}} })
}

func (e CallExpr) Callee() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }

func (e CallExpr) Args() []Expr {
	all := exprsOfChildren(e.Syntax())
	if len(all) == 0 {
		return nil
	}
	return all[1:]
}

// BinExpr is a binary operator expression; the operator token itself sits
// between the two operand children.
type BinExpr struct{ node }

func CanCastBinExpr(k syntaxkind.Kind) bool { return k == syntaxkind.BinExpr }

func CastBinExpr(n *redtree.SyntaxNode) (BinExpr, bool) {
	return castOfKind(n, syntaxkind.BinExpr, func(n *redtree.SyntaxNode) BinExpr { return BinExpr{node{n}} })
}

func (e BinExpr) Operands() (lhs, rhs Expr, ok bool) {
	exprs := exprsOfChildren(e.Syntax())
	if len(exprs) != 2 {
		return Expr{}, Expr{}, false
	}
	return exprs[0], exprs[1], true
}

// Op returns the operator token sitting between the two operand children
// (the only direct token child a BinExpr node has).
func (e BinExpr) Op() (*redtree.SyntaxToken, bool) {
	for _, el := range e.Syntax().ChildrenWithTokens() {
		if el.Token != nil {
			return el.Token, true
		}
	}
	return nil, false
}

// PrefixExpr is a unary prefix operator expression, e.g. `-x` or `!flag`.
type PrefixExpr struct{ node }

func CanCastPrefixExpr(k syntaxkind.Kind) bool { return k == syntaxkind.PrefixExpr }

func CastPrefixExpr(n *redtree.SyntaxNode) (PrefixExpr, bool) {
	return castOfKind(n, syntaxkind.PrefixExpr, func(n *redtree.SyntaxNode) PrefixExpr { return PrefixExpr{node{n}} })
}

func (e PrefixExpr) Operand() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }

// LiteralExpr wraps a single literal token (integer, float, string, rune,
// superscript literal, or math constant).
type LiteralExpr struct{ node }

func CanCastLiteralExpr(k syntaxkind.Kind) bool { return k == syntaxkind.LiteralExpr }

func CastLiteralExpr(n *redtree.SyntaxNode) (LiteralExpr, bool) {
	return castOfKind(n, syntaxkind.LiteralExpr, func(n *redtree.SyntaxNode) LiteralExpr { return LiteralExpr{node{n}} })
}

func (e LiteralExpr) Token() *redtree.SyntaxToken { return e.Syntax().FirstToken() }

// ParenExpr is a parenthesized expression, `(Expr)`.
type ParenExpr struct{ node }

func CanCastParenExpr(k syntaxkind.Kind) bool { return k == syntaxkind.ParenExpr }

func CastParenExpr(n *redtree.SyntaxNode) (ParenExpr, bool) {
	return castOfKind(n, syntaxkind.ParenExpr, func(n *redtree.SyntaxNode) ParenExpr { return ParenExpr{node{n}} })
}

func (e ParenExpr) Inner() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }

// IfExpr is `if Expr BlockExpr (else (BlockExpr | IfExpr))?`.
type IfExpr struct{ node }

func CanCastIfExpr(k syntaxkind.Kind) bool { return k == syntaxkind.IfExpr }

func CastIfExpr(n *redtree.SyntaxNode) (IfExpr, bool) {
	return castOfKind(n, syntaxkind.IfExpr, func(n *redtree.SyntaxNode) IfExpr { return IfExpr{node{n}} })
}

func (e IfExpr) Condition() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }

func (e IfExpr) Then() (BlockExpr, bool) {
	c, ok := firstChildOfKind(e.Syntax(), syntaxkind.BlockExpr)
	if !ok {
		return BlockExpr{}, false
	}
	return BlockExpr{node{c}}, true
}

// Else returns the else branch, which is either a BlockExpr or a nested
// IfExpr (an `else if`); it's the second BlockExpr/IfExpr child, if any.
func (e IfExpr) Else() (Expr, bool) {
	kids := e.Syntax().Children()
	seenBlock := false
	for _, c := range kids {
		switch c.Kind() {
		case syntaxkind.BlockExpr:
			if seenBlock {
				return CastExpr(c)
			}
			seenBlock = true
		case syntaxkind.IfExpr:
			if seenBlock {
				return CastExpr(c)
			}
		}
	}
	return Expr{}, false
}

// WhileExpr is `while Expr BlockExpr`.
type WhileExpr struct{ node }

func CanCastWhileExpr(k syntaxkind.Kind) bool { return k == syntaxkind.WhileExpr }

func CastWhileExpr(n *redtree.SyntaxNode) (WhileExpr, bool) {
	return castOfKind(n, syntaxkind.WhileExpr, func(n *redtree.SyntaxNode) WhileExpr { return WhileExpr{node{n}} })
}

func (e WhileExpr) Condition() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }
func (e WhileExpr) Body() (BlockExpr, bool) {
	c, ok := firstChildOfKind(e.Syntax(), syntaxkind.BlockExpr)
	if !ok {
		return BlockExpr{}, false
	}
	return BlockExpr{node{c}}, true
}

// LoopExpr is `loop BlockExpr`, an unconditional loop.
type LoopExpr struct{ node }

func CanCastLoopExpr(k syntaxkind.Kind) bool { return k == syntaxkind.LoopExpr }

func CastLoopExpr(n *redtree.SyntaxNode) (LoopExpr, bool) {
	return castOfKind(n, syntaxkind.LoopExpr, func(n *redtree.SyntaxNode) LoopExpr { return LoopExpr{node{n}} })
}

func (e LoopExpr) Body() (BlockExpr, bool) {
	c, ok := firstChildOfKind(e.Syntax(), syntaxkind.BlockExpr)
	if !ok {
		return BlockExpr{}, false
	}
	return BlockExpr{node{c}}, true
}

// MatchExpr is `match Expr { MatchArmList }`.
type MatchExpr struct{ node }

func CanCastMatchExpr(k syntaxkind.Kind) bool { return k == syntaxkind.MatchExpr }

func CastMatchExpr(n *redtree.SyntaxNode) (MatchExpr, bool) {
	return castOfKind(n, syntaxkind.MatchExpr, func(n *redtree.SyntaxNode) MatchExpr { return MatchExpr{node{n}} })
}

func (e MatchExpr) Scrutinee() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }
func (e MatchExpr) Arms() (MatchArmList, bool) {
	c, ok := firstChildOfKind(e.Syntax(), syntaxkind.MatchArmList)
	if !ok {
		return MatchArmList{}, false
	}
	return MatchArmList{node{c}}, true
}

// MatchArmList is the brace-delimited body of a MatchExpr.
type MatchArmList struct{ node }

func CanCastMatchArmList(k syntaxkind.Kind) bool { return k == syntaxkind.MatchArmList }

func CastMatchArmList(n *redtree.SyntaxNode) (MatchArmList, bool) {
	return castOfKind(n, syntaxkind.MatchArmList, func(n *redtree.SyntaxNode) MatchArmList {
		return MatchArmList{node{n}}
	})
}

func (l MatchArmList) Arms() []MatchArm {
	var out []MatchArm
	for _, c := range childrenOfKind(l.Syntax(), syntaxkind.MatchArm) {
		out = append(out, MatchArm{node{c}})
	}
	return out
}

// MatchArm is a single `pattern => Expr` arm. Pattern matching beyond
// literal/identifier patterns is out of scope (spec.md carries no pattern
// grammar), so the pattern surface is exposed only as its raw tokens via
// Syntax(); Body is the only typed accessor.
type MatchArm struct{ node }

func CanCastMatchArm(k syntaxkind.Kind) bool { return k == syntaxkind.MatchArm }

func CastMatchArm(n *redtree.SyntaxNode) (MatchArm, bool) {
	return castOfKind(n, syntaxkind.MatchArm, func(n *redtree.SyntaxNode) MatchArm { return MatchArm{node{n}} })
}

func (a MatchArm) Body() (Expr, bool) { return exprOfFirstChild(a.Syntax()) }

// ReturnExpr is `return Expr?`.
type ReturnExpr struct{ node }

func CanCastReturnExpr(k syntaxkind.Kind) bool { return k == syntaxkind.ReturnExpr }

func CastReturnExpr(n *redtree.SyntaxNode) (ReturnExpr, bool) {
	return castOfKind(n, syntaxkind.ReturnExpr, func(n *redtree.SyntaxNode) ReturnExpr { return ReturnExpr{node{n}} })
}

func (e ReturnExpr) Value() (Expr, bool) { return exprOfFirstChild(e.Syntax()) }
