package parser

import (
	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// literalStartTokens are every TokenKind parsePrimaryExpr wraps directly in
// a LiteralExpr: the textual/numeric literal forms plus the boolean and
// mathematical-constant keywords (spec.md §4.4 lists Pi/Euler/Phi/Tau/
// Catalan/EulerGamma/Inf/NaN alongside the ordinary literal kinds).
var literalStartTokens = []lexer.TokenKind{
	lexer.TokenInteger, lexer.TokenFloat, lexer.TokenIntegerSup, lexer.TokenFloatSup,
	lexer.TokenString, lexer.TokenRawString, lexer.TokenRune,
	lexer.KwTrue, lexer.KwFalse,
	lexer.TokenPi, lexer.TokenEuler, lexer.TokenPhi, lexer.TokenTau,
	lexer.TokenCatalan, lexer.TokenEulerGamma, lexer.TokenInf, lexer.TokenNan,
}

var prefixOpTokens = []lexer.TokenKind{lexer.TokenMinus, lexer.TokenBang, lexer.TokenStar, lexer.TokenAmpersand}

// binPrecedence reports the binding power of k as an infix operator, and
// whether it is right- rather than left-associative. A precedence of 0
// means k is not a binary operator at all. The assignment family sits at
// the bottom and is right-associative; everything else is left-associative,
// ascending roughly in C's usual precedence order.
func binPrecedence(k lexer.TokenKind) (prec int, rightAssoc bool) {
	switch k {
	case lexer.TokenEq, lexer.TokenPlusEq, lexer.TokenMinusEq, lexer.TokenStarEq,
		lexer.TokenSlashEq, lexer.TokenPercentEq, lexer.TokenCaretEq,
		lexer.TokenAmpersandEq, lexer.TokenPipeEq, lexer.TokenShlEq, lexer.TokenShrEq:
		return 1, true
	case lexer.TokenDoublePipe, lexer.KwOr:
		return 2, false
	case lexer.TokenDoubleAmpersand, lexer.KwAnd:
		return 3, false
	case lexer.TokenEqEq, lexer.TokenNe, lexer.TokenLt, lexer.TokenGt, lexer.TokenLe, lexer.TokenGe,
		lexer.KwIs, lexer.KwIsnt:
		return 4, false
	case lexer.TokenPipe:
		return 5, false
	case lexer.TokenCaret:
		return 6, false
	case lexer.TokenAmpersand:
		return 7, false
	case lexer.TokenShl, lexer.TokenShr:
		return 8, false
	case lexer.TokenPlus, lexer.TokenMinus:
		return 9, false
	case lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent:
		return 10, false
	default:
		return 0, false
	}
}

// parseExpr parses a full expression at the lowest binding power.
func parseExpr(p *Parser) {
	parseExprBp(p, 1)
}

// parseExprBp is the precedence-climbing core (spec.md §4.5): it parses a
// unary expression, then repeatedly absorbs infix operators whose binding
// power is at least minBp, retroactively wrapping everything parsed since
// cp in a BinExpr for each one. Left-associative operators raise the
// minimum power required of their right operand by one so that a chain of
// equal-precedence operators loops rather than recurses; right-associative
// ones (the assignment family) keep it the same so the right operand can
// itself absorb another assignment.
func parseExprBp(p *Parser, minBp int) {
	cp := p.Checkpoint()
	parseUnaryExpr(p)
	for {
		prec, rightAssoc := binPrecedence(p.Peek().Kind)
		if prec == 0 || prec < minBp {
			return
		}
		p.bumpAny()
		nextMinBp := prec + 1
		if rightAssoc {
			nextMinBp = prec
		}
		parseExprBp(p, nextMinBp)
		p.StartNodeAt(cp, syntaxkind.BinExpr)
		p.FinishNode()
	}
}

func parseUnaryExpr(p *Parser) {
	if p.At(lexer.KwNot) || p.AtAny(prefixOpTokens...) {
		p.StartNode(syntaxkind.PrefixExpr)
		p.bumpAny()
		parseUnaryExpr(p)
		p.FinishNode()
		return
	}
	parsePostfixExpr(p)
}

// parsePostfixExpr parses a primary expression then absorbs any chain of
// field access and call syntax following it, using the same checkpoint
// trick as parseExprBp to wrap the already-emitted receiver/callee.
func parsePostfixExpr(p *Parser) {
	cp := p.Checkpoint()
	parsePrimaryExpr(p)
	for {
		switch {
		case p.At(lexer.TokenDot):
			p.Bump(lexer.TokenDot)
			parseNameRef(p)
			p.StartNodeAt(cp, syntaxkind.FieldExpr)
			p.FinishNode()
		case p.At(lexer.TokenLParen):
			p.Bump(lexer.TokenLParen)
			for !p.AtEOF() && !p.At(lexer.TokenRParen) {
				parseExpr(p)
				if !p.Eat(lexer.TokenComma) {
					break
				}
			}
			p.Expect(lexer.TokenRParen)
			p.StartNodeAt(cp, syntaxkind.CallExpr)
			p.FinishNode()
		default:
			return
		}
	}
}

func parsePrimaryExpr(p *Parser) {
	switch {
	case p.AtAny(literalStartTokens...):
		p.StartNode(syntaxkind.LiteralExpr)
		p.bumpAny()
		p.FinishNode()
	case p.At(lexer.TokenIdentifier):
		p.StartNode(syntaxkind.RefExpr)
		parsePath(p)
		p.FinishNode()
	case p.At(lexer.TokenLParen):
		p.StartNode(syntaxkind.ParenExpr)
		p.Bump(lexer.TokenLParen)
		parseExpr(p)
		p.Expect(lexer.TokenRParen)
		p.FinishNode()
	case p.At(lexer.TokenLBrace):
		parseBlockExpr(p)
	case p.At(lexer.KwIf):
		parseIfExpr(p)
	case p.At(lexer.KwWhile):
		parseWhileExpr(p)
	case p.At(lexer.KwLoop):
		parseLoopExpr(p)
	case p.At(lexer.KwMatch):
		parseMatchExpr(p)
	case p.At(lexer.KwReturn):
		parseReturnExpr(p)
	default:
		p.Error("expected an expression")
		p.bumpAny()
	}
}

func parseBlockExpr(p *Parser) {
	p.StartNode(syntaxkind.BlockExpr)
	p.Expect(lexer.TokenLBrace)
	for !p.AtEOF() && !p.At(lexer.TokenRBrace) {
		parseStmt(p)
	}
	p.Expect(lexer.TokenRBrace)
	p.FinishNode()
}

// stmtFollow bounds error recovery inside a block: a missing semicolon or
// similar malformed statement synchronizes to the semicolon, a `let` or
// item keyword, or the block's closing brace — never past any of them, so a
// dropped semicolon before a `let` or an item costs only the one statement.
// A following statement that starts with any other token is skipped up to
// its own semicolon.
var stmtFollow = append([]lexer.TokenKind{
	lexer.TokenSemicolon, lexer.TokenRBrace, lexer.TokenEOF, lexer.KwLet,
}, itemStartKeywords...)

func parseStmt(p *Parser) {
	switch {
	case p.At(lexer.KwLet):
		parseLetStmt(p)
	case p.AtAny(itemStartKeywords...):
		parseItem(p)
	default:
		parseExprStmt(p)
	}
}

func parseLetStmt(p *Parser) {
	p.StartNode(syntaxkind.LetStmt)
	p.Bump(lexer.KwLet)
	parseName(p)
	if p.Eat(lexer.TokenColon) {
		parseType(p)
	}
	if p.Eat(lexer.TokenEq) {
		parseExpr(p)
	}
	if !p.Expect(lexer.TokenSemicolon) {
		p.synchronize(stmtFollow...)
		p.Eat(lexer.TokenSemicolon)
	}
	p.FinishNode()
}

func parseExprStmt(p *Parser) {
	p.StartNode(syntaxkind.ExprStmt)
	parseExpr(p)
	// A trailing expression with no semicolon is the block's tail value;
	// the semicolon is only required between statements, never after the
	// last one, so its absence is not an error here.
	p.Eat(lexer.TokenSemicolon)
	p.FinishNode()
}

func parseIfExpr(p *Parser) {
	p.StartNode(syntaxkind.IfExpr)
	p.Bump(lexer.KwIf)
	parseExpr(p)
	parseBlockExpr(p)
	if p.Eat(lexer.KwElse) {
		if p.At(lexer.KwIf) {
			parseIfExpr(p)
		} else {
			parseBlockExpr(p)
		}
	}
	p.FinishNode()
}

func parseWhileExpr(p *Parser) {
	p.StartNode(syntaxkind.WhileExpr)
	p.Bump(lexer.KwWhile)
	parseExpr(p)
	parseBlockExpr(p)
	p.FinishNode()
}

func parseLoopExpr(p *Parser) {
	p.StartNode(syntaxkind.LoopExpr)
	p.Bump(lexer.KwLoop)
	parseBlockExpr(p)
	p.FinishNode()
}

func parseMatchExpr(p *Parser) {
	p.StartNode(syntaxkind.MatchExpr)
	p.Bump(lexer.KwMatch)
	parseExpr(p)
	parseMatchArmList(p)
	p.FinishNode()
}

func parseMatchArmList(p *Parser) {
	p.StartNode(syntaxkind.MatchArmList)
	p.Expect(lexer.TokenLBrace)
	for !p.AtEOF() && !p.At(lexer.TokenRBrace) {
		parseMatchArm(p)
		p.Eat(lexer.TokenComma)
	}
	p.Expect(lexer.TokenRBrace)
	p.FinishNode()
}

// parseMatchArm parses `pattern => expr`. Pattern grammar beyond literal
// and identifier dispatch is out of scope (see ast.MatchArm), so the
// pattern's tokens are consumed without being wrapped in any node — they
// become bare leaves of the MatchArm rather than an Expr, so
// ast.MatchArm.Body never mistakes the pattern for the arm's value.
func parseMatchArm(p *Parser) {
	p.StartNode(syntaxkind.MatchArm)
	for !p.AtEOF() && !p.At(lexer.TokenFatArrow) && !p.At(lexer.TokenRBrace) {
		p.bumpAny()
	}
	p.Expect(lexer.TokenFatArrow)
	parseExpr(p)
	p.FinishNode()
}

func parseReturnExpr(p *Parser) {
	p.StartNode(syntaxkind.ReturnExpr)
	p.Bump(lexer.KwReturn)
	if !p.AtAny(lexer.TokenSemicolon, lexer.TokenRBrace, lexer.TokenEOF) {
		parseExpr(p)
	}
	p.FinishNode()
}
