package parser

import (
	"fmt"

	"github.com/leafc-lang/leafc/internal/codemap"
	"github.com/leafc-lang/leafc/internal/diagnostics"
	"github.com/leafc-lang/leafc/internal/greentree"
	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// Parser is the recursive-descent driver spec.md §4.5 describes: a token
// stream and cursor, a reference to a green builder, and an accumulator of
// diagnostics. It never panics on malformed input — only on a caller
// precondition violation (Bump called when not At the expected kind),
// which spec.md calls out as "an implementation bug", not a parse failure.
type Parser struct {
	src     []byte
	file    codemap.FileID
	stream  *tokenStream
	builder *greentree.Builder
	diags   *diagnostics.Manager
}

// New builds a Parser over tokens lexed from src (spec.md's lossless token
// stream, so leading trivia round-trips into the tree), tagging any
// diagnostics it raises with file.
func New(src []byte, tokens []lexer.Token, file codemap.FileID) *Parser {
	return &Parser{
		src:     src,
		file:    file,
		stream:  newTokenStream(tokens),
		builder: greentree.NewBuilder(),
		diags:   diagnostics.NewManager(),
	}
}

// Peek returns the current token without advancing.
func (p *Parser) Peek() lexer.Token { return p.stream.current() }

// Nth returns the token k slots ahead, for 0 <= k < 4.
func (p *Parser) Nth(k int) lexer.Token { return p.stream.nth(k) }

// At reports whether the current token has the given kind.
func (p *Parser) At(kind lexer.TokenKind) bool { return p.stream.current().Kind == kind }

// AtAny reports whether the current token's kind is any of kinds.
func (p *Parser) AtAny(kinds ...lexer.TokenKind) bool {
	cur := p.stream.current().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// AtEOF reports whether the cursor has reached the end of the stream.
func (p *Parser) AtEOF() bool { return p.stream.atEOF() }

// Bump emits the current token (with its leading trivia) into the builder
// and advances. Precondition: At(expected). Violating it is a parser bug,
// not a malformed-input condition, so it panics (spec.md §4.5).
func (p *Parser) Bump(expected lexer.TokenKind) {
	if !p.At(expected) {
		panic(fmt.Sprintf("parser: Bump(%v) precondition violated: at %v", expected, p.Peek().Kind))
	}
	p.bumpAny()
}

// bumpAny emits the current token, along with any trivia tokens that
// precede it in the flat stream, into the builder and advances. Used
// internally by error recovery to consume one token without an
// expectation to check.
func (p *Parser) bumpAny() {
	tok, trivia := p.stream.advance()
	for _, tr := range trivia {
		p.builder.Token(syntaxkind.FromToken(tr.Kind), string(tr.Bytes(p.src)))
	}
	p.builder.Token(syntaxkind.FromToken(tok.Kind), string(tok.Bytes(p.src)))
}

// flushTrivia pushes any trivia tokens sitting ahead of the cursor into the
// builder without consuming the significant token that follows them.
// ParseSourceFile calls this once at EOF: the loop never bumps the EOF
// token, so without this any trivia trailing the last real token (a final
// newline, a dangling comment) would otherwise be silently dropped from
// the tree.
func (p *Parser) flushTrivia() {
	for _, tr := range p.stream.drainTrivia() {
		p.builder.Token(syntaxkind.FromToken(tr.Kind), string(tr.Bytes(p.src)))
	}
}

// Eat bumps and returns true if At(kind); otherwise does nothing and
// returns false.
func (p *Parser) Eat(kind lexer.TokenKind) bool {
	if !p.At(kind) {
		return false
	}
	p.Bump(kind)
	return true
}

// Expect bumps if At(kind); otherwise records an UnexpectedToken diagnostic
// at the current position and does not advance.
func (p *Parser) Expect(kind lexer.TokenKind) bool {
	if p.Eat(kind) {
		return true
	}
	p.Error(fmt.Sprintf("expected %v, found %v", kind, p.Peek().Kind))
	return false
}

// Error records a diagnostic at the current token's position without
// advancing the cursor.
func (p *Parser) Error(message string) {
	p.diags.AddError(diagnostics.UnexpectedToken, message, p.currentLocation())
}

func (p *Parser) currentLocation() codemap.Location {
	return codemap.Location{File: p.file, Span: p.Peek().Span}
}

// StartNode delegates to the builder.
func (p *Parser) StartNode(kind syntaxkind.Kind) { p.builder.StartNode(kind) }

// FinishNode delegates to the builder.
func (p *Parser) FinishNode() { p.builder.FinishNode() }

// Checkpoint delegates to the builder, for constructs (binary expressions,
// postfix call/field chains) that only know their own node kind after
// having already parsed their first child.
func (p *Parser) Checkpoint() greentree.Checkpoint { return p.builder.Checkpoint() }

// StartNodeAt delegates to the builder.
func (p *Parser) StartNodeAt(cp greentree.Checkpoint, kind syntaxkind.Kind) {
	p.builder.StartNodeAt(cp, kind)
}

// synchronize scans forward, bumping tokens, until the cursor reaches a
// token in follow or EOF — spec.md §4.5's recovery policy. The caller is
// responsible for starting/finishing whatever node should still wrap the
// skipped tokens.
func (p *Parser) synchronize(follow ...lexer.TokenKind) {
	for !p.AtEOF() && !p.AtAny(follow...) {
		p.bumpAny()
	}
}

// Diagnostics returns the accumulated parse diagnostics.
func (p *Parser) Diagnostics() *diagnostics.Manager { return p.diags }

// Finish returns the completed green tree root. Call it only after the top
// level parse (ParseSourceFile) has balanced every StartNode with a
// FinishNode.
func (p *Parser) Finish() *greentree.GreenNode { return p.builder.Finish() }
