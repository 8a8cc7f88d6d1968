package parser

import (
	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// itemStartKeywords are the tokens that begin an item, per spec.md §4.5's
// top-level state table: `mod | pub | use | fn | struct | enum | trait |
// impl | type | const | static`.
var itemStartKeywords = []lexer.TokenKind{
	lexer.KwMod, lexer.KwPub, lexer.KwUse, lexer.KwFn, lexer.KwStruct,
	lexer.KwEnum, lexer.KwTrait, lexer.KwImpl, lexer.KwType, lexer.KwConst,
	lexer.KwStatic,
}

// sourceFileFollow is the synchronization set used to recover from a
// malformed item at the top level: anything that could plausibly start the
// next one, plus EOF.
var sourceFileFollow = append(append([]lexer.TokenKind{lexer.TokenHash}, itemStartKeywords...), lexer.TokenEOF)

// ParseSourceFile runs the top-level state machine of spec.md §4.5:
// `SOURCE_FILE -> (attribute | item)* EOF`. It never aborts: on malformed
// input it records diagnostics and skips tokens until recovery is
// possible, always returning a complete (possibly degenerate) tree.
func ParseSourceFile(p *Parser) {
	p.StartNode(syntaxkind.SourceFile)
	for !p.AtEOF() {
		switch {
		case p.At(lexer.TokenHash):
			parseAttr(p)
		case p.AtAny(itemStartKeywords...):
			parseItem(p)
		default:
			p.Error("expected an attribute or item")
			p.bumpAny()
		}
	}
	p.flushTrivia()
	p.FinishNode()
}

// parseAttr parses a `#[meta]` attribute. Malformed attributes recover to
// the top-level follow set.
func parseAttr(p *Parser) {
	p.StartNode(syntaxkind.Attr)
	p.Bump(lexer.TokenHash)
	if !p.Expect(lexer.TokenLBracket) {
		p.synchronize(sourceFileFollow...)
		p.FinishNode()
		return
	}
	parseMeta(p)
	p.Expect(lexer.TokenRBracket)
	p.FinishNode()
}

func parseMeta(p *Parser) {
	p.StartNode(syntaxkind.Meta)
	parsePath(p)
	if p.At(lexer.TokenLParen) {
		parseTokenTree(p, lexer.TokenLParen, lexer.TokenRParen)
	}
	p.FinishNode()
}

// parseTokenTree consumes a balanced open/close-delimited run of tokens
// verbatim, for attribute argument lists whose internal grammar the parser
// does not otherwise understand.
func parseTokenTree(p *Parser, open, close lexer.TokenKind) {
	p.StartNode(syntaxkind.TokenTree)
	p.Bump(open)
	depth := 1
	for depth > 0 && !p.AtEOF() {
		switch p.Peek().Kind {
		case open:
			depth++
			p.bumpAny()
		case close:
			depth--
			p.bumpAny()
		default:
			p.bumpAny()
		}
	}
	p.FinishNode()
}

func parsePath(p *Parser) {
	p.StartNode(syntaxkind.Path)
	parsePathSegment(p)
	for p.At(lexer.TokenPathSep) {
		p.Bump(lexer.TokenPathSep)
		parsePathSegment(p)
	}
	p.FinishNode()
}

func parsePathSegment(p *Parser) {
	p.StartNode(syntaxkind.PathSegment)
	parseNameRef(p)
	p.FinishNode()
}

func parseName(p *Parser) {
	p.StartNode(syntaxkind.Name)
	p.Expect(lexer.TokenIdentifier)
	p.FinishNode()
}

func parseNameRef(p *Parser) {
	p.StartNode(syntaxkind.NameRef)
	p.Expect(lexer.TokenIdentifier)
	p.FinishNode()
}

func parseVisibility(p *Parser) {
	p.StartNode(syntaxkind.Visibility)
	p.Bump(lexer.KwPub)
	p.FinishNode()
}
