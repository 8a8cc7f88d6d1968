package parser

import (
	"fmt"

	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

// paramListOpenFollow is the recovery set used when a parameter list's
// opening `(` is missing: anything that could plausibly start the list for
// real, or end the function header entirely.
var paramListOpenFollow = []lexer.TokenKind{
	lexer.TokenLParen, lexer.TokenRParen, lexer.TokenLBrace,
	lexer.TokenRArrow, lexer.TokenSemicolon,
}

// paramFollow is the recovery set for a malformed parameter: the tokens
// that separate or close a parameter list.
var paramFollow = []lexer.TokenKind{lexer.TokenComma, lexer.TokenRParen}

// itemKeyword reports the keyword that determines which kind of item
// follows, skipping over a leading `pub` without consuming it.
func itemKeyword(p *Parser) lexer.TokenKind {
	if p.At(lexer.KwPub) {
		return p.Nth(1).Kind
	}
	return p.Peek().Kind
}

// parseItem dispatches on itemKeyword to one of the item-kind parsers.
// Each of those parsers is responsible for consuming its own optional
// leading `pub` visibility.
func parseItem(p *Parser) {
	switch itemKeyword(p) {
	case lexer.KwMod:
		parseModule(p)
	case lexer.KwUse:
		parseUse(p)
	case lexer.KwFn:
		parseFunction(p)
	case lexer.KwStruct:
		parseStructDef(p)
	case lexer.KwEnum:
		parseEnumDef(p)
	case lexer.KwTrait:
		parseTraitDef(p)
	case lexer.KwImpl:
		parseImplDef(p)
	case lexer.KwType:
		parseTypeAlias(p)
	case lexer.KwConst:
		parseConstDef(p)
	case lexer.KwStatic:
		parseStaticDef(p)
	default:
		p.Error("expected an item after 'pub'")
		p.bumpAny()
	}
}

// parseItemList parses a brace-delimited `(attribute | item)*` body, used
// by modules, traits, and impls.
func parseItemList(p *Parser) {
	p.StartNode(syntaxkind.ItemList)
	p.Expect(lexer.TokenLBrace)
	for !p.AtEOF() && !p.At(lexer.TokenRBrace) {
		switch {
		case p.At(lexer.TokenHash):
			parseAttr(p)
		case p.AtAny(itemStartKeywords...):
			parseItem(p)
		default:
			p.Error("expected an item")
			p.bumpAny()
		}
	}
	p.Expect(lexer.TokenRBrace)
	p.FinishNode()
}

func parseModule(p *Parser) {
	p.StartNode(syntaxkind.Module)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwMod)
	parseName(p)
	if p.At(lexer.TokenLBrace) {
		parseItemList(p)
	} else {
		p.Expect(lexer.TokenSemicolon)
	}
	p.FinishNode()
}

func parseUse(p *Parser) {
	p.StartNode(syntaxkind.Use)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwUse)
	parseUseTree(p)
	p.Expect(lexer.TokenSemicolon)
	p.FinishNode()
}

func parseUseTree(p *Parser) {
	p.StartNode(syntaxkind.UseTree)
	parsePath(p)
	if p.Eat(lexer.KwAs) {
		p.StartNode(syntaxkind.Rename)
		parseNameRef(p)
		p.FinishNode()
	}
	p.FinishNode()
}

func parseFunction(p *Parser) {
	p.StartNode(syntaxkind.Function)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwFn)
	parseName(p)
	parseParamList(p)
	if p.At(lexer.TokenRArrow) {
		parseRetType(p)
	}
	parseBlockExpr(p)
	p.FinishNode()
}

func parseParamList(p *Parser) {
	p.StartNode(syntaxkind.ParamList)
	if !p.Expect(lexer.TokenLParen) {
		p.synchronize(paramListOpenFollow...)
		p.Eat(lexer.TokenLParen)
	}
	for !p.AtEOF() && !p.At(lexer.TokenRParen) {
		parseParam(p)
		if !p.Eat(lexer.TokenComma) {
			break
		}
	}
	p.Expect(lexer.TokenRParen)
	p.FinishNode()
}

// parseParam parses a single `name: type` parameter. A failure at any step
// synchronizes to paramFollow before returning, so a malformed parameter
// costs one diagnostic and a clean skip to the next `,` or the closing `)`
// rather than cascading into its siblings.
func parseParam(p *Parser) {
	p.StartNode(syntaxkind.Param)
	if !p.At(lexer.TokenIdentifier) {
		p.Error(fmt.Sprintf("expected a parameter, found %v", p.Peek().Kind))
		p.synchronize(paramFollow...)
		p.FinishNode()
		return
	}
	parseName(p)
	if !p.Expect(lexer.TokenColon) {
		p.synchronize(paramFollow...)
		p.FinishNode()
		return
	}
	parseType(p)
	p.synchronize(paramFollow...)
	p.FinishNode()
}

func parseRetType(p *Parser) {
	p.StartNode(syntaxkind.RetType)
	p.Bump(lexer.TokenRArrow)
	parseType(p)
	p.FinishNode()
}

func parseStructDef(p *Parser) {
	p.StartNode(syntaxkind.StructDef)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwStruct)
	parseName(p)
	if p.At(lexer.TokenLBrace) || p.At(lexer.TokenLParen) {
		parseFieldList(p)
	} else {
		p.Expect(lexer.TokenSemicolon)
	}
	p.FinishNode()
}

func parseFieldList(p *Parser) {
	switch {
	case p.At(lexer.TokenLBrace):
		parseRecordFieldList(p)
	case p.At(lexer.TokenLParen):
		parseTupleFieldList(p)
	default:
		p.Error("expected a field list")
	}
}

func parseRecordFieldList(p *Parser) {
	p.StartNode(syntaxkind.RecordFieldList)
	p.Bump(lexer.TokenLBrace)
	for !p.AtEOF() && !p.At(lexer.TokenRBrace) {
		parseRecordField(p)
		if !p.Eat(lexer.TokenComma) {
			break
		}
	}
	p.Expect(lexer.TokenRBrace)
	p.FinishNode()
}

func parseRecordField(p *Parser) {
	p.StartNode(syntaxkind.RecordField)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	parseName(p)
	p.Expect(lexer.TokenColon)
	parseType(p)
	p.FinishNode()
}

func parseTupleFieldList(p *Parser) {
	p.StartNode(syntaxkind.TupleFieldList)
	p.Bump(lexer.TokenLParen)
	for !p.AtEOF() && !p.At(lexer.TokenRParen) {
		parseTupleField(p)
		if !p.Eat(lexer.TokenComma) {
			break
		}
	}
	p.Expect(lexer.TokenRParen)
	p.FinishNode()
}

func parseTupleField(p *Parser) {
	p.StartNode(syntaxkind.TupleField)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	parseType(p)
	p.FinishNode()
}

func parseEnumDef(p *Parser) {
	p.StartNode(syntaxkind.EnumDef)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwEnum)
	parseName(p)
	parseVariantList(p)
	p.FinishNode()
}

func parseVariantList(p *Parser) {
	p.StartNode(syntaxkind.VariantList)
	p.Expect(lexer.TokenLBrace)
	for !p.AtEOF() && !p.At(lexer.TokenRBrace) {
		parseVariant(p)
		if !p.Eat(lexer.TokenComma) {
			break
		}
	}
	p.Expect(lexer.TokenRBrace)
	p.FinishNode()
}

func parseVariant(p *Parser) {
	p.StartNode(syntaxkind.Variant)
	parseName(p)
	if p.At(lexer.TokenLBrace) || p.At(lexer.TokenLParen) {
		parseFieldList(p)
	}
	p.FinishNode()
}

func parseTraitDef(p *Parser) {
	p.StartNode(syntaxkind.TraitDef)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwTrait)
	parseName(p)
	parseItemList(p)
	p.FinishNode()
}

func parseImplDef(p *Parser) {
	p.StartNode(syntaxkind.ImplDef)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwImpl)
	parseType(p)
	parseItemList(p)
	p.FinishNode()
}

func parseTypeAlias(p *Parser) {
	p.StartNode(syntaxkind.TypeAlias)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwType)
	parseName(p)
	p.Expect(lexer.TokenEq)
	parseType(p)
	p.Expect(lexer.TokenSemicolon)
	p.FinishNode()
}

func parseConstDef(p *Parser) {
	p.StartNode(syntaxkind.ConstDef)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwConst)
	parseName(p)
	p.Expect(lexer.TokenColon)
	parseType(p)
	p.Expect(lexer.TokenEq)
	parseExpr(p)
	p.Expect(lexer.TokenSemicolon)
	p.FinishNode()
}

func parseStaticDef(p *Parser) {
	p.StartNode(syntaxkind.StaticDef)
	if p.At(lexer.KwPub) {
		parseVisibility(p)
	}
	p.Bump(lexer.KwStatic)
	parseName(p)
	p.Expect(lexer.TokenColon)
	parseType(p)
	p.Expect(lexer.TokenEq)
	parseExpr(p)
	p.Expect(lexer.TokenSemicolon)
	p.FinishNode()
}

// parseType dispatches on the lead token: `!` for the never type, `(` for
// a parenthesized type, anything else for a path type.
func parseType(p *Parser) {
	switch {
	case p.At(lexer.TokenBang):
		p.StartNode(syntaxkind.NeverType)
		p.Bump(lexer.TokenBang)
		p.FinishNode()
	case p.At(lexer.TokenLParen):
		p.StartNode(syntaxkind.ParenType)
		p.Bump(lexer.TokenLParen)
		parseType(p)
		p.Expect(lexer.TokenRParen)
		p.FinishNode()
	case p.At(lexer.TokenIdentifier):
		p.StartNode(syntaxkind.PathType)
		parsePath(p)
		p.FinishNode()
	default:
		p.Error("expected a type")
		p.bumpAny()
	}
}
