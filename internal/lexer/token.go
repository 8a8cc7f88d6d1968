// Package lexer turns leafc source text into a lossless stream of tokens.
//
// TokenKind enumerates every terminal the multilingual lexer can produce:
// general/trivia kinds, literals, superscript literals, mathematical
// constants, the 52 logical keywords (keywords_table.go), punctuation, and
// delimiters. A token's Kind never depends on which of a keyword's sixteen
// spellings appeared in source (spec.md §4.3): "fn", "fonction", and "関数"
// all lex to KwFn.
package lexer

import (
	"fmt"

	"github.com/leafc-lang/leafc/internal/text"
)

// TokenKind identifies the syntactic category of a token. It fits in 16 bits
// so it can be embedded directly into a SyntaxKind (spec.md §3).
type TokenKind uint16

const (
	TokenError TokenKind = iota
	TokenEOF
	TokenWhitespace
	TokenIdentifier

	TokenComment
	TokenDocComment

	TokenRune
	TokenString
	TokenRawString
	TokenInteger
	TokenFloat
	TokenLifetime

	TokenIntegerSup
	TokenFloatSup

	TokenPi
	TokenEuler
	TokenPhi
	TokenTau
	TokenCatalan
	TokenEulerGamma
	TokenInf
	TokenNan

	// keywordKindBase marks the start of the 52 logical keyword kinds
	// declared in keywords_table.go. Nothing below it is a keyword; nothing
	// from it through keywordKindBase+51 is anything else.
	keywordKindBase
)

// The keyword block occupies [keywordKindBase, keywordKindBase+52). Punctuation
// starts at a fixed offset past the largest plausible keyword count so that
// regenerating keywords_table.go from a larger upstream table never collides
// with punctuation values.
const punctuationKindBase TokenKind = keywordKindBase + 128

const (
	TokenDefineOp TokenKind = punctuationKindBase + iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenCaret
	TokenBang
	TokenAmpersand
	TokenPipe
	TokenDoubleAmpersand
	TokenDoublePipe
	TokenShl
	TokenShr
	TokenPlusEq
	TokenMinusEq
	TokenStarEq
	TokenSlashEq
	TokenPercentEq
	TokenCaretEq
	TokenAmpersandEq
	TokenPipeEq
	TokenShlEq
	TokenShrEq
	TokenEq
	TokenEqEq
	TokenNe
	TokenGt
	TokenLt
	TokenGe
	TokenLe
	TokenAt
	TokenUnderscore
	TokenDot
	TokenDotDot
	TokenDotDotEq
	TokenComma
	TokenSemicolon
	TokenColon
	TokenPathSep
	TokenRArrow
	TokenFatArrow
	TokenHash
	TokenDollar
	TokenQMark
	TokenTilde

	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLParenSup
	TokenRParenSup

	TokenLArrow
	TokenDoubleStar
)

func (k TokenKind) String() string {
	if name := k.keywordName(); name != "" {
		return name
	}
	switch k {
	case TokenError:
		return "Error"
	case TokenEOF:
		return "EOF"
	case TokenWhitespace:
		return "Whitespace"
	case TokenIdentifier:
		return "Identifier"
	case TokenComment:
		return "Comment"
	case TokenDocComment:
		return "DocComment"
	case TokenRune:
		return "Rune"
	case TokenString:
		return "String"
	case TokenRawString:
		return "RawString"
	case TokenInteger:
		return "Integer"
	case TokenFloat:
		return "Float"
	case TokenLifetime:
		return "Lifetime"
	case TokenIntegerSup:
		return "IntegerSup"
	case TokenFloatSup:
		return "FloatSup"
	case TokenPi:
		return "Pi"
	case TokenEuler:
		return "Euler"
	case TokenPhi:
		return "Phi"
	case TokenTau:
		return "Tau"
	case TokenCatalan:
		return "Catalan"
	case TokenEulerGamma:
		return "EulerGamma"
	case TokenInf:
		return "Inf"
	case TokenNan:
		return "NaN"
	case TokenDefineOp:
		return "Define"
	case TokenPlus:
		return "Plus"
	case TokenMinus:
		return "Minus"
	case TokenStar:
		return "Star"
	case TokenSlash:
		return "Slash"
	case TokenPercent:
		return "Percent"
	case TokenCaret:
		return "Caret"
	case TokenBang:
		return "Bang"
	case TokenAmpersand:
		return "Ampersand"
	case TokenPipe:
		return "Pipe"
	case TokenDoubleAmpersand:
		return "DoubleAmpersand"
	case TokenDoublePipe:
		return "DoublePipe"
	case TokenShl:
		return "Shl"
	case TokenShr:
		return "Shr"
	case TokenPlusEq:
		return "PlusEq"
	case TokenMinusEq:
		return "MinusEq"
	case TokenStarEq:
		return "StarEq"
	case TokenSlashEq:
		return "SlashEq"
	case TokenPercentEq:
		return "PercentEq"
	case TokenCaretEq:
		return "CaretEq"
	case TokenAmpersandEq:
		return "AmpersandEq"
	case TokenPipeEq:
		return "PipeEq"
	case TokenShlEq:
		return "ShlEq"
	case TokenShrEq:
		return "ShrEq"
	case TokenEq:
		return "Eq"
	case TokenEqEq:
		return "EqEq"
	case TokenNe:
		return "Ne"
	case TokenGt:
		return "Gt"
	case TokenLt:
		return "Lt"
	case TokenGe:
		return "Ge"
	case TokenLe:
		return "Le"
	case TokenAt:
		return "At"
	case TokenUnderscore:
		return "Underscore"
	case TokenDot:
		return "Dot"
	case TokenDotDot:
		return "DotDot"
	case TokenDotDotEq:
		return "DotDotEq"
	case TokenComma:
		return "Comma"
	case TokenSemicolon:
		return "Semicolon"
	case TokenColon:
		return "Colon"
	case TokenPathSep:
		return "PathSep"
	case TokenRArrow:
		return "RArrow"
	case TokenFatArrow:
		return "FatArrow"
	case TokenHash:
		return "Hash"
	case TokenDollar:
		return "Dollar"
	case TokenQMark:
		return "QMark"
	case TokenTilde:
		return "Tilde"
	case TokenLBracket:
		return "LBracket"
	case TokenRBracket:
		return "RBracket"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenLBrace:
		return "LBrace"
	case TokenRBrace:
		return "RBrace"
	case TokenLParenSup:
		return "LParenSup"
	case TokenRParenSup:
		return "RParenSup"
	case TokenLArrow:
		return "LArrow"
	case TokenDoubleStar:
		return "DoubleStar"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint16(k))
	}
}

// IsKeyword reports whether k is one of the 52 logical keyword kinds,
// regardless of which language's spelling produced it.
func (k TokenKind) IsKeyword() bool {
	return k >= keywordKindBase && k < punctuationKindBase
}

// IsTrivia reports whether k should be attached to a token as leading/trailing
// trivia rather than participating directly in parsing (spec.md §4.2).
func (k TokenKind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenComment, TokenDocComment:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether k lexes a constant value.
func (k TokenKind) IsLiteral() bool {
	switch k {
	case TokenRune, TokenString, TokenRawString, TokenInteger, TokenFloat,
		TokenLifetime, TokenIntegerSup, TokenFloatSup:
		return true
	default:
		return false
	}
}

// IsMathConstant reports whether k names one of the built-in mathematical
// constants (spec.md §4.4).
func (k TokenKind) IsMathConstant() bool {
	switch k {
	case TokenPi, TokenEuler, TokenPhi, TokenTau, TokenCatalan, TokenEulerGamma, TokenInf, TokenNan:
		return true
	default:
		return false
	}
}

// TokenFlags carry metadata about the token's provenance or recovery state.
type TokenFlags uint8

const (
	TokenFlagMalformed TokenFlags = 1 << iota
	TokenFlagSynthesized
	TokenFlagRecovered
)

// Has reports whether all bits in mask are set.
func (f TokenFlags) Has(mask TokenFlags) bool {
	return f&mask == mask
}

// Token is one element of the flat lossless token stream: its kind, its
// source span, and recovery flags. Whitespace and comments are ordinary
// tokens (TokenWhitespace, TokenComment, TokenDocComment) interleaved with
// significant tokens at the position they occur in source, not attached to
// another token (spec.md §3: "sequence<Token>").
type Token struct {
	Kind  TokenKind
	Span  text.Span
	Flags TokenFlags
}

// Bytes returns the token's source bytes, or nil if its span is invalid for src.
func (t Token) Bytes(src []byte) []byte {
	return bytesForSpan(src, t.Span)
}

func bytesForSpan(src []byte, sp text.Span) []byte {
	if !sp.IsValid() {
		return nil
	}
	if sp.End > text.ByteOffset(len(src)) {
		return nil
	}
	return src[sp.Start:sp.End]
}
