package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/leafc-lang/leafc/internal/text"
)

// DiagnosticCode identifies lexer diagnostic categories.
type DiagnosticCode string

const (
	DiagnosticUnknownToken       DiagnosticCode = "LEX_UNKNOWN_TOKEN"
	DiagnosticUnterminatedRune   DiagnosticCode = "LEX_UNTERMINATED_RUNE"
	DiagnosticUnterminatedString DiagnosticCode = "LEX_UNTERMINATED_STRING"
	DiagnosticUnterminatedRaw    DiagnosticCode = "LEX_UNTERMINATED_RAW_STRING"
	DiagnosticInvalidUTF8        DiagnosticCode = "LEX_INVALID_UTF8"
)

// Diagnostic is a lexer-level issue with a source location. parser.Parse
// translates these into internal/diagnostics error diagnostics.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
	Span    text.Span
}

// Result is the output of lexing source bytes.
type Result struct {
	Tokens      []Token
	Diagnostics []Diagnostic
}

// LosslessLex tokenizes src into a complete, order-preserving flat token
// stream: every byte of src belongs to some token's Span, whitespace and
// comments included as ordinary TokenWhitespace/TokenComment/TokenDocComment
// entries at the position they occur, so concatenating every token's bytes
// back together reproduces src exactly (spec.md §3, §8 invariants 1/4). The
// lexer never panics and never refuses to produce a token stream; malformed
// input yields TokenError tokens plus Diagnostics, not an error return.
func LosslessLex(src []byte) Result {
	s := scanner{src: src}
	s.run()
	return Result{Tokens: s.tokens, Diagnostics: s.diagnostics}
}

// LossyLex runs LosslessLex and filters out trivia tokens, returning only
// the significant tokens (and EOF). Callers that don't need exact source
// reconstruction — parsing, semantic analysis — use this projection.
func LossyLex(src []byte) ([]Token, []Diagnostic) {
	res := LosslessLex(src)
	out := make([]Token, 0, len(res.Tokens))
	for _, t := range res.Tokens {
		if t.Kind.IsTrivia() {
			continue
		}
		out = append(out, t)
	}
	return out, res.Diagnostics
}

type scanner struct {
	src         []byte
	i           int
	tokens      []Token
	diagnostics []Diagnostic
}

func (s *scanner) run() {
	for {
		s.scanLeadingTrivia()

		if s.eof() {
			s.tokens = append(s.tokens, Token{
				Kind: TokenEOF,
				Span: span(len(s.src), len(s.src)),
			})
			return
		}

		s.tokens = append(s.tokens, s.scanToken())
	}
}

// scanLeadingTrivia appends a TokenWhitespace/TokenComment/TokenDocComment
// entry for each run of whitespace or comment text at the cursor directly
// to s.tokens, in source order, ahead of whatever significant token or EOF
// follows.
func (s *scanner) scanLeadingTrivia() {
	for !s.eof() {
		start := s.i
		b := s.src[s.i]
		switch {
		case b == ' ' || b == '\t' || b == '\f' || b == '\n' || b == '\r':
			for !s.eof() && isWS(s.src[s.i]) {
				s.i++
			}
			s.tokens = append(s.tokens, Token{Kind: TokenWhitespace, Span: span(start, s.i)})
		case b == '/' && s.peekByte(1) == '/':
			doc := s.peekByte(2) == '/'
			s.i += 2
			for !s.eof() && s.src[s.i] != '\n' {
				s.i++
			}
			kind := TokenComment
			if doc {
				kind = TokenDocComment
			}
			s.tokens = append(s.tokens, Token{Kind: kind, Span: span(start, s.i)})
		default:
			return
		}
	}
}

func (s *scanner) scanToken() Token {
	start := s.i
	r, size := utf8.DecodeRune(s.src[s.i:])
	if r == utf8.RuneError && size <= 1 {
		s.i++
		return *s.errorToken(start, s.i, DiagnosticInvalidUTF8, "invalid UTF-8 byte")
	}

	// A sign directly before an infinity or NaN spelling is part of the literal.
	if r == '+' || r == '-' {
		rest := string(s.src[start:])
		for _, kind := range []TokenKind{TokenInf, TokenNan} {
			re := reInf
			if kind == TokenNan {
				re = reNan
			}
			if m := matchPrefix(re, rest); m != "" && (start+len(m) == len(s.src) || !isXIDContinue(s.peekRuneAt(len(m)))) {
				s.i = start + len(m)
				return Token{Kind: kind, Span: span(start, s.i)}
			}
		}
	}

	switch {
	case r == '\'':
		return s.scanRuneOrLifetime(start)
	case r == '"' || (r == 'b' && s.peekByte(1) == '"'):
		return s.scanString(start)
	case r == 'b' && s.peekByte(1) == '\'':
		return s.scanRuneOrLifetime(start)
	case r == 'r' && s.peekByte(1) == '#':
		if m := matchPrefix(reRawString, string(s.src[s.i:])); m != "" {
			s.i += len(m)
			return Token{Kind: TokenRawString, Span: span(start, s.i)}
		}
		return s.scanIdentifier(start)
	case isSuperscriptStart(r):
		return s.scanSuperscriptNumber(start)
	case isASCIIDigit(r) || ((r == '+' || r == '-') && isASCIIDigit(s.peekRuneAt(size))):
		return s.scanNumber(start)
	case isXIDStart(r):
		return s.scanIdentifier(start)
	default:
		if tok, ok := s.scanPunctuation(start); ok {
			return tok
		}
		s.i += size
		return *s.errorToken(start, s.i, DiagnosticUnknownToken, fmt.Sprintf("unrecognized character %q", r))
	}
}

func (s *scanner) scanNumber(start int) Token {
	rest := string(s.src[start:])

	floatMatch := longestMatch(floatPatterns, rest)
	intMatch := longestMatch(intPatterns, rest)

	if len(floatMatch) >= len(intMatch) && floatMatch != "" {
		s.i += len(floatMatch)
		return Token{Kind: TokenFloat, Span: span(start, s.i)}
	}
	if intMatch != "" {
		s.i += len(intMatch)
		return Token{Kind: TokenInteger, Span: span(start, s.i)}
	}

	// A lone sign with no digits after it: not a numeric literal, fall back
	// to punctuation.
	if tok, ok := s.scanPunctuation(start); ok {
		return tok
	}
	s.i++
	return *s.errorToken(start, s.i, DiagnosticUnknownToken, "malformed numeric literal")
}

func (s *scanner) scanSuperscriptNumber(start int) Token {
	rest := string(s.src[start:])

	floatMatch := longestMatch(supFloatPatterns, rest)
	intMatch := longestMatch(supIntPatterns, rest)

	if len(floatMatch) >= len(intMatch) && floatMatch != "" {
		s.i += len(floatMatch)
		return Token{Kind: TokenFloatSup, Span: span(start, s.i)}
	}
	if intMatch != "" {
		s.i += len(intMatch)
		return Token{Kind: TokenIntegerSup, Span: span(start, s.i)}
	}

	_, size := utf8.DecodeRune(s.src[s.i:])
	s.i += size
	return *s.errorToken(start, s.i, DiagnosticUnknownToken, "malformed superscript literal")
}

func (s *scanner) scanIdentifier(start int) Token {
	_, size := utf8.DecodeRune(s.src[s.i:])
	s.i += size
	for !s.eof() {
		r, size := utf8.DecodeRune(s.src[s.i:])
		if !isXIDContinue(r) {
			break
		}
		s.i += size
	}

	word := string(s.src[start:s.i])

	// Infinity/NaN take priority over a plain identifier when the spelling
	// matches exactly (spec.md §4.4); they're checked here rather than
	// before identifier scanning because their regex alternates with
	// ordinary words ("inf", "nan") that would otherwise greedily consume
	// more XID_Continue characters than the constant spelling allows.
	if m := matchPrefix(reInf, string(s.src[start:])); m != "" && len(m) >= len(word) {
		s.i = start + len(m)
		return Token{Kind: TokenInf, Span: span(start, s.i)}
	}
	if m := matchPrefix(reNan, string(s.src[start:])); m != "" && len(m) >= len(word) {
		s.i = start + len(m)
		return Token{Kind: TokenNan, Span: span(start, s.i)}
	}

	if kind, ok := mathConstantSpellings[word]; ok {
		return Token{Kind: kind, Span: span(start, s.i)}
	}
	if kind, ok := keywordSpellings[word]; ok {
		return Token{Kind: kind, Span: span(start, s.i)}
	}
	return Token{Kind: TokenIdentifier, Span: span(start, s.i)}
}

func (s *scanner) scanRuneOrLifetime(start int) Token {
	i := s.i
	if s.src[i] == 'b' {
		i++ // byte-literal prefix
	}
	// i now indexes the opening quote.
	j := i + 1
	closed := false
	for j < len(s.src) {
		switch s.src[j] {
		case '\'':
			closed = true
		case '\n':
		default:
			j++
			continue
		}
		break
	}
	if closed {
		s.i = j + 1
		return Token{Kind: TokenRune, Span: span(start, s.i)}
	}

	// No closing quote on this line: a lifetime, e.g. 'a.
	s.i = i + 1
	if s.eof() {
		return *s.errorToken(start, s.i, DiagnosticUnterminatedRune, "unterminated rune literal")
	}
	r, size := utf8.DecodeRune(s.src[s.i:])
	if !isXIDStart(r) {
		return *s.errorToken(start, s.i, DiagnosticUnterminatedRune, "unterminated rune literal")
	}
	s.i += size
	for !s.eof() {
		r, size := utf8.DecodeRune(s.src[s.i:])
		if !isXIDContinue(r) {
			break
		}
		s.i += size
	}
	return Token{Kind: TokenLifetime, Span: span(start, s.i)}
}

func (s *scanner) scanString(start int) Token {
	i := s.i
	if s.src[i] == 'b' {
		i++
	}
	i++ // opening quote
	for i < len(s.src) {
		switch s.src[i] {
		case '"':
			s.i = i + 1
			return Token{Kind: TokenString, Span: span(start, s.i)}
		case '\\':
			i++
			if i < len(s.src) {
				i++
			}
		case '\n':
			s.i = i
			return *s.errorToken(start, s.i, DiagnosticUnterminatedString, "unterminated string literal")
		default:
			i++
		}
	}
	s.i = i
	return *s.errorToken(start, s.i, DiagnosticUnterminatedString, "unterminated string literal")
}

// punctuationTable is tried longest-prefix-first so e.g. "<<=" is not
// mistakenly split into "<<" and "=".
var punctuationTable = []struct {
	lit  string
	kind TokenKind
}{
	{":=", TokenDefineOp},
	{"<<=", TokenShlEq},
	{">>=", TokenShrEq},
	{"..=", TokenDotDotEq},
	{"::", TokenPathSep},
	{"->", TokenRArrow},
	{"=>", TokenFatArrow},
	{"==", TokenEqEq},
	{"!=", TokenNe},
	{">=", TokenGe},
	{"<=", TokenLe},
	{"&&", TokenDoubleAmpersand},
	{"||", TokenDoublePipe},
	{"<<", TokenShl},
	{">>", TokenShr},
	{"**", TokenDoubleStar},
	{"+=", TokenPlusEq},
	{"-=", TokenMinusEq},
	{"*=", TokenStarEq},
	{"/=", TokenSlashEq},
	{"%=", TokenPercentEq},
	{"^=", TokenCaretEq},
	{"&=", TokenAmpersandEq},
	{"|=", TokenPipeEq},
	{"..", TokenDotDot},
	{"<-", TokenLArrow},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenStar},
	{"/", TokenSlash},
	{"%", TokenPercent},
	{"^", TokenCaret},
	{"!", TokenBang},
	{"&", TokenAmpersand},
	{"|", TokenPipe},
	{"=", TokenEq},
	{">", TokenGt},
	{"<", TokenLt},
	{"@", TokenAt},
	{"_", TokenUnderscore},
	{".", TokenDot},
	{",", TokenComma},
	{";", TokenSemicolon},
	{":", TokenColon},
	{"#", TokenHash},
	{"$", TokenDollar},
	{"?", TokenQMark},
	{"~", TokenTilde},
	{"[", TokenLBracket},
	{"]", TokenRBracket},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"{", TokenLBrace},
	{"}", TokenRBrace},
	{"⁽", TokenLParenSup},
	{"⁾", TokenRParenSup},
}

func (s *scanner) scanPunctuation(start int) (Token, bool) {
	rest := s.src[start:]
	for _, p := range punctuationTable {
		if len(rest) >= len(p.lit) && string(rest[:len(p.lit)]) == p.lit {
			s.i = start + len(p.lit)
			return Token{Kind: p.kind, Span: span(start, s.i)}, true
		}
	}
	return Token{}, false
}

func (s *scanner) errorToken(start, end int, code DiagnosticCode, msg string) *Token {
	sp := span(start, end)
	s.diagnostics = append(s.diagnostics, Diagnostic{Code: code, Message: msg, Span: sp})
	return &Token{Kind: TokenError, Span: sp, Flags: TokenFlagMalformed}
}

func (s *scanner) eof() bool { return s.i >= len(s.src) }

func (s *scanner) peekByte(delta int) byte {
	j := s.i + delta
	if j < 0 || j >= len(s.src) {
		return 0
	}
	return s.src[j]
}

func (s *scanner) peekRuneAt(delta int) rune {
	j := s.i + delta
	if j < 0 || j >= len(s.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(s.src[j:])
	return r
}

func span(start, end int) text.Span {
	return text.Span{Start: text.ByteOffset(start), End: text.ByteOffset(end)}
}

func isWS(b byte) bool {
	switch b {
	case ' ', '\t', '\f', '\n', '\r':
		return true
	default:
		return false
	}
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSuperscriptStart(r rune) bool {
	switch r {
	case '⁺', '⁻', '⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹', 'ᵒ':
		return true
	default:
		return false
	}
}
