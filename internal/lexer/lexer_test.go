package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leafc-lang/leafc/internal/text"
)

func TestTokenBytesUsesRawSpan(t *testing.T) {
	t.Parallel()

	src := []byte("  abc")
	tok := Token{Kind: TokenIdentifier, Span: text.Span{Start: 2, End: 5}}

	if got := string(tok.Bytes(src)); got != "abc" {
		t.Fatalf("Token.Bytes() = %q, want %q", got, "abc")
	}
}

func TestLexGoldenRepresentativeValidInput(t *testing.T) {
	t.Parallel()

	src := []byte(`/// doc
fn main() -> i32 {
  let x: i32 = 0x2A;
  return x + 1;
}
`)

	res := LosslessLex(src)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics)
	}

	got := renderTokens(src, res.Tokens)
	want := strings.TrimSpace(`
DocComment("/// doc")
Whitespace("\n")
KwFn("fn")
Whitespace(" ")
Identifier("main")
LParen("(")
RParen(")")
Whitespace(" ")
RArrow("->")
Whitespace(" ")
Identifier("i32")
Whitespace(" ")
LBrace("{")
Whitespace("\n  ")
KwLet("let")
Whitespace(" ")
Identifier("x")
Colon(":")
Whitespace(" ")
Identifier("i32")
Whitespace(" ")
Eq("=")
Whitespace(" ")
Integer("0x2A")
Semicolon(";")
Whitespace("\n  ")
KwReturn("return")
Whitespace(" ")
Identifier("x")
Whitespace(" ")
Plus("+")
Whitespace(" ")
Integer("1")
Semicolon(";")
Whitespace("\n")
RBrace("}")
Whitespace("\n")
EOF("")
`)
	if got != want {
		t.Fatalf("golden mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestLexMultilingualKeywordsAllResolveToTheSameKind(t *testing.T) {
	t.Parallel()

	spellings := []string{"fn", "fonction", "funktion", "関数", "函数", "함수"}
	for _, sp := range spellings {
		res := LosslessLex([]byte(sp))
		if len(res.Tokens) < 1 || res.Tokens[0].Kind != KwFn {
			t.Fatalf("%q: got kind %v, want KwFn", sp, res.Tokens[0].Kind)
		}
	}
}

func TestLexBooleanLiteralsResolveToKeywords(t *testing.T) {
	t.Parallel()

	tests := map[string]TokenKind{
		"true":  KwTrue,
		"false": KwFalse,
		"真実":    KwTrue,
		"거짓":    KwFalse,
	}
	for src, want := range tests {
		res := LosslessLex([]byte(src))
		if len(res.Tokens) < 1 || res.Tokens[0].Kind != want {
			t.Fatalf("%q: got kind %v, want %v", src, res.Tokens[0].Kind, want)
		}
	}
}

func TestLexSuperscriptAndMathConstantLiterals(t *testing.T) {
	t.Parallel()

	tests := map[string]TokenKind{
		"²¹":     TokenIntegerSup,
		"²¹·⁵":   TokenFloatSup,
		"pi":     TokenPi,
		"π":      TokenPi,
		"euler":  TokenEuler,
		"tau":    TokenTau,
		"K":      TokenCatalan,
		"inf":    TokenInf,
		"nan":    TokenNan,
		"-inf32": TokenInf,
	}

	for src, want := range tests {
		res := LosslessLex([]byte(src))
		if res.Tokens[0].Kind != want {
			t.Fatalf("%q: got kind %v, want %v", src, res.Tokens[0].Kind, want)
		}
	}
}

func TestLexMalformedInputsEmitErrorTokensAndDiagnostics(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		src          []byte
		wantDiagCode DiagnosticCode
	}{
		"unterminated string": {
			src:          []byte(`"abc`),
			wantDiagCode: DiagnosticUnterminatedString,
		},
		"invalid byte": {
			src:          []byte{0xff},
			wantDiagCode: DiagnosticInvalidUTF8,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := LosslessLex(tc.src)
			if len(res.Diagnostics) == 0 {
				t.Fatalf("expected diagnostics for %q", tc.src)
			}
			if res.Diagnostics[0].Code != tc.wantDiagCode {
				t.Fatalf("diagnostic code = %s, want %s", res.Diagnostics[0].Code, tc.wantDiagCode)
			}
			if len(res.Tokens) == 0 || res.Tokens[0].Kind != TokenError {
				t.Fatalf("expected first token to be TokenError, got %+v", res.Tokens)
			}
			if !res.Tokens[0].Flags.Has(TokenFlagMalformed) {
				t.Fatalf("expected malformed flag on error token, got %v", res.Tokens[0].Flags)
			}
			if got := res.Tokens[len(res.Tokens)-1].Kind; got != TokenEOF {
				t.Fatalf("expected EOF token at end, got %s", got)
			}
		})
	}
}

func TestLexLosslessRoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte("fn f(x: i32) -> i32 { x }\n// trailing\n")
	res := LosslessLex(src)

	var rebuilt strings.Builder
	for _, tok := range res.Tokens {
		rebuilt.Write(tok.Bytes(src))
	}
	if rebuilt.String() != string(src) {
		t.Fatalf("round trip mismatch\ngot:  %q\nwant: %q", rebuilt.String(), string(src))
	}
}

func TestLossyLexDropsTrivia(t *testing.T) {
	t.Parallel()

	toks, diags := LossyLex([]byte("fn /* unused */ f() {}"))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	for _, tok := range toks {
		if tok.Kind.IsTrivia() {
			t.Fatalf("expected LossyLex to drop trivia, got %+v", tok)
		}
	}
}

func TestLexNoPanicsOnMalformedCorpusSamples(t *testing.T) {
	t.Parallel()

	inputs := [][]byte{
		[]byte(`"`),
		[]byte(`'`),
		[]byte(`0x`),
		{0xff, '{', 0xfe},
		[]byte("fn f() { \"a\n}\n"),
		[]byte("r#unterminated"),
	}

	for _, src := range inputs {
		t.Run(fmt.Sprintf("%q", src), func(t *testing.T) {
			t.Parallel()
			_ = LosslessLex(src)
		})
	}
}

func renderTokens(src []byte, tokens []Token) string {
	lines := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lines = append(lines, fmt.Sprintf("%s(%q)", tok.Kind, tok.Bytes(src)))
	}
	return strings.Join(lines, "\n")
}
