package syntaxkind

import (
	"testing"

	"github.com/leafc-lang/leafc/internal/lexer"
)

func TestFromTokenRoundTrips(t *testing.T) {
	t.Parallel()

	for _, tk := range []lexer.TokenKind{lexer.TokenIdentifier, lexer.KwFn, lexer.TokenLBrace} {
		k := FromToken(tk)
		if !k.IsToken() {
			t.Fatalf("FromToken(%v).IsToken() = false", tk)
		}
		if got := k.AsToken(); got != tk {
			t.Fatalf("AsToken() = %v, want %v", got, tk)
		}
	}
}

func TestNodeKindsAreNotTokens(t *testing.T) {
	t.Parallel()

	if SourceFile.IsToken() {
		t.Fatal("SourceFile.IsToken() = true")
	}
	if got, want := SourceFile.String(), "SOURCE_FILE"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
