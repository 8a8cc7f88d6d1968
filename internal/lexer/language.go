package lexer

import (
	"unicode"

	"github.com/leafc-lang/leafc/internal/langkind"
)

// scriptOf classifies a keyword spelling by its dominant script, coarsely
// enough to check it against a LanguageKind. The keyword table is not
// annotated with a language per spelling, only a logical TokenKind shared
// across every language's rendering, so this reconstructs the check from
// the spelling's script rather than a fixed table (see DESIGN.md).
func scriptOf(s string) string {
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			return "cyrillic"
		case unicode.Is(unicode.Han, r):
			return "han"
		case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
			return "kana"
		case unicode.Is(unicode.Hangul, r):
			return "hangul"
		}
	}
	return "latin"
}

// languageScripts lists the scripts a LanguageKind's keyword spellings use.
// Japanese keywords may mix kana and han; both count.
func languageScripts(k langkind.LanguageKind) []string {
	switch k {
	case langkind.Russian:
		return []string{"cyrillic"}
	case langkind.Chinese:
		return []string{"han"}
	case langkind.Japanese:
		return []string{"han", "kana"}
	case langkind.Korean:
		return []string{"hangul"}
	default:
		return []string{"latin"}
	}
}

// IsSpellingForLanguage reports whether spelling is both a recognized
// keyword spelling and script-compatible with lang (spec.md §4.3's
// "language checker": a pure function from (Token, LanguageKind) to bool).
// It accepts, rather than precisely validating, any Latin-script spelling
// for every Latin-script language: the keyword table does not retain which
// of English/Spanish/French/... contributed a given Latin spelling, so
// distinguishing them would require re-deriving translation data this
// package does not have.
func IsSpellingForLanguage(spelling string, lang langkind.LanguageKind) bool {
	kind, ok := keywordSpellings[spelling]
	if !ok {
		return false
	}
	_ = kind
	want := languageScripts(lang)
	got := scriptOf(spelling)
	for _, w := range want {
		if w == got {
			return true
		}
	}
	return false
}

// CheckToken reports whether tok's spelling (as it appears in src) is valid
// for lang. Non-keyword tokens are always valid for every language.
func CheckToken(tok Token, src []byte, lang langkind.LanguageKind) bool {
	if !tok.Kind.IsKeyword() {
		return true
	}
	return IsSpellingForLanguage(string(tok.Bytes(src)), lang)
}
