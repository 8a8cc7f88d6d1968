// Package langkind enumerates the sixteen human languages the multilingual
// lexer accepts keyword spellings from, and resolves a default UI language
// from the host locale.
package langkind

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// LanguageKind identifies one of the sixteen supported natural languages.
type LanguageKind uint8

// LanguageKind values, in the order spec.md §4.3 lists their keyword
// spelling columns.
const (
	English LanguageKind = iota
	Spanish
	French
	German
	Portuguese
	Italian
	Dutch
	Swedish
	Danish
	Norwegian
	Finnish
	Russian
	Japanese
	Chinese
	Korean
	Swahili
)

// All is every supported LanguageKind, in declaration order.
var All = []LanguageKind{
	English, Spanish, French, German, Portuguese, Italian, Dutch, Swedish,
	Danish, Norwegian, Finnish, Russian, Japanese, Chinese, Korean, Swahili,
}

func (k LanguageKind) String() string {
	switch k {
	case English:
		return "English"
	case Spanish:
		return "Spanish"
	case French:
		return "French"
	case German:
		return "German"
	case Portuguese:
		return "Portuguese"
	case Italian:
		return "Italian"
	case Dutch:
		return "Dutch"
	case Swedish:
		return "Swedish"
	case Danish:
		return "Danish"
	case Norwegian:
		return "Norwegian"
	case Finnish:
		return "Finnish"
	case Russian:
		return "Russian"
	case Japanese:
		return "Japanese"
	case Chinese:
		return "Chinese"
	case Korean:
		return "Korean"
	case Swahili:
		return "Swahili"
	default:
		return fmt.Sprintf("LanguageKind(%d)", uint8(k))
	}
}

// bcp47 maps each LanguageKind to the BCP-47 tag golang.org/x/text/language
// uses to match against a host locale.
var bcp47 = map[LanguageKind]language.Tag{
	English:    language.English,
	Spanish:    language.Spanish,
	French:     language.French,
	German:     language.German,
	Portuguese: language.Portuguese,
	Italian:    language.Italian,
	Dutch:      language.Dutch,
	Swedish:    language.Swedish,
	Danish:     language.Danish,
	Norwegian:  language.Norwegian,
	Finnish:    language.Finnish,
	Russian:    language.Russian,
	Japanese:   language.Japanese,
	Chinese:    language.Chinese,
	Korean:     language.Korean,
	Swahili:    language.Swahili,
}

var matcher = buildMatcher()

func buildMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(All))
	for _, k := range All {
		tags = append(tags, tagFor(k))
	}
	return language.NewMatcher(tags)
}

func tagFor(k LanguageKind) language.Tag {
	if t, ok := bcp47[k]; ok {
		return t
	}
	return language.Und
}

// DefaultFromLocale resolves the UI language from LANG/LC_ALL-style locale
// strings (spec.md §6: "UI language defaults to the value derived from the
// host locale; if unrecognized, defaults to English"). An empty locale also
// defaults to English.
func DefaultFromLocale(locale string) LanguageKind {
	locale = normalizeLocale(locale)
	if locale == "" {
		return English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return All[idx]
}

// DefaultFromEnv resolves the UI language from the process environment,
// preferring LC_ALL over LANG per POSIX locale precedence.
func DefaultFromEnv() LanguageKind {
	if v := os.Getenv("LC_ALL"); v != "" {
		return DefaultFromLocale(v)
	}
	return DefaultFromLocale(os.Getenv("LANG"))
}

// normalizeLocale strips POSIX encoding/modifier suffixes such as
// "fr_FR.UTF-8" -> "fr_FR", and "C"/"POSIX" -> "".
func normalizeLocale(locale string) string {
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
