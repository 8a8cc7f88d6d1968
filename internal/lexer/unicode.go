package lexer

import "unicode"

// isXIDStart approximates Unicode XID_Start. The standard library does not
// expose the XID tables directly, so letters plus the underscore (the
// grammar allows a leading underscore before an XID_Start character) stand
// in for it; Emoji_Presentation is approximated with the Symbol, Other
// category, which covers the common pictographic ranges.
func isXIDStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || isEmojiPresentation(r)
}

// isXIDContinue approximates Unicode XID_Continue: letters, digits, and
// combining marks.
func isXIDContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' || isEmojiPresentation(r)
}

func isEmojiPresentation(r rune) bool {
	return unicode.Is(unicode.So, r)
}

// mathConstantSpellings are the exact spellings of the mathematical
// constants (spec.md §4.4): ASCII words plus their mathematical-alphanumeric
// symbol forms. Unlike keywords these are not translated per language; a
// constant is recognized only by this fixed set. Since every symbol here is
// itself an XID_Start/XID_Continue letter, scanIdentifier always consumes
// the whole spelling first; the result is checked against this table before
// falling back to the keyword table and finally plain TokenIdentifier. This
// mirrors the host grammar's token-beats-regex priority: "K" alone is
// CATALAN, but "King" is an identifier because the longer identifier match
// wins.
var mathConstantSpellings = map[string]TokenKind{
	"pi": TokenPi, "π": TokenPi, "𝜋": TokenPi, "𝛑": TokenPi, "𝝅": TokenPi, "𝞹": TokenPi,
	"euler": TokenEuler, "𝑒": TokenEuler,
	"phi": TokenPhi, "golden": TokenPhi, "φ": TokenPhi, "𝜙": TokenPhi, "𝛗": TokenPhi, "𝝓": TokenPhi,
	"tau": TokenTau, "τ": TokenTau, "𝜏": TokenTau, "𝛕": TokenTau, "𝝉": TokenTau,
	"catalan": TokenCatalan, "K": TokenCatalan, "𝑘": TokenCatalan,
	"eulergamma": TokenEulerGamma, "eulermascheroni": TokenEulerGamma, "γ": TokenEulerGamma, "𝛾": TokenEulerGamma,
}
