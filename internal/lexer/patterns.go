package lexer

import "github.com/dlclark/regexp2"

// Numeric and superscript literals have enough variants (four bases, optional
// sign, optional type suffix) that hand-rolled scanning would just reimplement
// a regex engine badly. regexp2 lets these patterns read the same way the
// grammar that defines them does.
var (
	reIntDecimal = mustCompile(`^[+-]?[0-9][0-9_]*(u8|i8|u16|i16|u32|i32|u64|i64|u128|i128|usize|isize)?`)
	reIntBinary  = mustCompile(`^[+-]?(0b|0B)[0-1][0-1_]*(u8|i8|u16|i16|u32|i32|u64|i64|u128|i128|usize|isize)?`)
	reIntOctal   = mustCompile(`^[+-]?(0o|0O)[0-7][0-7_]*(u8|i8|u16|i16|u32|i32|u64|i64|u128|i128|usize|isize)?`)
	reIntHex     = mustCompile(`^[+-]?(0x|0X)[0-9a-fA-F][0-9a-fA-F_]*(u8|i8|u16|i16|u32|i32|u64|i64|u128|i128|usize|isize)?`)

	reFloatDecimal = mustCompile(`^[+-]?([0-9][0-9_]*)?\.([0-9][0-9_]*)?([eE][+-]?[0-9][0-9_]*)?(f32|f64)?`)
	reFloatHex     = mustCompile(`^[+-]?(0x|0X)[0-9a-fA-F][0-9a-fA-F_]*\.[0-9a-fA-F][0-9a-fA-F_]*([pP][+-]?[0-9][0-9_]?)?(f32|f64)?`)
	reFloatBinary  = mustCompile(`^[+-]?0b[0-1][0-1_]*\.[0-1][0-1_]*([pP][+-]?[0-9][0-9_]?)?(f32|f64)?`)
	reFloatOctal   = mustCompile(`^[+-]?0o[0-7][0-7_]*\.[0-7][0-7_]*([pP][+-]?[0-9][0-9_]?)?(f32|f64)?`)

	reSupIntDecimal = mustCompile(`^[⁺⁻]?[⁰¹²³⁴⁵⁶⁷⁸⁹][⁰¹²³⁴⁵⁶⁷⁸⁹_]*`)
	reSupIntBinary  = mustCompile(`^[⁺⁻]?⁰ᵇ[⁰¹][⁰¹_]*`)
	reSupIntOctal   = mustCompile(`^[⁺⁻]?ᵒ⁰[⁰¹²³⁴⁵⁶⁷][⁰¹²³⁴⁵⁶⁷_]*`)
	reSupIntHex     = mustCompile(`^[⁺⁻]?⁰ˣ[⁰¹²³⁴⁵⁶⁷⁸⁹ᴬᴮᶜᴰᴱᶠ][⁰¹²³⁴⁵⁶⁷⁸⁹ᴬᴮᶜᴰᴱᶠ_]*`)

	reSupFloatDecimal = mustCompile(`^[⁺⁻]?[⁰¹²³⁴⁵⁶⁷⁸⁹][⁰¹²³⁴⁵⁶⁷⁸⁹_]*·([⁰¹²³⁴⁵⁶⁷⁸⁹][⁰¹²³⁴⁵⁶⁷⁸⁹_]*)?`)
	reSupFloatBinary  = mustCompile(`^[⁺⁻]?⁰ᵇ[⁰¹][⁰¹_]*·[⁰¹][⁰¹_]*`)
	reSupFloatOctal   = mustCompile(`^[⁺⁻]?ᵒ⁰[⁰¹²³⁴⁵⁶⁷][⁰¹²³⁴⁵⁶⁷_]*·[⁰¹²³⁴⁵⁶⁷][⁰¹²³⁴⁵⁶⁷_]*`)
	reSupFloatHex     = mustCompile(`^[⁺⁻]?⁰ˣ[⁰¹²³⁴⁵⁶⁷⁸⁹ᴬᴮᶜᴰᴱᶠ][⁰¹²³⁴⁵⁶⁷⁸⁹ᴬᴮᶜᴰᴱᶠ_]*·[⁰¹²³⁴⁵⁶⁷⁸⁹ᴬᴮᶜᴰᴱᶠ][⁰¹²³⁴⁵⁶⁷⁸⁹ᴬᴮᶜᴰᴱᶠ_]*`)

	reRawString = mustCompile(`^r#[^#]*#`)

	reInf = mustCompile(`^[+-]?(inf|Inf|INF|∞)(16|32)?`)
	reNan = mustCompile(`^[+-]?(nan|NaN|NAN)(16|32)?`)
)

var intPatterns = []*regexp2.Regexp{reIntHex, reIntBinary, reIntOctal, reIntDecimal}
var floatPatterns = []*regexp2.Regexp{reFloatHex, reFloatBinary, reFloatOctal, reFloatDecimal}
var supIntPatterns = []*regexp2.Regexp{reSupIntHex, reSupIntBinary, reSupIntOctal, reSupIntDecimal}
var supFloatPatterns = []*regexp2.Regexp{reSupFloatHex, reSupFloatBinary, reSupFloatOctal, reSupFloatDecimal}

func mustCompile(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		panic("lexer: invalid pattern " + pattern + ": " + err.Error())
	}
	return re
}

// longestMatch runs every pattern against the head of s and returns the
// longest prefix matched by any of them, or "" if none match.
func longestMatch(patterns []*regexp2.Regexp, s string) string {
	best := ""
	for _, re := range patterns {
		m, err := re.FindStringMatch(s)
		if err != nil || m == nil || m.Index != 0 {
			continue
		}
		if len(m.String()) > len(best) {
			best = m.String()
		}
	}
	return best
}

func matchPrefix(re *regexp2.Regexp, s string) string {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil || m.Index != 0 {
		return ""
	}
	return m.String()
}
