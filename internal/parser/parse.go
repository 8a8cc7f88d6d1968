package parser

import (
	"github.com/leafc-lang/leafc/internal/codemap"
	"github.com/leafc-lang/leafc/internal/diagnostics"
	"github.com/leafc-lang/leafc/internal/greentree"
	"github.com/leafc-lang/leafc/internal/lexer"
)

// Parse lexes and parses src as a complete source file, producing the
// green tree root and the diagnostics raised along the way (both lexer
// diagnostics, translated into the shared taxonomy, and parser ones).
// The result is always a complete tree: malformed input degrades the
// shape of individual nodes, never the ability to produce one at all.
func Parse(src []byte, file codemap.FileID) (*greentree.GreenNode, *diagnostics.Manager) {
	lexed := lexer.LosslessLex(src)
	p := New(src, lexed.Tokens, file)
	for _, d := range lexed.Diagnostics {
		p.diags.AddError(lexDiagnosticKind(d.Code), d.Message, codemap.Location{File: file, Span: d.Span})
	}
	ParseSourceFile(p)
	return p.Finish(), p.Diagnostics()
}

func lexDiagnosticKind(code lexer.DiagnosticCode) diagnostics.Kind {
	switch code {
	case lexer.DiagnosticUnterminatedRune, lexer.DiagnosticUnterminatedString, lexer.DiagnosticUnterminatedRaw:
		return diagnostics.UnterminatedLiteral
	default:
		return diagnostics.UnknownToken
	}
}
