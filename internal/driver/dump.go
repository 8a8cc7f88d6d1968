package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/redtree"
)

// DumpTokens writes the lexed token stream of src, one token per line, as
// "KIND @ [start..end] lexeme" with backslashes, newlines, carriage returns
// and tabs in the lexeme escaped so a dump is always one line per token (spec.md §6's token-stream
// emit kind). Grounded on the teacher's cmd/thriftfmt dumpTokens, adapted
// from its "[i] kind=... span=... text=..." layout to the plainer format
// the front-end's emit kinds call for.
func DumpTokens(w io.Writer, src []byte, tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%s @ [%d..%d] %s\n", tok.Kind, tok.Span.Start, tok.Span.End, escapeLexeme(tok.Bytes(src)))
	}
}

// DumpTree writes a depth-indented, S-expression-like rendering of the
// syntax tree rooted at root: one line per node (`KIND@[span]`), its
// tokens printed as leaves (`KIND@[span] "text"`) indented one level
// deeper than their parent. Grounded on the teacher's cmd/thriftfmt
// dumpCST, adapted from its flat indexed-node listing (which depended on
// thriftfmt's arena-indexed tree) to a recursive walk over the red tree,
// since leafc's tree has no stable per-node integer index to print.
func DumpTree(w io.Writer, root *redtree.SyntaxNode) {
	dumpNode(w, root, 0)
}

func dumpNode(w io.Writer, n *redtree.SyntaxNode, depth int) {
	span := n.TextRange()
	fmt.Fprintf(w, "%s%s@[%d..%d]\n", indent(depth), n.Kind(), span.Start, span.End)
	for _, e := range n.ChildrenWithTokens() {
		if e.Node != nil {
			dumpNode(w, e.Node, depth+1)
			continue
		}
		if e.Token.Kind().AsToken().IsTrivia() {
			continue
		}
		tspan := e.Token.TextRange()
		fmt.Fprintf(w, "%s%s@[%d..%d] %q\n", indent(depth+1), e.Token.Kind(), tspan.Start, tspan.End, e.Token.Text())
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func escapeLexeme(b []byte) string {
	s := string(b)
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
