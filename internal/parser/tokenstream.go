// Package parser implements the hand-written recursive-descent driver of
// spec.md §4.5: a TokenStream cursor, a green-tree Builder, and a
// SyntaxError accumulator, exposing peek/nth/at/bump/eat/expect/error.
package parser

import "github.com/leafc-lang/leafc/internal/lexer"

// tokenStream is a read-only cursor over the lexer's flat, lossless token
// slice, in which whitespace and comments are ordinary trivia-kinded
// entries interleaved with significant tokens (spec.md §3's single
// sequence<Token>). Lookahead (current/nth/atEOF) skips trivia
// transparently so grammar code never has to account for it; advance and
// drainTrivia are what feed skipped trivia tokens to the builder, in
// source order, at the point a significant token is actually consumed.
type tokenStream struct {
	tokens []lexer.Token
	pos    int
}

func newTokenStream(tokens []lexer.Token) *tokenStream {
	if len(tokens) == 0 {
		tokens = []lexer.Token{{Kind: lexer.TokenEOF}}
	}
	return &tokenStream{tokens: tokens}
}

// significantIndex returns the index of the kth significant (non-trivia)
// token at or after from, clamped to the stream's last token (EOF) if
// fewer than k+1 remain.
func (s *tokenStream) significantIndex(from, k int) int {
	i := from
	for i < len(s.tokens) {
		if !s.tokens[i].Kind.IsTrivia() {
			if k == 0 {
				return i
			}
			k--
		}
		i++
	}
	return len(s.tokens) - 1
}

// current returns the next significant token without advancing.
func (s *tokenStream) current() lexer.Token {
	return s.tokens[s.significantIndex(s.pos, 0)]
}

// nth returns the significant token k slots ahead of the cursor, for
// 0 <= k < 4 (spec.md §4.5's bounded lookahead), clamped the same way as
// current.
func (s *tokenStream) nth(k int) lexer.Token {
	return s.tokens[s.significantIndex(s.pos, k)]
}

// advance consumes every trivia token up to the next significant token,
// then consumes that token too, returning it along with the trivia tokens
// skipped immediately before it, in source order.
func (s *tokenStream) advance() (lexer.Token, []lexer.Token) {
	idx := s.significantIndex(s.pos, 0)
	if s.pos > idx {
		return s.tokens[idx], nil
	}
	trivia := s.tokens[s.pos:idx]
	s.pos = idx + 1
	return s.tokens[idx], trivia
}

// drainTrivia consumes and returns any trivia tokens sitting at the cursor,
// without consuming the significant token that follows them.
func (s *tokenStream) drainTrivia() []lexer.Token {
	idx := s.significantIndex(s.pos, 0)
	if s.pos > idx {
		return nil
	}
	trivia := s.tokens[s.pos:idx]
	s.pos = idx
	return trivia
}

func (s *tokenStream) atEOF() bool {
	return s.current().Kind == lexer.TokenEOF
}
