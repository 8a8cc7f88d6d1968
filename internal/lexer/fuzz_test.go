package lexer

import "testing"

func FuzzLosslessLex(f *testing.F) {
	addCommonSeeds(f)

	f.Fuzz(func(t *testing.T, src []byte) {
		t.Helper()

		// Keep the target responsive; fuzzing should explore shape, not spend cycles on huge blobs.
		if len(src) > 512*1024 {
			t.Skip()
		}

		res := LosslessLex(src)
		if len(res.Tokens) == 0 {
			t.Fatal("lexer returned no tokens")
		}
		last := res.Tokens[len(res.Tokens)-1]
		if last.Kind != TokenEOF {
			t.Fatalf("last token kind = %v, want EOF", last.Kind)
		}

		prevEnd := -1
		var rebuilt []byte
		for i, tok := range res.Tokens {
			if err := tok.Span.Validate(); err != nil {
				t.Fatalf("token[%d] invalid span %s: %v", i, tok.Span, err)
			}
			if int(tok.Span.End) > len(src) {
				t.Fatalf("token[%d] span %s out of bounds (len=%d)", i, tok.Span, len(src))
			}
			if prevEnd > int(tok.Span.Start) {
				t.Fatalf("token spans out of order: prevEnd=%d curStart=%d", prevEnd, tok.Span.Start)
			}
			prevEnd = int(tok.Span.End)

			rebuilt = append(rebuilt, tok.Bytes(src)...)
		}
		if string(rebuilt) != string(src) {
			t.Fatalf("lossless round trip failed: got %q, want %q", rebuilt, src)
		}
	})
}

func addCommonSeeds(f *testing.F) {
	f.Helper()

	for _, s := range [][]byte{
		nil,
		[]byte(""),
		[]byte("fn main() -> i32 {\n  return 0\n}\n"),
		[]byte("let x := 0x2A\nlet y: f64 = 1.5e+10\n"),
		[]byte("'unterminated\n"),      // malformed rune/lifetime
		[]byte(`"unterminated`),        // malformed string
		{0xff, 0xfe, 0xfd},             // invalid UTF-8 bytes
		[]byte("r#raw string#"),        // raw string
		[]byte("2¹²·⁵ pi euler golden"), // superscript + math constants
		[]byte("関数 関数的 функция"),       // multilingual keywords + plain identifier
	} {
		f.Add(s)
	}
}
