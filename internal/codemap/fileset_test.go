package codemap

import (
	"testing"

	"github.com/leafc-lang/leafc/internal/intern"
	"github.com/leafc-lang/leafc/internal/text"
)

func newTestFileSet() *FileSet {
	return NewFileSet("/work", intern.NewStringInterner(), intern.NewFileInterner())
}

func TestFileSetAddFileAndResolve(t *testing.T) {
	t.Parallel()

	fs := newTestFileSet()
	src := []byte("fn main() {}\nfn second() {}\n")
	id := fs.AddFile("main.leaf", src)

	if id == NoFile {
		t.Fatal("AddFile returned the reserved sentinel id")
	}
	if got := fs.Cursor(); got != id {
		t.Fatalf("Cursor() = %v, want %v", got, id)
	}

	f := fs.File(id)
	if f == nil {
		t.Fatal("File(id) = nil")
	}
	starts := f.LineStarts()
	if len(starts) != 3 || starts[0] != 0 || starts[1] != 13 || starts[2] != 28 {
		t.Fatalf("LineStarts() = %v, want [0 13 28]", starts)
	}

	lc, err := fs.Resolve(id, text.ByteOffset(13))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if lc != (LineColumn{Line: 1, Column: 0}) {
		t.Fatalf("Resolve(13) = %+v, want {Line:1 Column:0}", lc)
	}
}

func TestFileSetResolveUnknownFile(t *testing.T) {
	t.Parallel()

	fs := newTestFileSet()
	if _, err := fs.Resolve(FileID(42), 0); err == nil {
		t.Fatal("expected error resolving an unregistered file id")
	}
}

func TestFileSetSpanToLineRange(t *testing.T) {
	t.Parallel()

	fs := newTestFileSet()
	src := []byte("abc\ndef\nghi")
	id := fs.AddFile("f.leaf", src)

	start, end, err := fs.SpanToLineRange(Location{File: id, Span: text.Span{Start: 4, End: 7}})
	if err != nil {
		t.Fatalf("SpanToLineRange: %v", err)
	}
	if start != (LineColumn{Line: 1, Column: 0}) {
		t.Fatalf("start = %+v", start)
	}
	if end != (LineColumn{Line: 1, Column: 3}) {
		t.Fatalf("end = %+v", end)
	}
}
