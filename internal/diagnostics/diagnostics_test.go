package diagnostics

import (
	"errors"
	"testing"

	"github.com/leafc-lang/leafc/internal/codemap"
	"github.com/leafc-lang/leafc/internal/intern"
	"github.com/leafc-lang/leafc/internal/text"
)

func newTestFileSet() *codemap.FileSet {
	return codemap.NewFileSet("/work", intern.NewStringInterner(), intern.NewFileInterner())
}

func testLoc(fs *codemap.FileSet) codemap.Location {
	id := fs.AddFile("main.leaf", []byte("let x = 1;"))
	return codemap.Location{File: id, Span: text.Span{Start: 4, End: 5}}
}

func TestManagerOrdersErrorsBeforeWarningsOnIterate(t *testing.T) {
	t.Parallel()

	fs := newTestFileSet()
	loc := testLoc(fs)

	m := NewManager()
	m.AddWarning(UnknownToken, "looks suspicious", loc)
	m.AddError(UnexpectedToken, "expected ';'", loc)
	m.AddError(InvalidNumericLiteral, "bad hex literal", loc)

	if m.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", m.Count())
	}
	if !m.HasAny() || !m.HasErrors() {
		t.Fatal("HasAny/HasErrors should both be true")
	}

	var order []Severity
	m.Iterate(func(d Diagnostic) { order = append(order, d.Severity) })
	want := []Severity{SeverityError, SeverityError, SeverityWarning}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestManagerWithOnlyWarningsHasNoErrors(t *testing.T) {
	t.Parallel()

	fs := newTestFileSet()
	loc := testLoc(fs)

	m := NewManager()
	m.AddWarning(UnknownToken, "cosmetic", loc)
	if m.HasErrors() {
		t.Fatal("HasErrors() should be false with only warnings queued")
	}
	if !m.HasAny() {
		t.Fatal("HasAny() should be true")
	}
}

func TestNonLocatedErrorWrapsAndUnwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := Wrap(FileNotFound, cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should see through the wrapper")
	}

	var nle *NonLocatedError
	if !errors.As(err, &nle) {
		t.Fatal("errors.As should recover the NonLocatedError")
	}
	if nle.Kind != FileNotFound {
		t.Fatalf("Kind = %v, want FileNotFound", nle.Kind)
	}
}

func TestWrapOfNilErrorIsNil(t *testing.T) {
	t.Parallel()

	if Wrap(DriverInitialization, nil) != nil {
		t.Fatal("Wrap(kind, nil) should return nil")
	}
}
