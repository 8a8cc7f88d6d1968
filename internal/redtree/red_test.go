package redtree

import (
	"testing"

	"github.com/leafc-lang/leafc/internal/greentree"
	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

func buildLetX() *greentree.GreenNode {
	b := greentree.NewBuilder()
	b.StartNode(syntaxkind.SourceFile)
	b.StartNode(syntaxkind.LetStmt)
	b.Token(syntaxkind.Kind(1), "let")
	b.Token(syntaxkind.Kind(2), " ")
	b.StartNode(syntaxkind.Name)
	b.Token(syntaxkind.Kind(3), "x")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	return b.Finish()
}

func TestSyntaxNodeComputesAbsoluteOffsets(t *testing.T) {
	t.Parallel()

	root := NewRoot(buildLetX())
	if root.TextRange().Start != 0 || int(root.TextRange().End) != len("let x") {
		t.Fatalf("root range = %s", root.TextRange())
	}

	letStmt := root.Children()[0]
	if letStmt.Kind() != syntaxkind.LetStmt {
		t.Fatalf("kind = %v, want LetStmt", letStmt.Kind())
	}
	if letStmt.TextRange().Start != 0 {
		t.Fatalf("letStmt start = %d, want 0", letStmt.TextRange().Start)
	}

	nameNode := letStmt.Children()[0]
	if nameNode.Kind() != syntaxkind.Name {
		t.Fatalf("kind = %v, want Name", nameNode.Kind())
	}
	if int(nameNode.TextRange().Start) != len("let ") {
		t.Fatalf("name start = %d, want %d", nameNode.TextRange().Start, len("let "))
	}
	if nameNode.Parent().Kind() != letStmt.Kind() || nameNode.Parent().TextRange() != letStmt.TextRange() {
		t.Fatal("name's parent should match the letStmt red node returned by Children")
	}
}

func TestFirstAndLastToken(t *testing.T) {
	t.Parallel()

	root := NewRoot(buildLetX())
	first := root.FirstToken()
	if first == nil || first.Text() != "let" {
		t.Fatalf("first token = %v, want \"let\"", first)
	}
	last := root.LastToken()
	if last == nil || last.Text() != "x" {
		t.Fatalf("last token = %v, want \"x\"", last)
	}
	if int(last.TextRange().Start) != len("let x")-1 {
		t.Fatalf("last token offset = %d, want %d", last.TextRange().Start, len("let x")-1)
	}
}

func TestDescendantsIsPreorder(t *testing.T) {
	t.Parallel()

	root := NewRoot(buildLetX())
	kinds := make([]syntaxkind.Kind, 0)
	for _, n := range root.Descendants() {
		kinds = append(kinds, n.Kind())
	}
	want := []syntaxkind.Kind{syntaxkind.SourceFile, syntaxkind.LetStmt, syntaxkind.Name}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
}

func TestWalkEmitsEnterThenLeaveForEveryNode(t *testing.T) {
	t.Parallel()

	root := NewRoot(buildLetX())
	var events []WalkEvent
	root.Walk(func(e WalkEvent) { events = append(events, e) })

	if len(events) != 6 { // 3 nodes * (enter + leave)
		t.Fatalf("got %d events, want 6", len(events))
	}
	if !events[0].Enter || events[0].Node.Kind() != syntaxkind.SourceFile {
		t.Fatalf("first event = %+v, want Enter SourceFile", events[0])
	}
	if events[len(events)-1].Enter {
		t.Fatal("last event should be a Leave")
	}
}

func TestChildrenWithTokensIncludesBothVariantsInOrder(t *testing.T) {
	t.Parallel()

	root := NewRoot(buildLetX())
	letStmt := root.Children()[0]
	elems := letStmt.ChildrenWithTokens()
	if len(elems) != 3 {
		t.Fatalf("got %d children, want 3 (let, space, Name node)", len(elems))
	}
	if elems[0].Token == nil || elems[0].Token.Text() != "let" {
		t.Fatalf("elems[0] = %+v, want token \"let\"", elems[0])
	}
	if elems[2].Node == nil || elems[2].Node.Kind() != syntaxkind.Name {
		t.Fatalf("elems[2] = %+v, want Name node", elems[2])
	}
}
