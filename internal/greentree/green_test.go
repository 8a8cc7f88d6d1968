package greentree

import (
	"testing"

	"github.com/leafc-lang/leafc/internal/syntaxkind"
)

func TestBuilderComputesWidthFromChildren(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.StartNode(syntaxkind.SourceFile)
	b.StartNode(syntaxkind.LetStmt)
	b.Token(1, "let")
	b.Token(1, " ")
	b.Token(1, "x")
	b.FinishNode()
	b.FinishNode()

	root := b.Finish()
	if root.Kind != syntaxkind.SourceFile {
		t.Fatalf("root kind = %v, want SourceFile", root.Kind)
	}
	if root.Width() != len("let x") {
		t.Fatalf("root width = %d, want %d", root.Width(), len("let x"))
	}
	letNode := root.NodeChildren()[0]
	if letNode.Kind != syntaxkind.LetStmt {
		t.Fatalf("child kind = %v, want LetStmt", letNode.Kind)
	}
}

func TestFinishPanicsOnUnbalancedStack(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unbalanced Finish")
		}
	}()
	b := NewBuilder()
	b.StartNode(syntaxkind.SourceFile)
	b.Finish()
}

func TestIdenticalSubtreesAreHashConsedByTheBuilder(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.StartNode(syntaxkind.SourceFile)

	b.StartNode(syntaxkind.Name)
	b.Token(1, "x")
	b.FinishNode()

	b.StartNode(syntaxkind.Name)
	b.Token(1, "x")
	b.FinishNode()

	b.FinishNode()

	root := b.Finish()
	kids := root.NodeChildren()
	if len(kids) != 2 {
		t.Fatalf("got %d children, want 2", len(kids))
	}
	if kids[0] != kids[1] {
		t.Fatal("structurally identical subtrees were not shared")
	}
}

func TestGreenChildWidthDispatchesToTokenOrNode(t *testing.T) {
	t.Parallel()

	tok := GreenChild{Token: &GreenToken{Kind: 1, Text: "abc"}}
	if tok.Width() != 3 {
		t.Fatalf("token child width = %d, want 3", tok.Width())
	}

	node := GreenChild{Node: NewGreenNode(syntaxkind.Name, []GreenChild{
		{Token: &GreenToken{Kind: 1, Text: "abcd"}},
	})}
	if node.Width() != 4 {
		t.Fatalf("node child width = %d, want 4", node.Width())
	}
}
