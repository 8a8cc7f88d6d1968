package greentree

import "github.com/leafc-lang/leafc/internal/syntaxkind"

// Builder assembles a GreenNode tree bottom-up with a stack of in-progress
// frames, mirroring the StartNode/Token/FinishNode/Finish shape spec.md §4.4
// asks for (it names the pattern after rust-analyzer's GreenNodeBuilder).
// The parser drives it; Builder itself has no notion of source text beyond
// the token strings it's handed.
type Builder struct {
	stack []frame
	pool  map[string]*GreenNode
	done  *GreenNode
}

type frame struct {
	kind     syntaxkind.Kind
	children []GreenChild
}

// NewBuilder returns an empty Builder. Hash-consing is always on: the
// savings cost nothing but a map lookup keyed by a cheap structural
// fingerprint, and spec.md's Open Question (ii) permits but does not
// require it, so there is no reason to build the un-pooled variant too.
func NewBuilder() *Builder {
	return &Builder{pool: make(map[string]*GreenNode)}
}

// StartNode pushes a new in-progress node of the given kind.
func (b *Builder) StartNode(kind syntaxkind.Kind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// Checkpoint marks a position among the current node's not-yet-finished
// children, to later be retroactively wrapped by StartNodeAt — the
// mechanism left-recursive constructs like binary expressions need: the
// parser can't know it's building a BinExpr until after it has already
// emitted the left operand.
type Checkpoint struct {
	frameDepth int
	childIndex int
}

// Checkpoint captures the current top frame and its child count.
func (b *Builder) Checkpoint() Checkpoint {
	top := len(b.stack) - 1
	return Checkpoint{frameDepth: top, childIndex: len(b.stack[top].children)}
}

// StartNodeAt opens a new node that retroactively adopts every child the
// top frame accumulated since cp was captured, then pushes that new node
// as the current top frame. A subsequent FinishNode closes it normally.
func (b *Builder) StartNodeAt(cp Checkpoint, kind syntaxkind.Kind) {
	if cp.frameDepth != len(b.stack)-1 {
		panic("greentree: StartNodeAt checkpoint does not belong to the current frame")
	}
	top := &b.stack[cp.frameDepth]
	adopted := append([]GreenChild(nil), top.children[cp.childIndex:]...)
	top.children = top.children[:cp.childIndex]
	b.stack = append(b.stack, frame{kind: kind, children: adopted})
}

// Token appends a leaf token to the node currently being built.
func (b *Builder) Token(kind syntaxkind.Kind, text string) {
	b.pushChild(GreenChild{Token: &GreenToken{Kind: kind, Text: text}})
}

// FinishNode pops the current frame, builds its GreenNode (deduplicating
// against structurally identical nodes already built), and attaches it as a
// child of the new top frame — or, if the stack is now empty, records it as
// the finished root.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("greentree: FinishNode with no open node")
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	node := b.intern(NewGreenNode(top.kind, top.children))
	if len(b.stack) == 0 {
		b.done = node
		return
	}
	b.pushChild(GreenChild{Node: node})
}

// Finish returns the completed root. It panics if any node is still open —
// a programmer error in the caller, not a recoverable parse failure.
func (b *Builder) Finish() *GreenNode {
	if len(b.stack) != 0 {
		panic("greentree: Finish with unbalanced StartNode/FinishNode calls")
	}
	return b.done
}

func (b *Builder) pushChild(c GreenChild) {
	if len(b.stack) == 0 {
		panic("greentree: child pushed outside any StartNode/FinishNode pair")
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, c)
}

// intern returns a previously built node structurally equal to n, or n
// itself if none exists yet. The fingerprint key is cheap and approximate
// (kind + child count + width); structurallyEqual resolves collisions
// exactly, so a fingerprint clash never produces a wrong share.
func (b *Builder) intern(n *GreenNode) *GreenNode {
	key := fingerprint(n)
	if existing, ok := b.pool[key]; ok && structurallyEqual(existing, n) {
		return existing
	}
	b.pool[key] = n
	return n
}

func fingerprint(n *GreenNode) string {
	buf := make([]byte, 0, 24)
	buf = appendUint(buf, uint64(n.Kind))
	buf = append(buf, ':')
	buf = appendUint(buf, uint64(len(n.Children)))
	buf = append(buf, ':')
	buf = appendUint(buf, uint64(n.width))
	return string(buf)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}
