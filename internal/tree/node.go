package tree

import "github.com/nridley/jsonview/internal/document"

// NodeKind is the closed set of node shapes. Every switch over it in this
// package handles all three cases.
type NodeKind int

const (
	KindTerminal NodeKind = iota
	KindSequence
	KindMapping
)

// MapEntry associates a mapping key with the handle of its value node.
type MapEntry struct {
	Key   string
	Child Handle
}

// Node is one entry in the arena: a terminal scalar or a composite.
// Parent is a non-owning back-reference, None for the root. After
// construction only Highlighted and Visible ever change.
type Node struct {
	Parent      Handle
	Highlighted bool
	Kind        NodeKind

	// Terminal payload; nil for composites. Only scalar kinds appear here.
	Scalar *document.Value

	// Composite state. Visible=false collapses the subtree: the node still
	// renders and traverses as a single line, but its descendants are
	// hidden.
	Visible  bool
	Children []Handle   // KindSequence
	Entries  []MapEntry // KindMapping
}

// IsComposite reports whether the node is a sequence or a mapping.
func (n *Node) IsComposite() bool { return n.Kind != KindTerminal }

// Expanded reports whether the node contributes its children to traversal
// and rendering. Terminals have no children to contribute.
func (n *Node) Expanded() bool { return n.IsComposite() && n.Visible }

// childCount returns the number of direct children.
func (n *Node) childCount() int {
	switch n.Kind {
	case KindSequence:
		return len(n.Children)
	case KindMapping:
		return len(n.Entries)
	}
	return 0
}

// childAt returns the i-th child handle. Callers bound i by childCount.
func (n *Node) childAt(i int) Handle {
	if n.Kind == KindSequence {
		return n.Children[i]
	}
	return n.Entries[i].Child
}

// firstChild returns the first child; ok is false for an empty composite.
func (n *Node) firstChild() (Handle, bool) {
	if n.childCount() == 0 {
		return None, false
	}
	return n.childAt(0), true
}

// lastChild mirrors firstChild for the last child.
func (n *Node) lastChild() (Handle, bool) {
	c := n.childCount()
	if c == 0 {
		return None, false
	}
	return n.childAt(c - 1), true
}

// childIndex locates h among the node's direct children, or -1.
func (n *Node) childIndex(h Handle) int {
	for i := 0; i < n.childCount(); i++ {
		if n.childAt(i) == h {
			return i
		}
	}
	return -1
}

// nextSibling returns the child immediately after h in this node's child
// list, if any.
func (n *Node) nextSibling(h Handle) (Handle, bool) {
	i := n.childIndex(h)
	if i < 0 || i+1 >= n.childCount() {
		return None, false
	}
	return n.childAt(i + 1), true
}

// prevSibling returns the child immediately before h in this node's child
// list, if any.
func (n *Node) prevSibling(h Handle) (Handle, bool) {
	i := n.childIndex(h)
	if i <= 0 {
		return None, false
	}
	return n.childAt(i - 1), true
}
