// Package tree is the viewer's core engine: an arena-backed node store over
// a parsed document, collapse-aware depth-first cursor traversal, the text
// renderer, and the current-line locator that drives viewport scrolling.
package tree

import "github.com/nridley/jsonview/internal/document"

// Tree aggregates the arena, the root handle, and the cursor. The shape is
// immutable after Build; only per-node Visible/Highlighted flags and the
// cursor move afterwards. The cursor always points at a live node.
type Tree struct {
	arena   arena
	root    Handle
	current Handle
}

// Build allocates one node per document value in a single depth-first walk
// and returns the tree with the cursor on the highlighted root. Composites
// are inserted before their children so each child can record its parent's
// handle as a back-reference.
func Build(v *document.Value) *Tree {
	t := &Tree{}
	t.root = t.build(v, None)
	t.current = t.root
	t.arena.get(t.current).Highlighted = true
	return t
}

func (t *Tree) build(v *document.Value, parent Handle) Handle {
	switch v.Kind {
	case document.KindSequence:
		h := t.arena.insert(Node{Parent: parent, Kind: KindSequence, Visible: true})
		children := make([]Handle, 0, len(v.Items))
		for _, item := range v.Items {
			children = append(children, t.build(item, h))
		}
		t.arena.get(h).Children = children
		return h

	case document.KindMapping:
		h := t.arena.insert(Node{Parent: parent, Kind: KindMapping, Visible: true})
		entries := make([]MapEntry, 0, len(v.Pairs))
		for _, p := range v.Pairs {
			entries = append(entries, MapEntry{Key: p.Key, Child: t.build(p.Value, h)})
		}
		t.arena.get(h).Entries = entries
		return h

	default:
		return t.arena.insert(Node{Parent: parent, Kind: KindTerminal, Scalar: v})
	}
}

// Root returns the root handle.
func (t *Tree) Root() Handle { return t.root }

// Current returns the cursor handle.
func (t *Tree) Current() Handle { return t.current }

// Node gives read access to a node. The handle must be live.
func (t *Tree) Node(h Handle) *Node { return t.arena.get(h) }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return t.arena.len() }

// MoveDown advances the cursor one step in visible order: depth-first
// pre-order in which a collapsed composite contributes itself but none of
// its descendants. It reports whether the cursor moved; at the end of the
// order it stays put.
func (t *Tree) MoveDown() (Handle, bool) {
	next, ok := t.nextVisible(t.current)
	if !ok {
		return t.current, false
	}
	t.setCurrent(next)
	return next, true
}

// MoveUp retreats the cursor one step in visible order, the exact inverse
// of MoveDown as long as no visibility flag changes in between.
func (t *Tree) MoveUp() (Handle, bool) {
	prev, ok := t.prevVisible(t.current)
	if !ok {
		return t.current, false
	}
	t.setCurrent(prev)
	return prev, true
}

func (t *Tree) setCurrent(h Handle) {
	t.arena.get(t.current).Highlighted = false
	t.current = h
	t.arena.get(t.current).Highlighted = true
}

// nextVisible finds the successor of h in visible order. An expanded
// composite descends to its first child; everything else (terminals,
// collapsed composites, and empty expanded composites) walks its ancestor
// chain for the first following sibling.
func (t *Tree) nextVisible(h Handle) (Handle, bool) {
	n := t.arena.get(h)
	if n.Expanded() {
		if first, ok := n.firstChild(); ok {
			return first, true
		}
	}

	for cur := h; ; {
		parent := t.arena.get(cur).Parent
		if parent == None {
			return None, false
		}
		if sib, ok := t.arena.get(parent).nextSibling(cur); ok {
			return sib, true
		}
		cur = parent
	}
}

// prevVisible finds the predecessor of h in visible order: the previous
// sibling's last visible descendant, or the parent when there is no
// previous sibling.
func (t *Tree) prevVisible(h Handle) (Handle, bool) {
	n := t.arena.get(h)
	if n.Parent == None {
		return None, false
	}
	parent := t.arena.get(n.Parent)

	// A collapsed parent means the cursor is transiently inside a hidden
	// subtree; step out onto the parent itself.
	if parent.IsComposite() && !parent.Visible {
		return n.Parent, true
	}

	prev, ok := parent.prevSibling(h)
	if !ok {
		return n.Parent, true
	}

	// Descend to the last node the previous sibling contributes to visible
	// order. Empty expanded composites stop the descent like leaves do.
	for {
		c := t.arena.get(prev)
		if !c.Expanded() {
			return prev, true
		}
		last, ok := c.lastChild()
		if !ok {
			return prev, true
		}
		prev = last
	}
}

// ToggleVisibility collapses or expands the current node. Terminals are
// always visible, so this is a no-op for them.
func (t *Tree) ToggleVisibility() {
	n := t.arena.get(t.current)
	if n.IsComposite() {
		n.Visible = !n.Visible
	}
}

// ToggleHighlight flips the highlight flag on the current node.
func (t *Tree) ToggleHighlight() {
	n := t.arena.get(t.current)
	n.Highlighted = !n.Highlighted
}
