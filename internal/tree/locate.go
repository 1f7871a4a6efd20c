package tree

// CurrentLine returns the zero-based display line of the current node's
// first line, walking from the root with the renderer's line-accounting:
// terminals and collapsed composites occupy one line, an expanded composite
// an opening line, its children's line groups, and a closing line. The walk
// counts the newlines emitted before the current node is reached and
// short-circuits there. Root is line 0.
func (t *Tree) CurrentLine() int {
	line, _ := t.locateFrom(t.root, 0)
	return line
}

// locateFrom returns (updated newline count, found). When the target is not
// inside h's subtree the returned count includes every newline h's
// rendering emits, so the caller can keep scanning siblings.
func (t *Tree) locateFrom(h Handle, count int) (int, bool) {
	if h == t.current {
		return count, true
	}

	n := t.arena.get(h)
	if !n.Expanded() {
		// One line, no newline of its own: the newline terminating it
		// belongs to the parent's accounting below.
		return count, false
	}

	count++ // opening bracket line ends here
	for i := 0; i < n.childCount(); i++ {
		var found bool
		if count, found = t.locateFrom(n.childAt(i), count); found {
			return count, true
		}
		count++ // newline closing the child's line group (comma or pre-bracket)
	}
	return count, false
}

// LineCount returns the number of display lines the subtree at h occupies
// in its current visibility state. Render and CurrentLine both follow this
// accounting.
func (t *Tree) LineCount(h Handle) int {
	n := t.arena.get(h)
	if !n.Expanded() {
		return 1
	}
	total := 2 // brackets
	for i := 0; i < n.childCount(); i++ {
		total += t.LineCount(n.childAt(i))
	}
	return total
}
