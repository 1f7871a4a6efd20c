package tree

import (
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/nridley/jsonview/internal/document"
)

// drawValue generates a random document of bounded depth.
func drawValue(t *rapid.T, depth int) *document.Value {
	top := 5
	if depth <= 0 {
		top = 3
	}
	switch rapid.IntRange(0, top).Draw(t, "kind") {
	case 0:
		return document.NewNumber(strconv.Itoa(rapid.IntRange(-999, 999).Draw(t, "num")))
	case 1:
		return document.NewString(rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "str"))
	case 2:
		return document.NewBool(rapid.Bool().Draw(t, "bool"))
	case 3:
		return document.NewNull()
	case 4:
		n := rapid.IntRange(0, 3).Draw(t, "len")
		items := make([]*document.Value, n)
		for i := range items {
			items[i] = drawValue(t, depth-1)
		}
		return document.NewSequence(items...)
	default:
		n := rapid.IntRange(0, 3).Draw(t, "len")
		pairs := make([]document.Pair, n)
		for i := range pairs {
			pairs[i] = document.Pair{
				Key:   rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "key"),
				Value: drawValue(t, depth-1),
			}
		}
		return document.NewMapping(pairs...)
	}
}

// drawTree builds a tree over a random document and collapses a random
// subset of its composites.
func drawTree(t *rapid.T) *Tree {
	tr := Build(drawValue(t, 3))
	for h := Handle(0); int(h) < tr.Len(); h++ {
		if tr.Node(h).IsComposite() && rapid.Bool().Draw(t, "collapse") {
			tr.Node(h).Visible = false
		}
	}
	return tr
}

// visiblePreOrder is a reference implementation of visible order, written
// directly from the definition rather than via sibling/ancestor walking.
func visiblePreOrder(tr *Tree, h Handle, out []Handle) []Handle {
	out = append(out, h)
	if tr.Node(h).Expanded() {
		for i := 0; i < tr.Node(h).childCount(); i++ {
			out = visiblePreOrder(tr, tr.Node(h).childAt(i), out)
		}
	}
	return out
}

func TestMoveDownMatchesVisiblePreOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)

		want := visiblePreOrder(tr, tr.Root(), nil)
		got := []Handle{tr.Current()}
		for {
			h, moved := tr.MoveDown()
			if !moved {
				break
			}
			got = append(got, h)
		}

		if len(got) != len(want) {
			t.Fatalf("walk visited %d nodes, reference order has %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("walk diverges at step %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})
}

func TestMoveUpReversesMoveDown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)

		steps := rapid.IntRange(0, 20).Draw(t, "steps")
		var path []Handle
		path = append(path, tr.Current())
		for i := 0; i < steps; i++ {
			h, moved := tr.MoveDown()
			if !moved {
				break
			}
			path = append(path, h)
		}

		for i := len(path) - 2; i >= 0; i-- {
			h, moved := tr.MoveUp()
			if !moved || h != path[i] {
				t.Fatalf("MoveUp step to index %d: got (%d, %v), want %d", i, h, moved, path[i])
			}
		}
	})
}

func TestLocatorAgreesWithRenderer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)

		if got, want := len(tr.Render()), tr.LineCount(tr.Root()); got != want {
			t.Fatalf("renderer produced %d lines, LineCount says %d", got, want)
		}

		// Walking down, the located line strictly increases and stays in
		// range.
		prev := tr.CurrentLine()
		if prev != 0 {
			t.Fatalf("root should be on line 0, got %d", prev)
		}
		total := tr.LineCount(tr.Root())
		for {
			if _, moved := tr.MoveDown(); !moved {
				break
			}
			line := tr.CurrentLine()
			if line <= prev || line >= total {
				t.Fatalf("line %d after %d (total %d)", line, prev, total)
			}
			prev = line
		}
	})
}

func TestExactlyOneNodeHighlighted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)

		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				tr.MoveDown()
			case 1:
				tr.MoveUp()
			default:
				tr.ToggleVisibility()
			}

			count := 0
			for h := Handle(0); int(h) < tr.Len(); h++ {
				if tr.Node(h).Highlighted {
					count++
				}
			}
			if count != 1 || !tr.Node(tr.Current()).Highlighted {
				t.Fatalf("highlight count %d after step %d", count, i)
			}
		}
	})
}
