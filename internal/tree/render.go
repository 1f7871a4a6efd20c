package tree

import (
	"strings"

	"github.com/nridley/jsonview/internal/document"
)

// TokenKind classifies a rendered span so the UI layer can color it without
// this package knowing about styles.
type TokenKind int

const (
	TokenPunct TokenKind = iota
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Span is a run of text with one token kind. Highlight marks spans that
// belong to the highlighted node's own lines; surrounding punctuation a
// parent contributes (indentation, key prefixes, commas) stays unmarked.
type Span struct {
	Kind      TokenKind
	Text      string
	Highlight bool
}

// Line is one display row.
type Line struct {
	Spans []Span
}

// Text returns the line's plain text without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// PlainText joins rendered lines into the unstyled document text.
func PlainText(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, "\n")
}

// indentUnit is the fixed per-level indentation.
const indentUnit = "  "

// Render produces the whole document as styled lines, recomputed from the
// current tree state on every call.
func (t *Tree) Render() []Line {
	return t.RenderFrom(t.root)
}

// RenderFrom renders the subtree rooted at h at indentation depth zero.
// Line boundaries agree exactly with CurrentLine's counting; both follow
// one rule: a terminal or collapsed composite occupies a single line, an
// expanded composite occupies an opening line, each child's line group, and
// a closing line.
func (t *Tree) RenderFrom(h Handle) []Line {
	return t.renderNode(h, 0)
}

func (t *Tree) renderNode(h Handle, depth int) []Line {
	n := t.arena.get(h)

	if n.Kind == KindTerminal {
		return []Line{{Spans: []Span{scalarSpan(n, n.Highlighted)}}}
	}

	open, closing, collapsed := "[", "]", "[...]"
	if n.Kind == KindMapping {
		open, closing, collapsed = "{", "}", "{...}"
	}

	if !n.Visible {
		return []Line{{Spans: []Span{{Kind: TokenPunct, Text: collapsed, Highlight: n.Highlighted}}}}
	}

	lines := []Line{{Spans: []Span{{Kind: TokenPunct, Text: open, Highlight: n.Highlighted}}}}
	childIndent := strings.Repeat(indentUnit, depth+1)

	count := n.childCount()
	for i := 0; i < count; i++ {
		childLines := t.renderNode(n.childAt(i), depth+1)

		first := Line{Spans: []Span{{Kind: TokenPunct, Text: childIndent}}}
		if n.Kind == KindMapping {
			first.Spans = append(first.Spans,
				Span{Kind: TokenKey, Text: `"` + n.Entries[i].Key + `"`},
				Span{Kind: TokenPunct, Text: ": "},
			)
		}
		first.Spans = append(first.Spans, childLines[0].Spans...)
		lines = append(lines, first)
		lines = append(lines, childLines[1:]...)

		if i < count-1 {
			last := &lines[len(lines)-1]
			last.Spans = append(last.Spans, Span{Kind: TokenPunct, Text: ","})
		}
	}

	lines = append(lines, Line{Spans: []Span{
		{Kind: TokenPunct, Text: strings.Repeat(indentUnit, depth)},
		{Kind: TokenPunct, Text: closing, Highlight: n.Highlighted},
	}})
	return lines
}

// scalarSpan renders a terminal in its canonical textual form: numbers and
// booleans as written, strings double-quoted without added escaping, and
// null as its literal token.
func scalarSpan(n *Node, highlight bool) Span {
	v := n.Scalar
	if v == nil {
		return Span{Kind: TokenNull, Text: "null", Highlight: highlight}
	}
	switch v.Kind {
	case document.KindBool:
		text := "false"
		if v.Bool {
			text = "true"
		}
		return Span{Kind: TokenBool, Text: text, Highlight: highlight}
	case document.KindNumber:
		return Span{Kind: TokenNumber, Text: v.Number, Highlight: highlight}
	case document.KindString:
		return Span{Kind: TokenString, Text: `"` + v.Str + `"`, Highlight: highlight}
	default:
		return Span{Kind: TokenNull, Text: "null", Highlight: highlight}
	}
}
