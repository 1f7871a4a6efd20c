package components

// Viewer renders a document tree as indented, syntax-styled text with a
// movable cursor, expand/collapse on composites, and viewport scrolling
// that keeps the cursor inside the central third of the view.
//
// Usage:
//
//	viewer := components.NewViewer(tree.Build(doc), theme)
//	viewer.Width = 80
//	viewer.Height = 24
//
//	// In your Update method:
//	viewer, cmd := viewer.Update(msg)
//
//	// In your View method:
//	content := viewer.View()

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/nridley/jsonview/internal/tree"
	"github.com/nridley/jsonview/internal/ui/theme"
)

// NodeToggledMsg is sent when the current node's visibility is toggled.
type NodeToggledMsg struct {
	Node tree.Handle
}

// KeyMap holds the viewer's key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Highlight key.Binding
	Top       key.Binding
	Bottom    key.Binding
}

// DefaultKeyMap returns the standard viewer bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "collapse/expand")),
		Highlight: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "toggle highlight")),
		Top:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to top")),
		Bottom:    key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "go to bottom")),
	}
}

// Viewer is the document view component.
type Viewer struct {
	Tree   *tree.Tree
	Width  int // display width
	Height int // display height, borders excluded
	Theme  theme.Theme
	Keys   KeyMap

	viewport tree.Viewport
}

// NewViewer creates a viewer over an already-built tree.
func NewViewer(t *tree.Tree, th theme.Theme) *Viewer {
	return &Viewer{
		Tree:   t,
		Width:  80,
		Height: 24,
		Theme:  th,
		Keys:   DefaultKeyMap(),
	}
}

// SetTree replaces the displayed tree, e.g. after a file reload. The scroll
// position resets along with the cursor.
func (v *Viewer) SetTree(t *tree.Tree) {
	v.Tree = t
	v.viewport.Offset = 0
}

// ScrollOffset returns the first visible line index.
func (v *Viewer) ScrollOffset() int { return v.viewport.Offset }

// CurrentSubtreeText returns the plain-text rendering of the current node's
// subtree, suitable for the clipboard.
func (v *Viewer) CurrentSubtreeText() string {
	return tree.PlainText(v.Tree.RenderFrom(v.Tree.Current()))
}

// Update handles keyboard input for cursor movement and node toggles.
func (v *Viewer) Update(msg tea.KeyMsg) (*Viewer, tea.Cmd) {
	if v.Tree == nil {
		return v, nil
	}
	v.viewport.Height = v.Height

	var cmd tea.Cmd

	switch {
	case key.Matches(msg, v.Keys.Down):
		if _, moved := v.Tree.MoveDown(); moved {
			v.viewport.ScrollDown(v.Tree.CurrentLine())
		}

	case key.Matches(msg, v.Keys.Up):
		if _, moved := v.Tree.MoveUp(); moved {
			v.viewport.ScrollUp(v.Tree.CurrentLine())
		}

	case key.Matches(msg, v.Keys.Top):
		for {
			if _, moved := v.Tree.MoveUp(); !moved {
				break
			}
		}
		v.viewport.Offset = 0

	case key.Matches(msg, v.Keys.Bottom):
		for {
			if _, moved := v.Tree.MoveDown(); !moved {
				break
			}
		}
		v.viewport.ScrollDown(v.Tree.CurrentLine())

	case key.Matches(msg, v.Keys.Toggle):
		current := v.Tree.Current()
		if v.Tree.Node(current).IsComposite() {
			v.Tree.ToggleVisibility()
			cmd = func() tea.Msg {
				return NodeToggledMsg{Node: current}
			}
		}

	case key.Matches(msg, v.Keys.Highlight):
		v.Tree.ToggleHighlight()
	}

	return v, cmd
}

// View renders the visible window of the document.
func (v *Viewer) View() string {
	if v.Tree == nil {
		return ""
	}

	lines := v.Tree.Render()

	v.viewport.Height = v.Height
	v.viewport.Clamp(len(lines))

	start := v.viewport.Offset
	end := start + v.Height
	if end > len(lines) {
		end = len(lines)
	}

	out := make([]string, 0, v.Height)
	for _, line := range lines[start:end] {
		out = append(out, v.renderLine(line))
	}
	for len(out) < v.Height {
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}

// renderLine styles a line's spans and truncates it to the display width.
func (v *Viewer) renderLine(l tree.Line) string {
	var b strings.Builder
	used := 0

	for _, s := range l.Spans {
		remaining := v.Width - used
		if remaining <= 0 {
			break
		}
		text := s.Text
		if runewidth.StringWidth(text) > remaining {
			text = runewidth.Truncate(text, remaining, "…")
		}
		b.WriteString(v.spanStyle(s.Kind, s.Highlight).Render(text))
		used += runewidth.StringWidth(text)
	}

	return b.String()
}

// spanStyle maps a token kind to its theme color; highlighted spans render
// in reverse video.
func (v *Viewer) spanStyle(kind tree.TokenKind, highlight bool) lipgloss.Style {
	var color lipgloss.Color
	switch kind {
	case tree.TokenKey:
		color = v.Theme.JSONKey
	case tree.TokenString:
		color = v.Theme.JSONString
	case tree.TokenNumber:
		color = v.Theme.JSONNumber
	case tree.TokenBool:
		color = v.Theme.JSONBoolean
	case tree.TokenNull:
		color = v.Theme.JSONNull
	default:
		color = v.Theme.JSONPunct
	}

	style := lipgloss.NewStyle().Foreground(color)
	if highlight {
		style = style.Reverse(true)
	}
	return style
}
