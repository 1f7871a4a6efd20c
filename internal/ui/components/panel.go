package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered container wrapping another component's content.
type Panel struct {
	Content string
	Width   int // content width, border excluded
	Height  int // content height, border excluded
	Style   lipgloss.Style
}

// View renders the panel
func (p *Panel) View() string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	style := p.Style.
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder())

	return style.Render(p.Content)
}
