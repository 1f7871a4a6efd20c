package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit"},
		{"Esc/Enter", "Dismiss error"},
		{"r", "Reload document"},
		{"y", "Copy current node"},
	}
}

// GetNavigationKeys returns navigation key bindings
func GetNavigationKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"g", "Go to top"},
		{"G", "Go to bottom"},
		{"Enter/Space", "Collapse or expand node"},
		{"h", "Toggle highlight"},
	}
}

// Render creates the help view
func Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("jsonview - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	// Global keys
	b.WriteString(sectionStyle.Render("Global"))
	b.WriteString("\n")
	for _, kb := range GetGlobalKeys() {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(kb.Key))
		b.WriteString(descStyle.Render(kb.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Navigation keys
	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, kb := range GetNavigationKeys() {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(kb.Key))
		b.WriteString(descStyle.Render(kb.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	// Wrap in a box
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}
