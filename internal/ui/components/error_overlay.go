package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nridley/jsonview/internal/ui/theme"
)

// ErrorOverlay is a centered dialog showing a failure, e.g. a reload whose
// parse failed. The previous document stays on screen behind it.
type ErrorOverlay struct {
	Title   string
	Message string
	Theme   theme.Theme
	Width   int
}

// NewErrorOverlay creates an empty overlay.
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{Theme: th, Width: 60}
}

// SetError fills in the overlay content.
func (e *ErrorOverlay) SetError(title, message string) {
	e.Title = title
	e.Message = message
}

// View renders the overlay box.
func (e *ErrorOverlay) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(e.Theme.Error).
		Padding(0, 1)

	messageStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Foreground).
		Padding(0, 1)

	hintStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Comment).
		Padding(0, 1)

	body := strings.Join([]string{
		titleStyle.Render(e.Title),
		"",
		messageStyle.Render(e.Message),
		"",
		hintStyle.Render("esc/enter: dismiss"),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Width(e.Width).
		Render(body)
}
