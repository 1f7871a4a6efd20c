package app

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/nridley/jsonview/internal/config"
	"github.com/nridley/jsonview/internal/document"
	"github.com/nridley/jsonview/internal/tree"
	"github.com/nridley/jsonview/internal/ui/components"
	"github.com/nridley/jsonview/internal/ui/help"
	"github.com/nridley/jsonview/internal/ui/theme"
	"github.com/nridley/jsonview/internal/watch"
)

// App is the main application model
type App struct {
	config *config.Config
	theme  theme.Theme
	log    logr.Logger

	path    string // empty when the document came from stdin
	watcher *watch.Watcher

	viewer       *components.Viewer
	panel        *components.Panel
	errorOverlay *components.ErrorOverlay

	showError bool
	showHelp  bool

	width  int
	height int
}

// FileChangedMsg reports that the watched file changed on disk.
type FileChangedMsg struct{}

// DocumentReloadedMsg carries a freshly parsed document.
type DocumentReloadedMsg struct {
	Root *document.Value
}

// ErrorMsg reports a failure to surface in the error overlay.
type ErrorMsg struct {
	Title   string
	Message string
}

// New creates the application model. watcher may be nil when live reload
// is disabled or the document came from stdin.
func New(cfg *config.Config, root *document.Value, path string, watcher *watch.Watcher, log logr.Logger) *App {
	th := theme.GetTheme(cfg.UI.Theme)

	a := &App{
		config:       cfg,
		theme:        th,
		log:          log,
		path:         path,
		watcher:      watcher,
		viewer:       components.NewViewer(tree.Build(root), th),
		errorOverlay: components.NewErrorOverlay(th),
	}
	a.panel = &components.Panel{
		Style: lipgloss.NewStyle().BorderForeground(th.BorderFocused),
	}
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return a.waitForChange
}

// Update handles messages and updates the model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case FileChangedMsg:
		a.log.V(1).Info("file changed", "path", a.path)
		return a, tea.Batch(a.reload, a.waitForChange)

	case DocumentReloadedMsg:
		// A reload replaces the whole tree; cursor and collapse state reset.
		a.viewer.SetTree(tree.Build(msg.Root))
		a.log.Info("document reloaded", "path", a.path)
		return a, nil

	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case components.NodeToggledMsg:
		a.log.V(1).Info("node toggled", "node", msg.Node)
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateDimensions()
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The error overlay captures input until dismissed, except quit.
	if a.showError {
		switch msg.String() {
		case "esc", "enter":
			a.DismissError()
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.showHelp {
		switch msg.String() {
		case "?", "esc":
			a.showHelp = false
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = true
		return a, nil

	case "r":
		if a.path == "" {
			a.ShowError("Reload Unavailable", "The document was read from stdin and cannot be reloaded.")
			return a, nil
		}
		return a, a.reload

	case "y":
		if err := clipboard.WriteAll(a.viewer.CurrentSubtreeText()); err != nil {
			a.log.Error(err, "clipboard copy failed")
			a.ShowError("Copy Failed", err.Error())
		}
		return a, nil
	}

	viewer, cmd := a.viewer.Update(msg)
	a.viewer = viewer
	return a, cmd
}

// View renders the application
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Loading..."
	}

	// If error overlay is showing, render it centered on top of everything
	if a.showError {
		return lipgloss.Place(
			a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.showHelp {
		return help.Render(a.width, a.height)
	}

	return a.renderNormalView()
}

func (a *App) renderNormalView() string {
	title := "jsonview - stdin"
	if a.path != "" {
		title = fmt.Sprintf("jsonview - %s", a.path)
	}

	topBar := lipgloss.NewStyle().
		Width(a.width).
		Align(lipgloss.Center).
		Foreground(a.theme.Title).
		Render(title)

	bottomBarLeft := "[↑/↓] Move | [enter] Fold | [?] Help | [q] Quit"
	bottomBarRight := fmt.Sprintf("line %d", a.viewer.Tree.CurrentLine()+1)
	bottomBar := lipgloss.NewStyle().
		Width(a.width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(a.formatStatusBar(bottomBarLeft, bottomBarRight))

	a.panel.Content = a.viewer.View()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		a.panel.View(),
		bottomBar,
	)
}

// updateDimensions calculates component sizes based on window size
func (a *App) updateDimensions() {
	if a.width <= 0 || a.height <= 0 {
		return
	}

	// Reserve space for top bar (1 line) and bottom bar (1 line), plus the
	// panel border (2 columns, 2 rows).
	contentHeight := a.height - 2 - 2
	if contentHeight < 3 {
		contentHeight = 3
	}
	contentWidth := a.width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}

	a.panel.Width = contentWidth
	a.panel.Height = contentHeight
	a.viewer.Width = contentWidth
	a.viewer.Height = contentHeight
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	// Account for padding (2 chars on each side = 4 total)
	availableWidth := a.width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := len(left)
	rightLen := len(right)

	if leftLen+rightLen > availableWidth {
		if availableWidth > rightLen {
			return left[:availableWidth-rightLen] + right
		}
		return left[:availableWidth]
	}

	spacing := availableWidth - leftLen - rightLen
	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

// ShowError displays the error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.showError = false
}

func (a *App) reload() tea.Msg {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return ErrorMsg{Title: "Reload Failed", Message: err.Error()}
	}
	root, err := document.Load(data, a.path)
	if err != nil {
		return ErrorMsg{Title: "Reload Failed", Message: err.Error()}
	}
	return DocumentReloadedMsg{Root: root}
}

func (a *App) waitForChange() tea.Msg {
	if _, ok := <-a.watcher.Events(); !ok {
		return nil
	}
	return FileChangedMsg{}
}
