package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nridley/jsonview/internal/app"
	"github.com/nridley/jsonview/internal/config"
	"github.com/nridley/jsonview/internal/document"
	"github.com/nridley/jsonview/internal/logging"
	"github.com/nridley/jsonview/internal/watch"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagConfig   string
	flagTheme    string
	flagWatch    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsonview [file]",
		Short: "Interactive terminal viewer for JSON and YAML documents",
		Long: `jsonview renders a JSON or YAML document as a navigable tree.
Move with the arrow keys or j/k, collapse and expand composites with
enter, and press ? inside the viewer for the full key reference.

With no file argument the document is read from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: jsonview/config.yaml in the user config dir)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme (default, catppuccin-mocha)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload the document when the file changes")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil && flagConfig != "" {
		return err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v (using defaults)\n", err)
		cfg = config.GetDefaults()
	}
	applyFlags(cfg)

	log, syncLog, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer syncLog()

	path, data, err := readInput(args)
	if err != nil {
		return err
	}

	root, err := document.Load(data, path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputName(path), err)
	}

	var watcher *watch.Watcher
	if cfg.Watch.Enabled && path != "" {
		watcher, err = watch.New(path,
			watch.WithDebounce(time.Duration(cfg.Watch.DebounceMs)*time.Millisecond))
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer watcher.Close()
	}

	model := app.New(cfg, root, path, watcher, log)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info("starting", "input", inputName(path), "theme", cfg.UI.Theme)
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// applyFlags lets command-line flags override the config file.
func applyFlags(cfg *config.Config) {
	if flagTheme != "" {
		cfg.UI.Theme = flagTheme
	}
	if flagWatch {
		cfg.Watch.Enabled = true
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

// readInput returns the document bytes and, for file input, the path.
func readInput(args []string) (string, []byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", nil, err
		}
		return args[0], data, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil, errors.New("no input: pass a file argument or pipe a document to stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", nil, fmt.Errorf("read stdin: %w", err)
	}
	return "", data, nil
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
