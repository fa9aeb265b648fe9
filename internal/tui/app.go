// Package tui implements the full-screen study screen on top of Bubble Tea.
// All study semantics live in internal/study; this package maps keys to
// session commands and renders the session state.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/flashdeck/internal/logging"
	"github.com/Iron-Ham/flashdeck/internal/study"
	"github.com/Iron-Ham/flashdeck/internal/tui/keymap"
	"github.com/Iron-Ham/flashdeck/internal/tui/styles"
)

// Options configures the study screen program.
type Options struct {
	// AltScreen runs the screen in the terminal's alternate buffer.
	AltScreen bool
	// Input and Output override the program's terminal streams (nil keeps stdin/stdout).
	Input  io.Reader
	Output io.Writer
	// Keymap overrides the default bindings.
	Keymap *keymap.Keymap
	Logger *logging.Logger
}

// Run shows the study screen for s until the user quits or ctx is cancelled.
// The session is always ended before Run returns.
func Run(ctx context.Context, s *study.Session, opts Options) (study.Summary, error) {
	km := opts.Keymap
	if km == nil {
		km = keymap.DefaultKeymap()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	model := NewModel(s, km, styles.GetActiveTheme())

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	program := tea.NewProgram(model, programOpts...)
	_, err := program.Run()

	summary := s.Quit()
	if err != nil {
		logger.Error("study screen exited with error", "error", err)
		return summary, fmt.Errorf("study screen: %w", err)
	}
	return summary, nil
}
