package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/flashdeck/internal/study"
	"github.com/Iron-Ham/flashdeck/internal/tui/keymap"
	"github.com/Iron-Ham/flashdeck/internal/tui/styles"
)

// refreshInterval is how often the countdown is redrawn.
const refreshInterval = 250 * time.Millisecond

// tickMsg is sent periodically to redraw the countdown
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model of the study screen.
type Model struct {
	session *study.Session
	keys    *keymap.Keymap
	styles  *styles.ThemedStyles

	width  int
	height int

	showHelp bool
	notice   string
	quitting bool
}

// NewModel creates a study screen model for a session that has not started.
func NewModel(s *study.Session, km *keymap.Keymap, st *styles.ThemedStyles) Model {
	return Model{
		session: s,
		keys:    km,
		styles:  st,
		width:   80,
	}
}

// Init presents the first card and starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tick()
}

// Update handles key presses, window resizes and redraw ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(msg, m.mode())
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
	case keymap.CmdQuit:
		m.session.Quit()
		m.quitting = true
		return m, tea.Quit
	case keymap.CmdReveal:
		m.session.Apply(study.CommandReveal)
	case keymap.CmdNext:
		if m.session.Apply(study.CommandNext) {
			m.notice = ""
		}
	case keymap.CmdPrev:
		if m.session.Apply(study.CommandPrevious) {
			m.notice = ""
		}
	case keymap.CmdShuffle:
		if m.session.Apply(study.CommandShuffle) {
			m.notice = "✓ Cards shuffled!"
		}
	}
	return m, nil
}

// mode maps the session phase to the keymap mode.
func (m Model) mode() keymap.Mode {
	if m.showHelp {
		return keymap.ModeHelp
	}
	if m.session.Phase() == study.PhaseAnswer {
		return keymap.ModeAnswer
	}
	return keymap.ModeQuestion
}

// Quitting reports whether the user asked to leave the screen.
func (m Model) Quitting() bool {
	return m.quitting
}
