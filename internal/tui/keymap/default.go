package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the study screen key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeQuestion: defaultQuestionBindings(),
			ModeAnswer:   defaultAnswerBindings(),
			ModeHelp:     defaultHelpBindings(),
		},
	}
}

func quitBindings() []KeyBinding {
	return []KeyBinding{
		{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit"},
		{KeyType: tea.KeyRunes, Rune: 'Q', Command: CmdQuit, Description: "quit", Hidden: true},
		{KeyType: tea.KeyEsc, Command: CmdQuit, Description: "quit"},
		{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Hidden: true},
	}
}

func defaultQuestionBindings() *ModeBindings {
	bindings := []KeyBinding{
		{KeyType: tea.KeyEnter, Command: CmdReveal, Description: "reveal"},
		{KeyType: tea.KeySpace, Command: CmdReveal, Description: "reveal"},
		{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "help"},
	}
	return &ModeBindings{
		Mode:     ModeQuestion,
		Bindings: append(bindings, quitBindings()...),
	}
}

func defaultAnswerBindings() *ModeBindings {
	bindings := []KeyBinding{
		{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNext, Description: "next"},
		{KeyType: tea.KeyRunes, Rune: 'N', Command: CmdNext, Description: "next", Hidden: true},
		{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNext, Description: "next"},
		{KeyType: tea.KeyRight, Command: CmdNext, Description: "next"},
		{KeyType: tea.KeyTab, Command: CmdNext, Description: "next"},

		{KeyType: tea.KeyRunes, Rune: 'p', Command: CmdPrev, Description: "previous"},
		{KeyType: tea.KeyRunes, Rune: 'P', Command: CmdPrev, Description: "previous", Hidden: true},
		{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrev, Description: "previous"},
		{KeyType: tea.KeyLeft, Command: CmdPrev, Description: "previous"},
		{KeyType: tea.KeyShiftTab, Command: CmdPrev, Description: "previous"},

		{KeyType: tea.KeyRunes, Rune: 's', Command: CmdShuffle, Description: "shuffle"},
		{KeyType: tea.KeyRunes, Rune: 'S', Command: CmdShuffle, Description: "shuffle", Hidden: true},

		{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "help"},
	}
	return &ModeBindings{
		Mode:     ModeAnswer,
		Bindings: append(bindings, quitBindings()...),
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "close help"},
			{KeyType: tea.KeyEsc, Command: CmdToggleHelp, Description: "close help"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Hidden: true},
		},
	}
}
