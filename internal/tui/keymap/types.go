// Package keymap provides key binding definitions and lookup for the study
// screen. Bindings are declared per mode so the update loop only asks "which
// command does this key mean right now".
package keymap

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the study screen.
type Mode string

const (
	ModeQuestion Mode = "question" // Question shown, answer hidden
	ModeAnswer   Mode = "answer"   // Answer revealed, navigation active
	ModeHelp     Mode = "help"     // Full key reference overlay
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	CmdReveal     Command = "reveal"
	CmdNext       Command = "next"
	CmdPrev       Command = "prev"
	CmdShuffle    Command = "shuffle"
	CmdQuit       Command = "quit"
	CmdToggleHelp Command = "toggle_help"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << iota
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key; rune keys use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is shown in the help bar.
	Description string

	// Hidden bindings work but are left out of help (upper-case aliases).
	Hidden bool
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		switch kb.KeyType {
		case tea.KeyRight:
			return prefix + "→"
		case tea.KeyLeft:
			return prefix + "←"
		case tea.KeySpace:
			return prefix + "space"
		}
		return prefix + kb.KeyType.String()
	}

	if kb.Rune == ' ' {
		return prefix + "space"
	}
	return prefix + string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns the visible bindings that trigger cmd in mode.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Command == cmd && !binding.Hidden {
			result = append(result, binding)
		}
	}
	return result
}

// HelpEntry is one item of the help bar.
type HelpEntry struct {
	Keys        string
	Description string
}

// Help returns one entry per command in mode, in binding order, listing up
// to maxKeys keys each ("n/l next").
func (km *Keymap) Help(mode Mode, maxKeys int) []HelpEntry {
	var entries []HelpEntry
	seen := make(map[Command]bool)

	for _, binding := range km.GetModeBindings(mode) {
		if binding.Hidden || seen[binding.Command] {
			continue
		}
		seen[binding.Command] = true

		var keys []string
		for _, b := range km.GetBindingsForCommand(binding.Command, mode) {
			if maxKeys > 0 && len(keys) == maxKeys {
				break
			}
			keys = append(keys, b.String())
		}
		entries = append(entries, HelpEntry{
			Keys:        strings.Join(keys, "/"),
			Description: binding.Description,
		})
	}
	return entries
}
