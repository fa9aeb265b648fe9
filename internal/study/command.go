package study

import (
	"strings"

	"github.com/Iron-Ham/flashdeck/internal/errors"
)

// Command is a user action during a study session.
type Command int

// Commands
const (
	CommandUnknown Command = iota
	CommandReveal
	CommandNext
	CommandPrevious
	CommandShuffle
	CommandQuit
)

var commandNames = map[Command]string{
	CommandUnknown:  "unknown",
	CommandReveal:   "reveal",
	CommandNext:     "next",
	CommandPrevious: "previous",
	CommandShuffle:  "shuffle",
	CommandQuit:     "quit",
}

// String implements fmt.Stringer.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return commandNames[CommandUnknown]
}

// ParseCommand maps navigation input to a command, ignoring case and
// surrounding space. Unrecognized input is CommandUnknown.
func ParseCommand(input string) Command {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "n", "next":
		return CommandNext
	case "p", "prev", "previous":
		return CommandPrevious
	case "s", "shuffle":
		return CommandShuffle
	case "q", "quit":
		return CommandQuit
	case "r", "reveal":
		return CommandReveal
	default:
		return CommandUnknown
	}
}

// TimerChoice is one entry of the timer menu.
type TimerChoice struct {
	Key     string
	Seconds int
	Label   string
}

// TimerChoices returns the timer menu in display order.
func TimerChoices() []TimerChoice {
	return []TimerChoice{
		{Key: "1", Seconds: 10, Label: "10 seconds"},
		{Key: "2", Seconds: 30, Label: "30 seconds"},
		{Key: "3", Seconds: 60, Label: "1 minute"},
		{Key: "4", Seconds: 0, Label: "No timer"},
	}
}

// ParseTimerChoice maps the timer menu keys "1".."4" to seconds. A blank entry
// means no timer.
func ParseTimerChoice(choice string) (int, error) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return 0, nil
	}
	for _, tc := range TimerChoices() {
		if tc.Key == choice {
			return tc.Seconds, nil
		}
	}
	return 0, errors.NewValidationError("Invalid timer choice! Choose 1-4").
		WithField("timer").
		WithValue(choice)
}

// ValidTimerSeconds reports whether seconds is an offered timer length.
func ValidTimerSeconds(seconds int) bool {
	for _, tc := range TimerChoices() {
		if tc.Seconds == seconds {
			return true
		}
	}
	return false
}
