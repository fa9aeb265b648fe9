package menu

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Iron-Ham/flashdeck/internal/config"
)

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ResolveInteractive decides whether the full-screen study view is used for
// the given tui.interactive mode. In auto mode both streams must be terminals.
func ResolveInteractive(mode string, in, out any) bool {
	switch mode {
	case config.InteractiveAlways:
		return true
	case config.InteractiveNever:
		return false
	default:
		return IsTerminal(in) && IsTerminal(out)
	}
}

// TerminalWidth returns the width of out when it is a terminal, or fallback.
func TerminalWidth(out any, fallback int) int {
	f, ok := out.(*os.File)
	if !ok {
		return fallback
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

func (m *Menu) clearScreen() {
	if !m.opts.ClearScreen {
		return
	}
	termenv.NewOutput(m.out).ClearScreen()
}
