package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/flashdeck/internal/deck"
)

// ThemedStyles contains all the lipgloss styles built from a color palette.
type ThemedStyles struct {
	Palette *ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Screen furniture
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Rule     lipgloss.Style

	// Card display
	CardBox       lipgloss.Style
	QuestionLabel lipgloss.Style
	AnswerLabel   lipgloss.Style
	Counter       lipgloss.Style

	// Countdown
	Timer    lipgloss.Style
	TimerLow lipgloss.Style
	TimesUp  lipgloss.Style

	// Help bar
	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
	WarningMsg lipgloss.Style

	// Menu
	MenuNumber lipgloss.Style
	Prompt     lipgloss.Style

	difficulty map[deck.Difficulty]lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		Palette: p,

		Primary:   lipgloss.NewStyle().Foreground(p.Primary),
		Secondary: lipgloss.NewStyle().Foreground(p.Secondary),
		Accent:    lipgloss.NewStyle().Foreground(p.Accent),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Text:      lipgloss.NewStyle().Foreground(p.Text),
	}

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)
	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Accent)
	s.Rule = lipgloss.NewStyle().
		Foreground(p.Primary)

	s.CardBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
	s.QuestionLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
	s.AnswerLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)
	s.Counter = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.Timer = lipgloss.NewStyle().
		Foreground(p.Warning)
	s.TimerLow = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Error)
	s.TimesUp = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Error)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)
	s.HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error)
	s.SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Secondary)
	s.WarningMsg = lipgloss.NewStyle().
		Foreground(p.Warning)

	s.MenuNumber = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
	s.Prompt = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.difficulty = map[deck.Difficulty]lipgloss.Style{
		deck.Easy:   lipgloss.NewStyle().Bold(true).Foreground(p.Easy),
		deck.Medium: lipgloss.NewStyle().Bold(true).Foreground(p.Medium),
		deck.Hard:   lipgloss.NewStyle().Bold(true).Foreground(p.Hard),
	}

	return s
}

// Difficulty returns the style used to tag a card of difficulty d.
// Unknown difficulties use the muted style.
func (s *ThemedStyles) Difficulty(d deck.Difficulty) lipgloss.Style {
	if style, ok := s.difficulty[d]; ok {
		return style
	}
	return s.Muted
}

// activeTheme holds the currently active themed styles.
var activeTheme *ThemedStyles

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
}

// SetActiveTheme updates the active theme to the specified theme name.
//
// Note: This function is not thread-safe. It is called once at startup,
// before the menu or the study screen render anything.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}
