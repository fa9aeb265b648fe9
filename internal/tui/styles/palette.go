package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (headers, question label)
	Primary lipgloss.Color
	// Secondary accent color (answer label, success notices)
	Secondary lipgloss.Color
	// Accent color (card counter, prompts)
	Accent lipgloss.Color
	// Warning color (running countdown)
	Warning lipgloss.Color
	// Error color (errors, expired countdown)
	Error lipgloss.Color
	// Muted color (help text, de-emphasized text)
	Muted lipgloss.Color
	// Text color (card text)
	Text lipgloss.Color
	// Border color (card box)
	Border lipgloss.Color

	// Difficulty colors
	Easy   lipgloss.Color
	Medium lipgloss.Color
	Hard   lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Accent:    lipgloss.Color("#22D3EE"), // Cyan
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		Easy:   lipgloss.Color("#22C55E"),
		Medium: lipgloss.Color("#FBBF24"),
		Hard:   lipgloss.Color("#F87171"),
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Accent:    lipgloss.Color("#66D9EF"), // Monokai cyan
		Warning:   lipgloss.Color("#FD971F"), // Monokai orange
		Error:     lipgloss.Color("#F92672"),
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Text:      lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:    lipgloss.Color("#49483E"), // Monokai selection

		Easy:   lipgloss.Color("#A6E22E"),
		Medium: lipgloss.Color("#E6DB74"),
		Hard:   lipgloss.Color("#F92672"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Accent:    lipgloss.Color("#8BE9FD"), // Dracula cyan
		Warning:   lipgloss.Color("#FFB86C"), // Dracula orange
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection

		Easy:   lipgloss.Color("#50FA7B"),
		Medium: lipgloss.Color("#F1FA8C"),
		Hard:   lipgloss.Color("#FF5555"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Accent:    lipgloss.Color("#81A1C1"), // Nord frost blue
		Warning:   lipgloss.Color("#D08770"), // Nord aurora orange
		Error:     lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:     lipgloss.Color("#616E88"), // Nord polar night (lightened)
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1

		Easy:   lipgloss.Color("#A3BE8C"),
		Medium: lipgloss.Color("#EBCB8B"),
		Hard:   lipgloss.Color("#BF616A"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return DefaultPalette()
	}
}
