// Package util provides small formatting helpers shared by the menu and the
// study screen.
package util

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates s to maxWidth visual columns, adding "..." when
// truncated. Escape sequences and wide characters are measured correctly, so
// styled card text can be clipped to the terminal width.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// Rule returns a horizontal line of ch repeated to width columns.
func Rule(ch string, width int) string {
	if width <= 0 || ch == "" {
		return ""
	}
	return strings.Repeat(ch, width)
}

// FormatClock renders a number of seconds as M:SS. Negative values render as 0:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Plural returns singular when n is 1 and singular+"s" otherwise.
func Plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
