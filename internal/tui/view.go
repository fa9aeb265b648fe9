package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/flashdeck/internal/study"
	"github.com/Iron-Ham/flashdeck/internal/tui/keymap"
	"github.com/Iron-Ham/flashdeck/internal/util"
)

// lowTimeThreshold is the remaining seconds at which the countdown turns red.
const lowTimeThreshold = 5

// View renders the study screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.contentWidth()
	st := m.styles
	card := m.session.Current()

	var b strings.Builder

	header := util.TruncateANSI("📖 STUDYING: "+m.session.DeckName(), width)
	b.WriteString(st.Header.Render(header))
	b.WriteString("\n")
	b.WriteString(st.Rule.Render(util.Rule("─", width)))
	b.WriteString("\n\n")

	counter := fmt.Sprintf("Card %d of %d", m.session.Cursor()+1, m.session.Len())
	tag := st.Difficulty(card.Difficulty).Render(card.Difficulty.Label())
	b.WriteString(st.Counter.Render(counter) + "  " + tag)
	if timer := m.renderTimer(); timer != "" {
		b.WriteString("  " + timer)
	}
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(width - 6)
	var cardText strings.Builder
	cardText.WriteString(st.QuestionLabel.Render("QUESTION"))
	cardText.WriteString("\n")
	cardText.WriteString(body.Render(card.Question))
	if m.session.Phase() == study.PhaseAnswer {
		cardText.WriteString("\n\n")
		cardText.WriteString(st.AnswerLabel.Render("ANSWER"))
		cardText.WriteString("\n")
		cardText.WriteString(body.Render(card.Answer))
	}
	b.WriteString(st.CardBox.Width(width).Render(cardText.String()))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(st.SuccessMsg.Render(m.notice))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString(m.renderHelpBar())
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) contentWidth() int {
	const maxWidth = 72
	w := m.width - 2
	if w > maxWidth {
		w = maxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderTimer() string {
	if !m.session.TimerEnabled() {
		return ""
	}
	st := m.styles

	switch m.session.TimerState() {
	case study.TimerRunning:
		remaining := m.session.Remaining()
		style := st.Timer
		if remaining <= lowTimeThreshold {
			style = st.TimerLow
		}
		return style.Render("⏱  " + util.FormatClock(remaining))
	case study.TimerExpired:
		return st.TimesUp.Render("⏰ Time's up!")
	default:
		return ""
	}
}

func (m Model) renderHelpBar() string {
	st := m.styles
	var parts []string
	for _, e := range m.keys.Help(m.mode(), 2) {
		parts = append(parts, st.HelpKey.Render(e.Keys)+" "+st.HelpDesc.Render(e.Description))
	}
	return st.HelpBar.Render(strings.Join(parts, st.HelpDesc.Render(" • ")))
}

func (m Model) renderFullHelp() string {
	st := m.styles
	var b strings.Builder

	sections := []struct {
		title string
		mode  keymap.Mode
	}{
		{"Question", keymap.ModeQuestion},
		{"Answer", keymap.ModeAnswer},
	}
	for _, sec := range sections {
		b.WriteString(st.Subtitle.Render(sec.title))
		b.WriteString("\n")
		for _, e := range m.keys.Help(sec.mode, 0) {
			fmt.Fprintf(&b, "  %s  %s\n", st.HelpKey.Render(fmt.Sprintf("%-18s", e.Keys)), st.HelpDesc.Render(e.Description))
		}
	}
	b.WriteString(st.HelpBar.Render(st.HelpKey.Render("?/esc") + " " + st.HelpDesc.Render("close help")))
	return b.String()
}
