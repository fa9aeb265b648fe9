package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/Iron-Ham/flashdeck/internal/errors"
	"github.com/Iron-Ham/flashdeck/internal/study"
	"github.com/Iron-Ham/flashdeck/internal/util"
)

// runLineStudy presents s with line prompts: Enter reveals the answer, then
// n, p, s or q navigate. It ends the session before returning. When input
// runs out the summary is returned together with io.EOF.
func (m *Menu) runLineStudy(ctx context.Context, s *study.Session) (study.Summary, error) {
	s.Start()
	notice := ""

	for s.Phase() != study.PhaseEnded {
		if ctx.Err() != nil {
			return s.Quit(), nil
		}

		switch s.Phase() {
		case study.PhaseQuestion:
			m.renderQuestion(s, notice)
			notice = ""
			input, err := m.in.ask(m.styles.Prompt.Render("Press Enter to reveal the answer (q to quit)... "))
			if err != nil {
				return s.Quit(), err
			}
			if study.ParseCommand(input) == study.CommandQuit {
				s.Quit()
				continue
			}
			s.Reveal()

		case study.PhaseAnswer:
			m.renderAnswer(s)
			input, err := m.in.ask(m.styles.Prompt.Render("Your choice: "))
			if err != nil {
				return s.Quit(), err
			}
			cmd := study.ParseCommand(input)
			if cmd == study.CommandReveal || !s.Apply(cmd) {
				m.printError(errors.NewValidationError("Unknown choice! Use n, p, s or q.").WithValue(input))
				continue
			}
			if cmd == study.CommandShuffle {
				notice = "Cards shuffled!"
			}
		}
	}
	return s.Summary(), nil
}

func (m *Menu) renderQuestion(s *study.Session, notice string) {
	m.clearScreen()
	m.header("📖 STUDYING: " + s.DeckName())
	if notice != "" {
		m.printSuccess(notice)
	}
	fmt.Fprintln(m.out)

	card := s.Current()
	fmt.Fprintf(m.out, "%s  %s\n",
		m.styles.Counter.Render(fmt.Sprintf("Card %d of %d", s.Cursor()+1, s.Len())),
		m.styles.Difficulty(card.Difficulty).Render("["+card.Difficulty.Label()+"]"))
	if s.TimerEnabled() {
		fmt.Fprintln(m.out, m.styles.Timer.Render("⏱  Timer: "+util.FormatClock(s.TimerSeconds())))
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.QuestionLabel.Render("QUESTION:"))
	fmt.Fprintln(m.out, card.Question)
	fmt.Fprintln(m.out)
}

func (m *Menu) renderAnswer(s *study.Session) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.AnswerLabel.Render("ANSWER:"))
	fmt.Fprintln(m.out, s.Current().Answer)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Rule.Render(strings.Repeat("-", HeaderWidth)))
	fmt.Fprintln(m.out, "[N]ext  [P]revious  [S]huffle  [Q]uit")
}

// announceTimesUp runs on the countdown goroutine.
func (m *Menu) announceTimesUp() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.TimesUp.Render("⏰ Time's up! Press Enter to see the answer."))
}
