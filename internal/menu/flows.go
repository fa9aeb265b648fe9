package menu

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/flashdeck/internal/deck"
	"github.com/Iron-Ham/flashdeck/internal/errors"
	"github.com/Iron-Ham/flashdeck/internal/study"
	"github.com/Iron-Ham/flashdeck/internal/tui/styles"
	"github.com/Iron-Ham/flashdeck/internal/util"
)

// RenderDeckList writes the numbered deck listing with per-difficulty counts.
func RenderDeckList(w io.Writer, decks []deck.Deck, st *styles.ThemedStyles) {
	if len(decks) == 0 {
		fmt.Fprintln(w, st.WarningMsg.Render("No decks found! Create one to get started."))
		return
	}
	for i, d := range decks {
		counts := d.Counts()
		fmt.Fprintf(w, "%s %s\n", st.MenuNumber.Render(fmt.Sprintf("%d.", i+1)), st.Title.UnsetMarginBottom().Render(util.TruncateANSI(d.Name, HeaderWidth-4)))
		fmt.Fprintf(w, "   Total Cards: %d\n", d.Len())
		fmt.Fprintf(w, "   %s: %d | %s: %d | %s: %d\n",
			st.Difficulty(deck.Easy).Render("Easy"), counts[deck.Easy],
			st.Difficulty(deck.Medium).Render("Medium"), counts[deck.Medium],
			st.Difficulty(deck.Hard).Render("Hard"), counts[deck.Hard])
		fmt.Fprintln(w)
	}
}

func (m *Menu) viewDecks(ctx context.Context) error {
	m.clearScreen()
	m.header("📚 YOUR DECKS")
	fmt.Fprintln(m.out)
	RenderDeckList(m.out, m.reg.Decks(), m.styles)
	return m.pause()
}

func (m *Menu) createDeck(ctx context.Context) error {
	m.clearScreen()
	m.header("➕ CREATE NEW DECK")
	fmt.Fprintln(m.out)

	name, err := m.in.ask(m.styles.Prompt.Render("Enter deck name: "))
	if err != nil {
		return err
	}
	if err := m.reg.CreateDeck(name); err != nil {
		return err
	}
	if err := m.save(ctx); err != nil {
		return err
	}
	m.logger.Info("deck created", "deck", strings.TrimSpace(name))
	m.printSuccess(fmt.Sprintf("Deck '%s' created successfully!", strings.TrimSpace(name)))
	return m.pause()
}

// selectDeck lists decks and reads a deck number. With no decks it shows the
// empty listing, waits for Enter and returns errAborted.
func (m *Menu) selectDeck(title, prompt string) (int, error) {
	m.clearScreen()
	m.header(title)
	fmt.Fprintln(m.out)

	decks := m.reg.Decks()
	RenderDeckList(m.out, decks, m.styles)
	if len(decks) == 0 {
		if err := m.pause(); err != nil {
			return 0, err
		}
		return 0, errAborted
	}

	input, err := m.in.ask(m.styles.Prompt.Render(fmt.Sprintf("%s (1-%d): ", prompt, len(decks))))
	if err != nil {
		return 0, err
	}
	return deck.SelectIndex(input, len(decks), "deck")
}

func (m *Menu) addCard(ctx context.Context) error {
	idx, err := m.selectDeck("➕ ADD CARD", "Select deck")
	if err != nil {
		return err
	}
	d, err := m.reg.Deck(idx)
	if err != nil {
		return err
	}

	m.clearScreen()
	m.header("ADD CARD TO: " + d.Name)
	fmt.Fprintln(m.out)

	fmt.Fprintln(m.out, m.styles.Subtitle.Render("Step 1: Enter Question"))
	question, err := m.in.ask(m.styles.Prompt.Render("Question: "))
	if err != nil {
		return err
	}
	if strings.TrimSpace(question) == "" {
		return errors.NewValidationError("Question cannot be empty!").WithField("question")
	}

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Subtitle.Render("Step 2: Choose Difficulty"))
	for i, lvl := range deck.Difficulties() {
		fmt.Fprintf(m.out, "%s %s\n", m.styles.MenuNumber.Render(fmt.Sprintf("%d.", i+1)),
			m.styles.Difficulty(lvl).Render(strings.ToUpper(lvl.String()[:1])+lvl.String()[1:]))
	}
	selector, err := m.in.ask(m.styles.Prompt.Render("Difficulty (1-3): "))
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Subtitle.Render("Step 3: Enter Answer"))
	answer, err := m.in.ask(m.styles.Prompt.Render("Answer: "))
	if err != nil {
		return err
	}

	card, err := m.reg.AddCard(idx, question, answer, selector)
	if err != nil {
		return err
	}
	if err := m.save(ctx); err != nil {
		return err
	}
	m.logger.Info("card added", "deck", d.Name, "difficulty", card.Difficulty.String())
	fmt.Fprintln(m.out)
	m.printSuccess("Card added successfully!")
	return m.pause()
}

func (m *Menu) deleteCard(ctx context.Context) error {
	idx, err := m.selectDeck("🗑️  DELETE CARD", "Select deck")
	if err != nil {
		return err
	}
	d, err := m.reg.Deck(idx)
	if err != nil {
		return err
	}
	if d.Len() == 0 {
		return errors.NewEmptyCollectionError("deck", d.Name).WithMessage("This deck has no cards!")
	}

	m.clearScreen()
	m.header("CARDS IN: " + d.Name)
	fmt.Fprintln(m.out)
	for i, c := range d.Cards {
		m.renderCardEntry(i+1, c)
	}

	input, err := m.in.ask(m.styles.Prompt.Render(fmt.Sprintf("Select card to delete (1-%d): ", d.Len())))
	if err != nil {
		return err
	}
	cardIdx, err := deck.SelectIndex(input, d.Len(), "card")
	if err != nil {
		return err
	}

	var promptErr error
	deleted, err := m.reg.DeleteCard(idx, cardIdx, func(c deck.Card) bool {
		fmt.Fprintln(m.out)
		fmt.Fprintf(m.out, "Q: %s\n", c.Question)
		ok, err := m.confirm("Delete this card? (y/n): ")
		promptErr = err
		return ok
	})
	if promptErr != nil {
		return promptErr
	}
	if err != nil {
		return err
	}
	return m.finishDelete(ctx, deleted, "Card deleted successfully!", "card deleted", "deck", d.Name)
}

func (m *Menu) deleteDeck(ctx context.Context) error {
	idx, err := m.selectDeck("🗑️  DELETE DECK", "Select deck to delete")
	if err != nil {
		return err
	}

	var promptErr error
	var name string
	deleted, err := m.reg.DeleteDeck(idx, func(d deck.Deck) bool {
		name = d.Name
		fmt.Fprintln(m.out)
		ok, err := m.confirm(fmt.Sprintf("Are you sure you want to delete '%s' and ALL its cards? (y/n): ", d.Name))
		promptErr = err
		return ok
	})
	if promptErr != nil {
		return promptErr
	}
	if err != nil {
		return err
	}
	return m.finishDelete(ctx, deleted, "Deck deleted successfully!", "deck deleted", "deck", name)
}

func (m *Menu) finishDelete(ctx context.Context, deleted bool, success, logMsg string, args ...any) error {
	if !deleted {
		fmt.Fprintln(m.out, m.styles.Muted.Render("Deletion cancelled."))
		return m.pause()
	}
	if err := m.save(ctx); err != nil {
		return err
	}
	m.logger.Info(logMsg, args...)
	m.printSuccess(success)
	return m.pause()
}

func (m *Menu) renderCardEntry(n int, c deck.Card) {
	label := m.styles.Difficulty(c.Difficulty).Render("[" + c.Difficulty.Label() + "]")
	fmt.Fprintf(m.out, "%s %s\n", m.styles.MenuNumber.Render(fmt.Sprintf("%d.", n)), label)
	fmt.Fprintf(m.out, "   Q: %s\n", c.Question)
	fmt.Fprintf(m.out, "   A: %s\n", c.Answer)
	fmt.Fprintln(m.out)
}

// confirm accepts only "y" (any case) as yes.
func (m *Menu) confirm(prompt string) (bool, error) {
	reply, err := m.in.ask(m.styles.Prompt.Render(prompt))
	if err != nil {
		return false, err
	}
	return strings.EqualFold(reply, "y"), nil
}

func (m *Menu) studyDeck(ctx context.Context) error {
	idx, err := m.selectDeck("📖 STUDY DECK", "Select deck to study")
	if err != nil {
		return err
	}
	d, err := m.reg.Deck(idx)
	if err != nil {
		return err
	}
	if d.Len() == 0 {
		return errors.NewEmptyCollectionError("deck", d.Name).WithMessage("This deck has no cards! Add some first.")
	}

	filter, err := m.chooseFilter(d)
	if err != nil {
		return err
	}
	matching := filter.Apply(d.Cards)
	if len(matching) == 0 {
		return errors.NewEmptyCollectionError("filter", filter.String()).WithMessage("No cards match this filter!")
	}

	seconds, err := m.chooseTimer(d.Name, len(matching))
	if err != nil {
		return err
	}

	runner := m.opts.Runner
	sessionOpts := []study.SessionOption{study.WithLogger(m.logger)}
	if m.opts.TimerTick > 0 {
		sessionOpts = append(sessionOpts, study.WithTimerTick(m.opts.TimerTick))
	}
	if runner == nil {
		runner = m.runLineStudy
		sessionOpts = append(sessionOpts, study.WithExpireHook(m.announceTimesUp))
	}

	s, err := study.NewSession(d.Name, d.Cards, filter, seconds, sessionOpts...)
	if err != nil {
		return err
	}
	summary, err := runner(ctx, s)
	if err != nil {
		return err
	}

	m.logger.Info("study session finished",
		"deck", summary.Deck, "cards", summary.Cards, "shown", summary.Shown,
		"reveals", summary.Reveals, "shuffles", summary.Shuffles)
	m.clearScreen()
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.SuccessMsg.Render("Study session completed! Great work! 🎉"))
	fmt.Fprintf(m.out, "%d %s studied, %d %s revealed\n",
		summary.Shown, util.Plural(summary.Shown, "card"), summary.Reveals, util.Plural(summary.Reveals, "answer"))
	return m.pause()
}

// chooseFilter re-prompts until a valid filter is chosen. Blank means all.
func (m *Menu) chooseFilter(d deck.Deck) (deck.Filter, error) {
	m.clearScreen()
	m.header("STUDYING: " + d.Name)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Subtitle.Render("STEP 1: FILTER BY DIFFICULTY"))
	counts := d.Counts()
	for _, f := range deck.Filters() {
		n := 0
		for _, lvl := range f.Levels() {
			n += counts[lvl]
		}
		fmt.Fprintf(m.out, "%s %s (%d %s)\n", m.styles.MenuNumber.Render(fmt.Sprintf("%d.", int(f))), f.String(), n, util.Plural(n, "card"))
	}
	fmt.Fprintln(m.out)

	for {
		input, err := m.in.ask(m.styles.Prompt.Render(fmt.Sprintf("Select filter (1-%d) [%d]: ", len(deck.Filters()), int(deck.FilterAll))))
		if err != nil {
			return 0, err
		}
		f, err := deck.ParseFilterChoice(input)
		if err == nil {
			return f, nil
		}
		m.printError(err)
	}
}

// chooseTimer re-prompts until a valid timer is chosen. Blank means no timer.
func (m *Menu) chooseTimer(name string, cards int) (int, error) {
	m.clearScreen()
	m.header("STUDYING: " + name)
	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "Cards to study: %d\n\n", cards)
	fmt.Fprintln(m.out, m.styles.Subtitle.Render("STEP 2: SELECT TIMER"))
	choices := study.TimerChoices()
	for _, c := range choices {
		fmt.Fprintf(m.out, "%s %s\n", m.styles.MenuNumber.Render(c.Key+"."), c.Label)
	}
	fmt.Fprintln(m.out)

	for {
		input, err := m.in.ask(m.styles.Prompt.Render(fmt.Sprintf("Select timer (1-%d) [%s]: ", len(choices), choices[len(choices)-1].Key)))
		if err != nil {
			return 0, err
		}
		seconds, err := study.ParseTimerChoice(input)
		if err == nil {
			return seconds, nil
		}
		m.printError(err)
	}
}
