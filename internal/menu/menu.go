// Package menu drives the numbered main menu: deck listing, deck and card
// management, and launching study sessions. Every change to the registry is
// persisted through the store before the menu is shown again.
package menu

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/flashdeck/internal/deck"
	"github.com/Iron-Ham/flashdeck/internal/errors"
	"github.com/Iron-Ham/flashdeck/internal/logging"
	"github.com/Iron-Ham/flashdeck/internal/store"
	"github.com/Iron-Ham/flashdeck/internal/study"
	"github.com/Iron-Ham/flashdeck/internal/tui/styles"
)

// HeaderWidth is the width of the "=" rules framing screen titles.
const HeaderWidth = 60

// Command identifies a main menu item.
type Command int

const (
	CmdViewDecks Command = iota + 1
	CmdCreateDeck
	CmdAddCard
	CmdDeleteCard
	CmdDeleteDeck
	CmdStudy
	CmdSaveExit
)

var commandLabels = map[Command]string{
	CmdViewDecks:  "View All Decks",
	CmdCreateDeck: "Create New Deck",
	CmdAddCard:    "Add Card to Deck",
	CmdDeleteCard: "Delete Card from Deck",
	CmdDeleteDeck: "Delete Entire Deck",
	CmdStudy:      "Study Deck",
	CmdSaveExit:   "Save & Exit",
}

// Commands returns the menu items in display order.
func Commands() []Command {
	return []Command{CmdViewDecks, CmdCreateDeck, CmdAddCard, CmdDeleteCard, CmdDeleteDeck, CmdStudy, CmdSaveExit}
}

func (c Command) String() string {
	if l, ok := commandLabels[c]; ok {
		return l
	}
	return "Unknown"
}

// ParseCommand maps a typed menu number to its command.
func ParseCommand(input string) (Command, error) {
	c, err := deck.SelectIndex(input, len(Commands()), "option")
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("Invalid choice! Please select 1-%d.", len(Commands()))).
			WithField("menu").
			WithValue(input).
			WithCause(err)
	}
	return Commands()[c], nil
}

// StudyRunner presents a prepared session and returns its summary.
type StudyRunner func(ctx context.Context, s *study.Session) (study.Summary, error)

// Options configures a Menu.
type Options struct {
	// ClearScreen clears the terminal before each screen.
	ClearScreen bool
	// Watch warns when the decks file is changed by another program.
	Watch bool
	// Runner presents study sessions. Nil uses line prompts.
	Runner StudyRunner
	// TimerTick overrides the countdown resolution.
	TimerTick time.Duration
	Logger    *logging.Logger
}

// Menu is the interactive main menu over a registry and its store.
type Menu struct {
	in     *prompter
	out    io.Writer
	store  *store.Store
	reg    *deck.Registry
	styles *styles.ThemedStyles
	logger *logging.Logger
	opts   Options

	changedOnDisk atomic.Bool
}

// New creates a menu reading replies from in and writing screens to out.
func New(in io.Reader, out io.Writer, st *store.Store, reg *deck.Registry, opts Options) *Menu {
	w := &syncWriter{w: out}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Menu{
		in:     newPrompter(in, w),
		out:    w,
		store:  st,
		reg:    reg,
		styles: styles.GetActiveTheme(),
		logger: logger.WithComponent("menu"),
		opts:   opts,
	}
}

// Registry returns the registry the menu edits.
func (m *Menu) Registry() *deck.Registry {
	return m.reg
}

// Run shows the menu until the user saves and exits, input ends or ctx is
// cancelled. Only persistence failures are returned; input mistakes are
// reported on screen and the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	if m.opts.Watch {
		w, err := m.store.Watch(ctx, func() {
			m.logger.Warn("decks file changed on disk", "path", m.store.Path())
			m.changedOnDisk.Store(true)
		})
		if err != nil {
			m.logger.Warn("file watch unavailable", "error", err)
		} else {
			defer w.Stop()
		}
	}

	actions := map[Command]func(context.Context) error{
		CmdViewDecks:  m.viewDecks,
		CmdCreateDeck: m.createDeck,
		CmdAddCard:    m.addCard,
		CmdDeleteCard: m.deleteCard,
		CmdDeleteDeck: m.deleteDeck,
		CmdStudy:      m.studyDeck,
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.renderMenu()
		input, err := m.in.ask(m.styles.Prompt.Render(fmt.Sprintf("Select option (1-%d): ", len(Commands()))))
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading menu choice")
		}

		cmd, err := ParseCommand(input)
		if err != nil {
			m.logger.Debug("invalid menu choice", "input", input)
			m.printError(err)
			if err := m.pause(); err != nil {
				return nil
			}
			continue
		}
		m.logger.Info("menu command", "command", cmd.String())

		if cmd == CmdSaveExit {
			if err := m.save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, m.styles.SuccessMsg.Render("Your decks have been saved! Happy studying! 📚✨"))
			return nil
		}

		err = actions[cmd](ctx)
		switch {
		case err == nil:
		case err == io.EOF:
			return nil
		case errors.Is(err, errAborted):
		case errors.IsRecoverable(err):
			m.printError(err)
			if err := m.pause(); err != nil {
				return nil
			}
		default:
			return err
		}
	}
}

// errAborted returns to the menu without a further message.
var errAborted = errors.New("aborted")

func (m *Menu) renderMenu() {
	m.clearScreen()
	m.header("📚 FLASHCARD STUDY APP")
	if m.changedOnDisk.Load() {
		fmt.Fprintln(m.out, m.styles.WarningMsg.Render("⚠ The decks file changed on disk. Saving will overwrite those edits."))
	}
	fmt.Fprintln(m.out)
	for _, c := range Commands() {
		fmt.Fprintf(m.out, "%s %s\n", m.styles.MenuNumber.Render(fmt.Sprintf("%d.", int(c))), c.String())
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) header(title string) {
	rule := m.styles.Rule.Render(strings.Repeat("=", HeaderWidth))
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, m.styles.Header.Render(lipgloss.PlaceHorizontal(HeaderWidth, lipgloss.Center, title)))
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) printError(err error) {
	fmt.Fprintln(m.out, m.styles.ErrorMsg.Render("❌ "+errors.UserMessage(err)))
}

func (m *Menu) printSuccess(msg string) {
	fmt.Fprintln(m.out, m.styles.SuccessMsg.Render("✓ "+msg))
}

// pause waits for Enter. It returns io.EOF when input has ended.
func (m *Menu) pause() error {
	_, err := m.in.ask("\nPress Enter to continue...")
	return err
}

func (m *Menu) save(ctx context.Context) error {
	if err := m.store.Save(ctx, m.reg); err != nil {
		m.logger.Error("save failed", "error", err)
		return err
	}
	m.changedOnDisk.Store(false)
	return nil
}
