package study

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/Iron-Ham/flashdeck/internal/deck"
	"github.com/Iron-Ham/flashdeck/internal/errors"
	"github.com/Iron-Ham/flashdeck/internal/logging"
)

// Phase is where the session is in presenting the current card.
type Phase int

// Phases
const (
	PhaseReady Phase = iota
	PhaseQuestion
	PhaseAnswer
	PhaseEnded
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseQuestion:
		return "question"
	case PhaseAnswer:
		return "answer"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Summary describes a finished session.
type Summary struct {
	Deck     string
	Cards    int
	Shown    int
	Reveals  int
	Shuffles int
}

// Session navigates a working copy of a deck's filtered cards.
type Session struct {
	deckName     string
	filter       deck.Filter
	cards        []deck.Card
	cursor       int
	phase        Phase
	timerSeconds int
	timer        *Countdown
	shuffle      func(n int, swap func(i, j int))
	logger       *logging.Logger

	shown    int
	reveals  int
	shuffles int
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	tick     time.Duration
	onExpire func()
	rng      *rand.Rand
	logger   *logging.Logger
}

// WithTimerTick sets the countdown resolution.
func WithTimerTick(d time.Duration) SessionOption {
	return func(o *sessionOptions) { o.tick = d }
}

// WithExpireHook runs fn on the timer goroutine whenever a card's countdown
// reaches zero.
func WithExpireHook(fn func()) SessionOption {
	return func(o *sessionOptions) { o.onExpire = fn }
}

// WithRand sets the random source used by Shuffle.
func WithRand(r *rand.Rand) SessionOption {
	return func(o *sessionOptions) { o.rng = r }
}

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) SessionOption {
	return func(o *sessionOptions) { o.logger = l }
}

// NewSession filters cards into a session-local copy. It fails with an
// EmptyCollectionError when nothing matches and with a ValidationError for a
// timer length that is not offered. The caller's slice is never modified.
func NewSession(deckName string, cards []deck.Card, filter deck.Filter, timerSeconds int, opts ...SessionOption) (*Session, error) {
	if !ValidTimerSeconds(timerSeconds) {
		return nil, errors.NewValidationError("timer must be 0, 10, 30 or 60 seconds").
			WithField("timer").
			WithValue(timerSeconds)
	}

	working := filter.Apply(cards)
	if len(working) == 0 {
		return nil, errors.NewEmptyCollectionError("filter", filter.String()).
			WithMessage("No cards match this filter!")
	}

	o := sessionOptions{tick: DefaultTick}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		deckName:     deckName,
		filter:       filter,
		cards:        working,
		timerSeconds: timerSeconds,
		timer:        NewCountdown(WithTick(o.tick), WithOnExpire(o.onExpire)),
		shuffle:      rand.Shuffle,
		logger:       logging.NopLogger(),
	}
	if o.rng != nil {
		s.shuffle = o.rng.Shuffle
	}
	if o.logger != nil {
		s.logger = o.logger.WithComponent("study").WithDeck(deckName).WithSession(newSessionID())
	}
	return s, nil
}

// newSessionID returns a short random identifier that groups a session's log lines.
func newSessionID() string {
	return strconv.FormatUint(rand.Uint64()>>16, 36)
}

// Start presents the first card. It has no effect once the session started.
func (s *Session) Start() {
	if s.phase != PhaseReady {
		return
	}
	s.logger.Info("study session started",
		"cards", len(s.cards),
		"filter", s.filter.String(),
		"timer_seconds", s.timerSeconds)
	s.present(0)
}

// Reveal stops the countdown and shows the answer.
func (s *Session) Reveal() {
	if s.phase != PhaseQuestion {
		return
	}
	s.timer.Cancel()
	s.phase = PhaseAnswer
	s.reveals++
	s.logger.Debug("answer revealed", "cursor", s.cursor, "remaining", s.timer.Remaining())
}

// Next moves to the following card, wrapping to the first.
func (s *Session) Next() {
	if s.phase != PhaseAnswer {
		return
	}
	s.present((s.cursor + 1) % len(s.cards))
}

// Previous moves to the preceding card, wrapping to the last.
func (s *Session) Previous() {
	if s.phase != PhaseAnswer {
		return
	}
	n := len(s.cards)
	s.present((s.cursor - 1 + n) % n)
}

// Shuffle randomly reorders the working copy and restarts at the first card.
// The deck the session was built from is untouched.
func (s *Session) Shuffle() {
	if s.phase != PhaseAnswer {
		return
	}
	s.timer.Cancel()
	s.shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.shuffles++
	s.logger.Debug("cards shuffled")
	s.present(0)
}

// Quit stops the countdown, waits for its goroutine and ends the session.
// Calling it again returns the same summary.
func (s *Session) Quit() Summary {
	if s.phase != PhaseEnded {
		s.timer.Cancel()
		s.timer.Wait()
		s.phase = PhaseEnded
		s.logger.Info("study session ended",
			"shown", s.shown,
			"reveals", s.reveals,
			"shuffles", s.shuffles)
	}
	return s.Summary()
}

// Apply performs cmd. Navigation is only honored once the answer is shown;
// while the question is up only Reveal and Quit act. It reports whether the
// command changed the session.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case CommandQuit:
		if s.phase == PhaseEnded {
			return false
		}
		s.Quit()
		return true
	case CommandReveal:
		if s.phase != PhaseQuestion {
			return false
		}
		s.Reveal()
		return true
	case CommandNext, CommandPrevious, CommandShuffle:
		if s.phase != PhaseAnswer {
			return false
		}
		switch cmd {
		case CommandNext:
			s.Next()
		case CommandPrevious:
			s.Previous()
		default:
			s.Shuffle()
		}
		return true
	default:
		return false
	}
}

func (s *Session) present(index int) {
	s.cursor = index
	s.phase = PhaseQuestion
	s.shown++
	if s.timerSeconds > 0 {
		s.timer.Start(s.timerSeconds)
	}
}

// Summary returns the session counters so far.
func (s *Session) Summary() Summary {
	return Summary{
		Deck:     s.deckName,
		Cards:    len(s.cards),
		Shown:    s.shown,
		Reveals:  s.reveals,
		Shuffles: s.shuffles,
	}
}

// Current returns the card under the cursor.
func (s *Session) Current() deck.Card {
	return s.cards[s.cursor]
}

// Cursor returns the 0-based position of the current card.
func (s *Session) Cursor() int {
	return s.cursor
}

// Len returns the number of cards in the session.
func (s *Session) Len() int {
	return len(s.cards)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// DeckName returns the name of the deck being studied.
func (s *Session) DeckName() string {
	return s.deckName
}

// Filter returns the difficulty filter the session was built with.
func (s *Session) Filter() deck.Filter {
	return s.filter
}

// TimerEnabled reports whether cards are timed.
func (s *Session) TimerEnabled() bool {
	return s.timerSeconds > 0
}

// TimerSeconds returns the per-card countdown length.
func (s *Session) TimerSeconds() int {
	return s.timerSeconds
}

// Remaining returns the seconds left on the current card's countdown.
func (s *Session) Remaining() int {
	return s.timer.Remaining()
}

// TimerState returns the state of the current card's countdown.
func (s *Session) TimerState() TimerState {
	return s.timer.State()
}

// Cards returns a copy of the working cards in session order.
func (s *Session) Cards() []deck.Card {
	out := make([]deck.Card, len(s.cards))
	copy(out, s.cards)
	return out
}
