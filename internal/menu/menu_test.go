package menu

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/flashdeck/internal/config"
	"github.com/Iron-Ham/flashdeck/internal/deck"
	"github.com/Iron-Ham/flashdeck/internal/store"
	"github.com/Iron-Ham/flashdeck/internal/study"
)

type harness struct {
	store *store.Store
	out   *bytes.Buffer
	menu  *Menu
}

func newHarness(t *testing.T, input string, opts Options) *harness {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "decks.json"))
	reg, err := st.Load(context.Background())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &harness{
		store: st,
		out:   out,
		menu:  New(strings.NewReader(input), out, st, reg, opts),
	}
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	require.NoError(t, h.menu.Run(context.Background()))
}

func (h *harness) reload(t *testing.T) *deck.Registry {
	t.Helper()
	reg, err := store.New(h.store.Path()).Load(context.Background())
	require.NoError(t, err)
	return reg
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{"1", CmdViewDecks, false},
		{" 6 ", CmdStudy, false},
		{"7", CmdSaveExit, false},
		{"0", 0, true},
		{"8", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_SaveAndExit(t *testing.T) {
	h := newHarness(t, "7\n", Options{})
	h.run(t)

	assert.Contains(t, h.out.String(), "FLASHCARD STUDY APP")
	assert.Contains(t, h.out.String(), "Your decks have been saved! Happy studying!")
	_, err := os.Stat(h.store.Path())
	require.NoError(t, err, "save & exit must write the decks file")
}

func TestRun_EOFExitsWithoutSaving(t *testing.T) {
	h := newHarness(t, "", Options{})
	h.run(t)

	_, err := os.Stat(h.store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestRun_InvalidChoiceRedisplaysMenu(t *testing.T) {
	h := newHarness(t, "9\n\n7\n", Options{})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Invalid choice! Please select 1-7.")
	assert.Equal(t, 2, strings.Count(out, "FLASHCARD STUDY APP"))
}

func TestRun_ViewDecks(t *testing.T) {
	h := newHarness(t, "1\n\n7\n", Options{})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Sample Deck")
	assert.Contains(t, out, "Total Cards: 3")
	assert.Contains(t, out, "Easy: 1 | Medium: 1 | Hard: 1")
}

func TestRun_CreateDeckSavesImmediately(t *testing.T) {
	h := newHarness(t, "2\n  Spanish  \n\n", Options{})
	h.run(t)

	assert.Contains(t, h.out.String(), "Deck 'Spanish' created successfully!")
	reg := h.reload(t)
	require.Equal(t, 2, reg.Len())
	d, err := reg.Deck(1)
	require.NoError(t, err)
	assert.Equal(t, "Spanish", d.Name)
	assert.Empty(t, d.Cards)
}

func TestRun_CreateDeckEmptyName(t *testing.T) {
	h := newHarness(t, "2\n   \n\n7\n", Options{})
	h.run(t)

	assert.Contains(t, h.out.String(), "Deck name cannot be empty!")
	assert.Equal(t, 1, h.reload(t).Len())
}

func TestRun_AddCard(t *testing.T) {
	h := newHarness(t, "3\n1\nWhat is 2+2?\n3\n4\n\n", Options{})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "ADD CARD TO: Sample Deck")
	assert.Contains(t, out, "Card added successfully!")

	d, err := h.reload(t).Deck(0)
	require.NoError(t, err)
	require.Len(t, d.Cards, 4)
	assert.Equal(t, deck.Card{Question: "What is 2+2?", Answer: "4", Difficulty: deck.Hard}, d.Cards[3])
}

func TestRun_AddCardUnknownDifficultyIsMedium(t *testing.T) {
	h := newHarness(t, "3\n1\nQ\n9\nA\n\n", Options{})
	h.run(t)

	d, err := h.reload(t).Deck(0)
	require.NoError(t, err)
	require.Len(t, d.Cards, 4)
	assert.Equal(t, deck.Medium, d.Cards[3].Difficulty)
}

func TestRun_AddCardEmptyQuestion(t *testing.T) {
	h := newHarness(t, "3\n1\n\n\n7\n", Options{})
	h.run(t)

	assert.Contains(t, h.out.String(), "Question cannot be empty!")
	d, err := h.reload(t).Deck(0)
	require.NoError(t, err)
	assert.Len(t, d.Cards, 3)
}

func TestRun_InvalidDeckNumber(t *testing.T) {
	h := newHarness(t, "3\n5\n\n7\n", Options{})
	h.run(t)
	assert.Contains(t, h.out.String(), "Invalid deck number! Choose 1-1")

	h = newHarness(t, "3\nabc\n\n7\n", Options{})
	h.run(t)
	assert.Contains(t, h.out.String(), "Please enter a valid number!")
}

func TestRun_DeleteCard(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t, "4\n1\n2\ny\n\n", Options{})
		h.run(t)

		assert.Contains(t, h.out.String(), "[MEDIUM]")
		assert.Contains(t, h.out.String(), "Card deleted successfully!")
		d, err := h.reload(t).Deck(0)
		require.NoError(t, err)
		require.Len(t, d.Cards, 2)
		assert.Equal(t, "Paris", d.Cards[0].Answer)
		assert.Equal(t, "A quantum phenomenon where particles become interconnected", d.Cards[1].Answer)
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t, "4\n1\n1\nn\n\n7\n", Options{})
		h.run(t)

		assert.Contains(t, h.out.String(), "Deletion cancelled.")
		d, err := h.reload(t).Deck(0)
		require.NoError(t, err)
		assert.Len(t, d.Cards, 3)
	})

	t.Run("empty deck", func(t *testing.T) {
		h := newHarness(t, "2\nEmpty\n\n4\n2\n\n7\n", Options{})
		h.run(t)
		assert.Contains(t, h.out.String(), "This deck has no cards!")
	})

	t.Run("invalid card number", func(t *testing.T) {
		h := newHarness(t, "4\n1\n4\n\n7\n", Options{})
		h.run(t)
		assert.Contains(t, h.out.String(), "Invalid card number! Choose 1-3")
	})
}

func TestRun_DeleteDeck(t *testing.T) {
	h := newHarness(t, "5\n1\nY\n\n", Options{})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Are you sure you want to delete 'Sample Deck' and ALL its cards? (y/n)")
	assert.Contains(t, out, "Deck deleted successfully!")
	assert.Equal(t, 0, h.reload(t).Len())
}

func TestRun_NoDecks(t *testing.T) {
	h := newHarness(t, "5\n1\ny\n\n3\n\n7\n", Options{})
	h.run(t)

	assert.Contains(t, h.out.String(), "No decks found! Create one to get started.")
	assert.Equal(t, 0, h.reload(t).Len())
}

func TestRun_StudyUsesRunner(t *testing.T) {
	var got []deck.Card
	var timer int
	runner := func(ctx context.Context, s *study.Session) (study.Summary, error) {
		s.Start()
		got = s.Cards()
		timer = s.TimerSeconds()
		s.Reveal()
		return s.Quit(), nil
	}

	h := newHarness(t, "6\n1\n5\n2\n\n7\n", Options{Runner: runner})
	h.run(t)

	require.Len(t, got, 2)
	assert.Equal(t, deck.Medium, got[0].Difficulty)
	assert.Equal(t, deck.Hard, got[1].Difficulty)
	assert.Equal(t, 30, timer)
	assert.Contains(t, h.out.String(), "Cards to study: 2")
	assert.Contains(t, h.out.String(), "Study session completed! Great work!")
	assert.Contains(t, h.out.String(), "1 card studied, 1 answer revealed")
}

func TestRun_StudyDefaultsAndReprompts(t *testing.T) {
	var cards, timer int
	runner := func(ctx context.Context, s *study.Session) (study.Summary, error) {
		cards = s.Len()
		timer = s.TimerSeconds()
		return s.Quit(), nil
	}

	h := newHarness(t, "6\n1\n9\n\nx\n\n\n7\n", Options{Runner: runner})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Invalid filter choice! Choose 1-6")
	assert.Contains(t, out, "Invalid timer choice! Choose 1-4")
	assert.Equal(t, 3, cards)
	assert.Equal(t, 0, timer)
}

func TestRun_StudyEmptyDeck(t *testing.T) {
	called := false
	runner := func(ctx context.Context, s *study.Session) (study.Summary, error) {
		called = true
		return s.Quit(), nil
	}

	h := newHarness(t, "2\nEmpty\n\n6\n2\n\n7\n", Options{Runner: runner})
	h.run(t)

	assert.Contains(t, h.out.String(), "This deck has no cards! Add some first.")
	assert.False(t, called)
}

func TestRun_StudyFilterWithoutMatches(t *testing.T) {
	called := false
	runner := func(ctx context.Context, s *study.Session) (study.Summary, error) {
		called = true
		return s.Quit(), nil
	}

	h := newHarness(t, "2\nEasy\n\n3\n2\nQ\n1\nA\n\n6\n2\n3\n\n7\n", Options{Runner: runner})
	h.run(t)

	assert.Contains(t, h.out.String(), "No cards match this filter!")
	assert.NotContains(t, h.out.String(), "STEP 2: SELECT TIMER")
	assert.False(t, called)
}

func TestRun_LineStudy(t *testing.T) {
	h := newHarness(t, "6\n1\n6\n4\n\nn\n\nq\n\n7\n", Options{})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Card 1 of 3")
	assert.Contains(t, out, "What is the capital of France?")
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "Card 2 of 3")
	assert.Contains(t, out, "180")
	assert.NotContains(t, out, "Card 3 of 3")
	assert.Contains(t, out, "2 cards studied, 2 answers revealed")
}

func TestRun_LineStudyNavigation(t *testing.T) {
	h := newHarness(t, "6\n1\n6\n4\n\np\n\nx\nq\n\n7\n", Options{})
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Card 3 of 3", "previous wraps to the last card")
	assert.Contains(t, out, "Unknown choice! Use n, p, s or q.")
}

func TestRun_LineStudyQuitBeforeReveal(t *testing.T) {
	h := newHarness(t, "6\n1\n1\n4\nq\n\n7\n", Options{})
	h.run(t)

	out := h.out.String()
	assert.NotContains(t, out, "ANSWER:")
	assert.Contains(t, out, "1 card studied, 0 answers revealed")
}

func TestRun_LineStudyShuffle(t *testing.T) {
	h := newHarness(t, "6\n1\n6\n4\n\ns\nq\n\n7\n", Options{})
	h.run(t)

	assert.Contains(t, h.out.String(), "Cards shuffled!")
}

func TestRun_LineStudyEOFEndsMenu(t *testing.T) {
	h := newHarness(t, "6\n1\n6\n4\n", Options{})
	h.run(t)

	assert.Contains(t, h.out.String(), "QUESTION:")
	assert.NotContains(t, h.out.String(), "Study session completed!")
}

func TestAnnounceTimesUp(t *testing.T) {
	h := newHarness(t, "", Options{})
	h.menu.announceTimesUp()
	assert.Contains(t, h.out.String(), "Time's up!")
}

func TestRun_PersistenceErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	st := store.New(filepath.Join(blocker, "decks.json"))
	reg := deck.NewRegistry(store.SampleDecks())
	m := New(strings.NewReader("2\nNew\n\n7\n"), &bytes.Buffer{}, st, reg, Options{})

	assert.Error(t, m.Run(context.Background()))
}

func TestRun_ChangedOnDiskWarning(t *testing.T) {
	h := newHarness(t, "", Options{})
	h.menu.changedOnDisk.Store(true)
	h.run(t)

	assert.Contains(t, h.out.String(), "The decks file changed on disk.")
}

func TestRun_CancelledContext(t *testing.T) {
	h := newHarness(t, "1\n\n", Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.menu.Run(ctx))
	assert.Empty(t, h.out.String())
}

func TestRenderDeckList(t *testing.T) {
	var buf bytes.Buffer
	RenderDeckList(&buf, nil, newHarness(t, "", Options{}).menu.styles)
	assert.Contains(t, buf.String(), "No decks found!")

	buf.Reset()
	decks := []deck.Deck{
		{Name: "A", Cards: []deck.Card{{Question: "q", Answer: "a", Difficulty: deck.Hard}}},
		{Name: "B"},
	}
	RenderDeckList(&buf, decks, newHarness(t, "", Options{}).menu.styles)
	out := buf.String()
	assert.Contains(t, out, "1. A")
	assert.Contains(t, out, "2. B")
	assert.Contains(t, out, "Easy: 0 | Medium: 0 | Hard: 1")
}

func TestResolveInteractive(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ResolveInteractive(config.InteractiveAlways, &buf, &buf))
	assert.False(t, ResolveInteractive(config.InteractiveNever, os.Stdin, os.Stdout))
	assert.False(t, ResolveInteractive(config.InteractiveAuto, &buf, &buf))
	assert.Equal(t, 80, TerminalWidth(&buf, 80))
}
