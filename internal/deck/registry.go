package deck

import (
	"strings"

	"github.com/Iron-Ham/flashdeck/internal/errors"
)

// Registry is the ordered list of decks loaded from the store.
// It is not safe for concurrent use; the menu owns it.
type Registry struct {
	decks []Deck
}

// NewRegistry creates a registry holding the given decks in order.
// Nil card slices are normalized to empty ones.
func NewRegistry(decks []Deck) *Registry {
	r := &Registry{decks: make([]Deck, 0, len(decks))}
	for _, d := range decks {
		if d.Cards == nil {
			d.Cards = []Card{}
		}
		r.decks = append(r.decks, d)
	}
	return r
}

// Len returns the number of decks.
func (r *Registry) Len() int {
	return len(r.decks)
}

// Decks returns a deep copy of every deck, in order.
func (r *Registry) Decks() []Deck {
	out := make([]Deck, len(r.decks))
	for i, d := range r.decks {
		out[i] = d.clone()
	}
	return out
}

// Deck returns a copy of the deck at the 0-based index.
func (r *Registry) Deck(index int) (Deck, error) {
	if err := r.checkDeck(index); err != nil {
		return Deck{}, err
	}
	return r.decks[index].clone(), nil
}

// CreateDeck appends a new empty deck. Names are trimmed; an empty name is
// rejected. Duplicate names are allowed.
func (r *Registry) CreateDeck(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("Deck name cannot be empty!").WithField("name")
	}
	r.decks = append(r.decks, Deck{Name: name, Cards: []Card{}})
	return nil
}

// AddCard appends a card to the deck at deckIndex. The selector picks the
// difficulty (see DifficultyFromSelector).
func (r *Registry) AddCard(deckIndex int, question, answer, selector string) (Card, error) {
	if err := r.checkDeck(deckIndex); err != nil {
		return Card{}, err
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return Card{}, errors.NewValidationError("Question cannot be empty!").WithField("question")
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return Card{}, errors.NewValidationError("Answer cannot be empty!").WithField("answer")
	}

	card := Card{
		Question:   question,
		Answer:     answer,
		Difficulty: DifficultyFromSelector(selector),
	}
	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	r.decks[deckIndex].Cards = append(r.decks[deckIndex].Cards, card)
	return card, nil
}

// DeleteCard removes a card after confirm approves it. It reports whether the
// card was removed; a declined confirmation leaves the deck untouched.
func (r *Registry) DeleteCard(deckIndex, cardIndex int, confirm func(Card) bool) (bool, error) {
	if err := r.checkDeck(deckIndex); err != nil {
		return false, err
	}

	d := &r.decks[deckIndex]
	if len(d.Cards) == 0 {
		return false, errors.NewEmptyCollectionError("deck", d.Name).
			WithMessage("This deck has no cards!")
	}
	if cardIndex < 0 || cardIndex >= len(d.Cards) {
		return false, errors.NewIndexError("card", cardIndex+1, len(d.Cards))
	}

	if confirm == nil || !confirm(d.Cards[cardIndex]) {
		return false, nil
	}

	d.Cards = append(d.Cards[:cardIndex], d.Cards[cardIndex+1:]...)
	return true, nil
}

// DeleteDeck removes a deck and all of its cards after confirm approves it.
func (r *Registry) DeleteDeck(deckIndex int, confirm func(Deck) bool) (bool, error) {
	if err := r.checkDeck(deckIndex); err != nil {
		return false, err
	}

	if confirm == nil || !confirm(r.decks[deckIndex].clone()) {
		return false, nil
	}

	r.decks = append(r.decks[:deckIndex], r.decks[deckIndex+1:]...)
	return true, nil
}

func (r *Registry) checkDeck(index int) error {
	if index < 0 || index >= len(r.decks) {
		return errors.NewIndexError("deck", index+1, len(r.decks))
	}
	return nil
}
