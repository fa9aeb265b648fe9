package deck

// Deck is a named, ordered collection of cards.
type Deck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Counts returns the number of cards at each difficulty.
func (d *Deck) Counts() map[Difficulty]int {
	counts := make(map[Difficulty]int, 3)
	for _, c := range d.Cards {
		counts[c.Difficulty]++
	}
	return counts
}

// clone returns a deep copy of the deck.
func (d Deck) clone() Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	return Deck{Name: d.Name, Cards: cards}
}
