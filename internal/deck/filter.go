package deck

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/flashdeck/internal/errors"
)

// Filter selects which difficulties take part in a study session.
type Filter int

// Filters in menu order
const (
	FilterEasy Filter = iota + 1
	FilterMedium
	FilterHard
	FilterEasyMedium
	FilterMediumHard
	FilterAll
)

var filterLevels = map[Filter][]Difficulty{
	FilterEasy:       {Easy},
	FilterMedium:     {Medium},
	FilterHard:       {Hard},
	FilterEasyMedium: {Easy, Medium},
	FilterMediumHard: {Medium, Hard},
	FilterAll:        {Easy, Medium, Hard},
}

var filterNames = map[Filter]string{
	FilterEasy:       "Easy only",
	FilterMedium:     "Medium only",
	FilterHard:       "Hard only",
	FilterEasyMedium: "Easy + Medium",
	FilterMediumHard: "Medium + Hard",
	FilterAll:        "All difficulties",
}

// Filters returns every filter in menu order.
func Filters() []Filter {
	return []Filter{FilterEasy, FilterMedium, FilterHard, FilterEasyMedium, FilterMediumHard, FilterAll}
}

// String returns the menu label.
func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Levels returns the difficulties the filter admits.
func (f Filter) Levels() []Difficulty {
	return filterLevels[f]
}

// Admits reports whether a card of difficulty d passes the filter.
func (f Filter) Admits(d Difficulty) bool {
	for _, l := range filterLevels[f] {
		if l == d {
			return true
		}
	}
	return false
}

// Apply returns the matching cards in their original order. The result is
// always a new slice, so callers may reorder it freely.
func (f Filter) Apply(cards []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if f.Admits(c.Difficulty) {
			out = append(out, c)
		}
	}
	return out
}

// ParseFilterChoice maps the menu choices "1".."6" to a filter. A blank entry
// selects FilterAll.
func ParseFilterChoice(choice string) (Filter, error) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return FilterAll, nil
	}
	for _, f := range Filters() {
		if choice == fmt.Sprint(int(f)) {
			return f, nil
		}
	}
	return 0, errors.NewValidationError("Invalid filter choice! Choose 1-6").
		WithField("filter").
		WithValue(choice)
}
