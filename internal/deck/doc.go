// Package deck holds the flashcard data model: cards with a difficulty,
// named decks of cards, and the ordered Registry the menu mutates.
//
// Registry operations validate their input and return typed errors from
// internal/errors. They never touch disk; callers persist the registry after
// every successful mutation.
package deck
