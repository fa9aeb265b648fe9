// Package study runs a flashcard study session: a cursor over a filtered,
// session-local copy of a deck's cards, plus an optional per-card countdown.
//
// The countdown is advisory. It runs on its own goroutine and publishes the
// remaining seconds through an atomic value; it never locks a card or moves
// the cursor. Session itself is driven from a single goroutine (the menu's
// line loop or the bubbletea update loop) and is not safe for concurrent
// mutation, but Remaining and TimerState may be read from anywhere.
package study
