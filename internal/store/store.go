// Package store persists the deck registry as a single JSON document and
// watches that document for edits made by other programs.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Iron-Ham/flashdeck/internal/deck"
	"github.com/Iron-Ham/flashdeck/internal/errors"
	"github.com/Iron-Ham/flashdeck/internal/logging"
)

// DefaultFileName is the decks file used when no path is configured.
const DefaultFileName = "flashcard_decks.json"

// SampleDeckName is the name of the deck returned when no file exists yet.
const SampleDeckName = "Sample Deck"

// Store reads and writes the decks file.
type Store struct {
	path   string
	logger *logging.Logger

	mu     sync.Mutex
	digest string // sha256 of the content last loaded or saved; "" when the file was absent
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.WithComponent("store")
		}
	}
}

// New creates a Store for the file at path.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultFileName
	}
	s := &Store{
		path:   path,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the decks file path.
func (s *Store) Path() string {
	return s.path
}

// SampleDecks returns the built-in deck shown on first run.
func SampleDecks() []deck.Deck {
	return []deck.Deck{
		{
			Name: SampleDeckName,
			Cards: []deck.Card{
				{Question: "What is the capital of France?", Answer: "Paris", Difficulty: deck.Easy},
				{Question: "What is 15 × 12?", Answer: "180", Difficulty: deck.Medium},
				{Question: "Explain quantum entanglement", Answer: "A quantum phenomenon where particles become interconnected", Difficulty: deck.Hard},
			},
		},
	}
}

// Load reads the decks file. A missing file yields the sample deck and is not
// created. Malformed JSON is a PersistenceError wrapping ErrCorruptStore.
func (s *Store) Load(ctx context.Context) (*deck.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.setDigest("")
		s.logger.Info("decks file not found, using sample deck", "path", s.path)
		return deck.NewRegistry(SampleDecks()), nil
	}
	if err != nil {
		return nil, errors.NewPersistenceError("failed to read decks", err).
			WithPath(s.path).WithOp("load")
	}

	var decks []deck.Deck
	if err := json.Unmarshal(data, &decks); err != nil {
		return nil, errors.NewPersistenceError("failed to decode decks", errors.Join(errors.ErrCorruptStore, err)).
			WithPath(s.path).WithOp("load")
	}

	s.setDigest(digestOf(data))
	s.logger.Debug("decks loaded", "path", s.path, "decks", len(decks))
	return deck.NewRegistry(decks), nil
}

// Save overwrites the decks file with the whole registry, indented by two
// spaces. The write goes through a temp file and a rename so a crash never
// leaves a truncated document behind.
func (s *Store) Save(ctx context.Context, r *deck.Registry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r.Decks(), "", "  ")
	if err != nil {
		return errors.NewPersistenceError("failed to encode decks", err).
			WithPath(s.path).WithOp("save")
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewPersistenceError("failed to create decks directory", err).
				WithPath(s.path).WithOp("save")
		}
	}

	if err := atomicWriteFile(s.path, data, 0644); err != nil {
		return errors.NewPersistenceError("failed to write decks", err).
			WithPath(s.path).WithOp("save")
	}

	s.setDigest(digestOf(data))
	s.logger.Debug("decks saved", "path", s.path, "decks", r.Len())
	return nil
}

func (s *Store) setDigest(d string) {
	s.mu.Lock()
	s.digest = d
	s.mu.Unlock()
}

// swapDigest records d and reports whether it differs from the previous value.
func (s *Store) swapDigest(d string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.digest == d {
		return false
	}
	s.digest = d
	return true
}

func digestOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it over path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".flashdeck-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
