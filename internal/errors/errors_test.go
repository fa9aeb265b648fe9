package errors

import (
	"errors"
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// ValidationError Tests
// -----------------------------------------------------------------------------

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "basic error",
			err:  NewValidationError("deck name cannot be empty"),
			want: "validation error: deck name cannot be empty",
		},
		{
			name: "with field",
			err:  NewValidationError("deck name cannot be empty").WithField("name"),
			want: "validation error [field=name]: deck name cannot be empty",
		},
		{
			name: "with field and value",
			err:  NewValidationError("bad").WithField("timer").WithValue(15),
			want: "validation error [field=timer, value=15]: bad",
		},
		{
			name: "with cause",
			err:  NewValidationError("bad").WithCause(ErrInvalidInput),
			want: "validation error: bad: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError("empty").WithField("question")

	if !Is(err, &ValidationError{}) {
		t.Error("Is(ValidationError{}) = false, want true")
	}
	if !Is(err, ErrInvalidInput) {
		t.Error("Is(ErrInvalidInput) = false, want true")
	}
	if Is(err, ErrOutOfRange) {
		t.Error("Is(ErrOutOfRange) = true, want false")
	}
}

// -----------------------------------------------------------------------------
// ParseError / IndexError Tests
// -----------------------------------------------------------------------------

func TestParseError(t *testing.T) {
	err := NewParseError("abc")

	if got, want := err.Error(), `parse error: "abc" is not a number`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrNotANumber) {
		t.Error("Is(ErrNotANumber) = false, want true")
	}
	if !Is(err, ErrInvalidInput) {
		t.Error("Is(ErrInvalidInput) = false, want true")
	}
	if Is(err, &IndexError{}) {
		t.Error("ParseError should not match IndexError")
	}
	if !err.IsRecoverable() {
		t.Error("IsRecoverable() = false, want true")
	}
}

func TestIndexError(t *testing.T) {
	tests := []struct {
		name string
		err  *IndexError
		want string
	}{
		{"in range message", NewIndexError("card", 7, 3), "index error: card 7 out of range (1-3)"},
		{"empty collection", NewIndexError("deck", 1, 0), "index error: no decks available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !Is(tt.err, ErrOutOfRange) {
				t.Error("Is(ErrOutOfRange) = false, want true")
			}
		})
	}
}

// -----------------------------------------------------------------------------
// EmptyCollectionError Tests
// -----------------------------------------------------------------------------

func TestEmptyCollectionError(t *testing.T) {
	err := NewEmptyCollectionError("deck", "Spanish")

	if got, want := err.Error(), "deck 'Spanish' has no cards"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrEmptyCollection) {
		t.Error("Is(ErrEmptyCollection) = false, want true")
	}

	custom := NewEmptyCollectionError("filter", "hard").WithMessage("No cards match this filter!")
	if got, want := custom.Error(), "No cards match this filter!"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// -----------------------------------------------------------------------------
// PersistenceError Tests
// -----------------------------------------------------------------------------

func TestPersistenceError(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewPersistenceError("failed to decode decks", cause).
		WithOp("load").
		WithPath("decks.json")

	want := "persistence error [op=load, path=decks.json]: failed to decode decks: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.IsRecoverable() {
		t.Error("IsRecoverable() = true, want false")
	}
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	corrupt := NewPersistenceError("bad json", ErrCorruptStore)
	if !Is(corrupt, ErrCorruptStore) {
		t.Error("Is(ErrCorruptStore) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// Classification Helper Tests
// -----------------------------------------------------------------------------

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"validation", NewValidationError("x"), true},
		{"parse", NewParseError("x"), true},
		{"index", NewIndexError("deck", 2, 1), true},
		{"empty", NewEmptyCollectionError("deck", "d"), true},
		{"persistence", NewPersistenceError("x", nil), false},
		{"wrapped validation", Wrap(NewValidationError("x"), "create deck"), true},
		{"plain error", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.want {
				t.Errorf("IsRecoverable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(New("plain")); got != SeverityError {
		t.Errorf("GetSeverity(plain) = %v, want %v", got, SeverityError)
	}
	if got := GetSeverity(NewParseError("x")); got != SeverityWarning {
		t.Errorf("GetSeverity(parse) = %v, want %v", got, SeverityWarning)
	}
	if got := GetSeverity(NewPersistenceError("x", nil)); got != SeverityCritical {
		t.Errorf("GetSeverity(persistence) = %v, want %v", got, SeverityCritical)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("Deck name cannot be empty!").WithField("name"), "Deck name cannot be empty!"},
		{"parse", NewParseError("abc"), "Please enter a valid number!"},
		{"index", NewIndexError("deck", 5, 2), "Invalid deck number! Choose 1-2"},
		{"index none", NewIndexError("deck", 1, 0), "No decks available"},
		{"empty", NewEmptyCollectionError("deck", "d").WithMessage("This deck has no cards!"), "This deck has no cards!"},
		{"wrapped", Wrap(NewParseError("x"), "select deck"), "Please enter a valid number!"},
		{"other", New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	base := NewIndexError("card", 9, 2)
	wrapped := Wrapf(base, "delete card from %s", "Spanish")
	if got, want := wrapped.Error(), "delete card from Spanish: index error: card 9 out of range (1-2)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var ierr *IndexError
	if !As(wrapped, &ierr) {
		t.Fatal("As(IndexError) = false, want true")
	}
	if ierr.Index != 9 || ierr.Count != 2 {
		t.Errorf("IndexError = {%d, %d}, want {9, 2}", ierr.Index, ierr.Count)
	}
}
