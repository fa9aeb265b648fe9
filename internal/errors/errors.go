// Package errors provides centralized error definitions and error handling
// utilities for flashdeck. It defines the error taxonomy used by the deck
// registry, the deck store and the study session, along with classification
// helpers used by the interactive menu to decide what to show the user.
//
// # Error Types
//
// Recoverable input errors (caught at the prompt that produced them):
//   - ValidationError: a required field is empty or malformed
//   - ParseError: input that should be a number is not
//   - IndexError: a selection outside the valid range
//   - EmptyCollectionError: an operation needs at least one card or deck
//
// Fatal errors:
//   - PersistenceError: the decks file is unreadable, unwritable or corrupt
//
// # Usage
//
//	err := errors.NewIndexError("deck", 4, 3)
//	if errors.IsRecoverable(err) {
//	    fmt.Println(err)
//	}
//
//	var perr *errors.PersistenceError
//	if errors.As(err, &perr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityWarning is for errors caused by user input that can be retried.
	SeverityWarning Severity = iota
	// SeverityError is for errors that abort the current operation.
	SeverityError
	// SeverityCritical is for errors that terminate the process.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrNotANumber indicates that a numeric selection could not be parsed.
	ErrNotANumber = New("not a number")
	// ErrOutOfRange indicates that a selection lies outside the valid range.
	ErrOutOfRange = New("selection out of range")
	// ErrEmptyCollection indicates that there is nothing to operate on.
	ErrEmptyCollection = New("collection is empty")
	// ErrCorruptStore indicates that the decks file could not be decoded.
	ErrCorruptStore = New("decks file is corrupt")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// FlashdeckError is the base interface for all flashdeck errors.
type FlashdeckError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRecoverable returns true if the user can correct the input and retry.
	IsRecoverable() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message     string
	cause       error
	severity    Severity
	recoverable bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRecoverable returns whether the error can be corrected by new input.
func (e *baseError) IsRecoverable() bool {
	return e.recoverable
}

// -----------------------------------------------------------------------------
// Input Errors
// -----------------------------------------------------------------------------

// ValidationError represents an empty or malformed required field.
//
// Example:
//
//	err := errors.NewValidationError("deck name cannot be empty").WithField("name")
//	fmt.Println(err) // "validation error [field=name]: deck name cannot be empty"
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:     message,
			severity:    SeverityWarning,
			recoverable: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Message returns the bare message without the field prefix, for display.
func (e *ValidationError) Message() string {
	return e.message
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// ParseError represents input that should have been a number.
//
// Example:
//
//	err := errors.NewParseError("abc")
//	fmt.Println(err) // "parse error: \"abc\" is not a number"
type ParseError struct {
	baseError
	Input string
}

// NewParseError creates a new ParseError for the given raw input.
func NewParseError(input string) *ParseError {
	return &ParseError{
		baseError: baseError{
			message:     fmt.Sprintf("%q is not a number", input),
			severity:    SeverityWarning,
			recoverable: true,
		},
		Input: input,
	}
}

// WithCause adds a cause to the error.
func (e *ParseError) WithCause(cause error) *ParseError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	return "parse error: " + e.message
}

// Is checks if this error matches the target.
func (e *ParseError) Is(target error) bool {
	if _, ok := target.(*ParseError); ok {
		return true
	}
	if target == ErrNotANumber || target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// IndexError represents a selection outside the valid range.
// Index is the value the user supplied (1-based when it came from a prompt),
// Count is the number of available items.
//
// Example:
//
//	err := errors.NewIndexError("card", 7, 3)
//	fmt.Println(err) // "index error: card 7 out of range (1-3)"
type IndexError struct {
	baseError
	Resource string
	Index    int
	Count    int
}

// NewIndexError creates a new IndexError.
func NewIndexError(resource string, index, count int) *IndexError {
	return &IndexError{
		baseError: baseError{
			message:     fmt.Sprintf("%s %d out of range (1-%d)", resource, index, count),
			severity:    SeverityWarning,
			recoverable: true,
		},
		Resource: resource,
		Index:    index,
		Count:    count,
	}
}

// Error returns the formatted error message.
func (e *IndexError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("index error: no %ss available", e.Resource)
	}
	return "index error: " + e.message
}

// Is checks if this error matches the target.
func (e *IndexError) Is(target error) bool {
	if _, ok := target.(*IndexError); ok {
		return true
	}
	if target == ErrOutOfRange {
		return true
	}
	return e.baseError.Is(target)
}

// EmptyCollectionError represents an operation that needs at least one item.
//
// Example:
//
//	err := errors.NewEmptyCollectionError("deck", "Spanish")
//	fmt.Println(err) // "deck 'Spanish' has no cards"
type EmptyCollectionError struct {
	baseError
	Collection string
	Name       string
}

// NewEmptyCollectionError creates a new EmptyCollectionError.
func NewEmptyCollectionError(collection, name string) *EmptyCollectionError {
	return &EmptyCollectionError{
		baseError: baseError{
			message:     fmt.Sprintf("%s '%s' has no cards", collection, name),
			severity:    SeverityWarning,
			recoverable: true,
		},
		Collection: collection,
		Name:       name,
	}
}

// WithMessage overrides the default message.
func (e *EmptyCollectionError) WithMessage(message string) *EmptyCollectionError {
	e.message = message
	return e
}

// Is checks if this error matches the target.
func (e *EmptyCollectionError) Is(target error) bool {
	if _, ok := target.(*EmptyCollectionError); ok {
		return true
	}
	if target == ErrEmptyCollection {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Persistence Errors
// -----------------------------------------------------------------------------

// PersistenceError represents a failure to read, decode or write the decks file.
// It is never recovered: the menu lets it terminate the process.
//
// Example:
//
//	err := errors.NewPersistenceError("failed to decode decks", errors.ErrCorruptStore).
//		WithPath("flashcard_decks.json").WithOp("load")
type PersistenceError struct {
	baseError
	Path string
	Op   string
}

// NewPersistenceError creates a new PersistenceError.
func NewPersistenceError(message string, cause error) *PersistenceError {
	return &PersistenceError{
		baseError: baseError{
			message:     message,
			cause:       cause,
			severity:    SeverityCritical,
			recoverable: false,
		},
	}
}

// WithPath adds the file path to the error context.
func (e *PersistenceError) WithPath(path string) *PersistenceError {
	e.Path = path
	return e
}

// WithOp adds the operation name ("load", "save") to the error context.
func (e *PersistenceError) WithOp(op string) *PersistenceError {
	e.Op = op
	return e
}

// Error returns the formatted error message.
func (e *PersistenceError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}

	prefix := "persistence error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("persistence error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *PersistenceError) Is(target error) bool {
	if _, ok := target.(*PersistenceError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRecoverable returns true if the error was caused by user input and the
// operation can be retried with different input. Persistence errors and
// unknown errors are not recoverable.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}

	var fe FlashdeckError
	if As(err, &fe) {
		return fe.IsRecoverable()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement FlashdeckError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityWarning
	}

	var fe FlashdeckError
	if As(err, &fe) {
		return fe.Severity()
	}
	return SeverityError
}

// UserMessage returns the text shown to the user for a recoverable error.
// It strips the taxonomy prefix from validation errors so prompts read
// naturally ("Deck name cannot be empty!").
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if As(err, &verr) {
		return verr.Message()
	}
	var ierr *IndexError
	if As(err, &ierr) {
		if ierr.Count == 0 {
			return fmt.Sprintf("No %ss available", ierr.Resource)
		}
		return fmt.Sprintf("Invalid %s number! Choose 1-%d", ierr.Resource, ierr.Count)
	}
	var perr *ParseError
	if As(err, &perr) {
		return "Please enter a valid number!"
	}
	var eerr *EmptyCollectionError
	if As(err, &eerr) {
		return eerr.message
	}
	return err.Error()
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
