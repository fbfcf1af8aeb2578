package types

import (
	"errors"
	"fmt"
)

// Catalog error kinds. Typed errors below report errors.Is against these.
var (
	ErrValidation      = errors.New("invalid field value")
	ErrDuplicate       = errors.New("country already exists")
	ErrNotFound        = errors.New("country not found")
	ErrEmptyCatalog    = errors.New("catalog is empty")
	ErrUnknownSortMode = errors.New("unknown sort mode")
)

// Storage error kinds.
var (
	ErrIO        = errors.New("storage failure")
	ErrBadHeader = errors.New("unexpected snapshot header")
)

// ValidationError reports a malformed or missing field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, fmt.Sprint(e.Value), e.Message)
	}
	return "invalid input: " + e.Message
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// DuplicateError reports a name that normalizes to an existing record's name.
type DuplicateError struct {
	Name     string // Rejected name as given.
	Existing string // Name of the record it collides with.
}

func (e *DuplicateError) Error() string {
	if e.Name == e.Existing {
		return fmt.Sprintf("country %q already exists", e.Name)
	}
	return fmt.Sprintf("country %q already exists as %q", e.Name, e.Existing)
}

// Is implements errors.Is support.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// NotFoundError reports a query that matched no record.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no country matches %q", e.Query)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IOError wraps a failure of the persistence medium.
type IOError struct {
	Op   string // load or save
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// IsUserError reports whether err is caused by user input rather than the
// environment. The CLI maps these to exit code 1.
func IsUserError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmptyCatalog) ||
		errors.Is(err, ErrUnknownSortMode)
}
