package todo

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Name length bounds, inclusive, counted in runes.
const (
	MinNameLength = 2
	MaxNameLength = 32
)

// NameLengthMessage is shown when a name is too short or too long.
const NameLengthMessage = "must be between 2 and 32 characters"

// NameBlankMessage is shown when a name is only whitespace.
const NameBlankMessage = "must not be blank"

var (
	// ErrInvalidName is matched by every name ValidationError.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidPriority is returned when priority is outside valid range.
	ErrInvalidPriority = errors.New("priority must be between 1 and 3")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrAmbiguousTodoIDPrefix is returned when an ID prefix matches multiple todos.
	ErrAmbiguousTodoIDPrefix = errors.New("ambiguous todo ID prefix")

	// ErrInvalidSortMode is returned for an unknown sort mode name.
	ErrInvalidSortMode = errors.New("invalid sort mode")

	// ErrNotLoaded is returned by mutations attempted before the store has loaded.
	ErrNotLoaded = errors.New("todo store is not loaded")
)

// ValidationError describes a field that failed validation. Message is meant
// to be shown next to the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidName for name failures.
func (e *ValidationError) Unwrap() error {
	if e.Field == "name" {
		return ErrInvalidName
	}
	return nil
}

var nameRules = []validation.Rule{
	validation.Required.Error(NameLengthMessage),
	validation.RuneLength(MinNameLength, MaxNameLength).Error(NameLengthMessage),
}

// NameError returns the message to display for candidate, or "" if the
// length is acceptable. It looks only at the raw length; see ValidateName
// for the full check applied on add and edit.
func NameError(candidate string) string {
	if err := validation.Validate(candidate, nameRules...); err != nil {
		return NameLengthMessage
	}
	return ""
}

// ValidateName checks a name for add and edit. The raw name must be 2 to 32
// characters long, and it must still be at least 2 characters once leading
// and trailing whitespace is removed.
func ValidateName(name string) error {
	if msg := NameError(name); msg != "" {
		return &ValidationError{Field: "name", Message: msg}
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Field: "name", Message: NameBlankMessage}
	}
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return &ValidationError{Field: "name", Message: NameLengthMessage}
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority int) error {
	if priority < PriorityMin || priority > PriorityMax {
		return fmt.Errorf("%w: got %d", ErrInvalidPriority, priority)
	}
	return nil
}

// ValidateDraft checks every field of a draft, name first.
func ValidateDraft(d Draft) error {
	if err := ValidateName(d.Name); err != nil {
		return err
	}
	return ValidatePriority(d.Priority)
}
