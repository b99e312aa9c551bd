package todo

import (
	"errors"
	"fmt"

	"github.com/tmather/ticklist/internal/validation"
)

var (
	// ErrEmptyTitle is returned when a todo title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidFilter is returned when an invalid filter is provided.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrDuplicateID is returned when a loaded collection repeats an ID.
	ErrDuplicateID = errors.New("duplicate todo ID")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple todos.
	ErrAmbiguousIDPrefix = errors.New("ambiguous todo ID prefix")

	// ErrNilCodec is returned when a store is opened without a codec.
	ErrNilCodec = errors.New("codec is required")
)

// ValidateTitle checks if the title is valid. The title must already be
// normalized; callers that accept raw input trim it first.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidPriority, priority, validation.FormatValidValues(ValidPriorities()))
	}
	return nil
}

// ValidateFilter checks if the filter is valid.
func ValidateFilter(filter Filter) error {
	if !filter.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidFilter, filter, validation.FormatValidValues(ValidFilters()))
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid.
func ValidateTodo(t *Todo) error {
	if t.ID == "" {
		return fmt.Errorf("todo ID cannot be empty")
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("todo %s has no creation time", t.ID)
	}
	return nil
}
