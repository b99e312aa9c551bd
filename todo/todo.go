package todo

import "time"

// Todo represents a single list item.
type Todo struct {
	// ID is a unique identifier (8-char alphanumeric, derived from the
	// initial title + creation timestamp).
	ID string `json:"id"`

	// Title is the text of the todo. Never empty or all-whitespace.
	Title string `json:"title"`

	// Completed marks the todo as done.
	Completed bool `json:"completed"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// CreatedAt is when the todo was created. Assigned once, never mutated.
	CreatedAt time.Time `json:"created_at"`
}
